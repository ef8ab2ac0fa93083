// Package emit serializes finished document trees into Python stub files.
//
// Rendering is purely a function of the tree: identical input trees produce
// byte-identical output. Layout:
//   - module docstring
//   - imports (one contiguous block)
//   - data declarations
//   - classes, then functions, each separated by one blank line
//
// The package also owns the on-disk conventions: the ".pyi" stub suffix and
// the zero-byte "py.typed" marker written into every package directory.
package emit
