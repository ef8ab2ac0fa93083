// Package docnode defines the typed document tree that stub generation
// operates on.
//
// A tree is rooted at a Module (or a bare Class for class fragments) and
// holds the declarations recovered from one or more documentation files.
//
// Key types:
//   - Module: top-level container with docstring, imports, and members
//   - Class: class declaration with base types and members
//   - Function: callable with scope, arguments, and return type
//   - Data: module- or class-level constant/attribute
//   - Argument: one formal parameter with optional type and default
//   - Import: synthesized import statement
//   - DocString: normalized documentation text
//
// The package also owns canonical signature rendering (decorators, implicit
// self/cls parameters, default type tokens).
package docnode
