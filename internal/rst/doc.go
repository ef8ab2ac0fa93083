// Package rst parses reStructuredText documentation fragments into document
// node trees.
//
// The parser is line-oriented and recognizes the directive subset used by
// API reference fragments:
//   - module, currentmodule
//   - function, method, classmethod, staticmethod
//   - class
//   - data, attribute
//
// Inside directive bodies it understands field lists (:type x:, :rtype:,
// :arg x:, :return:), multi-line signature arguments (overloads), and Sphinx
// cross-reference roles, which are condensed into "name <qualified.name>"
// form for docstrings and into plain qualified names for type expressions.
//
// Parsing is deterministic for identical input bytes. Recoverable problems
// (an unreadable signature, an unrecognized type expression) are reported
// through diagnostics; only I/O failures surface as errors.
package rst
