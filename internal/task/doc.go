// Package task builds the namespace tree from a flat set of documentation
// fragment files and orchestrates merge and emission.
//
// Files are indexed by their dotted filenames: "bge.types.KX_GameObject.rst"
// yields the segment path [bge, types, KX_GameObject], one task per segment.
// A segment starting with a lowercase character is a module task, anything
// else a class task; the variant never changes after creation.
//
// Generation runs in two sequential phases: the tree is built completely,
// then merged and emitted leaves-first. A module task cannot merge before
// every child task has parsed, so the post-order walk is mandatory.
package task
