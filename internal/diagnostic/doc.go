// Package diagnostic provides structured warnings and errors collected
// while indexing, parsing, and emitting documentation fragments.
//
// Key capabilities:
//   - Namespace conflicts surfaced instead of silently coerced
//   - Per-file parse failure reports that do not abort the run
//   - Unresolved type expression warnings (best-effort passthrough)
//   - Emission failures with path context
package diagnostic
