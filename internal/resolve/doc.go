// Package resolve normalizes type references across a merged module tree.
//
// Resolution pipeline, applied to one module at a time:
//  1. Localize: qualified references to classes defined in the module lose
//     their module prefix; foreign references stay fully qualified.
//  2. SynthesizeImports: every remaining foreign reference contributes one
//     import statement, deduplicated by module path.
//  3. SortMembers: module members settle into a documented deterministic
//     total order so regeneration is byte-identical.
package resolve
