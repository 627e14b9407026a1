// Package match ranks known names by their similarity to an unknown one,
// for "did you mean" hints on unexpected JSON fields and unknown type names.
//
// Key functions:
//   - NormalizeIdent: folds case and separators so "user_id" matches "userId"
//   - Levenshtein: computes edit distance between strings
//   - Suggest: returns the closest candidates above a similarity threshold
package match
