// Package palette provides the curated color tables puzzles draw from.
//
// Each curated palette holds 24 RGB colors ordered so any prefix (the
// first 6, 8, 12, 16 or 24) forms a maximally distinguishable subset.
// Generate synthesizes arbitrarily long palettes from the 12-color
// default by appending lightened and darkened variants.
package palette
