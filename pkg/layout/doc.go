// Package layout places two text blocks side by side.
//
// Normalize measures a block and right-pads every line to the block's
// display width. Compose merges a left block (the graphic) with a right
// block (host information), one row per line:
//
//	ab  | X
//	abc | Y
//	    | Z
//
// Widths are display widths: escape sequences count for nothing and wide
// runes count for two cells. Blocks are never truncated.
package layout
