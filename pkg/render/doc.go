// Package render produces the left-hand graphic of a fetch.
//
// A Selector is given a validated types.RenderConfig and returns the raw
// lines of exactly one strategy:
//
//  1. an ASCII art file, read verbatim
//  2. an image rendered as ASCII characters (ASCIIBackend)
//  3. an image rendered as truecolor half blocks (ANSIBackend)
//
// Image backends form a prioritized list chosen at runtime. Each one is
// tried only when the previous produced nothing. Every failure (missing
// file, undecodable image, renderer error) is logged and turned into an
// empty Result; Select never returns an error.
package render
