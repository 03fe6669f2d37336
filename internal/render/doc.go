// Package render turns a source graphic into bitmaps at arbitrary
// upscale factors while keeping every tile boundary on an integer pixel.
//
// Naive whole-image scaling lets tile boundaries fall on fractional
// pixels, which visibly misaligns repeated UI elements (the three
// segments of a button, the cells of a grid). The pipeline here instead
// divides the image into its tiles first, scales each tile to a whole
// pixel size with ceil(tile * scale), and derives the output resolution
// from the scaled tiles, so the effective scale may be slightly larger
// than requested but boundaries always land exactly.
//
// Images carrying REAPER border markers (see the border package) get
// border-aware treatment: the one-pixel marker frame is stripped before
// scaling, the artwork inside is scaled tile-exact, and the markers are
// erased and repainted at the scaled widths with exact, unblended color
// writes.
//
// # Sources
//
// Rasterization is abstracted behind the Source interface so the
// pipeline itself never touches a rasterizer: SVGSource wraps an oksvg
// document, RasterSource wraps an already-decoded bitmap, and tests use
// synthetic in-memory sources.
//
// # Error Handling
//
// Structural input problems (fractional intrinsic size, non-divisible
// tile layout, invalid scale, unbuildable output size) are distinct typed
// errors; match them with errors.As. A failed render never returns a
// partial bitmap.
package render
