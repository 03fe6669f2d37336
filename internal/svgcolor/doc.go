// Package svgcolor locates, lists and replaces color literals in SVG
// document text.
//
// Theme assets are recolored by rewriting the document before rendering,
// not by post-processing pixels: the scanner finds hex (#RRGGBB,
// #RRGGBBAA) and functional (rgb(), rgba()) literals, and Replace
// rebuilds the document with mapped colors substituted in place. All
// other text passes through byte for byte.
//
// The two REAPER reserved marker colors are special: they are metadata,
// not artwork, so Replace never remaps them and always re-emits them in
// canonical rgb() form.
package svgcolor
