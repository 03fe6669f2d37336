// Package pipeline runs render tasks end to end.
//
// A task names one input graphic (SVG or raster), optional color
// remappings, an optional tile layout, and one or more outputs, each an
// output path plus a scale factor. Running a task reads and recolors the
// input, renders it once at scale 1, detects border markers on that base
// render (lazily, only when an output actually needs them), and then
// produces every requested output.
//
// Failures are local: a bad output request is logged and skipped while
// its siblings continue, and in a batch a failed task does not stop the
// tasks after it. Everything here is deterministic computation over
// in-memory data, so nothing is ever retried.
package pipeline
