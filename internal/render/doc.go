// Package render turns an accumulated experiment result into artifacts.
//
// Renderers receive the complete ordered result and write into the
// configured output directory, creating it if absent and overwriting
// previous artifacts. The core experiment hands over raw numbers and
// point sets only; everything visual (layout, colors, annotation
// placement) lives here.
package render
