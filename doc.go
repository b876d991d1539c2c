// Package graphic is a software rasterization and shading engine for a
// teaching sketchpad.
//
// # Overview
//
// A drawing is an ordered log of elements (lines, ellipses, fills, Bezier
// and B-spline curves, Koch snowflakes, ferns and shaded spheres). Every
// redraw clears the pixmap and replays the whole log; nothing is drawn
// incrementally.
//
// # Quick Start
//
//	cv := graphic.NewCanvas(graphic.DefaultConfig())
//
//	s := cv.Session()
//	s.SetTool(recording.KindSphere)
//	s.Press(vec.Vec2{X: 200, Y: 150})
//	s.Release(vec.Vec2{X: 260, Y: 150})
//
//	cv.Redraw()
//	_ = graphic.SaveFile(cv.Pixmap(), "sphere.png")
//
// # Architecture
//
// The module is organized into:
//   - raster: pixel sinks, occupancy masks, Bresenham lines, midpoint ellipses
//   - fill: ellipse flood fill and triangle span fill
//   - curve: Bezier subdivision, uniform B-splines, Koch curves, the fern
//   - sphere: tessellation, Phong shading and scanline normal interpolation
//   - recording: the element log, pointer sessions and replay
//   - graphic (this package): Canvas, Pixmap, configuration and image export
//
// # Logging
//
// The engine is silent by default. Call SetLogger to receive replay and
// shading diagnostics.
package graphic
