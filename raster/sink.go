// Package raster turns integer geometry into pixel plots.
//
// Everything in this package writes through a Sink, so the same walkers drive
// an on-screen pixmap, an occupancy Mask or a test recorder. Lines use an
// integer Bresenham walk; ellipses use the two-region midpoint algorithm
// with an optional rotation about the centre.
package raster

import "image/color"

// Sink receives plotted pixels. Implementations decide what to do with
// coordinates that fall outside their surface; Clip discards them.
type Sink interface {
	Plot(x, y int, c color.RGBA)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(x, y int, c color.RGBA)

// Plot implements Sink.
func (f SinkFunc) Plot(x, y int, c color.RGBA) { f(x, y, c) }

// Clip returns a sink that forwards only pixels inside [0,w)x[0,h).
func Clip(dst Sink, w, h int) Sink {
	return SinkFunc(func(x, y int, c color.RGBA) {
		if x < 0 || x >= w || y < 0 || y >= h {
			return
		}
		dst.Plot(x, y, c)
	})
}

// Pen returns a sink that stamps a width×width square for every plotted
// pixel, anchored so that the requested pixel sits at the square's centre
// (rounded toward the top-left for even widths). A width of 1 or less
// returns dst unchanged.
func Pen(dst Sink, width int) Sink {
	if width <= 1 {
		return dst
	}
	lo := -(width - 1) / 2
	hi := lo + width
	return SinkFunc(func(x, y int, c color.RGBA) {
		for dy := lo; dy < hi; dy++ {
			for dx := lo; dx < hi; dx++ {
				dst.Plot(x+dx, y+dy, c)
			}
		}
	})
}
