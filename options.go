package graphic

import "math/rand/v2"

// CanvasOption configures a Canvas during creation.
// Use functional options to customize Canvas behavior.
//
// Example:
//
//	// Default 800x600 canvas
//	cv := graphic.NewCanvas(graphic.DefaultConfig())
//
//	// Draw into an existing pixmap with four shading workers
//	cv := graphic.NewCanvas(cfg, graphic.WithPixmap(pm), graphic.WithWorkers(4))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	pixmap  *Pixmap
	rng     *rand.Rand
	workers int
}

// WithPixmap sets the pixmap the Canvas draws into. The pixmap size
// overrides the configured viewport.
func WithPixmap(pm *Pixmap) CanvasOption {
	return func(o *canvasOptions) {
		o.pixmap = pm
	}
}

// WithRand supplies the random source for fern elements. A shared source
// makes every redraw scatter the fern differently; by default each redraw
// reseeds from Config.Seed and repeats the same picture.
func WithRand(r *rand.Rand) CanvasOption {
	return func(o *canvasOptions) {
		o.rng = r
	}
}

// WithWorkers overrides Config.Workers, the number of goroutines used to
// shade spheres.
func WithWorkers(n int) CanvasOption {
	return func(o *canvasOptions) {
		o.workers = n
	}
}
