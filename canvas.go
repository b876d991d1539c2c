package graphic

import (
	"image/color"

	"github.com/zyfsa/graphic/internal/logging"
	"github.com/zyfsa/graphic/recording"
	"github.com/zyfsa/graphic/sphere"
)

// Canvas owns a drawing: its element log, the pointer session that feeds
// it, and the pixmap it is replayed onto.
//
// Drawing is never incremental. Every Redraw clears the pixmap to the
// background color and replays the whole log.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	cfg        Config
	background color.RGBA
	pixmap     *Pixmap
	log        *recording.Log
	session    *recording.Session
	replayer   *recording.Replayer
}

// NewCanvas creates a canvas from cfg. The config is used as given; call
// Config.Validate first when it comes from user input.
func NewCanvas(cfg Config, opts ...CanvasOption) *Canvas {
	var o canvasOptions
	for _, opt := range opts {
		opt(&o)
	}

	pm := o.pixmap
	if pm == nil {
		pm = NewPixmap(cfg.Width, cfg.Height)
	}
	cfg.Width, cfg.Height = pm.Width(), pm.Height()
	if o.workers > 0 {
		cfg.Workers = o.workers
	}

	rp := cfg.replayer()
	rp.Rand = o.rng

	log := recording.NewLog()
	s := recording.NewSession(log)
	s.Style = cfg.Style()
	s.EllipseRA = cfg.Ellipse.RA
	s.EllipseRB = cfg.Ellipse.RB
	s.EllipseRotationDeg = cfg.Ellipse.RotationDeg

	return &Canvas{
		cfg:        cfg,
		background: Hex(cfg.Background),
		pixmap:     pm,
		log:        log,
		session:    s,
		replayer:   rp,
	}
}

// Config returns the configuration the canvas was built with.
func (c *Canvas) Config() Config { return c.cfg }

// Width returns the width of the canvas.
func (c *Canvas) Width() int { return c.pixmap.Width() }

// Height returns the height of the canvas.
func (c *Canvas) Height() int { return c.pixmap.Height() }

// Pixmap returns the pixmap drawn by Redraw.
func (c *Canvas) Pixmap() *Pixmap { return c.pixmap }

// Log returns the element log.
func (c *Canvas) Log() *recording.Log { return c.log }

// Session returns the pointer session appending to the log.
func (c *Canvas) Session() *recording.Session { return c.session }

// Append adds e to the log.
func (c *Canvas) Append(e recording.Element) {
	c.log.Append(e)
}

// Undo removes the most recent element. It reports false when the log is
// empty.
func (c *Canvas) Undo() bool {
	_, ok := c.log.Undo()
	return ok
}

// Reset empties the log.
func (c *Canvas) Reset() {
	c.log.Reset()
}

// SetLighting replaces the light and view directions used for spheres.
// Zero vectors are ignored.
func (c *Canvas) SetLighting(light, view sphere.Vec3) {
	if !light.IsZero() {
		c.replayer.Lighting.Light = light
		c.cfg.Light = [3]float64{light.X, light.Y, light.Z}
	}
	if !view.IsZero() {
		c.replayer.Lighting.View = view
		c.cfg.View = [3]float64{view.X, view.Y, view.Z}
	}
}

// SetBackground changes the color Redraw clears to.
func (c *Canvas) SetBackground(bg color.RGBA) {
	c.background = bg
	c.cfg.Background = HexString(bg)
}

// Redraw clears the pixmap and replays every element in the log.
func (c *Canvas) Redraw() recording.Stats {
	c.pixmap.Clear(c.background)
	st := c.replayer.Replay(c.log.Elements(), c.pixmap)
	logging.Logger().Info("graphic: redraw",
		"elements", c.log.Len(),
		"drawn", st.Drawn,
		"skipped", st.Skipped,
		"curves", st.Flushed,
	)
	return st
}
