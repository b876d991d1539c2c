package curve

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/zyfsa/graphic/raster"
)

// MaxKochLevel is the deepest recursion Koch accepts. Each level multiplies
// the number of plotted segments by four.
const MaxKochLevel = 10

// ClampKochLevel limits n to [0, MaxKochLevel].
func ClampKochLevel(n int) int {
	return min(max(n, 0), MaxKochLevel)
}

// Koch plots the level-n Koch curve from a to b. Level 0 is the straight
// line a→b; every further level splits each segment into thirds and raises
// an equilateral bump on the middle third. n is clamped to
// [0, MaxKochLevel].
func Koch(dst raster.Sink, a, b vec.Vec2, n int, c color.RGBA) {
	koch(dst, a, b, ClampKochLevel(n), c)
}

func koch(dst raster.Sink, a, b vec.Vec2, n int, c color.RGBA) {
	if n == 0 {
		raster.PlotLine(dst, Pixel(a), Pixel(b), c)
		return
	}
	third := b.Sub(a).Mul(1.0 / 3)
	p1 := a.Add(third)
	p3 := b.Sub(third)
	apex := p1.Add(rotate(third, math.Pi/3))

	koch(dst, a, p1, n-1, c)
	koch(dst, p1, apex, n-1, c)
	koch(dst, apex, p3, n-1, c)
	koch(dst, p3, b, n-1, c)
}

// Snowflake plots three Koch curves around the equilateral triangle with
// base a→b. The third vertex lies on the side of a→b opposite to the Koch
// bumps, so every bump points outward.
func Snowflake(dst raster.Sink, a, b vec.Vec2, n int, c color.RGBA) {
	third := SnowflakeVertex(a, b)
	Koch(dst, a, b, n, c)
	Koch(dst, b, third, n, c)
	Koch(dst, third, a, n, c)
}

// SnowflakeVertex returns the third corner of the snowflake's base triangle.
func SnowflakeVertex(a, b vec.Vec2) vec.Vec2 {
	return a.Add(rotate(b.Sub(a), -math.Pi/3))
}

func rotate(v vec.Vec2, theta float64) vec.Vec2 {
	sin, cos := math.Sincos(theta)
	return vec.Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}
