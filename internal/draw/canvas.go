// Package draw renders world-space geometry to the terminal using half-block
// characters, giving 2x vertical resolution per character cell.
package draw

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Point is a 2D world-space coordinate.
type Point struct {
	X, Y float64
}

// View is the world-space rectangle mapped onto the canvas. Y grows upward
// in world space and is flipped during projection.
type View struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Width returns the horizontal extent of the view.
func (v View) Width() float64 { return v.MaxX - v.MinX }

// Height returns the vertical extent of the view.
func (v View) Height() float64 { return v.MaxY - v.MinY }

// Canvas is a monochrome pixel buffer projected from a world-space view.
// Fit sizes it to the terminal while preserving the view's aspect ratio,
// centering the drawable region; areas outside stay untouched.
type Canvas struct {
	view View

	cols, rows int // drawable character cells
	pixH       int // rows * 2 sub-pixels
	offCol     int // centering offset in terminal columns
	offRow     int // centering offset in terminal rows
	pixels     []bool

	// reusable buffers for the hot path
	renderBuf       strings.Builder
	intersectionBuf []float64
}

// cellAspect approximates a terminal cell as twice as tall as it is wide,
// which makes half-block sub-pixels roughly square.
const cellAspect = 2.0

// NewCanvas creates a canvas for the given view, sized for the terminal.
func NewCanvas(view View, termWidth, termHeight int) *Canvas {
	c := &Canvas{view: view}
	c.Fit(termWidth, termHeight)
	return c
}

// Fit resizes the drawable region to the largest centered rectangle of the
// terminal that matches the view's aspect ratio.
func (c *Canvas) Fit(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}

	// aspect in cells: world width per cell column vs. height per cell row
	aspect := c.view.Width() / c.view.Height() * cellAspect
	cols := termWidth
	rows := int(float64(cols) / aspect)
	if rows > termHeight {
		rows = termHeight
		cols = int(float64(rows) * aspect)
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	if cols != c.cols || rows != c.rows {
		c.cols = cols
		c.rows = rows
		c.pixH = rows * 2
		c.pixels = make([]bool, c.pixH*cols)
	}
	c.offCol = (termWidth - cols) / 2
	c.offRow = (termHeight - rows) / 2
}

// Cols returns the drawable width in character cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the drawable height in character cells.
func (c *Canvas) Rows() int { return c.rows }

// OffsetCol returns the centering column offset.
func (c *Canvas) OffsetCol() int { return c.offCol }

// OffsetRow returns the centering row offset.
func (c *Canvas) OffsetRow() int { return c.offRow }

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// project maps a world coordinate to sub-pixel space.
func (c *Canvas) project(x, y float64) (px, py float64) {
	px = (x - c.view.MinX) / c.view.Width() * float64(c.cols)
	py = (c.view.MaxY - y) / c.view.Height() * float64(c.pixH)
	return px, py
}

// setPixel sets a sub-pixel, ignoring out-of-range coordinates.
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.pixH {
		c.pixels[y*c.cols+x] = true
	}
}

// Line draws a world-space line using Bresenham's algorithm.
func (c *Canvas) Line(p1, p2 Point) {
	fx1, fy1 := c.project(p1.X, p1.Y)
	fx2, fy2 := c.project(p2.X, p2.Y)
	x1, y1 := int(math.Round(fx1)), int(math.Round(fy1))
	x2, y2 := int(math.Round(fx2)), int(math.Round(fy2))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Rect strokes the outline of a world-space rectangle.
func (c *Canvas) Rect(min, max Point) {
	c.Line(Point{min.X, min.Y}, Point{max.X, min.Y})
	c.Line(Point{max.X, min.Y}, Point{max.X, max.Y})
	c.Line(Point{max.X, max.Y}, Point{min.X, max.Y})
	c.Line(Point{min.X, max.Y}, Point{min.X, min.Y})
}

// FillTriangle fills a world-space triangle using scanline rasterization.
func (c *Canvas) FillTriangle(a, b, d Point) {
	var px, py [3]float64
	px[0], py[0] = c.project(a.X, a.Y)
	px[1], py[1] = c.project(b.X, b.Y)
	px[2], py[2] = c.project(d.X, d.Y)

	minY, maxY := py[0], py[0]
	for _, y := range py[1:] {
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	yStart := int(math.Floor(minY))
	yEnd := int(math.Ceil(maxY))

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		xs := c.intersectionBuf[:0]
		for i := 0; i < 3; i++ {
			j := (i + 1) % 3
			y1, y2 := py[i], py[j]
			if (y1 <= scanY && y2 > scanY) || (y2 <= scanY && y1 > scanY) {
				t := (scanY - y1) / (y2 - y1)
				xs = append(xs, px[i]+t*(px[j]-px[i]))
			}
		}
		c.intersectionBuf = xs

		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(math.Ceil(xs[i] - 0.5))
			x1 := int(math.Floor(xs[i+1] - 0.5))
			for x := x0; x <= x1; x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// Render writes the canvas to w using half-block characters, skipping empty
// cells. Output is positioned with ANSI cursor moves so only lit cells cost
// bandwidth. Returns the first write error.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.cols * c.rows * 4)

	for row := 0; row < c.rows; row++ {
		topOffset := row * 2 * c.cols
		bottomOffset := topOffset + c.cols

		for col := 0; col < c.cols; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue
			}
			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1+c.offRow, col+1+c.offCol, ch)
		}
	}

	return writeChunked(w, c.renderBuf.String())
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
