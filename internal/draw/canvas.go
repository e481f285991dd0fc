package draw

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// It stays under the typical 1500 byte MTU for smooth SSH transmission.
const maxChunkSize = 1400

// Canvas is a half-block pixel buffer: every terminal cell holds two
// vertically stacked pixels. Drawing happens in view coordinates, which are
// scaled to the terminal size on every call.
type Canvas struct {
	cols, rows int
	pixels     []bool // [y*cols + x], y in sub-pixels
	drawn      []bool // cells written last frame: [row*cols + col]

	viewW, viewH float64 // view size, height in sub-pixels
	sx, sy       float64 // pixels per view unit

	// 0-based terminal offset of the canvas' top-left cell.
	offCol, offRow int

	out strings.Builder
}

// NewScaledCanvas creates a cols x rows canvas showing a viewW x viewH view.
func NewScaledCanvas(cols, rows int, viewW, viewH float64) *Canvas {
	c := &Canvas{viewW: viewW, viewH: viewH}
	c.Resize(cols, rows)
	return c
}

// Resize changes the terminal size, keeping the view. Buffers are only
// reallocated when the size actually changes.
func (c *Canvas) Resize(cols, rows int) {
	if cols != c.cols || rows != c.rows || c.pixels == nil {
		c.cols, c.rows = cols, rows
		c.pixels = make([]bool, 2*rows*cols)
		c.drawn = make([]bool, rows*cols)
	}
	c.sx = float64(cols) / c.viewW
	c.sy = float64(2*rows) / c.viewH
}

// SetOffset places the canvas' top-left cell at the 1-based terminal
// position (col+1, row+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offCol, c.offRow = col, row
}

func (c *Canvas) OffsetCol() int { return c.offCol }
func (c *Canvas) OffsetRow() int { return c.offRow }

// TerminalWidth returns the canvas width in columns.
func (c *Canvas) TerminalWidth() int { return c.cols }

// TerminalHeight returns the canvas height in rows.
func (c *Canvas) TerminalHeight() int { return c.rows }

// Clear unsets every pixel.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw forgets which cells were written last frame. Call it after the
// terminal was cleared.
func (c *Canvas) ForceRedraw() {
	clear(c.drawn)
}

// MarkTextDirty records that n cells starting at the 1-based canvas position
// (col, row) were overwritten with text, so the next Render blanks them if
// no pixel covers them.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	r := row - 1
	if r < 0 || r >= c.rows {
		return
	}
	for x := max(col-1, 0); x < min(col-1+n, c.cols); x++ {
		c.drawn[r*c.cols+x] = true
	}
}

func (c *Canvas) set(x, y int) {
	if x >= 0 && x < c.cols && y >= 0 && y < 2*c.rows {
		c.pixels[y*c.cols+x] = true
	}
}

func (c *Canvas) toPixel(p Point) (int, int) {
	return int(math.Round(p.X * c.sx)), int(math.Round(p.Y * c.sy))
}

// Plot sets the pixel under a view point.
func (c *Canvas) Plot(p Point) {
	c.set(c.toPixel(p))
}

// DrawLine draws a Bresenham line between two view points.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x, y := c.toPixel(p1)
	x2, y2 := c.toPixel(p2)

	dx, dy := abs(x2-x), -abs(y2-y)
	sx, sy := 1, 1
	if x > x2 {
		sx = -1
	}
	if y > y2 {
		sy = -1
	}

	for err := dx + dy; ; {
		c.set(x, y)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// DrawRect draws the axis-aligned rectangle with the given view center and
// half extents, outlined or filled. A rectangle smaller than a pixel still
// sets one.
func (c *Canvas) DrawRect(cx, cy, hw, hh float64, filled bool) {
	x0, y0 := c.toPixel(Point{X: cx - hw, Y: cy - hh})
	x1, y1 := c.toPixel(Point{X: cx + hw, Y: cy + hh})

	for y := y0; y <= y1; y++ {
		if filled || y == y0 || y == y1 {
			for x := x0; x <= x1; x++ {
				c.set(x, y)
			}
			continue
		}
		c.set(x0, y)
		c.set(x1, y)
	}
}

// Render writes the set cells as half-block characters, plus a blank for
// every cell that was written last frame and is empty now. Runs of adjacent
// cells share one cursor move.
func (c *Canvas) Render(w io.Writer) {
	c.out.Reset()

	for row := range c.rows {
		top := c.pixels[2*row*c.cols:]
		bottom := c.pixels[(2*row+1)*c.cols:]
		next := -1 // column the cursor sits at after the last write

		for col := range c.cols {
			cell := row*c.cols + col
			var ch rune
			switch {
			case top[col] && bottom[col]:
				ch = BlockFull
			case top[col]:
				ch = BlockUpperHalf
			case bottom[col]:
				ch = BlockLowerHalf
			case c.drawn[cell]:
				ch = ' '
			default:
				continue
			}
			c.drawn[cell] = ch != ' '

			if col != next {
				fmt.Fprintf(&c.out, "\033[%d;%dH", row+1+c.offRow, col+1+c.offCol)
			}
			c.out.WriteRune(ch)
			next = col + 1
		}
	}

	_ = writeChunked(w, c.out.String())
}

// RenderBorder frames the canvas when it is offset from the terminal edge:
// horizontal bars need a row offset, vertical bars a column offset, and
// corners need both.
func (c *Canvas) RenderBorder(w io.Writer) {
	var b strings.Builder
	left, right := c.offCol, c.offCol+c.cols+1
	top, bottom := c.offRow, c.offRow+c.rows+1
	bar := strings.Repeat("─", c.cols)

	switch {
	case top >= 1 && left >= 1:
		fmt.Fprintf(&b, "\033[%d;%dH┌%s┐", top, left, bar)
		fmt.Fprintf(&b, "\033[%d;%dH└%s┘", bottom, left, bar)
	case top >= 1:
		fmt.Fprintf(&b, "\033[%d;%dH%s", top, left+1, bar)
		fmt.Fprintf(&b, "\033[%d;%dH%s", bottom, left+1, bar)
	}
	if left >= 1 {
		for row := top + 1; row < bottom; row++ {
			fmt.Fprintf(&b, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	_ = writeChunked(w, b.String())
}

func writeChunked(w io.Writer, data string) error {
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := io.WriteString(w, data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}
