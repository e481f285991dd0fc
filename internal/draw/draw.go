// Package draw renders to ANSI terminals: a half-block pixel canvas and a
// chunked text writer.
package draw

// Point represents a 2D coordinate in logical canvas space.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ANSI colors used for text overlays.
const (
	ColorReset      = "\033[0m"
	ColorRed        = "\033[31m"
	ColorYellow     = "\033[33m"
	ColorBrightCyan = "\033[96m"
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
