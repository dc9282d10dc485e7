// Package draw renders polygons to a terminal using half-block characters.
package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// FitCanvas returns the largest terminal area that shows a logicalWidth x
// logicalHeight playfield without distortion, and the 0-based offsets that
// center it. Terminal rows hold two sub-pixels, so a cell is treated as 1x2.
func FitCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) (width, height, offsetCol, offsetRow int) {
	if termWidth <= 0 || termHeight <= 0 || logicalWidth <= 0 || logicalHeight <= 0 {
		return max(termWidth, 0), max(termHeight, 0), 0, 0
	}
	aspect := logicalWidth / logicalHeight

	width = termWidth
	height = int(float64(width) / aspect / 2)
	if height > termHeight {
		height = termHeight
		width = int(float64(height) * 2 * aspect)
	}
	width = max(width, 1)
	height = max(height, 1)

	offsetCol = (termWidth - width) / 2
	offsetRow = (termHeight - height) / 2
	return width, height, offsetCol, offsetRow
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
