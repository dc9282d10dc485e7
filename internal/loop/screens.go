package loop

import (
	"fmt"

	"github.com/tomz197/asteroidy/internal/draw"
)

const controlsHint = "W/↑ thrust  A/D ←/→ turn  SPACE fire  Q quit"

// drawHUD writes the rocket counter and the controls hint over the canvas.
func drawHUD(cw *draw.ChunkWriter, canvas *draw.Canvas, s *Session) {
	cw.WriteAt(2, 1, fmt.Sprintf("Rockets: %d", len(s.Player.Projectiles)))

	width := canvas.TerminalWidth()
	if hintLen := len([]rune(controlsHint)); hintLen+2 <= width {
		cw.WriteAt((width-hintLen)/2+1, canvas.TerminalHeight(), controlsHint)
	}
}
