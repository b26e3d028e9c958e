package game

import (
	"fmt"
	"io"

	"github.com/perihelion/salvage/internal/draw"
)

// drawOverlay writes the text layer on top of the rendered canvas.
func drawOverlay(s *Session, w io.Writer, canvas *draw.Canvas) {
	centerX := canvas.OffsetCol() + canvas.Cols()/2
	centerY := canvas.OffsetRow() + canvas.Rows()/2

	switch s.Phase {
	case PhaseStart:
		drawTitleScreen(w, centerX, centerY)
	case PhasePlaying:
		drawHUD(s, w, canvas)
	case PhaseGameOver:
		drawGameOverScreen(s, w, centerX, centerY)
	}
}

// drawTitleScreen draws the title and control summary.
func drawTitleScreen(w io.Writer, centerX, centerY int) {
	title := "S A L V A G E"
	draw.WriteAt(w, centerX-len(title)/2, centerY-2, title)

	subtitle := "Press ENTER to launch"
	draw.WriteAt(w, centerX-len(subtitle)/2, centerY+1, subtitle)

	controls := "Z/X yaw, Arrows translate, SPACE grab asteroids, Q to quit"
	draw.WriteAt(w, centerX-len(controls)/2, centerY+4, controls)

	hint := "Grab asteroids for fuel. Junk is fatal. Thrusters burn fuel."
	draw.WriteAt(w, centerX-len(hint)/2, centerY+5, hint)
}

// drawHUD draws the in-game readouts above the play area.
func drawHUD(s *Session, w io.Writer, canvas *draw.Canvas) {
	row := canvas.OffsetRow()
	if row < 1 {
		row = 1
	}
	col := canvas.OffsetCol() + 2

	fuelText := fmt.Sprintf("Fuel: %3.0f%%", s.Fuel*100)
	if s.Fuel > FullFuelDisplay {
		fuelText = "Fuel: FULL"
	}
	draw.WriteAt(w, col, row, fuelText)

	captured := 0
	for _, a := range s.Asteroids {
		if !a.Active {
			captured++
		}
	}
	capturedText := fmt.Sprintf("Captured: %d", captured)
	draw.WriteAt(w, canvas.OffsetCol()+canvas.Cols()-len(capturedText)-1, row, capturedText)
}

// drawGameOverScreen draws the terminal failure screen.
func drawGameOverScreen(s *Session, w io.Writer, centerX, centerY int) {
	var title string
	if s.Fuel < 0 {
		title = "OUT OF FUEL"
	} else {
		title = "HULL BREACH"
	}
	draw.WriteAt(w, centerX-len(title)/2, centerY-2, title)

	captured := 0
	for _, a := range s.Asteroids {
		if !a.Active {
			captured++
		}
	}
	score := fmt.Sprintf("Asteroids captured: %d", captured)
	draw.WriteAt(w, centerX-len(score)/2, centerY, score)

	prompt := "Press ENTER to relaunch, Q to quit"
	draw.WriteAt(w, centerX-len(prompt)/2, centerY+2, prompt)
}
