package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/Garsondee/No-Loose-Threads/internal/board"
)

// pollInput snapshots this frame's mouse and modifier state. The cursor is
// reported in layout pixels, so the window is the logical screen.
func pollInput() board.Input {
	cx, cy := ebiten.CursorPosition()
	inside := cx >= 0 && cy >= 0 && cx < screenW && cy < screenH
	return board.Input{
		Window:        board.Window{Width: board.ViewWidth, Height: board.ViewHeight},
		Cursor:        r2.Vec{X: float64(cx), Y: float64(cy)},
		HasCursor:     inside,
		LeftPressed:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		LeftReleased:  inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		RightPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		RightReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight),
		Shift:         ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight),
	}
}

// handleKeys maps keyboard shortcuts onto the same actions as the buttons.
func (g *Game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft), inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.do(actionPrev)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight), inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		g.do(actionNext)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.do(actionRestart)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.do(actionSolve)
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.do(actionSFX)
	case inpututil.IsKeyJustPressed(ebiten.KeyH), inpututil.IsKeyJustPressed(ebiten.KeyF1):
		g.showHelp = !g.showHelp
	}
	if g.cfg.Debug {
		g.handleDebugKeys()
	}
}

// handleButtons tracks hover and fires the button under a left press.
// Hovering the level arrows dismisses a verdict; hovering a case file
// dismisses a mistrial.
func (g *Game) handleButtons(in board.Input) {
	g.hover, g.caseOpen = -1, -1
	if !in.HasCursor {
		return
	}
	cursor := board.CursorToWorld(in.Cursor, in.Window)
	g.hover = buttonAt(g.buttons, cursor)
	g.caseOpen = caseFileAt(cursor)

	solve := g.board.State().Solve
	if g.hover >= 0 {
		if a := g.buttons[g.hover].action; a == actionPrev || a == actionNext {
			g.dismissed = solve
		}
	}
	if g.caseOpen >= 0 && solve != nil && !solve.Solved {
		g.dismissed = solve
	}

	if g.hover >= 0 && in.LeftPressed {
		g.do(g.buttons[g.hover].action)
	}
}

func (g *Game) hoveringHelp() bool {
	return g.hover >= 0 && g.buttons[g.hover].action == actionHelp
}

func (g *Game) do(a action) {
	st := g.board.State()
	switch a {
	case actionPrev:
		g.board.SelectLevel(st.Level - 1)
	case actionNext:
		g.board.SelectLevel(st.Level + 1)
	case actionRestart:
		g.board.SelectLevel(st.Level)
	case actionSolve:
		g.board.RequestSolve()
	case actionSFX:
		st.SFX = !st.SFX
		g.cfg.SFX = st.SFX
		g.log.Infof("sfx %v", st.SFX)
	case actionHelp:
		g.showHelp = !g.showHelp
	}
	if a != actionLevel && a != actionHelp && st.SFX && g.player != nil {
		g.player.Play(board.SoundTack)
	}
}
