package board

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// harnessWindow is the device surface a Harness pretends to own. It matches
// the logical view so raw and world coordinates differ only by the flip.
var harnessWindow = Window{Width: ViewWidth, Height: ViewHeight}

// Harness drives a Board with scripted frames. It mirrors what the game
// loop feeds Update, with no ebiten dependency, and is used by tests and
// the headless runner.
type Harness struct {
	Board *Board

	cursor    r2.Vec
	hasCursor bool
}

// NewHarness builds a board, loads level and runs the frames needed for
// junk threads to be strung.
func NewHarness(level int, opts ...Option) *Harness {
	h := &Harness{Board: New(opts...)}
	h.Board.SelectLevel(level)
	h.Step(2)
	return h
}

func (h *Harness) input() Input {
	raw := r2.Vec{}
	if h.hasCursor {
		x, y := WorldToScreen(h.cursor)
		raw = r2.Vec{X: x, Y: y}
	}
	return Input{Window: harnessWindow, Cursor: raw, HasCursor: h.hasCursor}
}

// Step runs n frames with no button activity.
func (h *Harness) Step(n int) {
	for i := 0; i < n; i++ {
		h.Board.Update(h.input())
	}
}

// Frame runs one frame with the given button edges applied.
func (h *Harness) Frame(edit func(*Input)) {
	in := h.input()
	if edit != nil {
		edit(&in)
	}
	h.Board.Update(in)
}

// Move puts the cursor at world point p and runs one frame.
func (h *Harness) Move(p r2.Vec) {
	h.cursor = p
	h.hasCursor = true
	h.Step(1)
}

// Leave takes the cursor out of the window and runs one frame.
func (h *Harness) Leave() {
	h.hasCursor = false
	h.Step(1)
}

func (h *Harness) PressRight() { h.Frame(func(in *Input) { in.RightPressed = true }) }

func (h *Harness) ReleaseRight() { h.Frame(func(in *Input) { in.RightReleased = true }) }

func (h *Harness) PressLeft() { h.Frame(func(in *Input) { in.LeftPressed = true }) }

func (h *Harness) ReleaseLeft() { h.Frame(func(in *Input) { in.LeftReleased = true }) }

// ShiftClick presses the right button with shift held, then releases it.
func (h *Harness) ShiftClick(p r2.Vec) {
	h.Move(p)
	h.Frame(func(in *Input) {
		in.RightPressed = true
		in.Shift = true
	})
	h.Frame(func(in *Input) {
		in.RightReleased = true
		in.Shift = true
	})
}

// RightClick moves to p, presses and releases the right button.
func (h *Harness) RightClick(p r2.Vec) {
	h.Move(p)
	h.PressRight()
	h.ReleaseRight()
}

// ClickTack right-clicks the tack e where it currently sits.
func (h *Harness) ClickTack(e Entity) {
	p, ok := h.Board.World().Position(e)
	if !ok {
		return
	}
	h.RightClick(p)
}

// TackOf returns the first tack pinned to a tile of type t.
func (h *Harness) TackOf(t TileType) (Entity, bool) {
	w := h.Board.World()
	for _, e := range w.Tacks.All() {
		if tack, ok := w.Tacks.Get(e); ok && tack.TileType == t {
			return e, true
		}
	}
	return 0, false
}

// TileOf returns the first tile of type t.
func (h *Harness) TileOf(t TileType) (Entity, bool) {
	w := h.Board.World()
	for _, e := range w.Tiles.All() {
		if tile, ok := w.Tiles.Get(e); ok && tile.Type == t {
			return e, true
		}
	}
	return 0, false
}

// DragTile grabs tile by its first tilette and releases it so that the tile
// centre lands on to. It returns where the tile ended up.
func (h *Harness) DragTile(tile Entity, to r2.Vec) r2.Vec {
	w := h.Board.World()
	cells := ChildrenOf(w, tile, w.Tilettes)
	if len(cells) == 0 {
		return r2.Vec{}
	}
	grab, _ := w.Position(cells[0])
	centre, _ := w.Position(tile)
	offset := r2.Sub(centre, grab)

	h.Move(grab)
	h.PressLeft()
	h.Move(r2.Sub(to, offset))
	h.ReleaseLeft()
	p, _ := w.Position(tile)
	return p
}

// DragTileTo drags tile onto a grid index and reports whether it stayed.
func (h *Harness) DragTileTo(tile Entity, gi GridIndex) bool {
	want := GridIndexToWorld(gi)
	return h.DragTile(tile, want) == want
}

// Connect clicks the tacks of types in order, drawing a thread chain.
func (h *Harness) Connect(types ...TileType) error {
	for _, t := range types {
		e, ok := h.TackOf(t)
		if !ok {
			return fmt.Errorf("no tack on a %v tile", t)
		}
		h.ClickTack(e)
	}
	return nil
}

// TileMove is one evidence tile drag in a scripted solution.
type TileMove struct {
	Type TileType
	To   GridIndex
}

// Solution is a scripted walkthrough for one level.
type Solution struct {
	Moves   []TileMove
	Threads [][]TileType
}

var solutions = map[int]Solution{
	0: {
		Moves: []TileMove{
			{TileI, GridIndex{12, 6}},
			{TileO, GridIndex{13, 6}},
			{TileJ, GridIndex{18, 5}},
			{TileL, GridIndex{23, 8}},
		},
		Threads: [][]TileType{
			{Victim(0), TileI, TileO, Suspect(0)},
			{Victim(1), TileJ, Suspect(1)},
			{Victim(2), TileL, Suspect(2)},
		},
	},
}

// SolutionFor returns the scripted walkthrough of level, if one exists.
func SolutionFor(level int) (Solution, bool) {
	s, ok := solutions[level]
	return s, ok
}

// Play performs s on the harness board and requests a solve check.
func (h *Harness) Play(s Solution) (SolveResult, error) {
	for _, m := range s.Moves {
		tile, ok := h.TileOf(m.Type)
		if !ok {
			return SolveResult{}, fmt.Errorf("no %v tile on this level", m.Type)
		}
		if !h.DragTileTo(tile, m.To) {
			return SolveResult{}, fmt.Errorf("%v rejected at index (%d, %d)", m.Type, m.To.Col, m.To.Row)
		}
	}
	for _, chain := range s.Threads {
		if err := h.Connect(chain...); err != nil {
			return SolveResult{}, fmt.Errorf("connect: %w", err)
		}
	}
	h.Board.RequestSolve()
	h.Step(1)
	res := h.Board.State().Solve
	if res == nil {
		return SolveResult{}, fmt.Errorf("solve check did not run")
	}
	return *res, nil
}
