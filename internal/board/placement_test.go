package board

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

type recordSounder struct {
	played []Sound
}

func (r *recordSounder) Play(s Sound) { r.played = append(r.played, s) }

func (r *recordSounder) last() (Sound, bool) {
	if len(r.played) == 0 {
		return 0, false
	}
	return r.played[len(r.played)-1], true
}

func tileAt(t *testing.T, h *Harness, tt TileType) (Entity, r2.Vec) {
	t.Helper()
	e, ok := h.TileOf(tt)
	if !ok {
		t.Fatalf("no %v tile", tt)
	}
	p, _ := h.Board.World().Position(e)
	return e, p
}

func TestPickup_ImmovableIgnored(t *testing.T) {
	h := NewHarness(0)
	for _, tt := range []TileType{Victim(0), Suspect(1), Junk(2)} {
		e, p := tileAt(t, h, tt)
		cells := ChildrenOf(h.Board.World(), e, h.Board.World().Tilettes)
		grab, _ := h.Board.World().Position(cells[0])
		h.Move(grab)
		h.PressLeft()
		if h.Board.World().Held.Len() != 0 {
			t.Fatalf("%v became held", tt)
		}
		h.Move(r2.Add(grab, r2.Vec{X: 80}))
		h.ReleaseLeft()
		if got, _ := h.Board.World().Position(e); got != p {
			t.Fatalf("%v moved from %v to %v", tt, p, got)
		}
	}
}

func TestDrop_SnapsOnBoard(t *testing.T) {
	snd := &recordSounder{}
	h := NewHarness(0, WithSounder(snd))
	e, _ := tileAt(t, h, TileI)
	got := h.DragTile(e, r2.Vec{X: -195, Y: 118})
	if got != (r2.Vec{X: -200, Y: 120}) {
		t.Fatalf("dropped at %v, want snapped (-200,120)", got)
	}
	if h.Board.World().Held.Len() != 0 {
		t.Fatal("Held not removed on drop")
	}
	if s, _ := snd.last(); s != SoundDrop {
		t.Fatalf("last cue = %v, want SoundDrop", s)
	}
	if h.Board.Log().Count(CatTile, "drop") != 1 {
		t.Fatal("drop was not logged")
	}
}

func TestDrop_Reverts(t *testing.T) {
	cases := []struct {
		name   string
		to     r2.Vec
		reason string
	}{
		{"workbench", r2.Vec{X: -200, Y: -300}, "workbench"},
		{"off the board", r2.Vec{X: 600, Y: 100}, "off the board"},
		// Index row 11 leaves the swab's lower cells below the grid.
		{"hanging off the grid", GridIndexToWorld(GridIndex{Col: 12, Row: 11}), "off the grid"},
		// Victim 0 covers cells (10..12, 3..4).
		{"overlapping a victim", GridIndexToWorld(GridIndex{Col: 12, Row: 2}), "overlap"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			snd := &recordSounder{}
			h := NewHarness(0, WithSounder(snd))
			e, origin := tileAt(t, h, TileI)
			if got := h.DragTile(e, c.to); got != origin {
				t.Fatalf("tile at %v, want reverted to %v", got, origin)
			}
			if h.Board.World().Held.Len() != 0 {
				t.Fatal("Held not removed on revert")
			}
			if s, _ := snd.last(); s != SoundReject {
				t.Fatalf("last cue = %v, want SoundReject", s)
			}
			revs := h.Board.Log().Filter(CatTile, "revert")
			if len(revs) != 1 || revs[0].Value != "I: "+c.reason {
				t.Fatalf("revert log = %v", revs)
			}
		})
	}
}

func TestDrop_RevertsWhileThreadsCross(t *testing.T) {
	h := NewHarness(0)
	v1, _ := tackOf(t, h, Victim(1))
	h.ClickTack(v1)

	e, origin := tileAt(t, h, TileO)
	w := h.Board.World()
	cells := ChildrenOf(w, e, w.Tilettes)
	grab, _ := w.Position(cells[0])
	h.Move(grab)
	h.PressLeft()

	// The loose V(1) thread follows the cursor across the junk thread
	// between links 5 and 6.
	h.Move(r2.Add(GridIndexToWorld(GridIndex{Col: 20, Row: 0}), r2.Vec{X: -60, Y: 60}))
	if !h.Board.State().ThreadColliding || len(h.Board.Collisions()) == 0 {
		t.Fatal("loose thread over the junk thread not detected")
	}
	h.ReleaseLeft()

	if got, _ := w.Position(e); got != origin {
		t.Fatalf("tile dropped while threads crossed, at %v", got)
	}
	revs := h.Board.Log().Filter(CatTile, "revert")
	if len(revs) != 1 || revs[0].Value != "O: threads colliding" {
		t.Fatalf("revert log = %v", revs)
	}
}

func TestDrop_OverlapBetweenEvidence(t *testing.T) {
	h := NewHarness(0)
	i, _ := tileAt(t, h, TileI)
	o, oOrigin := tileAt(t, h, TileO)
	if !h.DragTileTo(i, GridIndex{Col: 12, Row: 6}) {
		t.Fatal("swab rejected on a free spot")
	}
	if h.DragTileTo(o, GridIndex{Col: 12, Row: 6}) {
		t.Fatal("print accepted on top of the swab")
	}
	if got, _ := h.Board.World().Position(o); got != oOrigin {
		t.Fatalf("print at %v, want %v", got, oOrigin)
	}
	if !h.DragTileTo(o, GridIndex{Col: 13, Row: 6}) {
		t.Fatal("print rejected next to the swab")
	}
}

func TestDrag_TileFollowsCursor(t *testing.T) {
	h := NewHarness(0)
	e, centre := tileAt(t, h, TileL)
	w := h.Board.World()
	cells := ChildrenOf(w, e, w.Tilettes)
	grab, _ := w.Position(cells[0])

	h.Move(grab)
	h.PressLeft()
	h.Move(r2.Add(grab, r2.Vec{X: 100, Y: 100}))
	got, _ := w.Position(e)
	want := r2.Add(centre, r2.Vec{X: 100, Y: 100})
	if d := r2.Norm(r2.Sub(got, want)); d > 1e-6 {
		t.Fatalf("held tile at %v, want %v", got, want)
	}
	if !w.Held.Has(e) {
		t.Fatal("tile not held while dragging")
	}
}
