package board

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func tackOf(t *testing.T, h *Harness, tt TileType) (Entity, *Tack) {
	t.Helper()
	e, ok := h.TackOf(tt)
	if !ok {
		t.Fatalf("no tack on %v", tt)
	}
	tk, _ := h.Board.World().Tacks.Get(e)
	return e, tk
}

// emptyBoardSpot is on the board and not within half a cell of any level 0 tack.
var emptyBoardSpot = GridIndexToWorld(GridIndex{Col: 5, Row: 8})

func TestThread_StartFromVictim(t *testing.T) {
	h := NewHarness(0)
	v0, tk := tackOf(t, h, Victim(0))
	h.ClickTack(v0)

	e, th, ok := h.Board.World().LooseThread()
	if !ok {
		t.Fatal("no loose thread after clicking the victim")
	}
	if th.Group != 0 || th.Index != 1 || th.Tacks[0] != v0 {
		t.Fatalf("loose thread %+v", th)
	}
	if tk.End || !tk.Used {
		t.Fatalf("origin tack end=%v used=%v", tk.End, tk.Used)
	}
	if h.Board.State().ThreadCount[0] != 1 {
		t.Fatalf("count = %d", h.Board.State().ThreadCount[0])
	}

	// The loose thread follows the cursor.
	h.Move(emptyBoardSpot)
	tr, _ := h.Board.World().Transforms.Get(e)
	p, _ := h.Board.World().Position(v0)
	if want := r2.Norm(r2.Sub(emptyBoardSpot, p)); tr.Length < want-1e-6 || tr.Length > want+1e-6 {
		t.Fatalf("loose length = %f, want %f", tr.Length, want)
	}
}

func TestThread_SuspectCannotStart(t *testing.T) {
	h := NewHarness(0)
	c0, _ := tackOf(t, h, Suspect(0))
	h.ClickTack(c0)
	if _, _, ok := h.Board.World().LooseThread(); ok {
		t.Fatal("suspect tack started a thread")
	}
	if h.Board.State().ThreadCount != [caseGroups]int{} {
		t.Fatalf("thread counts %v after clicking a suspect", h.Board.State().ThreadCount)
	}
}

func TestThread_CompleteOnSuspect(t *testing.T) {
	h := NewHarness(0)
	v0, _ := tackOf(t, h, Victim(0))
	c0, ctk := tackOf(t, h, Suspect(0))
	h.ClickTack(v0)
	h.ClickTack(c0)

	w := h.Board.World()
	if _, _, ok := w.LooseThread(); ok {
		t.Fatal("suspect must not chain a new thread")
	}
	if ctk.Group != 0 || !ctk.End || !ctk.Used {
		t.Fatalf("suspect tack after completion %+v", ctk)
	}
	if ctk.Color != TackColor(GroupCase0) {
		t.Fatalf("suspect tack colour %v, want the case 0 colour", ctk.Color)
	}
	var found bool
	for _, e := range w.CompletedThreads() {
		th, _ := w.Threads.Get(e)
		if th.Group == 0 && th.Tacks[0] == v0 && th.Tacks[1] == c0 {
			found = true
		}
	}
	if !found {
		t.Fatal("completed thread V(0) -> C(0) missing")
	}
	if n := h.Board.Log().Count(CatThread, "complete"); n != 1 {
		t.Fatalf("complete events = %d", n)
	}
}

func TestThread_ChainFromEvidence(t *testing.T) {
	h := NewHarness(0)
	tile, _ := h.TileOf(TileI)
	if !h.DragTileTo(tile, GridIndex{Col: 12, Row: 6}) {
		t.Fatal("could not place the swab")
	}
	v0, _ := tackOf(t, h, Victim(0))
	i, itk := tackOf(t, h, TileI)
	h.ClickTack(v0)
	h.ClickTack(i)

	_, th, ok := h.Board.World().LooseThread()
	if !ok {
		t.Fatal("press on evidence did not chain a new thread")
	}
	if th.Tacks[0] != i || th.Index != 2 || th.Group != 0 {
		t.Fatalf("chained thread %+v", th)
	}
	if itk.Group != 0 || itk.End || !itk.Used {
		t.Fatalf("evidence tack %+v", itk)
	}
	if h.Board.State().ThreadCount[0] != 2 {
		t.Fatalf("count = %d, want 2", h.Board.State().ThreadCount[0])
	}
}

func TestThread_AbandonRestoresOrigin(t *testing.T) {
	h := NewHarness(0)
	v0, tk := tackOf(t, h, Victim(0))
	h.ClickTack(v0)
	h.RightClick(emptyBoardSpot)

	if _, _, ok := h.Board.World().LooseThread(); ok {
		t.Fatal("loose thread survived a click on empty board")
	}
	if !tk.End || tk.Used {
		t.Fatalf("origin after abandon end=%v used=%v", tk.End, tk.Used)
	}
	if h.Board.State().ThreadCount[0] != 0 {
		t.Fatalf("count = %d", h.Board.State().ThreadCount[0])
	}
}

func TestThread_PressOnOtherTackKeeps(t *testing.T) {
	h := NewHarness(0)
	v0, _ := tackOf(t, h, Victim(0))
	v1, _ := tackOf(t, h, Victim(1))
	h.ClickTack(v0)

	p, _ := h.Board.World().Position(v1)
	h.Move(p)
	h.PressRight()
	if _, _, ok := h.Board.World().LooseThread(); !ok {
		t.Fatal("press on another victim dropped the loose thread")
	}
	h.ReleaseRight()
	if _, _, ok := h.Board.World().LooseThread(); ok {
		t.Fatal("release on an invalid tack kept the loose thread")
	}
}

func TestThread_OffBoardClickAbandons(t *testing.T) {
	h := NewHarness(0)
	v0, tk := tackOf(t, h, Victim(0))
	p, _ := h.Board.World().Position(v0)
	h.Move(p)
	h.PressRight()
	h.Move(r2.Vec{X: 600, Y: 0})
	h.ReleaseRight()

	if _, _, ok := h.Board.World().LooseThread(); ok {
		t.Fatal("release off the board kept the loose thread")
	}
	if h.Board.State().ThreadCount[0] != 0 {
		t.Fatalf("count = %d, want 0", h.Board.State().ThreadCount[0])
	}
	if !tk.End || tk.Used {
		t.Fatalf("origin after abandon end=%v used=%v", tk.End, tk.Used)
	}
}

func TestThread_PressOnUsedTackAbandons(t *testing.T) {
	h := NewHarness(0)
	if err := h.Connect(Victim(1), Suspect(1)); err != nil {
		t.Fatal(err)
	}
	v0, tk := tackOf(t, h, Victim(0))
	c1, _ := tackOf(t, h, Suspect(1))
	h.ClickTack(v0)

	p, _ := h.Board.World().Position(c1)
	h.Move(p)
	h.PressRight()
	if _, _, ok := h.Board.World().LooseThread(); ok {
		t.Fatal("press on a used tack kept the loose thread")
	}
	if h.Board.State().ThreadCount[0] != 0 || !tk.End || tk.Used {
		t.Fatalf("count0=%d origin end=%v used=%v", h.Board.State().ThreadCount[0], tk.End, tk.Used)
	}
}

func TestThread_CompleteOnUsedTackRejected(t *testing.T) {
	h := NewHarness(0)
	if err := h.Connect(Victim(0), Suspect(0)); err != nil {
		t.Fatal(err)
	}
	v1, _ := tackOf(t, h, Victim(1))
	c0, ctk := tackOf(t, h, Suspect(0))

	pv, _ := h.Board.World().Position(v1)
	h.Move(pv)
	h.PressRight()
	if h.Board.State().ThreadColliding {
		t.Fatal("fresh thread reported as colliding")
	}
	// Jump to the suspect and release in one frame so only Used can refuse it.
	pc, _ := h.Board.World().Position(c0)
	h.Frame(func(in *Input) {
		x, y := WorldToScreen(pc)
		in.Cursor = r2.Vec{X: x, Y: y}
		in.HasCursor = true
		in.RightReleased = true
	})

	if ctk.Group != GroupCase0 || !ctk.Used {
		t.Fatalf("used suspect tack changed to %+v", ctk)
	}
	if h.Board.State().ThreadCount[1] != 0 {
		t.Fatalf("count1 = %d, want 0", h.Board.State().ThreadCount[1])
	}
	if n := h.Board.Log().Count(CatThread, "complete"); n != 1 {
		t.Fatalf("complete events = %d, want 1", n)
	}
	if _, _, ok := h.Board.World().LooseThread(); ok {
		t.Fatal("loose thread left after the rejected completion")
	}
}

func TestThread_NoStartFromNeutralOrUsedEnd(t *testing.T) {
	h := NewHarness(0)
	tile, _ := h.TileOf(TileI)
	if !h.DragTileTo(tile, GridIndex{Col: 12, Row: 6}) {
		t.Fatal("could not place the swab")
	}
	if err := h.Connect(Victim(0), TileI, Suspect(0)); err != nil {
		t.Fatal(err)
	}
	before := h.Board.State().ThreadCount

	// V(0) has handed the chain end on. O's tack stays neutral once placed.
	v0, vtk := tackOf(t, h, Victim(0))
	if vtk.End {
		t.Fatal("victim still marked as chain end")
	}
	h.ClickTack(v0)

	o, _ := h.TileOf(TileO)
	if !h.DragTileTo(o, GridIndex{Col: 5, Row: 2}) {
		t.Fatal("could not place the print")
	}
	otack, otk := tackOf(t, h, TileO)
	if otk.Group != GroupNeutral {
		t.Fatalf("print tack group %d, want neutral", otk.Group)
	}
	h.ClickTack(otack)

	if _, _, ok := h.Board.World().LooseThread(); ok {
		t.Fatal("a thread started from a tack that is not a chain end")
	}
	if got := h.Board.State().ThreadCount; got != before {
		t.Fatalf("thread counts %v, want %v", got, before)
	}
	if n := h.Board.Log().Count(CatThread, "start"); n != 2 {
		t.Fatalf("start events = %d, want 2", n)
	}
}

func TestThread_CollisionBlocksCompletion(t *testing.T) {
	h := NewHarness(0)
	v0, _ := tackOf(t, h, Victim(0))
	c0, ctk := tackOf(t, h, Suspect(0))
	h.ClickTack(v0)
	h.Board.State().ThreadColliding = true
	p, _ := h.Board.World().Position(c0)
	h.Frame(func(in *Input) {
		x, y := WorldToScreen(p)
		in.Cursor = r2.Vec{X: x, Y: y}
		in.HasCursor = true
		in.RightPressed = true
	})
	if ctk.Used {
		t.Fatal("thread completed while colliding")
	}
}

func TestThread_DetachNewestOnly(t *testing.T) {
	h := NewHarness(0)
	tile, _ := h.TileOf(TileI)
	if !h.DragTileTo(tile, GridIndex{Col: 12, Row: 6}) {
		t.Fatal("could not place the swab")
	}
	v0, vtk := tackOf(t, h, Victim(0))
	i, itk := tackOf(t, h, TileI)
	c0, ctk := tackOf(t, h, Suspect(0))
	if err := h.Connect(Victim(0), TileI, Suspect(0)); err != nil {
		t.Fatal(err)
	}
	if h.Board.State().ThreadCount[0] != 2 {
		t.Fatalf("count = %d, want 2", h.Board.State().ThreadCount[0])
	}

	// Thread #1 (V -> I) is not the newest; shift-clicking V does nothing.
	pv, _ := h.Board.World().Position(v0)
	h.ShiftClick(pv)
	if h.Board.State().ThreadCount[0] != 2 {
		t.Fatal("an older thread was detached")
	}

	pc, _ := h.Board.World().Position(c0)
	h.ShiftClick(pc)
	if h.Board.State().ThreadCount[0] != 1 {
		t.Fatalf("count after detach = %d, want 1", h.Board.State().ThreadCount[0])
	}
	if ctk.Group != GroupNeutral || ctk.End || ctk.Used {
		t.Fatalf("tail tack after detach %+v", ctk)
	}
	if !itk.End || itk.Group != 0 {
		t.Fatalf("head tack after detach %+v", itk)
	}

	pi, _ := h.Board.World().Position(i)
	h.ShiftClick(pi)
	if h.Board.State().ThreadCount[0] != 0 {
		t.Fatalf("count after second detach = %d", h.Board.State().ThreadCount[0])
	}
	if itk.Group != GroupNeutral || !vtk.End {
		t.Fatalf("after unravelling: evidence %+v victim %+v", itk, vtk)
	}
}
