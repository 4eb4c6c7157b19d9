package board

import (
	"testing"
)

func TestLoadLevel_SpawnsLayout(t *testing.T) {
	for level := 0; level < LevelCount; level++ {
		b := New()
		b.LoadLevel(level)
		w := b.World()
		layout := LevelLayout(level)

		if got := w.Tiles.Len(); got != len(layout) {
			t.Fatalf("level %d: %d tiles, want %d", level, got, len(layout))
		}
		if got := w.Tacks.Len(); got != len(layout) {
			t.Fatalf("level %d: %d tacks, want one per tile (%d)", level, got, len(layout))
		}
		cells := 0
		for _, p := range layout {
			cells += len(p.Type.Layout())
		}
		if got := w.Tilettes.Len(); got != cells {
			t.Fatalf("level %d: %d tilettes, want %d", level, got, cells)
		}
		for _, e := range w.Tiles.All() {
			tile, _ := w.Tiles.Get(e)
			if w.Immovable.Has(e) == tile.Type.Movable() {
				t.Fatalf("level %d: %v immovable=%v", level, tile.Type, w.Immovable.Has(e))
			}
		}
	}
}

func TestLoadLevel_TackFlags(t *testing.T) {
	b := New()
	b.LoadLevel(0)
	w := b.World()
	for _, e := range w.Tacks.All() {
		tk, _ := w.Tacks.Get(e)
		switch tk.TileType.Kind {
		case KindV:
			if !tk.End || tk.Group != tk.TileType.N {
				t.Fatalf("victim tack %v: end=%v group=%d", tk.TileType, tk.End, tk.Group)
			}
		case KindC:
			if !tk.Suspect || tk.End || tk.Group != GroupNeutral {
				t.Fatalf("suspect tack %v: %+v", tk.TileType, tk)
			}
		case KindW:
			if tk.Group != GroupJunk || tk.Links < 0 {
				t.Fatalf("junk tack %v: %+v", tk.TileType, tk)
			}
		default:
			if tk.Group != GroupNeutral || tk.Links != -1 {
				t.Fatalf("evidence tack %v: %+v", tk.TileType, tk)
			}
		}
		if tk.Used {
			t.Fatalf("%v tack used on a fresh level", tk.TileType)
		}
	}
}

func TestLoadLevel_TackOnChosenTilette(t *testing.T) {
	b := New()
	b.LoadLevel(0)
	w := b.World()
	h := &Harness{Board: b}
	e, ok := h.TackOf(Victim(1))
	if !ok {
		t.Fatal("no victim 1 tack")
	}
	ch, _ := w.Children.Get(e)
	want := TileOffset(Victim(1).Layout()[3])
	if ch.Offset != want {
		t.Fatalf("victim 1 tack offset = %v, want %v", ch.Offset, want)
	}
}

func TestJunkThreads_AppearFrameAfterLoad(t *testing.T) {
	b := New(WithLevel(0))
	in := Input{Window: harnessWindow}

	b.Update(in)
	if n := b.World().Threads.Len(); n != 0 {
		t.Fatalf("threads on the load frame = %d, want 0", n)
	}
	if b.Events().WaitForJunk.Len() != 1 {
		t.Fatal("loader did not queue the junk stringing event")
	}

	b.Update(in)
	// Links 1-2, 4-5 and 5-6 are consecutive.
	if n := b.World().Threads.Len(); n != 3 {
		t.Fatalf("junk threads = %d, want 3", n)
	}
	for _, e := range b.World().Threads.All() {
		th, _ := b.World().Threads.Get(e)
		if th.Group != GroupJunk || th.Index != -1 || len(th.Tacks) != 2 {
			t.Fatalf("junk thread %+v", th)
		}
	}
}

func TestLinkJunk_OnlyConsecutiveIDs(t *testing.T) {
	b := New()
	b.LoadLevel(2)
	w := b.World()
	for _, e := range w.Threads.All() {
		th, _ := w.Threads.Get(e)
		a, _ := w.Tacks.Get(th.Tacks[0])
		c, _ := w.Tacks.Get(th.Tacks[1])
		if d := a.Links - c.Links; d != 1 && d != -1 {
			t.Fatalf("junk thread joins links %d and %d", a.Links, c.Links)
		}
	}
}

func TestSelectLevel_ResetsState(t *testing.T) {
	h := NewHarness(0)
	v0, _ := h.TackOf(Victim(0))
	h.ClickTack(v0)
	if h.Board.State().ThreadCount[0] != 1 {
		t.Fatal("thread did not start")
	}

	h.Board.SelectLevel(1)
	h.Step(2)
	st := h.Board.State()
	if st.Level != 1 || st.ThreadCount != [caseGroups]int{} || st.ThreadColliding {
		t.Fatalf("state after reload = %+v", st)
	}
	if _, _, ok := h.Board.World().LooseThread(); ok {
		t.Fatal("loose thread survived the level reload")
	}
}

func TestClampLevel(t *testing.T) {
	if ClampLevel(-1) != 0 || ClampLevel(LevelCount) != LevelCount-1 {
		t.Fatal("ClampLevel out of range")
	}
	if RequiredEvidence(0, 0)[0] != Suspect(0) {
		t.Fatal("case 0 of level 1 does not require its suspect")
	}
	if CaseReport(1, 2) == "" {
		t.Fatal("missing case report")
	}
}
