package board

import (
	"strings"
	"testing"
)

func TestEventLog_RingKeepsNewest(t *testing.T) {
	l := NewEventLog(3)
	for f := 1; f <= 5; f++ {
		l.Add(f, CatTile, "drop", -1, "x")
	}
	got := l.Entries()
	if len(got) != 3 || got[0].Frame != 3 || got[2].Frame != 5 {
		t.Fatalf("entries = %v", got)
	}
	if r := l.Recent(2); len(r) != 2 || r[0].Frame != 4 {
		t.Fatalf("recent = %v", r)
	}
	if l.Len() != 3 {
		t.Fatalf("Len = %d", l.Len())
	}
}

func TestEventLog_Unbounded(t *testing.T) {
	l := NewEventLog(0)
	for f := 0; f < 100; f++ {
		l.Add(f, CatThread, "start", 0, "")
	}
	if l.Len() != 100 || len(l.Entries()) != 100 {
		t.Fatalf("unbounded log kept %d", l.Len())
	}
}

func TestEventLog_Filter(t *testing.T) {
	l := NewEventLog(0)
	l.Add(1, CatThread, "start", 0, "V(0) #1")
	l.Add(2, CatThread, "complete", 0, "V(0) -> C(0)")
	l.Add(3, CatTile, "revert", -1, "I: overlap")
	if n := l.Count(CatThread, ""); n != 2 {
		t.Fatalf("thread entries = %d", n)
	}
	if n := l.Count("", "revert"); n != 1 {
		t.Fatalf("revert entries = %d", n)
	}
	if n := l.Count("", ""); n != 3 {
		t.Fatalf("all entries = %d", n)
	}
}

func TestLogEntry_String(t *testing.T) {
	e := LogEntry{Frame: 42, Category: CatThread, Key: "complete", Group: 0, Value: "I -> C(0)"}
	want := "[F=0042] thread  complete  g0  I -> C(0)"
	if got := e.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	e.Group = -1
	if !strings.Contains(e.String(), " --  ") {
		t.Fatalf("missing group placeholder: %q", e.String())
	}
}
