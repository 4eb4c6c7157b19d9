package board

import (
	"fmt"
	"strings"
)

// Event categories.
const (
	CatThread = "thread"
	CatTile   = "tile"
	CatLevel  = "level"
	CatSolve  = "solve"
)

// LogEntry is one recorded gameplay event.
type LogEntry struct {
	Frame    int
	Category string // thread, tile, level, solve
	Key      string // e.g. start, complete, chain, abandon, detach, drop, revert
	Group    int    // tack group, -1 when not applicable
	Value    string
}

// String formats the entry as a fixed-width line.
//
//	[F=0042] thread  complete  g0  I -> C(0)
func (e LogEntry) String() string {
	g := "--"
	if e.Group >= 0 {
		g = fmt.Sprintf("g%d", e.Group)
	}
	return fmt.Sprintf("[F=%04d] %-7s %-9s %-3s %s", e.Frame, e.Category, e.Key, g, e.Value)
}

// EventLog records gameplay events. With a positive capacity it keeps only
// the newest entries; zero capacity keeps everything.
type EventLog struct {
	entries []LogEntry
	head    int
	count   int
	limit   int
}

func NewEventLog(capacity int) *EventLog {
	l := &EventLog{limit: capacity}
	if capacity > 0 {
		l.entries = make([]LogEntry, capacity)
	}
	return l
}

func (l *EventLog) Add(frame int, category, key string, group int, value string) {
	e := LogEntry{Frame: frame, Category: category, Key: key, Group: group, Value: value}
	if l.limit <= 0 {
		l.entries = append(l.entries, e)
		l.count++
		return
	}
	l.entries[l.head] = e
	l.head = (l.head + 1) % l.limit
	if l.count < l.limit {
		l.count++
	}
}

// Entries returns retained entries, oldest first.
func (l *EventLog) Entries() []LogEntry {
	if l.limit <= 0 {
		out := make([]LogEntry, len(l.entries))
		copy(out, l.entries)
		return out
	}
	out := make([]LogEntry, l.count)
	for i := 0; i < l.count; i++ {
		out[i] = l.entries[(l.head-l.count+i+l.limit)%l.limit]
	}
	return out
}

// Recent returns at most n of the newest entries, oldest first.
func (l *EventLog) Recent(n int) []LogEntry {
	all := l.Entries()
	if n < len(all) {
		all = all[len(all)-n:]
	}
	return all
}

// Filter returns entries matching category and key. Empty matches any.
func (l *EventLog) Filter(category, key string) []LogEntry {
	var out []LogEntry
	for _, e := range l.Entries() {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many retained entries match category and key.
func (l *EventLog) Count(category, key string) int {
	return len(l.Filter(category, key))
}

func (l *EventLog) Len() int {
	return l.count
}

// Format renders every retained entry, one per line.
func (l *EventLog) Format() string {
	var b strings.Builder
	for _, e := range l.Entries() {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
