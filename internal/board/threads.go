package board

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// drawThreads handles right-button gestures on tacks: start, complete,
// chain, keep, abandon, then shift-detach. A right press or release that no
// tack on the board handles abandons the loose thread, wherever the cursor
// is.
func (b *Board) drawThreads(in Input, cursor r2.Vec) {
	if in.RightPressed || in.RightReleased {
		if !OnBoard(cursor) || !b.threadClick(in, cursor) {
			b.abandonLoose()
		}
	}
	if in.RightPressed && in.Shift {
		b.detachThread(cursor)
	}
}

// threadClick applies the first tack under the cursor that accepts the
// gesture. It reports whether any tack handled it.
func (b *Board) threadClick(in Input, cursor r2.Vec) bool {
	w := b.world
	looseE, loose, hasLoose := w.LooseThread()
	for _, e := range w.Tacks.All() {
		tack, ok := w.Tacks.Get(e)
		if !ok {
			continue
		}
		p, ok := w.Position(e)
		if !ok || !Near(p, cursor) {
			continue
		}

		switch {
		case !hasLoose && tack.End && tack.Group < caseGroups && !tack.Suspect && in.RightPressed && !in.Shift:
			b.startThread(e, tack, p)
			return true

		case hasLoose && !tack.Used && tack.Group == GroupNeutral && !b.state.ThreadColliding && !in.Shift:
			b.completeThread(looseE, loose, e, tack, p)
			if in.RightPressed && !tack.Suspect {
				b.startThread(e, tack, p)
				b.journal.Add(b.frame, CatThread, "chain", tack.Group, tack.TileType.String())
			}
			return true

		case hasLoose && tack.Used && !in.Shift:
			// Only the loose thread's own origin keeps it; other used
			// tacks are passed over.
			if len(loose.Tacks) > 0 && loose.Tacks[0] == e {
				return true
			}
			continue

		case in.RightPressed && !in.Shift:
			return true
		}
	}
	return false
}

func (b *Board) startThread(e Entity, tack *Tack, p r2.Vec) {
	g := tack.Group
	b.state.ThreadCount[g]++
	b.spawnThread(g, b.state.ThreadCount[g], []Entity{e}, true)
	tack.End = false
	tack.Used = true
	b.play(SoundTack)
	b.journal.Add(b.frame, CatThread, "start", g, fmt.Sprintf("%v #%d", tack.TileType, b.state.ThreadCount[g]))
	b.log.Debugf("thread g%d #%d started at %v (%.0f, %.0f)", g, b.state.ThreadCount[g], tack.TileType, p.X, p.Y)
}

func (b *Board) completeThread(te Entity, th *Thread, e Entity, tack *Tack, p r2.Vec) {
	w := b.world
	th.Tacks = append(th.Tacks, e)
	th.Locs = append(th.Locs, p)
	w.Loose.Remove(te)
	tack.Group = th.Group
	tack.End = true
	tack.Used = true
	if tr, ok := w.Transforms.Get(te); ok {
		stretch(tr, th.Locs[0], p)
	}
	b.play(SoundTack)

	from := "?"
	if origin, ok := w.Tacks.Get(th.Tacks[0]); ok {
		from = origin.TileType.String()
	}
	b.journal.Add(b.frame, CatThread, "complete", th.Group, fmt.Sprintf("%s -> %v", from, tack.TileType))
	b.log.Debugf("thread g%d #%d completed %s -> %v", th.Group, th.Index, from, tack.TileType)
}

// abandonLoose despawns every pending loose thread and restores its origin.
func (b *Board) abandonLoose() {
	w := b.world
	for _, e := range w.Loose.All() {
		th, ok := w.Threads.Get(e)
		if !ok {
			w.Loose.Remove(e)
			continue
		}
		if len(th.Tacks) > 0 {
			if origin, ok := w.Tacks.Get(th.Tacks[0]); ok {
				origin.End = true
				origin.Used = false
			}
		}
		if th.Group >= 0 && th.Group < caseGroups && b.state.ThreadCount[th.Group] > 0 {
			b.state.ThreadCount[th.Group]--
		}
		w.Despawn(e)
		b.journal.Add(b.frame, CatThread, "abandon", th.Group, fmt.Sprintf("#%d", th.Index))
		b.log.Debugf("thread g%d #%d abandoned", th.Group, th.Index)
	}
}

// detachThread unravels the newest thread of a chain when either of its
// endpoints is under the cursor. Only one thread is removed per click.
func (b *Board) detachThread(cursor r2.Vec) {
	w := b.world
	for _, e := range w.CompletedThreads() {
		th, ok := w.Threads.Get(e)
		if !ok || th.Index == -1 || th.Group >= caseGroups || len(th.Tacks) != 2 {
			continue
		}
		if th.Index != b.state.ThreadCount[th.Group] {
			continue
		}
		hit := false
		for _, t := range th.Tacks {
			if p, ok := w.Position(t); ok && Near(p, cursor) {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}
		// The tail tack goes back to neutral; the head becomes the chain end.
		if tail, ok := w.Tacks.Get(th.Tacks[1]); ok {
			tail.Group = GroupNeutral
			tail.End = false
			tail.Used = false
		}
		if head, ok := w.Tacks.Get(th.Tacks[0]); ok {
			head.End = true
		}
		b.state.ThreadCount[th.Group]--
		w.Despawn(e)
		b.play(SoundTack)
		b.journal.Add(b.frame, CatThread, "detach", th.Group, fmt.Sprintf("#%d", th.Index))
		b.log.Debugf("thread g%d #%d detached", th.Group, th.Index)
		return
	}
}

// updateThreadEndpoints refreshes thread locations from the live tack
// positions and re-lays every thread sprite.
func (b *Board) updateThreadEndpoints() {
	w := b.world
	for _, e := range w.Threads.All() {
		th, ok := w.Threads.Get(e)
		if !ok {
			continue
		}
		for i, t := range th.Tacks {
			if i >= len(th.Locs) {
				break
			}
			if p, ok := w.Position(t); ok {
				th.Locs[i] = p
			}
		}
		tr, ok := w.Transforms.Get(e)
		if !ok || len(th.Locs) == 0 {
			continue
		}
		switch {
		case w.Loose.Has(e):
			if b.hasCursor {
				stretch(tr, th.Locs[0], b.cursor)
			}
		case len(th.Locs) >= 2:
			stretch(tr, th.Locs[0], th.Locs[1])
		}
	}
}
