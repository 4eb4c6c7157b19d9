package board

import "gonum.org/v1/gonum/spatial/r2"

// detectCollisions collects every crossing of threads from different
// groups and rebuilds the highlight grid from them.
func (b *Board) detectCollisions(cursor r2.Vec, hasCursor bool) {
	b.highlights = [GridCols][GridRows]bool{}
	b.collisions = b.collisions[:0]
	if !hasCursor {
		b.state.ThreadColliding = false
		return
	}

	type span struct {
		group int
		seg   Segment
	}
	w := b.world
	var spans []span
	for _, e := range w.Threads.All() {
		th, ok := w.Threads.Get(e)
		if !ok {
			continue
		}
		if seg, ok := segmentOf(th, w.Loose.Has(e), cursor); ok {
			spans = append(spans, span{group: th.Group, seg: seg})
		}
	}

	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			if spans[i].group == spans[j].group {
				continue
			}
			p, ok := SegmentIntersection(spans[i].seg, spans[j].seg)
			if !ok {
				continue
			}
			b.collisions = append(b.collisions, p)
			if col, row, ok := HighlightCell(p); ok {
				b.highlights[col][row] = true
			}
		}
	}
	b.state.ThreadColliding = len(b.collisions) > 0
}

// segmentOf is the drawn segment of a thread; a loose thread follows the
// cursor.
func segmentOf(th *Thread, loose bool, cursor r2.Vec) (Segment, bool) {
	switch {
	case loose && len(th.Locs) >= 1:
		return Segment{A: th.Locs[0], B: cursor}, true
	case len(th.Locs) >= 2:
		return Segment{A: th.Locs[0], B: th.Locs[1]}, true
	}
	return Segment{}, false
}
