package board

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// dragAndDrop picks tiles up on left press, carries held tiles with the
// cursor and resolves drops on left release.
func (b *Board) dragAndDrop(in Input, cursor r2.Vec) {
	if in.LeftPressed {
		b.pickup(cursor)
	}
	w := b.world
	for _, e := range w.Held.All() {
		h, ok := w.Held.Get(e)
		if !ok {
			continue
		}
		if tr, ok := w.Transforms.Get(e); ok {
			tr.Pos = r2.Add(cursor, h.Offset)
		}
		if in.LeftReleased {
			b.dropTile(e, *h, cursor)
		}
	}
}

func (b *Board) pickup(cursor r2.Vec) {
	w := b.world
	for _, te := range w.Tilettes.All() {
		tl, ok := w.Tilettes.Get(te)
		if !ok {
			continue
		}
		p, ok := w.Position(te)
		if !ok || !Near(p, cursor) {
			continue
		}
		tile := tl.Tile
		if w.Held.Has(tile) || w.Immovable.Has(tile) {
			continue
		}
		tr, ok := w.Transforms.Get(tile)
		if !ok {
			continue
		}
		w.Held.Set(tile, Held{Origin: tr.Pos, Offset: r2.Sub(tr.Pos, cursor)})
		if t, ok := w.Tiles.Get(tile); ok {
			b.log.Debugf("picked up %v at (%.0f, %.0f)", t.Type, tr.Pos.X, tr.Pos.Y)
		}
		return
	}
}

// dropTile settles a held tile on the board or sends it back to where it
// was picked up.
func (b *Board) dropTile(e Entity, h Held, cursor r2.Vec) {
	w := b.world
	defer w.Held.Remove(e)

	tr, ok := w.Transforms.Get(e)
	if !ok {
		return
	}
	reason := ""
	switch {
	case b.state.ThreadColliding:
		reason = "threads colliding"
	case tr.Pos.Y < WorkbenchY:
		reason = "workbench"
	case OnBoard(cursor):
		tr.Pos = SnapToGrid(tr.Pos)
		for _, te := range ChildrenOf(w, e, w.Tilettes) {
			if p, ok := w.Position(te); ok && !InBoard(p) {
				reason = "off the grid"
				break
			}
		}
	default:
		reason = "off the board"
	}
	if reason == "" && b.overlapping() {
		reason = "overlap"
	}

	name := "?"
	if t, ok := w.Tiles.Get(e); ok {
		name = t.Type.String()
	}
	if reason != "" {
		tr.Pos = h.Origin
		b.play(SoundReject)
		b.journal.Add(b.frame, CatTile, "revert", -1, fmt.Sprintf("%s: %s", name, reason))
		b.log.Debugf("drop of %s reverted: %s", name, reason)
		return
	}
	gi := WorldToGridIndex(tr.Pos)
	b.play(SoundDrop)
	b.journal.Add(b.frame, CatTile, "drop", -1, fmt.Sprintf("%s at (%d, %d)", name, gi.Col, gi.Row))
	b.log.Debugf("dropped %s at index (%d, %d)", name, gi.Col, gi.Row)
}

// overlapping reports whether two tilettes of different tiles, both above
// the workbench, sit closer than overlapDistance on both axes.
func (b *Board) overlapping() bool {
	type cell struct {
		tile Entity
		pos  r2.Vec
	}
	w := b.world
	var cells []cell
	for _, te := range w.Tilettes.All() {
		tl, ok := w.Tilettes.Get(te)
		if !ok {
			continue
		}
		p, ok := w.Position(te)
		if !ok || p.Y < WorkbenchY {
			continue
		}
		cells = append(cells, cell{tile: tl.Tile, pos: p})
	}
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			if cells[i].tile == cells[j].tile {
				continue
			}
			d := r2.Sub(cells[i].pos, cells[j].pos)
			if math.Abs(d.X) < overlapDistance && math.Abs(d.Y) < overlapDistance {
				return true
			}
		}
	}
	return false
}
