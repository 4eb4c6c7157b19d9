package board

import (
	"slices"

	"gonum.org/v1/gonum/spatial/r2"
)

// Entity is a unique id in the board's arena. Zero is never issued.
type Entity uint32

// Store is a typed component table keyed by entity. Iteration follows
// insertion order so "first match wins" rules are deterministic.
type Store[T any] struct {
	components map[Entity]*T
	entities   []Entity
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[Entity]*T),
		entities:   make([]Entity, 0, 32),
	}
}

// Set inserts or replaces e's component and returns a pointer to it.
func (s *Store[T]) Set(e Entity, val T) *T {
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	v := val
	s.components[e] = &v
	return &v
}

// Get returns a pointer to e's component. The pointer stays valid until
// the component is removed.
func (s *Store[T]) Get(e Entity) (*T, bool) {
	v, ok := s.components[e]
	return v, ok
}

func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.components[e]
	return ok
}

func (s *Store[T]) Remove(e Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	if i := slices.Index(s.entities, e); i >= 0 {
		s.entities = slices.Delete(s.entities, i, i+1)
	}
}

// All returns a snapshot of the entities in this table; callers may
// remove components while ranging over it.
func (s *Store[T]) All() []Entity {
	return slices.Clone(s.entities)
}

func (s *Store[T]) Len() int {
	return len(s.entities)
}

func (s *Store[T]) Clear() {
	clear(s.components)
	s.entities = s.entities[:0]
}

// Component types.

// Transform is a world-space placement. Rotation is CCW from +Y; Length is
// the stretch of a thread sprite.
type Transform struct {
	Pos      r2.Vec
	Rotation float64
	Length   float64
}

// Child places an entity relative to its parent's Transform.
type Child struct {
	Parent Entity
	Offset r2.Vec
}

type Tile struct {
	Type TileType
	// Variant picks one of the junk sprite shades; zero otherwise.
	Variant int
}

type Tilette struct {
	Tile Entity
}

type Tack struct {
	Group    int
	End      bool
	Used     bool
	Links    int
	Suspect  bool
	TileType TileType
	Color    Color
}

type Thread struct {
	Group int
	Index int
	Tacks []Entity
	Locs  []r2.Vec
}

// Held marks a tile being dragged.
type Held struct {
	Origin r2.Vec
	Offset r2.Vec
}

type marker struct{}

// World is the board's entity arena.
type World struct {
	nextID Entity

	Transforms *Store[Transform]
	Children   *Store[Child]
	Tiles      *Store[Tile]
	Tilettes   *Store[Tilette]
	Tacks      *Store[Tack]
	Threads    *Store[Thread]
	Held       *Store[Held]
	Loose      *Store[marker]
	Immovable  *Store[marker]
}

func NewWorld() *World {
	return &World{
		nextID:     1,
		Transforms: NewStore[Transform](),
		Children:   NewStore[Child](),
		Tiles:      NewStore[Tile](),
		Tilettes:   NewStore[Tilette](),
		Tacks:      NewStore[Tack](),
		Threads:    NewStore[Thread](),
		Held:       NewStore[Held](),
		Loose:      NewStore[marker](),
		Immovable:  NewStore[marker](),
	}
}

func (w *World) Spawn() Entity {
	e := w.nextID
	w.nextID++
	return e
}

// Despawn removes e from every table, then its children.
func (w *World) Despawn(e Entity) {
	w.Transforms.Remove(e)
	w.Children.Remove(e)
	w.Tiles.Remove(e)
	w.Tilettes.Remove(e)
	w.Tacks.Remove(e)
	w.Threads.Remove(e)
	w.Held.Remove(e)
	w.Loose.Remove(e)
	w.Immovable.Remove(e)
	for _, c := range w.Children.All() {
		if ch, ok := w.Children.Get(c); ok && ch.Parent == e {
			w.Despawn(c)
		}
	}
}

// Reset empties the arena. Entity ids keep increasing so stale ids held by
// callers never alias new entities.
func (w *World) Reset() {
	w.Transforms.Clear()
	w.Children.Clear()
	w.Tiles.Clear()
	w.Tilettes.Clear()
	w.Tacks.Clear()
	w.Threads.Clear()
	w.Held.Clear()
	w.Loose.Clear()
	w.Immovable.Clear()
}

// Position returns e's world position, resolving Child offsets.
func (w *World) Position(e Entity) (r2.Vec, bool) {
	if ch, ok := w.Children.Get(e); ok {
		p, ok := w.Position(ch.Parent)
		if !ok {
			return r2.Vec{}, false
		}
		return r2.Add(p, ch.Offset), true
	}
	if tr, ok := w.Transforms.Get(e); ok {
		return tr.Pos, true
	}
	return r2.Vec{}, false
}

// ChildrenOf lists e's direct children present in table s.
func ChildrenOf[T any](w *World, e Entity, s *Store[T]) []Entity {
	var out []Entity
	for _, c := range s.All() {
		if ch, ok := w.Children.Get(c); ok && ch.Parent == e {
			out = append(out, c)
		}
	}
	return out
}

// LooseThread returns the single pending loose thread, if any.
func (w *World) LooseThread() (Entity, *Thread, bool) {
	for _, e := range w.Loose.All() {
		if th, ok := w.Threads.Get(e); ok {
			return e, th, true
		}
	}
	return 0, nil, false
}

// CompletedThreads lists threads present in Threads and absent from Loose.
func (w *World) CompletedThreads() []Entity {
	var out []Entity
	for _, e := range w.Threads.All() {
		if !w.Loose.Has(e) {
			out = append(out, e)
		}
	}
	return out
}
