package board

import (
	"fmt"
	"math/rand"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/Garsondee/No-Loose-Threads/internal/log"
)

// Sound is a fire-and-forget audio cue.
type Sound int

const (
	SoundTack Sound = iota
	SoundDrop
	SoundReject
	SoundSolved
	SoundMistrial
)

// Sounder plays cues. Implementations must not block.
type Sounder interface {
	Play(Sound)
}

type silent struct{}

func (silent) Play(Sound) {}

// Input is one frame's snapshot of device state. Cursor is in raw window
// pixels; Pressed/Released are edge events for this frame only.
type Input struct {
	Window    Window
	Cursor    r2.Vec
	HasCursor bool

	LeftPressed   bool
	LeftReleased  bool
	RightPressed  bool
	RightReleased bool
	Shift         bool
}

// State is the session-wide mutable state shared by the board systems.
type State struct {
	Level           int
	ThreadCount     [caseGroups]int
	ThreadColliding bool
	SFX             bool
	// Solve is the outcome of the last solve check on this level.
	Solve *SolveResult
}

// Board is the interaction core: an entity arena plus the systems that
// mutate it once per frame.
type Board struct {
	world  *World
	state  State
	events Events

	highlights [GridCols][GridRows]bool
	collisions []r2.Vec

	frame     int
	cursor    r2.Vec
	hasCursor bool

	rng       *rand.Rand
	log       *log.Logger
	sound     Sounder
	journal   *EventLog
	debugLink int
}

// Option configures a Board.
type Option func(*Board)

// WithSeed seeds the random source used for tack placement and junk shades.
func WithSeed(seed int64) Option {
	return func(b *Board) {
		b.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- level cosmetics
	}
}

func WithLogger(l *log.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.log = l
		}
	}
}

func WithSounder(s Sounder) Option {
	return func(b *Board) {
		if s != nil {
			b.sound = s
		}
	}
}

// WithEventLog sets the gameplay event log capacity; zero keeps every entry.
func WithEventLog(capacity int) Option {
	return func(b *Board) {
		b.journal = NewEventLog(capacity)
	}
}

// WithLevel queues the first level load.
func WithLevel(level int) Option {
	return func(b *Board) {
		b.events.LevelSelected.Push(LevelSelected{Level: level})
	}
}

func New(opts ...Option) *Board {
	b := &Board{
		world:     NewWorld(),
		state:     State{SFX: true},
		rng:       rand.New(rand.NewSource(1)), // #nosec G404 -- deterministic default
		log:       log.Discard(),
		sound:     silent{},
		journal:   NewEventLog(0),
		debugLink: 100,
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

func (b *Board) World() *World { return b.world }
func (b *Board) State() *State { return &b.state }
func (b *Board) Events() *Events { return &b.events }
func (b *Board) Log() *EventLog { return b.journal }
func (b *Board) Frame() int { return b.frame }
func (b *Board) Collisions() []r2.Vec { return b.collisions }

// Cursor is the world-space cursor of the last frame.
func (b *Board) Cursor() (r2.Vec, bool) { return b.cursor, b.hasCursor }

// Hot reports whether highlight cell (col,row) is flagged; row 0 is the
// bottom row.
func (b *Board) Hot(col, row int) bool {
	if col < 0 || col >= GridCols || row < 0 || row >= GridRows {
		return false
	}
	return b.highlights[col][row]
}

// Update runs one frame. The system order is fixed: queued events, tile
// drag-and-drop, endpoint refresh, thread gestures, collision detection,
// tack recolouring.
func (b *Board) Update(in Input) {
	if in.Window.Width <= 0 || in.Window.Height <= 0 {
		panic("board: cursor requested without a primary window")
	}
	b.frame++
	b.hasCursor = in.HasCursor
	if in.HasCursor {
		b.cursor = CursorToWorld(in.Cursor, in.Window)
	}

	b.stringJunk()
	b.loadLevels()
	b.solveCases()

	if b.hasCursor {
		b.dragAndDrop(in, b.cursor)
	}
	b.updateThreadEndpoints()
	if b.hasCursor {
		b.drawThreads(in, b.cursor)
	}
	b.detectCollisions(b.cursor, b.hasCursor)
	b.recolorTacks()
}

// SelectLevel queues a level load for the next frame.
func (b *Board) SelectLevel(level int) {
	b.events.LevelSelected.Push(LevelSelected{Level: level})
}

// RequestSolve queues a solve check for the next frame.
func (b *Board) RequestSolve() {
	b.events.SolveCase.Push(SolveCase{})
}

// LoadLevel rebuilds level immediately, junk threads included.
func (b *Board) LoadLevel(level int) {
	b.loadLevel(level)
	b.events.WaitForJunk.Drain()
	b.linkJunk()
}

func (b *Board) loadLevels() {
	for _, ev := range b.events.LevelSelected.Drain() {
		b.loadLevel(ev.Level)
		b.events.WaitForJunk.Push(WaitForJunk{})
	}
}

func (b *Board) loadLevel(level int) {
	level = ClampLevel(level)
	b.world.Reset()
	b.state.Level = level
	b.state.ThreadCount = [caseGroups]int{}
	b.state.ThreadColliding = false
	b.state.Solve = nil
	b.highlights = [GridCols][GridRows]bool{}
	b.collisions = b.collisions[:0]

	layout := LevelLayout(level)
	for _, p := range layout {
		b.SpawnTile(p)
	}
	b.journal.Add(b.frame, CatLevel, "load", -1, fmt.Sprintf("level %d, %d tiles", level+1, len(layout)))
	b.log.Infof("loaded level %d (%d tiles)", level+1, len(layout))
}

// SpawnTile instantiates a tile, one tilette per layout cell, and its tack.
func (b *Board) SpawnTile(p Placement) Entity {
	w := b.world
	layout := p.Type.Layout()
	tile := w.Spawn()
	w.Transforms.Set(tile, Transform{Pos: p.At})
	t := Tile{Type: p.Type}
	if p.Type.Kind == KindW {
		t.Variant = b.rng.Intn(JunkVariants(p.Type.N))
	}
	w.Tiles.Set(tile, t)
	if !p.Type.Movable() {
		w.Immovable.Set(tile, marker{})
	}

	tackAt := p.TackTilette
	if tackAt == RandomTack {
		tackAt = b.rng.Intn(len(layout))
	}
	if tackAt < 0 || tackAt >= len(layout) {
		b.log.Warnf("%v: tack tilette %d outside layout of %d cells", p.Type, tackAt, len(layout))
	}
	for i, cell := range layout {
		off := TileOffset(cell)
		te := w.Spawn()
		w.Children.Set(te, Child{Parent: tile, Offset: off})
		w.Tilettes.Set(te, Tilette{Tile: tile})
		if i != tackAt {
			continue
		}
		tack := w.Spawn()
		w.Children.Set(tack, Child{Parent: tile, Offset: off})
		w.Tacks.Set(tack, Tack{
			Group:    p.Group,
			End:      p.Origin,
			Links:    p.Links,
			Suspect:  p.Suspect,
			TileType: p.Type,
			Color:    TackColor(p.Group),
		})
	}
	return tile
}

// stringJunk links junk tacks once the loader's tacks exist.
func (b *Board) stringJunk() {
	for range b.events.WaitForJunk.Drain() {
		b.linkJunk()
	}
}

// linkJunk joins every pair of tacks whose link ids differ by one with a
// completed junk thread.
func (b *Board) linkJunk() int {
	w := b.world
	tacks := w.Tacks.All()
	n := 0
	for i := 0; i < len(tacks); i++ {
		ta, ok := w.Tacks.Get(tacks[i])
		if !ok || ta.Links == -1 {
			continue
		}
		for j := i + 1; j < len(tacks); j++ {
			tb, ok := w.Tacks.Get(tacks[j])
			if !ok || tb.Links == -1 {
				continue
			}
			if d := ta.Links - tb.Links; d != 1 && d != -1 {
				continue
			}
			if b.spawnThread(GroupJunk, -1, []Entity{tacks[i], tacks[j]}, false) != 0 {
				n++
			}
		}
	}
	if n > 0 {
		b.log.Debugf("strung %d junk threads", n)
	}
	return n
}

// spawnThread creates a thread over tacks; it returns 0 when a tack is gone.
func (b *Board) spawnThread(group, index int, tacks []Entity, loose bool) Entity {
	w := b.world
	locs := make([]r2.Vec, 0, 2)
	for _, t := range tacks {
		p, ok := w.Position(t)
		if !ok {
			return 0
		}
		locs = append(locs, p)
	}
	e := w.Spawn()
	tr := Transform{Pos: locs[0]}
	if len(locs) == 2 {
		stretch(&tr, locs[0], locs[1])
	}
	w.Transforms.Set(e, tr)
	w.Threads.Set(e, Thread{Group: group, Index: index, Tacks: tacks, Locs: locs})
	if loose {
		w.Loose.Set(e, marker{})
	}
	return e
}

// stretch lays a thread sprite from a to b.
func stretch(tr *Transform, a, c r2.Vec) {
	tr.Pos = r2.Scale(0.5, r2.Add(a, c))
	d := r2.Sub(c, a)
	tr.Rotation = faceRotation(d)
	tr.Length = r2.Norm(d)
}

func (b *Board) recolorTacks() {
	for _, e := range b.world.Tacks.All() {
		if t, ok := b.world.Tacks.Get(e); ok {
			t.Color = TackColor(t.Group)
		}
	}
}

func (b *Board) play(s Sound) {
	if b.state.SFX {
		b.sound.Play(s)
	}
}

// Debug helpers.

// SpawnRandomEvidence drops a random evidence tile onto the workbench.
func (b *Board) SpawnRandomEvidence() Entity {
	t := EvidenceTypes[b.rng.Intn(len(EvidenceTypes))]
	return b.SpawnTile(Placement{
		At:          r2.Vec{X: -200, Y: -200},
		Type:        t,
		Group:       GroupNeutral,
		Links:       -1,
		TackTilette: RandomTack,
	})
}

// SpawnRandomJunk drops a random junk tile onto the workbench. skip leaves
// a gap in the link sequence so it will not be strung to the previous one.
func (b *Board) SpawnRandomJunk(skip bool) Entity {
	b.debugLink++
	if skip {
		b.debugLink++
	}
	return b.SpawnTile(Placement{
		At:          r2.Vec{X: -200, Y: -200},
		Type:        Junk(1 + b.rng.Intn(3)),
		Group:       GroupJunk,
		Links:       b.debugLink,
		TackTilette: RandomTack,
	})
}

// RestringJunk links junk tacks again; it returns the threads created.
func (b *Board) RestringJunk() int {
	return b.linkJunk()
}

// DumpLayout describes every tile on the evidence board with its grid index.
func (b *Board) DumpLayout() string {
	var sb strings.Builder
	w := b.world
	for _, e := range w.Tiles.All() {
		tile, _ := w.Tiles.Get(e)
		p, ok := w.Position(e)
		if !ok || !OnBoard(p) {
			continue
		}
		gi := WorldToGridIndex(p)
		fmt.Fprintf(&sb, "%v at (%.0f, %.0f) index (%d, %d)\n", tile.Type, p.X, p.Y, gi.Col, gi.Row)
	}
	return sb.String()
}
