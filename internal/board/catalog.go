package board

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"
)

type Color = color.RGBA

// Kind is a tile shape family.
type Kind int

const (
	KindB Kind = iota // crowbar
	KindI             // swab
	KindO             // print
	KindT             // cctv
	KindS             // handcuffs
	KindZ             // lockpick
	KindL             // handgun
	KindJ             // shells
	KindV             // victim
	KindC             // suspect
	KindW             // junk, N is its size class
)

var kindNames = [...]string{"B", "I", "O", "T", "S", "Z", "L", "J", "V", "C", "W"}

// TileType identifies one entry of the tile catalog. N is only meaningful
// for victims, suspects (case number) and junk (size class).
type TileType struct {
	Kind Kind
	N    int
}

var (
	TileB = TileType{Kind: KindB}
	TileI = TileType{Kind: KindI}
	TileO = TileType{Kind: KindO}
	TileT = TileType{Kind: KindT}
	TileS = TileType{Kind: KindS}
	TileZ = TileType{Kind: KindZ}
	TileL = TileType{Kind: KindL}
	TileJ = TileType{Kind: KindJ}
)

func Victim(n int) TileType  { return TileType{Kind: KindV, N: n} }
func Suspect(n int) TileType { return TileType{Kind: KindC, N: n} }
func Junk(n int) TileType    { return TileType{Kind: KindW, N: n} }

// EvidenceTypes are the shapes that can be spawned onto the workbench.
var EvidenceTypes = []TileType{TileB, TileI, TileO, TileT, TileS, TileZ, TileL, TileJ}

func (t TileType) String() string {
	name := "?"
	if int(t.Kind) < len(kindNames) {
		name = kindNames[t.Kind]
	}
	switch t.Kind {
	case KindV, KindC, KindW:
		return fmt.Sprintf("%s(%d)", name, t.N)
	}
	return name
}

// Label is the evidence name shown on the tile.
func (t TileType) Label() string {
	switch t.Kind {
	case KindB:
		return "crowbar"
	case KindI:
		return "swab"
	case KindO:
		return "print"
	case KindT:
		return "cctv"
	case KindS:
		return "handcuffs"
	case KindZ:
		return "lockpick"
	case KindL:
		return "handgun"
	case KindJ:
		return "shells"
	case KindV:
		return fmt.Sprintf("victim %d", t.N+1)
	case KindC:
		return fmt.Sprintf("suspect %d", t.N+1)
	default:
		return "junk"
	}
}

// Movable reports whether the player may drag tiles of this type.
func (t TileType) Movable() bool {
	switch t.Kind {
	case KindV, KindC, KindW:
		return false
	}
	return true
}

// Cell is a (col,row) position inside a tile's 4×4 footprint.
type Cell struct {
	Col, Row int
}

// Layout lists the occupied cells of the tile, in tilette order.
func (t TileType) Layout() []Cell {
	switch t.Kind {
	case KindB:
		return []Cell{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	case KindI:
		return []Cell{{0, 0}, {0, 1}, {0, 2}, {0, 3}}
	case KindO, KindC:
		return []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	case KindT:
		return []Cell{{0, 0}, {1, 0}, {2, 0}, {1, 1}}
	case KindS:
		return []Cell{{1, 0}, {2, 0}, {0, 1}, {1, 1}}
	case KindZ:
		return []Cell{{0, 0}, {1, 0}, {1, 1}, {2, 1}}
	case KindL:
		return []Cell{{0, 0}, {0, 1}, {0, 2}, {1, 2}}
	case KindJ:
		return []Cell{{1, 0}, {1, 1}, {1, 2}, {0, 2}}
	case KindV:
		return []Cell{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	case KindW:
		switch t.N {
		case 1:
			return []Cell{{0, 0}}
		case 2:
			return []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
		}
		return []Cell{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	}
	return nil
}

// JunkVariants is the number of sprite shades per junk size class.
func JunkVariants(size int) int {
	switch size {
	case 1, 2:
		return 6
	}
	return 3
}

// TileOffset is the offset of footprint cell c from the tile centre.
func TileOffset(c Cell) r2.Vec {
	return r2.Vec{
		X: float64(2*c.Col-3) * HalfCellSize,
		Y: float64(3-2*c.Row) * HalfCellSize,
	}
}

// Tack groups.
const (
	GroupCase0   = 0
	GroupCase1   = 1
	GroupCase2   = 2
	GroupNeutral = 3
	GroupJunk    = 4

	caseGroups = 3
)

// TackColor is the render colour of a tack or thread in group g.
func TackColor(g int) Color {
	switch g {
	case GroupCase0:
		return Color{R: 255, A: 255}
	case GroupCase1:
		return Color{G: 255, A: 255}
	case GroupCase2:
		return Color{B: 255, A: 255}
	case GroupNeutral:
		return Color{R: 255, G: 255, B: 255, A: 255}
	}
	return Color{A: 255}
}
