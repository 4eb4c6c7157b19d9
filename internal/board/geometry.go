package board

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// World space is centred on the view with +Y up. Screen space is the
// ebiten logical screen: origin top-left, +Y down.
const (
	ViewWidth  = 1600.0
	ViewHeight = 900.0

	CellSize     = 40.0
	HalfCellSize = CellSize / 2

	GridWidth  = 1160.0
	GridHeight = 480.0
	GridCols   = int(GridWidth / CellSize)  // 29
	GridRows   = int(GridHeight / CellSize) // 12

	// Workbench is everything below this y; tiles resting there are
	// ignored by overlap rejection.
	WorkbenchY = -50.0 - 80.0

	// Two tilettes closer than this on both axes overlap.
	overlapDistance = CellSize / 1.5

	// Grid index (0,0) maps to this world point; see GridIndexToWorld.
	gridIndexOriginX = -680.0
	gridIndexOriginY = 360.0
	gridIndexMaxX    = 28
	gridIndexMaxY    = 11
)

// GridCenter is the world position of the evidence board's centre.
var GridCenter = r2.Vec{X: -180, Y: 200}

// GridIndex is an integer board coordinate used by level tables.
// Column grows to the right, row grows downwards.
type GridIndex struct {
	Col, Row int
}

// Window is the size of the surface the raw cursor is measured against.
type Window struct {
	Width, Height float64
}

// CursorToWorld maps device pixels (top-left origin, y-down) onto world
// coordinates, independent of the actual window resolution.
func CursorToWorld(raw r2.Vec, win Window) r2.Vec {
	return r2.Vec{
		X: raw.X/win.Width*ViewWidth - ViewWidth/2,
		Y: -raw.Y/win.Height*ViewHeight + ViewHeight/2,
	}
}

// WorldToScreen is the inverse of CursorToWorld for a ViewWidth×ViewHeight
// logical screen. Drawing code uses it.
func WorldToScreen(p r2.Vec) (float64, float64) {
	return p.X + ViewWidth/2, ViewHeight/2 - p.Y
}

// GridIndexToWorld converts a board coordinate, clamped to the grid extent,
// to the world position a tile is centred on.
func GridIndexToWorld(i GridIndex) r2.Vec {
	col := clampInt(i.Col, 0, gridIndexMaxX)
	row := clampInt(i.Row, 0, gridIndexMaxY)
	return r2.Vec{
		X: gridIndexOriginX + float64(col)*CellSize,
		Y: gridIndexOriginY - float64(row)*CellSize,
	}
}

// WorldToGridIndex is the inverse of GridIndexToWorld. Values are truncated
// toward zero, matching the level tables' integer layout.
func WorldToGridIndex(p r2.Vec) GridIndex {
	return GridIndex{
		Col: int((p.X - gridIndexOriginX) / CellSize),
		Row: int((p.Y - gridIndexOriginY) / -CellSize),
	}
}

// Segment is a directed line segment between two world points.
type Segment struct {
	A, B r2.Vec
}

// SegmentIntersection returns the point where two segments cross.
// Parallel and colinear segments never intersect (exact determinant test).
// A point is on a segment when its projection onto the segment lies within
// [0, |AB|²], endpoints included.
func SegmentIntersection(s, t Segment) (r2.Vec, bool) {
	a1 := s.B.Y - s.A.Y
	b1 := s.A.X - s.B.X
	c1 := a1*s.A.X + b1*s.A.Y

	a2 := t.B.Y - t.A.Y
	b2 := t.A.X - t.B.X
	c2 := a2*t.A.X + b2*t.A.Y

	det := a1*b2 - a2*b1
	if det == 0 {
		return r2.Vec{}, false
	}
	p := r2.Vec{
		X: (b2*c1 - b1*c2) / det,
		Y: (a1*c2 - a2*c1) / det,
	}
	if !onSegment(p, s) || !onSegment(p, t) {
		return r2.Vec{}, false
	}
	return p, true
}

func onSegment(p r2.Vec, s Segment) bool {
	d := r2.Sub(s.B, s.A)
	proj := r2.Dot(r2.Sub(p, s.A), d)
	return proj >= 0 && proj <= r2.Norm2(d)
}

// OnBoard reports whether p lies strictly inside the evidence board.
func OnBoard(p r2.Vec) bool {
	return math.Abs(p.X-GridCenter.X) < GridWidth/2 &&
		math.Abs(p.Y-GridCenter.Y) < GridHeight/2
}

// InBoard reports whether p is not outside the evidence board; points on
// the border count as inside.
func InBoard(p r2.Vec) bool {
	return math.Abs(p.X-GridCenter.X) <= GridWidth/2 &&
		math.Abs(p.Y-GridCenter.Y) <= GridHeight/2
}

// Near reports whether a and b are within half a cell on both axes.
func Near(a, b r2.Vec) bool {
	return math.Abs(a.X-b.X) < HalfCellSize && math.Abs(a.Y-b.Y) < HalfCellSize
}

// SnapToGrid rounds both coordinates to the nearest multiple of CellSize.
func SnapToGrid(p r2.Vec) r2.Vec {
	return r2.Vec{
		X: math.Round(p.X/CellSize) * CellSize,
		Y: math.Round(p.Y/CellSize) * CellSize,
	}
}

// QuantizeToCell returns the centre of the cell containing p.
func QuantizeToCell(p r2.Vec) r2.Vec {
	return r2.Vec{
		X: math.Floor(p.X/CellSize)*CellSize + HalfCellSize,
		Y: math.Floor(p.Y/CellSize)*CellSize + HalfCellSize,
	}
}

// HighlightCell returns the highlight grid cell whose centre is the
// quantized point p. The bool is false when p is off the board.
func HighlightCell(p r2.Vec) (col, row int, ok bool) {
	q := QuantizeToCell(p)
	left := GridCenter.X - GridWidth/2
	bottom := GridCenter.Y - GridHeight/2
	col = int(math.Floor((q.X - left) / CellSize))
	row = int(math.Floor((q.Y - bottom) / CellSize))
	if col < 0 || col >= GridCols || row < 0 || row >= GridRows {
		return 0, 0, false
	}
	return col, row, true
}

// HighlightCellCenter is the world centre of highlight cell (col,row);
// row 0 is the bottom row of the board.
func HighlightCellCenter(col, row int) r2.Vec {
	return r2.Vec{
		X: float64(col)*CellSize - GridWidth/2 + HalfCellSize + GridCenter.X,
		Y: float64(row)*CellSize - GridHeight/2 + HalfCellSize + GridCenter.Y,
	}
}

// faceRotation is the angle (radians, CCW from +Y) that points +Y along d.
func faceRotation(d r2.Vec) float64 {
	if d.X == 0 && d.Y == 0 {
		return 0
	}
	return math.Atan2(-d.X, d.Y)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
