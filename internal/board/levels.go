package board

import "gonum.org/v1/gonum/spatial/r2"

// LevelCount is the number of authored levels.
const LevelCount = 3

// RandomTack asks the loader to pick the tack's tilette from the seeded
// random source.
const RandomTack = 99

// Placement is one row of a level layout table.
type Placement struct {
	At          r2.Vec
	Type        TileType
	Group       int
	Origin      bool // victim: a thread may start from its tack
	Links       int  // junk auto-link id, -1 when not linked
	Suspect     bool
	TackTilette int // index into Type.Layout(), or RandomTack
}

func onGrid(col, row int) r2.Vec {
	return GridIndexToWorld(GridIndex{Col: col, Row: row})
}

func place(at r2.Vec, t TileType, group, links, tack int) Placement {
	return Placement{
		At:          at,
		Type:        t,
		Group:       group,
		Origin:      t.Kind == KindV,
		Links:       links,
		Suspect:     t.Kind == KindC,
		TackTilette: tack,
	}
}

// Workbench slots shared by every level.
var (
	benchA = r2.Vec{X: -500, Y: -350}
	benchB = r2.Vec{X: -500, Y: -150}
	benchC = r2.Vec{X: -350, Y: -350}
	benchD = r2.Vec{X: -350, Y: -150}
	benchE = r2.Vec{X: -100, Y: -350}
)

var levelLayouts = [LevelCount][]Placement{
	{
		place(onGrid(10, 3), Victim(0), GroupCase0, -1, 0),
		place(onGrid(15, 3), Victim(1), GroupCase1, -1, 3),
		place(onGrid(20, 3), Victim(2), GroupCase2, -1, 5),
		place(onGrid(10, 7), Suspect(0), GroupNeutral, -1, 0),
		place(onGrid(20, 7), Suspect(1), GroupNeutral, -1, 1),
		place(onGrid(15, 7), Suspect(2), GroupNeutral, -1, 3),
		place(onGrid(0, 5), Junk(1), GroupJunk, 1, 0),
		place(onGrid(5, 0), Junk(1), GroupJunk, 2, 0),
		place(onGrid(26, 9), Junk(3), GroupJunk, 4, 7),
		place(onGrid(25, 4), Junk(1), GroupJunk, 5, 0),
		place(onGrid(16, 0), Junk(2), GroupJunk, 6, 2),
		place(benchA, TileL, GroupNeutral, -1, 0),
		place(benchB, TileJ, GroupNeutral, -1, 2),
		place(benchC, TileI, GroupNeutral, -1, 3),
		place(benchD, TileO, GroupNeutral, -1, 2),
	},
	{
		place(onGrid(0, 0), Victim(0), GroupCase0, -1, 0),
		place(onGrid(15, 10), Victim(1), GroupCase1, -1, 3),
		place(onGrid(25, 3), Victim(2), GroupCase2, -1, 5),
		place(onGrid(3, 7), Suspect(0), GroupNeutral, -1, 0),
		place(onGrid(9, 2), Suspect(1), GroupNeutral, -1, 1),
		place(onGrid(2, 4), Suspect(2), GroupNeutral, -1, 3),
		place(onGrid(3, 0), Junk(1), GroupJunk, 1, 0),
		place(onGrid(4, 2), Junk(1), GroupJunk, 2, 0),
		place(onGrid(23, 7), Junk(3), GroupJunk, 4, 7),
		place(onGrid(13, 5), Junk(1), GroupJunk, 5, 0),
		place(onGrid(3, 9), Junk(2), GroupJunk, 6, 2),
		place(benchA, TileT, GroupNeutral, -1, 0),
		place(benchB, TileS, GroupNeutral, -1, 2),
		place(benchC, TileL, GroupNeutral, -1, 3),
		place(benchD, TileZ, GroupNeutral, -1, 2),
	},
	{
		place(onGrid(0, 0), Victim(0), GroupCase0, -1, 0),
		place(onGrid(4, 0), Victim(1), GroupCase1, -1, 3),
		place(onGrid(8, 0), Victim(2), GroupCase2, -1, 5),
		place(onGrid(0, 4), Suspect(0), GroupNeutral, -1, 0),
		place(onGrid(4, 4), Suspect(1), GroupNeutral, -1, 1),
		place(onGrid(8, 4), Suspect(2), GroupNeutral, -1, 3),
		place(onGrid(0, 6), Junk(1), GroupJunk, 1, 0),
		place(onGrid(8, 6), Junk(1), GroupJunk, 2, 0),
		place(onGrid(22, 6), Junk(2), GroupJunk, 4, 2),
		place(onGrid(8, 10), Junk(2), GroupJunk, 5, 1),
		place(onGrid(11, 0), Junk(2), GroupJunk, 6, 3),
		place(benchA, TileO, GroupNeutral, -1, 0),
		place(benchB, TileJ, GroupNeutral, -1, 2),
		place(benchC, TileB, GroupNeutral, -1, 3),
		place(benchD, TileL, GroupNeutral, -1, 2),
		place(benchE, TileT, GroupNeutral, -1, 1),
	},
}

// LevelLayout returns the layout table of level, clamped to the authored
// range. The slice is shared; callers must not modify it.
func LevelLayout(level int) []Placement {
	return levelLayouts[ClampLevel(level)]
}

// ClampLevel limits level to [0, LevelCount).
func ClampLevel(level int) int {
	return clampInt(level, 0, LevelCount-1)
}

var requiredEvidence = [LevelCount][caseGroups][]TileType{
	{{Suspect(0), TileI, TileO}, {Suspect(1), TileJ}, {Suspect(2), TileL}},
	{{Suspect(0), TileL, TileS}, {Suspect(1), TileT}, {Suspect(2), TileZ}},
	{{Suspect(0), TileL, TileJ}, {Suspect(1), TileB, TileO}, {Suspect(2), TileT}},
}

// RequiredEvidence lists the tile types case must collect on level.
func RequiredEvidence(level, caseNum int) []TileType {
	return requiredEvidence[ClampLevel(level)][clampInt(caseNum, 0, caseGroups-1)]
}

var caseReports = [LevelCount][caseGroups]string{
	{
		"Victim found dead in their living room. Ironic. Suspect broke in through window, DNA sample and fingerprints acquired from broken glass.",
		"Suspect seen fleeing the scene of the crime. A lot of bullet casings were found around the victim.",
		"Autopsy reports victim was killed by blunt force to the head. No loud noises reported by witnesses. Firearm was acquired by police after suspect tried selling it in an auction lot.",
	},
	{
		"Victim found shot dead after witnesses claim they were trying to summon a demonic entity in a parking lot. Suspect turned themselves in and were handcuffed.",
		"Victim killed in gang crime after being selected by lot. Footage of the crime was recovered by security camera.",
		"Lockpick set acquired from scene of the crime after suspect was killed in their home, no sign of forced entry.",
	},
	{
		"Victim found with a lot of bullet holes in them. Several bullet casings found leading past their home.",
		"Door to victim's apartment found prized open. Fingerprints recovered from a dropped lottery ticket.",
		"No signs of murder weapon. Security footage shows suspect entering and leaving location of crime.",
	},
}

// CaseReport is the case-file text for case on level.
func CaseReport(level, caseNum int) string {
	return caseReports[ClampLevel(level)][clampInt(caseNum, 0, caseGroups-1)]
}
