package board

import (
	"fmt"
	"slices"
)

// SolveResult is the verdict of one solve check.
type SolveResult struct {
	Level  int
	Cases  [caseGroups]bool
	Solved bool
}

// Evidence lists the tile types currently pinned to each case.
func (b *Board) Evidence() [caseGroups][]TileType {
	var ev [caseGroups][]TileType
	w := b.world
	for _, e := range w.Tacks.All() {
		t, ok := w.Tacks.Get(e)
		if !ok || t.Group < 0 || t.Group >= caseGroups {
			continue
		}
		ev[t.Group] = append(ev[t.Group], t.TileType)
	}
	return ev
}

// CheckSolved evaluates the current wiring without queuing anything.
func (b *Board) CheckSolved() SolveResult {
	ev := b.Evidence()
	res := SolveResult{Level: b.state.Level, Solved: true}
	for c := 0; c < caseGroups; c++ {
		res.Cases[c] = caseSolved(ev[c], RequiredEvidence(b.state.Level, c))
		res.Solved = res.Solved && res.Cases[c]
	}
	return res
}

func caseSolved(have, want []TileType) bool {
	for _, t := range want {
		if !slices.Contains(have, t) {
			return false
		}
	}
	return true
}

func (b *Board) solveCases() {
	if len(b.events.SolveCase.Drain()) == 0 {
		return
	}
	res := b.CheckSolved()
	b.state.Solve = &res
	key, cue := "mistrial", SoundMistrial
	if res.Solved {
		key, cue = "solved", SoundSolved
	}
	b.play(cue)
	b.journal.Add(b.frame, CatSolve, key, -1, fmt.Sprintf("level %d cases %v", res.Level+1, res.Cases))
	b.log.Infof("level %d %s: cases %v", res.Level+1, key, res.Cases)
}
