package game

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

type action int

const (
	actionPrev action = iota
	actionLevel
	actionNext
	actionSFX
	actionRestart
	actionSolve
	actionHelp
)

// button is a world-space rectangle on the right of the board.
type button struct {
	action action
	label  string
	pos    r2.Vec // centre
	size   r2.Vec
}

func (b button) hit(p r2.Vec) bool {
	return math.Abs(b.pos.X-p.X) < b.size.X/2 && math.Abs(b.pos.Y-p.Y) < b.size.Y/2
}

func defaultButtons() []button {
	return []button{
		{action: actionPrev, label: "<", pos: r2.Vec{X: 506.5, Y: 375}, size: r2.Vec{X: 105, Y: 112}},
		{action: actionLevel, pos: r2.Vec{X: 610, Y: 375}, size: r2.Vec{X: 102, Y: 112}},
		{action: actionNext, label: ">", pos: r2.Vec{X: 713.5, Y: 375}, size: r2.Vec{X: 105, Y: 112}},
		{action: actionHelp, label: "?", pos: r2.Vec{X: 612.5, Y: 265}, size: r2.Vec{X: 80, Y: 80}},
		{action: actionSFX, label: "SFX", pos: r2.Vec{X: 705, Y: 265}, size: r2.Vec{X: 80, Y: 80}},
		{action: actionRestart, label: "Restart", pos: r2.Vec{X: 610, Y: 155}, size: r2.Vec{X: 312, Y: 104}},
		{action: actionSolve, label: "Solve!", pos: r2.Vec{X: 610, Y: 45}, size: r2.Vec{X: 312, Y: 104}},
	}
}

// buttonAt returns the index of the button under p, or -1.
func buttonAt(buttons []button, p r2.Vec) int {
	for i, b := range buttons {
		if b.hit(p) {
			return i
		}
	}
	return -1
}

// Case file folders sit on the workbench; hovering one opens its report.
const caseFileCount = 3

var (
	caseFileSize   = r2.Vec{X: 165, Y: 220}
	caseReportPos  = r2.Vec{X: -200, Y: 50}
	caseReportSize = r2.Vec{X: 536, Y: 608}
)

func caseFileCentre(i int) r2.Vec {
	return r2.Vec{X: float64(i)*180 + 360 - 27.5, Y: -240}
}

// caseFileAt returns the case file under p, or -1.
func caseFileAt(p r2.Vec) int {
	for i := range caseFileCount {
		c := caseFileCentre(i)
		if math.Abs(c.X-p.X) <= caseFileSize.X/2 && math.Abs(c.Y-p.Y) <= caseFileSize.Y/2 {
			return i
		}
	}
	return -1
}

// hint is one box of the help overlay.
type hint struct {
	pos, size r2.Vec
	text      string
}

var hints = []hint{
	{
		pos: r2.Vec{X: -450, Y: 160}, size: r2.Vec{X: 500, Y: 280},
		text: "This is the evidence board! Use right click, or right click and drag, to draw threads between tacks. " +
			"Connect threads from the victims to the suspects through the correct evidence.\n\n" +
			"You can hold shift and right click to unravel threads from the end. Don't tangle the threads!",
	},
	{
		pos: r2.Vec{X: 100, Y: 300}, size: r2.Vec{X: 300, Y: 140},
		text: "Victims, suspects, and other notes from the legal entities sharing this board can't be moved.",
	},
	{
		pos: r2.Vec{X: -350, Y: -280}, size: r2.Vec{X: 400, Y: 140},
		text: "This is the workbench where you've dumped the evidence. " +
			"Left click and hold to drag tiles to and from the evidence board above.",
	},
	{
		pos: r2.Vec{X: 540, Y: -240}, size: r2.Vec{X: 300, Y: 170},
		text: "These are the case files for the crimes. Use them to work out which evidence goes with which crime!",
	},
	{
		pos: r2.Vec{X: 160, Y: 20}, size: r2.Vec{X: 440, Y: 200},
		text: "Once you think you have everything nicely tied up then press the Solve! button on the right to check! " +
			"You can also freely navigate between levels using the buttons at the top right.",
	},
}
