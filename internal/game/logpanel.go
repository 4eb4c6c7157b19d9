package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/No-Loose-Threads/internal/board"
)

// The event log panel sits on the right of the workbench, clear of the
// tiles dumped there at level load.
const (
	logPanelX     = 790
	logPanelY     = 540
	logPanelH     = 350
	logPanelWidth = 255
	logLineHeight = 11
	logCharWidth  = 6 // DebugPrint glyph advance
	logTitleH     = 16
)

// Row colours per event category.
var categoryColors = map[string]color.RGBA{
	board.CatThread: {R: 200, G: 170, B: 70, A: 255},
	board.CatTile:   {R: 90, G: 160, B: 210, A: 255},
	board.CatLevel:  {R: 150, G: 150, B: 150, A: 255},
	board.CatSolve:  {R: 220, G: 90, B: 200, A: 255},
}

// visibleEntries is how many of n entries fit in a panel of height h.
func visibleEntries(n, h int) int {
	fit := (h - logTitleH - 8) / logLineHeight
	if fit < 0 {
		fit = 0
	}
	return min(n, fit)
}

// fitLine truncates s to the panel width.
func fitLine(s string, width int) string {
	maxChars := (width - 14) / logCharWidth
	if maxChars <= 0 {
		return ""
	}
	if len(s) <= maxChars {
		return s
	}
	if maxChars <= 3 {
		return s[:maxChars]
	}
	return s[:maxChars-3] + "..."
}

// drawLogPanel renders the newest events at the bottom of the panel.
func drawLogPanel(screen *ebiten.Image, el *board.EventLog, panelX, panelY, panelH int) {
	x, y := float32(panelX), float32(panelY)
	vector.FillRect(screen, x, y, logPanelWidth, float32(panelH), color.RGBA{R: 10, G: 12, B: 10, A: 230}, false)
	vector.StrokeRect(screen, x, y, logPanelWidth, float32(panelH), 1.0, color.RGBA{R: 50, G: 70, B: 50, A: 255}, false)

	vector.FillRect(screen, x, y, logPanelWidth, logTitleH, color.RGBA{R: 20, G: 30, B: 20, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENT LOG", panelX+8, panelY+2)
	vector.StrokeLine(screen, x, y+logTitleH, x+logPanelWidth, y+logTitleH, 1.0, color.RGBA{R: 50, G: 80, B: 50, A: 200}, false)

	if el == nil {
		return
	}
	entries := el.Recent(visibleEntries(el.Len(), panelH))
	recent := 3

	ly := panelY + logTitleH + 4
	for i, e := range entries {
		if i >= len(entries)-recent {
			vector.FillRect(screen, x+2, float32(ly), logPanelWidth-4, logLineHeight, color.RGBA{R: 30, G: 40, B: 30, A: 160}, false)
		}
		dot, ok := categoryColors[e.Category]
		if !ok {
			dot = color.RGBA{R: 200, G: 200, B: 200, A: 255}
		}
		vector.FillRect(screen, x+5, float32(ly+3), 3, 5, dot, false)
		ebitenutil.DebugPrintAt(screen, fitLine(e.String(), logPanelWidth), panelX+12, ly)
		ly += logLineHeight
	}
}
