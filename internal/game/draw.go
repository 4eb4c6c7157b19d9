package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/Garsondee/No-Loose-Threads/internal/board"
)

var (
	colBackground  = color.RGBA{R: 24, G: 20, B: 18, A: 255}
	colCork        = color.RGBA{R: 150, G: 110, B: 70, A: 255}
	colGrid        = color.RGBA{R: 128, G: 92, B: 58, A: 255}
	colBench       = color.RGBA{R: 72, G: 52, B: 36, A: 255}
	colHot         = color.RGBA{R: 255, G: 40, B: 40, A: 90}
	colInk         = color.RGBA{R: 26, G: 26, B: 26, A: 255}
	colPaperText   = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	colButton      = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	colButtonHover = color.RGBA{R: 255, G: 255, B: 102, A: 255}
	colButtonOff   = color.RGBA{R: 120, G: 55, B: 55, A: 255}
	colDialog      = color.RGBA{A: 250}
)

const (
	glyphWidth  = 7 // basicfont.Face7x13 advance
	lineSpacing = 15
	tackRadius  = 6
	threadWidth = 3
)

// wrapText breaks s into lines of at most width characters. Newlines in s
// start new paragraphs; blank lines are kept.
func wrapText(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line += " " + w
		}
		lines = append(lines, line)
	}
	return lines
}

// screenRect converts a world-space box to screen x, y, w, h.
func screenRect(centre, size r2.Vec) (float32, float32, float32, float32) {
	x, y := board.WorldToScreen(centre)
	return float32(x - size.X/2), float32(y - size.Y/2), float32(size.X), float32(size.Y)
}

func fillWorldRect(dst *ebiten.Image, centre, size r2.Vec, clr color.Color) {
	x, y, w, h := screenRect(centre, size)
	vector.FillRect(dst, x, y, w, h, clr, false)
}

func (g *Game) drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = lineSpacing
	op.PrimaryAlign = align
	text.Draw(dst, s, g.face, op)
}

// drawPanel fills a world-space box and writes title and body into it,
// wrapped to the box width.
func (g *Game) drawPanel(dst *ebiten.Image, centre, size r2.Vec, bg, fg color.Color, title, body string) {
	const margin = 15
	x, y, w, h := screenRect(centre, size)
	vector.FillRect(dst, x, y, w, h, bg, false)
	vector.StrokeRect(dst, x, y, w, h, 1, color.RGBA{R: 100, G: 100, B: 100, A: 160}, false)

	ty := float64(y) + margin
	if title != "" {
		g.drawText(dst, title, float64(x)+margin, ty, fg, text.AlignStart)
		ty += 2 * lineSpacing
	}
	lines := wrapText(body, int(size.X-2*margin)/glyphWidth)
	g.drawText(dst, strings.Join(lines, "\n"), float64(x)+margin, ty, fg, text.AlignStart)
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	benchTop := float32(board.ViewHeight/2 - board.WorkbenchY)
	vector.FillRect(screen, 0, benchTop, float32(screenW), float32(screenH)-benchTop, colBench, false)

	size := r2.Vec{X: board.GridWidth, Y: board.GridHeight}
	x, y, w, h := screenRect(board.GridCenter, size)
	vector.FillRect(screen, x, y, w, h, colCork, false)
	for c := 1; c < board.GridCols; c++ {
		gx := x + float32(c)*board.CellSize
		vector.StrokeLine(screen, gx, y, gx, y+h, 1, colGrid, false)
	}
	for r := 1; r < board.GridRows; r++ {
		gy := y + float32(r)*board.CellSize
		vector.StrokeLine(screen, x, gy, x+w, gy, 1, colGrid, false)
	}
	vector.StrokeRect(screen, x, y, w, h, 3, colInk, false)
}

func tileColor(t board.Tile) color.RGBA {
	switch t.Type.Kind {
	case board.KindV:
		return color.RGBA{R: 232, G: 196, B: 188, A: 255}
	case board.KindC:
		return color.RGBA{R: 188, G: 204, B: 232, A: 255}
	case board.KindW:
		shade := uint8(200 - 18*t.Variant)
		return color.RGBA{R: shade, G: shade, B: shade - 10, A: 255}
	}
	return color.RGBA{R: 236, G: 226, B: 180, A: 255}
}

func (g *Game) drawTiles(screen *ebiten.Image) {
	w := g.board.World()
	cell := r2.Vec{X: board.CellSize - 2, Y: board.CellSize - 2}
	for _, e := range w.Tilettes.All() {
		tl, _ := w.Tilettes.Get(e)
		tile, ok := w.Tiles.Get(tl.Tile)
		if !ok {
			continue
		}
		p, ok := w.Position(e)
		if !ok {
			continue
		}
		c := tileColor(*tile)
		if w.Held.Has(tl.Tile) {
			c.A = 210
		}
		fillWorldRect(screen, p, cell, c)
	}

	// Label each tile on its first cell.
	for _, e := range w.Tiles.All() {
		tile, _ := w.Tiles.Get(e)
		if tile.Type.Kind == board.KindW {
			continue
		}
		p, ok := w.Position(e)
		if !ok {
			continue
		}
		layout := tile.Type.Layout()
		if len(layout) == 0 {
			continue
		}
		sx, sy := board.WorldToScreen(r2.Add(p, board.TileOffset(layout[0])))
		g.drawText(screen, tile.Type.Label(), sx-board.HalfCellSize+3, sy-board.HalfCellSize+2, colInk, text.AlignStart)
	}
}

// drawThreads stretches a 1x1 pixel along each thread's transform.
func (g *Game) drawThreads(screen *ebiten.Image) {
	w := g.board.World()
	for _, e := range w.Threads.All() {
		th, _ := w.Threads.Get(e)
		tr, ok := w.Transforms.Get(e)
		if !ok || tr.Length == 0 {
			continue
		}
		sx, sy := board.WorldToScreen(tr.Pos)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-0.5, -0.5)
		op.GeoM.Scale(threadWidth, tr.Length)
		// World rotation is CCW with +Y up; on screen that is clockwise.
		op.GeoM.Rotate(-tr.Rotation)
		op.GeoM.Translate(sx, sy)
		op.ColorScale.ScaleWithColor(board.TackColor(th.Group))
		screen.DrawImage(g.pixel, op)
	}
}

func (g *Game) drawTacks(screen *ebiten.Image) {
	w := g.board.World()
	for _, e := range w.Tacks.All() {
		t, _ := w.Tacks.Get(e)
		p, ok := w.Position(e)
		if !ok {
			continue
		}
		sx, sy := board.WorldToScreen(p)
		vector.FillCircle(screen, float32(sx), float32(sy), tackRadius, t.Color, true)
		vector.StrokeCircle(screen, float32(sx), float32(sy), tackRadius, 1.5, colInk, true)
	}
}

func (g *Game) drawHighlights(screen *ebiten.Image) {
	cell := r2.Vec{X: board.CellSize - 1, Y: board.CellSize - 1}
	for c := range board.GridCols {
		for r := range board.GridRows {
			if g.board.Hot(c, r) {
				fillWorldRect(screen, board.HighlightCellCenter(c, r), cell, colHot)
			}
		}
	}
	for _, p := range g.board.Collisions() {
		sx, sy := board.WorldToScreen(p)
		vector.StrokeCircle(screen, float32(sx), float32(sy), 8, 2, color.RGBA{R: 255, A: 255}, true)
	}
}

func (g *Game) drawButtons(screen *ebiten.Image) {
	st := g.board.State()
	for i, b := range g.buttons {
		c := colButton
		switch {
		case i == g.hover && b.action != actionLevel:
			c = colButtonHover
		case b.action == actionSFX && !st.SFX:
			c = colButtonOff
		}
		fillWorldRect(screen, b.pos, b.size, c)

		label := b.label
		if b.action == actionLevel {
			label = fmt.Sprintf("Level\n%d", st.Level+1)
		}
		fg := colPaperText
		if c == colButtonHover {
			fg = colInk
		}
		sx, sy := board.WorldToScreen(b.pos)
		lines := strings.Count(label, "\n") + 1
		g.drawText(screen, label, sx, sy-float64(lines*lineSpacing)/2, fg, text.AlignCenter)
	}
}

func (g *Game) drawCaseFiles(screen *ebiten.Image) {
	level := g.board.State().Level
	folder := r2.Vec{X: 150, Y: 200}
	for i := range caseFileCount {
		c := caseFileCentre(i)
		fillWorldRect(screen, c, folder, color.RGBA{R: 204, G: 172, B: 112, A: 255})
		fillWorldRect(screen, r2.Add(c, r2.Vec{Y: 90}), r2.Vec{X: 150, Y: 20}, board.TackColor(i))
		sx, sy := board.WorldToScreen(c)
		g.drawText(screen, fmt.Sprintf("Case %d", i+1), sx, sy-6, colInk, text.AlignCenter)
	}
	if g.caseOpen < 0 {
		return
	}
	g.drawPanel(screen, caseReportPos, caseReportSize,
		color.RGBA{R: 238, G: 230, B: 206, A: 255}, colInk,
		fmt.Sprintf("Case %d", g.caseOpen+1), board.CaseReport(level, g.caseOpen))
}

// drawBanner shows the verdict of the last solve until the player moves on.
func (g *Game) drawBanner(screen *ebiten.Image) {
	res := g.board.State().Solve
	if res == nil || res == g.dismissed {
		return
	}
	if res.Solved {
		g.drawPanel(screen, caseReportPos, r2.Vec{X: 550, Y: 350}, colDialog,
			color.RGBA{R: 178, G: 230, B: 178, A: 255}, "Case Solved!",
			"After presenting the connections between the evidence, the three suspects were found guilty! "+
				"Now to move onto the next case. Use the navigation arrows at the top right to move on to the next level!")
		return
	}
	body := "The victims aren't linked to the correct suspects, or with the right evidence! " +
		"Check the case files by hovering your cursor over them and try again!\n"
	for i, ok := range res.Cases {
		if !ok {
			body += fmt.Sprintf("\nCase %d doesn't add up.", i+1)
		}
	}
	g.drawPanel(screen, caseReportPos, r2.Vec{X: 550, Y: 300}, colDialog,
		color.RGBA{R: 230, G: 178, B: 178, A: 255}, "Mistrial!", body)
}

func (g *Game) drawHelp(screen *ebiten.Image) {
	for _, h := range hints {
		g.drawPanel(screen, h.pos, h.size, color.RGBA{A: 235}, colPaperText, "", h.text)
	}
}
