package game

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleDebugKeys serves the level-authoring shortcuts enabled by the
// debug setting.
func (g *Game) handleDebugKeys() {
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.board.SpawnRandomEvidence()
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		g.board.SpawnRandomJunk(shift)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		n := g.board.RestringJunk()
		g.log.Infof("restrung %d junk threads", n)
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.dumpLayout()
	}
}

// dumpLayout logs the on-board tile positions and copies them to the
// clipboard for pasting into a level table.
func (g *Game) dumpLayout() {
	dump := g.board.DumpLayout()
	for _, line := range strings.Split(strings.TrimSpace(dump), "\n") {
		g.log.Infof("layout: %s", line)
	}
	if err := clipboard.WriteAll(dump); err != nil {
		g.log.Warnf("copy layout to clipboard: %v", err)
		return
	}
	g.log.Infof("layout copied to clipboard")
}
