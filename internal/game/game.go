package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/No-Loose-Threads/internal/board"
	"github.com/Garsondee/No-Loose-Threads/internal/config"
	"github.com/Garsondee/No-Loose-Threads/internal/log"
	"github.com/Garsondee/No-Loose-Threads/internal/sfx"
)

// screenW and screenH are the logical screen; window size only rescales it.
const (
	screenW = int(board.ViewWidth)
	screenH = int(board.ViewHeight)
)

// eventLogCapacity bounds the on-screen event history.
const eventLogCapacity = 200

type Game struct {
	cfg     config.Config
	board   *board.Board
	log     *log.Logger
	player  *sfx.Player
	changes <-chan config.Config

	face  *text.GoXFace
	pixel *ebiten.Image // 1x1 white, stretched into thread sprites

	buttons  []button
	hover    int // index into buttons, -1 when none
	caseOpen int // case file under the cursor, -1 when none
	showHelp bool

	// dismissed is the solve result whose dialog the player has moved past.
	dismissed *board.SolveResult
}

// Option configures a Game.
type Option func(*Game)

func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithPlayer routes board cues to p. Without it the game is silent.
func WithPlayer(p *sfx.Player) Option {
	return func(g *Game) { g.player = p }
}

// WithConfigChanges applies every config received on ch at the start of a
// frame.
func WithConfigChanges(ch <-chan config.Config) Option {
	return func(g *Game) { g.changes = ch }
}

func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{
		cfg:      cfg,
		log:      log.Discard(),
		face:     text.NewGoXFace(basicfont.Face7x13),
		pixel:    ebiten.NewImage(1, 1),
		hover:    -1,
		caseOpen: -1,
	}
	for _, o := range opts {
		o(g)
	}
	g.pixel.Fill(color.White)
	g.buttons = defaultButtons()

	bopts := []board.Option{
		board.WithSeed(cfg.Seed),
		board.WithLogger(g.log),
		board.WithEventLog(eventLogCapacity),
		board.WithLevel(cfg.Level),
	}
	if g.player != nil {
		bopts = append(bopts, board.WithSounder(g.player))
	}
	g.board = board.New(bopts...)
	g.board.State().SFX = cfg.SFX
	return g
}

// Board exposes the interaction core, for the debug tooling.
func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) Update() error {
	g.drainConfig()

	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	in := pollInput()
	g.handleKeys()
	g.handleButtons(in)
	g.board.Update(in)
	return nil
}

func (g *Game) drainConfig() {
	if g.changes == nil {
		return
	}
	for {
		select {
		case cfg := <-g.changes:
			g.applyConfig(cfg)
		default:
			return
		}
	}
}

// applyConfig takes the settings that can change mid-session. Seed and
// level only matter at start-up.
func (g *Game) applyConfig(cfg config.Config) {
	g.cfg.SFX = cfg.SFX
	g.cfg.Volume = cfg.Volume
	g.cfg.Debug = cfg.Debug
	g.cfg.LogLevel = cfg.LogLevel

	g.board.State().SFX = cfg.SFX
	g.log.SetLevel(cfg.LoggerLevel())
	if g.player != nil {
		g.player.SetVolume(cfg.Volume)
	}
	g.log.Infof("applied config: sfx=%v volume=%.2f debug=%v log=%s", cfg.SFX, cfg.Volume, cfg.Debug, cfg.LogLevel)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	g.drawBoard(screen)
	g.drawTiles(screen)
	g.drawThreads(screen)
	g.drawTacks(screen)
	g.drawHighlights(screen)
	g.drawButtons(screen)
	drawLogPanel(screen, g.board.Log(), logPanelX, logPanelY, logPanelH)
	g.drawCaseFiles(screen)
	g.drawBanner(screen)
	if g.showHelp || g.hoveringHelp() {
		g.drawHelp(screen)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenW, screenH
}
