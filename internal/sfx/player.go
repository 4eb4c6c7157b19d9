package sfx

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/Garsondee/No-Loose-Threads/internal/board"
	"github.com/Garsondee/No-Loose-Threads/internal/log"
)

// Player implements board.Sounder on the system speaker. Until Init
// succeeds every Play is a no-op, so a machine without audio still runs.
type Player struct {
	mu          sync.Mutex
	synth       *Synth
	mixer       *beep.Mixer
	initialized bool
	log         *log.Logger
}

var _ board.Sounder = (*Player)(nil)

func NewPlayer(volume float64, l *log.Logger) *Player {
	if l == nil {
		l = log.Discard()
	}
	return &Player{
		synth: NewSynth(SampleRate, volume),
		mixer: &beep.Mixer{},
		log:   l,
	}
}

// Init opens the speaker and starts the mixer. Calling it twice is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

func (p *Player) Play(c board.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	st, err := p.synth.Cue(c)
	if err != nil {
		p.log.Warnf("sfx: %v", err)
		return
	}
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.synth.SetVolume(v)
	p.mu.Unlock()
}

// Close silences anything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
