package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Garsondee/No-Loose-Threads/internal/log"
)

// Watcher reloads a config file whenever it is written and hands each valid
// result to the consumer through Changes. Invalid files are logged and
// skipped.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	log      *log.Logger

	changes chan Config
	done    chan struct{}

	mu    sync.Mutex
	timer *time.Timer
}

// Watch starts watching path. The directory is watched rather than the
// file so editors that replace the file on save are still seen.
func Watch(path string, debounce time.Duration, l *log.Logger) (*Watcher, error) {
	if l == nil {
		l = log.Discard()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", abs, err)
	}
	w := &Watcher{
		path:     abs,
		watcher:  fw,
		debounce: debounce,
		log:      l,
		changes:  make(chan Config, 1),
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Changes delivers reloaded configs. Only the newest pending one is kept.
func (w *Watcher) Changes() <-chan Config {
	return w.changes
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.schedule()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warnf("config watcher: %v", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

// reload runs under mu so the last reload to run reads the newest file and
// is the one left pending.
func (w *Watcher) reload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	cfg, err := Load(w.path)
	if err != nil {
		w.log.Warnf("config reload skipped: %v", err)
		return
	}
	select {
	case <-w.changes:
	default:
	}
	select {
	case w.changes <- cfg:
	default:
	}
	w.log.Infof("config reloaded from %s", w.path)
}

func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	close(w.done)
	return w.watcher.Close()
}
