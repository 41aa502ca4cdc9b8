package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reports edits to tunable files. Events carries the cleaned prefab
// name (e.g. "drone.yaml") so it can be passed straight to Load.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Drain hands every queued event to apply and every queued error to report
// without blocking. A closed channel is skipped rather than re-read. It
// returns false once both channels are closed.
func (w *Watcher) Drain(apply func(name string), report func(err error)) bool {
	events, errs := (<-chan string)(w.Events), (<-chan error)(w.Errors)
	for events != nil || errs != nil {
		select {
		case name, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			apply(name)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			report(err)
		default:
			return true
		}
	}
	return false
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isSpecFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < reloadDebounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- filepath.Base(event.Name):
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml" || ext == ".tengo"
}
