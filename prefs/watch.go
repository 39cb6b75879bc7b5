package prefs

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// A save is a temp file write followed by a rename, so one save produces a
// burst of events. They are coalesced into a single notification once the
// file has been quiet this long.
const watchSettle = 100 * time.Millisecond

const watchOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// Watcher reports changes to one prefs file. It watches the parent
// directory, since the file itself is replaced on every save.
type Watcher struct {
	fsw  *fsnotify.Watcher
	path string

	// Events carries the file path once per settled burst of changes. At
	// most one notification is queued; later ones merge into it.
	Events chan string
	Errors chan error

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	path = filepath.Clean(path)
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:    fsw,
		path:   path,
		Events: make(chan string, 1),
		Errors: make(chan error, 1),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher and closes Events and Errors. It is safe to call
// more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.stop)
		err = w.fsw.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) matches(ev fsnotify.Event) bool {
	return ev.Op&watchOps != 0 && filepath.Base(ev.Name) == filepath.Base(w.path)
}

func (w *Watcher) loop() {
	defer close(w.done)

	var (
		settle *time.Timer
		fire   <-chan time.Time
	)
	defer func() {
		if settle != nil {
			settle.Stop()
		}
	}()

	for {
		select {
		case <-w.stop:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.matches(ev) {
				continue
			}
			if settle == nil {
				settle = time.NewTimer(watchSettle)
			} else {
				settle.Reset(watchSettle)
			}
			fire = settle.C

		case <-fire:
			fire = nil
			select {
			case w.Events <- w.path:
			default:
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		}
	}
}
