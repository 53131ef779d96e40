package scene

import (
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultSettleDelay is how long a scene file must stay quiet before a change is reported
const DefaultSettleDelay = 100 * time.Millisecond

// Watcher reports scene files that changed on disk.
// A file is reported once its writes have settled, so a truncate followed by a write yields one event.
type Watcher struct {
	Events chan string
	Errors chan error

	fs      *fsnotify.Watcher
	delay   time.Duration
	settled chan string
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches the given directories for YAML scene changes
func NewWatcher(dirs ...string) (*Watcher, error) {
	return NewWatcherDelay(DefaultSettleDelay, dirs...)
}

// NewWatcherDelay is NewWatcher with a custom settle delay
func NewWatcherDelay(delay time.Duration, dirs ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, err
		}
	}

	w := &Watcher{
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		fs:      fs,
		delay:   delay,
		settled: make(chan string),
		done:    make(chan struct{}),
	}
	go w.loop()

	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})

	return err
}

func (w *Watcher) loop() {
	defer close(w.Events)
	defer close(w.Errors)

	timers := make(map[string]*time.Timer)
	defer func() {
		for _, timer := range timers {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !isSceneChange(event) {
				continue
			}
			w.schedule(timers, event.Name)

		case name := <-w.settled:
			delete(timers, name)
			select {
			case w.Events <- name:
			case <-w.done:
				return
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
				log.Printf("scene: watcher error dropped: %v", err)
			}
		}
	}
}

// schedule restarts the settle timer of a file
func (w *Watcher) schedule(timers map[string]*time.Timer, name string) {
	if timer, ok := timers[name]; ok {
		timer.Reset(w.delay)
		return
	}

	timers[name] = time.AfterFunc(w.delay, func() {
		select {
		case w.settled <- name:
		case <-w.done:
		}
	})
}

func isSceneChange(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}

	return isSceneFile(event.Name)
}

func isSceneFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
