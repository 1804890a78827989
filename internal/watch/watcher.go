// Package watch re-validates recipe files as they change on disk.
package watch

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/rcpe"
)

// ChangeKind describes the type of file change detected.
type ChangeKind int

const (
	ChangeValid   ChangeKind = iota // file written and decodes cleanly
	ChangeInvalid                   // file written but fails to decode
	ChangeRemoved                   // file deleted or renamed away
)

// String returns a short label for the change.
func (k ChangeKind) String() string {
	switch k {
	case ChangeValid:
		return "ok"
	case ChangeInvalid:
		return "invalid"
	default:
		return "removed"
	}
}

// Change is one debounced change to a recipe file.
type Change struct {
	Kind   ChangeKind
	File   string
	Recipe *domain.Recipe // set for ChangeValid
	Err    error          // set for ChangeInvalid
}

// Watcher monitors a library directory for recipe file changes using fsnotify.
type Watcher struct {
	Dir     string
	Ext     string
	Changes <-chan Change // Read-only external channel

	changes chan Change
	stop    chan struct{}
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for files with extension ext in dir. An
// empty ext means rcpe.Extension.
func NewWatcher(dir, ext string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if ext == "" {
		ext = rcpe.Extension
	}

	ch := make(chan Change, 16)
	return &Watcher{
		Dir:     dir,
		Ext:     ext,
		Changes: ch,
		changes: ch,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching the directory.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Dir); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	close(w.stop)
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Editors often write a file in several steps.
	const debounce = 100 * time.Millisecond
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.isRecipeFile(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[event.Name] = time.Now()
			}

		case now := <-ticker.C:
			for file, t := range pending {
				if now.Sub(t) >= debounce {
					delete(pending, file)
					if !w.emit(Check(file)) {
						return
					}
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal.
		}
	}
}

func (w *Watcher) emit(c Change) bool {
	select {
	case w.changes <- c:
		return true
	case <-w.stop:
		return false
	}
}

func (w *Watcher) isRecipeFile(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return strings.EqualFold(filepath.Ext(base), w.Ext)
}

// Check reads and decodes one file.
func Check(file string) Change {
	data, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return Change{Kind: ChangeRemoved, File: file}
	}
	if err != nil {
		return Change{Kind: ChangeInvalid, File: file, Err: err}
	}
	r, err := rcpe.Decode(data)
	if err != nil {
		return Change{Kind: ChangeInvalid, File: file, Err: err}
	}
	return Change{Kind: ChangeValid, File: file, Recipe: r}
}
