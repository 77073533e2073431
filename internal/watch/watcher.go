package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const DefaultDebounce = 300 * time.Millisecond

// Watcher reports debounced changes to a set of files. It watches their
// directories, so files replaced by rename or created later are still seen.
type Watcher struct {
	watcher  *fsnotify.Watcher
	dirs     map[string]bool
	files    map[string]bool
	match    func(name string) bool
	debounce time.Duration
	log      zerolog.Logger

	onChange chan struct{}
	mu       sync.Mutex
	timer    *time.Timer
	done     chan struct{}
	once     sync.Once
}

// New creates a watcher. match, if not nil, also accepts any file in a
// watched directory whose base name it returns true for.
func New(debounce time.Duration, match func(name string) bool, log zerolog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		watcher:  fsw,
		dirs:     make(map[string]bool),
		files:    make(map[string]bool),
		match:    match,
		debounce: debounce,
		log:      log,
		onChange: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}, nil
}

// AddDir watches dir for files accepted by match.
func (w *Watcher) AddDir(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.addDirLocked(dir)
}

// Add watches a single file, which need not exist yet.
func (w *Watcher) Add(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.addDirLocked(filepath.Dir(absPath)); err != nil {
		return err
	}
	w.files[absPath] = true
	return nil
}

func (w *Watcher) addDirLocked(dir string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	if w.dirs[absDir] {
		return nil
	}
	if err := w.watcher.Add(absDir); err != nil {
		return err
	}
	w.dirs[absDir] = true
	return nil
}

// Start begins delivering change notifications.
func (w *Watcher) Start() <-chan struct{} {
	go w.run()
	return w.onChange
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if w.relevant(event.Name) {
				w.log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("change detected")
				w.trigger()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("watch error")
		}
	}
}

func (w *Watcher) relevant(name string) bool {
	absName, err := filepath.Abs(name)
	if err != nil {
		absName = name
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.files[absName] {
		return true
	}
	return w.match != nil && w.dirs[filepath.Dir(absName)] && w.match(filepath.Base(absName))
}

func (w *Watcher) trigger() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.onChange <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) Close() error {
	w.once.Do(func() { close(w.done) })
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}

// Files returns the explicitly watched files.
func (w *Watcher) Files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	files := make([]string, 0, len(w.files))
	for f := range w.files {
		files = append(files, f)
	}
	return files
}
