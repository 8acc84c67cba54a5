package i18n

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 300 * time.Millisecond

// Watcher reloads the catalogs of a directory into a Store whenever one of
// its resources changes. A reload that fails leaves the Store untouched.
type Watcher struct {
	mu            sync.Mutex
	watcher       *fsnotify.Watcher
	dir           string
	store         *Store
	defaultLocale string
	debounce      time.Duration
	onReload      func(error)
	stopCh        chan struct{}
	doneCh        chan struct{}
	running       bool
}

// NewWatcher creates a Watcher for dir. defaultLocale is handed to every
// Translator it builds.
func NewWatcher(dir string, store *Store, defaultLocale string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:       watcher,
		dir:           dir,
		store:         store,
		defaultLocale: defaultLocale,
		debounce:      defaultDebounce,
	}, nil
}

// OnReload registers fn to be called after every reload attempt with its
// result. Must be called before Start.
func (w *Watcher) OnReload(fn func(error)) {
	w.onReload = fn
}

// Start begins watching. It does not block. A Watcher whose context was
// cancelled may be started again; one that was stopped may not.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}
	if err := w.watcher.Add(w.dir); err != nil {
		return err
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	zap.L().Info("i18n: watching translations", zap.String("dir", w.dir))

	go w.run(ctx, w.stopCh, w.doneCh)
	return nil
}

// Stop stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		_ = w.watcher.Close()
		return
	}
	w.running = false
	stopCh, doneCh := w.stopCh, w.doneCh
	w.mu.Unlock()

	close(stopCh)
	<-doneCh

	if err := w.watcher.Close(); err != nil {
		zap.L().Error("i18n: close watcher", zap.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context, stopCh, doneCh chan struct{}) {
	defer func() {
		w.mu.Lock()
		if w.doneCh == doneCh {
			w.running = false
		}
		close(doneCh)
		w.mu.Unlock()
	}()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			zap.L().Debug("i18n: translations changed", zap.String("file", event.Name), zap.Stringer("op", event.Op))
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			zap.L().Error("i18n: watcher", zap.Error(err))

		case <-timer.C:
			w.reload(ctx)
		}
	}
}

func relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	_, ok := FormatOf(filepath.Base(event.Name))
	return ok
}

func (w *Watcher) reload(ctx context.Context) {
	t, err := Load(ctx, DirSource{Path: w.dir}, w.defaultLocale)
	if err != nil {
		zap.L().Error("i18n: reload failed, keeping previous catalogs", zap.String("dir", w.dir), zap.Error(err))
	} else {
		w.store.Swap(t)
		zap.L().Info("i18n: catalogs reloaded", zap.Strings("locales", t.Locales()))
	}
	if w.onReload != nil {
		w.onReload(err)
	}
}
