package scheduler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mainra/showcase/internal/index"
	"github.com/mainra/showcase/internal/logger"
	"github.com/mainra/showcase/internal/sources/document"
)

// DefaultDebounce groups the burst of events editors emit for one save.
const DefaultDebounce = 500 * time.Millisecond

// Loader produces the published document.
type Loader interface {
	Load(ctx context.Context) document.Result
}

// Notifier is told when the published document changed.
type Notifier interface {
	Reload()
}

// ReloaderOptions tune a DocumentReloader.
type ReloaderOptions struct {
	Interval time.Duration
	// WatchPath is a local document file to watch. Empty disables watching.
	WatchPath string
	Debounce  time.Duration
}

// DocumentReloader keeps the public snapshot in sync with the published
// document: on start, on every tick, on manual triggers and, when a path is
// watched, whenever the file changes.
type DocumentReloader struct {
	loader        Loader
	snapshot      *index.Snapshot
	notifier      Notifier
	logger        logger.Logger
	opts          ReloaderOptions
	stopCh        chan struct{}
	stopOnce      sync.Once
	manualTrigger chan struct{}

	mu       sync.Mutex
	lastData []byte
}

// NewDocumentReloader creates a reloader. notifier may be nil.
func NewDocumentReloader(
	loader Loader,
	snap *index.Snapshot,
	notifier Notifier,
	log logger.Logger,
	opts ReloaderOptions,
	manualTrigger chan struct{},
) *DocumentReloader {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	return &DocumentReloader{
		loader:        loader,
		snapshot:      snap,
		notifier:      notifier,
		logger:        log,
		opts:          opts,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the document once and then keeps reloading it in the
// background. A failed initial load is not fatal: pages show their empty
// states until a source recovers.
func (dr *DocumentReloader) Start(ctx context.Context) error {
	if err := dr.Reload(ctx); err != nil {
		dr.logger.Warn("initial document load failed", logger.Error(err))
	}

	var watcher *fsnotify.Watcher
	if dr.opts.WatchPath != "" {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("create document watcher: %w", err)
		}
		dir := filepath.Dir(dr.opts.WatchPath)
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		watcher = w
		dr.logger.Info("watching games document", logger.String("path", dr.opts.WatchPath))
	}

	var ticker *time.Ticker
	if dr.opts.Interval > 0 {
		ticker = time.NewTicker(dr.opts.Interval)
	}

	go dr.run(ctx, watcher, ticker)
	return nil
}

func (dr *DocumentReloader) run(ctx context.Context, watcher *fsnotify.Watcher, ticker *time.Ticker) {
	var (
		ticks     <-chan time.Time
		events    <-chan fsnotify.Event
		watchErrs <-chan error
		fire      <-chan time.Time
		debounce  *time.Timer
	)
	if ticker != nil {
		defer ticker.Stop()
		ticks = ticker.C
	}
	if watcher != nil {
		defer func() { _ = watcher.Close() }()
		events, watchErrs = watcher.Events, watcher.Errors
	}
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()
	target := filepath.Clean(dr.opts.WatchPath)

	reload := func(reason string) {
		dr.logger.Debug("reloading games document", logger.String("reason", reason))
		if err := dr.Reload(ctx); err != nil {
			dr.logger.Error("failed to reload games document", logger.Error(err))
		}
	}

	for {
		select {
		case <-ticks:
			reload("interval")
		case <-dr.manualTrigger:
			dr.logger.Info("manual reload triggered")
			reload("manual")
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(dr.opts.Debounce)
			} else {
				debounce.Reset(dr.opts.Debounce)
			}
			fire = debounce.C
		case <-fire:
			fire = nil
			reload("file change")
		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			dr.logger.Warn("document watcher error", logger.Error(err))
		case <-dr.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop stops the background loop. It is safe to call more than once.
func (dr *DocumentReloader) Stop() {
	dr.stopOnce.Do(func() { close(dr.stopCh) })
}

// Reload loads the document through the chain and publishes it. When every
// source failed, a previously loaded document is kept and the joined
// failures are returned. Connected pages are notified only when the
// published content changed.
func (dr *DocumentReloader) Reload(ctx context.Context) error {
	res := dr.loader.Load(ctx)

	if res.Source == document.SourceEmpty && len(res.Failures) > 0 {
		errs := make([]error, 0, len(res.Failures))
		for _, f := range res.Failures {
			errs = append(errs, f)
		}
		err := errors.Join(errs...)
		if dr.snapshot.Loaded() {
			return fmt.Errorf("keeping previous document: %w", err)
		}
		dr.publish(res)
		return err
	}

	dr.publish(res)
	return nil
}

func (dr *DocumentReloader) publish(res document.Result) {
	dr.snapshot.Replace(res.Document, res.Source, res.LoadedAt)
	dr.logger.Info("games document published",
		logger.String("source", res.Source),
		logger.Int("games", dr.snapshot.Count()))

	data, err := dr.snapshot.Document().Encode()
	if err != nil {
		dr.logger.Warn("failed to fingerprint games document", logger.Error(err))
		return
	}

	dr.mu.Lock()
	changed := dr.lastData != nil && !bytes.Equal(dr.lastData, data)
	dr.lastData = data
	dr.mu.Unlock()

	if changed && dr.notifier != nil {
		dr.notifier.Reload()
	}
}
