package backend

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"git.sr.ht/~whereswaldon/runway/timeline"
)

// Snapshot is the state of a watched timeline after one load attempt.
type Snapshot struct {
	Path string
	// Doc is the most recent document that loaded successfully. It survives
	// failed reloads so the chart keeps its last good state.
	Doc    timeline.Document
	Err    error
	Loaded time.Time
}

// Valid reports whether the snapshot holds a document worth drawing.
func (s Snapshot) Valid() bool {
	return len(s.Doc.OnPace) > 0 || len(s.Doc.Plan) > 0
}

// Source watches a single timeline file.
type Source struct {
	path string
	log  *zap.Logger

	// MaxTries bounds the load attempts made for each change.
	MaxTries uint
	// Settle is how long to wait after a change before reloading, so that a
	// burst of writes causes one reload.
	Settle time.Duration
	// NewBackOff builds the retry policy for one reload.
	NewBackOff func() backoff.BackOff
}

func NewSource(path string, log *zap.Logger) *Source {
	return &Source{
		path:     filepath.Clean(path),
		log:      log.With(zap.String("timeline", path)),
		MaxTries: 5,
		Settle:   50 * time.Millisecond,
		NewBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 50 * time.Millisecond
			b.MaxInterval = time.Second
			return b
		},
	}
}

// Path returns the watched file.
func (s *Source) Path() string {
	return s.path
}

// load reads the file, retrying while it is missing or half written.
func (s *Source) load(ctx context.Context) (timeline.Document, error) {
	return backoff.Retry(ctx, func() (timeline.Document, error) {
		doc, err := timeline.Load(s.path)
		if errors.Is(err, timeline.ErrEmpty) {
			return doc, backoff.Permanent(err)
		}
		return doc, err
	},
		backoff.WithBackOff(s.NewBackOff()),
		backoff.WithMaxTries(s.MaxTries),
		backoff.WithNotify(func(err error, next time.Duration) {
			s.log.Debug("timeline not ready", zap.Error(err), zap.Duration("retry_in", next))
		}),
	)
}

// Snapshots loads the timeline and then reloads it every time the file is
// written or replaced. The channel is closed once ctx is done.
func (s *Source) Snapshots(ctx context.Context) <-chan Snapshot {
	out := make(chan Snapshot, 1)
	go func() {
		defer close(out)
		var last Snapshot
		last.Path = s.path
		send := func() bool {
			select {
			case out <- last:
				return true
			case <-ctx.Done():
				return false
			}
		}
		reload := func() bool {
			doc, err := s.load(ctx)
			if ctx.Err() != nil {
				return false
			}
			last.Err = err
			last.Loaded = time.Now()
			if err != nil {
				s.log.Warn("failed loading timeline", zap.Error(err))
			} else {
				last.Doc = doc
				s.log.Info("loaded timeline",
					zap.Int("on_pace", len(doc.OnPace)),
					zap.Int("plan", len(doc.Plan)))
			}
			return send()
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			last.Err = fmt.Errorf("failed creating file watcher: %w", err)
			send()
			return
		}
		defer watcher.Close()
		// Watch the directory rather than the file so that editors replacing
		// the file through a rename are noticed.
		if err := watcher.Add(filepath.Dir(s.path)); err != nil {
			last.Err = fmt.Errorf("failed watching %s: %w", filepath.Dir(s.path), err)
			send()
			return
		}
		if !reload() {
			return
		}

		settle := time.NewTimer(s.Settle)
		settle.Stop()
		defer settle.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != s.path {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
					settle.Reset(s.Settle)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.log.Warn("file watcher error", zap.Error(err))
			case <-settle.C:
				if !reload() {
					return
				}
			}
		}
	}()
	return out
}
