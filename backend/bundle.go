package backend

import (
	"context"

	"gioui.org/app"
	"git.sr.ht/~gioverse/skel/stream"
	"go.uber.org/zap"
)

// WindowState ties the backend to one window. Streams created with its
// Controller invalidate the window whenever they produce a value.
type WindowState struct {
	Bundle
	Controller *stream.Controller
	// Invalidate requests a new frame from the window.
	Invalidate func()
}

func NewWindowState(ctx context.Context, bundle Bundle, win *app.Window) WindowState {
	return WindowState{
		Bundle:     bundle,
		Controller: stream.NewController(ctx, win.Invalidate),
		Invalidate: win.Invalidate,
	}
}

// Bundle holds the backend services shared by every window.
type Bundle struct {
	Log    *zap.Logger
	Source *Source
}

func NewBundle(log *zap.Logger, timelinePath string) Bundle {
	return Bundle{
		Log:    log,
		Source: NewSource(timelinePath, log),
	}
}

// Open replaces the watched timeline. Streams already reading the previous
// source keep running until their context ends.
func (b *Bundle) Open(path string) *Source {
	b.Source = NewSource(path, b.Log)
	return b.Source
}
