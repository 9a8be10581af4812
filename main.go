// Command runway opens a window that charts a timeline file and redraws it
// whenever the file changes.
package main

import (
	"context"
	"fmt"
	"os"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/x/explorer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"git.sr.ht/~whereswaldon/runway/backend"
	"git.sr.ht/~whereswaldon/runway/config"
)

func newRootCmd() *cobra.Command {
	var (
		configPath   string
		timelinePath string
		debug        bool
	)
	cmd := &cobra.Command{
		Use:   "runway",
		Short: "Chart a cash runway timeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("timeline") {
				cfg.Timeline = timelinePath
			}
			if debug {
				cfg.Debug = true
			}
			log, err := config.NewLogger(cfg.Debug)
			if err != nil {
				return fmt.Errorf("failed building logger: %w", err)
			}
			go func() {
				defer func() { _ = log.Sync() }()
				w := app.NewWindow(app.Title("Runway"))
				if err := loop(w, cfg, log); err != nil {
					log.Fatal("window closed with error", zap.Error(err))
				}
				os.Exit(0)
			}()
			app.Main()
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "configuration file (yaml, json or toml)")
	cmd.Flags().StringVar(&timelinePath, "timeline", config.DefaultTimeline, "timeline file to watch")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable development logging")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func loop(w *app.Window, cfg *config.Config, log *zap.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expl := explorer.NewExplorer(w)
	bundle := backend.NewBundle(log, cfg.Timeline)
	ui := NewUI(backend.NewWindowState(ctx, bundle, w), expl, cfg)
	log.Info("watching timeline", zap.String("path", cfg.Timeline))

	var ops op.Ops
	for {
		ev := w.NextEvent()
		expl.ListenEvents(ev)
		switch ev := ev.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, ev)
			ui.Layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}
