// Command runway-render draws a timeline file as SVG without opening a
// window.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"git.sr.ht/~whereswaldon/runway/chart"
	"git.sr.ht/~whereswaldon/runway/config"
	"git.sr.ht/~whereswaldon/runway/theme"
	"git.sr.ht/~whereswaldon/runway/timeline"
)

type options struct {
	output    string
	donut     string
	ring      string
	progress  float64
	themeName string
	donutSize float64
}

// writeFile creates path and hands it to write, or hands stdout over when
// path is empty or "-".
func writeFile(path string, stdout io.Writer, write func(io.Writer) error) (err error) {
	if path == "" || path == "-" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed closing %s: %w", path, cerr)
		}
	}()
	return write(f)
}

func render(cfg *config.Config, opts options, log *zap.Logger, stdout io.Writer) error {
	mode := cfg.Mode()
	if opts.themeName != "" {
		m, err := theme.ParseMode(opts.themeName)
		if err != nil {
			return err
		}
		mode = m
	}
	palette := mode.Palette()

	doc, err := timeline.Load(cfg.Timeline)
	if err != nil {
		return err
	}
	primary, secondary := doc.Series()
	scene := chart.Render(cfg.Chart(palette), primary, secondary)
	if err := writeFile(opts.output, stdout, scene.WriteSVG); err != nil {
		return err
	}
	log.Info("rendered projection",
		zap.String("timeline", cfg.Timeline),
		zap.Int("strokes", len(scene.Strokes)),
		zap.Int("markers", len(scene.Markers)),
	)

	if opts.donut != "" {
		d := chart.Donut(doc.Slices(palette), opts.donutSize, opts.donutSize/8)
		err := writeFile(opts.donut, stdout, func(w io.Writer) error {
			return d.WriteSVG(w, palette.Text)
		})
		if err != nil {
			return err
		}
		log.Info("rendered breakdown", zap.Int("arcs", len(d.Arcs)), zap.String("total", d.TotalLabel))
	}

	if opts.ring != "" {
		r := chart.ProgressRing(opts.progress, opts.donutSize, opts.donutSize/10)
		err := writeFile(opts.ring, stdout, func(w io.Writer) error {
			return r.WriteSVG(w, palette.Border, palette.Primary)
		})
		if err != nil {
			return err
		}
		log.Info("rendered progress ring", zap.Float64("progress", r.Progress))
	}
	return nil
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var (
		opts       options
		configPath string
		debug      bool
	)
	cmd := &cobra.Command{
		Use:           "runway-render [timeline.json]",
		Short:         "Render a cash runway timeline to SVG",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Timeline = args[0]
			}
			if !cmd.Flags().Changed("output") && cfg.Output != "" {
				opts.output = cfg.Output
			}
			if opts.donutSize <= 0 {
				return fmt.Errorf("%w: donut size must be positive, got %g", config.ErrInvalid, opts.donutSize)
			}
			log, err := config.NewLogger(debug || cfg.Debug)
			if err != nil {
				return fmt.Errorf("failed building logger: %w", err)
			}
			defer func() { _ = log.Sync() }()
			return render(cfg, opts, log, stdout)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "chart SVG path (stdout when empty)")
	f.StringVar(&opts.donut, "donut", "", "also write the spending breakdown donut to this path")
	f.StringVar(&opts.ring, "ring", "", "also write a progress ring to this path")
	f.Float64Var(&opts.progress, "progress", 0, "progress percentage for --ring")
	f.Float64Var(&opts.donutSize, "donut-size", 200, "donut and ring size in pixels")
	f.StringVar(&opts.themeName, "theme", "", "override the configured theme (light or dark)")
	f.StringVar(&configPath, "config", "", "configuration file (yaml, json or toml)")
	f.BoolVar(&debug, "debug", false, "enable development logging")
	return cmd
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "runway-render:", err)
		if errors.Is(err, config.ErrInvalid) || errors.Is(err, timeline.ErrEmpty) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
