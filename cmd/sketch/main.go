// Command sketch renders a demonstration drawing with the graphic engine.
//
// Usage:
//
//	sketch render [--config sketch.toml] [--output demo.png]
//	sketch watch --config sketch.toml --output demo.png
//	sketch formats
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zyfsa/graphic"
)

type renderFlags struct {
	config  string
	output  string
	format  string
	seed    uint64
	workers int
	verbose bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f renderFlags

	root := &cobra.Command{
		Use:          "sketch",
		Short:        "Software rasterization and shading demo",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if f.verbose {
				graphic.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&f.config, "config", "c", "", "TOML or YAML config file")
	pf.StringVarP(&f.output, "output", "o", "demo.png", "output image file")
	pf.StringVarP(&f.format, "format", "f", "", "image format (default: from output extension)")
	pf.Uint64Var(&f.seed, "seed", 0, "fern random seed (overrides config)")
	pf.IntVarP(&f.workers, "workers", "w", 0, "sphere shading goroutines (overrides config)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log replay diagnostics to stderr")

	root.AddCommand(
		&cobra.Command{
			Use:   "render",
			Short: "Render the demo drawing to an image file",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return render(cmd, f)
			},
		},
		&cobra.Command{
			Use:   "watch",
			Short: "Re-render whenever the config file changes",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return watch(cmd, f)
			},
		},
		&cobra.Command{
			Use:   "formats",
			Short: "List the supported output formats",
			Run: func(cmd *cobra.Command, _ []string) {
				for _, name := range graphic.Formats() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
			},
		},
	)
	return root
}

func loadConfig(cmd *cobra.Command, f renderFlags) (graphic.Config, error) {
	cfg := graphic.DefaultConfig()
	if f.config != "" {
		var err error
		if cfg, err = graphic.LoadConfig(f.config); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = f.seed
	}
	if f.workers > 0 {
		cfg.Workers = f.workers
	}
	return cfg, cfg.Validate()
}

func render(cmd *cobra.Command, f renderFlags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}

	cv := graphic.NewCanvas(cfg)
	drawDemo(cv)
	st := cv.Redraw()

	if err := save(cv.Pixmap(), f); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(cmd.OutOrStdout(), "%s: %d elements (%d drawn, %d skipped, %d curves), %dx%d, %d pixels\n",
		f.output, cv.Log().Len(), st.Drawn, st.Skipped, st.Flushed,
		cv.Width(), cv.Height(), cv.Width()*cv.Height())
	return nil
}

func save(pm *graphic.Pixmap, f renderFlags) error {
	if f.format == "" {
		return graphic.SaveFile(pm, f.output)
	}
	out, err := os.Create(f.output)
	if err != nil {
		return err
	}
	if err := graphic.Encode(out, pm, f.format); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func watch(cmd *cobra.Command, f renderFlags) error {
	if f.config == "" {
		return fmt.Errorf("watch requires --config")
	}
	if err := render(cmd, f); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Editors often replace the file, so watch its directory.
	target := filepath.Clean(f.config)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return err
	}
	log := graphic.Logger()

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if err := render(cmd, f); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "sketch:", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("sketch: watch error", "err", err)
		}
	}
}
