package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"bjcounter/internal/debounce"
	"bjcounter/internal/telemetry"
	"bjcounter/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// config holds the parsed CLI configuration.
type config struct {
	debounce time.Duration
	logFile  string
	noMouse  bool
}

func parseFlags() config {
	var cfg config

	flag.DurationVar(&cfg.debounce, "debounce", debounce.DefaultInterval, "minimum interval between two accepted triggers of the same action (0 disables)")
	flag.StringVar(&cfg.logFile, "log", os.Getenv("BJCOUNTER_LOG"), "append diagnostic logs to this file (default $BJCOUNTER_LOG)")
	flag.BoolVar(&cfg.noMouse, "no-mouse", false, "disable clickable buttons and mouse-wheel scrolling")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bjcounter [flags]\n\n")
		fmt.Fprintf(os.Stderr, "bjcounter tallies blackjack hands: a (+1), s (+0), d (-1),\n")
		fmt.Fprintf(os.Stderr, "Del (delete last), r (reset all), q (quit).\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if cfg.debounce < 0 {
		fmt.Fprintln(os.Stderr, "error: --debounce must not be negative")
		flag.Usage()
		os.Exit(1)
	}

	return cfg
}

func run(cfg config) error {
	if cfg.logFile != "" {
		f, err := tea.LogToFile(cfg.logFile, "bjcounter")
		if err != nil {
			return fmt.Errorf("log file %q: %w", cfg.logFile, err)
		}
		defer f.Close()
	} else {
		// Anything written to stderr would corrupt the alt screen.
		log.SetOutput(io.Discard)
	}

	ctx := context.Background()
	rec, err := telemetry.NewOTLPRecorder(ctx)
	if err != nil {
		return fmt.Errorf("otlp exporter: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rec.Shutdown(shutdownCtx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	opts := ui.Options{Debounce: cfg.debounce}
	if rec != nil {
		opts.Observer = rec
	}
	log.Printf("starting: debounce=%s mouse=%v telemetry=%v", cfg.debounce, !cfg.noMouse, rec != nil)

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if !cfg.noMouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(ui.NewAppModel(opts).AsTeaModel(), progOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "bjcounter: %v\n", err)
		os.Exit(1)
	}
}
