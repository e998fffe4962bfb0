// chessbot plays chess against a human, answers position queries, runs
// engine-versus-engine matches and serves the engine over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/config"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/errors"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessbot version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogFile(cfg)

	logger, err := config.NewLogger(cfg.Log, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{cfg: cfg, logger: logger, in: os.Stdin}
	if err := a.run(ctx, *mode); err != nil {
		logger.Error().Err(err).Str("mode", *mode).Msg("chessbot failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// loadConfig layers defaults, the dotenv file, the environment and the
// command-line flags, then validates the result.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	var err error
	if *envFile != "" {
		err = cfg.LoadEnv(*envFile)
	} else {
		err = cfg.ApplyEnv(os.LookupEnv)
	}
	if err != nil {
		return nil, err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogFile redirects logs to the -l file.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// app runs one mode against a loaded configuration.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	in     io.Reader
}

func (a *app) run(ctx context.Context, mode string) error {
	switch mode {
	case modePlay:
		return a.play(ctx)
	case modeBestMove:
		return a.bestMove()
	case modeEval:
		return a.eval()
	case modeSelfPlay:
		return a.selfPlay(ctx)
	case modeServe:
		return a.serve(ctx)
	}
	return fmt.Errorf("unknown mode %q: %w", mode, errors.ErrInvalidConfig)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessbot [options]\n\n")
	fmt.Fprintf(os.Stderr, "A chess engine with difficulty tiers.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes (-mode):\n")
	fmt.Fprintf(os.Stderr, "  play      Play against the engine in the terminal (default)\n")
	fmt.Fprintf(os.Stderr, "  bestmove  Print the engine's move for -fen\n")
	fmt.Fprintf(os.Stderr, "  eval      Print the evaluation of -fen\n")
	fmt.Fprintf(os.Stderr, "  selfplay  Play engine-versus-engine games and write PGN\n")
	fmt.Fprintf(os.Stderr, "  serve     Serve the HTTP API\n")
	fmt.Fprintf(os.Stderr, "\nEnvironment variables prefixed CHESSBOT_ set the same options; flags win.\n")
}
