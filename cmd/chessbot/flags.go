// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/config"
)

// Mode names accepted by -mode.
const (
	modePlay     = "play"
	modeBestMove = "bestmove"
	modeEval     = "eval"
	modeSelfPlay = "selfplay"
	modeServe    = "serve"
)

var (
	mode    = flag.String("mode", modePlay, "Mode: play, bestmove, eval, selfplay, serve")
	envFile = flag.String("env", ".env", "Dotenv file read before the environment (missing file is ignored)")

	// Game options
	difficulty  = flag.String("difficulty", "", "Engine tier: easy, medium, hard")
	humanColour = flag.String("colour", "", "Side the human plays: white or black")
	startFEN    = flag.String("fen", "", "Starting position (FEN)")

	// Logging
	logLevel  = flag.String("loglevel", "", "Log level: debug, info, warn, error")
	logFormat = flag.String("logformat", "", "Log format: console or json")
	logFile   = flag.String("l", "", "Write logs to file instead of stderr")

	// HTTP server
	addr           = flag.String("addr", "", "HTTP listen address")
	requestTimeout = flag.Duration("timeout", 0, "Deadline for one HTTP move search")
	maxDifficulty  = flag.String("maxdifficulty", "", "Strongest tier HTTP clients may request")

	// Self-play
	games     = flag.Int("games", 0, "Number of self-play games")
	workers   = flag.Int("workers", 0, "Number of games played in parallel (0 = number of CPUs)")
	plyLimit  = flag.Int("plylimit", -1, "Adjudicate self-play games as drawn after N plies (0 = no limit)")
	whiteTier = flag.String("white", "", "Tier playing White in self-play")
	blackTier = flag.String("black", "", "Tier playing Black in self-play")
	pgnPath   = flag.String("pgn", "", "Write self-play games to this PGN file")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags overrides cfg with every flag given a non-default value.
// Flags take precedence over the environment.
func applyFlags(cfg *config.Config) {
	b := config.From(cfg)
	applyGameFlags(b)
	applyLogFlags(b)
	applyServerFlags(b)
	applySelfPlayFlags(cfg, b)
}

// applyGameFlags configures the human-versus-engine game.
func applyGameFlags(b *config.ConfigBuilder) {
	if *difficulty != "" {
		b.WithDifficulty(*difficulty)
	}
	if *humanColour != "" {
		b.WithHumanColour(*humanColour)
	}
	if *startFEN != "" {
		b.WithStartFEN(*startFEN)
	}
}

// applyLogFlags configures logging.
func applyLogFlags(b *config.ConfigBuilder) {
	if *logLevel != "" {
		b.WithLogLevel(*logLevel)
	}
	if *logFormat != "" {
		b.WithLogFormat(*logFormat)
	}
}

// applyServerFlags configures the HTTP API.
func applyServerFlags(b *config.ConfigBuilder) {
	if *addr != "" {
		b.WithServerAddr(*addr)
	}
	if *requestTimeout > 0 {
		b.WithRequestTimeout(*requestTimeout)
	}
	if *maxDifficulty != "" {
		b.WithMaxDifficulty(*maxDifficulty)
	}
}

// applySelfPlayFlags configures self-play matches. Unset values keep
// whatever the environment or defaults provided.
func applySelfPlayFlags(cfg *config.Config, b *config.ConfigBuilder) {
	sp := cfg.SelfPlay
	n, w, white, black := sp.Games, sp.Workers, sp.White, sp.Black
	if *games > 0 {
		n = *games
	}
	if *workers > 0 {
		w = *workers
	}
	if *whiteTier != "" {
		white = *whiteTier
	}
	if *blackTier != "" {
		black = *blackTier
	}
	b.WithSelfPlay(n, w, white, black)

	if *plyLimit >= 0 {
		b.WithPlyLimit(*plyLimit)
	}
	if *pgnPath != "" {
		b.WithPGNPath(*pgnPath)
	}
}
