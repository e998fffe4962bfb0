package main

import (
	"testing"
	"time"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/config"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/testutil"
)

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreDuration(ptr *time.Duration, val time.Duration) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags_DefaultsKeepConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Game.Difficulty = "hard"
	cfg.SelfPlay.PlyLimit = 40
	cfg.SelfPlay.White = "hard"

	applyFlags(cfg)

	testutil.AssertEqual(t, cfg.Game.Difficulty, "hard")
	testutil.AssertEqual(t, cfg.SelfPlay.PlyLimit, 40)
	testutil.AssertEqual(t, cfg.SelfPlay.White, "hard")
	testutil.AssertEqual(t, cfg.Server.Addr, ":8080")
}

func TestApplyGameFlags(t *testing.T) {
	defer saveRestoreString(difficulty, "easy")()
	defer saveRestoreString(humanColour, "b")()
	defer saveRestoreString(startFEN, testutil.FENKiwipete)()

	cfg := config.NewConfig()
	applyFlags(cfg)

	testutil.AssertNoError(t, cfg.Validate())
	testutil.AssertEqual(t, cfg.Game.Difficulty, "easy")
	testutil.AssertEqual(t, cfg.Game.HumanColour, "b")
	testutil.AssertEqual(t, cfg.Game.StartFEN, testutil.FENKiwipete)
}

func TestApplyLogFlags(t *testing.T) {
	defer saveRestoreString(logLevel, "debug")()
	defer saveRestoreString(logFormat, "json")()

	cfg := config.NewConfig()
	applyFlags(cfg)

	testutil.AssertEqual(t, cfg.Log.Level, "debug")
	testutil.AssertEqual(t, cfg.Log.Format, "json")
}

func TestApplyServerFlags(t *testing.T) {
	defer saveRestoreString(addr, "127.0.0.1:9000")()
	defer saveRestoreDuration(requestTimeout, 3*time.Second)()
	defer saveRestoreString(maxDifficulty, "medium")()

	cfg := config.NewConfig()
	applyFlags(cfg)

	testutil.AssertEqual(t, cfg.Server.Addr, "127.0.0.1:9000")
	testutil.AssertEqual(t, cfg.Server.RequestTimeout, 3*time.Second)
	testutil.AssertEqual(t, cfg.Server.MaxDifficulty, "medium")
}

func TestApplySelfPlayFlags(t *testing.T) {
	tests := []struct {
		name      string
		games     int
		workers   int
		plyLimit  int
		white     string
		wantGames int
		wantWork  int
		wantPly   int
		wantWhite string
	}{
		{"all set", 8, 3, 0, "hard", 8, 3, 0, "hard"},
		{"games only", 5, 0, -1, "", 5, 2, 200, "easy"},
		{"ply limit only", 0, 0, 60, "", 1, 2, 60, "easy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreInt(games, tt.games)()
			defer saveRestoreInt(workers, tt.workers)()
			defer saveRestoreInt(plyLimit, tt.plyLimit)()
			defer saveRestoreString(whiteTier, tt.white)()

			cfg := config.NewConfig()
			cfg.SelfPlay.Workers = 2
			applyFlags(cfg)

			testutil.AssertEqual(t, cfg.SelfPlay.Games, tt.wantGames)
			testutil.AssertEqual(t, cfg.SelfPlay.Workers, tt.wantWork)
			testutil.AssertEqual(t, cfg.SelfPlay.PlyLimit, tt.wantPly)
			testutil.AssertEqual(t, cfg.SelfPlay.White, tt.wantWhite)
			testutil.AssertEqual(t, cfg.SelfPlay.Black, "medium")
		})
	}
}

func TestApplySelfPlayFlags_PGNPath(t *testing.T) {
	defer saveRestoreString(pgnPath, "games.pgn")()

	cfg := config.NewConfig()
	applyFlags(cfg)
	testutil.AssertEqual(t, cfg.SelfPlay.PGNPath, "games.pgn")
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	defer saveRestoreString(envFile, "")()
	t.Setenv(config.EnvDifficulty, "hard")
	t.Setenv(config.EnvSelfPlayGames, "6")

	t.Run("env only", func(t *testing.T) {
		cfg, err := loadConfig()
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, cfg.Game.Difficulty, "hard")
		testutil.AssertEqual(t, cfg.SelfPlay.Games, 6)
	})

	t.Run("flag wins", func(t *testing.T) {
		defer saveRestoreString(difficulty, "easy")()
		cfg, err := loadConfig()
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, cfg.Game.Difficulty, "easy")
	})

	t.Run("invalid", func(t *testing.T) {
		defer saveRestoreString(humanColour, "purple")()
		_, err := loadConfig()
		testutil.AssertTrue(t, err != nil)
	})
}
