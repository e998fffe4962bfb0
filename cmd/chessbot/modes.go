package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/engine"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/game"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/search"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/server"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/worker"
)

// bestMove prints the engine's choice for the configured position.
func (a *app) bestMove() error {
	pos, err := engine.NewPosition(a.cfg.Game.StartFEN)
	if err != nil {
		return err
	}
	eng, err := search.NewForDifficulty(a.cfg.Game.Difficulty, search.WithLogger(a.logger))
	if err != nil {
		return err
	}
	m, err := eng.SelectMove(pos)
	if err != nil {
		return err
	}

	st := eng.Stats()
	out := a.cfg.Output
	fmt.Fprintf(out, "bestmove %s\n", m)
	fmt.Fprintf(out, "difficulty %s depth %d score %d\n", eng.Profile().Name, st.Depth, st.Score)
	fmt.Fprintf(out, "nodes %d cache_hits %d time %v nps %.0f random %t\n",
		st.Nodes, st.CacheHits, st.Elapsed, st.NodesPerSecond(), st.RandomMove)
	return nil
}

// eval prints the evaluation breakdown of the configured position.
func (a *app) eval() error {
	pos, err := engine.NewPosition(a.cfg.Game.StartFEN)
	if err != nil {
		return err
	}
	b := search.EvaluateDetailed(pos)
	out := a.cfg.Output
	fmt.Fprint(out, game.Render(pos, false, chess.NoMove))
	if b.Terminal != "" {
		fmt.Fprintf(out, "terminal       %s\n", b.Terminal)
	} else {
		fmt.Fprintf(out, "material       %d\n", b.Material)
		fmt.Fprintf(out, "position       %d\n", b.Position)
		fmt.Fprintf(out, "mobility       %d\n", b.Mobility)
		fmt.Fprintf(out, "king safety    %d\n", b.KingSafety)
		fmt.Fprintf(out, "pawn structure %d\n", b.PawnStructure)
		fmt.Fprintf(out, "endgame        %t\n", b.Endgame)
	}
	fmt.Fprintf(out, "score          %d (%s to move)\n", b.Score, pos.Turn())
	return nil
}

// selfPlay plays the configured number of engine-versus-engine games in
// parallel and writes them as PGN.
func (a *app) selfPlay(ctx context.Context) error {
	sp := a.cfg.SelfPlay
	white, err := search.ProfileFor(sp.White)
	if err != nil {
		return err
	}
	black, err := search.ProfileFor(sp.Black)
	if err != nil {
		return err
	}

	matches := make([]game.Match, sp.Games)
	for i := range matches {
		matches[i] = game.Match{White: white, Black: black, StartFEN: a.cfg.Game.StartFEN, PlyLimit: sp.PlyLimit}
	}

	logger := a.logger.With().Str("white", sp.White).Str("black", sp.Black).Logger()
	results, runErr := worker.RunMatches(ctx, logger, matches, sp.Workers, worker.MatchProcessor(logger))

	var pgn strings.Builder
	score := map[string]int{}
	for i, r := range results {
		if len(r.Moves) == 0 && !r.Outcome.IsOver() {
			continue // never played
		}
		text, err := game.EncodePGN(r.Record(i + 1))
		if err != nil {
			return err
		}
		pgn.WriteString(text)
		pgn.WriteString("\n\n")
		score[r.Result()]++
	}

	if err := a.writePGN(pgn.String()); err != nil {
		return err
	}
	fmt.Fprintf(a.cfg.Output, "White (%s) wins %d, Black (%s) wins %d, draws %d\n",
		white.Name, score["1-0"], black.Name, score["0-1"], score["1/2-1/2"])
	return runErr
}

func (a *app) writePGN(text string) error {
	if a.cfg.SelfPlay.PGNPath == "" {
		_, err := fmt.Fprint(a.cfg.Output, text)
		return err
	}
	return os.WriteFile(a.cfg.SelfPlay.PGNPath, []byte(text), 0644) //nolint:gosec // G306: PGN output is meant to be readable
}

// serve runs the HTTP API until ctx is cancelled.
func (a *app) serve(ctx context.Context) error {
	srv, err := server.New(a.cfg.Server, a.logger)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
