package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/game"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/search"
)

// MatchProcessor returns a ProcessFunc that plays each item with
// game.PlayMatch. Every match builds its own engines; opts are shared
// between goroutines and must be safe for that, so per-engine random
// sources do not belong here.
func MatchProcessor(logger zerolog.Logger, opts ...search.Option) ProcessFunc {
	return func(ctx context.Context, item WorkItem) ProcessResult {
		start := time.Now()
		result, err := game.PlayMatch(ctx, item.Match, opts...)
		if err != nil {
			logger.Warn().Err(err).Int("game", item.Index+1).Msg("match aborted")
			return ProcessResult{Index: item.Index, Result: result, Error: err}
		}
		logger.Info().
			Int("game", item.Index+1).
			Str("white", item.Match.White.Name.String()).
			Str("black", item.Match.Black.Name.String()).
			Str("result", result.Result()).
			Int("plies", len(result.Moves)).
			Int64("nodes", result.Nodes).
			Dur("took", time.Since(start)).
			Msg("match finished")
		return ProcessResult{Index: item.Index, Result: result}
	}
}

// RunMatches plays matches on a pool of workers and returns the results
// in submission order. The first failing match stops the pool; its error
// is returned along with the results collected so far.
func RunMatches(ctx context.Context, logger zerolog.Logger, matches []game.Match, workers int, process ProcessFunc) ([]game.MatchResult, error) {
	pool := NewPool(process, WithWorkers(workers), WithBufferSize(len(matches)))
	pool.Start(ctx)
	logger.Info().Int("games", len(matches)).Int("workers", pool.NumWorkers()).Msg("self-play started")

	results := make([]game.MatchResult, len(matches))
	var g errgroup.Group
	g.Go(func() error {
		defer pool.Close()
		for i, m := range matches {
			if ctx.Err() != nil || pool.IsStopped() {
				break
			}
			pool.Submit(WorkItem{Match: m, Index: i})
		}
		return nil
	})
	g.Go(func() error {
		var first error
		for res := range pool.Results() {
			results[res.Index] = res.Result
			if res.Error != nil && first == nil {
				first = res.Error
				pool.Stop()
			}
		}
		return first
	})

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
