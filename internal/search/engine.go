package search

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/errors"
)

// infinity bounds the alpha-beta window. It is larger than any score.
const infinity = 1 << 30

// Engine picks moves with a depth-limited negamax alpha-beta search. It
// owns its cache and is meant to be used by one player at a time; it is
// not safe for concurrent use.
type Engine struct {
	profile Profile
	cache   *Cache
	rng     *rand.Rand
	logger  zerolog.Logger
	stats   Stats
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for random and fallback moves.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithLogger sets the logger that receives per-search statistics at debug
// level.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an engine for profile with an empty cache sized for it.
func New(profile Profile, opts ...Option) (*Engine, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	cache, err := NewCache(profile.CacheCapacity)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		profile: profile,
		cache:   cache,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// NewForDifficulty creates an engine for a built-in tier name.
func NewForDifficulty(name string, opts ...Option) (*Engine, error) {
	profile, err := ProfileFor(name)
	if err != nil {
		return nil, err
	}
	return New(profile, opts...)
}

// Profile returns the engine's profile.
func (e *Engine) Profile() Profile {
	return e.profile
}

// Stats returns the statistics of the most recent SelectMove call.
func (e *Engine) Stats() Stats {
	return e.stats
}

// CacheLen returns the number of cached positions.
func (e *Engine) CacheLen() int {
	return e.cache.Len()
}

// ClearCache drops every cached position.
func (e *Engine) ClearCache() {
	e.cache.Purge()
}

// SelectMove returns the move the engine plays in pos. The board is
// borrowed for the duration of the call and is left as it was found.
//
// With the profile's random-move probability the search is skipped and a
// uniformly random legal move is returned instead. A position without
// legal moves fails with ErrNoLegalMoves; a panic raised by the rules
// engine during the search fails with ErrSearchFailed.
func (e *Engine) SelectMove(pos Board) (move chess.Move, err error) {
	e.stats = Stats{Depth: e.profile.MaxDepth}
	start := time.Now()
	defer func() {
		e.stats.Elapsed = time.Since(start)
	}()

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return chess.NoMove, errors.Wrapf(errors.ErrNoLegalMoves, "position %s", pos.Fingerprint())
	}

	if p := e.profile.RandomMoveProbability; p > 0 && e.rng.Float64() < p {
		e.stats.RandomMove = true
		return e.randomMove(moves), nil
	}

	defer func() {
		if r := recover(); r != nil {
			move = chess.NoMove
			err = fmt.Errorf("%w: %v", errors.ErrSearchFailed, r)
		}
	}()

	best, score := e.searchRoot(pos, moves)
	if best.IsNone() {
		best = e.randomMove(moves)
		e.stats.RandomMove = true
	}
	e.stats.Score = score
	e.stats.Elapsed = time.Since(start)

	e.logger.Debug().
		Int64("nodes", e.stats.Nodes).
		Int64("cache_hits", e.stats.CacheHits).
		Dur("elapsed", e.stats.Elapsed).
		Float64("nps", e.stats.NodesPerSecond()).
		Int("depth", e.stats.Depth).
		Int("score", score).
		Str("move", best.String()).
		Msg("move evaluation complete")

	return best, nil
}

func (e *Engine) randomMove(moves []chess.Move) chess.Move {
	return moves[e.rng.Intn(len(moves))]
}

// searchRoot searches every root move with a window narrowed by the best
// score so far and keeps the first move reaching the maximum.
func (e *Engine) searchRoot(pos Board, moves []chess.Move) (chess.Move, int) {
	best := chess.NoMove
	bestScore := -infinity
	alpha := -infinity
	for _, m := range OrderMoves(pos, moves) {
		score := -e.child(pos, m, e.profile.MaxDepth-1, -infinity, -alpha)
		if score > bestScore {
			best, bestScore = m, score
		}
		if score > alpha {
			alpha = score
		}
	}
	return best, bestScore
}

// child plays m, searches the resulting position and takes m back on
// every exit path.
func (e *Engine) child(pos Board, m chess.Move, depth, alpha, beta int) int {
	pos.Push(m)
	defer func() {
		_, _ = pos.Pop()
	}()
	return e.negamax(pos, depth, alpha, beta)
}

// negamax scores pos from the side to move, searching depth more plies.
// Cached scores are reused whenever they were searched at least as deep,
// regardless of the window they were searched with.
func (e *Engine) negamax(pos Board, depth, alpha, beta int) int {
	e.stats.Nodes++

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		if pos.IsCheck() {
			return -MateScore
		}
		return 0
	}
	if pos.IsInsufficientMaterial() {
		return 0
	}

	fingerprint := pos.Fingerprint()
	if entry, ok := e.cache.Lookup(fingerprint, depth); ok {
		e.stats.CacheHits++
		return entry.Score
	}

	if depth <= 0 {
		score := staticEval(pos)
		e.cache.Store(fingerprint, CacheEntry{Depth: 0, Score: score})
		return score
	}

	best := -infinity
	for _, m := range OrderMoves(pos, moves) {
		score := -e.child(pos, m, depth-1, -beta, -alpha)
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	e.cache.Store(fingerprint, CacheEntry{Depth: depth, Score: best})
	return best
}
