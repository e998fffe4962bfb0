package search

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/engine"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/errors"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/testutil"
)

func testProfile(depth int) Profile {
	return Profile{Name: "test", MaxDepth: depth, CacheCapacity: 10_000}
}

func mustEngine(t testing.TB, profile Profile, opts ...Option) *Engine {
	t.Helper()
	e, err := New(profile, opts...)
	if err != nil {
		t.Fatalf("New(%+v): %v", profile, err)
	}
	return e
}

func assertLegal(t *testing.T, pos *engine.Position, m chess.Move) {
	t.Helper()
	if !pos.IsLegal(m) {
		t.Fatalf("move %s is not legal in %s", m, pos.FEN())
	}
}

func TestNew_RejectsInvalidProfile(t *testing.T) {
	_, err := New(Profile{Name: "broken", MaxDepth: 0, CacheCapacity: 10})
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestNewForDifficulty(t *testing.T) {
	e, err := NewForDifficulty("medium")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, e.Profile().Name, Medium)
	testutil.AssertEqual(t, e.CacheLen(), 0)

	_, err = NewForDifficulty("impossible")
	testutil.AssertErrorIs(t, err, errors.ErrUnknownDifficulty)
}

func TestSelectMove_MateInOne(t *testing.T) {
	for depth := 1; depth <= 3; depth++ {
		depth := depth
		t.Run(fmt.Sprintf("depth %d", depth), func(t *testing.T) {
			t.Parallel()
			pos := mustPosition(t, testutil.FENBackRankMate)
			e := mustEngine(t, testProfile(depth))

			m, err := e.SelectMove(pos)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, m.String(), "a1a8")
			testutil.AssertEqual(t, e.Stats().Score, MateScore)
		})
	}
}

func TestSelectMove_WinsHangingQueen(t *testing.T) {
	pos := mustPosition(t, testutil.FENHangingQueen)
	e := mustEngine(t, testProfile(2))

	m, err := e.SelectMove(pos)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.String(), "e4d5")
	testutil.AssertTrue(t, e.Stats().Score > 0, "score %d", e.Stats().Score)
}

func TestSelectMove_InitialPosition(t *testing.T) {
	pos := engine.NewInitialPosition()
	e := mustEngine(t, testProfile(2))

	m, err := e.SelectMove(pos)
	testutil.AssertNoError(t, err)
	assertLegal(t, pos, m)
	testutil.AssertEqual(t, len(pos.LegalMoves()), 20)

	stats := e.Stats()
	testutil.AssertTrue(t, stats.Nodes > 0)
	testutil.AssertEqual(t, stats.Depth, 2)
	testutil.AssertFalse(t, stats.RandomMove)
}

func TestSelectMove_RestoresBoard(t *testing.T) {
	for name, fen := range map[string]string{
		"initial":   testutil.FENInitial,
		"kiwipete":  testutil.FENKiwipete,
		"enpassant": testutil.FENEnPassant,
		"endgame":   testutil.FENRookEndgame,
	} {
		fen := fen
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			pos := mustPosition(t, fen)
			e := mustEngine(t, testProfile(2))

			m, err := e.SelectMove(pos)
			testutil.AssertNoError(t, err)
			assertLegal(t, pos, m)
			testutil.AssertEqual(t, pos.FEN(), fen)
			testutil.AssertEqual(t, pos.Ply(), 0)
		})
	}
}

func TestSelectMove_Deterministic(t *testing.T) {
	var moves []string
	for i := 0; i < 3; i++ {
		pos := mustPosition(t, testutil.FENMidgameTactics)
		e := mustEngine(t, testProfile(2))
		m, err := e.SelectMove(pos)
		testutil.AssertNoError(t, err)
		moves = append(moves, m.String())
	}
	testutil.AssertEqual(t, moves[1], moves[0])
	testutil.AssertEqual(t, moves[2], moves[0])
}

func TestSelectMove_ReusesCachedScores(t *testing.T) {
	pos := engine.NewInitialPosition()
	e := mustEngine(t, testProfile(2))

	first, err := e.SelectMove(pos)
	testutil.AssertNoError(t, err)
	cold := e.Stats()
	testutil.AssertTrue(t, e.CacheLen() > 0)

	second, err := e.SelectMove(pos)
	testutil.AssertNoError(t, err)
	warm := e.Stats()

	// Every root reply was stored at the depth it is requested at, so the
	// second search stops one ply below the root.
	testutil.AssertEqual(t, warm.Nodes, int64(20))
	testutil.AssertEqual(t, warm.CacheHits, int64(20))
	testutil.AssertTrue(t, warm.Nodes < cold.Nodes)
	testutil.AssertEqual(t, second, first)
}

func TestSelectMove_RandomMove(t *testing.T) {
	profile := Profile{Name: Easy, MaxDepth: 2, CacheCapacity: 100, RandomMoveProbability: 1}
	e := mustEngine(t, profile, WithRand(rand.New(rand.NewSource(7))))
	pos := mustPosition(t, testutil.FENKiwipete)

	for i := 0; i < 10; i++ {
		m, err := e.SelectMove(pos)
		testutil.AssertNoError(t, err)
		assertLegal(t, pos, m)
		testutil.AssertTrue(t, e.Stats().RandomMove)
		testutil.AssertEqual(t, e.Stats().Nodes, int64(0))
	}
	testutil.AssertEqual(t, e.CacheLen(), 0)
}

func TestSelectMove_StatsResetEachCall(t *testing.T) {
	fresh := mustEngine(t, testProfile(2))
	_, err := fresh.SelectMove(mustPosition(t, testutil.FENBackRankMate))
	testutil.AssertNoError(t, err)

	reused := mustEngine(t, testProfile(2))
	_, err = reused.SelectMove(mustPosition(t, testutil.FENKiwipete))
	testutil.AssertNoError(t, err)
	_, err = reused.SelectMove(mustPosition(t, testutil.FENBackRankMate))
	testutil.AssertNoError(t, err)

	got, want := reused.Stats(), fresh.Stats()
	testutil.AssertEqual(t, got.Nodes, want.Nodes)
	testutil.AssertEqual(t, got.CacheHits, want.CacheHits)
	testutil.AssertEqual(t, got.Score, want.Score)
}

func TestSelectMove_NoLegalMoves(t *testing.T) {
	for name, fen := range map[string]string{
		"checkmate": testutil.FENFoolsMate,
		"stalemate": testutil.FENStalemate,
	} {
		fen := fen
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			e := mustEngine(t, testProfile(2))
			m, err := e.SelectMove(mustPosition(t, fen))
			testutil.AssertErrorIs(t, err, errors.ErrNoLegalMoves)
			testutil.AssertTrue(t, m.IsNone())
		})
	}
}

// failingBoard panics once a number of pushes have been made.
type failingBoard struct {
	*engine.Position
	pushes, limit int
}

func (b *failingBoard) Push(m chess.Move) {
	b.pushes++
	if b.pushes > b.limit {
		panic("push rejected")
	}
	b.Position.Push(m)
}

func TestSelectMove_RecoversRulesEnginePanic(t *testing.T) {
	board := &failingBoard{Position: engine.NewInitialPosition(), limit: 5}
	e := mustEngine(t, testProfile(3))

	m, err := e.SelectMove(board)
	testutil.AssertErrorIs(t, err, errors.ErrSearchFailed)
	testutil.AssertContains(t, err.Error(), "push rejected")
	testutil.AssertTrue(t, m.IsNone())
	testutil.AssertEqual(t, board.FEN(), testutil.FENInitial)
	testutil.AssertEqual(t, board.Ply(), 0)
}

func TestSelectMove_LogsStats(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	e := mustEngine(t, testProfile(1), WithLogger(logger))

	_, err := e.SelectMove(engine.NewInitialPosition())
	testutil.AssertNoError(t, err)

	out := buf.String()
	for _, field := range []string{`"nodes":`, `"cache_hits":`, `"nps":`, `"move":`, "move evaluation complete"} {
		testutil.AssertContains(t, out, field)
	}
}

func TestEngine_ClearCache(t *testing.T) {
	e := mustEngine(t, testProfile(1))
	_, err := e.SelectMove(engine.NewInitialPosition())
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, e.CacheLen() > 0)

	e.ClearCache()
	testutil.AssertEqual(t, e.CacheLen(), 0)
}
