package game

import (
	"context"
	"strings"
	"testing"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/engine"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/errors"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/search"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/testutil"
)

func shallowProfile() search.Profile {
	return search.Profile{Name: "shallow", MaxDepth: 1, CacheCapacity: 1000}
}

func TestPlayMatch_Checkmate(t *testing.T) {
	m := Match{White: shallowProfile(), Black: shallowProfile(), StartFEN: testutil.FENBackRankMate}

	result, err := PlayMatch(context.Background(), m)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, testutil.MoveStrings(result.Moves), []string{"a1a8"})
	testutil.AssertEqual(t, result.Outcome.Termination, engine.Checkmate)
	testutil.AssertEqual(t, result.Result(), "1-0")
	testutil.AssertFalse(t, result.Adjudicated)
	testutil.AssertTrue(t, result.Nodes > 0)
}

func TestPlayMatch_PlyLimit(t *testing.T) {
	m := Match{White: shallowProfile(), Black: shallowProfile(), PlyLimit: 4}

	result, err := PlayMatch(context.Background(), m)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(result.Moves), 4)
	testutil.AssertTrue(t, result.Adjudicated)
	testutil.AssertEqual(t, result.Result(), "1/2-1/2")

	pgn, err := EncodePGN(result.Record(3))
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, pgn, `[Round "3"]`)
	testutil.AssertContains(t, pgn, `[White "Engine (shallow)"]`)
	testutil.AssertContains(t, pgn, `[Result "1/2-1/2"]`)
	testutil.AssertTrue(t, strings.HasSuffix(strings.TrimSpace(pgn), "1/2-1/2"), "pgn %q", pgn)
}

func TestPlayMatch_AlreadyOver(t *testing.T) {
	m := Match{White: shallowProfile(), Black: shallowProfile(), StartFEN: testutil.FENStalemate}

	result, err := PlayMatch(context.Background(), m)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(result.Moves), 0)
	testutil.AssertEqual(t, result.Outcome.Termination, engine.Stalemate)
	testutil.AssertEqual(t, result.Result(), "1/2-1/2")
}

func TestPlayMatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := PlayMatch(ctx, Match{White: shallowProfile(), Black: shallowProfile()})
	testutil.AssertErrorIs(t, err, context.Canceled)
}

func TestPlayMatch_InvalidInput(t *testing.T) {
	_, err := PlayMatch(context.Background(), Match{White: search.Profile{}, Black: shallowProfile()})
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)

	_, err = PlayMatch(context.Background(), Match{White: shallowProfile(), Black: shallowProfile(), StartFEN: "8/8/8 w"})
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
}

func TestPlayMatch_DefaultStartIsInitialPosition(t *testing.T) {
	m := Match{White: shallowProfile(), Black: shallowProfile(), PlyLimit: 3}

	fromDefault, err := PlayMatch(context.Background(), m)
	testutil.AssertNoError(t, err)

	m.StartFEN = engine.InitialFEN
	fromFEN, err := PlayMatch(context.Background(), m)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, len(fromDefault.Moves), 3)
	testutil.AssertEqual(t, testutil.MoveStrings(fromDefault.Moves), testutil.MoveStrings(fromFEN.Moves))
}
