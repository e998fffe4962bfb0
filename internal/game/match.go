package game

import (
	"context"
	"fmt"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/engine"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/errors"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/search"
)

// Match describes one engine-versus-engine game.
type Match struct {
	White    search.Profile
	Black    search.Profile
	StartFEN string // "" for the initial position
	PlyLimit int    // adjudicate a draw after this many plies, 0 for none
}

// MatchResult is the record of a played match.
type MatchResult struct {
	Match       Match
	Moves       []chess.Move
	Outcome     engine.Outcome
	Adjudicated bool
	Nodes       int64
}

// Result returns the PGN result. Adjudicated games are drawn.
func (r MatchResult) Result() string {
	if r.Adjudicated {
		return "1/2-1/2"
	}
	return r.Outcome.Result()
}

// Record converts the result for PGN export.
func (r MatchResult) Record(round int) Record {
	return Record{
		StartFEN: r.Match.StartFEN,
		Moves:    r.Moves,
		Result:   r.Result(),
		Tags: []Tag{
			{Name: "Event", Value: "Self-play"},
			{Name: "Round", Value: fmt.Sprint(round)},
			{Name: "White", Value: fmt.Sprintf("Engine (%s)", r.Match.White.Name)},
			{Name: "Black", Value: fmt.Sprintf("Engine (%s)", r.Match.Black.Name)},
		},
	}
}

// PlayMatch plays m to the end, each side searching with its own engine
// built with opts. The context is checked between moves; a search in
// progress always runs to completion.
func PlayMatch(ctx context.Context, m Match, opts ...search.Option) (MatchResult, error) {
	pos := engine.NewInitialPosition()
	if m.StartFEN != "" {
		var err error
		if pos, err = engine.NewPosition(m.StartFEN); err != nil {
			return MatchResult{}, err
		}
	}

	var engines [2]*search.Engine
	for colour, profile := range map[chess.Colour]search.Profile{chess.White: m.White, chess.Black: m.Black} {
		e, err := search.New(profile, opts...)
		if err != nil {
			return MatchResult{}, errors.Wrapf(err, "%s engine", colour)
		}
		engines[colour] = e
	}

	result := MatchResult{Match: m}
	for {
		if err := ctx.Err(); err != nil {
			result.Moves = pos.History()
			return result, err
		}
		if result.Outcome = pos.Outcome(); result.Outcome.IsOver() {
			break
		}
		if m.PlyLimit > 0 && pos.Ply() >= m.PlyLimit {
			result.Adjudicated = true
			break
		}

		e := engines[pos.Turn()]
		move, err := e.SelectMove(pos)
		if err != nil {
			result.Moves = pos.History()
			return result, errors.Wrapf(err, "ply %d", pos.Ply()+1)
		}
		if err := pos.Play(move); err != nil {
			result.Moves = pos.History()
			return result, err
		}
		result.Nodes += e.Stats().Nodes
	}
	result.Moves = pos.History()
	return result, nil
}
