package game

import (
	"fmt"

	notnil "github.com/notnil/chess"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/engine"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/errors"
)

// Tag is a PGN tag pair.
type Tag struct {
	Name  string
	Value string
}

// Record is a finished or unfinished game ready for export.
type Record struct {
	StartFEN string
	Moves    []chess.Move
	Result   string // "1-0", "0-1", "1/2-1/2" or "*"
	Tags     []Tag
}

// EncodePGN renders rec as PGN with moves in standard algebraic notation.
// Games that do not start from the initial position get SetUp and FEN
// tags; the others are classified and get ECO and Opening tags.
func EncodePGN(rec Record) (string, error) {
	var opts []func(*notnil.Game)
	tags := rec.Tags
	setUp := rec.StartFEN != "" && rec.StartFEN != engine.InitialFEN
	if setUp {
		fen, err := notnil.FEN(rec.StartFEN)
		if err != nil {
			return "", fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
		}
		opts = append(opts, fen)
		tags = append(tags, Tag{Name: "SetUp", Value: "1"}, Tag{Name: "FEN", Value: rec.StartFEN})
	}

	g := notnil.NewGame(opts...)
	for _, tag := range tags {
		g.AddTagPair(tag.Name, tag.Value)
	}
	result := rec.Result
	if result == "" {
		result = "*"
	}
	g.AddTagPair("Result", result)

	for i, m := range rec.Moves {
		decoded, err := notnil.UCINotation{}.Decode(g.Position(), m.String())
		if err != nil {
			return "", &errors.PositionError{Err: errors.ErrIllegalMove, FEN: g.Position().String(), Ply: i + 1, Move: m.String()}
		}
		if err := g.Move(decoded); err != nil {
			return "", &errors.PositionError{Err: errors.ErrIllegalMove, FEN: g.Position().String(), Ply: i + 1, Move: m.String()}
		}
	}

	if !setUp {
		if o := classifyOpening(g); o != nil {
			g.AddTagPair("ECO", o.Code())
			g.AddTagPair("Opening", o.Title())
		}
	}

	if g.Outcome() == notnil.NoOutcome {
		switch result {
		case "1/2-1/2":
			if err := g.Draw(notnil.DrawOffer); err != nil {
				return "", errors.Wrap(err, "recording draw")
			}
		case "1-0":
			g.Resign(notnil.Black)
		case "0-1":
			g.Resign(notnil.White)
		}
	}
	return g.String(), nil
}
