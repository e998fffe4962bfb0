package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/errors"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/game"
)

const playHelp = `Commands:
  e2e4, e7e8q    play a move in coordinate notation
  undo           take back your last move
  go             let the engine move now
  new            start a new game
  flip           flip the board
  level <tier>   switch difficulty: easy, medium, hard
  fen            print the current position
  pgn            print the game so far
  help           show this help
  quit           leave
`

// play runs an interactive game on the configured input and output.
func (a *app) play(ctx context.Context) error {
	s, err := game.NewSessionFromConfig(a.cfg.Game, game.WithLogger(a.logger))
	if err != nil {
		return err
	}
	out := a.cfg.Output
	fmt.Fprintf(out, "Playing %s against the engine (%s). Type help for commands.\n", s.Human(), s.Difficulty().Title())

	if err := a.engineTurn(s); err != nil {
		return err
	}
	fmt.Fprint(out, s.Render())

	scanner := bufio.NewScanner(a.in)
	for {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		quit, err := a.command(s, strings.TrimSpace(scanner.Text()))
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// command executes one line of input. User mistakes are reported and the
// loop continues; only engine failures are returned.
func (a *app) command(s *game.Session, line string) (quit bool, err error) {
	out := a.cfg.Output
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprint(out, playHelp)
		return false, nil
	case "fen":
		fmt.Fprintln(out, s.FEN())
		return false, nil
	case "pgn":
		text, err := s.PGN()
		if err != nil {
			return false, err
		}
		fmt.Fprintln(out, text)
		return false, nil
	case "new":
		s.NewGame()
		if err := a.engineTurn(s); err != nil {
			return false, err
		}
	case "go":
		if err := a.engineTurn(s); err != nil {
			return false, err
		}
	case "flip":
		s.Flip()
	case "undo":
		if err := s.Undo(); err != nil {
			fmt.Fprintln(out, "Nothing to take back.")
			return false, nil
		}
	case "level":
		if len(fields) != 2 {
			fmt.Fprintln(out, "Usage: level easy|medium|hard")
			return false, nil
		}
		if err := s.SetDifficulty(fields[1]); err != nil {
			fmt.Fprintf(out, "%v\n", err)
			return false, nil
		}
	default:
		if _, err := s.PlayHuman(fields[0]); err != nil {
			switch {
			case errors.Is(err, errors.ErrGameOver):
				fmt.Fprintln(out, "The game is over. Type new or undo.")
			case errors.Is(err, errors.ErrIllegalMove):
				fmt.Fprintf(out, "Illegal move: %s\n", fields[0])
			default:
				return false, err
			}
			return false, nil
		}
		if err := a.engineTurn(s); err != nil {
			return false, err
		}
	}
	fmt.Fprint(out, s.Render())
	return false, nil
}

// engineTurn lets the engine reply when it is its move and the game is on.
func (a *app) engineTurn(s *game.Session) error {
	if s.IsHumanTurn() || s.Outcome().IsOver() {
		return nil
	}
	_, err := s.BotMove()
	return err
}
