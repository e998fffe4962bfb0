// Package game runs games around the search engine: a human-versus-engine
// session, engine-versus-engine matches, a text board renderer and PGN
// export.
package game

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/config"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/engine"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/errors"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/search"
)

// Session is a game between a human and the engine. It is not safe for
// concurrent use.
type Session struct {
	pos        *engine.Position
	start      *engine.Position
	startFEN   string
	human      chess.Colour
	bot        *search.Engine
	flipped    bool
	status     string
	logger     zerolog.Logger
	engineOpts []search.Option
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. The engine logs through it too.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithEngineOptions passes options to every engine the session builds.
func WithEngineOptions(opts ...search.Option) Option {
	return func(s *Session) {
		s.engineOpts = append(s.engineOpts, opts...)
	}
}

// NewSession starts a game from startFEN with the human playing human and
// the engine playing at the named tier.
func NewSession(startFEN string, human chess.Colour, difficulty string, opts ...Option) (*Session, error) {
	pos, err := engine.NewPosition(startFEN)
	if err != nil {
		return nil, err
	}
	s := &Session{
		pos:      pos,
		start:    pos.Clone(),
		startFEN: startFEN,
		human:    human,
		flipped:  human == chess.Black,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.SetDifficulty(difficulty); err != nil {
		return nil, err
	}
	s.status = s.turnStatus()
	return s, nil
}

// NewSessionFromConfig starts a game using the game settings of cfg.
func NewSessionFromConfig(cfg *config.GameConfig, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewSession(cfg.StartFEN, cfg.Human(), cfg.Difficulty, opts...)
}

// SetDifficulty switches the engine tier. The old engine and its cache are
// discarded.
func (s *Session) SetDifficulty(name string) error {
	profile, err := search.ProfileFor(name)
	if err != nil {
		return err
	}
	opts := append([]search.Option{search.WithLogger(s.logger)}, s.engineOpts...)
	bot, err := search.New(profile, opts...)
	if err != nil {
		return err
	}
	s.bot = bot
	s.status = fmt.Sprintf("Difficulty set to %s", profile.Name.Title())
	s.logger.Info().Str("difficulty", profile.Name.String()).Int("depth", profile.MaxDepth).Msg("engine ready")
	return nil
}

// Difficulty returns the engine's current tier.
func (s *Session) Difficulty() search.Difficulty {
	return s.bot.Profile().Name
}

// NewGame resets the board to the starting position, keeping the tier,
// the human's colour and the orientation.
func (s *Session) NewGame() {
	s.pos = s.start.Clone()
	s.status = fmt.Sprintf("New game started. Your turn (%s)", s.human)
	if !s.IsHumanTurn() {
		s.status = "New game started. Engine to move"
	}
}

// Flip turns the board around for rendering.
func (s *Session) Flip() {
	s.flipped = !s.flipped
}

// Flipped reports whether Black is drawn at the bottom.
func (s *Session) Flipped() bool {
	return s.flipped
}

// Human returns the colour the human plays.
func (s *Session) Human() chess.Colour {
	return s.human
}

// IsHumanTurn reports whether the human is to move.
func (s *Session) IsHumanTurn() bool {
	return s.pos.Turn() == s.human
}

// Position returns a copy of the current position.
func (s *Session) Position() *engine.Position {
	return s.pos.Clone()
}

// FEN returns the FEN of the current position.
func (s *Session) FEN() string {
	return s.pos.FEN()
}

// History returns the moves played so far.
func (s *Session) History() []chess.Move {
	return s.pos.History()
}

// LastMove returns the most recent move, chess.NoMove before the first.
func (s *Session) LastMove() chess.Move {
	history := s.pos.History()
	if len(history) == 0 {
		return chess.NoMove
	}
	return history[len(history)-1]
}

// Outcome reports whether and how the game has ended.
func (s *Session) Outcome() engine.Outcome {
	return s.pos.Outcome()
}

// Status returns a one-line description of the last thing that happened.
func (s *Session) Status() string {
	return s.status
}

// Stats returns the statistics of the engine's last search.
func (s *Session) Stats() search.Stats {
	return s.bot.Stats()
}

// PlayHuman parses and plays the human's move in coordinate notation.
func (s *Session) PlayHuman(text string) (chess.Move, error) {
	if err := s.checkPlayable(); err != nil {
		return chess.NoMove, err
	}
	if !s.IsHumanTurn() {
		return chess.NoMove, fmt.Errorf("not %s's turn: %w", s.human, errors.ErrIllegalMove)
	}
	m, err := s.pos.ParseMove(text)
	if err != nil {
		return chess.NoMove, err
	}
	if err := s.pos.Play(m); err != nil {
		return chess.NoMove, err
	}
	s.afterMove(fmt.Sprintf("You played %s", m))
	return m, nil
}

// BotMove lets the engine choose and play a move for its side.
func (s *Session) BotMove() (chess.Move, error) {
	if err := s.checkPlayable(); err != nil {
		return chess.NoMove, err
	}
	if s.IsHumanTurn() {
		return chess.NoMove, fmt.Errorf("engine asked to move for %s: %w", s.human, errors.ErrIllegalMove)
	}

	start := time.Now()
	m, err := s.bot.SelectMove(s.pos)
	if err != nil {
		return chess.NoMove, err
	}
	if err := s.pos.Play(m); err != nil {
		return chess.NoMove, errors.Wrap(err, "engine move")
	}

	stats := s.bot.Stats()
	s.logger.Info().
		Str("move", m.String()).
		Str("difficulty", s.Difficulty().String()).
		Int64("nodes", stats.Nodes).
		Bool("random", stats.RandomMove).
		Dur("took", time.Since(start)).
		Msg("engine moved")
	s.afterMove(fmt.Sprintf("Engine played %s", m))
	return m, nil
}

// Undo takes back the last full move so that the human is to move again.
// When the human's own move ended the game only that move is taken back.
func (s *Session) Undo() error {
	if s.pos.Ply() == 0 {
		return errors.ErrEmptyHistory
	}
	if _, err := s.pos.Pop(); err != nil {
		return err
	}
	if !s.IsHumanTurn() && s.pos.Ply() > 0 {
		if _, err := s.pos.Pop(); err != nil {
			return err
		}
	}
	s.status = "Move taken back. " + s.turnStatus()
	return nil
}

// PGN exports the game played so far.
func (s *Session) PGN() (string, error) {
	white, black := "Human", fmt.Sprintf("Engine (%s)", s.Difficulty())
	if s.human == chess.Black {
		white, black = black, white
	}
	return EncodePGN(Record{
		StartFEN: s.startFEN,
		Moves:    s.pos.History(),
		Result:   s.Outcome().Result(),
		Tags: []Tag{
			{Name: "Event", Value: "Casual game"},
			{Name: "Date", Value: time.Now().Format("2006.01.02")},
			{Name: "White", Value: white},
			{Name: "Black", Value: black},
		},
	})
}

// Render draws the board with a status line.
func (s *Session) Render() string {
	return Render(s.pos, s.flipped, s.LastMove()) + "\n" + s.status + "\n"
}

func (s *Session) checkPlayable() error {
	if outcome := s.pos.Outcome(); outcome.IsOver() {
		return fmt.Errorf("%s: %w", outcome.Message(), errors.ErrGameOver)
	}
	return nil
}

func (s *Session) afterMove(played string) {
	if outcome := s.pos.Outcome(); outcome.IsOver() {
		s.status = played + ". " + outcome.Message()
		s.logger.Info().Str("result", outcome.Result()).Str("termination", outcome.Termination.String()).Msg("game over")
		return
	}
	s.status = played + ". " + s.turnStatus()
}

func (s *Session) turnStatus() string {
	if s.IsHumanTurn() {
		if s.pos.IsCheck() {
			return "Check! Your turn"
		}
		return "Your turn"
	}
	return "Engine to move"
}
