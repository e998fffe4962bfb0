package game

import (
	"sync"

	notnil "github.com/notnil/chess"
	"github.com/notnil/chess/opening"
)

var (
	ecoOnce sync.Once
	ecoBook *opening.BookECO
)

// classifyOpening returns the deepest ECO opening matching the moves of g,
// or nil when g has no recognised opening. The book is built on first use.
func classifyOpening(g *notnil.Game) *opening.Opening {
	moves := g.Moves()
	if len(moves) == 0 {
		return nil
	}
	ecoOnce.Do(func() {
		ecoBook = opening.NewBookECO()
	})
	return ecoBook.Find(moves)
}
