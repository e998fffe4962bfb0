package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/chess"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/engine"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/errors"
	"github.com/arjunnegi0016/Chess-Bot-Project/internal/search"
)

type moveRequest struct {
	FEN        string `json:"fen" binding:"required"`
	Difficulty string `json:"difficulty"`
}

type moveResponse struct {
	Move       string       `json:"move"`
	Difficulty string       `json:"difficulty"`
	FEN        string       `json:"fen"`
	Result     string       `json:"result"`
	Message    string       `json:"message,omitempty"`
	Stats      search.Stats `json:"stats"`
}

type evaluateRequest struct {
	FEN string `json:"fen" binding:"required"`
}

type evaluateResponse struct {
	FEN  string `json:"fen"`
	Turn string `json:"turn"`
	search.Breakdown
}

type difficultyInfo struct {
	Name                  string  `json:"name"`
	MaxDepth              int     `json:"max_depth"`
	CacheCapacity         int     `json:"cache_capacity"`
	RandomMoveProbability float64 `json:"random_move_probability"`
	Allowed               bool    `json:"allowed"`
}

type searchResult struct {
	move  chess.Move
	stats search.Stats
	err   error
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) difficulties(c *gin.Context) {
	var out []difficultyInfo
	for i, p := range search.Profiles() {
		out = append(out, difficultyInfo{
			Name:                  p.Name.String(),
			MaxDepth:              p.MaxDepth,
			CacheCapacity:         p.CacheCapacity,
			RandomMoveProbability: p.RandomMoveProbability,
			Allowed:               i <= s.maxTier,
		})
	}
	c.JSON(http.StatusOK, gin.H{"difficulties": out})
}

func (s *Server) move(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = search.Medium.String()
	}

	profile, err := search.ProfileFor(req.Difficulty)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if tierIndex(profile.Name) > s.maxTier {
		c.JSON(http.StatusForbidden, gin.H{"error": "difficulty " + profile.Name.String() + " is not enabled on this server"})
		return
	}

	pos, err := engine.NewPosition(req.FEN)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if outcome := pos.Outcome(); outcome.IsOver() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   errors.ErrGameOver.Error(),
			"result":  outcome.Result(),
			"message": outcome.Message(),
		})
		return
	}

	eng, err := search.New(profile, search.WithLogger(s.logger))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.RequestTimeout)
	defer cancel()

	// The search cannot be interrupted; a timed-out search finishes in the
	// background and its result is dropped.
	done := make(chan searchResult, 1)
	go func() {
		m, err := eng.SelectMove(pos)
		done <- searchResult{move: m, stats: eng.Stats(), err: err}
	}()

	var res searchResult
	select {
	case res = <-done:
	case <-ctx.Done():
		s.logger.Warn().Str("fen", req.FEN).Str("difficulty", profile.Name.String()).Msg("move search timed out")
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "move search timed out"})
		return
	}

	switch {
	case errors.Is(res.err, errors.ErrNoLegalMoves):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": res.err.Error()})
		return
	case res.err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.err.Error()})
		return
	}

	pos.Push(res.move)
	outcome := pos.Outcome()
	c.JSON(http.StatusOK, moveResponse{
		Move:       res.move.String(),
		Difficulty: profile.Name.String(),
		FEN:        pos.FEN(),
		Result:     outcome.Result(),
		Message:    outcome.Message(),
		Stats:      res.stats,
	})
}

func (s *Server) evaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pos, err := engine.NewPosition(req.FEN)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, evaluateResponse{
		FEN:       pos.FEN(),
		Turn:      pos.Turn().String(),
		Breakdown: search.EvaluateDetailed(pos),
	})
}
