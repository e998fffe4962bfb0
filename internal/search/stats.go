package search

import "time"

// Stats describes the most recent top-level search.
type Stats struct {
	Nodes      int64         `json:"nodes"`
	CacheHits  int64         `json:"cache_hits"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	Depth      int           `json:"depth"`
	Score      int           `json:"score"`
	RandomMove bool          `json:"random_move"`
}

// NodesPerSecond returns the search speed, 0 when no time was measured.
func (s Stats) NodesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Nodes) / s.Elapsed.Seconds()
}
