package scoring

import (
	"sort"

	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/model"
)

const (
	// basePoints is the score for an instantaneous correct guess
	basePoints = 100
	// decayPerSecond is deducted for every elapsed second of the round
	decayPerSecond = 5
	// minPoints floors the reward for any correct guess
	minPoints = 10
)

// Service computes guess scores and leaderboards. Pure; no state.
type Service struct{}

// New creates a new scoring service
func New() *Service {
	return &Service{}
}

// Points maps remaining round time to the score for a correct guess:
// a linear decay rewarding speed, floored at a participation minimum.
// Monotonically non-increasing in elapsed time.
func (s *Service) Points(roundTime, timeLeft int) int {
	points := basePoints - (roundTime-timeLeft)*decayPerSecond
	if points < minPoints {
		return minPoints
	}
	return points
}

// Leaderboard sorts players descending by score. The sort is stable, so
// ties keep the players' arrival order.
func (s *Service) Leaderboard(players []*model.Player) []model.ScoreEntry {
	entries := make([]model.ScoreEntry, 0, len(players))
	for _, p := range players {
		entries = append(entries, model.ScoreEntry{
			ID:    p.ID,
			Name:  p.DisplayName,
			Score: p.Score,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}

// Winner returns the top leaderboard entry, or nil for an empty board
func (s *Service) Winner(entries []model.ScoreEntry) *model.ScoreEntry {
	if len(entries) == 0 {
		return nil
	}
	top := entries[0]
	return &top
}

// Interface for dependency injection
type ServiceInterface interface {
	Points(roundTime, timeLeft int) int
	Leaderboard(players []*model.Player) []model.ScoreEntry
	Winner(entries []model.ScoreEntry) *model.ScoreEntry
}

var _ ServiceInterface = (*Service)(nil)
