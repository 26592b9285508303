package cluerepo

import (
	"context"
	"sort"
	"sync"

	"github.com/pbryant/clueboard/internal/domain/game"
)

// MemoryRepository is an in-memory clue source for tests and development.
type MemoryRepository struct {
	mu    sync.RWMutex
	clues []game.Clue
}

// NewMemoryRepository constructs a repository seeded with the given clues,
// or a small starter board when none are provided.
func NewMemoryRepository(clues ...game.Clue) *MemoryRepository {
	if len(clues) == 0 {
		clues = starterClues()
	}
	sorted := make([]game.Clue, len(clues))
	copy(sorted, clues)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return &MemoryRepository{clues: sorted}
}

// GetClue implements game.ClueRepository.
func (r *MemoryRepository) GetClue(_ context.Context, id int64) (game.Clue, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.clues {
		if c.ID == id {
			return c, true, nil
		}
	}
	return game.Clue{}, false, nil
}

// CountClues implements game.ClueRepository.
func (r *MemoryRepository) CountClues(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.clues)), nil
}

// ClueAt returns the clue at a stable id-ordered offset.
func (r *MemoryRepository) ClueAt(_ context.Context, offset int64) (game.Clue, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if offset < 0 || offset >= int64(len(r.clues)) {
		return game.Clue{}, false, nil
	}
	return r.clues[offset], true, nil
}

func starterClues() []game.Clue {
	return []game.Clue{
		{ID: 1, Category: "WORLD CAPITALS", Question: "The City of Light on the Seine", Answer: "Paris", Value: 200},
		{ID: 2, Category: "WORLD CAPITALS", Question: "This Andean capital sits at 2,850 meters", Answer: "Quito", Value: 400},
		{ID: 3, Category: "AMERICAN AUTHORS", Question: "He wrote of an old man, the sea & a big fish", Answer: "Ernest Hemingway", Value: 200},
		{ID: 4, Category: "AMERICAN AUTHORS", Question: "Pseudonymous author of Alice in Wonderland", Answer: "(Lewis) Carroll", Value: 400, TripleStumper: true},
		{ID: 5, Category: "BAND NAMES", Question: "Fab Four from Liverpool", Answer: "The Beatles", Value: 200},
		{ID: 6, Category: "BAND NAMES", Question: "Folk-rock duo of \"Mrs. Robinson\" fame", Answer: "Simon & Garfunkel", Value: 400},
		{ID: 7, Category: "FLAGS", Question: "The three colors of the French tricolore", Answer: "blue, white & red", Value: 600},
		{ID: 8, Category: "PEAKS", Question: "Earth's highest mountain", Answer: "Mount Everest", Value: 200},
	}
}

var _ game.ClueRepository = (*MemoryRepository)(nil)
