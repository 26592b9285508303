package game

import "context"

// ClueRepository encapsulates clue storage.
type ClueRepository interface {
	GetClue(ctx context.Context, id int64) (Clue, bool, error)
	CountClues(ctx context.Context) (int64, error)
	// ClueAt returns the clue at a stable offset in id order, used for
	// the deterministic daily pick.
	ClueAt(ctx context.Context, offset int64) (Clue, bool, error)
}
