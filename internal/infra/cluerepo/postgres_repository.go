package cluerepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pbryant/clueboard/internal/domain/game"
)

// PostgresRepository implements game.ClueRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// GetClue fetches one clue by id.
func (r *PostgresRepository) GetClue(ctx context.Context, id int64) (game.Clue, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, category, question, answer, value, triple_stumper
		FROM clues
		WHERE id = $1
		LIMIT 1
	`, id)
	if err != nil {
		return game.Clue{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return game.Clue{}, false, rows.Err()
	}
	clue, err := scanClue(rows)
	if err != nil {
		return game.Clue{}, false, err
	}
	return clue, true, rows.Err()
}

// CountClues returns the board size.
func (r *PostgresRepository) CountClues(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM clues`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// ClueAt returns the clue at a stable id-ordered offset.
func (r *PostgresRepository) ClueAt(ctx context.Context, offset int64) (game.Clue, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, category, question, answer, value, triple_stumper
		FROM clues
		ORDER BY id
		LIMIT 1 OFFSET $1
	`, offset)
	if err != nil {
		return game.Clue{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return game.Clue{}, false, rows.Err()
	}
	clue, err := scanClue(rows)
	if err != nil {
		return game.Clue{}, false, err
	}
	return clue, true, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClue(row rowScanner) (game.Clue, error) {
	var clue game.Clue
	if err := row.Scan(&clue.ID, &clue.Category, &clue.Question, &clue.Answer, &clue.Value, &clue.TripleStumper); err != nil {
		return game.Clue{}, err
	}
	return clue, nil
}

var _ game.ClueRepository = (*PostgresRepository)(nil)
