package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve represents a recorded solution attempt in the database.
type Solve struct {
	SolveID    string
	ScrambleID *string
	CreatedAt  time.Time
	Solution   string // Space-separated notation sequence
	MoveCount  int
	Solved     bool
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create records a solution attempt and returns its ID. scrambleID
// may be empty for solutions applied to ad hoc states.
func (r *SolveRepository) Create(scrambleID, solution string, moveCount int, solved bool) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var scramblePtr *string
	if scrambleID != "" {
		scramblePtr = &scrambleID
	}

	solvedInt := 0
	if solved {
		solvedInt = 1
	}

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, scramble_id, created_at, solution, move_count, solved)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, scramblePtr, createdAt.Format(time.RFC3339), solution, moveCount, solvedInt)

	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// GetByScramble retrieves all solution attempts for a scramble,
// newest first.
func (r *SolveRepository) GetByScramble(scrambleID string) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, scramble_id, created_at, solution, move_count, solved
		FROM solves
		WHERE scramble_id = ?
		ORDER BY created_at DESC
	`, scrambleID)

	if err != nil {
		return nil, fmt.Errorf("failed to get solves: %w", err)
	}
	defer rows.Close()

	return scanSolves(rows)
}

// List retrieves recent solution attempts, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, scramble_id, created_at, solution, move_count, solved
		FROM solves
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	return scanSolves(rows)
}

func scanSolves(rows *sql.Rows) ([]Solve, error) {
	var solves []Solve
	for rows.Next() {
		var s Solve
		var createdAtStr string
		var solvedInt int

		err := rows.Scan(&s.SolveID, &s.ScrambleID, &createdAtStr, &s.Solution, &s.MoveCount, &solvedInt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}

		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		s.Solved = solvedInt != 0
		solves = append(solves, s)
	}

	return solves, nil
}
