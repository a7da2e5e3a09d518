package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Scramble represents a recorded scramble in the database.
type Scramble struct {
	ScrambleID string
	CreatedAt  time.Time
	Seed       *int64
	MoveCount  int
	Moves      string // Space-separated notation sequence
	State      string // 54-character solver string after the scramble
}

// ScrambleRepository provides CRUD operations for scrambles.
type ScrambleRepository struct {
	db *DB
}

// NewScrambleRepository creates a new scramble repository.
func NewScrambleRepository(db *DB) *ScrambleRepository {
	return &ScrambleRepository{db: db}
}

// Create records a scramble and returns its ID. Pass a nil seed for
// scrambles produced from an unseeded source.
func (r *ScrambleRepository) Create(moves string, moveCount int, state string, seed *int64) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO scrambles (scramble_id, created_at, seed, move_count, moves, state)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), seed, moveCount, moves, state)

	if err != nil {
		return "", fmt.Errorf("failed to create scramble: %w", err)
	}

	return id, nil
}

// Get retrieves a scramble by ID. Returns nil if not found.
func (r *ScrambleRepository) Get(scrambleID string) (*Scramble, error) {
	var s Scramble
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT scramble_id, created_at, seed, move_count, moves, state
		FROM scrambles
		WHERE scramble_id = ?
	`, scrambleID).Scan(&s.ScrambleID, &createdAtStr, &s.Seed, &s.MoveCount, &s.Moves, &s.State)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scramble: %w", err)
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return &s, nil
}

// GetLast retrieves the most recent scramble. Returns nil if none exist.
func (r *ScrambleRepository) GetLast() (*Scramble, error) {
	var scrambleID string
	err := r.db.QueryRow(`
		SELECT scramble_id FROM scrambles
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&scrambleID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last scramble: %w", err)
	}

	return r.Get(scrambleID)
}

// List retrieves recent scrambles, newest first.
func (r *ScrambleRepository) List(limit int) ([]Scramble, error) {
	rows, err := r.db.Query(`
		SELECT scramble_id, created_at, seed, move_count, moves, state
		FROM scrambles
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var scrambles []Scramble
	for rows.Next() {
		var s Scramble
		var createdAtStr string

		err := rows.Scan(&s.ScrambleID, &createdAtStr, &s.Seed, &s.MoveCount, &s.Moves, &s.State)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}

		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		scrambles = append(scrambles, s)
	}

	return scrambles, nil
}

// Delete deletes a scramble. Solves referencing it keep their rows
// with the reference cleared.
func (r *ScrambleRepository) Delete(scrambleID string) error {
	_, err := r.db.Exec("DELETE FROM scrambles WHERE scramble_id = ?", scrambleID)
	if err != nil {
		return fmt.Errorf("failed to delete scramble: %w", err)
	}
	return nil
}
