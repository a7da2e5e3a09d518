package cli

import (
	"fmt"

	"github.com/rubikscan/rubikscan"
	"github.com/rubikscan/rubikscan/internal/storage"
)

// loadState resolves the cube state a command operates on.
// Priority: an explicit 54-character state, then the last stored
// scramble, then a solved cube. Returns the scramble ID when the
// state came from the database.
func loadState(state string, useLast bool) (*rubikscan.Cube, string, error) {
	if state != "" {
		c, err := rubikscan.FromSolverString(state)
		if err != nil {
			return nil, "", fmt.Errorf("invalid state %q: %w", state, err)
		}
		return c, "", nil
	}

	if useLast {
		db, err := openDB()
		if err != nil {
			return nil, "", err
		}
		defer db.Close()

		last, err := storage.NewScrambleRepository(db).GetLast()
		if err != nil {
			return nil, "", err
		}
		if last == nil {
			return nil, "", fmt.Errorf("no scrambles recorded yet, run 'rubikscan scramble' first")
		}

		c, err := rubikscan.FromSolverString(last.State)
		if err != nil {
			return nil, "", fmt.Errorf("stored state is corrupt: %w", err)
		}
		return c, last.ScrambleID, nil
	}

	return rubikscan.New(), "", nil
}
