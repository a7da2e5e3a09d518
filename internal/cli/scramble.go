package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/rubikscan/rubikscan"
	"github.com/rubikscan/rubikscan/internal/storage"
)

var (
	scrambleMoves int
	scrambleSeed  int64
	scrambleNoDB  bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Scramble a cube and record the result",
	Long: `Scramble a solved cube with random face turns.

The move sequence, the resulting state, and the seed are stored in the
history database so the scramble can be reloaded later with --last.
Pass --seed for a reproducible sequence.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleMoves, "moves", 25, "Number of random face turns")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 = time-based)")
	scrambleCmd.Flags().BoolVar(&scrambleNoDB, "no-save", false, "Do not record the scramble in the database")
}

func runScramble(cmd *cobra.Command, args []string) error {
	seeded := scrambleSeed != 0
	seed := scrambleSeed
	if !seeded {
		seed = time.Now().UnixNano()
	}

	c := rubikscan.New()
	moves := rubikscan.Scramble(c, scrambleMoves, rand.New(rand.NewSource(seed)))
	sequence := rubikscan.FormatMoves(moves)

	fmt.Printf("Scramble (%d moves): %s\n\n", len(moves), sequence)
	fmt.Print(renderNet(c))
	fmt.Println()
	fmt.Printf("State: %s\n", c.SolverString())

	if scrambleNoDB {
		return nil
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	var seedPtr *int64
	if seeded {
		seedPtr = &seed
	}

	id, err := storage.NewScrambleRepository(db).Create(sequence, len(moves), c.SolverString(), seedPtr)
	if err != nil {
		return fmt.Errorf("failed to record scramble: %w", err)
	}

	fmt.Printf("Recorded scramble %s\n", id)
	return nil
}
