package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rubikscan/rubikscan"
	"github.com/rubikscan/rubikscan/internal/storage"
)

var (
	solveState    string
	solveLast     bool
	solveSolution string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Export a state for solving or check a solution",
	Long: `Export the 54-character facelet string an external solver consumes,
or check a solver's answer.

Without --solution the command prints the handoff string for the
chosen state. With --solution it replays the answer on the state,
reports whether it restores solved, and records the attempt.`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveState, "state", "", "54-character facelet string to solve")
	solveCmd.Flags().BoolVar(&solveLast, "last", false, "Solve the last stored scramble")
	solveCmd.Flags().StringVar(&solveSolution, "solution", "", "Solver-produced move sequence to check")
}

func runSolve(cmd *cobra.Command, args []string) error {
	c, scrambleID, err := loadState(solveState, solveLast)
	if err != nil {
		return err
	}

	if solveSolution == "" {
		// Handoff only: print the string an external solver consumes.
		fmt.Println(c.SolverString())
		return nil
	}

	moves, err := rubikscan.ParseMoves(solveSolution)
	if err != nil {
		return fmt.Errorf("invalid solution %q: %w", solveSolution, err)
	}

	solved := rubikscan.Solves(c, moves)
	c.Apply(moves...)

	fmt.Printf("Solution (%d moves): %s\n\n", len(moves), rubikscan.FormatMoves(moves))
	fmt.Print(renderNet(c))
	fmt.Println()
	if solved {
		fmt.Println("Result: solved")
	} else {
		fmt.Println("Result: NOT solved")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := storage.NewSolveRepository(db).Create(scrambleID, rubikscan.FormatMoves(moves), len(moves), solved)
	if err != nil {
		return fmt.Errorf("failed to record solve: %w", err)
	}

	if verbose {
		fmt.Printf("Recorded solve %s\n", id)
	}
	return nil
}
