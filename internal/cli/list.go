package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rubikscan/rubikscan/internal/storage"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded scrambles",
	Long:  `Display recent scrambles from the history database, newest first.`,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of scrambles to display")
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	scrambles, err := storage.NewScrambleRepository(db).List(listLimit)
	if err != nil {
		return err
	}

	if len(scrambles) == 0 {
		fmt.Println("No scrambles recorded. Run 'rubikscan scramble' to create one.")
		return nil
	}

	solveRepo := storage.NewSolveRepository(db)

	for _, s := range scrambles {
		fmt.Printf("%s  %s  %d moves\n", s.ScrambleID, s.CreatedAt.Format(time.RFC3339), s.MoveCount)
		fmt.Printf("  %s\n", s.Moves)
		if s.Seed != nil {
			fmt.Printf("  seed: %d\n", *s.Seed)
		}

		solves, err := solveRepo.GetByScramble(s.ScrambleID)
		if err != nil {
			return err
		}
		for _, sv := range solves {
			status := "failed"
			if sv.Solved {
				status = "solved"
			}
			fmt.Printf("  attempt %s: %d moves, %s\n", sv.SolveID, sv.MoveCount, status)
		}
		fmt.Println()
	}

	return nil
}
