package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	applyState string
	applyLast  bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves>...",
	Short: "Apply a move sequence to a state",
	Long: `Apply a move sequence in standard notation to a cube state and
display the result.

Examples:
  rubikscan apply "R U R' U'"
  rubikscan apply --last "F2 D' L"
  rubikscan apply --state <54 chars> R U2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVar(&applyState, "state", "", "54-character facelet string to start from")
	applyCmd.Flags().BoolVar(&applyLast, "last", false, "Start from the last stored scramble")
}

func runApply(cmd *cobra.Command, args []string) error {
	c, _, err := loadState(applyState, applyLast)
	if err != nil {
		return err
	}

	sequence := strings.Join(args, " ")
	if err := c.ApplyNotation(sequence); err != nil {
		return fmt.Errorf("cannot apply %q: %w", sequence, err)
	}

	fmt.Printf("Applied: %s\n\n", sequence)
	fmt.Print(renderNet(c))
	fmt.Println()
	fmt.Printf("Solved: %v\n", c.IsSolved())
	fmt.Printf("State:  %s\n", c.SolverString())

	return nil
}
