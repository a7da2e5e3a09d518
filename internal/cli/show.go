package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	showState string
	showLast  bool
	showPlain bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display a cube state",
	Long: `Display a cube state as a colored net.

By default shows a solved cube. Use --state to display an explicit
54-character facelet string, or --last to display the most recent
stored scramble.`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showState, "state", "", "54-character facelet string to display")
	showCmd.Flags().BoolVar(&showLast, "last", false, "Display the last stored scramble")
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "Print the plain face dump instead of the colored net")
}

func runShow(cmd *cobra.Command, args []string) error {
	c, scrambleID, err := loadState(showState, showLast)
	if err != nil {
		return err
	}

	if scrambleID != "" {
		fmt.Printf("Scramble: %s\n\n", scrambleID)
	}

	if showPlain {
		fmt.Print(c.String())
	} else {
		fmt.Print(renderNet(c))
	}

	fmt.Println()
	fmt.Printf("Solved: %v\n", c.IsSolved())
	fmt.Printf("State:  %s\n", c.SolverString())

	return nil
}
