package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rubikscan/rubikscan"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Enter a cube state face by face",
	Long: `Build a cube state from manually entered face colors, the same
path a camera-based scanner would feed into the model.

For each face, enter 3 lines of 3 color symbols (W, Y, R, O, G, B),
with or without spaces:

  G G W
  O G R
  G Y B

Faces are entered with each face held upright, row 0 at the top.
No solvability validation is performed; the entered state is taken
as-is.`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)

	grid := make([][][]rubikscan.Color, 6)
	for _, face := range rubikscan.Faces {
		fmt.Printf("%s face (3 lines of 3 symbols):\n", face.Name())

		rows, err := readFace(reader)
		if err != nil {
			return fmt.Errorf("failed to read %s face: %w", face.Name(), err)
		}
		grid[face] = rows
	}

	c, err := rubikscan.FromFacelets(grid)
	if err != nil {
		return fmt.Errorf("entered state is malformed: %w", err)
	}

	fmt.Println()
	fmt.Print(renderNet(c))
	fmt.Println()
	fmt.Printf("Solved: %v\n", c.IsSolved())
	fmt.Printf("State:  %s\n", c.SolverString())

	return nil
}

// readFace reads three rows of three color symbols from the reader.
func readFace(reader *bufio.Reader) ([][]rubikscan.Color, error) {
	rows := make([][]rubikscan.Color, 0, 3)
	for len(rows) < 3 {
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return nil, err
		}

		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line == "" {
			continue
		}
		if len(line) != 3 {
			return nil, fmt.Errorf("expected 3 symbols, got %q", line)
		}

		row := make([]rubikscan.Color, 3)
		for i := 0; i < 3; i++ {
			color, err := rubikscan.ColorFromSymbol(line[i])
			if err != nil {
				return nil, fmt.Errorf("symbol %q: %w", line[i], err)
			}
			row[i] = color
		}
		rows = append(rows, row)
	}
	return rows, nil
}
