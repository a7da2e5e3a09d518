package cli

import (
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rubikscan/rubikscan"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn faces interactively",
	Long: `Interactive cube session.

Keys:
  u d f b l r   turn a face clockwise
  U D F B L R   turn a face counter-clockwise (shift)
  s             scramble
  z             undo the last move
  n             reset to solved
  q             quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(newPlayModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play session error: %w", err)
	}
	return nil
}

var (
	playTitleStyle  = lipgloss.NewStyle().Bold(true)
	playStatusStyle = lipgloss.NewStyle().Faint(true)
	playSolvedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("34"))
)

type playModel struct {
	cube   *rubikscan.Cube
	moves  []rubikscan.Move
	status string
}

func newPlayModel() playModel {
	return playModel{
		cube:   rubikscan.New(),
		status: "solved cube - press keys to turn faces",
	}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	switch key {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "s":
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		applied := rubikscan.Scramble(m.cube, 25, rng)
		m.moves = append(m.moves, applied...)
		m.status = "scrambled: " + rubikscan.FormatMoves(applied)
		return m, nil

	case "z":
		if len(m.moves) == 0 {
			m.status = "nothing to undo"
			return m, nil
		}
		last := m.moves[len(m.moves)-1]
		m.moves = m.moves[:len(m.moves)-1]
		m.cube.Apply(last.Inverse())
		m.status = "undid " + last.Notation()
		return m, nil

	case "n":
		m.cube = rubikscan.New()
		m.moves = nil
		m.status = "reset to solved"
		return m, nil
	}

	// Face turns: lowercase clockwise, uppercase counter-clockwise.
	if len(key) == 1 {
		move, err := rubikscan.ParseMove(key)
		if err != nil {
			return m, nil
		}
		if key[0] >= 'A' && key[0] <= 'Z' {
			move = move.Inverse()
		}
		m.cube.Apply(move)
		m.moves = append(m.moves, move)
		m.status = "applied " + move.Notation()
	}

	return m, nil
}

func (m playModel) View() string {
	view := playTitleStyle.Render("rubikscan play") + "\n\n"
	view += renderNet(m.cube) + "\n"

	if m.cube.IsSolved() {
		view += playSolvedStyle.Render("SOLVED") + "\n"
	} else {
		view += fmt.Sprintf("%d moves\n", len(m.moves))
	}

	// Show the tail of the move history.
	tail := m.moves
	if len(tail) > 12 {
		tail = tail[len(tail)-12:]
	}
	if len(tail) > 0 {
		view += playStatusStyle.Render(rubikscan.FormatMoves(tail)) + "\n"
	}

	view += "\n" + playStatusStyle.Render(m.status) + "\n"
	view += playStatusStyle.Render("u/d/f/b/l/r turn - shift reverses - s scramble - z undo - n reset - q quit") + "\n"
	return view
}
