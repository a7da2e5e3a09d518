package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rubikscan/rubikscan"
)

// faceletStyles maps each color to a styled sticker.
var faceletStyles = map[rubikscan.Color]lipgloss.Style{
	rubikscan.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")),
	rubikscan.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0")),
	rubikscan.Red:    lipgloss.NewStyle().Background(lipgloss.Color("160")).Foreground(lipgloss.Color("255")),
	rubikscan.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
	rubikscan.Green:  lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("255")),
	rubikscan.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),
}

// sticker renders one facelet as a colored block.
func sticker(c rubikscan.Color) string {
	return faceletStyles[c].Render(" " + c.String() + " ")
}

// faceRow renders one row of one face.
func faceRow(c *rubikscan.Cube, face rubikscan.Face, row int) string {
	grid := c.GetFace(face)
	var sb strings.Builder
	for col := 0; col < 3; col++ {
		sb.WriteString(sticker(grid[row][col]))
	}
	return sb.String()
}

// renderNet renders the cube as an unfolded net: up on top, then the
// left/front/right/back band, then down.
func renderNet(c *rubikscan.Cube) string {
	indent := strings.Repeat(" ", 9)
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		sb.WriteString(indent)
		sb.WriteString(faceRow(c, rubikscan.Up, row))
		sb.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		for _, face := range []rubikscan.Face{rubikscan.Left, rubikscan.Front, rubikscan.Right, rubikscan.Back} {
			sb.WriteString(faceRow(c, face, row))
		}
		sb.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		sb.WriteString(indent)
		sb.WriteString(faceRow(c, rubikscan.Down, row))
		sb.WriteByte('\n')
	}

	return sb.String()
}
