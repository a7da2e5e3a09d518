package rubikscan

import "strings"

// Cube represents a 3x3 Rubik's cube as 6 faces of 3x3 facelets.
// Each face is addressed by (row, col) with row 0 at the top of the
// face and col 0 at the left, viewed from outside that face.
// The center facelet (1,1) defines the face color and never moves.
//
// A Cube owns its facelet grid outright. Construction always deep-copies
// caller-provided grids, so no two cubes ever share storage.
type Cube struct {
	// facelets[face][row][col] = color
	facelets [6][3][3]Color
}

// New creates a solved cube with the standard color arrangement:
// white up, green front.
func New() *Cube {
	c := &Cube{}
	for _, face := range Faces {
		color := faceToSolvedColor(face)
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				c.facelets[face][row][col] = color
			}
		}
	}
	return c
}

// FromFacelets creates a cube from a caller-supplied grid of 6 faces,
// indexed in Face declaration order. The grid is deep-copied.
// Returns ErrMalformedState unless the grid is exactly 6x3x3.
// Color counts and solvability are not validated; that is the
// caller's concern.
func FromFacelets(grid [][][]Color) (*Cube, error) {
	if len(grid) != 6 {
		return nil, ErrMalformedState
	}
	c := &Cube{}
	for f := 0; f < 6; f++ {
		if len(grid[f]) != 3 {
			return nil, ErrMalformedState
		}
		for row := 0; row < 3; row++ {
			if len(grid[f][row]) != 3 {
				return nil, ErrMalformedState
			}
			for col := 0; col < 3; col++ {
				c.facelets[f][row][col] = grid[f][row][col]
			}
		}
	}
	return c, nil
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// GetColor returns the color at a position on a face.
// Returns ErrIndexOutOfRange if row or col is outside [0,2].
func (c *Cube) GetColor(face Face, row, col int) (Color, error) {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return 0, ErrIndexOutOfRange
	}
	return c.facelets[face][row][col], nil
}

// SetColor sets the color at a position on a face.
// Returns ErrIndexOutOfRange if row or col is outside [0,2].
func (c *Cube) SetColor(face Face, row, col int, color Color) error {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return ErrIndexOutOfRange
	}
	c.facelets[face][row][col] = color
	return nil
}

// GetFace returns a copy of one face's 3x3 grid.
func (c *Cube) GetFace(face Face) [3][3]Color {
	return c.facelets[face]
}

// SetFace replaces one face's 3x3 grid. The grid is copied, not
// aliased. No color multiset validation is performed; this is the
// entry point for externally scanned faces.
func (c *Cube) SetFace(face Face, grid [3][3]Color) {
	c.facelets[face] = grid
}

// IsSolved returns true if every face is uniform with its own center.
// This is the physical solved condition: it holds under any consistent
// relabeling of colors, not only the standard arrangement.
func (c *Cube) IsSolved() bool {
	for _, face := range Faces {
		center := c.facelets[face][1][1]
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if c.facelets[face][row][col] != center {
					return false
				}
			}
		}
	}
	return true
}

// String returns a human-readable dump of the cube, one face at a
// time in declaration order. Diagnostics only; the layout is not a
// stable contract.
func (c *Cube) String() string {
	var sb strings.Builder
	for _, face := range Faces {
		sb.WriteString(face.Name())
		sb.WriteString(":\n")
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if col > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteByte(c.facelets[face][row][col].Symbol())
			}
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// solverFaceOrder is the face order of the solver handoff string.
var solverFaceOrder = [6]Face{Up, Right, Front, Down, Left, Back}

// SolverString returns the 54-character facelet string consumed by
// external solving algorithms: faces in U,R,F,D,L,B order, each face
// row-major, one symbol per facelet. This layout is a compatibility
// contract and must not change.
func (c *Cube) SolverString() string {
	buf := make([]byte, 0, 54)
	for _, face := range solverFaceOrder {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				buf = append(buf, c.facelets[face][row][col].Symbol())
			}
		}
	}
	return string(buf)
}

// FromSolverString decodes a 54-character solver string back into a
// cube. Returns ErrMalformedState for a wrong length and
// ErrInvalidColorSymbol for any unrecognized character.
func FromSolverString(s string) (*Cube, error) {
	if len(s) != 54 {
		return nil, ErrMalformedState
	}
	c := &Cube{}
	i := 0
	for _, face := range solverFaceOrder {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				color, err := ColorFromSymbol(s[i])
				if err != nil {
					return nil, err
				}
				c.facelets[face][row][col] = color
				i++
			}
		}
	}
	return c, nil
}
