package rubikscan

// Color represents a facelet color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Red    Color = 2 // Right face when solved
	Orange Color = 3 // Left face when solved
	Green  Color = 4 // Front face when solved
	Blue   Color = 5 // Back face when solved
)

// Symbol returns the one-character encoding for the color.
func (c Color) Symbol() byte {
	switch c {
	case White:
		return 'W'
	case Yellow:
		return 'Y'
	case Red:
		return 'R'
	case Orange:
		return 'O'
	case Green:
		return 'G'
	case Blue:
		return 'B'
	default:
		return '?'
	}
}

func (c Color) String() string {
	return string(c.Symbol())
}

// ColorFromSymbol decodes a one-character color symbol.
// Returns ErrInvalidColorSymbol for any byte outside {W,Y,R,O,G,B}.
func ColorFromSymbol(b byte) (Color, error) {
	switch b {
	case 'W', 'w':
		return White, nil
	case 'Y', 'y':
		return Yellow, nil
	case 'R', 'r':
		return Red, nil
	case 'O', 'o':
		return Orange, nil
	case 'G', 'g':
		return Green, nil
	case 'B', 'b':
		return Blue, nil
	default:
		return 0, ErrInvalidColorSymbol
	}
}
