package rubikscan

// Face represents a cube face. The constant values fix the face order
// used by the display dump and by FromFacelets grids.
type Face int

const (
	Front Face = 0 // Green when solved
	Back  Face = 1 // Blue when solved
	Left  Face = 2 // Orange when solved
	Right Face = 3 // Red when solved
	Up    Face = 4 // White when solved
	Down  Face = 5 // Yellow when solved
)

// Faces lists every face in declaration order.
var Faces = [6]Face{Front, Back, Left, Right, Up, Down}

// Name returns the long face name.
func (f Face) Name() string {
	switch f {
	case Front:
		return "FRONT"
	case Back:
		return "BACK"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	default:
		return "?"
	}
}

// String returns the Singmaster letter for the face.
func (f Face) String() string {
	switch f {
	case Front:
		return "F"
	case Back:
		return "B"
	case Left:
		return "L"
	case Right:
		return "R"
	case Up:
		return "U"
	case Down:
		return "D"
	default:
		return "?"
	}
}

// Opposite returns the face on the other side of the cube.
// A turn of a face never moves any facelet on its opposite.
func (f Face) Opposite() Face {
	switch f {
	case Front:
		return Back
	case Back:
		return Front
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// faceToSolvedColor returns the color of a face when solved.
func faceToSolvedColor(f Face) Color {
	switch f {
	case Front:
		return Green
	case Back:
		return Blue
	case Left:
		return Orange
	case Right:
		return Red
	case Up:
		return White
	case Down:
		return Yellow
	default:
		return White
	}
}
