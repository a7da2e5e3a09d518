package rubikscan

import (
	"errors"
	"strings"
	"testing"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := New()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
}

func TestNewCubeStandardColors(t *testing.T) {
	c := New()
	want := map[Face]Color{
		Front: Green, Back: Blue, Left: Orange,
		Right: Red, Up: White, Down: Yellow,
	}
	for face, color := range want {
		got, err := c.GetColor(face, 1, 1)
		if err != nil {
			t.Fatalf("GetColor(%v, 1, 1): %v", face, err)
		}
		if got != color {
			t.Errorf("%v center = %v, want %v", face, got, color)
		}
	}
}

func TestGetColorOutOfRange(t *testing.T) {
	c := New()
	cases := []struct{ row, col int }{
		{3, 0}, {0, 3}, {-1, 0}, {0, -1}, {3, 3},
	}
	for _, tc := range cases {
		if _, err := c.GetColor(Front, tc.row, tc.col); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("GetColor(Front, %d, %d) = %v, want ErrIndexOutOfRange", tc.row, tc.col, err)
		}
		if err := c.SetColor(Front, tc.row, tc.col, Red); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("SetColor(Front, %d, %d) = %v, want ErrIndexOutOfRange", tc.row, tc.col, err)
		}
	}
}

func TestSetColorRoundTrip(t *testing.T) {
	c := New()
	if err := c.SetColor(Up, 0, 2, Blue); err != nil {
		t.Fatalf("SetColor: %v", err)
	}
	got, err := c.GetColor(Up, 0, 2)
	if err != nil {
		t.Fatalf("GetColor: %v", err)
	}
	if got != Blue {
		t.Errorf("GetColor(Up, 0, 2) = %v, want Blue", got)
	}
}

func TestSetFaceReplacesWholeFace(t *testing.T) {
	c := New()
	grid := [3][3]Color{
		{White, Yellow, Red},
		{Orange, Green, Blue},
		{White, Yellow, Red},
	}
	c.SetFace(Left, grid)
	if c.GetFace(Left) != grid {
		t.Error("GetFace(Left) should return the grid set by SetFace")
	}
	// Mutating the source grid must not affect the cube.
	grid[0][0] = Green
	if got := c.GetFace(Left); got[0][0] != White {
		t.Error("SetFace should copy the grid, not alias it")
	}
}

func TestFromFacelets(t *testing.T) {
	grid := make([][][]Color, 6)
	for f := range grid {
		grid[f] = make([][]Color, 3)
		for row := range grid[f] {
			grid[f][row] = []Color{Red, Red, Red}
		}
	}
	c, err := FromFacelets(grid)
	if err != nil {
		t.Fatalf("FromFacelets: %v", err)
	}
	if !c.IsSolved() {
		t.Error("Uniform faces should report solved even with repeated colors")
	}

	// Deep copy: later grid mutation must not leak into the cube.
	grid[0][0][0] = Blue
	got, _ := c.GetColor(Front, 0, 0)
	if got != Red {
		t.Error("FromFacelets should deep-copy the grid")
	}
}

func TestFromFaceletsMalformed(t *testing.T) {
	full := func() [][][]Color {
		grid := make([][][]Color, 6)
		for f := range grid {
			grid[f] = make([][]Color, 3)
			for row := range grid[f] {
				grid[f][row] = []Color{White, White, White}
			}
		}
		return grid
	}

	cases := []struct {
		name string
		grid [][][]Color
	}{
		{"nil", nil},
		{"five faces", full()[:5]},
		{"short face", func() [][][]Color {
			g := full()
			g[2] = g[2][:2]
			return g
		}()},
		{"short row", func() [][][]Color {
			g := full()
			g[4][1] = g[4][1][:2]
			return g
		}()},
	}

	for _, tc := range cases {
		if _, err := FromFacelets(tc.grid); !errors.Is(err, ErrMalformedState) {
			t.Errorf("%s: FromFacelets = %v, want ErrMalformedState", tc.name, err)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := New()
	clone := c.Clone()
	clone.RotateClockwise(Front)
	if !c.IsSolved() {
		t.Error("Rotating a clone should not affect the original")
	}
	if clone.IsSolved() {
		t.Error("Clone should have been rotated")
	}
}

func TestStringDump(t *testing.T) {
	c := New()
	s := c.String()

	// Faces appear in declaration order with their grids below.
	order := []string{"FRONT:", "BACK:", "LEFT:", "RIGHT:", "UP:", "DOWN:"}
	last := -1
	for _, name := range order {
		idx := strings.Index(s, name)
		if idx < 0 {
			t.Fatalf("Dump missing %s:\n%s", name, s)
		}
		if idx < last {
			t.Errorf("%s out of order in dump", name)
		}
		last = idx
	}

	if !strings.Contains(s, "G G G") {
		t.Errorf("Dump should contain front face row 'G G G':\n%s", s)
	}
}

const solvedSolverString = "WWWWWWWWWRRRRRRRRRGGGGGGGGGYYYYYYYYYOOOOOOOOOBBBBBBBBB"

func TestSolverStringSolved(t *testing.T) {
	c := New()
	s := c.SolverString()
	if len(s) != 54 {
		t.Fatalf("SolverString length = %d, want 54", len(s))
	}
	if s != solvedSolverString {
		t.Errorf("SolverString = %s, want %s", s, solvedSolverString)
	}
	for _, sym := range []string{"W", "Y", "R", "O", "G", "B"} {
		if n := strings.Count(s, sym); n != 9 {
			t.Errorf("SolverString has %d of %s, want 9", n, sym)
		}
	}
}

func TestSolverStringRoundTrip(t *testing.T) {
	c := New()
	c.Apply(R, U, FPrime, D2, L, BPrime)

	decoded, err := FromSolverString(c.SolverString())
	if err != nil {
		t.Fatalf("FromSolverString: %v", err)
	}
	if *decoded != *c {
		t.Error("Decoding an encoded cube should reproduce it")
		t.Log(c.String())
		t.Log(decoded.String())
	}
}

func TestFromSolverStringErrors(t *testing.T) {
	if _, err := FromSolverString("WWW"); !errors.Is(err, ErrMalformedState) {
		t.Errorf("Short string: got %v, want ErrMalformedState", err)
	}

	bad := "X" + solvedSolverString[1:]
	if _, err := FromSolverString(bad); !errors.Is(err, ErrInvalidColorSymbol) {
		t.Errorf("Bad symbol: got %v, want ErrInvalidColorSymbol", err)
	}
}

func TestColorFromSymbol(t *testing.T) {
	cases := []struct {
		in   byte
		want Color
	}{
		{'W', White}, {'Y', Yellow}, {'R', Red},
		{'O', Orange}, {'G', Green}, {'B', Blue},
		{'w', White}, {'g', Green},
	}
	for _, tc := range cases {
		got, err := ColorFromSymbol(tc.in)
		if err != nil {
			t.Errorf("ColorFromSymbol(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ColorFromSymbol(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []byte{'X', 'x', ' ', '1', 0} {
		if _, err := ColorFromSymbol(bad); !errors.Is(err, ErrInvalidColorSymbol) {
			t.Errorf("ColorFromSymbol(%q) = %v, want ErrInvalidColorSymbol", bad, err)
		}
	}
}
