package rubikscan

import (
	"math/rand"
	"testing"
)

// colorCounts tallies the 54-facelet color multiset.
func colorCounts(c *Cube) [6]int {
	var counts [6]int
	for _, face := range Faces {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				color, _ := c.GetColor(face, row, col)
				counts[color]++
			}
		}
	}
	return counts
}

// scrambled returns a deterministic non-trivial cube state.
func scrambled() *Cube {
	c := New()
	Scramble(c, 30, rand.New(rand.NewSource(7)))
	return c
}

func TestFourClockwiseIsIdentity(t *testing.T) {
	for _, face := range Faces {
		c := scrambled()
		before := *c
		for i := 0; i < 4; i++ {
			c.RotateClockwise(face)
		}
		if *c != before {
			t.Errorf("%v x 4 should return to the original state", face)
			t.Log(c.String())
		}
	}
}

func TestClockwiseThenCounterClockwiseIsIdentity(t *testing.T) {
	for _, face := range Faces {
		c := scrambled()
		before := *c
		c.RotateClockwise(face)
		c.RotateCounterClockwise(face)
		if *c != before {
			t.Errorf("%v then %v' should return to the original state", face, face)
			t.Log(c.String())
		}
	}
}

func TestCounterClockwiseEqualsThreeClockwise(t *testing.T) {
	for _, face := range Faces {
		a := scrambled()
		b := a.Clone()

		a.RotateCounterClockwise(face)
		b.RotateClockwise(face)
		b.RotateClockwise(face)
		b.RotateClockwise(face)

		if *a != *b {
			t.Errorf("%v' should equal %v x 3", face, face)
			t.Log(a.String())
			t.Log(b.String())
		}
	}
}

func TestSexyMoveSixTimesIsIdentity(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := New()
	for i := 0; i < 6; i++ {
		c.Apply(SexyMove...)
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestColorMultisetConserved(t *testing.T) {
	c := New()
	before := colorCounts(c)

	rng := rand.New(rand.NewSource(99))
	Scramble(c, 200, rng)

	if got := colorCounts(c); got != before {
		t.Errorf("Color multiset changed under moves: %v -> %v", before, got)
	}
	for color, n := range before {
		if n != 9 {
			t.Errorf("Solved cube has %d facelets of color %d, want 9", n, color)
		}
	}
}

func TestMoveTouchesOnlyFaceAndRing(t *testing.T) {
	for _, face := range Faces {
		// Positions a turn of this face may relocate: its own block
		// plus the 12 ring facelets in its edge cycle.
		touched := map[[3]int]bool{}
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				touched[[3]int{int(face), row, col}] = true
			}
		}
		ringSize := 0
		for _, s := range edgeCycles[face] {
			for _, cl := range s.cells {
				touched[[3]int{int(s.face), cl.row, cl.col}] = true
				ringSize++
			}
		}
		if ringSize != 12 {
			t.Fatalf("%v edge cycle covers %d facelets, want 12", face, ringSize)
		}

		c := scrambled()
		before := *c
		c.RotateClockwise(face)

		for _, f := range Faces {
			for row := 0; row < 3; row++ {
				for col := 0; col < 3; col++ {
					if touched[[3]int{int(f), row, col}] {
						continue
					}
					if c.facelets[f][row][col] != before.facelets[f][row][col] {
						t.Errorf("%v turn changed untouched facelet (%v,%d,%d)", face, f, row, col)
					}
				}
			}
		}
	}
}

func TestOppositeFaceUntouched(t *testing.T) {
	for _, face := range Faces {
		c := scrambled()
		opp := face.Opposite()
		before := c.GetFace(opp)

		c.RotateClockwise(face)
		c.RotateCounterClockwise(face)
		c.RotateClockwise(face)

		if c.GetFace(opp) != before {
			t.Errorf("Turning %v must never touch %v", face, opp)
		}
	}
}

func TestFrontTurnScenario(t *testing.T) {
	c := New()
	c.RotateClockwise(Front)

	if c.IsSolved() {
		t.Error("Cube should not be solved after a front turn")
	}

	// The turned face and its opposite stay uniform.
	for _, face := range []Face{Front, Back} {
		grid := c.GetFace(face)
		center := grid[1][1]
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if grid[row][col] != center {
					t.Errorf("%v should remain uniform after a front turn", face)
				}
			}
		}
	}

	// Each bordering face gained a foreign strip.
	for _, face := range []Face{Up, Right, Down, Left} {
		grid := c.GetFace(face)
		center := grid[1][1]
		uniform := true
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if grid[row][col] != center {
					uniform = false
				}
			}
		}
		if uniform {
			t.Errorf("%v should have a foreign strip after a front turn", face)
			t.Log(c.String())
		}
	}

	// Spot-check the strip transfers: up's bottom row came from the
	// left face (orange), right's left column from up (white).
	if got, _ := c.GetColor(Up, 2, 0); got != Orange {
		t.Errorf("Up(2,0) = %v after F, want Orange", got)
	}
	if got, _ := c.GetColor(Right, 0, 0); got != White {
		t.Errorf("Right(0,0) = %v after F, want White", got)
	}
	if got, _ := c.GetColor(Down, 0, 0); got != Red {
		t.Errorf("Down(0,0) = %v after F, want Red", got)
	}
	if got, _ := c.GetColor(Left, 0, 2); got != Yellow {
		t.Errorf("Left(0,2) = %v after F, want Yellow", got)
	}
}

func TestBlockRotationMapsCorners(t *testing.T) {
	c := New()
	// Mark the front face with a distinguishable pattern.
	c.SetFace(Front, [3][3]Color{
		{White, Yellow, Red},
		{Orange, Green, Blue},
		{Green, Blue, White},
	})

	c.RotateClockwise(Front)

	// (row,col) -> (col, 2-row): top-left corner moves to top-right.
	want := [3][3]Color{
		{Green, Orange, White},
		{Blue, Green, Yellow},
		{White, Blue, Red},
	}
	if got := c.GetFace(Front); got != want {
		t.Errorf("Front block after clockwise turn = %v, want %v", got, want)
	}
}
