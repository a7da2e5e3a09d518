package rubikscan

import "math/rand"

// Scramble applies moveCount random quarter turns to the cube,
// chosen uniformly over the 6 faces and 2 directions, and returns
// the sequence that was applied.
//
// The random source is injected so scrambles are reproducible from a
// seeded source. A nil rng panics; callers wanting ambient randomness
// can pass rand.New(rand.NewSource(time.Now().UnixNano())).
func Scramble(c *Cube, moveCount int, rng *rand.Rand) []Move {
	moves := make([]Move, 0, moveCount)
	for i := 0; i < moveCount; i++ {
		face := Faces[rng.Intn(len(Faces))]
		turn := CW
		if rng.Intn(2) == 1 {
			turn = CCW
		}
		m := Move{Face: face, Turn: turn}
		c.Apply(m)
		moves = append(moves, m)
	}
	return moves
}
