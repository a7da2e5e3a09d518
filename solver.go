package rubikscan

// Solver computes a move sequence that restores a cube to the solved
// state. Implementations are external: they consume the 54-character
// facelet string produced by SolverString and return the moves to
// replay with Apply. This package defines only the handoff contract.
type Solver interface {
	Solve(facelets string) ([]Move, error)
}

// Solves reports whether replaying a move sequence on a copy of the
// cube leaves it solved. The cube itself is not modified. Useful for
// checking a solver's answer before committing it.
func Solves(c *Cube, moves []Move) bool {
	check := c.Clone()
	check.Apply(moves...)
	return check.IsSolved()
}
