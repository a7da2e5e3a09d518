// Package rubikscan models a 3x3 Rubik's cube: the 54-facelet state,
// the face-turn move engine, and the serializations used to hand a
// state to an external solver.
//
// # Quick Start
//
// Create a solved cube and apply moves:
//
//	cube := rubikscan.New()
//
//	// Apply moves using predefined constants
//	cube.Apply(rubikscan.R, rubikscan.U, rubikscan.RPrime, rubikscan.UPrime)
//
//	// Or from notation
//	cube.ApplyNotation("F B2 L' D")
//
//	fmt.Println("Solved:", cube.IsSolved())
//
// # Scrambling
//
// Scrambles take an explicit random source so sequences are
// reproducible:
//
//	rng := rand.New(rand.NewSource(42))
//	moves := rubikscan.Scramble(cube, 25, rng)
//	fmt.Println(rubikscan.FormatMoves(moves))
//
// # Solver Handoff
//
// SolverString emits the fixed 54-character facelet string (faces in
// U,R,F,D,L,B order, row-major) that external solving algorithms
// consume; FromSolverString decodes it back. The Solver interface
// describes the collaborator that turns such a string into a move
// sequence.
//
// # External State
//
// Scanned face colors enter through SetFace or FromFacelets. Both
// deep-copy their input and validate only dimensions; solvability is
// the producer's concern.
package rubikscan
