package rubikscan

import "errors"

// Sentinel errors for the rubikscan package.
var (
	// Decoding errors
	ErrInvalidColorSymbol = errors.New("rubikscan: invalid color symbol")
	ErrInvalidNotation    = errors.New("rubikscan: invalid move notation")

	// State errors
	ErrMalformedState  = errors.New("rubikscan: malformed cube state")
	ErrIndexOutOfRange = errors.New("rubikscan: facelet index out of range")
)
