package abi

import "errors"

// Normalization errors. Returned errors wrap one of these with the
// position of the offending entry, use errors.Is to match them.
var (
	// ErrMalformedJSON means the input is not JSON, the root is not an array,
	// or an entry or parameter list has the wrong JSON shape.
	ErrMalformedJSON = errors.New("malformed abi json")

	ErrMissingType        = errors.New("no type")
	ErrMissingInputs      = errors.New("no inputs")
	ErrInvalidInputParam  = errors.New("input argument invalid due to no name or no type")
	ErrInvalidOutputParam = errors.New("output argument invalid due to no name or no type")
)
