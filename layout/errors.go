package layout

import "errors"

// Sentinel errors returned by Params.Validate, Generate and Build.
// Branch on them with errors.Is; messages carry the offending values.
var (
	// ErrBadSize indicates a non-positive width/height or a negative waypoint count.
	ErrBadSize = errors.New("layout: invalid size")
	// ErrStartOutOfBounds indicates the start position lies outside the grid.
	ErrStartOutOfBounds = errors.New("layout: start position out of bounds")
	// ErrInvalidRadius indicates a negative buff radius or MinRadius > MaxRadius.
	ErrInvalidRadius = errors.New("layout: invalid buff radius")
	// ErrInvalidProbability indicates a buff probability outside [0,1].
	ErrInvalidProbability = errors.New("layout: probability out of range")
	// ErrDegenerateRange indicates the padded waypoint sampling range is empty.
	ErrDegenerateRange = errors.New("layout: waypoint sampling range is empty")
)
