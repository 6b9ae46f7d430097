package layout

import (
	"fmt"
	"math"
)

const (
	methodValidate = "Validate"

	minPadding     = 2  // waypoints never sit closer than this to an edge
	paddingDivisor = 10 // padding grows by one cell per ten cells of the short side

	// MaxCells caps Width×Height.
	MaxCells = 1 << 24

	probMin = 0.0
	probMax = 1.0
)

// Params are the declarative inputs of one generation.
type Params struct {
	// Width and Height are the grid extent; both must be positive.
	Width, Height int
	// Start is the player start cell; the spine begins and ends here.
	Start Position
	// Waypoints is how many interior points the spine tries to visit.
	Waypoints int
	// MinRadius and MaxRadius bound the per-spine-cell buff radius.
	MinRadius, MaxRadius int
	// OrthogonalProb and DiagonalProb are the base fill probabilities in [0,1].
	OrthogonalProb, DiagonalProb float64
}

// Padding returns the interior margin waypoints are kept from each edge:
// max(2, min(width,height)/10).
func Padding(width, height int) int {
	return max(minPadding, min(width, height)/paddingDivisor)
}

// Validate checks Params against the generator's domain. Checks run in a
// fixed order: size, start, waypoint count, radius, probability, and finally
// the waypoint sampling range (only when waypoints are requested).
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%s: width=%d, height=%d (each must be ≥ 1): %w",
			methodValidate, p.Width, p.Height, ErrBadSize)
	}
	if p.Width > MaxCells/p.Height {
		return fmt.Errorf("%s: width=%d, height=%d exceeds %d cells: %w",
			methodValidate, p.Width, p.Height, MaxCells, ErrBadSize)
	}
	if p.Start.X < 0 || p.Start.X >= p.Width || p.Start.Y < 0 || p.Start.Y >= p.Height {
		return fmt.Errorf("%s: start=%v outside %dx%d: %w",
			methodValidate, p.Start, p.Width, p.Height, ErrStartOutOfBounds)
	}
	if p.Waypoints < 0 {
		return fmt.Errorf("%s: waypoints=%d (must be ≥ 0): %w",
			methodValidate, p.Waypoints, ErrBadSize)
	}
	if p.MinRadius < 0 || p.MaxRadius < 0 || p.MinRadius > p.MaxRadius {
		return fmt.Errorf("%s: radius=[%d,%d]: %w",
			methodValidate, p.MinRadius, p.MaxRadius, ErrInvalidRadius)
	}
	if err := validateProbability("orthogonal", p.OrthogonalProb); err != nil {
		return err
	}
	if err := validateProbability("diagonal", p.DiagonalProb); err != nil {
		return err
	}
	if p.Waypoints > 0 {
		if err := validateSamplingRange(p.Width, p.Height); err != nil {
			return err
		}
	}
	return nil
}

// validateProbability enforces prob ∈ [0,1]; NaN is rejected too.
func validateProbability(name string, prob float64) error {
	if math.IsNaN(prob) || prob < probMin || prob > probMax {
		return fmt.Errorf("%s: %s probability=%f not in [%.1f,%.1f]: %w",
			methodValidate, name, prob, probMin, probMax, ErrInvalidProbability)
	}
	return nil
}

// validateSamplingRange reports ErrDegenerateRange when [p, size-p) is empty
// on either axis.
func validateSamplingRange(width, height int) error {
	pad := Padding(width, height)
	if width-2*pad <= 0 || height-2*pad <= 0 {
		return fmt.Errorf("%s: %dx%d leaves no interior with padding %d: %w",
			methodValidate, width, height, pad, ErrDegenerateRange)
	}
	return nil
}

// bufferParams extracts the Organic Buffer knobs.
func (p Params) bufferParams() BufferParams {
	return BufferParams{
		MinRadius:      p.MinRadius,
		MaxRadius:      p.MaxRadius,
		OrthogonalProb: p.OrthogonalProb,
		DiagonalProb:   p.DiagonalProb,
	}
}
