package layout

import (
	"errors"
	"math"
	"testing"
)

func validParams() Params {
	return Params{
		Width: 10, Height: 10,
		Start:     Position{X: 5, Y: 0},
		Waypoints: 3,
		MinRadius: 1, MaxRadius: 2,
		OrthogonalProb: 0.5, DiagonalProb: 0.2,
	}
}

// TestPadding covers the max(2, min(w,h)/10) rule.
func TestPadding(t *testing.T) {
	cases := []struct{ w, h, want int }{
		{10, 10, 2},
		{5, 50, 2},
		{30, 40, 3},
		{100, 45, 4},
		{1, 1, 2},
	}
	for _, tc := range cases {
		if got := Padding(tc.w, tc.h); got != tc.want {
			t.Errorf("Padding(%d,%d) = %d; want %d", tc.w, tc.h, got, tc.want)
		}
	}
}

// TestValidate table-tests every rejection class with errors.Is.
func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Params)
		err  error
	}{
		{"Valid", func(*Params) {}, nil},
		{"ZeroWidth", func(p *Params) { p.Width = 0 }, ErrBadSize},
		{"NegativeHeight", func(p *Params) { p.Height = -1 }, ErrBadSize},
		{"TooManyCells", func(p *Params) { p.Width, p.Height = math.MaxInt/2, 4 }, ErrBadSize},
		{"CellCapOverflow", func(p *Params) { p.Width, p.Height = MaxCells/10+1, 10 }, ErrBadSize},
		{"StartLeft", func(p *Params) { p.Start.X = -1 }, ErrStartOutOfBounds},
		{"StartAbove", func(p *Params) { p.Start.Y = 10 }, ErrStartOutOfBounds},
		{"NegativeWaypoints", func(p *Params) { p.Waypoints = -1 }, ErrBadSize},
		{"NegativeRadius", func(p *Params) { p.MinRadius = -1 }, ErrInvalidRadius},
		{"MinAboveMax", func(p *Params) { p.MinRadius, p.MaxRadius = 3, 2 }, ErrInvalidRadius},
		{"OrthogonalAboveOne", func(p *Params) { p.OrthogonalProb = 1.01 }, ErrInvalidProbability},
		{"DiagonalNegative", func(p *Params) { p.DiagonalProb = -0.1 }, ErrInvalidProbability},
		{"ProbabilityNaN", func(p *Params) { p.DiagonalProb = math.NaN() }, ErrInvalidProbability},
		{"DegenerateRange", func(p *Params) { p.Width, p.Height, p.Start = 4, 20, Position{} }, ErrDegenerateRange},
		{"TinyGridNoWaypoints", func(p *Params) { p.Width, p.Height, p.Start, p.Waypoints = 1, 1, Position{}, 0 }, nil},
		{"BoundaryProbabilities", func(p *Params) { p.OrthogonalProb, p.DiagonalProb = 1, 0 }, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			tc.mut(&p)
			err := p.Validate()
			if tc.err == nil {
				if err != nil {
					t.Fatalf("Validate() = %v; want nil", err)
				}
				return
			}
			if !errors.Is(err, tc.err) {
				t.Fatalf("Validate() = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestValidate_Order: a size error wins over everything else.
func TestValidate_Order(t *testing.T) {
	p := Params{Width: 0, Height: 0, Start: Position{X: -5}, MinRadius: -1, OrthogonalProb: 7}
	if err := p.Validate(); !errors.Is(err, ErrBadSize) {
		t.Fatalf("Validate() = %v; want ErrBadSize first", err)
	}
}

// TestGenerate_RejectsHugeGrid: a width×height product that overflows int
// fails validation instead of reaching the grid.
func TestGenerate_RejectsHugeGrid(t *testing.T) {
	p := Params{Width: math.MaxInt / 2, Height: 4}
	g, err := Generate(p, WithSeed(1))
	if !errors.Is(err, ErrBadSize) {
		t.Fatalf("Generate() = %v; want ErrBadSize", err)
	}
	if g != nil {
		t.Fatalf("Generate() grid = %v; want nil", g)
	}
}
