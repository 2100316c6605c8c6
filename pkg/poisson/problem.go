// Package poisson solves the 2D Poisson equation on the unit-style square
// domain [0,L]x[0,L] with Dirichlet boundary conditions, using the classical
// five-point finite-difference discretization. The discrete Laplacian is
// assembled as a Kronecker sum of 1D second-difference operators and the
// resulting symmetric positive-definite system is solved densely.
//
// The operator uses the unit-spacing stencil [1,-2,1] without a 1/d^2
// factor, matching the course convention of folding the scaling into the
// boundary and source magnitudes.
package poisson

import (
	"fmt"

	"numlab/internal/models"
)

// BoundaryFunc evaluates a Dirichlet boundary condition along one edge.
// The argument is the coordinate that varies along that edge (x for the
// bottom and top edges, y for the left and right edges).
type BoundaryFunc func(t float64) float64

// SourceFunc evaluates the source term at an interior point.
type SourceFunc func(x, y float64) float64

// Problem bundles everything that defines one Poisson boundary-value
// problem: the grid, the four edge conditions and the source term.
// The zero value of each function field is treated as identically zero.
type Problem struct {
	// Grid is the uniform square mesh the problem is discretized on.
	Grid models.Grid

	// Bottom, Right, Top and Left are the Dirichlet conditions on the
	// four edges of the domain.
	Bottom BoundaryFunc
	Right  BoundaryFunc
	Top    BoundaryFunc
	Left   BoundaryFunc

	// Source is the right-hand side s(x,y) of -Laplace(u) = s.
	Source SourceFunc
}

// NewProblem creates a Problem on an n-by-n grid over [0,length]^2 with
// homogeneous (zero) boundary conditions and zero source.
func NewProblem(n int, length float64) *Problem {
	return &Problem{Grid: models.Grid{N: n, L: length}}
}

// validate checks that the grid has at least one interior unknown.
func (p *Problem) validate() error {
	if p.Grid.N < 3 {
		return fmt.Errorf("poisson: grid size %d leaves no interior unknowns, need N >= 3", p.Grid.N)
	}
	if p.Grid.L <= 0 {
		return fmt.Errorf("poisson: domain length must be positive, got %g", p.Grid.L)
	}
	return nil
}

func (p *Problem) bottom(t float64) float64 { return evalOrZero(p.Bottom, t) }
func (p *Problem) right(t float64) float64  { return evalOrZero(p.Right, t) }
func (p *Problem) top(t float64) float64    { return evalOrZero(p.Top, t) }
func (p *Problem) left(t float64) float64   { return evalOrZero(p.Left, t) }

func (p *Problem) source(x, y float64) float64 {
	if p.Source == nil {
		return 0
	}
	return p.Source(x, y)
}

func evalOrZero(f BoundaryFunc, t float64) float64 {
	if f == nil {
		return 0
	}
	return f(t)
}
