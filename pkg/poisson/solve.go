package poisson

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"numlab/internal/models"
)

// ErrSingularSystem is returned when the system matrix cannot be factorized.
// The Kronecker-sum construction makes the matrix positive-definite, so this
// indicates a broken problem setup rather than an expected failure mode.
var ErrSingularSystem = errors.New("poisson: system matrix is singular")

// Solution holds the computed interior values of one solve, ordered the
// same way as the unknowns (y-major, x inner).
type Solution struct {
	// Grid is the mesh the solution lives on.
	Grid models.Grid

	// Interior holds the (N-2)^2 interior values.
	Interior []float64
}

// At returns the interior solution value at interior column i (x index)
// and interior row j (y index), both in [0, N-2).
func (s *Solution) At(i, j int) float64 {
	return s.Interior[j*s.Grid.Interior()+i]
}

// Solve assembles the system and solves it with a dense Cholesky
// factorization. A factorization failure is reported as ErrSingularSystem.
func (p *Problem) Solve() (*Solution, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(p.SystemMatrix()); !ok {
		return nil, ErrSingularSystem
	}

	var u mat.VecDense
	if err := chol.SolveVecTo(&u, p.RHS()); err != nil {
		return nil, fmt.Errorf("poisson: solve failed: %w", ErrSingularSystem)
	}

	interior := make([]float64, u.Len())
	copy(interior, u.RawVector().Data)
	return &Solution{Grid: p.Grid, Interior: interior}, nil
}

// EmbedSolution re-embeds an interior solution into the full N-by-N grid,
// filling the rim from the boundary functions. The four true corners are
// undetermined by the problem and set to zero, as in the course plots.
func (p *Problem) EmbedSolution(s *Solution) models.Field {
	n := p.Grid.N
	coords := p.Grid.InteriorCoords()

	values := make([]float64, n*n)
	for j := 0; j < n-2; j++ {
		for i := 0; i < n-2; i++ {
			values[(j+1)*n+i+1] = s.At(i, j)
		}
	}
	for i := 0; i < n-2; i++ {
		values[i+1] = p.bottom(coords[i])
		values[(n-1)*n+i+1] = p.top(coords[i])
	}
	for j := 0; j < n-2; j++ {
		values[(j+1)*n] = p.left(coords[j])
		values[(j+1)*n+n-1] = p.right(coords[j])
	}

	return models.Field{Values: values, N: n}
}
