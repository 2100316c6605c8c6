package poisson

import (
	"gonum.org/v1/gonum/mat"
)

// secondDifference returns the m-by-m tridiagonal second-difference
// operator with stencil [1,-2,1]. All its eigenvalues are negative.
func secondDifference(m int) *mat.Dense {
	d := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		d.Set(i, i, -2)
		if i > 0 {
			d.Set(i, i-1, 1)
		}
		if i < m-1 {
			d.Set(i, i+1, 1)
		}
	}
	return d
}

// identity returns the m-by-m identity matrix.
func identity(m int) *mat.Dense {
	id := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		id.Set(i, i, 1)
	}
	return id
}

// laplacian assembles the discrete Laplacian on the interior unknowns as
// the Kronecker sum dyy⊗Ix + Iy⊗dxx. Unknowns are ordered y-major: index
// j*(N-2)+i holds the node at x = (i+1)d, y = (j+1)d, so dyy acts across
// blocks and dxx within them. The result is symmetric negative-definite.
func (p *Problem) laplacian() *mat.Dense {
	m := p.Grid.Interior()
	dxx := secondDifference(m)
	dyy := secondDifference(m)

	var yPart, xPart mat.Dense
	yPart.Kronecker(dyy, identity(m))
	xPart.Kronecker(identity(m), dxx)

	var lap mat.Dense
	lap.Add(&yPart, &xPart)
	return &lap
}

// SystemMatrix returns the (N-2)^2-by-(N-2)^2 matrix of the linear system,
// the negated Kronecker-sum Laplacian. It is symmetric positive-definite,
// which the dense solve relies on.
func (p *Problem) SystemMatrix() *mat.SymDense {
	lap := p.laplacian()
	n, _ := lap.Dims()

	sys := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sys.SetSym(i, j, -lap.At(i, j))
		}
	}
	return sys
}

// RHS assembles the right-hand-side vector: the source term at every
// interior node plus boundary contributions added to the unknowns adjacent
// to each edge. Corner unknowns are adjacent to one horizontal and one
// vertical edge and receive exactly those two contributions.
func (p *Problem) RHS() *mat.VecDense {
	m := p.Grid.Interior()
	coords := p.Grid.InteriorCoords()

	b := make([]float64, m*m)
	for j := 0; j < m; j++ {
		for i := 0; i < m; i++ {
			b[j*m+i] = p.source(coords[i], coords[j])
		}
	}

	// Bottom (y = 0) borders the first block row, top (y = L) the last.
	for i := 0; i < m; i++ {
		b[i] += p.bottom(coords[i])
		b[(m-1)*m+i] += p.top(coords[i])
	}
	// Left (x = 0) borders the first entry of each block, right (x = L)
	// the last, hence the stride-m index sets.
	for j := 0; j < m; j++ {
		b[j*m] += p.left(coords[j])
		b[j*m+m-1] += p.right(coords[j])
	}

	return mat.NewVecDense(m*m, b)
}
