package models

// Grid describes a uniform square mesh on [0,L]x[0,L] with N nodes per
// dimension, of which the (N-2)x(N-2) inner nodes are unknowns and the rim
// is fixed by boundary data.
type Grid struct {
	// N is the number of nodes per dimension, boundary included.
	N int

	// L is the side length of the square domain.
	L float64
}

// Spacing returns the mesh width d = L/(N-1).
func (g Grid) Spacing() float64 {
	return g.L / float64(g.N-1)
}

// Interior returns the number of interior nodes per dimension.
func (g Grid) Interior() int {
	return g.N - 2
}

// Unknowns returns the total number of interior unknowns, (N-2)^2.
func (g Grid) Unknowns() int {
	m := g.Interior()
	return m * m
}

// InteriorCoords returns the coordinates d, 2d, ..., (N-2)d of the interior
// nodes along one axis.
func (g Grid) InteriorCoords() []float64 {
	d := g.Spacing()
	coords := make([]float64, g.Interior())
	for i := range coords {
		coords[i] = float64(i+1) * d
	}
	return coords
}

// Field is a scalar field sampled on a full N-by-N grid in row-major order
// (y-major: Values[j*N+i] holds the value at x = i*d, y = j*d).
type Field struct {
	// Values holds the N*N samples.
	Values []float64

	// N is the number of nodes per dimension.
	N int
}

// At returns the field value at column i (x index) and row j (y index).
func (f Field) At(i, j int) float64 {
	return f.Values[j*f.N+i]
}
