package poisson

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ConvergenceResult records the error of one grid size in a refinement
// study.
type ConvergenceResult struct {
	// N is the grid size (nodes per dimension).
	N int

	// H is the mesh width L/(N-1).
	H float64

	// MaxError is the max-norm error against the reference solution over
	// the interior nodes.
	MaxError float64
}

// ConvergenceStudy solves the problem returned by build for each grid size
// and measures the max-norm interior error against the exact solution.
// With a second-order scheme the errors shrink like H^2 under refinement.
func ConvergenceStudy(sizes []int, build func(n int) *Problem, exact func(x, y float64) float64) ([]ConvergenceResult, error) {
	results := make([]ConvergenceResult, 0, len(sizes))
	for _, n := range sizes {
		p := build(n)
		sol, err := p.Solve()
		if err != nil {
			return nil, fmt.Errorf("poisson: convergence study failed at N=%d: %v", n, err)
		}

		coords := p.Grid.InteriorCoords()
		diffs := make([]float64, 0, p.Grid.Unknowns())
		for j, y := range coords {
			for i, x := range coords {
				diffs = append(diffs, math.Abs(sol.At(i, j)-exact(x, y)))
			}
		}

		results = append(results, ConvergenceResult{
			N:        n,
			H:        p.Grid.Spacing(),
			MaxError: floats.Max(diffs),
		})
	}
	return results, nil
}

// EstimateOrder fits log(error) against log(h) over the study results and
// returns the slope, the empirical convergence order.
func EstimateOrder(results []ConvergenceResult) float64 {
	logH := make([]float64, len(results))
	logE := make([]float64, len(results))
	for i, r := range results {
		logH[i] = math.Log(r.H)
		logE[i] = math.Log(r.MaxError)
	}
	_, slope := stat.LinearRegression(logH, logE, nil, false)
	return slope
}
