package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"path/filepath"
	"time"

	"numlab/pkg/config"
	"numlab/pkg/fourier"
	"numlab/pkg/interpolation"
	"numlab/pkg/poisson"
	"numlab/pkg/visualization"
)

func main() {
	// Parse command line arguments
	configPath := flag.String("config", "config.yaml", "Path to YAML configuration file")
	outputDir := flag.String("output", "", "Output directory (overrides config)")
	demo := flag.String("demo", "all", "Demo to run: fourier, poisson or all")
	writeConfig := flag.Bool("write-config", false, "Write the default configuration to the config path and exit")
	flag.Parse()

	if *writeConfig {
		if err := config.CreateDefaultConfigFile(*configPath); err != nil {
			log.Fatalf("Failed to write default config: %v", err)
		}
		fmt.Printf("Default configuration written to: %s\n", *configPath)
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}

	fmt.Println("================================")
	fmt.Println("NUMERICAL METHODS LAB: DFT/FFT AND FINITE-DIFFERENCE POISSON SOLVER")
	fmt.Println("================================")

	switch *demo {
	case "fourier":
		runFourierDemos(cfg)
	case "poisson":
		runPoissonDemos(cfg)
	case "all":
		runFourierDemos(cfg)
		runPoissonDemos(cfg)
	default:
		flag.Usage()
		log.Fatalf("Unknown demo %q", *demo)
	}
}

// runFourierDemos walks through the transform demos: the DFT-vs-FFT timing
// sweep, frequency extraction and FFT-based integer multiplication.
func runFourierDemos(cfg *config.Config) {
	fmt.Println("\n--- DFT vs. FFT timing ---")
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	fmt.Printf("%8s %14s %14s\n", "N", "DFT", "FFT")
	for exp := 0; exp <= cfg.Fourier.TimingMaxExponent; exp++ {
		n := 1 << exp
		x := make([]complex128, n)
		for i := range x {
			x[i] = complex(rng.Float64(), 0)
		}

		start := time.Now()
		fourier.DFT(x)
		dftTime := time.Since(start)

		start = time.Now()
		if _, err := fourier.FFT(x); err != nil {
			log.Fatalf("FFT failed: %v", err)
		}
		fftTime := time.Since(start)

		fmt.Printf("%8d %14s %14s\n", n, dftTime, fftTime)
	}

	fmt.Println("\n--- Frequency extraction ---")
	n := 1 << cfg.Fourier.SampleExponent
	spacing := cfg.Fourier.SampleSpacing
	signal := make([]float64, n)
	for i := range signal {
		x := float64(i) * spacing
		for _, f := range cfg.Fourier.SignalFrequencies {
			signal[i] += math.Sin(2 * math.Pi * f * x)
		}
		signal[i] += rng.NormFloat64() * 0.5 // measurement noise
	}
	freqs, mags, err := fourier.Spectrum(signal, spacing)
	if err != nil {
		log.Fatalf("Spectrum extraction failed: %v", err)
	}
	fmt.Printf("Mixed frequencies: %v Hz, %d samples at spacing %g s\n",
		cfg.Fourier.SignalFrequencies, n, spacing)
	for _, f := range cfg.Fourier.SignalFrequencies {
		bin := nearestBin(freqs, f)
		fmt.Printf("  spectrum near %6.1f Hz: magnitude %.3f\n", f, mags[bin])
	}

	fmt.Println("\n--- Integer multiplication via FFT ---")
	a := []int64{4, 3, 2, 1} // 1234, least significant digit first
	b := []int64{8, 7, 6, 5} // 5678
	product, err := fourier.MulDigits(a, b)
	if err != nil {
		log.Fatalf("FFT multiplication failed: %v", err)
	}
	fmt.Printf("1234 * 5678 = %d (rounding error %d)\n", product, 1234*5678-product)

	fmt.Println("\n--- Trigonometric interpolation ---")
	nodes := interpolation.EquispacedNodes(4)
	values := []complex128{2, 0, 2, 0}
	trig, err := interpolation.Fit(nodes, values)
	if err != nil {
		log.Fatalf("Interpolation failed: %v", err)
	}
	fmt.Printf("Data [2,0,2,0] on nodes 2*pi*k/4 has coefficients %v\n", trig.Coefficients())
	for k, x := range nodes {
		fmt.Printf("  T(x_%d) = %6.3f (data %v)\n", k, real(trig.Evaluate(x)), values[k])
	}
}

// runPoissonDemos solves the course's example boundary-value problem,
// renders the solution and runs the refinement study.
func runPoissonDemos(cfg *config.Config) {
	fmt.Println("\n--- Poisson boundary-value problem ---")
	p := poisson.NewProblem(cfg.Poisson.GridSize, cfg.Poisson.DomainLength)
	p.Source = func(x, y float64) float64 { return 0.1 }
	p.Bottom = func(x float64) float64 { return -math.Sin(2 * math.Pi * x) }
	p.Right = func(y float64) float64 { return 2 * math.Sin(math.Pi*y) }

	start := time.Now()
	sol, err := p.Solve()
	if err != nil {
		log.Fatalf("Poisson solve failed: %v", err)
	}
	fmt.Printf("Solved %d unknowns in %s\n", p.Grid.Unknowns(), time.Since(start))

	if cfg.Output.SaveHeatmap {
		path := filepath.Join(cfg.Output.Dir, "poisson_solution.png")
		if err := visualization.SaveHeatmap(p.EmbedSolution(sol), path); err != nil {
			log.Fatalf("Failed to save heatmap: %v", err)
		}
		fmt.Printf("Solution heatmap saved to: %s\n", path)
	}

	fmt.Println("\n--- Convergence study ---")
	build := func(n int) *poisson.Problem {
		q := poisson.NewProblem(n, 1)
		sin2pi := func(x float64) float64 { return math.Sin(2 * math.Pi * x) }
		q.Bottom = sin2pi
		q.Top = sin2pi
		return q
	}
	exact := func(x, y float64) float64 {
		twoPi := 2 * math.Pi
		return (math.Cosh(twoPi*y) + (1-math.Cosh(twoPi))/math.Sinh(twoPi)*math.Sinh(twoPi*y)) * math.Sin(twoPi*x)
	}

	results, err := poisson.ConvergenceStudy(cfg.Poisson.ConvergenceSizes, build, exact)
	if err != nil {
		log.Fatalf("Convergence study failed: %v", err)
	}
	fmt.Printf("%8s %12s %14s\n", "N", "h", "max error")
	for _, r := range results {
		fmt.Printf("%8d %12.6f %14.6e\n", r.N, r.H, r.MaxError)
	}
	fmt.Printf("Empirical convergence order: %.2f (second-order scheme)\n",
		poisson.EstimateOrder(results))
}

// nearestBin returns the index of the frequency bin closest to f.
func nearestBin(freqs []float64, f float64) int {
	best := 0
	for k := range freqs {
		if math.Abs(freqs[k]-f) < math.Abs(freqs[best]-f) {
			best = k
		}
	}
	return best
}
