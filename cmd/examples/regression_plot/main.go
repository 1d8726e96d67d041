// Command regression_plot demonstrates the full pipeline: evaluate an
// R-style formula into a design matrix, fit ordinary least squares on it,
// and plot observed vs fitted values with gonum/plot.
package main

import (
	"fmt"
	"log"
	"math/rand"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/statforge/formula/dataset"
	"github.com/statforge/formula/formula"
	"github.com/statforge/formula/matrix"
)

// generateQuadratic builds n noisy samples of y = 3 + 2x - 0.5x².
func generateQuadratic(n int) (x, y []float64) {
	rng := rand.New(rand.NewSource(7))
	x = make([]float64, n)
	y = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i) / float64(n) * 8
		y[i] = 3 + 2*x[i] - 0.5*x[i]*x[i] + rng.NormFloat64()*0.8
	}
	return
}

// fitOLS solves the normal equations (XᵀX)β = Xᵀy for the coefficients.
func fitOLS(X *matrix.Dense, y []float64) ([]float64, error) {
	xt := X.Transpose()
	gram, err := matrix.Mul(xt, X)
	if err != nil {
		return nil, err
	}
	moment, err := xt.MulVec(y)
	if err != nil {
		return nil, err
	}
	return matrix.Solve(gram, moment)
}

func main() {
	const n = 120
	xs, ys := generateQuadratic(n)

	ds, err := dataset.New(n)
	if err != nil {
		log.Fatalf("dataset: %v", err)
	}
	if err = ds.AddNumeric("x", xs); err != nil {
		log.Fatalf("add x: %v", err)
	}
	if err = ds.AddNumeric("y", ys); err != nil {
		log.Fatalf("add y: %v", err)
	}

	// One formula replaces all the manual column wrangling.
	X, y, err := formula.Eval("y ~ 1 + x + I(x^2)", ds)
	if err != nil {
		log.Fatalf("eval: %v", err)
	}
	fmt.Printf("design matrix: %d samples x %d features\n", X.Rows(), X.Cols())

	beta, err := fitOLS(X, y)
	if err != nil {
		log.Fatalf("fit: %v", err)
	}
	fmt.Printf("coefficients: intercept=%.3f x=%.3f x^2=%.3f\n", beta[0], beta[1], beta[2])

	fitted, err := X.MulVec(beta)
	if err != nil {
		log.Fatalf("predict: %v", err)
	}

	// Observed scatter plus the fitted curve.
	observed := make(plotter.XYs, n)
	curve := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		observed[i].X, observed[i].Y = xs[i], ys[i]
		curve[i].X, curve[i].Y = xs[i], fitted[i]
	}

	p := plot.New()
	p.Title.Text = "y ~ 1 + x + I(x^2)"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	scatter, err := plotter.NewScatter(observed)
	if err != nil {
		log.Fatalf("scatter: %v", err)
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		log.Fatalf("line: %v", err)
	}
	p.Add(scatter, line)
	p.Legend.Add("observed", scatter)
	p.Legend.Add("fitted", line)

	if err = p.Save(6*vg.Inch, 4*vg.Inch, "regression_plot.png"); err != nil {
		log.Fatalf("save: %v", err)
	}
	fmt.Println("wrote regression_plot.png")
}
