package pricer_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fourprice/charfn"
	"github.com/katalvlaran/fourprice/grid"
	"github.com/katalvlaran/fourprice/payoff"
	"github.com/katalvlaran/fourprice/pricer"
	"gonum.org/v1/gonum/integrate"
)

// //////////////////////////////////////////////////////////////////////////////
// ExamplePrice
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Price a one-year European call under the Black-Scholes-Merton model via
//	the FFT pipeline.
//	  spot = 1.00, strike = 1.10
//	  rate = 5%, dividend = 2%, volatility = 40%
//
// Setup:
//   - grid.Build(6, 2048)    (log-price range [-6, 6], 2048 points)
//   - payoff.Vanilla(Call, 1.1, 0.75) (damping α = 0.75)
//
// Use case:
//
//	One transform prices the whole spot curve; here we read a single point.
//
// Complexity: O(n log n) time, O(n) memory
func ExamplePrice() {
	g, err := grid.Build(6, 2048)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	model, err := charfn.NewBSM(0.05, 0.02, 0.4, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	tr, err := payoff.NewTransform(g, payoff.Vanilla(payoff.Call, 1.1, 0.75), 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	phi := charfn.Sample(model, g.Xi, 0.75)
	price, err := pricer.Price(g, phi, tr, math.Exp(-0.05), 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("call=%.4f\n", price)
	// Output:
	// call=0.1297
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDensity
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Recover the risk-neutral log-return density of the same Black-Scholes
//	model and confirm it integrates to one over the grid.
//
// Use case:
//
//	Eyeballing tail mass and skew before trusting a damped transform price.
func ExampleDensity() {
	g, err := grid.Build(6, 2048)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	model, err := charfn.NewBSM(0.05, 0.02, 0.4, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	phi := charfn.Sample(model, g.Xi, 0)
	density, err := pricer.Density(g, phi)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("mass=%.3f\n", integrate.Trapezoidal(g.X, density))
	// Output:
	// mass=1.000
}
