package transmit_test

import (
	"fmt"

	"github.com/openenvelope/thstrat/stratum"
	"github.com/openenvelope/thstrat/transmit"
)

// ExampleEvaluate reduces a wall with a three-branch parallel core — two of
// the branches being nested series runs — to its U-value.
func ExampleEvaluate() {
	strat := stratum.Stratigraphy{
		"1": stratum.Conductive("plaster", 1, 0.1, 3),
		"2": stratum.Resistive("air gap", 0.2, 1),
		"3": stratum.Conductive("brick", 1, 0.3, 1),
		"4": stratum.Resistive("air gap", 0.4, 1),
		"5": stratum.Conductive("concrete", 3, 0.5, 1),
		"6": stratum.Conductive("brick", 1.5, 0.6, 1),
		"7": stratum.Resistive("air gap", 0.7, 1).WithThickness(1.5),
		"8": stratum.Conductive("plaster", 1, 0.8, 3),
	}

	res, err := transmit.Evaluate("1,(2,3,4)//5//(6,7),8", strat, 3, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("R_tot = %.3f\nU     = %.5f\n", res.TotalResistance, res.Transmittance)
	// Output:
	// R_tot = 15.341
	// U     = 0.06519
}
