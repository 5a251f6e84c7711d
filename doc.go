// Package uncert represents measured physical quantities as value/uncertainty
// pairs and propagates uncertainty through arithmetic automatically.
//
// Quick Start:
//
//	length, _ := uncert.MeasureWithError(12.0, 0.5, uncert.WithName("length"), uncert.WithUnit("m"))
//	width, _ := uncert.MeasureWithError(8.0, 0.3, uncert.WithName("width"), uncert.WithUnit("m"))
//
//	area, err := uncert.Mul(length, width)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(area) // 96 +/- 5
//
// Every operation computes results under three propagation methods at once
// (derivative, min-max, Monte Carlo); which one a value prints with is chosen
// at display time from the settings store, unless pinned on the value itself.
//
// See example_test.go and README.md for detailed usage.
package uncert
