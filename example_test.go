package uncert_test

import (
	"fmt"
	"log"

	"github.com/qetlabs/uncert"
)

// Example demonstrates recording measurements and propagating uncertainty
// through arithmetic.
func Example() {
	length, err := uncert.MeasureWithError(12, 1, uncert.WithName("length"), uncert.WithUnit("m"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(length)

	a, _ := uncert.MeasureWithError(10, 1)
	b, _ := uncert.MeasureWithError(5, 0.5)
	sum, err := uncert.Add(a, b)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(sum)

	// Output:
	// length = 12 +/- 1
	// 15 +/- 1
}

// ExampleMeasureSamples records repeated readings of one quantity; the value
// is the sample mean and the uncertainty the population standard deviation.
func ExampleMeasureSamples() {
	period, err := uncert.MeasureSamples([]float64{5.6, 4.8, 6.1, 4.9, 5.1}, uncert.WithName("period"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(period)

	// Output:
	// period = 5.3 +/- 0.5
}

// ExampleSettings_SetPrintStyle switches the display format process-wide.
func ExampleSettings_SetPrintStyle() {
	defer uncert.GlobalSettings().Reset()

	m, err := uncert.MeasureWithError(5.3, 0.5431)
	if err != nil {
		log.Fatal(err)
	}
	if err := uncert.GlobalSettings().SetPrintStyle(uncert.StyleLatex); err != nil {
		log.Fatal(err)
	}
	fmt.Println(m)

	// Output:
	// 5.3 \pm 0.5
}

// ExampleDerived_PinMethod fixes which propagation method one value presents,
// independent of the process-wide setting.
func ExampleDerived_PinMethod() {
	a, _ := uncert.MeasureWithError(10, 1)
	b, _ := uncert.MeasureWithError(5, 0.5)
	d, err := uncert.Add(a, b)
	if err != nil {
		log.Fatal(err)
	}

	if err := d.PinMethod(uncert.MinMax); err != nil {
		log.Fatal(err)
	}
	fmt.Println(d)

	// Output:
	// 15 +/- 2
}
