package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-siglab/dsp/core"
	"github.com/cwbudde/algo-siglab/dsp/signal"
)

func ExampleGenerator_Sine() {
	g := signal.NewGenerator([]core.ProcessorOption{core.WithSampleRate(4)})

	tone, err := g.Sine(1, 1, 0, 4)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%.0f %.0f %.0f %.0f\n", tone[0], tone[1], tone[2], tone[3])
	// Output:
	// 0 1 0 -1
}

func ExampleDecimate() {
	x := make([]float64, 10)
	for i := range x {
		x[i] = float64(i)
	}

	out, step := signal.Decimate(x, 4)
	fmt.Println(out, step)
	// Output:
	// [0 3 6 9] 3
}
