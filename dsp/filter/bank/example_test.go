package bank_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-siglab/dsp/filter/bank"
)

func ExampleLowpass() {
	const fs = 8000

	// DC passes a low-pass unchanged once the filter settles.
	signal := make([]float64, 400)
	for i := range signal {
		signal[i] = 1
	}

	out, err := bank.Lowpass(signal, fs, 500, bank.DefaultOrder)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("len=%d last=%.4f\n", len(out), out[len(out)-1])
	// Output:
	// len=400 last=1.0000
}

func ExampleWiener() {
	const fs = 1000

	signal := make([]float64, 2000)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * 50 * float64(i) / fs)
	}

	out, err := bank.Wiener(signal, fs, bank.WithNoiseDuration(0.5))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("gain=%.4f\n", out[5]/signal[5])
	// Output:
	// gain=0.9375
}
