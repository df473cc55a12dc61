package resample_test

import (
	"fmt"

	"github.com/cwbudde/algo-siglab/dsp/resample"
)

func ExampleResample() {
	in := []float64{0, 1, 0, -1, 0, 1, 0, -1}

	out, times, err := resample.Resample(in, 8, 4)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("in=%d out=%d dt=%.2f\n", len(in), len(out), times[1]-times[0])
	// Output:
	// in=8 out=4 dt=0.25
}

func ExampleTargetLength() {
	fmt.Println(resample.TargetLength(44100, 44100, 48000))
	// Output:
	// 48000
}
