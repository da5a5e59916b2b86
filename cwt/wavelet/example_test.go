package wavelet_test

import (
	"fmt"
	"log"

	"github.com/cwbudde/algo-cwt/cwt/wavelet"
)

func ExampleNew() {
	w, err := wavelet.New(wavelet.Morlet, 100)
	if err != nil {
		log.Fatal(err)
	}
	w.SetDefaultWindowSize()
	fmt.Printf("window: %d samples\n", w.WindowSize.Get())
	fmt.Printf("scale %.2f maps to %.2f Hz\n", 0.1, w.ScaleToFrequency(0.1))
	// Output:
	// window: 9 samples
	// scale 0.10 maps to 8.11 Hz
}
