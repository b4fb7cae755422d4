package ratio_test

import (
	"fmt"

	"github.com/katalvlaran/rechunk/ratio"
)

// ExampleNormalize fills a missing dimension with the default and reports it.
func ExampleNormalize() {
	dims := []string{"time", "lat", "lon"}
	norm, diags, err := ratio.Normalize(dims, ratio.AspectRatio{"lat": 2, "lon": 4}, ratio.Unchunked, false)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(norm["time"], norm["lat"], norm["lon"])
	fmt.Println(diags[0].Kind, diags[0].Dims)
	fmt.Println(ratio.Reduce(norm))
	// Output:
	// -1 2 4
	// defaulted [time]
	// map[lat:1 lon:2 time:-1]
}
