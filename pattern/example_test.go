package pattern_test

import (
	"fmt"

	"github.com/katalvlaran/harmonic/pattern"
)

// ExampleAnalyzer_Analyze classifies the reference transition list.
func ExampleAnalyzer_Analyze() {
	res, err := pattern.NewAnalyzer().Analyze("0 → 1 | 3 → 8 | 6 → 1")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Summary())
	// Output:
	// transitions=3 windows=1 singular=1 complete_det=0/1 vortex=true
}
