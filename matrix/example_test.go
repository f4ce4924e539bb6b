package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/harmonic/matrix"
)

// ExampleVisualize prints the textual layout of a 2×2 matrix.
func ExampleVisualize() {
	m, err := matrix.New(2, 2, [][]float64{{1, 2}, {3, 4}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(matrix.Visualize(m))
	// Output:
	// Harmonic Matrix (2×2)
	// Determinant: -2/1 (-2)
	// Trace: 5/1 (5)
	// Harmonic: YES
	// 1/1 2/1
	// 3/1 4/1
}

// ExampleMul multiplies two matrices; the product's determinant is fresh.
func ExampleMul() {
	a := matrix.MustNew(2, 2, [][]float64{{1, 2}, {3, 4}})
	b := matrix.MustNew(2, 2, [][]float64{{5, 6}, {7, 8}})

	c, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	det, _ := c.Determinant()
	fmt.Println(c.Values(), det)
	// Output:
	// [[19 22] [43 50]] 4/1
}
