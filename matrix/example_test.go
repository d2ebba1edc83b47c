// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/longpath/matrix"
)

// ExampleFromRows builds a 3-node complete graph and reads one edge back.
func ExampleFromRows() {
	g, err := matrix.FromRows([][]int64{
		{0, 2, 9},
		{1, 0, -3},
		{4, 4, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	w, _ := g.At(1, 2)
	fmt.Println("order:", g.Order())
	fmt.Println("1→2:", w)
	fmt.Print(g)

	// Output:
	// order: 3
	// 1→2: -3
	// [0, 2, 9]
	// [1, 0, -3]
	// [4, 4, 0]
}
