// SPDX-License-Identifier: MIT
package apsp_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/longpath/apsp"
	"github.com/katalvlaran/longpath/matrix"
)

func ExampleFloydWarshall_Solve() {
	g := matrix.MustFromRows([][]int64{
		{0, -1, 2},
		{3, 0, -2},
		{4, 4, 0},
	})

	r, err := apsp.FloydWarshall{}.Solve(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(r.DistMatrix())
	p, _ := r.Path(0, 2)
	fmt.Println("0→2:", p)
	// Output:
	// [0, -1, -3]
	// [2, 0, -2]
	// [4, 3, 0]
	// 0→2: [0 1 2]
}

func ExampleSingleSource() {
	g := matrix.MustFromRows([][]int64{
		{0, 10, 2, 4, 6},
		{2, 0, 4, 8, 1},
		{3, 7, 0, 1, 9},
		{7, 3, 6, 0, 4},
		{6, 3, 7, 1, 0},
	})

	dist, prev, _ := apsp.SingleSource(g, 0)
	fmt.Println(dist)
	fmt.Println(prev)
	// Output:
	// [0 6 2 3 6]
	// [-1 3 0 2 0]
}

func ExampleByName() {
	g := matrix.MustFromRows([][]int64{
		{0, 1, 1},
		{-2, 0, 1},
		{1, 1, 0},
	})

	for _, name := range apsp.Names() {
		o, _ := apsp.ByName(name)
		_, err := o.Solve(g)
		fmt.Println(name, errors.Is(err, apsp.ErrNegativeCycle))
	}
	// Output:
	// floyd-warshall true
	// spfa true
	// johnson true
}
