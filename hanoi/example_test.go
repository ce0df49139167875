package hanoi_test

import (
	"fmt"

	"github.com/AdithyaSean/game-project/hanoi"
)

// ExampleSolveRecursive prints the minimal three-disk solution.
func ExampleSolveRecursive() {
	res, err := hanoi.SolveRecursive(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, m := range res.Moves {
		fmt.Println(m)
	}
	// Output:
	// A->C
	// A->B
	// C->B
	// A->C
	// B->A
	// B->C
	// A->C
}
