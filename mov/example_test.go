package mov_test

import (
	"fmt"

	"github.com/malvaren/gentree/mov"
)

// ExamplePoint2_Dominance shows the three outcomes of the Pareto order.
func ExamplePoint2_Dominance() {
	a := mov.NewPoint2(3, 4)
	b := mov.NewPoint2(2, 4)
	c := mov.NewPoint2(4, 3)

	fmt.Println(a.Dominance(b)) // a no worse everywhere, better on x
	fmt.Println(a.Dominance(c)) // mutual domination: incomparable
	fmt.Println(a.Dominance(a)) // equal
	// Output:
	// 1
	// 0
	// 0
}

// ExampleDominance runs the generalized algorithm over 3-axis values.
func ExampleDominance() {
	u := mov.Floats{1, 2, 4}
	v := mov.Floats{1, 2, 3}

	d, err := mov.Dominance(u, v)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(d)
	// Output:
	// 1
}
