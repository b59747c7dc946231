package tree_test

import (
	"fmt"
	"strconv"

	"github.com/malvaren/gentree/tree"
)

// ExampleParse reads the parentheses grammar and writes it back.
func ExampleParse() {
	n, err := tree.Parse("mul(div(2,x),y)")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n.Size())
	fmt.Println(n)
	// Output:
	// 5
	// mul(div(2,x),y)
}

// ExampleParseFunc converts labels while parsing.
func ExampleParseFunc() {
	n, err := tree.ParseFunc("1(2,3)", strconv.Atoi)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sum := 0
	for v := range n.BreadthFirst() {
		sum += v.Value()
	}
	fmt.Println(sum)
	// Output:
	// 6
}

// ExampleBreadthFirst prints a level-order traversal.
func ExampleBreadthFirst() {
	root := tree.New("a").Attach(
		tree.New("b").AttachValues("d", "e"),
		tree.New("c"),
	)
	for n := range root.BreadthFirst() {
		fmt.Print(n.Value(), " ")
	}
	fmt.Println()
	// Output:
	// a b c d e
}
