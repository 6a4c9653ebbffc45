package heredity_test

import (
	"fmt"

	"github.com/katalvlaran/aikit/heredity"
)

// ExampleInfer shows that a person without parents or observations simply
// carries the model's gene prior.
func ExampleInfer() {
	family := heredity.Family{
		"Solo": {Name: "Solo"},
	}

	post, err := heredity.Infer(family)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d := post["Solo"]
	for c := 0; c <= heredity.MaxCopies; c++ {
		fmt.Printf("%d copies: %.2f\n", c, d.Gene[c])
	}
	// Output:
	// 0 copies: 0.96
	// 1 copies: 0.03
	// 2 copies: 0.01
}
