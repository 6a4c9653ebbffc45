package crossword_test

import (
	"fmt"

	"github.com/katalvlaran/aikit/crossword"
)

// ExampleGenerator_Solve fills a small H-shaped grid from a five-word
// lexicon and renders the unique solution.
func ExampleGenerator_Solve() {
	cw, err := crossword.NewCrossword(
		[]string{
			"#___#",
			"##_##",
			"#___#",
		},
		[]string{"cat", "ate", "pen", "sky", "dog"},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	a, err := crossword.NewGenerator(cw).Solve()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(cw.Render(a))
	// Output:
	// █CAT█
	// ██T██
	// █PEN█
}
