package catalog_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aikit/catalog"
)

// ExampleParse extracts project rows from a markdown index document.
func ExampleParse() {
	doc := `| Week | Topic  | Project | Description | Command             |
|-----:|--------|---------|-------------|---------------------|
|    0 | Search | Alpha   | First one   | go run ./cmd/x alpha |
|    1 | Logic  | Beta    | Second one  | go run ./cmd/x beta  |
`

	projects, err := catalog.Parse(strings.NewReader(doc))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range projects {
		fmt.Printf("week %d: %s (%s)\n", p.Week, p.Name, p.Dir())
	}
	// Output:
	// week 0: Alpha (alpha)
	// week 1: Beta (beta)
}
