package degrees_test

import (
	"fmt"

	"github.com/katalvlaran/aikit/degrees"
)

// ExampleGraph_ShortestPath connects two actors through the fixture data
// set and prints each hop.
func ExampleGraph_ShortestPath() {
	g, err := degrees.Load("testdata/small")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, err := g.ShortestPath("1", "4")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(path), "degrees of separation.")
	for _, step := range path {
		movie, _ := g.Movie(step.MovieID)
		person, _ := g.Person(step.PersonID)
		fmt.Printf("%s via %s\n", person.Name, movie.Title)
	}
	// Output:
	// 3 degrees of separation.
	// Bob Stern via First Light
	// Carol Voss via Second Wind
	// Dave Moor via Third Act
}
