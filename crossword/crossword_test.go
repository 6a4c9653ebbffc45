package crossword_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/aikit/crossword"
)

// TestNewCrossword_Errors verifies structural validation.
func TestNewCrossword_Errors(t *testing.T) {
	words := []string{"cat"}
	if _, err := crossword.NewCrossword(nil, words); !errors.Is(err, crossword.ErrBadStructure) {
		t.Errorf("no rows: want ErrBadStructure, got %v", err)
	}
	if _, err := crossword.NewCrossword([]string{"__", "___"}, words); !errors.Is(err, crossword.ErrBadStructure) {
		t.Errorf("ragged rows: want ErrBadStructure, got %v", err)
	}
	if _, err := crossword.NewCrossword([]string{"#_", "_#"}, words); !errors.Is(err, crossword.ErrBadStructure) {
		t.Errorf("no runs: want ErrBadStructure, got %v", err)
	}
	if _, err := crossword.NewCrossword([]string{"___"}, nil); !errors.Is(err, crossword.ErrEmptyLexicon) {
		t.Errorf("no words: want ErrEmptyLexicon, got %v", err)
	}
	if _, err := crossword.NewCrossword([]string{"___"}, []string{"", "  "}); !errors.Is(err, crossword.ErrEmptyLexicon) {
		t.Errorf("blank words: want ErrEmptyLexicon, got %v", err)
	}
}

// TestVariableDiscovery checks runs, ordering, and overlap symmetry on the
// H-shaped fixture structure.
func TestVariableDiscovery(t *testing.T) {
	cw, err := crossword.LoadCrossword("testdata/structure0.txt", "testdata/words0.txt")
	if err != nil {
		t.Fatal(err)
	}

	want := []crossword.Variable{
		{Row: 0, Col: 1, Dir: crossword.Across, Length: 3},
		{Row: 0, Col: 2, Dir: crossword.Down, Length: 3},
		{Row: 2, Col: 1, Dir: crossword.Across, Length: 3},
	}
	if !reflect.DeepEqual(cw.Variables, want) {
		t.Fatalf("Variables = %v; want %v", cw.Variables, want)
	}

	top, mid, bottom := want[0], want[1], want[2]
	if idx, ok := cw.Overlap(top, mid); !ok || idx != [2]int{1, 0} {
		t.Errorf("Overlap(top, mid) = %v,%v; want [1 0],true", idx, ok)
	}
	if idx, ok := cw.Overlap(mid, bottom); !ok || idx != [2]int{2, 1} {
		t.Errorf("Overlap(mid, bottom) = %v,%v; want [2 1],true", idx, ok)
	}
	if _, ok := cw.Overlap(top, bottom); ok {
		t.Error("top and bottom rows must not overlap")
	}
	if ns := cw.Neighbors(mid); !reflect.DeepEqual(ns, []crossword.Variable{top, bottom}) {
		t.Errorf("Neighbors(mid) = %v; want [top bottom]", ns)
	}
}

// TestSolve_Fixture solves the H-shaped puzzle; the lexicon admits exactly
// one assignment (CAT / ATE / PEN).
func TestSolve_Fixture(t *testing.T) {
	cw, err := crossword.LoadCrossword("testdata/structure0.txt", "testdata/words0.txt")
	if err != nil {
		t.Fatal(err)
	}

	a, err := crossword.NewGenerator(cw).Solve()
	if err != nil {
		t.Fatal(err)
	}

	want := crossword.Assignment{
		{Row: 0, Col: 1, Dir: crossword.Across, Length: 3}: "CAT",
		{Row: 0, Col: 2, Dir: crossword.Down, Length: 3}:   "ATE",
		{Row: 2, Col: 1, Dir: crossword.Across, Length: 3}: "PEN",
	}
	if !reflect.DeepEqual(a, want) {
		t.Fatalf("Solve = %v; want %v", a, want)
	}

	wantGrid := "█CAT█\n██T██\n█PEN█"
	if got := cw.Render(a); got != wantGrid {
		t.Errorf("Render:\n%s\nwant:\n%s", got, wantGrid)
	}
}

// TestSolve_CrossingPair solves a single crossing in memory.
func TestSolve_CrossingPair(t *testing.T) {
	cw, err := crossword.NewCrossword(
		[]string{
			"____",
			"#_##",
			"#_##",
			"#_##",
		},
		[]string{"nail", "acid", "tree", "blob"},
	)
	if err != nil {
		t.Fatal(err)
	}

	a, err := crossword.NewGenerator(cw).Solve()
	if err != nil {
		t.Fatal(err)
	}
	across := crossword.Variable{Row: 0, Col: 0, Dir: crossword.Across, Length: 4}
	down := crossword.Variable{Row: 0, Col: 1, Dir: crossword.Down, Length: 4}
	if a[across] != "NAIL" || a[down] != "ACID" {
		t.Errorf("Solve = %v; want NAIL across, ACID down", a)
	}
}

// TestSolve_DistinctWords enforces the all-different constraint on two
// disconnected equal-length slots.
func TestSolve_DistinctWords(t *testing.T) {
	lines := []string{
		"___",
		"###",
		"___",
	}

	// One word, two slots: impossible.
	cw, err := crossword.NewCrossword(lines, []string{"cat"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err = crossword.NewGenerator(cw).Solve(); !errors.Is(err, crossword.ErrNoSolution) {
		t.Errorf("single word: want ErrNoSolution, got %v", err)
	}

	// Two words: both slots fill with distinct words.
	cw, err = crossword.NewCrossword(lines, []string{"cat", "dog"})
	if err != nil {
		t.Fatal(err)
	}
	a, err := crossword.NewGenerator(cw).Solve()
	if err != nil {
		t.Fatal(err)
	}
	first := a[crossword.Variable{Row: 0, Col: 0, Dir: crossword.Across, Length: 3}]
	second := a[crossword.Variable{Row: 2, Col: 0, Dir: crossword.Across, Length: 3}]
	if first == second {
		t.Errorf("duplicate word %q placed twice", first)
	}
}

// TestSolve_NoSolution exhausts a puzzle whose crossing letters never match.
func TestSolve_NoSolution(t *testing.T) {
	cw, err := crossword.NewCrossword(
		[]string{
			"__",
			"_#",
		},
		[]string{"ab", "cd"},
	)
	if err != nil {
		t.Fatal(err)
	}
	// across (0,0) and down (0,0) share their first letter, but AB and CD
	// start differently and a word cannot be used twice.
	if _, err = crossword.NewGenerator(cw).Solve(); !errors.Is(err, crossword.ErrNoSolution) {
		t.Errorf("want ErrNoSolution, got %v", err)
	}
}

// TestSolve_OnAssign observes tentative placements.
func TestSolve_OnAssign(t *testing.T) {
	cw, err := crossword.LoadCrossword("testdata/structure0.txt", "testdata/words0.txt")
	if err != nil {
		t.Fatal(err)
	}
	var placements int
	if _, err = crossword.NewGenerator(cw).Solve(
		crossword.WithOnAssign(func(crossword.Variable, string) { placements++ }),
	); err != nil {
		t.Fatal(err)
	}
	if placements < len(cw.Variables) {
		t.Errorf("OnAssign fired %d times; want at least %d", placements, len(cw.Variables))
	}
}

// TestSolve_Cancellation halts backtracking promptly.
func TestSolve_Cancellation(t *testing.T) {
	cw, err := crossword.LoadCrossword("testdata/structure0.txt", "testdata/words0.txt")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err = crossword.NewGenerator(cw).Solve(crossword.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
