package crossword

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// OpenCell is the structure-file marker for a fillable cell; any other
// character blocks the cell.
const OpenCell = '_'

// minRunLength is the shortest cell run that becomes a variable.
const minRunLength = 2

// Crossword couples a grid structure with a word lexicon and the derived
// constraint graph (variables, overlaps, neighbors). Construct one with
// NewCrossword or LoadCrossword; the zero value is not usable.
type Crossword struct {
	Height, Width int

	// Variables in deterministic order: row-major start cell, across
	// before down on equal cells.
	Variables []Variable

	// Words is the deduplicated, uppercased lexicon.
	Words []string

	open      [][]bool
	overlaps  map[[2]Variable][2]int
	neighbors map[Variable][]Variable
}

// NewCrossword builds a Crossword from structure lines ('_' = open cell)
// and a word list. Returns ErrBadStructure for empty, ragged, or
// variable-free grids and ErrEmptyLexicon when no words remain after
// normalization.
func NewCrossword(lines []string, words []string) (*Crossword, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadStructure)
	}
	width := len(lines[0])
	open := make([][]bool, len(lines))
	for r, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadStructure, r, len(line), width)
		}
		open[r] = make([]bool, width)
		for c := 0; c < width; c++ {
			open[r][c] = line[c] == OpenCell
		}
	}

	lexicon := normalizeWords(words)
	if len(lexicon) == 0 {
		return nil, ErrEmptyLexicon
	}

	cw := &Crossword{
		Height: len(lines),
		Width:  width,
		Words:  lexicon,
		open:   open,
	}
	cw.findVariables()
	if len(cw.Variables) == 0 {
		return nil, fmt.Errorf("%w: no runs of %d+ open cells", ErrBadStructure, minRunLength)
	}
	cw.findOverlaps()

	return cw, nil
}

// LoadCrossword reads the structure grid and the newline-separated word
// list from files. Blank word lines are skipped.
func LoadCrossword(structurePath, wordsPath string) (*Crossword, error) {
	lines, err := readLines(structurePath, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadStructure, err)
	}
	words, err := readLines(wordsPath, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyLexicon, err)
	}

	return NewCrossword(lines, words)
}

// readLines returns the file's lines; skipBlank drops empty ones.
func readLines(path string, skipBlank bool) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if skipBlank && strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines, scanner.Err()
}

// normalizeWords uppercases, trims, and deduplicates the lexicon.
func normalizeWords(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}

// findVariables collects maximal horizontal and vertical runs of open
// cells with length ≥ minRunLength.
func (cw *Crossword) findVariables() {
	// across runs
	for r := 0; r < cw.Height; r++ {
		for c := 0; c < cw.Width; {
			if !cw.open[r][c] {
				c++
				continue
			}
			start := c
			for c < cw.Width && cw.open[r][c] {
				c++
			}
			if n := c - start; n >= minRunLength {
				cw.Variables = append(cw.Variables, Variable{Row: r, Col: start, Dir: Across, Length: n})
			}
		}
	}
	// down runs
	for c := 0; c < cw.Width; c++ {
		for r := 0; r < cw.Height; {
			if !cw.open[r][c] {
				r++
				continue
			}
			start := r
			for r < cw.Height && cw.open[r][c] {
				r++
			}
			if n := r - start; n >= minRunLength {
				cw.Variables = append(cw.Variables, Variable{Row: start, Col: c, Dir: Down, Length: n})
			}
		}
	}

	sort.Slice(cw.Variables, func(i, j int) bool {
		a, b := cw.Variables[i], cw.Variables[j]
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		if a.Col != b.Col {
			return a.Col < b.Col
		}

		return a.Dir < b.Dir
	})
}

// findOverlaps precomputes, for every crossing pair, which letter indices
// must agree, and the resulting neighbor lists.
func (cw *Crossword) findOverlaps() {
	cw.overlaps = make(map[[2]Variable][2]int)
	cw.neighbors = make(map[Variable][]Variable)

	type cell struct{ r, c int }
	occupied := make(map[cell]map[Variable]int)
	for _, v := range cw.Variables {
		for k := 0; k < v.Length; k++ {
			r, c := v.Cell(k)
			if occupied[cell{r, c}] == nil {
				occupied[cell{r, c}] = make(map[Variable]int)
			}
			occupied[cell{r, c}][v] = k
		}
	}

	for _, vars := range occupied {
		for a, ka := range vars {
			for b, kb := range vars {
				if a == b {
					continue
				}
				cw.overlaps[[2]Variable{a, b}] = [2]int{ka, kb}
			}
		}
	}

	for pair := range cw.overlaps {
		cw.neighbors[pair[0]] = append(cw.neighbors[pair[0]], pair[1])
	}
	for v := range cw.neighbors {
		ns := cw.neighbors[v]
		sort.Slice(ns, func(i, j int) bool {
			a, b := ns[i], ns[j]
			if a.Row != b.Row {
				return a.Row < b.Row
			}
			if a.Col != b.Col {
				return a.Col < b.Col
			}

			return a.Dir < b.Dir
		})
	}
}

// Overlap returns the letter indices (ka, kb) where a and b cross, and
// whether they cross at all.
func (cw *Crossword) Overlap(a, b Variable) ([2]int, bool) {
	idx, ok := cw.overlaps[[2]Variable{a, b}]

	return idx, ok
}

// Neighbors returns the variables crossing v, in deterministic order.
// The slice is shared; callers must not mutate it.
func (cw *Crossword) Neighbors(v Variable) []Variable {
	return cw.neighbors[v]
}

// Assignment maps variables to the words placed in them.
type Assignment map[Variable]string

// Render draws the grid: letters in filled cells, spaces in open but
// unassigned cells, '█' in blocked cells.
func (cw *Crossword) Render(a Assignment) string {
	letters := make([][]byte, cw.Height)
	for r := range letters {
		letters[r] = make([]byte, cw.Width)
		for c := range letters[r] {
			letters[r][c] = ' '
		}
	}
	for v, word := range a {
		for k := 0; k < len(word) && k < v.Length; k++ {
			r, c := v.Cell(k)
			letters[r][c] = word[k]
		}
	}

	var sb strings.Builder
	for r := 0; r < cw.Height; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < cw.Width; c++ {
			if cw.open[r][c] {
				sb.WriteByte(letters[r][c])
			} else {
				sb.WriteRune('█')
			}
		}
	}

	return sb.String()
}
