// Crossword generation — backtracking search over pruned domains.
//
// Description:
//
//	Each variable's domain starts as the whole lexicon. Node consistency
//	removes words of the wrong length; AC-3 removes words with no
//	compatible partner in a crossing variable's domain; backtracking
//	assigns the rest, guided by MRV (fewest remaining values, ties by
//	degree then position) and LCV (least constraining value, ties
//	lexicographic).
//
// Algorithm Outline (AC-3):
//  1. Seed the queue with every crossing arc (x, y).
//  2. Pop an arc, revise x's domain against y; if anything was removed,
//     re-enqueue (z, x) for every other neighbor z of x.
//  3. An emptied domain proves unsolvability.
//
// Complexity: AC-3 is O(e·d³) for e arcs and domain size d; backtracking
// is exponential in the worst case but heavily pruned in practice.
package crossword

import "sort"

// Generator solves one Crossword. A Generator is single-use: Solve
// consumes its domains.
type Generator struct {
	cw      *Crossword
	domains map[Variable]map[string]bool
	opts    Options
}

// NewGenerator prepares a solver whose domains hold the full lexicon for
// every variable.
func NewGenerator(cw *Crossword) *Generator {
	domains := make(map[Variable]map[string]bool, len(cw.Variables))
	for _, v := range cw.Variables {
		domain := make(map[string]bool, len(cw.Words))
		for _, w := range cw.Words {
			domain[w] = true
		}
		domains[v] = domain
	}

	return &Generator{cw: cw, domains: domains}
}

// Solve enforces node and arc consistency, then backtracks to a complete
// assignment, applying any number of functional Options.
// Returns ErrNoSolution when the puzzle cannot be filled,
// ErrOptionViolation for bad options, or the context error on
// cancellation.
func (g *Generator) Solve(opts ...Option) (Assignment, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	g.opts = o

	g.enforceNodeConsistency()
	if !g.ac3(nil) {
		return nil, ErrNoSolution
	}

	assignment := make(Assignment, len(g.cw.Variables))
	ok, err := g.backtrack(assignment)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoSolution
	}

	return assignment, nil
}

// enforceNodeConsistency removes words whose length differs from each
// variable's slot length.
func (g *Generator) enforceNodeConsistency() {
	for v, domain := range g.domains {
		for w := range domain {
			if len(w) != v.Length {
				delete(domain, w)
			}
		}
	}
}

// arc is a directed pair of crossing variables.
type arc struct{ x, y Variable }

// ac3 enforces arc consistency starting from the given arcs (nil = all
// crossing arcs). Reports false when some domain empties.
func (g *Generator) ac3(seed []arc) bool {
	queue := seed
	if queue == nil {
		for pair := range g.cw.overlaps {
			queue = append(queue, arc{x: pair[0], y: pair[1]})
		}
	}

	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		if !g.revise(a.x, a.y) {
			continue
		}
		if len(g.domains[a.x]) == 0 {
			return false
		}
		for _, z := range g.cw.Neighbors(a.x) {
			if z != a.y {
				queue = append(queue, arc{x: z, y: a.x})
			}
		}
	}

	return true
}

// revise makes x arc-consistent with y: drops words of x with no
// compatible partner in y's domain. Reports whether anything was dropped.
func (g *Generator) revise(x, y Variable) bool {
	overlap, ok := g.cw.Overlap(x, y)
	if !ok {
		return false
	}

	revised := false
	for xw := range g.domains[x] {
		supported := false
		for yw := range g.domains[y] {
			if xw[overlap[0]] == yw[overlap[1]] {
				supported = true
				break
			}
		}
		if !supported {
			delete(g.domains[x], xw)
			revised = true
		}
	}

	return revised
}

// complete reports whether every variable has a word.
func (g *Generator) complete(a Assignment) bool {
	return len(a) == len(g.cw.Variables)
}

// consistent reports whether placing word in v clashes with a: duplicate
// words or letter conflicts with assigned neighbors.
func (g *Generator) consistent(a Assignment, v Variable, word string) bool {
	for _, placed := range a {
		if placed == word {
			return false
		}
	}
	for _, nbr := range g.cw.Neighbors(v) {
		placed, ok := a[nbr]
		if !ok {
			continue
		}
		overlap, _ := g.cw.Overlap(v, nbr)
		if word[overlap[0]] != placed[overlap[1]] {
			return false
		}
	}

	return true
}

// selectUnassigned picks the next variable: fewest remaining values, ties
// broken by highest degree, then by grid position.
func (g *Generator) selectUnassigned(a Assignment) Variable {
	var best Variable
	found := false
	for _, v := range g.cw.Variables {
		if _, assigned := a[v]; assigned {
			continue
		}
		if !found {
			best, found = v, true
			continue
		}
		dv, db := len(g.domains[v]), len(g.domains[best])
		switch {
		case dv < db:
			best = v
		case dv == db && len(g.cw.Neighbors(v)) > len(g.cw.Neighbors(best)):
			best = v
		}
	}

	return best
}

// orderDomainValues sorts v's domain by how many neighbor options each
// word eliminates (fewest first), ties lexicographic.
func (g *Generator) orderDomainValues(v Variable, a Assignment) []string {
	type scored struct {
		word       string
		eliminated int
	}
	words := make([]scored, 0, len(g.domains[v]))
	for w := range g.domains[v] {
		words = append(words, scored{word: w})
	}

	for i := range words {
		for _, nbr := range g.cw.Neighbors(v) {
			if _, assigned := a[nbr]; assigned {
				continue
			}
			overlap, _ := g.cw.Overlap(v, nbr)
			for nw := range g.domains[nbr] {
				if words[i].word[overlap[0]] != nw[overlap[1]] {
					words[i].eliminated++
				}
			}
		}
	}

	sort.Slice(words, func(i, j int) bool {
		if words[i].eliminated != words[j].eliminated {
			return words[i].eliminated < words[j].eliminated
		}

		return words[i].word < words[j].word
	})

	out := make([]string, len(words))
	for i, s := range words {
		out[i] = s.word
	}

	return out
}

// backtrack extends a toward a complete assignment; the bool result
// distinguishes "no solution below this node" from hard errors.
func (g *Generator) backtrack(a Assignment) (bool, error) {
	// cancellation check (once per node)
	select {
	case <-g.opts.Ctx.Done():
		return false, g.opts.Ctx.Err()
	default:
	}

	if g.complete(a) {
		return true, nil
	}

	v := g.selectUnassigned(a)
	for _, word := range g.orderDomainValues(v, a) {
		if !g.consistent(a, v, word) {
			continue
		}
		a[v] = word
		g.opts.OnAssign(v, word)
		ok, err := g.backtrack(a)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		delete(a, v)
	}

	return false, nil
}
