// PageRank — link-analysis ranking by random surfer and by iteration.
//
// Description:
//
//	Both rankers model a surfer who, from the current page, follows one of
//	its outgoing links with probability damping and otherwise jumps to a
//	uniformly random page. A page's rank is the long-run fraction of time
//	the surfer spends on it.
//
// Algorithm Outline (Sample):
//  1. Start on a uniformly random page.
//  2. Repeat n times: record the current page, then draw the next page
//     from Transition(current).
//  3. Ranks are visit counts divided by n. With k chains, k independent
//     walks run concurrently on derived seeds and their ranks average.
//
// Algorithm Outline (Iterate):
//  1. Initialize every rank to 1/N.
//  2. Sweep: rank'(p) = (1−d)/N + d·Σ_q rank(q)/outdegree(q), summed over
//     pages q linking to p; a page without outgoing links counts as
//     linking to every page (outdegree N).
//  3. Stop when no rank changed by more than tolerance.
//
// Complexity:
//
//	Sample  = O(n·deg) per chain.
//	Iterate = O(sweeps·N·deg); convergence is geometric in damping.
package pagerank

import (
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// Transition returns the surfer's next-page distribution from page:
// probability damping spread across the page's links plus (1−damping)/N
// everywhere; pages without outgoing links yield the uniform distribution.
// The returned map has one entry per corpus page and sums to 1.
func Transition(c *Corpus, page string, damping float64) (map[string]float64, error) {
	if c == nil {
		return nil, ErrCorpusNil
	}
	links, err := c.Links(page)
	if err != nil {
		return nil, err
	}

	n := float64(c.Len())
	dist := make(map[string]float64, c.Len())
	if len(links) == 0 {
		// dangling page: uniform jump
		for _, p := range c.pages {
			dist[p] = 1 / n
		}

		return dist, nil
	}

	base := (1 - damping) / n
	for _, p := range c.pages {
		dist[p] = base
	}
	share := damping / float64(len(links))
	for _, out := range links {
		dist[out] += share
	}

	return dist, nil
}

// Sample estimates PageRank values by running a random-surfer walk,
// applying any number of functional Options. The result maps every page
// to a value in [0,1]; values sum to 1.
func Sample(c *Corpus, opts ...Option) (map[string]float64, error) {
	o, err := buildOptions(c, opts)
	if err != nil {
		return nil, err
	}

	if o.Chains == 1 {
		return sampleChain(c, o, rngFromSeed(o.Seed))
	}

	// Run chains concurrently on derived seeds, then average.
	chains := make([]map[string]float64, o.Chains)
	eg, _ := errgroup.WithContext(o.Ctx)
	for i := 0; i < o.Chains; i++ {
		i := i
		eg.Go(func() error {
			rng := rngFromSeed(deriveSeed(o.Seed, uint64(i)))
			ranks, chainErr := sampleChain(c, o, rng)
			if chainErr != nil {
				return chainErr
			}
			chains[i] = ranks

			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	avg := make(map[string]float64, c.Len())
	for _, ranks := range chains {
		for page, r := range ranks {
			avg[page] += r / float64(o.Chains)
		}
	}

	return avg, nil
}

// sampleChain runs one n-step walk with its own RNG.
func sampleChain(c *Corpus, o Options, rng *rand.Rand) (map[string]float64, error) {
	counts := make(map[string]int, c.Len())
	page := c.pages[rng.Intn(len(c.pages))]

	for i := 0; i < o.Samples; i++ {
		// cancellation check (once per step)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		counts[page]++
		dist, err := Transition(c, page, o.Damping)
		if err != nil {
			return nil, err
		}
		page = draw(c.pages, dist, rng)
	}

	ranks := make(map[string]float64, c.Len())
	for _, p := range c.pages {
		ranks[p] = float64(counts[p]) / float64(o.Samples)
	}

	return ranks, nil
}

// draw picks a page from dist by inverse-CDF over the sorted page order.
func draw(pages []string, dist map[string]float64, rng *rand.Rand) string {
	r := rng.Float64()
	var cum float64
	for _, p := range pages {
		cum += dist[p]
		if r < cum {
			return p
		}
	}
	// floating-point slack: fall back to the last page
	return pages[len(pages)-1]
}

// Iterate computes PageRank values as the fixed point of the update rule,
// applying any number of functional Options. The result maps every page
// to a value in [0,1]; values sum to 1.
func Iterate(c *Corpus, opts ...Option) (map[string]float64, error) {
	o, err := buildOptions(c, opts)
	if err != nil {
		return nil, err
	}

	n := float64(c.Len())
	ranks := make(map[string]float64, c.Len())
	for _, p := range c.pages {
		ranks[p] = 1 / n
	}

	// incoming[p] lists pages that explicitly link to p; dangling pages
	// are handled as a bulk contribution each sweep.
	incoming := make(map[string][]string, c.Len())
	var dangling []string
	for _, q := range c.pages {
		outs := c.links[q]
		if len(outs) == 0 {
			dangling = append(dangling, q)
			continue
		}
		for _, p := range outs {
			incoming[p] = append(incoming[p], q)
		}
	}

	base := (1 - o.Damping) / n
	for {
		// cancellation check (once per sweep)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		// dangling mass is spread evenly over all pages
		var danglingMass float64
		for _, q := range dangling {
			danglingMass += ranks[q] / n
		}

		next := make(map[string]float64, c.Len())
		var maxDelta float64
		for _, p := range c.pages {
			sum := danglingMass
			for _, q := range incoming[p] {
				sum += ranks[q] / float64(len(c.links[q]))
			}
			next[p] = base + o.Damping*sum
			if delta := abs(next[p] - ranks[p]); delta > maxDelta {
				maxDelta = delta
			}
		}
		ranks = next
		if maxDelta <= o.Tolerance {
			break
		}
	}

	return ranks, nil
}

// buildOptions validates the corpus and folds opts over the defaults.
func buildOptions(c *Corpus, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if c == nil {
		return o, ErrCorpusNil
	}
	if c.Len() == 0 {
		return o, fmt.Errorf("%w: corpus not initialized", ErrEmptyCorpus)
	}

	return o, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
