package pagerank

import (
	"fmt"
	"sort"

	"github.com/dominikbraun/graph"
)

// Corpus is a directed hyperlink graph over page names.
// Construct one with NewCorpus or Crawl; the zero value is not usable.
type Corpus struct {
	g graph.Graph[string, string]

	// derived, kept in sync with g at construction time
	pages []string            // sorted page names
	links map[string][]string // page → sorted outgoing links
}

// NewCorpus builds a corpus from a page → outgoing-links mapping.
// Links that point outside the corpus or back to their own page are
// dropped, matching the crawler's behavior. Returns ErrEmptyCorpus when
// pages is empty.
func NewCorpus(pages map[string][]string) (*Corpus, error) {
	if len(pages) == 0 {
		return nil, ErrEmptyCorpus
	}

	g := graph.New(graph.StringHash, graph.Directed())
	for page := range pages {
		if err := g.AddVertex(page); err != nil {
			return nil, fmt.Errorf("pagerank: add page %q: %w", page, err)
		}
	}
	for page, outs := range pages {
		seen := make(map[string]bool, len(outs))
		for _, out := range outs {
			// keep only intra-corpus, non-self, non-duplicate links
			if out == page || seen[out] {
				continue
			}
			if _, ok := pages[out]; !ok {
				continue
			}
			seen[out] = true
			if err := g.AddEdge(page, out); err != nil {
				return nil, fmt.Errorf("pagerank: add link %q→%q: %w", page, out, err)
			}
		}
	}

	c := &Corpus{g: g}
	if err := c.index(); err != nil {
		return nil, err
	}

	return c, nil
}

// index derives the sorted page list and link map from the graph.
func (c *Corpus) index() error {
	adj, err := c.g.AdjacencyMap()
	if err != nil {
		return fmt.Errorf("pagerank: adjacency map: %w", err)
	}
	c.pages = make([]string, 0, len(adj))
	c.links = make(map[string][]string, len(adj))
	for page, outs := range adj {
		c.pages = append(c.pages, page)
		targets := make([]string, 0, len(outs))
		for t := range outs {
			targets = append(targets, t)
		}
		sort.Strings(targets)
		c.links[page] = targets
	}
	sort.Strings(c.pages)

	return nil
}

// Len returns the number of pages in the corpus.
func (c *Corpus) Len() int { return len(c.pages) }

// Pages returns all page names in sorted order. The slice is a copy.
func (c *Corpus) Pages() []string {
	out := make([]string, len(c.pages))
	copy(out, c.pages)

	return out
}

// Links returns the sorted outgoing links of page. The slice is a copy.
// Returns ErrPageNotFound for unknown pages.
func (c *Corpus) Links(page string) ([]string, error) {
	targets, ok := c.links[page]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, page)
	}
	out := make([]string, len(targets))
	copy(out, targets)

	return out, nil
}

// Has reports whether page is part of the corpus.
func (c *Corpus) Has(page string) bool {
	_, ok := c.links[page]

	return ok
}
