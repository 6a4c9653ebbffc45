package pagerank_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/aikit/pagerank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoCycle builds the smallest non-trivial corpus: a ↔ b.
func twoCycle(t *testing.T) *pagerank.Corpus {
	t.Helper()
	c, err := pagerank.NewCorpus(map[string][]string{
		"a.html": {"b.html"},
		"b.html": {"a.html"},
	})
	require.NoError(t, err)

	return c
}

// chainWithDangling builds a → b → c where c has no outgoing links.
func chainWithDangling(t *testing.T) *pagerank.Corpus {
	t.Helper()
	c, err := pagerank.NewCorpus(map[string][]string{
		"a.html": {"b.html"},
		"b.html": {"c.html"},
		"c.html": nil,
	})
	require.NoError(t, err)

	return c
}

// assertDistribution checks that ranks cover every page and sum to 1.
func assertDistribution(t *testing.T, c *pagerank.Corpus, ranks map[string]float64) {
	t.Helper()
	assert.Len(t, ranks, c.Len())
	var sum float64
	for page, r := range ranks {
		assert.True(t, c.Has(page), "rank for unknown page %q", page)
		assert.GreaterOrEqual(t, r, 0.0)
		sum += r
	}
	assert.InDelta(t, 1.0, sum, 1e-9, "ranks must sum to 1")
}

// TestNewCorpus_Filtering drops self-links, duplicates, and external targets.
func TestNewCorpus_Filtering(t *testing.T) {
	c, err := pagerank.NewCorpus(map[string][]string{
		"a.html": {"a.html", "b.html", "b.html", "http://elsewhere.example"},
		"b.html": nil,
	})
	require.NoError(t, err)

	links, err := c.Links("a.html")
	require.NoError(t, err)
	assert.Equal(t, []string{"b.html"}, links)
}

// TestNewCorpus_Errors rejects empty input and unknown page lookups.
func TestNewCorpus_Errors(t *testing.T) {
	_, err := pagerank.NewCorpus(nil)
	assert.ErrorIs(t, err, pagerank.ErrEmptyCorpus)

	c := twoCycle(t)
	_, err = c.Links("missing.html")
	assert.ErrorIs(t, err, pagerank.ErrPageNotFound)
}

// TestTransition covers linked, dangling, and unknown pages.
func TestTransition(t *testing.T) {
	c := chainWithDangling(t)

	// a links only to b: b gets 0.05 + 0.85, others 0.05.
	dist, err := pagerank.Transition(c, "a.html", 0.85)
	require.NoError(t, err)
	assert.InDelta(t, 0.15/3, dist["a.html"], 1e-12)
	assert.InDelta(t, 0.15/3+0.85, dist["b.html"], 1e-12)
	assert.InDelta(t, 0.15/3, dist["c.html"], 1e-12)

	// c is dangling: uniform distribution.
	dist, err = pagerank.Transition(c, "c.html", 0.85)
	require.NoError(t, err)
	for _, page := range c.Pages() {
		assert.InDelta(t, 1.0/3, dist[page], 1e-12)
	}

	_, err = pagerank.Transition(c, "zzz.html", 0.85)
	assert.ErrorIs(t, err, pagerank.ErrPageNotFound)

	_, err = pagerank.Transition(nil, "a.html", 0.85)
	assert.ErrorIs(t, err, pagerank.ErrCorpusNil)
}

// TestIterate_Symmetric checks the analytic answer for a ↔ b: ½ each.
func TestIterate_Symmetric(t *testing.T) {
	c := twoCycle(t)
	ranks, err := pagerank.Iterate(c)
	require.NoError(t, err)
	assertDistribution(t, c, ranks)
	assert.InDelta(t, 0.5, ranks["a.html"], 0.01)
	assert.InDelta(t, 0.5, ranks["b.html"], 0.01)
}

// TestIterate_Dangling verifies the dangling page redistributes its mass
// and the result is still a proper distribution.
func TestIterate_Dangling(t *testing.T) {
	c := chainWithDangling(t)
	ranks, err := pagerank.Iterate(c)
	require.NoError(t, err)
	assertDistribution(t, c, ranks)
	// c receives everything b has; it must outrank a.
	assert.Greater(t, ranks["c.html"], ranks["a.html"])
}

// TestSample_Deterministic asserts seed-stable results.
func TestSample_Deterministic(t *testing.T) {
	c := chainWithDangling(t)
	first, err := pagerank.Sample(c, pagerank.WithSeed(42))
	require.NoError(t, err)
	second, err := pagerank.Sample(c, pagerank.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := pagerank.Sample(c, pagerank.WithSeed(7))
	require.NoError(t, err)
	assert.NotEqual(t, first, other, "different seeds should move the estimate")
}

// TestSample_AgreesWithIterate cross-checks the two rankers on a small corpus.
func TestSample_AgreesWithIterate(t *testing.T) {
	c, err := pagerank.NewCorpus(map[string][]string{
		"1.html": {"2.html"},
		"2.html": {"1.html", "3.html"},
		"3.html": {"2.html", "4.html"},
		"4.html": {"2.html"},
	})
	require.NoError(t, err)

	sampled, err := pagerank.Sample(c, pagerank.WithSamples(20_000))
	require.NoError(t, err)
	iterated, err := pagerank.Iterate(c)
	require.NoError(t, err)

	assertDistribution(t, c, sampled)
	assertDistribution(t, c, iterated)
	for _, page := range c.Pages() {
		assert.InDelta(t, iterated[page], sampled[page], 0.03, "page %s", page)
	}
}

// TestSample_Chains averages concurrent walks into one distribution.
func TestSample_Chains(t *testing.T) {
	c := chainWithDangling(t)
	ranks, err := pagerank.Sample(c, pagerank.WithChains(4), pagerank.WithSamples(2_000))
	require.NoError(t, err)
	assertDistribution(t, c, ranks)
}

// TestOptionViolations rejects out-of-range knobs.
func TestOptionViolations(t *testing.T) {
	c := twoCycle(t)
	for name, opt := range map[string]pagerank.Option{
		"damping low":   pagerank.WithDamping(0),
		"damping high":  pagerank.WithDamping(1),
		"samples":       pagerank.WithSamples(0),
		"chains":        pagerank.WithChains(-1),
		"tolerance":     pagerank.WithTolerance(0),
		"tolerance neg": pagerank.WithTolerance(-0.5),
	} {
		if _, err := pagerank.Sample(c, opt); !errors.Is(err, pagerank.ErrOptionViolation) {
			t.Errorf("%s: want ErrOptionViolation, got %v", name, err)
		}
	}

	_, err := pagerank.Sample(nil)
	assert.ErrorIs(t, err, pagerank.ErrCorpusNil)
}

// TestCancellation halts both rankers promptly.
func TestCancellation(t *testing.T) {
	c := twoCycle(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate

	_, err := pagerank.Sample(c, pagerank.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = pagerank.Iterate(c, pagerank.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
