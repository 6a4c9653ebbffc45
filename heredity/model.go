package heredity

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Model is the probability table driving the Bayesian network.
type Model struct {
	// Gene[c] is the prior probability of carrying c copies, used for
	// people whose parents are not listed.
	Gene [MaxCopies + 1]float64

	// Trait[c][b] is the probability of trait presence b (0 = absent,
	// 1 = present) given c gene copies.
	Trait [MaxCopies + 1][2]float64

	// Mutation is the probability that a passed-down gene flips state.
	Mutation float64
}

// DefaultModel returns the classic exercise table: gene prior
// (0.96, 0.03, 0.01), trait likelihoods per copy count, mutation 0.01.
func DefaultModel() Model {
	return Model{
		Gene: [MaxCopies + 1]float64{0.96, 0.03, 0.01},
		Trait: [MaxCopies + 1][2]float64{
			{0.99, 0.01}, // 0 copies
			{0.44, 0.56}, // 1 copy
			{0.35, 0.65}, // 2 copies
		},
		Mutation: 0.01,
	}
}

// Validate checks that every distribution sums to 1 (within 1e-9) and
// every entry lies in [0,1]. Returns ErrModelInvalid otherwise.
func (m Model) Validate() error {
	var geneSum float64
	for c, p := range m.Gene {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: gene[%d] = %v out of [0,1]", ErrModelInvalid, c, p)
		}
		geneSum += p
	}
	if math.Abs(geneSum-1) > 1e-9 {
		return fmt.Errorf("%w: gene prior sums to %v, want 1", ErrModelInvalid, geneSum)
	}
	for c, pair := range m.Trait {
		for b, p := range pair {
			if p < 0 || p > 1 {
				return fmt.Errorf("%w: trait[%d][%d] = %v out of [0,1]", ErrModelInvalid, c, b, p)
			}
		}
		if sum := pair[0] + pair[1]; math.Abs(sum-1) > 1e-9 {
			return fmt.Errorf("%w: trait[%d] sums to %v, want 1", ErrModelInvalid, c, sum)
		}
	}
	if m.Mutation < 0 || m.Mutation > 1 {
		return fmt.Errorf("%w: mutation = %v out of [0,1]", ErrModelInvalid, m.Mutation)
	}

	return nil
}

// yamlModel is the on-disk shape; slices keep length errors reportable.
type yamlModel struct {
	Gene     []float64   `yaml:"gene"`     // index = copy count
	Trait    [][]float64 `yaml:"trait"`    // trait[copies] = [absent, present]
	Mutation float64     `yaml:"mutation"`
}

// LoadModel reads a Model from a YAML file of the form:
//
//	gene: [0.96, 0.03, 0.01]
//	trait:
//	  - [0.99, 0.01]
//	  - [0.44, 0.56]
//	  - [0.35, 0.65]
//	mutation: 0.01
//
// The result is validated before being returned.
func LoadModel(path string) (Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Model{}, fmt.Errorf("%w: read %q: %v", ErrModelInvalid, path, err)
	}

	var ym yamlModel
	if err = yaml.Unmarshal(raw, &ym); err != nil {
		return Model{}, fmt.Errorf("%w: parse %q: %v", ErrModelInvalid, path, err)
	}
	if len(ym.Gene) != MaxCopies+1 {
		return Model{}, fmt.Errorf("%w: gene prior needs %d entries, got %d", ErrModelInvalid, MaxCopies+1, len(ym.Gene))
	}
	if len(ym.Trait) != MaxCopies+1 {
		return Model{}, fmt.Errorf("%w: trait table needs %d rows, got %d", ErrModelInvalid, MaxCopies+1, len(ym.Trait))
	}

	var m Model
	copy(m.Gene[:], ym.Gene)
	for c, row := range ym.Trait {
		if len(row) != 2 {
			return Model{}, fmt.Errorf("%w: trait[%d] needs 2 entries, got %d", ErrModelInvalid, c, len(row))
		}
		copy(m.Trait[c][:], row)
	}
	m.Mutation = ym.Mutation

	if err = m.Validate(); err != nil {
		return Model{}, err
	}

	return m, nil
}

// passOn returns the probability that a parent with the given copy count
// passes (or fails to pass) the gene to a child.
func (m Model) passOn(parentCopies int, inherited bool) float64 {
	switch parentCopies {
	case 0:
		// only a mutation can introduce the gene
		if inherited {
			return m.Mutation
		}

		return 1 - m.Mutation
	case 1:
		// one of two chromosomes, either way
		return 0.5
	default:
		// only a mutation can suppress the gene
		if inherited {
			return 1 - m.Mutation
		}

		return m.Mutation
	}
}
