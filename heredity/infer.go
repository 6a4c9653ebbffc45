// Heredity — exact inference by enumeration of the joint distribution.
//
// Description:
//
//	Each person contributes two hidden variables: a copy count (0..2) and
//	a trait indicator. The network factorizes per person: a gene prior
//	(or the inheritance rule conditioned on both parents' copy counts)
//	times the trait likelihood given the copy count.
//
// Algorithm Outline:
//  1. Fix a trait assignment (one bit per person); skip it unless it
//     agrees with every observed trait.
//  2. For every copy-count assignment (an odometer over {0,1,2}ⁿ),
//     compute the joint probability of (copies, traits) and add it to
//     each person's running gene and trait tallies.
//  3. Normalize every person's tallies into distributions.
//
// Complexity: O(2ⁿ·3ⁿ·n) for n family members.
package heredity

import "sort"

// Infer computes per-person posterior gene and trait distributions,
// applying any number of functional Options.
// Returns ErrEmptyFamily or ErrUnknownParent for invalid input,
// ErrModelInvalid for a bad probability table, ErrOptionViolation for bad
// options, or the context error if enumeration is cancelled.
func Infer(f Family, opts ...Option) (map[string]Distribution, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if err := o.Model.Validate(); err != nil {
		return nil, err
	}

	// Deterministic person ordering for the enumeration.
	names := f.Names()
	sort.Strings(names)
	idx := make(map[string]int, len(names))
	for i, name := range names {
		idx[name] = i
	}

	n := len(names)
	post := make([]Distribution, n)
	copies := make([]int, n)

	for traitMask := 0; traitMask < 1<<n; traitMask++ {
		// cancellation check (once per trait assignment)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		if !consistent(f, names, traitMask) {
			continue
		}

		// Odometer over copy-count assignments.
		for i := range copies {
			copies[i] = 0
		}
		for {
			p := joint(f, o.Model, names, idx, copies, traitMask)
			for i := range names {
				post[i].Gene[copies[i]] += p
				post[i].Trait[bit(traitMask, i)] += p
			}

			k := 0
			for ; k < n; k++ {
				copies[k]++
				if copies[k] <= MaxCopies {
					break
				}
				copies[k] = 0
			}
			if k == n {
				break
			}
		}
	}

	// Normalize into proper distributions.
	result := make(map[string]Distribution, n)
	for i, name := range names {
		d := post[i]
		var geneSum, traitSum float64
		for _, p := range d.Gene {
			geneSum += p
		}
		traitSum = d.Trait[0] + d.Trait[1]
		if geneSum > 0 {
			for c := range d.Gene {
				d.Gene[c] /= geneSum
			}
		}
		if traitSum > 0 {
			d.Trait[0] /= traitSum
			d.Trait[1] /= traitSum
		}
		result[name] = d
	}

	return result, nil
}

// consistent reports whether traitMask agrees with every observed trait.
func consistent(f Family, names []string, traitMask int) bool {
	for i, name := range names {
		obs := f[name].Trait
		if obs == nil {
			continue
		}
		if *obs != (bit(traitMask, i) == 1) {
			return false
		}
	}

	return true
}

// joint computes the probability that every person has exactly the given
// copy count and trait value.
func joint(f Family, m Model, names []string, idx map[string]int, copies []int, traitMask int) float64 {
	prob := 1.0
	for i, name := range names {
		p := f[name]
		c := copies[i]

		if p.Mother == "" {
			// no parental information: unconditional prior
			prob *= m.Gene[c]
		} else {
			mc := copies[idx[p.Mother]]
			fc := copies[idx[p.Father]]
			var inherit float64
			switch c {
			case 0:
				// neither parent passed the gene on
				inherit = m.passOn(mc, false) * m.passOn(fc, false)
			case 1:
				// exactly one parent passed it on
				inherit = m.passOn(mc, true)*m.passOn(fc, false) +
					m.passOn(mc, false)*m.passOn(fc, true)
			default:
				// both parents passed it on
				inherit = m.passOn(mc, true) * m.passOn(fc, true)
			}
			prob *= inherit
		}

		prob *= m.Trait[c][bit(traitMask, i)]
	}

	return prob
}

// bit extracts person i's trait value (0 or 1) from the mask.
func bit(mask, i int) int {
	return (mask >> i) & 1
}
