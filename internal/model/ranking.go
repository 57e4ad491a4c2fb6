package model

import "sort"

// Candidates is a slice of Candidate that supports ranking operations.
type Candidates []Candidate

// Sort orders candidates by score descending. The sort is stable so that
// equal scores keep their original row order.
func (c Candidates) Sort() {
	sort.SliceStable(c, func(i, j int) bool {
		return c[i].Score > c[j].Score
	})
}

// Top returns the highest-scoring candidate, or nil if empty.
func (c Candidates) Top() *Candidate {
	if len(c) == 0 {
		return nil
	}
	c.Sort()
	return &c[0]
}

// TopN returns the N highest-scoring candidates.
func (c Candidates) TopN(n int) Candidates {
	if n <= 0 {
		return Candidates{}
	}

	c.Sort()

	if n > len(c) {
		n = len(c)
	}

	result := make(Candidates, n)
	copy(result, c[:n])
	return result
}

// AboveThreshold returns all candidates with scores at or above threshold.
func (c Candidates) AboveThreshold(threshold float64) Candidates {
	c.Sort()

	var result Candidates
	for _, candidate := range c {
		if candidate.Score >= threshold {
			result = append(result, candidate)
		}
	}
	return result
}

// Pathways renders the display pathway for each candidate, in rank order.
func (c Candidates) Pathways() []string {
	paths := make([]string, 0, len(c))
	for _, candidate := range c {
		paths = append(paths, candidate.Pathway.String())
	}
	return paths
}
