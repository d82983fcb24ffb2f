package qcirc

import (
	"fmt"
	"math"
)

// Measure samples the target qubit in the computational basis and
// collapses the state onto the sampled outcome. u must be uniform in
// [0, 1); the caller owns the randomness so shots can be replayed from a
// seed. Returns the sampled bit.
//
// The outcome is 0 when u < P(target=0), otherwise 1: the exact boundary
// u == P(target=0) resolves to 1. After projection the surviving
// amplitudes are divided by sqrt of the branch probability, restoring unit
// norm. Irreversible: later gates in the shot act on the collapsed state.
func (s *StateVector) Measure(target int, u float64) (int, error) {
	bit := 1 << target
	p0 := s.SubsetProbability(bit, 0)

	outcome := 0
	pOutcome := p0
	if u >= p0 {
		outcome = 1
		pOutcome = s.SubsetProbability(bit, bit)
	}
	if pOutcome <= 0 {
		return 0, fmt.Errorf("measure q[%d] outcome %d: %w", target, outcome, ErrDegenerate)
	}

	want := 0
	if outcome == 1 {
		want = bit
	}
	norm := complex(math.Sqrt(pOutcome), 0)
	for i := range s.Amplitudes {
		if i&bit == want {
			s.Amplitudes[i] /= norm
		} else {
			s.Amplitudes[i] = 0
		}
	}
	return outcome, nil
}
