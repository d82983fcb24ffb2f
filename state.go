package qcirc

import "math/cmplx"

type Complex = complex128

// StateVector holds the dense amplitude vector for a register of qubits.
// Index bit i carries the computational-basis value of qubit i, so the
// vector has 1<<NumQubits entries. Each shot of a circuit owns its own
// StateVector; it is never shared.
type StateVector struct {
	Amplitudes []Complex
	NumQubits  int
}

// NewStateVector returns a state vector initialized to the all-zero basis
// state |0...0>.
func NewStateVector(numQubits int) *StateVector {
	amps := make([]Complex, 1<<numQubits)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

func (s *StateVector) Clone() *StateVector {
	amps := make([]Complex, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps, NumQubits: s.NumQubits}
}

// Probability returns the squared magnitude of the amplitude at a basis
// index.
func (s *StateVector) Probability(i int) float64 {
	amp := s.Amplitudes[i]
	return real(amp * cmplx.Conj(amp))
}

// SubsetProbability sums squared magnitudes over all basis indices i with
// i&mask == want. With mask == 0 it yields the total probability, which
// must stay 1 within floating-point tolerance after every operation.
func (s *StateVector) SubsetProbability(mask, want int) float64 {
	total := 0.0
	for i, amp := range s.Amplitudes {
		if i&mask == want {
			total += real(amp * cmplx.Conj(amp))
		}
	}
	return total
}

// TotalProbability is the sum of squared magnitudes over the whole vector.
func (s *StateVector) TotalProbability() float64 {
	return s.SubsetProbability(0, 0)
}
