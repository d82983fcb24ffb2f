package qcirc

// ApplyUnitary applies a 2x2 unitary to the target qubit, conditioned on
// every control qubit being 1, updating the state in place.
//
// The 1<<n basis indices split into pairs that differ only in the target
// bit. The control bits are identical across a pair, so checking the
// low member suffices. Active pairs get the 2x2 matrix; inactive pairs are
// untouched. This reproduces a full controlled unitary over the joint
// space without ever building its 2^n x 2^n matrix.
//
// Indices are assumed valid; the Circuit builder validates them before any
// operation is recorded.
func (s *StateVector) ApplyUnitary(m Matrix, target int, controls []int) {
	bit := 1 << target
	ctrlMask := 0
	for _, c := range controls {
		ctrlMask |= 1 << c
	}
	for i := range s.Amplitudes {
		if i&bit != 0 || i&ctrlMask != ctrlMask {
			continue
		}
		j := i | bit
		a0, a1 := s.Amplitudes[i], s.Amplitudes[j]
		s.Amplitudes[i] = m[0][0]*a0 + m[0][1]*a1
		s.Amplitudes[j] = m[1][0]*a0 + m[1][1]*a1
	}
}

// ApplySwap exchanges the basis values of two qubits in place. Only
// indices with q1=1, q2=0 are visited; swapping with their (0,1) partners
// covers both directions, and indices where the bits agree are fixed
// points of the permutation.
func (s *StateVector) ApplySwap(q1, q2 int) {
	bit1 := 1 << q1
	bit2 := 1 << q2
	for i := range s.Amplitudes {
		if i&bit1 != 0 && i&bit2 == 0 {
			j := (i &^ bit1) | bit2
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}
