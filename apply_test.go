package qcirc

import (
	"math"
	"math/cmplx"
	"testing"
)

func statesClose(t *testing.T, got, want []Complex, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("state length %d, want %d", len(got), len(want))
	}
	for i := range got {
		if cmplx.Abs(got[i]-want[i]) > tol {
			t.Fatalf("amplitude[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNewStateVector(t *testing.T) {
	s := NewStateVector(3)
	if len(s.Amplitudes) != 8 {
		t.Fatalf("3 qubits: got %d amplitudes, want 8", len(s.Amplitudes))
	}
	if s.Amplitudes[0] != 1 {
		t.Errorf("amplitude[0] = %v, want 1", s.Amplitudes[0])
	}
	if p := s.TotalProbability(); math.Abs(p-1) > tol {
		t.Errorf("total probability = %g, want 1", p)
	}
}

func TestPauliXOnZero(t *testing.T) {
	s := NewStateVector(1)
	s.ApplyUnitary(PauliX(), 0, nil)
	statesClose(t, s.Amplitudes, []Complex{0, 1}, tol)
}

func TestHadamardTwiceIsIdentity(t *testing.T) {
	s := NewStateVector(1)
	s.ApplyUnitary(Hadamard(), 0, nil)
	s.ApplyUnitary(Hadamard(), 0, nil)
	statesClose(t, s.Amplitudes, []Complex{1, 0}, tol)
}

func TestControlledX(t *testing.T) {
	// Control set: q0=1, q1=0 (index 1) flips to index 3.
	s := NewStateVector(2)
	s.Amplitudes[0] = 0
	s.Amplitudes[1] = 1
	s.ApplyUnitary(PauliX(), 1, []int{0})
	statesClose(t, s.Amplitudes, []Complex{0, 0, 0, 1}, tol)

	// Control clear: index 0 untouched.
	s = NewStateVector(2)
	s.ApplyUnitary(PauliX(), 1, []int{0})
	statesClose(t, s.Amplitudes, []Complex{1, 0, 0, 0}, tol)
}

func TestToffoli(t *testing.T) {
	// Both controls set: 0b011 -> 0b111.
	s := NewStateVector(3)
	s.Amplitudes[0] = 0
	s.Amplitudes[0b011] = 1
	s.ApplyUnitary(PauliX(), 2, []int{0, 1})
	want := make([]Complex, 8)
	want[0b111] = 1
	statesClose(t, s.Amplitudes, want, tol)

	// One control set: 0b001 untouched.
	s = NewStateVector(3)
	s.Amplitudes[0] = 0
	s.Amplitudes[0b001] = 1
	s.ApplyUnitary(PauliX(), 2, []int{0, 1})
	want = make([]Complex, 8)
	want[0b001] = 1
	statesClose(t, s.Amplitudes, want, tol)
}

func TestSwap(t *testing.T) {
	// q0=1, q1=0 (index 1) becomes q0=0, q1=1 (index 2).
	s := NewStateVector(2)
	s.Amplitudes[0] = 0
	s.Amplitudes[1] = 1
	s.ApplySwap(0, 1)
	statesClose(t, s.Amplitudes, []Complex{0, 0, 1, 0}, tol)

	// Swapping back restores the original.
	s.ApplySwap(0, 1)
	statesClose(t, s.Amplitudes, []Complex{0, 1, 0, 0}, tol)
}

func TestSwapOnSuperposition(t *testing.T) {
	s := NewStateVector(2)
	s.ApplyUnitary(Hadamard(), 0, nil)
	s.ApplySwap(0, 1)

	h := complex(1/math.Sqrt2, 0)
	statesClose(t, s.Amplitudes, []Complex{h, 0, h, 0}, tol)
}

func TestUnitaryRoundTrip(t *testing.T) {
	gates := []struct {
		name string
		m    Matrix
	}{
		{"H", Hadamard()},
		{"Y", PauliY()},
		{"RX(1.3)", RX(1.3)},
		{"U(0.7,2.2,-1.1)", UGate(0.7, 2.2, -1.1)},
	}

	for _, g := range gates {
		// A non-trivial 2-qubit state to round-trip through M then Mdag.
		s := NewStateVector(2)
		s.ApplyUnitary(Hadamard(), 0, nil)
		s.ApplyUnitary(RY(0.9), 1, nil)
		before := s.Clone()

		s.ApplyUnitary(g.m, 1, nil)
		s.ApplyUnitary(g.m.Dagger(), 1, nil)
		statesClose(t, s.Amplitudes, before.Amplitudes, tol)
	}
}

func TestNormPreservedAcrossGates(t *testing.T) {
	s := NewStateVector(3)
	steps := []func(){
		func() { s.ApplyUnitary(Hadamard(), 0, nil) },
		func() { s.ApplyUnitary(PauliY(), 1, nil) },
		func() { s.ApplyUnitary(UGate(0.4, 1.9, -0.2), 2, nil) },
		func() { s.ApplyUnitary(RZ(2.3), 0, []int{1}) },
		func() { s.ApplyUnitary(PauliX(), 2, []int{0, 1}) },
		func() { s.ApplySwap(0, 2) },
	}
	for i, step := range steps {
		step()
		if p := s.TotalProbability(); math.Abs(p-1) > 1e-9 {
			t.Fatalf("after step %d: total probability = %g, want 1", i, p)
		}
	}
}

func TestSubsetProbability(t *testing.T) {
	s := NewStateVector(2)
	s.ApplyUnitary(Hadamard(), 0, nil)

	if p := s.SubsetProbability(1, 0); math.Abs(p-0.5) > tol {
		t.Errorf("P(q0=0) = %g, want 0.5", p)
	}
	if p := s.SubsetProbability(2, 0); math.Abs(p-1) > tol {
		t.Errorf("P(q1=0) = %g, want 1", p)
	}
	if p := s.SubsetProbability(2, 2); math.Abs(p) > tol {
		t.Errorf("P(q1=1) = %g, want 0", p)
	}
}
