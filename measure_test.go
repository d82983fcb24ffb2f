package qcirc

import (
	"errors"
	"math"
	"testing"
)

func TestMeasureBasisState(t *testing.T) {
	// A basis state measures deterministically whatever u is drawn.
	for _, u := range []float64{0, 0.25, 0.999} {
		s := NewStateVector(1)
		outcome, err := s.Measure(0, u)
		if err != nil {
			t.Fatalf("measure |0> with u=%g: %v", u, err)
		}
		if outcome != 0 {
			t.Errorf("measure |0> with u=%g: outcome %d, want 0", u, outcome)
		}

		s = NewStateVector(1)
		s.ApplyUnitary(PauliX(), 0, nil)
		outcome, err = s.Measure(0, u)
		if err != nil {
			t.Fatalf("measure |1> with u=%g: %v", u, err)
		}
		if outcome != 1 {
			t.Errorf("measure |1> with u=%g: outcome %d, want 1", u, outcome)
		}
	}
}

func TestMeasureBoundaryFavorsOne(t *testing.T) {
	// P(0) = 0.25 exactly; the sample u == p0 must resolve to outcome 1.
	s := &StateVector{Amplitudes: []Complex{0.5, complex(math.Sqrt(0.75), 0)}, NumQubits: 1}

	outcome, err := s.Measure(0, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != 1 {
		t.Errorf("u == p0: outcome %d, want 1", outcome)
	}

	s = &StateVector{Amplitudes: []Complex{0.5, complex(math.Sqrt(0.75), 0)}, NumQubits: 1}
	outcome, err = s.Measure(0, 0.2499)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != 0 {
		t.Errorf("u just below p0: outcome %d, want 0", outcome)
	}
}

func TestMeasureCollapsesAndRenormalizes(t *testing.T) {
	// Bell state: measuring q0 collapses q1 to the same value with the
	// survivors renormalized to unit probability.
	for _, u := range []float64{0.1, 0.9} {
		s := NewStateVector(2)
		s.ApplyUnitary(Hadamard(), 0, nil)
		s.ApplyUnitary(PauliX(), 1, []int{0})

		first, err := s.Measure(0, u)
		if err != nil {
			t.Fatal(err)
		}
		if p := s.TotalProbability(); math.Abs(p-1) > 1e-9 {
			t.Fatalf("after collapse: total probability = %g, want 1", p)
		}

		// q1 is now deterministic.
		second, err := s.Measure(1, 0.5)
		if err != nil {
			t.Fatal(err)
		}
		if first != second {
			t.Errorf("bell pair: q0=%d but q1=%d", first, second)
		}
	}
}

func TestMeasureDegenerateState(t *testing.T) {
	// An all-zero vector cannot supply the sampled branch; this state is
	// unreachable through the public API, so build it directly.
	s := &StateVector{Amplitudes: make([]Complex, 2), NumQubits: 1}
	if _, err := s.Measure(0, 0.9); !errors.Is(err, ErrDegenerate) {
		t.Errorf("measure of zero vector: err = %v, want ErrDegenerate", err)
	}
}
