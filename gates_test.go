package qcirc

import (
	"math"
	"math/cmplx"
	"testing"
)

const tol = 1e-10

func matricesClose(a, b Matrix, tol float64) bool {
	for r := range 2 {
		for c := range 2 {
			if cmplx.Abs(a[r][c]-b[r][c]) > tol {
				return false
			}
		}
	}
	return true
}

// mul returns the 2x2 product a*b.
func mul(a, b Matrix) Matrix {
	var out Matrix
	for r := range 2 {
		for c := range 2 {
			out[r][c] = a[r][0]*b[0][c] + a[r][1]*b[1][c]
		}
	}
	return out
}

func TestGateUnitarity(t *testing.T) {
	gates := []struct {
		name string
		m    Matrix
	}{
		{"I", Identity()},
		{"X", PauliX()},
		{"Y", PauliY()},
		{"Z", PauliZ()},
		{"H", Hadamard()},
		{"S", SGate()},
		{"T", TGate()},
		{"P(0.3)", Phase(0.3)},
		{"P(-2.1)", Phase(-2.1)},
		{"RX(pi/3)", RX(math.Pi / 3)},
		{"RX(1.7)", RX(1.7)},
		{"RY(pi/5)", RY(math.Pi / 5)},
		{"RY(-0.4)", RY(-0.4)},
		{"RZ(pi/7)", RZ(math.Pi / 7)},
		{"RZ(2.9)", RZ(2.9)},
		{"U(0.5,1.2,-0.7)", UGate(0.5, 1.2, -0.7)},
		{"U(pi/2,0,pi)", UGate(math.Pi/2, 0, math.Pi)},
	}

	for _, g := range gates {
		if got := mul(g.m, g.m.Dagger()); !matricesClose(got, Identity(), tol) {
			t.Errorf("%s: M*Mdag = %v, want identity", g.name, got)
		}
		if got := mul(g.m.Dagger(), g.m); !matricesClose(got, Identity(), tol) {
			t.Errorf("%s: Mdag*M = %v, want identity", g.name, got)
		}
	}
}

func TestGateEntries(t *testing.T) {
	h := complex(1/math.Sqrt2, 0)

	tests := []struct {
		name string
		got  Matrix
		want Matrix
	}{
		{"X", PauliX(), Matrix{{0, 1}, {1, 0}}},
		{"Y", PauliY(), Matrix{{0, -1i}, {1i, 0}}},
		{"Z", PauliZ(), Matrix{{1, 0}, {0, -1}}},
		{"H", Hadamard(), Matrix{{h, h}, {h, -h}}},
		{"S", SGate(), Matrix{{1, 0}, {0, 1i}}},
		{"T", TGate(), Matrix{{1, 0}, {0, cmplx.Exp(complex(0, math.Pi/4))}}},
		{"P(pi)", Phase(math.Pi), Matrix{{1, 0}, {0, -1}}},
	}

	for _, tt := range tests {
		if !matricesClose(tt.got, tt.want, tol) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestRotationEntries(t *testing.T) {
	theta := math.Pi / 3
	c := complex(math.Cos(theta/2), 0)
	s := math.Sin(theta / 2)

	if got, want := RX(theta), (Matrix{{c, complex(0, -s)}, {complex(0, -s), c}}); !matricesClose(got, want, tol) {
		t.Errorf("RX(%g) = %v, want %v", theta, got, want)
	}
	if got, want := RY(theta), (Matrix{{c, complex(-s, 0)}, {complex(s, 0), c}}); !matricesClose(got, want, tol) {
		t.Errorf("RY(%g) = %v, want %v", theta, got, want)
	}
	ph := cmplx.Exp(complex(0, theta/2))
	if got, want := RZ(theta), (Matrix{{cmplx.Conj(ph), 0}, {0, ph}}); !matricesClose(got, want, tol) {
		t.Errorf("RZ(%g) = %v, want %v", theta, got, want)
	}
}

func TestUGateSpecialCases(t *testing.T) {
	// U(theta, -pi/2, pi/2) is RX(theta); U(theta, 0, 0) is RY(theta).
	theta := 1.1
	if !matricesClose(UGate(theta, -math.Pi/2, math.Pi/2), RX(theta), tol) {
		t.Errorf("U(theta,-pi/2,pi/2) does not match RX(theta)")
	}
	if !matricesClose(UGate(theta, 0, 0), RY(theta), tol) {
		t.Errorf("U(theta,0,0) does not match RY(theta)")
	}
}
