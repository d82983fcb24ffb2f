package qcirc

import (
	"math"
	"math/cmplx"
)

// Matrix is a 2x2 complex matrix in row-major order. Every gate in the
// library is one of these; controlled and multi-qubit behavior comes from
// how the matrix is applied, not from larger matrices.
type Matrix [2][2]Complex

func Identity() Matrix {
	return Matrix{{1, 0}, {0, 1}}
}

func PauliX() Matrix {
	return Matrix{{0, 1}, {1, 0}}
}

func PauliY() Matrix {
	return Matrix{{0, -1i}, {1i, 0}}
}

func PauliZ() Matrix {
	return Matrix{{1, 0}, {0, -1}}
}

func Hadamard() Matrix {
	h := complex(1.0/math.Sqrt2, 0)
	return Matrix{{h, h}, {h, -h}}
}

// Phase returns P(theta) = diag(1, e^{i*theta}).
func Phase(theta float64) Matrix {
	return Matrix{{1, 0}, {0, cmplx.Exp(complex(0, theta))}}
}

// SGate is P(pi/2).
func SGate() Matrix {
	return Phase(math.Pi / 2)
}

// TGate is P(pi/4).
func TGate() Matrix {
	return Phase(math.Pi / 4)
}

func RX(theta float64) Matrix {
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, -math.Sin(theta/2))
	return Matrix{{c, js}, {js, c}}
}

func RY(theta float64) Matrix {
	c := complex(math.Cos(theta/2), 0)
	sn := complex(math.Sin(theta/2), 0)
	return Matrix{{c, -sn}, {sn, c}}
}

func RZ(theta float64) Matrix {
	phase := cmplx.Exp(complex(0, theta/2))
	return Matrix{{cmplx.Conj(phase), 0}, {0, phase}}
}

// UGate is the general single-qubit unitary U(theta, phi, lambda).
func UGate(theta, phi, lambda float64) Matrix {
	c := complex(math.Cos(theta/2), 0)
	sn := complex(math.Sin(theta/2), 0)
	return Matrix{
		{c, -cmplx.Exp(complex(0, lambda)) * sn},
		{cmplx.Exp(complex(0, phi)) * sn, cmplx.Exp(complex(0, phi+lambda)) * c},
	}
}

// Dagger returns the conjugate transpose. For a unitary matrix this is its
// inverse.
func (m Matrix) Dagger() Matrix {
	return Matrix{
		{cmplx.Conj(m[0][0]), cmplx.Conj(m[1][0])},
		{cmplx.Conj(m[0][1]), cmplx.Conj(m[1][1])},
	}
}
