package qcirc

import (
	"fmt"
	"math"
)

// The algorithms below are preprogrammed sequences over the public gate
// API. They append records like any other builder call and add no
// simulation machinery of their own.

// qftSpan resolves the number of qubits an (I)QFT covers: 0 means the
// whole register. The qubits involved are 0..n-1, least significant first.
func qftSpan(c *Circuit, numQubits int) (int, error) {
	if numQubits == 0 {
		return c.NumQubits(), nil
	}
	if numQubits < 1 || numQubits > c.NumQubits() {
		return 0, fmt.Errorf("qft over %d qubits: %w: circuit has %d", numQubits, ErrQubitIndex, c.NumQubits())
	}
	return numQubits, nil
}

// QFT appends the quantum Fourier transform over the first numQubits
// qubits (all of them when numQubits is 0), taking the computational basis
// into the Fourier basis.
func QFT(c *Circuit, numQubits int) error {
	n, err := qftSpan(c, numQubits)
	if err != nil {
		return err
	}
	for q := n - 1; q >= 0; q-- {
		if err := c.H(q); err != nil {
			return err
		}
		for ctrl := 0; ctrl < q; ctrl++ {
			theta := math.Pi / float64(int(1)<<(q-ctrl))
			if err := c.CP([]int{ctrl}, q, theta); err != nil {
				return err
			}
		}
	}
	for q := 0; q < n/2; q++ {
		if err := c.Swap(q, n-q-1); err != nil {
			return err
		}
	}
	return nil
}

// IQFT appends the inverse quantum Fourier transform over the first
// numQubits qubits (all of them when numQubits is 0), undoing QFT.
func IQFT(c *Circuit, numQubits int) error {
	n, err := qftSpan(c, numQubits)
	if err != nil {
		return err
	}
	for q := 0; q < n/2; q++ {
		if err := c.Swap(q, n-q-1); err != nil {
			return err
		}
	}
	for q := 0; q < n; q++ {
		for ctrl := q - 1; ctrl >= 0; ctrl-- {
			theta := -math.Pi / float64(int(1)<<(q-ctrl))
			if err := c.CP([]int{ctrl}, q, theta); err != nil {
				return err
			}
		}
		if err := c.H(q); err != nil {
			return err
		}
	}
	return nil
}

// QPE appends quantum phase estimation of the eigenvalue problem
// P(lambda)|1> = e^(i*lambda)|1>. Qubits 0..precision-1 are the precision
// register (precision 0 means every qubit but the last); the qubit above
// them holds the eigenvector and is prepared in |1>. Measuring the
// precision register afterwards yields an integer k estimating
// lambda/(2*pi) as k/2^precision.
func QPE(c *Circuit, lambda float64, precision int) error {
	if precision == 0 {
		precision = c.NumQubits() - 1
	}
	if precision < 1 || precision >= c.NumQubits() {
		return fmt.Errorf("qpe with %d precision qubits: %w: circuit has %d", precision, ErrQubitIndex, c.NumQubits())
	}
	psi := precision

	if err := c.X(psi); err != nil {
		return err
	}
	for q := 0; q < precision; q++ {
		if err := c.H(q); err != nil {
			return err
		}
	}
	// Control j contributes phase lambda * 2^j, encoding the binary
	// fraction of lambda/(2*pi) across the precision register.
	for j := 0; j < precision; j++ {
		if err := c.CP([]int{j}, psi, lambda*float64(uint(1)<<j)); err != nil {
			return err
		}
	}
	return IQFT(c, precision)
}

// Oracle marks input qubits of a Deutsch-Jozsa circuit with the value of a
// hidden boolean function, by appending gates against the output qubit.
type Oracle func(c *Circuit) error

// ConstantOracle returns an oracle computing f(x) = output for every
// input. With it, every Deutsch-Jozsa input qubit measures 0.
func ConstantOracle(output int) Oracle {
	return func(c *Circuit) error {
		if output == 1 {
			return c.X(c.NumQubits() - 1)
		}
		return nil
	}
}

// BalancedOracle returns an oracle whose output is 0 for exactly half the
// inputs. inputFlips selects input qubits whose sense is inverted,
// changing which half maps to 0. With it, every Deutsch-Jozsa input qubit
// measures 1.
func BalancedOracle(inputFlips ...int) Oracle {
	return func(c *Circuit) error {
		n := c.NumQubits()
		if len(inputFlips) > 0 {
			if err := c.X(inputFlips...); err != nil {
				return err
			}
		}
		c.Barrier()
		for ctrl := 0; ctrl < n-1; ctrl++ {
			if err := c.CX([]int{ctrl}, n-1); err != nil {
				return err
			}
		}
		c.Barrier()
		if len(inputFlips) > 0 {
			if err := c.X(inputFlips...); err != nil {
				return err
			}
		}
		return nil
	}
}

// DeutschJozsa appends the Deutsch-Jozsa algorithm: qubits 0..n-2 are the
// oracle inputs and qubit n-1 its output. A single shot distinguishes a
// constant oracle (inputs all measure 0) from a balanced one (inputs all
// measure 1). The caller measures the input qubits afterwards.
func DeutschJozsa(c *Circuit, oracle Oracle) error {
	n := c.NumQubits()
	if n < 2 {
		return fmt.Errorf("deutsch-jozsa: %w: needs an input qubit and an output qubit", ErrInvalidOp)
	}

	c.Barrier()
	if err := c.X(n - 1); err != nil {
		return err
	}
	for q := 0; q < n; q++ {
		if err := c.H(q); err != nil {
			return err
		}
	}
	if err := oracle(c); err != nil {
		return err
	}
	for q := 0; q < n-1; q++ {
		if err := c.H(q); err != nil {
			return err
		}
	}
	c.Barrier()
	return nil
}
