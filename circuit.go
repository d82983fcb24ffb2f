package qcirc

import (
	"fmt"
	"slices"
)

// maxQubits keeps 1<<n (the amplitude count) within sane memory bounds.
const maxQubits = 30

// OpKind discriminates the operation records a circuit can hold.
type OpKind int

const (
	OpGate OpKind = iota
	OpSwap
	OpMeasure
	OpBarrier
)

// Op is one recorded circuit operation. Records are immutable once
// appended; the executor replays them and the diagram renderer reads them,
// neither mutates them.
type Op struct {
	Kind     OpKind
	Name     string    // gate family for display: "X", "H", "RX", "SWAP", "M"
	Target   int       // target qubit (first qubit for SWAP, -1 for barrier)
	Controls []int     // control qubits, empty unless controlled
	Other    int       // second qubit of a SWAP, -1 otherwise
	Params   []float64 // angle parameters for P/RX/RY/RZ/U
	Step     int       // display column

	matrix Matrix // resolved at build time for OpGate
}

// References reports whether the op acts on or is conditioned on a qubit.
func (op Op) References(q int) bool {
	if op.Target == q || op.Other == q {
		return true
	}
	return slices.Contains(op.Controls, q)
}

// Span returns the lowest and highest qubit the op touches.
func (op Op) Span() (lo, hi int) {
	lo, hi = op.Target, op.Target
	if op.Other >= 0 {
		lo, hi = min(lo, op.Other), max(hi, op.Other)
	}
	for _, c := range op.Controls {
		lo, hi = min(lo, c), max(hi, c)
	}
	return lo, hi
}

// Circuit accumulates the program for a fixed-width qubit register. Gate
// and measurement calls append validated operation records without
// touching any amplitudes; Run replays the records once per shot.
//
// Building is append-only and not safe for concurrent use. Once Run is
// called the program must no longer be modified.
type Circuit struct {
	numQubits int
	ops       []Op
	earliest  []int // next free display column per qubit
}

// New creates an empty circuit over numQubits qubits, with a classical
// register of the same width.
func New(numQubits int) (*Circuit, error) {
	if numQubits < 1 {
		return nil, fmt.Errorf("new circuit: %w: need at least 1 qubit, got %d", ErrInvalidOp, numQubits)
	}
	if numQubits > maxQubits {
		return nil, fmt.Errorf("new circuit: %w: %d qubits exceeds the %d-qubit limit", ErrInvalidOp, numQubits, maxQubits)
	}
	return &Circuit{
		numQubits: numQubits,
		earliest:  make([]int, numQubits),
	}, nil
}

// NumQubits returns the register width.
func (c *Circuit) NumQubits() int {
	return c.numQubits
}

// Ops returns a copy of the recorded program, for replay-free consumers
// such as diagram renderers.
func (c *Circuit) Ops() []Op {
	ops := make([]Op, len(c.ops))
	copy(ops, c.ops)
	for i := range ops {
		ops[i].Controls = slices.Clone(ops[i].Controls)
		ops[i].Params = slices.Clone(ops[i].Params)
	}
	return ops
}

// Columns returns the number of display columns the program occupies.
func (c *Circuit) Columns() int {
	cols := 0
	for _, e := range c.earliest {
		cols = max(cols, e)
	}
	return cols
}

// takeColumn claims the earliest column free across qubits [lo, hi] and
// advances them past it. Barriers and measurements claim wider spans so
// the diagram keeps operations in program order along each wire.
func (c *Circuit) takeColumn(lo, hi int) int {
	step := 0
	for q := lo; q <= hi; q++ {
		step = max(step, c.earliest[q])
	}
	for q := lo; q <= hi; q++ {
		c.earliest[q] = step + 1
	}
	return step
}

func (c *Circuit) checkQubit(opName string, q int) error {
	if q < 0 || q >= c.numQubits {
		return fmt.Errorf("%s q[%d]: %w [0, %d)", opName, q, ErrQubitIndex, c.numQubits)
	}
	return nil
}

func (c *Circuit) checkControls(opName string, controls []int, target int) error {
	if len(controls) == 0 {
		return fmt.Errorf("%s q[%d]: %w: controlled gate needs at least one control", opName, target, ErrInvalidOp)
	}
	seen := make(map[int]bool, len(controls))
	for _, ctrl := range controls {
		if err := c.checkQubit(opName, ctrl); err != nil {
			return err
		}
		if ctrl == target {
			return fmt.Errorf("%s q[%d]: %w: target is also a control", opName, target, ErrInvalidOp)
		}
		if seen[ctrl] {
			return fmt.Errorf("%s q[%d]: %w: duplicate control q[%d]", opName, target, ErrInvalidOp, ctrl)
		}
		seen[ctrl] = true
	}
	return nil
}

// gate appends one single-qubit record per listed target. All targets are
// validated before anything is appended, so a failed call leaves the
// program untouched.
func (c *Circuit) gate(name string, m Matrix, params []float64, targets []int) error {
	if len(targets) == 0 {
		return fmt.Errorf("%s: %w: no targets", name, ErrInvalidOp)
	}
	for _, t := range targets {
		if err := c.checkQubit(name, t); err != nil {
			return err
		}
	}
	for _, t := range targets {
		c.ops = append(c.ops, Op{
			Kind:   OpGate,
			Name:   name,
			Target: t,
			Other:  -1,
			Params: params,
			Step:   c.takeColumn(t, t),
			matrix: m,
		})
	}
	return nil
}

// controlled appends a single multiply-controlled gate record.
func (c *Circuit) controlled(name string, m Matrix, params []float64, controls []int, target int) error {
	if err := c.checkQubit(name, target); err != nil {
		return err
	}
	if err := c.checkControls(name, controls, target); err != nil {
		return err
	}
	op := Op{
		Kind:     OpGate,
		Name:     name,
		Target:   target,
		Controls: slices.Clone(controls),
		Other:    -1,
		Params:   params,
		matrix:   m,
	}
	lo, hi := op.Span()
	op.Step = c.takeColumn(lo, hi)
	c.ops = append(c.ops, op)
	return nil
}

// X appends a Pauli-X gate to each listed target.
func (c *Circuit) X(targets ...int) error {
	return c.gate("X", PauliX(), nil, targets)
}

// Y appends a Pauli-Y gate to each listed target.
func (c *Circuit) Y(targets ...int) error {
	return c.gate("Y", PauliY(), nil, targets)
}

// Z appends a Pauli-Z gate to each listed target.
func (c *Circuit) Z(targets ...int) error {
	return c.gate("Z", PauliZ(), nil, targets)
}

// H appends a Hadamard gate to each listed target.
func (c *Circuit) H(targets ...int) error {
	return c.gate("H", Hadamard(), nil, targets)
}

// S appends the S phase gate (P(pi/2)) to each listed target.
func (c *Circuit) S(targets ...int) error {
	return c.gate("S", SGate(), nil, targets)
}

// T appends the T phase gate (P(pi/4)) to each listed target.
func (c *Circuit) T(targets ...int) error {
	return c.gate("T", TGate(), nil, targets)
}

// P appends a phase gate P(theta) to each listed target.
func (c *Circuit) P(theta float64, targets ...int) error {
	return c.gate("P", Phase(theta), []float64{theta}, targets)
}

// RX appends an X-axis rotation to each listed target.
func (c *Circuit) RX(theta float64, targets ...int) error {
	return c.gate("RX", RX(theta), []float64{theta}, targets)
}

// RY appends a Y-axis rotation to each listed target.
func (c *Circuit) RY(theta float64, targets ...int) error {
	return c.gate("RY", RY(theta), []float64{theta}, targets)
}

// RZ appends a Z-axis rotation to each listed target.
func (c *Circuit) RZ(theta float64, targets ...int) error {
	return c.gate("RZ", RZ(theta), []float64{theta}, targets)
}

// U appends the general single-qubit unitary U(theta, phi, lambda) to each
// listed target.
func (c *Circuit) U(theta, phi, lambda float64, targets ...int) error {
	return c.gate("U", UGate(theta, phi, lambda), []float64{theta, phi, lambda}, targets)
}

// CX appends an X gate on target conditioned on every control being 1.
func (c *Circuit) CX(controls []int, target int) error {
	return c.controlled("X", PauliX(), nil, controls, target)
}

// CY appends a controlled Pauli-Y gate.
func (c *Circuit) CY(controls []int, target int) error {
	return c.controlled("Y", PauliY(), nil, controls, target)
}

// CZ appends a controlled Pauli-Z gate.
func (c *Circuit) CZ(controls []int, target int) error {
	return c.controlled("Z", PauliZ(), nil, controls, target)
}

// CP appends a controlled phase gate P(theta).
func (c *Circuit) CP(controls []int, target int, theta float64) error {
	return c.controlled("P", Phase(theta), []float64{theta}, controls, target)
}

// CRX appends a controlled X-axis rotation.
func (c *Circuit) CRX(controls []int, target int, theta float64) error {
	return c.controlled("RX", RX(theta), []float64{theta}, controls, target)
}

// CRY appends a controlled Y-axis rotation.
func (c *Circuit) CRY(controls []int, target int, theta float64) error {
	return c.controlled("RY", RY(theta), []float64{theta}, controls, target)
}

// CRZ appends a controlled Z-axis rotation.
func (c *Circuit) CRZ(controls []int, target int, theta float64) error {
	return c.controlled("RZ", RZ(theta), []float64{theta}, controls, target)
}

// CU appends a controlled general unitary.
func (c *Circuit) CU(controls []int, target int, theta, phi, lambda float64) error {
	return c.controlled("U", UGate(theta, phi, lambda), []float64{theta, phi, lambda}, controls, target)
}

// Toffoli appends an X gate on target conditioned on two controls.
func (c *Circuit) Toffoli(control1, control2, target int) error {
	return c.CX([]int{control1, control2}, target)
}

// Swap appends a SWAP of two distinct qubits.
func (c *Circuit) Swap(q1, q2 int) error {
	if err := c.checkQubit("SWAP", q1); err != nil {
		return err
	}
	if err := c.checkQubit("SWAP", q2); err != nil {
		return err
	}
	if q1 == q2 {
		return fmt.Errorf("SWAP q[%d]: %w: cannot swap a qubit with itself", q1, ErrInvalidOp)
	}
	c.ops = append(c.ops, Op{
		Kind:   OpSwap,
		Name:   "SWAP",
		Target: q1,
		Other:  q2,
		Step:   c.takeColumn(min(q1, q2), max(q1, q2)),
	})
	return nil
}

// Barrier appends a display-only marker spanning all qubits. The executor
// ignores it.
func (c *Circuit) Barrier() {
	c.ops = append(c.ops, Op{
		Kind:   OpBarrier,
		Name:   "BARRIER",
		Target: -1,
		Other:  -1,
		Step:   c.takeColumn(0, c.numQubits-1),
	})
}

// Measure appends one computational-basis measurement record per listed
// target. The sampled outcome lands in the classical register cell of the
// same index. The measured qubit's wire and every wire below it advance a
// column, keeping the classical readout aligned in the diagram.
func (c *Circuit) Measure(targets ...int) error {
	if len(targets) == 0 {
		return fmt.Errorf("measure: %w: no targets", ErrInvalidOp)
	}
	for _, t := range targets {
		if err := c.checkQubit("measure", t); err != nil {
			return err
		}
	}
	for _, t := range targets {
		c.ops = append(c.ops, Op{
			Kind:   OpMeasure,
			Name:   "M",
			Target: t,
			Other:  -1,
			Step:   c.takeColumn(t, c.numQubits-1),
		})
	}
	return nil
}
