package main

import (
	"fmt"

	"qcirc"
)

// gateSpec is one editable entry of the program being built. Each spec
// appends exactly one op, so spec index i always lines up with Ops()[i].
type gateSpec struct {
	Type     string
	Target   int
	Controls []int
	Other    int
	Params   []float64
}

// references reports whether the spec touches the given qubit.
func (g gateSpec) references(q int) bool {
	if g.Target == q || g.Other == q {
		return true
	}
	for _, c := range g.Controls {
		if c == q {
			return true
		}
	}
	return false
}

// program owns the editable gate list and the circuit compiled from it.
// The circuit itself is append-only, so edits that are not appends
// (deletion, qubit-count changes) recompile the whole list.
type program struct {
	numQubits int
	specs     []gateSpec
	circuit   *qcirc.Circuit
}

func newProgram(numQubits int) *program {
	p := &program{numQubits: numQubits}
	p.recompile()
	return p
}

// append validates and records one spec. A failed append leaves both the
// list and the circuit untouched.
func (p *program) append(g gateSpec) error {
	if err := appendSpec(p.circuit, g); err != nil {
		return err
	}
	p.specs = append(p.specs, g)
	return nil
}

// remove deletes the spec at index i and recompiles.
func (p *program) remove(i int) {
	if i < 0 || i >= len(p.specs) {
		return
	}
	p.specs = append(p.specs[:i], p.specs[i+1:]...)
	p.recompile()
}

// resize changes the register width, dropping specs that reference
// removed qubits.
func (p *program) resize(numQubits int) error {
	if _, err := qcirc.New(numQubits); err != nil {
		return err
	}
	if numQubits < p.numQubits {
		kept := p.specs[:0]
		for _, g := range p.specs {
			drop := false
			for q := numQubits; q < p.numQubits; q++ {
				if g.references(q) {
					drop = true
					break
				}
			}
			if !drop {
				kept = append(kept, g)
			}
		}
		p.specs = kept
	}
	p.numQubits = numQubits
	p.recompile()
	return nil
}

// clear wipes the program.
func (p *program) clear() {
	p.specs = nil
	p.recompile()
}

func (p *program) recompile() {
	c, err := qcirc.New(p.numQubits)
	if err != nil {
		panic(fmt.Sprintf("recompile: %v", err))
	}
	for _, g := range p.specs {
		// Every spec was validated when first appended and resize drops
		// specs on removed qubits, so this cannot fail.
		if err := appendSpec(c, g); err != nil {
			panic(fmt.Sprintf("recompile: %v", err))
		}
	}
	p.circuit = c
}

// appendSpec dispatches one spec to the matching circuit builder.
func appendSpec(c *qcirc.Circuit, g gateSpec) error {
	angle := func(i int) float64 {
		if i < len(g.Params) {
			return g.Params[i]
		}
		return 0
	}

	switch g.Type {
	case "H":
		return c.H(g.Target)
	case "X":
		return c.X(g.Target)
	case "Y":
		return c.Y(g.Target)
	case "Z":
		return c.Z(g.Target)
	case "S":
		return c.S(g.Target)
	case "T":
		return c.T(g.Target)
	case "P":
		return c.P(angle(0), g.Target)
	case "RX":
		return c.RX(angle(0), g.Target)
	case "RY":
		return c.RY(angle(0), g.Target)
	case "RZ":
		return c.RZ(angle(0), g.Target)
	case "U":
		return c.U(angle(0), angle(1), angle(2), g.Target)
	case "CX":
		return c.CX(g.Controls, g.Target)
	case "CY":
		return c.CY(g.Controls, g.Target)
	case "CZ":
		return c.CZ(g.Controls, g.Target)
	case "CP":
		return c.CP(g.Controls, g.Target, angle(0))
	case "CRX":
		return c.CRX(g.Controls, g.Target, angle(0))
	case "CRY":
		return c.CRY(g.Controls, g.Target, angle(0))
	case "CRZ":
		return c.CRZ(g.Controls, g.Target, angle(0))
	case "CU":
		return c.CU(g.Controls, g.Target, angle(0), angle(1), angle(2))
	case "SWAP":
		return c.Swap(g.Target, g.Other)
	case "MEASURE":
		return c.Measure(g.Target)
	case "BARRIER":
		c.Barrier()
		return nil
	}
	return fmt.Errorf("unknown gate type %q", g.Type)
}
