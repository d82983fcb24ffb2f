package main

import (
	"testing"

	"qcirc"
)

func buildTestProgram(t *testing.T) *program {
	t.Helper()
	p := newProgram(3)
	specs := []gateSpec{
		{Type: "H", Target: 0, Other: -1},
		{Type: "CX", Target: 2, Controls: []int{0}, Other: -1},
		{Type: "MEASURE", Target: 1, Other: -1},
		{Type: "BARRIER", Target: -1, Other: -1},
	}
	for _, g := range specs {
		if err := p.append(g); err != nil {
			t.Fatalf("append %v: %v", g, err)
		}
	}
	return p
}

func TestProgramSpecsAlignWithOps(t *testing.T) {
	p := buildTestProgram(t)
	ops := p.circuit.Ops()
	if len(ops) != len(p.specs) {
		t.Fatalf("%d ops for %d specs", len(ops), len(p.specs))
	}
	wantNames := []string{"H", "X", "M", "BARRIER"}
	for i, op := range ops {
		if op.Name != wantNames[i] {
			t.Errorf("op %d: name %q, want %q", i, op.Name, wantNames[i])
		}
	}
}

func TestProgramFailedAppendLeavesListUntouched(t *testing.T) {
	p := buildTestProgram(t)
	before := len(p.specs)
	if err := p.append(gateSpec{Type: "H", Target: 9, Other: -1}); err == nil {
		t.Fatal("out-of-range append succeeded")
	}
	if len(p.specs) != before || len(p.circuit.Ops()) != before {
		t.Error("failed append modified the program")
	}
}

func TestProgramRemoveRecompiles(t *testing.T) {
	p := buildTestProgram(t)
	p.remove(1) // drop the CX
	ops := p.circuit.Ops()
	if len(ops) != 3 {
		t.Fatalf("%d ops after remove, want 3", len(ops))
	}
	// With the CX gone the measurement packs into column 0.
	if ops[1].Kind != qcirc.OpMeasure || ops[1].Step != 0 {
		t.Errorf("measure after remove: kind=%v step=%d", ops[1].Kind, ops[1].Step)
	}
}

func TestProgramResizeDropsOutOfRangeSpecs(t *testing.T) {
	p := buildTestProgram(t)
	if err := p.resize(2); err != nil {
		t.Fatal(err)
	}
	// The CX touched q2 and must be gone; H, measure, and barrier survive.
	if len(p.specs) != 3 {
		t.Fatalf("%d specs after shrink, want 3", len(p.specs))
	}
	for _, g := range p.specs {
		if g.references(2) {
			t.Errorf("spec %v still references removed qubit", g)
		}
	}

	if err := p.resize(31); err == nil {
		t.Error("resize past the qubit limit succeeded")
	}
}

func TestGetCellInfoControlledGate(t *testing.T) {
	p := buildTestProgram(t)
	ops := p.circuit.Ops()
	col := ops[1].Step // the CX column

	ctrl := getCellInfo(ops, col, 0)
	if !ctrl.isControl || ctrl.isTarget || !ctrl.vertBelow || ctrl.vertAbove {
		t.Errorf("control cell: %+v", ctrl)
	}

	mid := getCellInfo(ops, col, 1)
	if !mid.passThrough || !mid.vertAbove || !mid.vertBelow || mid.op != nil {
		t.Errorf("pass-through cell: %+v", mid)
	}

	tgt := getCellInfo(ops, col, 2)
	if !tgt.isTarget || !tgt.vertAbove || tgt.vertBelow {
		t.Errorf("target cell: %+v", tgt)
	}
}

func TestGetCellInfoMeasurement(t *testing.T) {
	p := buildTestProgram(t)
	ops := p.circuit.Ops()
	col := ops[2].Step // the measurement column

	cell := getCellInfo(ops, col, 1)
	if cell.op == nil || cell.op.Kind != qcirc.OpMeasure || cell.isTarget || cell.isControl {
		t.Errorf("measure cell: %+v", cell)
	}

	below := getCellInfo(ops, col, 2)
	if !below.measureBelow || below.op != nil {
		t.Errorf("cell below measure: %+v", below)
	}

	if q := measureAtCol(ops, col); q != 1 {
		t.Errorf("measureAtCol = %d, want 1", q)
	}
	if !hasMeasurements(ops) {
		t.Error("hasMeasurements = false")
	}
}

func TestGetCellInfoBarrierAndSwap(t *testing.T) {
	p := buildTestProgram(t)
	if err := p.append(gateSpec{Type: "SWAP", Target: 0, Other: 2}); err != nil {
		t.Fatal(err)
	}
	ops := p.circuit.Ops()

	barrierCol := ops[3].Step
	for q := 0; q < 3; q++ {
		if !getCellInfo(ops, barrierCol, q).isBarrier {
			t.Errorf("barrier column missing on q[%d]", q)
		}
	}

	swapCol := ops[4].Step
	for _, q := range []int{0, 2} {
		cell := getCellInfo(ops, swapCol, q)
		if !cell.isTarget || cell.op == nil || cell.op.Kind != qcirc.OpSwap {
			t.Errorf("swap end q[%d]: %+v", q, cell)
		}
	}
}
