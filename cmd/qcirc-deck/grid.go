package main

import (
	"slices"

	"qcirc"
)

// cellInfo describes what occupies a single cell in the circuit grid.
type cellInfo struct {
	op           *qcirc.Op
	isControl    bool
	isTarget     bool
	isBarrier    bool
	vertAbove    bool
	vertBelow    bool
	passThrough  bool
	measureBelow bool
}

// getCellInfo returns rendering information for the cell at (col, qubit).
func getCellInfo(ops []qcirc.Op, col, qubit int) cellInfo {
	var info cellInfo

	for i := range ops {
		op := &ops[i]
		if op.Step != col {
			continue
		}

		if op.Kind == qcirc.OpBarrier {
			info.isBarrier = true
			if info.op == nil {
				info.op = op
			}
			continue
		}

		// Measurements hang a classical readout below the measured wire.
		if op.Kind == qcirc.OpMeasure && qubit > op.Target {
			info.measureBelow = true
		}

		lo, hi := op.Span()
		if qubit < lo || qubit > hi {
			continue
		}

		switch {
		case op.Kind == qcirc.OpSwap && (op.Target == qubit || op.Other == qubit):
			info.op = op
			info.isTarget = true
		case slices.Contains(op.Controls, qubit):
			info.op = op
			info.isControl = true
		case op.Target == qubit:
			info.op = op
			info.isTarget = len(op.Controls) > 0
		default:
			info.passThrough = true
		}

		if hi > lo {
			if qubit > lo {
				info.vertAbove = true
			}
			if qubit < hi {
				info.vertBelow = true
			}
		}
	}

	return info
}

// measureAtCol returns the qubit measured at the given column, or -1.
func measureAtCol(ops []qcirc.Op, col int) int {
	for _, op := range ops {
		if op.Step == col && op.Kind == qcirc.OpMeasure {
			return op.Target
		}
	}
	return -1
}

// hasMeasurements reports whether the program contains any measurement.
func hasMeasurements(ops []qcirc.Op) bool {
	for _, op := range ops {
		if op.Kind == qcirc.OpMeasure {
			return true
		}
	}
	return false
}
