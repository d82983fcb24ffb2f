package main

import (
	"fmt"
	"strings"

	"qcirc"
)

// ──────────────────────────── Rendering helpers ────────────────────────────

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// targetSymbol returns the wire symbol for the target end of a multi-qubit op.
func targetSymbol(op *qcirc.Op) string {
	switch {
	case op.Kind == qcirc.OpSwap:
		return "×"
	case op.Name == "Z":
		return "●"
	default:
		return "⊕"
	}
}

// ──────────────────────────── Cell rendering ────────────────────────────

type cellHighlight int

const (
	hlNone cellHighlight = iota
	hlCursor
	hlTargetSelect
)

// renderCell returns 3 lines (top, mid, bot) for a single cell.
// Each line is exactly cellW (11) visual characters wide.
func renderCell(info cellInfo, hl cellHighlight) (top, mid, bot string) {
	emptyRow := strings.Repeat(" ", cellW)
	halfW := cellW / 2
	vertRow := strings.Repeat(" ", halfW) + "│" + strings.Repeat(" ", cellW-halfW-1)
	dblVertRow := strings.Repeat(" ", halfW) + cbitConnectorStyle.Render("║") + strings.Repeat(" ", cellW-halfW-1)

	// ── Highlighted cell (cursor or target selection) ──
	if hl == hlCursor || hl == hlTargetSelect {
		bdr := cursorBoxStyle
		if hl == hlTargetSelect {
			bdr = targetSelectStyle
		}
		innerW := cellW - 2
		dashL := (innerW - 1) / 2
		dashR := innerW - dashL - 1

		if info.isBarrier {
			top = vertRow
			mid = bdr.Render("║") + strings.Repeat("─", dashL) + "│" + strings.Repeat("─", dashR) + bdr.Render("║")
			bot = vertRow
			return
		}

		top = bdr.Render("╔" + strings.Repeat("═", innerW) + "╗")
		bot = bdr.Render("╚" + strings.Repeat("═", innerW) + "╝")

		switch {
		case info.op != nil && info.isControl:
			mid = bdr.Render("║") + strings.Repeat("─", dashL) + gateStyle.Render("●") + strings.Repeat("─", dashR) + bdr.Render("║")
		case info.op != nil && info.isTarget:
			sym := targetSymbol(info.op)
			mid = bdr.Render("║") + strings.Repeat("─", dashL) + gateStyle.Render(sym) + strings.Repeat("─", dashR) + bdr.Render("║")
		case info.op != nil:
			name := padCenter(info.op.Name, gateNameW)
			mid = bdr.Render("║") + "─┤" + gateStyle.Render(name) + "├─" + bdr.Render("║")
		case info.passThrough:
			mid = bdr.Render("║") + strings.Repeat("─", dashL) + "┼" + strings.Repeat("─", dashR) + bdr.Render("║")
		default:
			mid = bdr.Render("║") + strings.Repeat("─", innerW) + bdr.Render("║")
		}

		return
	}

	// ── Normal (non-highlighted) cells ──
	dashL := (cellW - 1) / 2
	dashR := cellW - dashL - 1

	if info.isBarrier {
		top = vertRow
		mid = strings.Repeat("─", dashL) + "│" + strings.Repeat("─", dashR)
		bot = vertRow

	} else if info.op != nil && (info.isControl || info.isTarget) {
		sym := "●"
		if info.isTarget {
			sym = targetSymbol(info.op)
		}
		top = emptyRow
		if info.vertAbove {
			top = vertRow
		}
		mid = strings.Repeat("─", dashL) + gateStyle.Render(sym) + strings.Repeat("─", dashR)
		bot = emptyRow
		if info.vertBelow {
			bot = vertRow
		}
		if info.measureBelow {
			bot = dblVertRow
		}

	} else if info.op != nil {
		// Boxed gate cell, including measurements.
		margin := (cellW - gateBoxW) / 2
		rightMargin := cellW - margin - gateBoxW
		name := padCenter(info.op.Name, gateNameW)

		top = strings.Repeat(" ", margin) + gateStyle.Render("┌"+strings.Repeat("─", gateNameW)+"┐") + strings.Repeat(" ", rightMargin)
		mid = strings.Repeat("─", margin) + gateStyle.Render("┤"+name+"├") + strings.Repeat("─", rightMargin)
		bot = strings.Repeat(" ", margin) + gateStyle.Render("└"+strings.Repeat("─", gateNameW)+"┘") + strings.Repeat(" ", rightMargin)
		if info.op.Kind == qcirc.OpMeasure || info.measureBelow {
			bot = dblVertRow
		}

	} else if info.passThrough {
		top = vertRow
		mid = strings.Repeat("─", dashL) + "┼" + strings.Repeat("─", dashR)
		bot = vertRow
		if info.measureBelow {
			bot = dblVertRow
		}

	} else if info.measureBelow {
		// No gate here, but a measurement readout passes through vertically.
		top = dblVertRow
		mid = strings.Repeat("─", dashL) + cbitConnectorStyle.Render("╫") + strings.Repeat("─", dashR)
		bot = dblVertRow

	} else {
		// Empty wire
		top = emptyRow
		if info.vertAbove {
			top = vertRow
		}
		mid = strings.Repeat("─", cellW)
		bot = emptyRow
		if info.vertBelow {
			bot = vertRow
		}
	}

	return
}

// ──────────────────────────── Panel rendering ────────────────────────────

// renderCircuitPanel renders the circuit grid panel.
func (m Model) renderCircuitPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Quantum Circuit"))
	sb.WriteString("\n\n")

	// How many columns fit
	availWidth := width - labelVisualW - 4
	maxCols := max(availWidth/cellW, 1)

	startCol := 0
	if m.cursorCol >= maxCols {
		startCol = m.cursorCol - maxCols + 1
	}

	if startCol > 0 {
		fmt.Fprintf(&sb, "  ◀ showing columns %d-%d\n", startCol, startCol+maxCols-1)
	}

	// Column number header
	header := strings.Repeat(" ", labelVisualW)
	for col := startCol; col < startCol+maxCols; col++ {
		header += dimStyle.Render(padCenter(fmt.Sprintf("%d", col), cellW))
	}
	sb.WriteString(header + "\n")

	// Render each qubit as 3 lines
	for qubit := range m.program.numQubits {
		topLine := strings.Repeat(" ", labelVisualW)
		label := fmt.Sprintf("q[%d]", qubit)
		midLine := qubitLabelStyle.Render(fmt.Sprintf("%-5s", label)) + "──"
		botLine := strings.Repeat(" ", labelVisualW)

		for col := startCol; col < startCol+maxCols; col++ {
			info := getCellInfo(m.ops, col, qubit)

			hl := hlNone
			if col == m.cursorCol && qubit == m.cursorQubit && (m.focus == focusCircuit || m.focus == focusSelectTarget || m.focus == focusSelectControls || m.focus == focusMenu) {
				hl = hlCursor
			} else if col == m.cursorCol && qubit == m.targetQubit && (m.focus == focusSelectTarget || m.focus == focusSelectControls) {
				hl = hlTargetSelect
			}

			top, mid, bot := renderCell(info, hl)
			topLine += top
			midLine += mid
			botLine += bot
		}

		sb.WriteString(topLine + "\n")
		sb.WriteString(midLine + "\n")
		sb.WriteString(botLine + "\n")
	}

	// ── Classical register wire (single line) ──
	if hasMeasurements(m.ops) {
		// Separator line between quantum and classical wires
		sepLine := strings.Repeat(" ", labelVisualW)
		halfW := cellW / 2
		for col := startCol; col < startCol+maxCols; col++ {
			if measureAtCol(m.ops, col) >= 0 {
				sepLine += strings.Repeat(" ", halfW) + cbitConnectorStyle.Render("║") + strings.Repeat(" ", cellW-halfW-1)
			} else {
				sepLine += strings.Repeat(" ", cellW)
			}
		}
		sb.WriteString(sepLine + "\n")

		// Single classical wire showing width and measurement landing points
		label := fmt.Sprintf("c%d", m.program.numQubits)
		cbitLine := cbitLabelStyle.Render(fmt.Sprintf("%-5s", label)) + cbitWireStyle.Render("══")

		for col := startCol; col < startCol+maxCols; col++ {
			if q := measureAtCol(m.ops, col); q >= 0 {
				// Show ╩ with the register cell index next to it
				bitLabel := fmt.Sprintf("%d", q)
				dashL := (cellW - 1) / 2
				dashR := max(cellW-dashL-1-len(bitLabel), 0)
				cbitLine += cbitWireStyle.Render(strings.Repeat("═", dashL)) +
					cbitConnectorStyle.Render("╩"+bitLabel) +
					cbitWireStyle.Render(strings.Repeat("═", dashR))
			} else {
				cbitLine += cbitWireStyle.Render(strings.Repeat("═", cellW))
			}
		}
		sb.WriteString(cbitLine + "\n")
	}

	// Status line
	if m.focus == focusSelectTarget || m.focus == focusSelectControls {
		prompt := "Select target qubit: "
		if m.focus == focusSelectControls {
			prompt = "Select control qubit: "
		}
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "  %s", activeGateStyle.Render(m.pendingGate))
		sb.WriteString("  " + prompt)
		fmt.Fprintf(&sb, "%s", targetSelectStyle.Render(fmt.Sprintf("q[%d]", m.targetQubit)))
		sb.WriteString(dimStyle.Render("   ↑↓ Move  Enter Confirm  Esc Cancel"))
	} else {
		fmt.Fprintf(&sb, "\n  Position: Column %d, Qubit %d", m.cursorCol, m.cursorQubit)
		if info := getCellInfo(m.ops, m.cursorCol, m.cursorQubit); info.op != nil && len(info.op.Params) > 0 {
			angles := make([]string, len(info.op.Params))
			for i, p := range info.op.Params {
				angles[i] = formatParam(p)
			}
			fmt.Fprintf(&sb, "  │  %s(%s)", info.op.Name, strings.Join(angles, ", "))
		}
		if m.statusMsg != "" {
			fmt.Fprintf(&sb, "  │  %s", activeGateStyle.Render(m.statusMsg))
		}
	}

	return circuitStyle.Width(width).Height(height).Render(sb.String())
}

// renderResultsPanel renders the shot-results panel.
func (m Model) renderResultsPanel(width, height int) string {
	var sb strings.Builder

	title := "Results"
	if m.focus == focusShots {
		title += " [SHOTS]"
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")

	switch {
	case m.focus == focusShots:
		sb.WriteString("Shots: " + m.shotsInput.View() + "\n\n")
		sb.WriteString(dimStyle.Render("⏎ Run  Esc Cancel"))

	case m.summary != nil && m.summary.errMsg != "":
		fmt.Fprintf(&sb, "%d shots\n\n", m.summary.shots)
		sb.WriteString(activeGateStyle.Render("Error: " + m.summary.errMsg))

	case m.summary != nil:
		fmt.Fprintf(&sb, "%d shots\n\n", m.summary.shots)

		maxCount := 1
		for _, key := range m.summary.order {
			maxCount = max(maxCount, m.summary.counts[key])
		}
		barAvail := max(width-len("|>")-m.program.numQubits-18, 4)

		for _, key := range m.summary.order {
			n := m.summary.counts[key]
			barW := max(n*barAvail/maxCount, 1)
			pct := 100 * float64(n) / float64(m.summary.shots)
			fmt.Fprintf(&sb, "%s %6d %5.1f%% %s\n",
				qubitLabelStyle.Render(key), n, pct,
				barStyle.Render(strings.Repeat("█", barW)))
		}

	default:
		sb.WriteString(dimStyle.Render("Press r to run the circuit."))
		if !hasMeasurements(m.ops) {
			sb.WriteString("\n")
			sb.WriteString(dimStyle.Render("Add a measurement to read qubits out."))
		}
	}

	return resultsStyle.Width(width).Height(height).Render(sb.String())
}

// renderControlsPanel renders the bottom help/controls bar.
func (m Model) renderControlsPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(activeGateStyle.Render("Navigate: "))
	sb.WriteString("↑↓/jk Move qubit  ←→/hl Move column  +/- Qubits")
	sb.WriteString("    ")
	sb.WriteString(activeGateStyle.Render("a"))
	sb.WriteString(" Add gate\n")

	sb.WriteString(activeGateStyle.Render("Actions:  "))
	sb.WriteString("r Run shots  Bksp Delete  ^R Clear  q/^C Quit")

	return controlsStyle.Width(width).Height(height).Render(sb.String())
}

// renderParamInput renders the parameter input overlay.
func (m Model) renderParamInput() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Enter Parameter"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Value: %s_", m.paramInput))
	sb.WriteString("\n\n")
	sb.WriteString(dimStyle.Render("Examples: pi/2, 3*pi/4, 1.57"))
	return menuBorderStyle.Render(sb.String())
}

// ──────────────────────────── Overlay helpers ────────────────────────────

// overlayAt composites the overlay string on top of the background at position (x, y).
// It handles ANSI escape sequences by tracking visible column positions.
func overlayAt(bg, overlay string, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	ovLines := strings.Split(overlay, "\n")

	for i, ovLine := range ovLines {
		bgIdx := y + i
		if bgIdx < 0 || bgIdx >= len(bgLines) {
			continue
		}
		bgLines[bgIdx] = spliceLineAt(bgLines[bgIdx], ovLine, x)
	}
	return strings.Join(bgLines, "\n")
}

// spliceLineAt replaces visible columns starting at position x in bgLine with overlay content.
// It properly handles ANSI escape sequences in the background line.
func spliceLineAt(bgLine, overlay string, x int) string {
	runes := []rune(bgLine)
	ovWidth := visibleLen(overlay)

	var prefix strings.Builder
	var suffix strings.Builder

	col := 0
	i := 0
	inEsc := false

	// Collect prefix: everything up to visible column x
	for i < len(runes) && col < x {
		if runes[i] == '\x1b' {
			inEsc = true
			for i < len(runes) {
				prefix.WriteRune(runes[i])
				if inEsc && runes[i] != '\x1b' && runes[i] != '[' && ((runes[i] >= 'A' && runes[i] <= 'Z') || (runes[i] >= 'a' && runes[i] <= 'z')) {
					inEsc = false
					i++
					break
				}
				i++
			}
		} else {
			prefix.WriteRune(runes[i])
			col++
			i++
		}
	}

	// Pad prefix if bg line is shorter than x
	for col < x {
		prefix.WriteRune(' ')
		col++
	}

	// Skip over ovWidth visible columns in the background
	skipped := 0
	for i < len(runes) && skipped < ovWidth {
		if runes[i] == '\x1b' {
			for i < len(runes) {
				i++
				if i > 0 && runes[i-1] != '\x1b' && runes[i-1] != '[' && ((runes[i-1] >= 'A' && runes[i-1] <= 'Z') || (runes[i-1] >= 'a' && runes[i-1] <= 'z')) {
					break
				}
			}
		} else {
			skipped++
			i++
		}
	}

	// Collect suffix: rest of the background line
	for i < len(runes) {
		suffix.WriteRune(runes[i])
		i++
	}

	return prefix.String() + overlay + suffix.String()
}

// visibleLen returns the number of visible (non-ANSI-escape) characters in a string.
func visibleLen(s string) int {
	n := 0
	inEsc := false
	for _, r := range s {
		if r == '\x1b' {
			inEsc = true
			continue
		}
		if inEsc {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEsc = false
			}
			continue
		}
		n++
	}
	return n
}
