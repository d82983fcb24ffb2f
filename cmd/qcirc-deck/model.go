package main

import (
	"runtime"
	"slices"
	"sort"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qcirc"
)

// focus represents which panel/mode has keyboard input.
type focus int

const (
	focusCircuit focus = iota
	focusMenu
	focusSelectTarget
	focusSelectControls
	focusInputParam
	focusShots
)

// runSummary aggregates the shot results of one execution.
type runSummary struct {
	shots  int
	counts map[string]int
	order  []string // count-descending ket strings
	errMsg string
}

// Model represents the TUI application state.
type Model struct {
	program *program // editable gate list, single source of truth
	ops     []qcirc.Op
	columns int

	cursorQubit int
	cursorCol   int
	width       int
	height      int
	focus       focus
	statusMsg   string

	// Menu state
	menuCat  int
	menuItem int

	// Target-selection state (for multi-qubit gates)
	pendingGate   string
	targetQubit   int
	paramInput    string
	controlQubits []int

	// Shot execution
	shotsInput textinput.Model
	summary    *runSummary
}

func initialModel() Model {
	ti := textinput.New()
	ti.Placeholder = "1024"
	ti.CharLimit = 7
	ti.Width = 10

	m := Model{
		program:    newProgram(4),
		shotsInput: ti,
		focus:      focusCircuit,
	}
	m.sync()
	return m
}

// sync refreshes the rendered op list after any program change.
func (m *Model) sync() {
	m.ops = m.program.circuit.Ops()
	m.columns = m.program.circuit.Columns()
}

// placeGate appends the pending gate to the program. The cursor qubit is
// the control (or first swap leg) for multi-qubit gates; targetQ is the
// selected target, -1 for single-qubit placement.
func (m *Model) placeGate(gateType string, targetQ int) bool {
	spec := gateSpec{Type: gateType, Target: m.cursorQubit, Other: -1}

	switch gateType {
	case "CX", "CY", "CZ", "CP", "CRX", "CRY", "CRZ", "CU":
		spec.Target = targetQ
		spec.Controls = []int{m.cursorQubit}
	case "CCX":
		spec.Type = "CX"
		spec.Target = targetQ
		spec.Controls = append([]int{m.cursorQubit}, m.controlQubits...)
	case "SWAP":
		spec.Other = targetQ
	case "BARRIER":
		spec.Target = -1
	}

	if len(m.paramInput) > 0 {
		spec.Params = parseParams(m.paramInput)
	}

	err := m.program.append(spec)

	m.paramInput = ""
	m.controlQubits = nil
	m.pendingGate = ""

	if err != nil {
		m.statusMsg = err.Error()
		return false
	}

	m.sync()
	m.cursorCol = m.ops[len(m.ops)-1].Step
	m.summary = nil
	return true
}

// deleteAtCursor removes the op under the cursor, if any.
func (m *Model) deleteAtCursor() {
	for i, op := range m.ops {
		if op.Step != m.cursorCol {
			continue
		}
		if op.Kind == qcirc.OpBarrier || op.References(m.cursorQubit) {
			m.program.remove(i)
			m.sync()
			m.summary = nil
			return
		}
	}
}

// runShots executes the program and aggregates outcome counts.
func (m *Model) runShots(shots int) {
	results, err := m.program.circuit.Run(shots, qcirc.WithWorkers(runtime.NumCPU()))
	if err != nil {
		m.summary = &runSummary{shots: shots, errMsg: err.Error()}
		return
	}

	counts := make(map[string]int)
	for _, r := range results {
		counts[r.String()]++
	}
	order := make([]string, 0, len(counts))
	for key := range counts {
		order = append(order, key)
	}
	sort.Slice(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return order[i] < order[j]
	})

	m.summary = &runSummary{shots: shots, counts: counts, order: order}
}

// ──────────────────────────── Init / Update ────────────────────────────

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		key := msg.String()
		m.statusMsg = ""

		if key == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.focus {
		case focusCircuit:
			switch key {
			case "q":
				return m, tea.Quit
			case "up", "k":
				if m.cursorQubit > 0 {
					m.cursorQubit--
				}
			case "down", "j":
				if m.cursorQubit < m.program.numQubits-1 {
					m.cursorQubit++
				}
			case "left", "h":
				if m.cursorCol > 0 {
					m.cursorCol--
				}
			case "right", "l":
				if m.cursorCol < max(m.columns-1, 0) {
					m.cursorCol++
				}
			case "+", "=":
				if err := m.program.resize(m.program.numQubits + 1); err != nil {
					m.statusMsg = err.Error()
					break
				}
				m.sync()
				m.summary = nil
			case "-":
				if m.program.numQubits > 1 {
					m.program.resize(m.program.numQubits - 1)
					m.cursorQubit = min(m.cursorQubit, m.program.numQubits-1)
					m.sync()
					m.summary = nil
				}
			case "a":
				m.focus = focusMenu
				m.menuCat = 0
				m.menuItem = 0
			case "backspace", "delete":
				m.deleteAtCursor()
			case "ctrl+r":
				m.program.clear()
				m.cursorCol = 0
				m.sync()
				m.summary = nil
			case "r":
				m.shotsInput.SetValue("")
				m.shotsInput.Focus()
				m.focus = focusShots
			}

		case focusMenu:
			switch key {
			case "esc":
				m.focus = focusCircuit
			case "up", "k":
				if m.menuItem > 0 {
					m.menuItem--
				}
			case "down", "j":
				cat := gateMenu[m.menuCat]
				if m.menuItem < len(cat.items)-1 {
					m.menuItem++
				}
			case "left", "h":
				if m.menuCat > 0 {
					m.menuCat--
					m.menuItem = 0
				}
			case "right", "l":
				if m.menuCat < len(gateMenu)-1 {
					m.menuCat++
					m.menuItem = 0
				}
			case "enter":
				item := gateMenu[m.menuCat].items[m.menuItem]
				m.pendingGate = item.gateType

				if isParameterizedGate(item.gateType) {
					m.paramInput = ""
					m.focus = focusInputParam
					break
				}

				if item.gateType == "CCX" {
					if m.program.numQubits < 3 {
						break
					}
					m.controlQubits = nil
					m.focus = focusSelectControls
					m.targetQubit = m.nextFreeQubit()
					break
				}

				if item.needsTarget {
					if m.program.numQubits < 2 {
						break
					}
					m.focus = focusSelectTarget
					m.targetQubit = m.nextFreeQubit()
				} else {
					if m.placeGate(item.gateType, -1) {
						m.focus = focusCircuit
					}
				}
			}

		case focusSelectTarget:
			switch key {
			case "esc":
				m.cancelPlacement()
			case "up", "k":
				for next := m.targetQubit - 1; next >= 0; next-- {
					if next != m.cursorQubit && !slices.Contains(m.controlQubits, next) {
						m.targetQubit = next
						break
					}
				}
			case "down", "j":
				for next := m.targetQubit + 1; next < m.program.numQubits; next++ {
					if next != m.cursorQubit && !slices.Contains(m.controlQubits, next) {
						m.targetQubit = next
						break
					}
				}
			case "enter":
				if m.placeGate(m.pendingGate, m.targetQubit) {
					m.focus = focusCircuit
				}
			}

		case focusSelectControls:
			switch key {
			case "esc":
				m.cancelPlacement()
			case "up", "k":
				for next := m.targetQubit - 1; next >= 0; next-- {
					if next != m.cursorQubit {
						m.targetQubit = next
						break
					}
				}
			case "down", "j":
				for next := m.targetQubit + 1; next < m.program.numQubits; next++ {
					if next != m.cursorQubit {
						m.targetQubit = next
						break
					}
				}
			case "enter":
				m.controlQubits = append(m.controlQubits, m.targetQubit)
				m.focus = focusSelectTarget
				m.targetQubit = m.nextFreeQubit()
			}

		case focusInputParam:
			switch key {
			case "esc":
				m.cancelPlacement()
			case "backspace":
				if len(m.paramInput) > 0 {
					m.paramInput = m.paramInput[:len(m.paramInput)-1]
				}
			case "enter":
				if m.paramInput != "" && parseParams(m.paramInput) == nil {
					m.statusMsg = "Invalid parameter: use numbers or pi expressions (e.g. pi/2, 3*pi/4)"
					break
				}
				item := gateMenu[m.menuCat].items[m.menuItem]
				if item.needsTarget {
					if m.program.numQubits < 2 {
						break
					}
					m.focus = focusSelectTarget
					m.targetQubit = m.nextFreeQubit()
				} else {
					if m.placeGate(m.pendingGate, -1) {
						m.focus = focusCircuit
					}
				}
			default:
				if len(key) == 1 {
					ch := key[0]
					if (ch >= '0' && ch <= '9') || ch == '.' || ch == ',' || ch == '-' || ch == 'e' || ch == 'E' || ch == '+' ||
						ch == 'p' || ch == 'i' || ch == '*' || ch == '/' {
						m.paramInput += key
					}
				}
			}

		case focusShots:
			switch key {
			case "esc":
				m.shotsInput.Blur()
				m.focus = focusCircuit
			case "enter":
				shots, err := strconv.Atoi(m.shotsInput.Value())
				if m.shotsInput.Value() == "" {
					shots, err = 1024, nil
				}
				if err != nil || shots < 1 {
					m.statusMsg = "Shots must be a positive integer"
					break
				}
				m.runShots(shots)
				m.shotsInput.Blur()
				m.focus = focusCircuit
			default:
				var cmd tea.Cmd
				m.shotsInput, cmd = m.shotsInput.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// nextFreeQubit picks an initial target-selection qubit distinct from the
// cursor and any already-chosen controls.
func (m *Model) nextFreeQubit() int {
	for q := 0; q < m.program.numQubits; q++ {
		if q != m.cursorQubit && !slices.Contains(m.controlQubits, q) {
			return q
		}
	}
	return 0
}

func (m *Model) cancelPlacement() {
	m.focus = focusCircuit
	m.paramInput = ""
	m.controlQubits = nil
	m.pendingGate = ""
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	resultsWidth := m.width / 3
	circuitWidth := m.width - resultsWidth - 4
	controlsHeight := 6
	circuitHeight := max(m.height-controlsHeight-2, 6)

	circuitPanel := m.renderCircuitPanel(circuitWidth, circuitHeight)
	resultsPanel := m.renderResultsPanel(resultsWidth, circuitHeight)
	controlsPanel := m.renderControlsPanel(m.width-4, controlsHeight-2)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, circuitPanel, resultsPanel)
	frame := lipgloss.JoinVertical(lipgloss.Left, topRow, controlsPanel)

	if m.focus == focusMenu {
		frame = overlayAt(frame, m.renderMenu(), 2, 2)
	}
	if m.focus == focusInputParam {
		frame = overlayAt(frame, m.renderParamInput(), 2, 2)
	}

	return frame
}
