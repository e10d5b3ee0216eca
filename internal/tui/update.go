package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages. Every path that mutates the answers
// ends in refresh, so the running estimate and the active step list
// are never stale.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	if m.editing {
		return m.updateInput(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.editing {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			m.stopEditing()
			return m, nil
		default:
			return m.updateInput(msg)
		}
	}

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "up", "k":
		m.moveCursor(-1)

	case "down", "j":
		m.moveCursor(1)

	case "left", "h":
		m.back()

	case "right", "l":
		if m.canAdvance() {
			m.advance()
		}

	case "enter", " ":
		m.activate()

	case "r":
		m.restart()
	}
	return m, nil
}

// updateInput feeds a message to the focused text field and commits
// its value immediately, recomputing the estimate on every keystroke.
func (m *Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	rows := m.rows()
	if m.cursor < len(rows) && rows[m.cursor].kind == rowInput {
		rows[m.cursor].set(m.input.Value())
		m.refresh()
	}
	return m, cmd
}

// moveCursor steps to the next selectable row in the given direction.
func (m *Model) moveCursor(delta int) {
	rows := m.rows()
	if len(rows) == 0 {
		return
	}
	pos := m.cursor
	for {
		pos += delta
		if pos < 0 || pos >= len(rows) {
			return
		}
		if rows[pos].selectable() {
			m.cursor = pos
			return
		}
	}
}

// activate runs the row under the cursor: options and checks toggle,
// inputs open for editing, actions fire.
func (m *Model) activate() {
	rows := m.rows()
	if m.cursor >= len(rows) {
		m.cursor = 0
		if len(rows) == 0 {
			return
		}
	}
	r := rows[m.cursor]
	switch r.kind {
	case rowOption, rowCheck, rowAction:
		if r.act != nil {
			r.act()
			m.refresh()
			m.clampCursor()
		}
	case rowInput:
		m.editing = true
		m.input.SetValue(r.get())
		m.input.CursorEnd()
		m.input.Focus()
	}
}

// clampCursor keeps the cursor on a selectable row after an action
// shrinks the screen (removing a slip, unchecking the last event).
func (m *Model) clampCursor() {
	rows := m.rows()
	if len(rows) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if !rows[m.cursor].selectable() {
		m.moveCursor(-1)
		if !rows[m.cursor].selectable() {
			m.moveCursor(1)
		}
	}
}
