package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/edcourse/internal/core"
)

func promptTitle(md mode) string {
	switch md {
	case modeAddLabel:
		return "Patient label (e.g., B12 – 81M SBO):"
	case modeAddRoom:
		return "Room/Bed (optional):"
	case modeRenameLabel:
		return "Edit patient label:"
	case modeRenameRoom:
		return "Edit room/bed (optional):"
	default:
		return ""
	}
}

func (m *AppModel) openPrompt(md mode, value, placeholder string) tea.Cmd {
	m.mode = md
	m.prompt.Reset()
	m.prompt.Placeholder = placeholder
	m.prompt.SetValue(value)
	m.prompt.CursorEnd()
	m.entry.Blur()

	return m.prompt.Focus()
}

func (m *AppModel) closePrompt() {
	m.mode = modeNormal
	m.prompt.Blur()
	m.prompt.Reset()

	if m.focus == focusEntry {
		m.entry.Focus()
	}
}

func (m AppModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submitPrompt(m.prompt.Value())
	case "esc":
		return m.cancelPrompt()
	}

	var cmd tea.Cmd

	m.prompt, cmd = m.prompt.Update(msg)

	return m, cmd
}

func (m AppModel) submitPrompt(value string) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeAddLabel:
		label := strings.TrimSpace(value)
		if label == "" {
			m.closePrompt()

			return m, nil
		}

		m.pendingLabel = label

		cmd := m.openPrompt(modeAddRoom, "", "e.g., 12")

		return m, cmd

	case modeAddRoom:
		return m.finishAdd(value)

	case modeRenameLabel:
		p, ok := m.tracker.Selected()
		if !ok || p.ID != m.pendingID {
			m.closePrompt()

			return m, nil
		}

		m.pendingLabel = value

		cmd := m.openPrompt(modeRenameRoom, p.Room, "")

		return m, cmd

	case modeRenameRoom:
		return m.finishRename(value)
	}

	m.closePrompt()

	return m, nil
}

// cancelPrompt mirrors a dismissed dialog: the first step aborts, a
// dismissed room step proceeds with an empty room.
func (m AppModel) cancelPrompt() (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeAddRoom:
		return m.finishAdd("")
	case modeRenameRoom:
		return m.finishRename("")
	}

	m.closePrompt()

	return m, nil
}

func (m AppModel) finishAdd(room string) (tea.Model, tea.Cmd) {
	m.closePrompt()

	if _, err := m.tracker.AddPatient(m.pendingLabel, room); err != nil {
		cmd := m.setStatus(core.StatusMessage(err))

		return m, cmd
	}

	m.pendingLabel = ""
	m.refresh()
	m.patients.Select(m.view.SelectedIndex)

	return m, nil
}

func (m AppModel) finishRename(room string) (tea.Model, tea.Cmd) {
	m.closePrompt()

	err := m.tracker.RenamePatient(m.pendingID, m.pendingLabel, room)
	m.pendingID, m.pendingLabel = "", ""

	if err != nil {
		cmd := m.setStatus(core.StatusMessage(err))

		return m, cmd
	}

	m.refresh()

	return m, nil
}

func (m AppModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.pendingID
	m.mode = modeNormal
	m.pendingID, m.pendingLabel = "", ""

	switch msg.String() {
	case "y", "Y":
		if err := m.tracker.DeletePatient(id); err != nil {
			cmd := m.setStatus(core.StatusMessage(err))

			return m, cmd
		}

		m.refresh()

		if m.view.SelectedIndex >= 0 {
			m.patients.Select(m.view.SelectedIndex)
		}
	}

	return m, nil
}
