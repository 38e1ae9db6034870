package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/edcourse/internal/application"
	"github.com/inovacc/edcourse/internal/core"
	"github.com/inovacc/edcourse/internal/model"
)

const (
	defaultWidth  = 100
	defaultHeight = 30

	entryInputHeight = 3
)

type focusArea int

const (
	focusPatients focusArea = iota
	focusEntry
)

type mode int

const (
	modeNormal mode = iota
	modeAddLabel
	modeAddRoom
	modeRenameLabel
	modeRenameRoom
	modeConfirmDelete
)

// statusExpiredMsg clears the status line when seq still names the
// message that scheduled it.
type statusExpiredMsg struct{ seq int }

// AppModel is the full-screen course tracker.
type AppModel struct {
	tracker *core.Tracker
	view    core.View

	patients list.Model
	entry    textarea.Model
	entries  viewport.Model
	prompt   textinput.Model

	focus focusArea
	mode  mode

	// pendingLabel carries the label between the two steps of add and rename
	pendingLabel string
	// pendingID is the patient a rename or delete was started on
	pendingID string

	status        string
	statusSeq     int
	statusTimeout time.Duration

	width    int
	height   int
	quitting bool
}

// NewApp builds the TUI around tracker. A nil cfg uses the defaults.
func NewApp(tracker *core.Tracker, cfg *model.Config) AppModel {
	c := model.DefaultConfig()
	if cfg != nil {
		c = *cfg
		c.Normalize()
	}

	ta := textarea.New()
	ta.Placeholder = "e.g., 14:05 – Pt re-eval, VS stable, pain improved…"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(entryInputHeight)

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(accentColor)

	m := AppModel{
		tracker:       tracker,
		patients:      newPatientList(sidebarWidth-2, defaultHeight-4),
		entry:         ta,
		entries:       viewport.New(defaultWidth-sidebarWidth-6, 10),
		prompt:        ti,
		statusTimeout: time.Duration(c.StatusTimeoutMs) * time.Millisecond,
		width:         defaultWidth,
		height:        defaultHeight,
	}

	m.layout()
	m.refresh()

	if m.view.SelectedIndex >= 0 {
		m.patients.Select(m.view.SelectedIndex)
	}

	return m
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()

		return m, nil

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}

		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true

			return m, tea.Quit
		}

		switch m.mode {
		case modeNormal:
			if m.focus == focusEntry {
				return m.updateEntry(msg)
			}

			return m.updatePatients(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updatePrompt(msg)
		}
	}

	var cmd tea.Cmd

	switch {
	case m.mode != modeNormal && m.mode != modeConfirmDelete:
		m.prompt, cmd = m.prompt.Update(msg)
	case m.focus == focusEntry:
		m.entry, cmd = m.entry.Update(msg)
	}

	return m, cmd
}

func (m AppModel) updatePatients(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true

		return m, tea.Quit

	case "enter", " ":
		i, ok := m.patients.SelectedItem().(PatientItem)
		if !ok {
			return m, nil
		}

		if err := m.tracker.SelectPatient(i.ID()); err != nil {
			cmd := m.setStatus(core.StatusMessage(err))

			return m, cmd
		}

		m.refresh()

		return m, nil

	case "tab", "i", "e":
		if !m.view.Controls.AddEntry {
			return m, nil
		}

		m.focus = focusEntry

		cmd := m.entry.Focus()

		return m, cmd

	case "a", "n":
		m.pendingLabel = ""

		cmd := m.openPrompt(modeAddLabel, "", "e.g., B12 – 81M SBO")

		return m, cmd

	case "r":
		p, ok := m.tracker.Selected()
		if !ok {
			return m, nil
		}

		m.pendingID = p.ID

		cmd := m.openPrompt(modeRenameLabel, p.Label, "")

		return m, cmd

	case "d", "x", "delete":
		p, ok := m.tracker.Selected()
		if !ok {
			return m, nil
		}

		m.pendingID = p.ID
		m.pendingLabel = p.Label
		m.mode = modeConfirmDelete

		return m, nil

	case "c", "y":
		return m.copyCourse()

	case "t":
		m.tracker.SetUse24Hour(!m.view.Controls.Use24Hour)
		m.refresh()

		return m, nil

	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd

		m.entries, cmd = m.entries.Update(msg)

		return m, cmd
	}

	var cmd tea.Cmd

	m.patients, cmd = m.patients.Update(msg)

	return m, cmd
}

func (m AppModel) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s", "alt+enter":
		return m.addEntry()

	case "esc", "tab":
		m.focus = focusPatients
		m.entry.Blur()

		return m, nil
	}

	var cmd tea.Cmd

	m.entry, cmd = m.entry.Update(msg)

	return m, cmd
}

func (m AppModel) addEntry() (tea.Model, tea.Cmd) {
	if _, err := m.tracker.AddEntry(m.tracker.SelectedID(), m.entry.Value()); err != nil {
		cmd := m.setStatus(core.StatusMessage(err))

		return m, cmd
	}

	m.entry.Reset()
	m.refresh()
	m.entries.GotoBottom()

	cmd := m.setStatus(core.MsgEntryAdded)

	return m, cmd
}

func (m AppModel) copyCourse() (tea.Model, tea.Cmd) {
	if _, err := m.tracker.ExportCourse(m.tracker.SelectedID()); err != nil {
		cmd := m.setStatus(core.StatusMessage(err))

		return m, cmd
	}

	cmd := m.setStatus(core.MsgCopied)

	return m, cmd
}

// setStatus shows msg and schedules its removal. Empty messages are ignored.
func (m *AppModel) setStatus(msg string) tea.Cmd {
	if msg == "" {
		return nil
	}

	m.statusSeq++
	m.status = msg
	seq := m.statusSeq

	return tea.Tick(m.statusTimeout, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

// refresh re-renders everything from the tracker state.
func (m *AppModel) refresh() {
	m.view = m.tracker.View()

	cursor := m.patients.Index()
	_ = m.patients.SetItems(patientItems(m.view.Patients))

	switch {
	case len(m.view.Patients) == 0:
	case cursor >= len(m.view.Patients):
		m.patients.Select(len(m.view.Patients) - 1)
	default:
		m.patients.Select(cursor)
	}

	m.entries.SetContent(m.renderEntries())

	if !m.view.Controls.AddEntry && m.focus == focusEntry {
		m.focus = focusPatients
		m.entry.Blur()
	}
}

func (m *AppModel) layout() {
	mainWidth := max(m.width-sidebarWidth-6, 20)

	// header, subtitle, meta, actions, section titles, controls, status
	chrome := 12 + entryInputHeight

	m.patients.SetSize(sidebarWidth-2, max(m.height-4, 3))
	m.entry.SetWidth(mainWidth)
	m.entries.Width = mainWidth
	m.entries.Height = max(m.height-chrome, 3)
	m.prompt.Width = mainWidth - 4

	m.entries.SetContent(m.renderEntries())
}

func (m AppModel) renderEntries() string {
	if m.view.EntriesEmpty != "" {
		return emptyStyle.Render(m.view.EntriesEmpty)
	}

	wrap := lipgloss.NewStyle().Width(max(m.entries.Width, 10))
	lines := make([]string, 0, len(m.view.Entries))

	for _, e := range m.view.Entries {
		lines = append(lines, wrap.Render(timestampStyle.Render(e.Timestamp+" –")+" "+e.Text))
	}

	return strings.Join(lines, "\n")
}

func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), m.mainView())
}

func (m AppModel) sidebarView() string {
	style := sidebarStyle
	if m.focus == focusPatients && m.mode == modeNormal {
		style = sidebarFocusedStyle
	}

	body := appTitleStyle.Render("Patients") + "\n"
	if m.view.PatientsEmpty != "" {
		body += emptyStyle.Render(m.view.PatientsEmpty)
	} else {
		body += m.patients.View()
	}

	return style.Height(max(m.height-2, 3)).Render(body)
}

func (m AppModel) mainView() string {
	var b strings.Builder

	b.WriteString(appTitleStyle.Render(application.AppTitle) + "\n")
	b.WriteString(subtitleStyle.Render("Add a patient on the left, then log timestamped ED course updates here.") + "\n\n")

	b.WriteString(patientTitleStyle.Render(m.view.Header.Title) + "\n")
	if m.view.Header.Meta != "" {
		b.WriteString(patientMetaStyle.Render(m.view.Header.Meta))
	}

	b.WriteString("\n")
	b.WriteString(button("r", "Rename", m.view.Controls.Rename) + "  " + button("d", "Remove", m.view.Controls.Delete) + "\n")

	b.WriteString(sectionStyle.Render("New ED course entry") + "\n")

	switch m.mode {
	case modeNormal:
		b.WriteString(m.entry.View() + "\n")
	case modeConfirmDelete:
		b.WriteString(promptBoxStyle.Render(fmt.Sprintf("Remove patient %q and all their entries? [y/N]", m.pendingLabel)) + "\n")
	default:
		b.WriteString(promptBoxStyle.Render(promptTitle(m.mode)+"\n"+m.prompt.View()) + "\n")
	}

	check := "[ ]"
	if m.view.Controls.Use24Hour {
		check = "[x]"
	}

	b.WriteString(button("ctrl+s", "Add Entry", m.view.Controls.AddEntry) + "  " +
		mutedStyle.Render(check+" Use 24-hour time (t)") + "  " +
		button("c", "Copy ED Course", m.view.Controls.Copy) + "\n")

	b.WriteString(sectionStyle.Render("Entries (oldest at top)") + "\n")
	b.WriteString(m.entries.View() + "\n")

	b.WriteString(m.statusView())

	return mainStyle.Render(b.String())
}

func (m AppModel) statusView() string {
	counts := statusBarStyle.Render(m.view.Status.Patients + " · " + m.view.Status.Entries)
	if m.status != "" {
		counts += "  " + statusMsgStyle.Render(m.status)
	}

	var help string

	switch {
	case m.mode == modeConfirmDelete:
		help = "y: remove • n/esc: cancel"
	case m.mode != modeNormal:
		help = "enter: ok • esc: cancel"
	case m.focus == focusEntry:
		help = "ctrl+s: add entry • esc: back to patients"
	default:
		help = "a: add • enter: select • tab: write entry • c: copy • t: 12/24h • q: quit"
	}

	return counts + "\n" + keyHelpStyle.Render(help)
}

func button(key, label string, enabled bool) string {
	if !enabled {
		return buttonDisabledStyle.Render("[ " + label + " ]")
	}

	return buttonStyle.Render("[ "+label+" ]") + mutedStyle.Render(" "+key)
}

// Status returns the transient status message currently shown.
func (m AppModel) Status() string {
	return m.status
}

// Focused reports whether the entry editor has focus.
func (m AppModel) Focused() bool {
	return m.focus == focusEntry
}

// Prompting reports whether a modal prompt or confirmation is open.
func (m AppModel) Prompting() bool {
	return m.mode != modeNormal
}
