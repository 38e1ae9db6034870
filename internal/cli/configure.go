package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/edcourse/internal/model"
	"github.com/inovacc/edcourse/internal/store"
)

const fmtV1 = " %s\n %s\n\n"

var (
	focusedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle        = focusedStyle
	noStyle            = lipgloss.NewStyle()
	helpStyleConfigure = blurredStyle

	focusedButton = focusedStyle.Render("[ Submit ]")
	blurredButton = fmt.Sprintf("[ %s ]", blurredStyle.Render("Submit"))
)

const (
	inputClipboard = iota
	inputStatusTimeout
	inputLogLevel
	inputCount
)

type ConfigureModel struct {
	focusIndex int
	inputs     []textinput.Model
	db         store.Store
	Saved      bool
	Err        error
}

func NewConfigureModel(db store.Store) (ConfigureModel, error) {
	// Load existing config or defaults
	cfg, err := db.GetConfig()
	if err != nil {
		return ConfigureModel{}, err
	}

	m := ConfigureModel{
		inputs: make([]textinput.Model, inputCount),
		db:     db,
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 32

		switch i {
		case inputClipboard:
			t.Placeholder = "auto, system or osc52"
			t.SetValue(string(cfg.Clipboard))
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		case inputStatusTimeout:
			t.Placeholder = "2000"
			t.CharLimit = 6
			t.SetValue(strconv.Itoa(cfg.StatusTimeoutMs))
		case inputLogLevel:
			t.Placeholder = "debug, info, warn or error"
			t.SetValue(cfg.LogLevel)
		}

		m.inputs[i] = t
	}

	return m, nil
}

func (m *ConfigureModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ConfigureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case successMsg:
		m.Saved = true
		return m, tea.Quit
	case errMsg:
		m.Err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				return m, m.saveConfig
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			cmds := make([]tea.Cmd, len(m.inputs))
			for i := range m.inputs {
				if i == m.focusIndex {
					cmds[i] = m.inputs[i].Focus()
					m.inputs[i].PromptStyle = focusedStyle
					m.inputs[i].TextStyle = focusedStyle

					continue
				}

				m.inputs[i].Blur()
				m.inputs[i].PromptStyle = noStyle
				m.inputs[i].TextStyle = noStyle
			}

			return m, tea.Batch(cmds...)
		}
	}

	cmd := m.updateInputs(msg)

	return m, cmd
}

func (m *ConfigureModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	// Only the focused input reacts to keys.
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

func (m *ConfigureModel) View() string {
	if m.Saved {
		return lipgloss.NewStyle().
			Foreground(okColor).
			Render("\n  ✓ Configuration saved successfully!\n\n")
	}

	if m.Err != nil {
		return lipgloss.NewStyle().
			Foreground(errColor).
			Render(fmt.Sprintf("\n  ✗ Error: %v\n\n", m.Err))
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(accentColor)

	s := headerStyle.Render("Configure ED Course Helper") + "\n"
	s += blurredStyle.Render("Edit the fields below and press Tab to navigate") + "\n\n"
	s += fmt.Sprintf(fmtV1, blurredStyle.Render("Clipboard (auto, system, osc52):"), m.inputs[inputClipboard].View())
	s += fmt.Sprintf(fmtV1, blurredStyle.Render("Status message timeout (ms):"), m.inputs[inputStatusTimeout].View())
	s += fmt.Sprintf(fmtV1, blurredStyle.Render("Log level:"), m.inputs[inputLogLevel].View())

	button := &blurredButton
	if m.focusIndex == len(m.inputs) {
		button = &focusedButton
	}

	s += fmt.Sprintf("\n\n %s\n\n", *button)
	s += helpStyleConfigure.Render(" tab/shift+tab: navigate • enter: submit • esc: quit")

	return s
}

func (m *ConfigureModel) config() (*model.Config, error) {
	mode, err := model.ParseClipboardMode(strings.TrimSpace(m.inputs[inputClipboard].Value()))
	if err != nil {
		return nil, err
	}

	timeout, err := strconv.Atoi(strings.TrimSpace(m.inputs[inputStatusTimeout].Value()))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid status timeout %q", m.inputs[inputStatusTimeout].Value())
	}

	level := strings.ToLower(strings.TrimSpace(m.inputs[inputLogLevel].Value()))
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	return &model.Config{
		Clipboard:       mode,
		StatusTimeoutMs: timeout,
		LogLevel:        level,
	}, nil
}

func (m *ConfigureModel) saveConfig() tea.Msg {
	cfg, err := m.config()
	if err != nil {
		return errMsg{err}
	}

	if err := m.db.SaveConfig(cfg); err != nil {
		return errMsg{err}
	}

	return successMsg{}
}

type successMsg struct{}
type errMsg struct{ err error }
