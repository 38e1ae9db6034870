package cli

import (
	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 34

var (
	accentColor = lipgloss.Color("205")
	mutedColor  = lipgloss.Color("240")
	okColor     = lipgloss.Color("42")
	errColor    = lipgloss.Color("196")

	appTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	subtitleStyle = lipgloss.NewStyle().Foreground(mutedColor)
	sectionStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
	mutedStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	emptyStyle    = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)

	sidebarStyle = lipgloss.NewStyle().
			Width(sidebarWidth).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	sidebarFocusedStyle = sidebarStyle.BorderForeground(accentColor)

	mainStyle = lipgloss.NewStyle().Padding(0, 2)

	patientTitleStyle = lipgloss.NewStyle().Bold(true)
	patientMetaStyle  = lipgloss.NewStyle().Foreground(mutedColor)

	rowStyle         = lipgloss.NewStyle().PaddingLeft(2)
	rowCursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	rowSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	rowRoomStyle     = lipgloss.NewStyle().Foreground(mutedColor)

	buttonStyle         = lipgloss.NewStyle().Foreground(accentColor)
	buttonDisabledStyle = lipgloss.NewStyle().Foreground(mutedColor).Strikethrough(true)

	timestampStyle = lipgloss.NewStyle().Bold(true)

	promptBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().Foreground(mutedColor)
	statusMsgStyle = lipgloss.NewStyle().Foreground(okColor)
	keyHelpStyle   = lipgloss.NewStyle().Foreground(mutedColor)
)
