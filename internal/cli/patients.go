package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/edcourse/internal/core"
)

// PatientItem is a patient row in the sidebar list.
type PatientItem struct {
	row core.PatientRow
}

func (i PatientItem) FilterValue() string { return i.row.Label }

// ID returns the patient id behind the row.
func (i PatientItem) ID() string { return i.row.ID }

type patientDelegate struct{}

func (d patientDelegate) Height() int                             { return 1 }
func (d patientDelegate) Spacing() int                            { return 0 }
func (d patientDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d patientDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(PatientItem)
	if !ok {
		return
	}

	marker := "  "
	if i.row.Selected {
		marker = "● "
	}

	label := i.row.Label
	if i.row.Selected {
		label = rowSelectedStyle.Render(label)
	}

	var b strings.Builder

	b.WriteString(marker)
	b.WriteString(label)

	if i.row.Room != "" {
		b.WriteString(" ")
		b.WriteString(rowRoomStyle.Render("[" + i.row.Room + "]"))
	}

	if i.row.Age != "" {
		b.WriteString(" ")
		b.WriteString(rowRoomStyle.Render(i.row.Age))
	}

	str := b.String()

	if index == m.Index() {
		_, _ = fmt.Fprint(w, rowCursorStyle.Render("> ")+str)
		return
	}

	_, _ = fmt.Fprint(w, rowStyle.Render(str))
}

func newPatientList(width, height int) list.Model {
	l := list.New(nil, patientDelegate{}, width, height)
	l.Title = "Patients"
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return l
}

func patientItems(rows []core.PatientRow) []list.Item {
	items := make([]list.Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, PatientItem{row: r})
	}

	return items
}
