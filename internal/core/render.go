package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/inovacc/edcourse/internal/application"
	"github.com/inovacc/edcourse/internal/model"
)

// Empty-state and placeholder text.
const (
	EmptyPatients    = "No patients yet. Add one to start."
	EmptyNoSelection = "Select a patient to view their ED course entries."
	EmptyNoEntries   = "No entries yet for this patient."
	NoPatientTitle   = "No patient selected"
	untitledRow      = "Untitled"
	untitledHeader   = "Untitled patient"
)

// RenderOptions carries the inputs a render needs besides the state.
type RenderOptions struct {
	// Location is the zone timestamps are shown in (time.Local when nil)
	Location *time.Location

	// Now anchors relative ages; zero hides them
	Now time.Time
}

// PatientRow is one line of the patient list.
type PatientRow struct {
	ID       string
	Label    string
	Room     string
	Age      string
	Selected bool
}

// EntryRow is one rendered course entry.
type EntryRow struct {
	Timestamp string
	Text      string
	Line      string
}

// Header describes the selected patient.
type Header struct {
	Title      string
	Meta       string
	HasPatient bool
}

// StatusBar holds the live counters.
type StatusBar struct {
	PatientCount int
	EntryCount   int
	Patients     string
	Entries      string
}

// Controls reports which actions are available.
type Controls struct {
	AddEntry  bool
	Copy      bool
	Rename    bool
	Delete    bool
	Use24Hour bool
}

// View is the complete on-screen projection of a State.
type View struct {
	Patients      []PatientRow
	PatientsEmpty string
	SelectedIndex int

	Entries      []EntryRow
	EntriesEmpty string

	Header   Header
	Status   StatusBar
	Controls Controls
}

// Render projects state into a View. It has no side effects and is re-run
// in full after every mutation.
func Render(state model.State, opts RenderOptions) View {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	selected := state.Selected()

	v := View{SelectedIndex: -1}

	for i, p := range state.Patients {
		row := PatientRow{
			ID:       p.ID,
			Label:    orDefault(p.Label, untitledRow),
			Room:     p.Room,
			Selected: selected != nil && p.ID == selected.ID,
		}

		if !opts.Now.IsZero() && p.CreatedAt > 0 {
			row.Age = humanize.RelTime(time.UnixMilli(p.CreatedAt), opts.Now, "ago", "from now")
		}

		if row.Selected {
			v.SelectedIndex = i
		}

		v.Patients = append(v.Patients, row)
	}

	if len(state.Patients) == 0 {
		v.PatientsEmpty = EmptyPatients
	}

	switch {
	case selected == nil:
		v.EntriesEmpty = EmptyNoSelection
	case len(selected.Entries) == 0:
		v.EntriesEmpty = EmptyNoEntries
	default:
		for _, e := range selected.SortedEntries() {
			ts := formatMillis(e.Timestamp, state.Use24Hour, loc)
			v.Entries = append(v.Entries, EntryRow{
				Timestamp: ts,
				Text:      e.Text,
				Line:      ts + " – " + e.Text,
			})
		}
	}

	v.Header = renderHeader(selected, state.Use24Hour, loc)

	patients, entries := len(state.Patients), state.EntryCount()
	v.Status = StatusBar{
		PatientCount: patients,
		EntryCount:   entries,
		Patients:     pluralize(patients, "patient", "patients"),
		Entries:      pluralize(entries, "entry", "entries"),
	}

	enabled := selected != nil
	v.Controls = Controls{
		AddEntry:  enabled,
		Copy:      enabled,
		Rename:    enabled,
		Delete:    enabled,
		Use24Hour: state.Use24Hour,
	}

	return v
}

func renderHeader(p *model.Patient, use24Hour bool, loc *time.Location) Header {
	if p == nil {
		return Header{Title: NoPatientTitle}
	}

	var parts []string
	if p.Room != "" {
		parts = append(parts, "Room/Bed: "+p.Room)
	}

	if p.CreatedAt != 0 {
		parts = append(parts, "Created: "+formatMillis(p.CreatedAt, use24Hour, loc))
	}

	return Header{
		Title:      orDefault(p.Label, untitledHeader),
		Meta:       strings.Join(parts, " • "),
		HasPatient: true,
	}
}

// Text renders the view as plain text for non-interactive output.
func (v View) Text() string {
	var b strings.Builder

	b.WriteString(application.AppTitle + "\n\nPatients\n")

	if v.PatientsEmpty != "" {
		b.WriteString("  " + v.PatientsEmpty + "\n")
	}

	for i, p := range v.Patients {
		marker := " "
		if p.Selected {
			marker = "*"
		}

		line := fmt.Sprintf("%s %d. %s", marker, i+1, p.Label)
		if p.Room != "" {
			line += " [" + p.Room + "]"
		}

		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + v.Header.Title + "\n")

	if v.Header.Meta != "" {
		b.WriteString(v.Header.Meta + "\n")
	}

	b.WriteString("\nEntries (oldest at top)\n")

	if v.EntriesEmpty != "" {
		b.WriteString("  " + v.EntriesEmpty + "\n")
	}

	for _, e := range v.Entries {
		b.WriteString("  " + e.Line + "\n")
	}

	format := "12-hour"
	if v.Controls.Use24Hour {
		format = "24-hour"
	}

	fmt.Fprintf(&b, "\n%s · %s · %s time\n", v.Status.Patients, v.Status.Entries, format)

	return b.String()
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}

	return fmt.Sprintf("%d %s", n, plural)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}

	return s
}
