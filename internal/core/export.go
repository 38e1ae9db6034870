package core

import (
	"log/slog"
	"strings"
	"time"

	"github.com/inovacc/edcourse/internal/model"
)

// CourseText builds the plain-text course summary: the label on the first
// line (when set) followed by one "<timestamp> - <text>" line per entry in
// timestamp order.
func CourseText(p model.Patient, use24Hour bool, loc *time.Location) string {
	entries := p.SortedEntries()
	lines := make([]string, 0, len(entries))

	for _, e := range entries {
		lines = append(lines, formatMillis(e.Timestamp, use24Hour, loc)+" - "+e.Text)
	}

	header := ""
	if p.Label != "" {
		header = p.Label + "\n"
	}

	return header + strings.Join(lines, "\n")
}

// Course returns the course text for a patient without touching the
// clipboard. It fails the same way ExportCourse does before copying.
func (t *Tracker) Course(patientID string) (string, error) {
	if patientID == "" {
		return "", ErrNoPatientSelected
	}

	p, _ := t.state.Find(patientID)
	if p == nil {
		return "", ErrPatientNotFound
	}

	if len(p.Entries) == 0 {
		return "", ErrNoEntries
	}

	return CourseText(*p, t.state.Use24Hour, t.loc), nil
}

// ExportCourse copies the patient's course to the clipboard and returns the
// copied text. A patient without entries returns ErrNoEntries without
// touching the clipboard.
func (t *Tracker) ExportCourse(patientID string) (string, error) {
	text, err := t.Course(patientID)
	if err != nil {
		return "", err
	}

	if t.clipboard == nil {
		return text, &ClipboardError{Err: ErrNoClipboard}
	}

	if err := t.clipboard.WriteAll(text); err != nil {
		t.logger.Error("clipboard failed", slog.Any("error", err))
		return text, &ClipboardError{Err: err}
	}

	t.logger.Debug("course copied", slog.String("patient", patientID), slog.Int("bytes", len(text)))

	return text, nil
}
