package core

import (
	"strings"

	"github.com/inovacc/edcourse/internal/model"
)

// AddEntry appends a timestamped entry to the patient. Entries are kept in
// append order and sorted only when read.
func (t *Tracker) AddEntry(patientID, text string) (model.Entry, error) {
	if patientID == "" {
		return model.Entry{}, ErrNoPatientSelected
	}

	p, _ := t.state.Find(patientID)
	if p == nil {
		return model.Entry{}, ErrPatientNotFound
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return model.Entry{}, ErrEmptyEntry
	}

	e := model.Entry{Timestamp: t.nowMillis(), Text: text}
	p.Entries = append(p.Entries, e)
	t.persist()

	return e, nil
}
