package core

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/inovacc/edcourse/internal/model"
)

// AddPatient creates a patient and selects it. A label that is empty after
// trimming returns ErrEmptyLabel and changes nothing.
func (t *Tracker) AddPatient(label, room string) (model.Patient, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return model.Patient{}, ErrEmptyLabel
	}

	p := model.Patient{
		ID:        t.uniqueID(),
		Label:     label,
		Room:      strings.TrimSpace(room),
		CreatedAt: t.nowMillis(),
		Entries:   []model.Entry{},
	}

	t.state.Patients = append(t.state.Patients, p)
	t.state.SelectedPatientID = p.ID
	t.persist()

	t.logger.Debug("patient added", slog.String("id", p.ID))

	return p, nil
}

// RenamePatient updates a patient's label and room. A label that trims to
// empty keeps the existing label; the room is always replaced, so an empty
// room clears it.
func (t *Tracker) RenamePatient(id, newLabel, newRoom string) error {
	p, _ := t.state.Find(id)
	if p == nil {
		return ErrPatientNotFound
	}

	if label := strings.TrimSpace(newLabel); label != "" {
		p.Label = label
	}

	p.Room = strings.TrimSpace(newRoom)
	t.persist()

	t.logger.Debug("patient renamed", slog.String("id", id))

	return nil
}

// DeletePatient removes a patient and all of its entries. When the removed
// patient was selected, selection moves to the first remaining patient.
// Callers must obtain the user's confirmation first.
func (t *Tracker) DeletePatient(id string) error {
	_, idx := t.state.Find(id)
	if idx < 0 {
		return ErrPatientNotFound
	}

	t.state.Patients = slices.Delete(t.state.Patients, idx, idx+1)

	if t.state.SelectedPatientID == id {
		t.state.SelectedPatientID = ""
		if len(t.state.Patients) > 0 {
			t.state.SelectedPatientID = t.state.Patients[0].ID
		}
	}

	t.persist()

	t.logger.Debug("patient deleted", slog.String("id", id))

	return nil
}

// SelectPatient makes id the selected patient.
func (t *Tracker) SelectPatient(id string) error {
	if p, _ := t.state.Find(id); p == nil {
		return ErrPatientNotFound
	}

	t.state.SelectedPatientID = id
	t.persist()

	return nil
}

// ResolvePatient finds a patient by id, 1-based list position or label.
// Exact label matches win over case-insensitive ones.
func (t *Tracker) ResolvePatient(ref string) (model.Patient, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return model.Patient{}, ErrPatientNotFound
	}

	if p, _ := t.state.Find(ref); p != nil {
		return *p, nil
	}

	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(t.state.Patients) {
		return t.state.Patients[n-1], nil
	}

	for _, fold := range []bool{false, true} {
		var matches []model.Patient

		for _, p := range t.state.Patients {
			if p.Label == ref || (fold && strings.EqualFold(p.Label, ref)) {
				matches = append(matches, p)
			}
		}

		switch len(matches) {
		case 0:
			continue
		case 1:
			return matches[0], nil
		default:
			return model.Patient{}, ErrAmbiguousPatient
		}
	}

	return model.Patient{}, ErrPatientNotFound
}

// uniqueID draws ids until one is unused by the current patients.
func (t *Tracker) uniqueID() string {
	for {
		id := t.newID()
		if id == "" {
			continue
		}

		if p, _ := t.state.Find(id); p == nil {
			return id
		}
	}
}
