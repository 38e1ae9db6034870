package model

import (
	"cmp"
	"slices"
	"time"
)

// Entry is one timestamped course update. Entries are never edited.
type Entry struct {
	// Timestamp is the creation time in milliseconds since the epoch
	Timestamp int64 `json:"timestamp"`

	// Text is the free-text update, never empty
	Text string `json:"text"`
}

// Time returns the entry timestamp as a time.Time.
func (e Entry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// Patient is a tracked patient and its course entries.
type Patient struct {
	// ID is an opaque identifier used only for lookup
	ID string `json:"id"`

	// Label is the display string, e.g. "B12 – 81M SBO"
	Label string `json:"label"`

	// Room is the optional room/bed; empty means absent
	Room string `json:"room"`

	// CreatedAt is the creation time in milliseconds since the epoch
	CreatedAt int64 `json:"createdAt"`

	// Entries is kept in append order
	Entries []Entry `json:"entries"`
}

// SortedEntries returns a copy of the entries ordered by timestamp.
// Entries sharing a timestamp keep their append order.
func (p *Patient) SortedEntries() []Entry {
	out := slices.Clone(p.Entries)
	slices.SortStableFunc(out, func(a, b Entry) int {
		return cmp.Compare(a.Timestamp, b.Timestamp)
	})

	return out
}

// State is the complete application state.
type State struct {
	Patients          []Patient
	SelectedPatientID string
	Use24Hour         bool
}

// DefaultState returns the state used on first launch or when the stored
// blob cannot be read.
func DefaultState() State {
	return State{
		Patients:  []Patient{},
		Use24Hour: true,
	}
}

// Find returns the patient with the given id and its position,
// or nil and -1 when no such patient exists.
func (s *State) Find(id string) (*Patient, int) {
	if id == "" {
		return nil, -1
	}

	for i := range s.Patients {
		if s.Patients[i].ID == id {
			return &s.Patients[i], i
		}
	}

	return nil, -1
}

// Selected returns the selected patient or nil.
func (s *State) Selected() *Patient {
	p, _ := s.Find(s.SelectedPatientID)
	return p
}

// EntryCount sums the entries across all patients.
func (s *State) EntryCount() int {
	total := 0
	for i := range s.Patients {
		total += len(s.Patients[i].Entries)
	}

	return total
}
