package core

import (
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/edcourse/internal/clock"
	"github.com/inovacc/edcourse/internal/model"
	"github.com/inovacc/edcourse/internal/store"
)

// Clipboard is the host clipboard primitive.
type Clipboard interface {
	WriteAll(text string) error
}

// Options configures a Tracker. Store is required; the rest have defaults.
type Options struct {
	Store     store.Store
	Clipboard Clipboard
	Clock     clock.Clock
	Location  *time.Location
	Logger    *slog.Logger

	// NewID generates patient identifiers (uuid.NewString by default)
	NewID func() string
}

// Tracker owns the application state. Every mutation is persisted before
// the method returns; hosts re-render from View afterwards.
type Tracker struct {
	store     store.Store
	clipboard Clipboard
	clock     clock.Clock
	loc       *time.Location
	logger    *slog.Logger
	newID     func() string

	state model.State
}

// NewTracker loads the persisted state and returns a ready Tracker.
func NewTracker(opts Options) *Tracker {
	t := &Tracker{
		store:     opts.Store,
		clipboard: opts.Clipboard,
		clock:     opts.Clock,
		loc:       opts.Location,
		logger:    opts.Logger,
		newID:     opts.NewID,
	}

	if t.clock == nil {
		t.clock = clock.New()
	}

	if t.loc == nil {
		t.loc = time.Local
	}

	if t.logger == nil {
		t.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if t.newID == nil {
		t.newID = uuid.NewString
	}

	t.state = LoadState(t.store, t.logger)

	return t
}

// State returns a copy of the current state.
func (t *Tracker) State() model.State {
	out := t.state
	out.Patients = make([]model.Patient, len(t.state.Patients))

	for i, p := range t.state.Patients {
		p.Entries = slices.Clone(p.Entries)
		out.Patients[i] = p
	}

	return out
}

// SelectedID returns the selected patient id, or "" when none is selected.
func (t *Tracker) SelectedID() string {
	return t.state.SelectedPatientID
}

// Selected returns a copy of the selected patient.
func (t *Tracker) Selected() (model.Patient, bool) {
	p := t.state.Selected()
	if p == nil {
		return model.Patient{}, false
	}

	out := *p
	out.Entries = slices.Clone(p.Entries)

	return out, true
}

// View renders the current state.
func (t *Tracker) View() View {
	return Render(t.state, RenderOptions{Location: t.loc, Now: t.clock.Now()})
}

// ViewWith renders the current state with a one-off timestamp format. The
// stored preference is left unchanged.
func (t *Tracker) ViewWith(use24Hour bool) View {
	st := t.state
	st.Use24Hour = use24Hour

	return Render(st, RenderOptions{Location: t.loc, Now: t.clock.Now()})
}

// SetUse24Hour changes the timestamp display preference. Stored timestamps
// are untouched.
func (t *Tracker) SetUse24Hour(use24Hour bool) {
	t.state.Use24Hour = use24Hour
	t.persist()
}

// persist saves the state. Failures are logged by SaveState and otherwise
// ignored: the in-memory state stays authoritative for the session.
func (t *Tracker) persist() {
	_ = SaveState(t.store, t.state, t.logger)
}

func (t *Tracker) nowMillis() int64 {
	return t.clock.Now().UnixMilli()
}
