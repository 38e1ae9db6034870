package core

import (
	"encoding/json"
	"log/slog"

	"github.com/inovacc/edcourse/internal/application"
	"github.com/inovacc/edcourse/internal/encoding"
	"github.com/inovacc/edcourse/internal/model"
	"github.com/inovacc/edcourse/internal/store"
)

// persistedState is the stored shape of model.State.
type persistedState struct {
	Patients          []model.Patient `json:"patients"`
	SelectedPatientID *string         `json:"selectedPatientId"`
	Use24Hour         *bool           `json:"use24Hour"`
}

// loadedState is the shape LoadState decodes. The preference and selection
// stay raw so a mistyped value resets only that field.
type loadedState struct {
	Patients          []model.Patient `json:"patients"`
	SelectedPatientID json.RawMessage `json:"selectedPatientId"`
	Use24Hour         json.RawMessage `json:"use24Hour"`
}

// LoadState reads the state slot. Missing, unreadable or corrupt data yields
// model.DefaultState(); the problem is logged and never returned.
func LoadState(s store.Store, logger *slog.Logger) model.State {
	blob, err := s.Get(application.StateKey)
	if err != nil {
		logger.Warn("failed to read state, using defaults", slog.Any("error", err))
		return model.DefaultState()
	}

	if blob == nil {
		return model.DefaultState()
	}

	stored, err := encoding.ParseJSON[loadedState](blob)
	if err != nil {
		logger.Warn("stored state is corrupt, using defaults", slog.Any("error", err))
		return model.DefaultState()
	}

	if stored.Patients == nil {
		logger.Warn("stored state has no patient list, using defaults")
		return model.DefaultState()
	}

	state := model.DefaultState()
	state.Patients = stored.Patients

	for i := range state.Patients {
		if state.Patients[i].Entries == nil {
			state.Patients[i].Entries = []model.Entry{}
		}
	}

	var use24Hour *bool
	if err := unmarshalOptional(stored.Use24Hour, &use24Hour); err != nil {
		logger.Warn("stored time format is not a boolean, using 24h", slog.Any("error", err))
	} else if use24Hour != nil {
		state.Use24Hour = *use24Hour
	}

	var selected *string
	if err := unmarshalOptional(stored.SelectedPatientID, &selected); err != nil {
		logger.Warn("stored selection is not a patient id, clearing it", slog.Any("error", err))
	} else if selected != nil {
		if p, _ := state.Find(*selected); p != nil {
			state.SelectedPatientID = p.ID
		} else {
			logger.Warn("stored selection references a missing patient", slog.String("id", *selected))
		}
	}

	return state
}

// unmarshalOptional decodes raw into v. Absent fields leave v untouched.
func unmarshalOptional(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}

	return json.Unmarshal(raw, v)
}

// SaveState serializes the full state and replaces the slot. The error is
// logged before it is returned.
func SaveState(s store.Store, state model.State, logger *slog.Logger) error {
	stored := persistedState{
		Patients:  state.Patients,
		Use24Hour: &state.Use24Hour,
	}

	if stored.Patients == nil {
		stored.Patients = []model.Patient{}
	}

	if state.SelectedPatientID != "" {
		id := state.SelectedPatientID
		stored.SelectedPatientID = &id
	}

	blob, err := encoding.ToJSON(stored)
	if err != nil {
		logger.Error("failed to encode state", slog.Any("error", err))
		return err
	}

	if err := s.Set(application.StateKey, blob); err != nil {
		logger.Error("failed to save state", slog.Any("error", err))
		return err
	}

	return nil
}
