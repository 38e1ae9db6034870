package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClipboardError(t *testing.T) {
	inner := errors.New("xclip not found")
	err := &ClipboardError{Err: inner}

	assert.Equal(t, "clipboard write failed: xclip not found", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.ErrorIs(t, err, ErrClipboard)
	assert.ErrorIs(t, fmt.Errorf("export: %w", err), ErrClipboard)
}

func TestStatusMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"empty entry", ErrEmptyEntry, MsgEmptyEntry},
		{"no entries", ErrNoEntries, MsgNoEntries},
		{"clipboard", &ClipboardError{Err: errors.New("x")}, MsgClipboardFailed},
		{"empty label is silent", ErrEmptyLabel, ""},
		{"no selection is silent", ErrNoPatientSelected, ""},
		{"other", ErrPatientNotFound, "patient not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusMessage(tt.err))
		})
	}
}
