package core

import (
	"errors"
	"fmt"
)

// Validation failures. None of them change state.
var (
	ErrEmptyLabel        = errors.New("patient label is empty")
	ErrEmptyEntry        = errors.New("entry text is empty")
	ErrNoEntries         = errors.New("patient has no entries to copy")
	ErrNoPatientSelected = errors.New("no patient selected")
	ErrPatientNotFound   = errors.New("patient not found")
	ErrAmbiguousPatient  = errors.New("patient reference matches more than one patient")
)

// ErrNoClipboard is wrapped in a ClipboardError when no clipboard is configured.
var ErrNoClipboard = errors.New("no clipboard configured")

// ErrClipboard matches any ClipboardError via errors.Is.
var ErrClipboard = errors.New("clipboard write failed")

// ClipboardError wraps a failure reported by the host clipboard
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("clipboard write failed: %v", e.Err)
}

func (e *ClipboardError) Unwrap() error {
	return e.Err
}

func (e *ClipboardError) Is(target error) bool {
	return target == ErrClipboard
}

// User-visible status messages.
const (
	MsgEntryAdded      = "Entry added."
	MsgEmptyEntry      = "Cannot add an empty entry."
	MsgNoEntries       = "No entries to copy for this patient."
	MsgCopied          = "ED course copied to clipboard."
	MsgClipboardFailed = "Clipboard failed; you may need to copy manually."
)

// StatusMessage maps an operation error to the status bar text shown for it.
// It returns an empty string for errors that are silent no-ops.
func StatusMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyEntry):
		return MsgEmptyEntry
	case errors.Is(err, ErrNoEntries):
		return MsgNoEntries
	case errors.Is(err, ErrClipboard):
		return MsgClipboardFailed
	case errors.Is(err, ErrEmptyLabel), errors.Is(err, ErrNoPatientSelected):
		return ""
	default:
		return err.Error()
	}
}
