// Package model defines the data structures used throughout edcourse.
//
// # State
//
// The [State] struct is the whole application state. It is persisted as a
// single blob and owned by one controller at a time:
//
//	type State struct {
//	    Patients          []Patient // insertion order is display order
//	    SelectedPatientID string    // empty when nothing is selected
//	    Use24Hour         bool      // timestamp display preference
//	}
//
// # Patient and Entry
//
// A [Patient] owns its [Entry] list exclusively. Entries are append-only and
// are displayed in timestamp order, see [Patient.SortedEntries].
//
// # Config
//
// The [Config] struct holds the ambient settings (clipboard mode, status
// message timeout, log level) kept next to the state in the store.
package model
