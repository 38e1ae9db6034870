// Package core provides the business logic layer for edcourse.
//
// This package contains all course-tracking functionality separated from UI
// concerns. The [Tracker] owns the single in-memory [model.State]; every
// mutating method persists the state before returning, and hosts redraw
// from [Render] afterwards.
//
// # Design Principles
//
//   - Functions return errors instead of printing to stdout/stderr
//   - Validation failures are sentinel errors and never change state
//   - Persistence failures are logged and swallowed; memory stays authoritative
//   - UI-specific logic belongs in the cli and cmd packages, not here
//
// # Operations
//
// Patient registry: [Tracker.AddPatient], [Tracker.RenamePatient],
// [Tracker.DeletePatient], [Tracker.SelectPatient].
// Entry log: [Tracker.AddEntry].
// Export: [Tracker.ExportCourse] and the pure [CourseText].
// Rendering: [Render] and [FormatTimestamp].
package core
