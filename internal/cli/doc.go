// Package cli provides the terminal user interface for edcourse.
//
// The package uses [Bubbletea] for the program loop, [Bubbles] widgets
// (list, textarea, textinput, viewport) and [Lipgloss] for styling. Every
// model follows the Model-View-Update architecture.
//
// # Components
//
//   - App: the tracker screen. Patients on the left, the selected patient's
//     header, entry editor and course on the right, counters and a transient
//     status line at the bottom.
//   - Configure: form for editing the stored configuration.
//
// App never mutates state itself. Key presses call [core.Tracker] methods and
// the whole screen is re-rendered from [core.Tracker.View] afterwards.
// Add and rename are two-step prompts (label, then room/bed); deletion asks
// for confirmation first.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Bubbles]: https://github.com/charmbracelet/bubbles
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
