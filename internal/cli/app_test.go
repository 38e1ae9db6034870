package cli

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/edcourse/internal/clock"
	"github.com/inovacc/edcourse/internal/core"
	"github.com/inovacc/edcourse/internal/model"
	"github.com/inovacc/edcourse/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 3, 4, 14, 5, 0, 0, time.UTC)

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}

	c.text = text

	return nil
}

func newTestApp(t *testing.T) (AppModel, *core.Tracker, *fakeClipboard) {
	t.Helper()

	clip := &fakeClipboard{}
	tracker := core.NewTracker(core.Options{
		Store:     store.NewMemory(),
		Clipboard: clip,
		Clock:     clock.NewManaged(baseTime),
		Location:  time.UTC,
	})

	return NewApp(tracker, nil), tracker, clip
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func send(t *testing.T, m AppModel, msgs ...tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd

	for _, msg := range msgs {
		next, c := m.Update(msg)

		got, ok := next.(AppModel)
		require.True(t, ok)

		m, cmd = got, c
	}

	return m, cmd
}

func TestApp_AddPatient(t *testing.T) {
	m, tracker, _ := newTestApp(t)

	m, _ = send(t, m, runes("a"))
	require.True(t, m.Prompting())

	m, _ = send(t, m, runes("B12 – 81M SBO"), key(tea.KeyEnter), runes("12"), key(tea.KeyEnter))
	assert.False(t, m.Prompting())

	p, ok := tracker.Selected()
	require.True(t, ok)
	assert.Equal(t, "B12 – 81M SBO", p.Label)
	assert.Equal(t, "12", p.Room)
	assert.Equal(t, 0, m.view.SelectedIndex)
	assert.Equal(t, "B12 – 81M SBO", m.view.Header.Title)
}

func TestApp_AddPatientPrompts(t *testing.T) {
	tests := []struct {
		name     string
		msgs     []tea.Msg
		patients int
		room     string
	}{
		{
			name: "cancel label aborts",
			msgs: []tea.Msg{runes("a"), runes("Bed 4"), key(tea.KeyEsc)},
		},
		{
			name: "blank label is ignored",
			msgs: []tea.Msg{runes("a"), runes("   "), key(tea.KeyEnter)},
		},
		{
			name:     "cancel room keeps patient without room",
			msgs:     []tea.Msg{runes("a"), runes("Bed 4"), key(tea.KeyEnter), runes("9"), key(tea.KeyEsc)},
			patients: 1,
		},
		{
			name:     "room is trimmed",
			msgs:     []tea.Msg{runes("a"), runes("Bed 4"), key(tea.KeyEnter), runes("  9 "), key(tea.KeyEnter)},
			patients: 1,
			room:     "9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, tracker, _ := newTestApp(t)

			m, _ = send(t, m, tt.msgs...)

			assert.False(t, m.Prompting())

			st := tracker.State()
			require.Len(t, st.Patients, tt.patients)

			if tt.patients > 0 {
				assert.Equal(t, "Bed 4", st.Patients[0].Label)
				assert.Equal(t, tt.room, st.Patients[0].Room)
			}
		})
	}
}

func TestApp_AddEntry(t *testing.T) {
	m, tracker, _ := newTestApp(t)

	_, err := tracker.AddPatient("B12", "12")
	require.NoError(t, err)

	m.refresh()

	m, _ = send(t, m, key(tea.KeyTab))
	require.True(t, m.Focused())

	m, cmd := send(t, m, runes("VS stable"), key(tea.KeyCtrlS))
	assert.NotNil(t, cmd)
	assert.Equal(t, core.MsgEntryAdded, m.Status())
	assert.Empty(t, m.entry.Value())

	p, _ := tracker.Selected()
	require.Len(t, p.Entries, 1)
	assert.Equal(t, "VS stable", p.Entries[0].Text)
	assert.Equal(t, 1, m.view.Status.EntryCount)

	m, _ = send(t, m, runes("   "), key(tea.KeyCtrlS))
	assert.Equal(t, core.MsgEmptyEntry, m.Status())

	p, _ = tracker.Selected()
	assert.Len(t, p.Entries, 1)
}

func TestApp_EntryEditorNeedsPatient(t *testing.T) {
	m, _, _ := newTestApp(t)

	m, _ = send(t, m, key(tea.KeyTab))

	assert.False(t, m.Focused())
}

func TestApp_Copy(t *testing.T) {
	t.Run("no entries", func(t *testing.T) {
		m, tracker, clip := newTestApp(t)

		_, err := tracker.AddPatient("B12", "")
		require.NoError(t, err)

		m.refresh()
		m, _ = send(t, m, runes("c"))

		assert.Equal(t, core.MsgNoEntries, m.Status())
		assert.Empty(t, clip.text)
	})

	t.Run("copied", func(t *testing.T) {
		m, tracker, clip := newTestApp(t)

		p, err := tracker.AddPatient("B12", "")
		require.NoError(t, err)
		_, err = tracker.AddEntry(p.ID, "VS stable")
		require.NoError(t, err)

		m.refresh()
		m, _ = send(t, m, runes("c"))

		assert.Equal(t, core.MsgCopied, m.Status())
		assert.Equal(t, "B12\n03/04/2025 14:05 - VS stable", clip.text)
	})

	t.Run("clipboard failure", func(t *testing.T) {
		m, tracker, clip := newTestApp(t)
		clip.err = errors.New("no display")

		p, err := tracker.AddPatient("B12", "")
		require.NoError(t, err)
		_, err = tracker.AddEntry(p.ID, "VS stable")
		require.NoError(t, err)

		m.refresh()
		m, _ = send(t, m, runes("c"))

		assert.Equal(t, core.MsgClipboardFailed, m.Status())
	})

	t.Run("nothing selected is silent", func(t *testing.T) {
		m, _, _ := newTestApp(t)

		m, cmd := send(t, m, runes("c"))

		assert.Nil(t, cmd)
		assert.Empty(t, m.Status())
	})
}

func TestApp_Rename(t *testing.T) {
	t.Run("new label and cleared room", func(t *testing.T) {
		m, tracker, _ := newTestApp(t)

		_, err := tracker.AddPatient("B12", "12")
		require.NoError(t, err)

		m.refresh()

		m, _ = send(t, m, runes("r"))
		assert.Equal(t, "B12", m.prompt.Value())

		m, _ = send(t, m, key(tea.KeyCtrlU), runes("B14"), key(tea.KeyEnter))
		assert.Equal(t, "12", m.prompt.Value())

		m, _ = send(t, m, key(tea.KeyEsc))

		p, _ := tracker.Selected()
		assert.Equal(t, "B14", p.Label)
		assert.Empty(t, p.Room)
		assert.Equal(t, "B14", m.view.Header.Title)
	})

	t.Run("blank label keeps old label", func(t *testing.T) {
		m, tracker, _ := newTestApp(t)

		_, err := tracker.AddPatient("B12", "12")
		require.NoError(t, err)

		m.refresh()

		m, _ = send(t, m, runes("r"), key(tea.KeyCtrlU), key(tea.KeyEnter), key(tea.KeyCtrlU), runes("7"), key(tea.KeyEnter))

		p, _ := tracker.Selected()
		assert.Equal(t, "B12", p.Label)
		assert.Equal(t, "7", p.Room)
	})

	t.Run("cancel label aborts", func(t *testing.T) {
		m, tracker, _ := newTestApp(t)

		_, err := tracker.AddPatient("B12", "12")
		require.NoError(t, err)

		m.refresh()

		m, _ = send(t, m, runes("r"), key(tea.KeyCtrlU), runes("X"), key(tea.KeyEsc))
		assert.False(t, m.Prompting())

		p, _ := tracker.Selected()
		assert.Equal(t, "B12", p.Label)
		assert.Equal(t, "12", p.Room)
	})
}

func TestApp_Delete(t *testing.T) {
	tests := []struct {
		name    string
		answer  tea.KeyMsg
		removed bool
	}{
		{name: "confirmed", answer: runes("y"), removed: true},
		{name: "declined", answer: runes("n")},
		{name: "escaped", answer: key(tea.KeyEsc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, tracker, _ := newTestApp(t)

			_, err := tracker.AddPatient("B12", "")
			require.NoError(t, err)

			m.refresh()

			m, _ = send(t, m, runes("d"))
			require.True(t, m.Prompting())

			m, _ = send(t, m, tt.answer)
			assert.False(t, m.Prompting())

			if tt.removed {
				assert.Empty(t, tracker.State().Patients)
				assert.Equal(t, core.NoPatientTitle, m.view.Header.Title)
				assert.Equal(t, 0, m.view.Status.PatientCount)

				return
			}

			assert.Len(t, tracker.State().Patients, 1)
		})
	}
}

func TestApp_SelectWithCursor(t *testing.T) {
	m, tracker, _ := newTestApp(t)

	first, err := tracker.AddPatient("B12", "")
	require.NoError(t, err)
	_, err = tracker.AddPatient("B14", "")
	require.NoError(t, err)

	m.refresh()
	m.patients.Select(m.view.SelectedIndex)

	m, _ = send(t, m, key(tea.KeyUp), key(tea.KeyEnter))

	assert.Equal(t, first.ID, tracker.SelectedID())
	assert.Equal(t, 0, m.view.SelectedIndex)
}

func TestApp_ToggleTimeFormat(t *testing.T) {
	m, tracker, _ := newTestApp(t)

	p, err := tracker.AddPatient("B12", "")
	require.NoError(t, err)
	_, err = tracker.AddEntry(p.ID, "VS stable")
	require.NoError(t, err)

	m.refresh()
	require.Equal(t, "03/04/2025 14:05", m.view.Entries[0].Timestamp)

	m, _ = send(t, m, runes("t"))

	assert.False(t, tracker.State().Use24Hour)
	assert.Equal(t, "03/04/2025 2:05 PM", m.view.Entries[0].Timestamp)
}

func TestApp_StatusExpiry(t *testing.T) {
	m, _, _ := newTestApp(t)

	cmd := m.setStatus("first")
	require.NotNil(t, cmd)

	stale := m.statusSeq

	cmd = m.setStatus("second")
	require.NotNil(t, cmd)

	m, _ = send(t, m, statusExpiredMsg{seq: stale})
	assert.Equal(t, "second", m.Status())

	m, _ = send(t, m, statusExpiredMsg{seq: m.statusSeq})
	assert.Empty(t, m.Status())

	assert.Nil(t, m.setStatus(""))
}

func TestApp_StatusTimeoutFromConfig(t *testing.T) {
	tracker := core.NewTracker(core.Options{Store: store.NewMemory()})

	m := NewApp(tracker, &model.Config{StatusTimeoutMs: 500})
	assert.Equal(t, 500*time.Millisecond, m.statusTimeout)

	m = NewApp(tracker, nil)
	assert.Equal(t, 2*time.Second, m.statusTimeout)
}

func TestApp_View(t *testing.T) {
	m, _, _ := newTestApp(t)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	out := m.View()
	assert.Contains(t, out, "ED Course Helper")
	assert.Contains(t, out, "0 patients · 0 entries")

	m, cmd := send(t, m, runes("q"))
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}
