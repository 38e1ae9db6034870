package core

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/inovacc/edcourse/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCourse_Scenario(t *testing.T) {
	f := newFixture(t)
	p, err := f.tracker.AddPatient("B12 – 81M SBO", "12")
	require.NoError(t, err)

	_, err = f.tracker.AddEntry(p.ID, "VS stable")
	require.NoError(t, err)

	text, err := f.tracker.ExportCourse(p.ID)
	require.NoError(t, err)

	want := "B12 – 81M SBO\n03/04/2025 14:05 - VS stable"
	assert.Equal(t, want, text)
	assert.Equal(t, want, f.clipboard.text)
}

func TestExportCourse_SortsByTimestamp(t *testing.T) {
	f := newFixture(t)
	p, _ := f.tracker.AddPatient("B6 – 45F CP", "")

	f.clock.Set(baseTime.Add(2 * time.Hour))
	_, _ = f.tracker.AddEntry(p.ID, "dispo home")
	f.clock.Set(baseTime)
	_, _ = f.tracker.AddEntry(p.ID, "trop neg")
	f.clock.Set(baseTime.Add(time.Hour))
	_, _ = f.tracker.AddEntry(p.ID, "repeat trop neg")

	f.tracker.SetUse24Hour(false)

	text, err := f.tracker.ExportCourse(p.ID)
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"B6 – 45F CP",
		"03/04/2025 2:05 PM - trop neg",
		"03/04/2025 3:05 PM - repeat trop neg",
		"03/04/2025 4:05 PM - dispo home",
	}, "\n"), text)
}

func TestExportCourse_NoEntries(t *testing.T) {
	f := newFixture(t)
	p, _ := f.tracker.AddPatient("B6", "")

	_, err := f.tracker.ExportCourse(p.ID)
	assert.ErrorIs(t, err, ErrNoEntries)
	assert.Equal(t, MsgNoEntries, StatusMessage(err))
	assert.Empty(t, f.clipboard.text, "clipboard must not be written")
}

func TestExportCourse_ClipboardFailure(t *testing.T) {
	f := newFixture(t)
	f.clipboard.err = errors.New("no display")

	p, _ := f.tracker.AddPatient("B6", "")
	_, _ = f.tracker.AddEntry(p.ID, "note")

	before := f.tracker.State()
	_, err := f.tracker.ExportCourse(p.ID)

	assert.ErrorIs(t, err, ErrClipboard)
	assert.Equal(t, MsgClipboardFailed, StatusMessage(err))
	assert.Equal(t, before, f.tracker.State())
}

func TestExportCourse_RequiresPatient(t *testing.T) {
	f := newFixture(t)

	_, err := f.tracker.ExportCourse("")
	assert.ErrorIs(t, err, ErrNoPatientSelected)

	_, err = f.tracker.ExportCourse("ghost")
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestExportCourse_NoClipboardConfigured(t *testing.T) {
	f := newFixture(t)
	f.tracker.clipboard = nil

	p, _ := f.tracker.AddPatient("B6", "")
	_, _ = f.tracker.AddEntry(p.ID, "note")

	text, err := f.tracker.ExportCourse(p.ID)
	assert.ErrorIs(t, err, ErrNoClipboard)
	assert.NotEmpty(t, text)
}

func TestCourseText_OmitsEmptyLabel(t *testing.T) {
	p := model.Patient{Entries: []model.Entry{{Timestamp: baseTime.UnixMilli(), Text: "note"}}}

	assert.Equal(t, "03/04/2025 14:05 - note", CourseText(p, true, time.UTC))
}

func TestCourse_LeavesClipboardAlone(t *testing.T) {
	f := newFixture(t)

	p, _ := f.tracker.AddPatient("B6", "3")
	_, _ = f.tracker.AddEntry(p.ID, "note")

	text, err := f.tracker.Course(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "B6\n03/04/2025 14:05 - note", text)
	assert.Empty(t, f.clipboard.text)

	_, err = f.tracker.Course("")
	assert.ErrorIs(t, err, ErrNoPatientSelected)
}
