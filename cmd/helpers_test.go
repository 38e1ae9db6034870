package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/inovacc/edcourse/internal/core"
	"github.com/inovacc/edcourse/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "lower y", input: "y\n", want: true},
		{name: "upper Y", input: "Y\n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "yes spelled out", input: "yes\n", want: false},
		{name: "empty line", input: "\n", want: false},
		{name: "eof", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			got := promptConfirm(strings.NewReader(tt.input), &out, "Remove? [y/N]: ")

			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Remove? [y/N]: ", out.String())
		})
	}
}

func TestResolvePatient(t *testing.T) {
	tracker := core.NewTracker(core.Options{Store: store.NewMemory()})

	_, err := resolvePatient(tracker, nil)
	require.Error(t, err)

	first, err := tracker.AddPatient("B12", "")
	require.NoError(t, err)
	second, err := tracker.AddPatient("B14", "")
	require.NoError(t, err)

	p, err := resolvePatient(tracker, nil)
	require.NoError(t, err)
	assert.Equal(t, second.ID, p.ID)

	p, err = resolvePatient(tracker, []string{"1"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, p.ID)

	p, err = resolvePatient(tracker, []string{"  "})
	require.NoError(t, err)
	assert.Equal(t, second.ID, p.ID)

	_, err = resolvePatient(tracker, []string{"nobody"})
	assert.ErrorIs(t, err, core.ErrPatientNotFound)
}

func TestCenterString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "string shorter than width",
			input:    "test",
			width:    10,
			expected: "   test   ",
		},
		{
			name:     "string equal to width",
			input:    "test",
			width:    4,
			expected: "test",
		},
		{
			name:     "string longer than width",
			input:    "testing",
			width:    4,
			expected: "testing",
		},
		{
			name:     "odd padding",
			input:    "ab",
			width:    5,
			expected: " ab  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, centerString(tt.input, tt.width))
		})
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "string shorter than max",
			input:    "test",
			maxLen:   10,
			expected: "test",
		},
		{
			name:     "string longer than max",
			input:    "B12 – 81M SBO",
			maxLen:   8,
			expected: "B12 –...",
		},
		{
			name:     "tiny max",
			input:    "abcdef",
			maxLen:   2,
			expected: "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncateString(tt.input, tt.maxLen))
		})
	}
}

func TestPrintInfoBox(t *testing.T) {
	var out bytes.Buffer

	printInfoBox(&out, "Title", map[string]string{"a": "1", "b": "2"}, []string{"b", "a", "missing"})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[3], "b: 2")
	assert.Contains(t, lines[4], "a: 1")

	for _, l := range lines {
		assert.Equal(t, boxWidth, len([]rune(l)), l)
	}
}
