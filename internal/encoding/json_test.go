package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

func TestParseJSON(t *testing.T) {
	got, err := ParseJSON[sample]([]byte(`{"label":"B6","count":2}`))
	require.NoError(t, err)
	assert.Equal(t, &sample{Label: "B6", Count: 2}, got)
}

func TestParseJSON_Invalid(t *testing.T) {
	_, err := ParseJSON[sample]([]byte(`{"label":`))
	assert.Error(t, err)
}

func TestToJSONIndent(t *testing.T) {
	data, err := ToJSONIndent(sample{Label: "B6", Count: 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"label\": \"B6\",\n  \"count\": 1\n}", string(data))
}

func TestEnsureParentDir(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, EnsureParentDir(dir+"/a/b/file.db"))
	assert.DirExists(t, dir+"/a/b")
}
