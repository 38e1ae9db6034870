package core

import (
	"path/filepath"
	"testing"

	"github.com/inovacc/edcourse/internal/store"
	"github.com/stretchr/testify/require"
)

func openBolt(t *testing.T) *store.Bolt {
	t.Helper()

	db, err := store.NewBolt(filepath.Join(t.TempDir(), "core.bolt"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return db
}
