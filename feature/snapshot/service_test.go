package snapshot_test

import (
	"errors"
	"testing"

	"fleet-ledger/core/storage"
	"fleet-ledger/core/tabular"
	"fleet-ledger/feature/snapshot"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWriteDiffReport(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "jan.csv", []byte("A,10\nB,5\n"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "feb.csv", []byte("\uFEFFA,12\r\nB,5\r\nC,7\r\n"), 0o644))

	svc := snapshot.NewService(fsys, zap.NewNop())
	result, err := svc.WriteDiffReport("jan.csv", "feb.csv", "growth.csv")
	require.NoError(t, err)

	data, err := afero.ReadFile(fsys, "growth.csv")
	require.NoError(t, err)
	assert.Equal(t, "C,7\nA,2\n", string(data))
	assert.Equal(t, int64(9), result.Total)
	assert.Len(t, result.Deltas, 2)
}

func TestWriteDiffReportErrors(t *testing.T) {
	t.Run("Missing Snapshot", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "feb.csv", []byte("A,1\n"), 0o644))

		_, err := snapshot.NewService(fsys, zap.NewNop()).WriteDiffReport("jan.csv", "feb.csv", "out.csv")
		var fae *storage.FileAccessError
		require.True(t, errors.As(err, &fae))
		assert.Equal(t, "jan.csv", fae.Path)
	})

	t.Run("Malformed Number", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "jan.csv", []byte("A,1\n"), 0o644))
		require.NoError(t, afero.WriteFile(fsys, "feb.csv", []byte("A,lots\n"), 0o644))

		_, err := snapshot.NewService(fsys, zap.NewNop()).WriteDiffReport("jan.csv", "feb.csv", "out.csv")
		assert.ErrorIs(t, err, tabular.ErrMalformedRow)
		exists, _ := afero.Exists(fsys, "out.csv")
		assert.False(t, exists)
	})
}
