package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fleet-ledger/core/storage"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFS(t *testing.T) {
	t.Run("No Root", func(t *testing.T) {
		fsys, err := storage.NewFS(storage.Config{})
		require.NoError(t, err)
		assert.IsType(t, &afero.OsFs{}, fsys)
	})

	t.Run("Root Directory", func(t *testing.T) {
		dir := t.TempDir()
		fsys, err := storage.NewFS(storage.Config{Root: dir})
		require.NoError(t, err)

		require.NoError(t, storage.WriteFile(fsys, "/report.csv", []byte("a,1\n")))
		data, err := os.ReadFile(filepath.Join(dir, "report.csv"))
		require.NoError(t, err)
		assert.Equal(t, "a,1\n", string(data))
	})

	t.Run("Missing Root", func(t *testing.T) {
		_, err := storage.NewFS(storage.Config{Root: filepath.Join(t.TempDir(), "missing")})
		var fae *storage.FileAccessError
		require.True(t, errors.As(err, &fae))
		assert.Equal(t, "stat", fae.Op)
	})

	t.Run("Root Is File", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0o644))
		_, err := storage.NewFS(storage.Config{Root: file})
		assert.Error(t, err)
	})
}

func TestReadFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "in.json", []byte("{}"), 0o644))

	data, err := storage.ReadFile(fsys, "in.json")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	_, err = storage.ReadFile(fsys, "missing.json")
	require.Error(t, err)
	assert.True(t, storage.IsNotExist(err))
	assert.Contains(t, err.Error(), "read missing.json")
}

func TestWriteFile(t *testing.T) {
	t.Run("Replaces Content", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, fsys.MkdirAll("out", 0o755))
		require.NoError(t, storage.WriteFile(fsys, "out/r.csv", []byte("old")))
		require.NoError(t, storage.WriteFile(fsys, "out/r.csv", []byte("new")))

		data, err := afero.ReadFile(fsys, "out/r.csv")
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))

		entries, err := afero.ReadDir(fsys, "out")
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary file must not be left behind")
	})

	t.Run("Report Is World Readable", func(t *testing.T) {
		dir := t.TempDir()
		fsys := afero.NewOsFs()
		path := filepath.Join(dir, "r.csv")
		require.NoError(t, storage.WriteFile(fsys, path, []byte("a,1\n")))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, storage.ReportPerm, info.Mode().Perm())
	})

	t.Run("Read Only Filesystem", func(t *testing.T) {
		fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())
		err := storage.WriteFile(fsys, "r.csv", []byte("x"))

		var fae *storage.FileAccessError
		require.True(t, errors.As(err, &fae))
		assert.Equal(t, "write", fae.Op)
		assert.Equal(t, "r.csv", fae.Path)
	})
}
