// Package storage provides the filesystem abstraction used for capture inputs
// and CSV reports.
//
// It wraps spf13/afero so that commands operate on the real disk while tests
// run entirely against an in-memory filesystem.
//
// # Filesystem
//
// NewFS returns the OS filesystem, or a base-path filesystem confining every
// path below the configured root.
//
// # Errors
//
// ReadFile and WriteFile wrap every failure in a *FileAccessError carrying the
// operation and path. Callers test for it with errors.As; IsNotExist narrows it
// to missing files.
//
// # Usage
//
//	fsys, err := storage.NewFS(cfg.Storage)
//	data, err := storage.ReadFile(fsys, "captures/coa.har")
//	err = storage.WriteFile(fsys, "reports/coa.csv", rows)
package storage
