package storage

// Config holds configuration for the report filesystem.
type Config struct {
	// Root confines all input and output paths below this directory.
	// Empty means paths are used as given.
	Root string `mapstructure:"root" default:""`
}
