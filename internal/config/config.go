// Package config provides YAML-based configuration loading for the
// save backend: database location, free-space threshold, and logging.
package config

// Config is the top-level configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Disk     DiskConfig     `yaml:"disk"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DatabaseConfig locates the save database.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// DiskConfig tunes the free-space guard applied before writes.
type DiskConfig struct {
	MinFreeBytes uint64 `yaml:"min_free_bytes"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
}
