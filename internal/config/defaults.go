package config

// Default returns the built-in configuration: saves under ~/.grotto,
// a 100 MiB free-space floor, info-level logging.
func Default() Config {
	return Config{
		Database: DatabaseConfig{
			Path: "~/.grotto/saves.db",
		},
		Disk: DiskConfig{
			MinFreeBytes: 100 * 1024 * 1024,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// fillDefaults replaces zero-valued fields with the built-in defaults,
// so a partial YAML file only overrides what it names.
func fillDefaults(cfg Config) Config {
	def := Default()
	if cfg.Database.Path == "" {
		cfg.Database.Path = def.Database.Path
	}
	if cfg.Disk.MinFreeBytes == 0 {
		cfg.Disk.MinFreeBytes = def.Disk.MinFreeBytes
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
	return cfg
}
