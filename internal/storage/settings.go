package storage

import "database/sql"

// Settings is the single-row table of interface preferences. It is
// peripheral to the save system but shares the same connection
// lifecycle and error contract.
type Settings struct {
	Resolution string
	Graphics   string
	Volume     int
}

// LoadSettings reads the stored settings row. Returns ErrNoSettings
// when settings have never been saved.
func (s *Store) LoadSettings() (Settings, error) {
	var cfg Settings
	err := s.db.QueryRow(
		"SELECT resolution, graphics, volume FROM Settings LIMIT 1",
	).Scan(&cfg.Resolution, &cfg.Graphics, &cfg.Volume)
	if err == sql.ErrNoRows {
		return Settings{}, ErrNoSettings
	}
	if err != nil {
		return Settings{}, unavailable("load settings", err)
	}
	return cfg, nil
}

// SaveSettings replaces the settings row. The table holds exactly one
// row, so the write is a transactional delete-and-insert.
func (s *Store) SaveSettings(cfg Settings) error {
	if err := s.checkSpace("save settings"); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return unavailable("save settings", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM Settings"); err != nil {
		return unavailable("clear settings", err)
	}
	if _, err := tx.Exec(
		"INSERT INTO Settings (resolution, graphics, volume) VALUES (?, ?, ?)",
		cfg.Resolution, cfg.Graphics, cfg.Volume,
	); err != nil {
		return unavailable("write settings", err)
	}

	if err := tx.Commit(); err != nil {
		return unavailable("save settings", err)
	}

	s.logger.Debug("settings saved", "resolution", cfg.Resolution, "graphics", cfg.Graphics, "volume", cfg.Volume)
	return nil
}
