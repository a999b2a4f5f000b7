package storage

import (
	"database/sql"
	"time"

	"github.com/grotto2d/grotto/internal/game"
)

// SaveMode distinguishes the trigger of a progress write. Auto-save
// and manual save are functionally identical, equally durable writes;
// the mode only changes the log line.
type SaveMode int

const (
	SaveAuto SaveMode = iota
	SaveManual
)

// String returns the mode name for logging.
func (m SaveMode) String() string {
	if m == SaveManual {
		return "manual"
	}
	return "auto"
}

// Progress is the persisted gameplay checkpoint for one session: the
// player's last position, the level it occupies, and whether the
// level's intro dialogue already played.
type Progress struct {
	SessionID       int64
	Position        game.Position
	LevelDifficulty int
	HasSeenDialogue bool
}

// LoadProgress fetches the progress row for a session. At most one
// exists. Returns ErrNoProgress for a session that has never been
// saved; a stored position that no longer parses is surfaced as a
// CorruptRecordError, never a zero fallback.
func (s *Store) LoadProgress(sessionID int64) (Progress, error) {
	var raw string
	var difficulty int
	var seen int
	err := s.db.QueryRow(
		`SELECT positionInLevel, levelDifficulty, hasSeenDialogue
		 FROM Levels
		 WHERE sessionID = ?`,
		sessionID,
	).Scan(&raw, &difficulty, &seen)
	if err == sql.ErrNoRows {
		return Progress{}, ErrNoProgress
	}
	if err != nil {
		return Progress{}, unavailable("load progress", err)
	}

	pos, err := game.ParsePosition(raw)
	if err != nil {
		return Progress{}, &CorruptRecordError{SessionID: sessionID, Raw: raw, Err: err}
	}

	return Progress{
		SessionID:       sessionID,
		Position:        pos,
		LevelDifficulty: difficulty,
		HasSeenDialogue: seen != 0,
	}, nil
}

// SaveProgress durably records a session's checkpoint. The write is a
// native upsert keyed by sessionID: insert if absent, otherwise
// overwrite the single existing row (last-write-wins, no merge). The
// session's dateOfLastSave is refreshed in the same transaction.
func (s *Store) SaveProgress(sessionID int64, pos game.Position, levelDifficulty int, hasSeenDialogue bool, mode SaveMode) error {
	if levelDifficulty < 1 {
		return &ValidationError{Field: "level difficulty", Reason: "must be at least 1"}
	}
	if err := s.checkSpace("save progress"); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return unavailable("save progress", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRow("SELECT 1 FROM Sessions WHERE sessionID = ?", sessionID).Scan(&exists)
	if err == sql.ErrNoRows {
		return &InvalidSessionError{ID: sessionID}
	}
	if err != nil {
		return unavailable("look up session", err)
	}

	seen := 0
	if hasSeenDialogue {
		seen = 1
	}

	if _, err := tx.Exec(
		`INSERT INTO Levels (positionInLevel, levelDifficulty, sessionID, hasSeenDialogue)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(sessionID) DO UPDATE SET
		 	positionInLevel = excluded.positionInLevel,
		 	levelDifficulty = excluded.levelDifficulty,
		 	hasSeenDialogue = excluded.hasSeenDialogue`,
		pos.String(), levelDifficulty, sessionID, seen,
	); err != nil {
		return unavailable("write progress", err)
	}

	if _, err := tx.Exec(
		"UPDATE Sessions SET dateOfLastSave = ? WHERE sessionID = ?",
		time.Now().UTC().Format(timestampFormat), sessionID,
	); err != nil {
		return unavailable("refresh save timestamp", err)
	}

	if err := tx.Commit(); err != nil {
		return unavailable("save progress", err)
	}

	s.logger.Debug("progress saved",
		"mode", mode,
		"session", sessionID,
		"level", levelDifficulty,
		"position", pos,
	)
	return nil
}

// MarkDialogueSeen records that the session's current level has played
// its intro dialogue. Unlike SaveProgress this is a partial update: an
// existing row keeps its position and difficulty, only the flag flips.
// For a session with no progress yet, a default row at the fixed spawn
// of level 1 is inserted.
func (s *Store) MarkDialogueSeen(sessionID int64) error {
	if err := s.checkSpace("mark dialogue seen"); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return unavailable("mark dialogue seen", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRow("SELECT 1 FROM Sessions WHERE sessionID = ?", sessionID).Scan(&exists)
	if err == sql.ErrNoRows {
		return &InvalidSessionError{ID: sessionID}
	}
	if err != nil {
		return unavailable("look up session", err)
	}

	if _, err := tx.Exec(
		`INSERT INTO Levels (positionInLevel, levelDifficulty, sessionID, hasSeenDialogue)
		 VALUES (?, 1, ?, 1)
		 ON CONFLICT(sessionID) DO UPDATE SET hasSeenDialogue = 1`,
		game.DefaultSpawn.String(), sessionID,
	); err != nil {
		return unavailable("write dialogue flag", err)
	}

	if err := tx.Commit(); err != nil {
		return unavailable("mark dialogue seen", err)
	}

	s.logger.Debug("dialogue marked seen", "session", sessionID)
	return nil
}
