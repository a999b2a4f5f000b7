package storage

import (
	"database/sql"
	"regexp"
	"strings"
	"time"
)

// Session naming and capacity limits.
const (
	MaxSessions   = 50
	MaxNameLength = 15
)

// sessionNameRE matches valid session names: 1-15 ASCII letters or
// digits, no spaces or punctuation.
var sessionNameRE = regexp.MustCompile(`^[A-Za-z0-9]{1,15}$`)

// Session is a named save slot, independent of any one level.
type Session struct {
	ID          int64
	Name        string
	LastSavedAt time.Time
}

// validateSessionName trims and validates a session name. Callers are
// expected to pre-filter as the user types; the store re-validates
// defensively.
func validateSessionName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &ValidationError{Field: "session name", Reason: "name cannot be empty"}
	}
	if len(name) > MaxNameLength {
		return "", &ValidationError{Field: "session name", Reason: "name must be at most 15 characters"}
	}
	if !sessionNameRE.MatchString(name) {
		return "", &ValidationError{Field: "session name", Reason: "name must contain only letters and digits (A-Z, a-z, 0-9)"}
	}
	return name, nil
}

// ListSessions returns all sessions, newest first.
func (s *Store) ListSessions() ([]Session, error) {
	rows, err := s.db.Query(
		`SELECT sessionID, sessionName, dateOfLastSave
		 FROM Sessions
		 ORDER BY sessionID DESC`,
	)
	if err != nil {
		return nil, unavailable("list sessions", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var lastSaved any
		if err := rows.Scan(&sess.ID, &sess.Name, &lastSaved); err != nil {
			return nil, unavailable("scan session row", err)
		}
		sess.LastSavedAt = scanTime(lastSaved)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, unavailable("list sessions", err)
	}

	return sessions, nil
}

// CreateSession inserts a new save slot. The name must be 1-15
// alphanumeric characters and unique case-insensitively; at most
// MaxSessions slots may exist. Count, duplicate check and insert run
// in a single transaction.
func (s *Store) CreateSession(name string) (Session, error) {
	name, err := validateSessionName(name)
	if err != nil {
		return Session{}, err
	}
	if err := s.checkSpace("create session"); err != nil {
		return Session{}, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Session{}, unavailable("create session", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM Sessions").Scan(&count); err != nil {
		return Session{}, unavailable("count sessions", err)
	}
	if count >= MaxSessions {
		return Session{}, &CapacityError{Limit: MaxSessions}
	}

	var existingID int64
	err = tx.QueryRow(
		"SELECT sessionID FROM Sessions WHERE sessionName = ? COLLATE NOCASE",
		name,
	).Scan(&existingID)
	if err == nil {
		return Session{}, &DuplicateNameError{Name: name, Suggestion: name + "2"}
	}
	if err != sql.ErrNoRows {
		return Session{}, unavailable("check duplicate name", err)
	}

	now := time.Now().UTC()
	res, err := tx.Exec(
		"INSERT INTO Sessions (sessionName, dateOfLastSave) VALUES (?, ?)",
		name, now.Format(timestampFormat),
	)
	if err != nil {
		return Session{}, unavailable("insert session", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Session{}, unavailable("get inserted session id", err)
	}

	if err := tx.Commit(); err != nil {
		return Session{}, unavailable("create session", err)
	}

	s.logger.Debug("session created", "session", id, "name", name)
	return Session{ID: id, Name: name, LastSavedAt: now.Truncate(time.Second)}, nil
}

// RenameSession changes a session's name, applying the same
// validation as CreateSession but excluding the session itself from
// the duplicate check.
func (s *Store) RenameSession(id int64, newName string) error {
	newName, err := validateSessionName(newName)
	if err != nil {
		return err
	}
	if err := s.checkSpace("rename session"); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return unavailable("rename session", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRow("SELECT 1 FROM Sessions WHERE sessionID = ?", id).Scan(&exists)
	if err == sql.ErrNoRows {
		return &InvalidSessionError{ID: id}
	}
	if err != nil {
		return unavailable("look up session", err)
	}

	var otherID int64
	err = tx.QueryRow(
		"SELECT sessionID FROM Sessions WHERE sessionName = ? COLLATE NOCASE AND sessionID != ?",
		newName, id,
	).Scan(&otherID)
	if err == nil {
		return &DuplicateNameError{Name: newName, Suggestion: newName + "2"}
	}
	if err != sql.ErrNoRows {
		return unavailable("check duplicate name", err)
	}

	if _, err := tx.Exec(
		"UPDATE Sessions SET sessionName = ? WHERE sessionID = ?",
		newName, id,
	); err != nil {
		return unavailable("update session name", err)
	}

	if err := tx.Commit(); err != nil {
		return unavailable("rename session", err)
	}

	s.logger.Debug("session renamed", "session", id, "name", newName)
	return nil
}

// DeleteSessions removes the given save slots and their progress rows
// in a single transaction: Levels rows first, then Sessions rows, so a
// partial failure can never leave progress pointing at a deleted
// session. Non-existent ids are ignored. Deletion is never refused by
// the free-space guard - it is how the player frees space.
func (s *Store) DeleteSessions(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return unavailable("delete sessions", err)
	}
	defer tx.Rollback()

	for _, id := range ids {
		if _, err := tx.Exec("DELETE FROM Levels WHERE sessionID = ?", id); err != nil {
			return unavailable("delete session progress", err)
		}
		if _, err := tx.Exec("DELETE FROM Sessions WHERE sessionID = ?", id); err != nil {
			return unavailable("delete session", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return unavailable("delete sessions", err)
	}

	s.logger.Debug("sessions deleted", "count", len(ids))
	return nil
}
