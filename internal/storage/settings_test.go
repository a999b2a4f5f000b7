package storage

import (
	"errors"
	"testing"
)

func TestLoadSettingsEmpty(t *testing.T) {
	store := openTestStore(t)

	_, err := store.LoadSettings()
	if !errors.Is(err, ErrNoSettings) {
		t.Errorf("Expected ErrNoSettings on a fresh database, got %v", err)
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	store := openTestStore(t)

	want := Settings{Resolution: "1920x1080", Graphics: "High", Volume: 80}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	got, err := store.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestSaveSettingsReplacesSingleRow(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveSettings(Settings{Resolution: "1280x720", Graphics: "Low", Volume: 40}); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}
	if err := store.SaveSettings(Settings{Resolution: "2560x1440", Graphics: "Ultra", Volume: 100}); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	var count int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM Settings").Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected exactly 1 settings row, got %d", count)
	}

	got, err := store.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if got.Resolution != "2560x1440" || got.Graphics != "Ultra" || got.Volume != 100 {
		t.Errorf("Expected the second write to win, got %+v", got)
	}
}
