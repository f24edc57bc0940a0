package storage

import (
	"path/filepath"
	"testing"

	"github.com/zdzakic/booky/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "booky.db"))
	if err := store.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpen_SeedsDefaults(t *testing.T) {
	store := openTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if settings.Language != "de" {
		t.Errorf("default language = %q, want de", settings.Language)
	}
	if settings.DefaultPeriod != "3w" {
		t.Errorf("default period = %q, want 3w", settings.DefaultPeriod)
	}
	if settings.BaseURL == "" {
		t.Error("default base URL should be seeded")
	}
}

func TestSaveAndGetSettings(t *testing.T) {
	store := openTestStore(t)

	want := models.Settings{
		Language:      "en",
		BaseURL:       "http://localhost:8000/api",
		DefaultPeriod: "pending",
	}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestOpen_KeepsExistingSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "booky.db")

	first := NewStore(path)
	if err := first.Open(); err != nil {
		t.Fatalf("first Open: %v", err)
	}
	saved := models.Settings{Language: "en", BaseURL: "http://x/api", DefaultPeriod: "all"}
	if err := first.SaveSettings(saved); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	first.Close()

	second := NewStore(path)
	if err := second.Open(); err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer second.Close()

	got, err := second.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if got != saved {
		t.Errorf("reopen lost settings: got %+v, want %+v", got, saved)
	}
}
