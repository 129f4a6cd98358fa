package storage

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"

	"startpage/model"
	"startpage/theme"
)

const (
	settingsFile = "settings.json"
	themesFile   = "custom_themes.json"
)

// Store is the key-value persistence collaborator for page state: the
// settings record and the custom theme list, each a JSON file in the
// data directory. Reads fall back to defaults, writes are atomic
// (tmp + rename); both are best-effort.
type Store struct {
	baseDir string
	mu      sync.Mutex
}

// New creates a Store rooted at the given data directory.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// EnsureDirs creates the data directory if needed.
func (s *Store) EnsureDirs() error {
	return os.MkdirAll(s.baseDir, 0o755)
}

// DefaultSettings is the settings record used on first run or when the
// persisted record is missing or corrupt.
func DefaultSettings() model.Settings {
	return model.Settings{
		TempUnit:     model.UnitCelsius,
		TimeFormat:   model.Format24h,
		SearchEngine: model.EngineGoogle,
		Theme:        theme.DefaultName,
	}
}

// LoadSettings reads the persisted settings, falling back to defaults
// field-by-field when the record is absent, unreadable, or holds
// unknown values.
func (s *Store) LoadSettings() model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	def := DefaultSettings()

	f, err := os.Open(filepath.Join(s.baseDir, settingsFile))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("[storage] read settings: %v", err)
		}
		return def
	}
	defer f.Close()

	var loaded model.Settings
	if err := json.NewDecoder(f).Decode(&loaded); err != nil {
		log.Printf("[storage] decode settings: %v", err)
		return def
	}

	switch loaded.TempUnit {
	case model.UnitCelsius, model.UnitFahrenheit:
	default:
		loaded.TempUnit = def.TempUnit
	}
	switch loaded.TimeFormat {
	case model.Format24h, model.Format12h:
	default:
		loaded.TimeFormat = def.TimeFormat
	}
	switch loaded.SearchEngine {
	case model.EngineGoogle, model.EngineDDG, model.EngineBing:
	default:
		loaded.SearchEngine = def.SearchEngine
	}
	if loaded.Theme == "" {
		loaded.Theme = def.Theme
	}

	return loaded
}

// SaveSettings persists the settings record.
func (s *Store) SaveSettings(settings model.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeJSON(settingsFile, settings)
}

// LoadCustomThemes reads the persisted custom theme list. A missing or
// corrupt list yields an empty one.
func (s *Store) LoadCustomThemes() []theme.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(filepath.Join(s.baseDir, themesFile))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("[storage] read custom themes: %v", err)
		}
		return nil
	}
	defer f.Close()

	var entries []theme.Entry
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		log.Printf("[storage] decode custom themes: %v", err)
		return nil
	}
	return entries
}

// SaveCustomThemes persists the custom theme list.
func (s *Store) SaveCustomThemes(entries []theme.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entries == nil {
		entries = []theme.Entry{}
	}
	return s.writeJSON(themesFile, entries)
}

// writeJSON writes a record atomically; the caller holds s.mu.
func (s *Store) writeJSON(name string, v any) error {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(s.baseDir, name)
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}
