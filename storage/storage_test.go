package storage

import (
	"os"
	"path/filepath"
	"testing"

	"startpage/model"
	"startpage/theme"
)

func TestSettingsRoundTrip(t *testing.T) {
	s := New(t.TempDir())

	saved := model.Settings{
		TempUnit:     model.UnitFahrenheit,
		TimeFormat:   model.Format12h,
		SearchEngine: model.EngineDDG,
		Theme:        "apollo",
	}
	if err := s.SaveSettings(saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	// A fresh store simulates a reload.
	if got := New(s.baseDir).LoadSettings(); got != saved {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, saved)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	s := New(t.TempDir())
	if got := s.LoadSettings(); got != DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestLoadSettingsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, settingsFile), []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := New(dir).LoadSettings(); got != DefaultSettings() {
		t.Fatalf("expected defaults for corrupt record, got %+v", got)
	}
}

func TestLoadSettingsUnknownValuesFallBack(t *testing.T) {
	dir := t.TempDir()
	record := `{"temp_unit":"kelvin","time_format":"12h","search_engine":"askjeeves","theme":""}`
	if err := os.WriteFile(filepath.Join(dir, settingsFile), []byte(record), 0o644); err != nil {
		t.Fatal(err)
	}

	got := New(dir).LoadSettings()
	def := DefaultSettings()

	if got.TempUnit != def.TempUnit {
		t.Errorf("temp unit = %q, want default %q", got.TempUnit, def.TempUnit)
	}
	if got.TimeFormat != model.Format12h {
		t.Errorf("valid time format was not kept: %q", got.TimeFormat)
	}
	if got.SearchEngine != def.SearchEngine {
		t.Errorf("search engine = %q, want default %q", got.SearchEngine, def.SearchEngine)
	}
	if got.Theme != def.Theme {
		t.Errorf("theme = %q, want default %q", got.Theme, def.Theme)
	}
}

func TestCustomThemesRoundTrip(t *testing.T) {
	s := New(t.TempDir())

	if got := s.LoadCustomThemes(); len(got) != 0 {
		t.Fatalf("expected empty list on first run, got %d entries", len(got))
	}

	entries := []theme.Entry{
		{Name: "mine", Display: "Mine", Category: theme.CustomCategory, Custom: true,
			Colors: theme.Builtins()[0].Colors},
	}
	if err := s.SaveCustomThemes(entries); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := New(s.baseDir).LoadCustomThemes()
	if len(got) != 1 || got[0].Name != "mine" || got[0].Colors != entries[0].Colors {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestCustomThemesCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, themesFile), []byte("[{"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := New(dir).LoadCustomThemes(); got != nil {
		t.Fatalf("expected nil for corrupt list, got %+v", got)
	}
}
