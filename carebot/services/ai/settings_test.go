package ai

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	got := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	want := DefaultSettings()
	if got != want {
		t.Errorf("missing file should yield defaults, got %+v", got)
	}
}

func TestLoadSettingsPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.yaml")
	content := "openai_model: gpt-4o\ntimeout_seconds: 30\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got := LoadSettings(path)
	if got.OpenAIModel != "gpt-4o" {
		t.Errorf("OpenAIModel = %q", got.OpenAIModel)
	}
	if got.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d", got.TimeoutSeconds)
	}
	// untouched keys keep defaults
	if got.GeminiModel != DefaultSettings().GeminiModel {
		t.Errorf("GeminiModel = %q", got.GeminiModel)
	}
	if got.HistoryWindow != DefaultSettings().HistoryWindow {
		t.Errorf("HistoryWindow = %d", got.HistoryWindow)
	}
}

func TestLoadSettingsBadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := LoadSettings(path); got != DefaultSettings() {
		t.Errorf("bad yaml should yield defaults, got %+v", got)
	}
}
