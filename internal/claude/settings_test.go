// ABOUTME: Unit tests for user settings loading
// ABOUTME: Tests enabled-plugin flag parsing

package claude

import (
	"path/filepath"
	"testing"
)

func TestLoadSettings(t *testing.T) {
	claudeDir := t.TempDir()
	writeFile(t, filepath.Join(claudeDir, "settings.json"), `{
		"model": "sonnet",
		"enabledPlugins": {
			"one@main": true,
			"two@main": false
		}
	}`)

	settings, err := LoadSettings(claudeDir)
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}

	if len(settings.EnabledPlugins) != 2 {
		t.Fatalf("EnabledPlugins has %d entries, want 2", len(settings.EnabledPlugins))
	}
	if !settings.EnabledPlugins["one@main"] {
		t.Error("one@main should be enabled")
	}
	if settings.EnabledPlugins["two@main"] {
		t.Error("two@main should be disabled")
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	if _, err := LoadSettings(t.TempDir()); err == nil {
		t.Error("expected error for missing settings.json")
	}
}

func TestLoadSettingsMalformed(t *testing.T) {
	claudeDir := t.TempDir()
	writeFile(t, filepath.Join(claudeDir, "settings.json"), "{oops")

	if _, err := LoadSettings(claudeDir); err == nil {
		t.Error("expected error for malformed settings.json")
	}
}

func TestLoadSettingsWithoutEnabledPlugins(t *testing.T) {
	claudeDir := t.TempDir()
	writeFile(t, filepath.Join(claudeDir, "settings.json"), `{"model": "opus"}`)

	settings, err := LoadSettings(claudeDir)
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if len(settings.EnabledPlugins) != 0 {
		t.Errorf("EnabledPlugins has %d entries, want 0", len(settings.EnabledPlugins))
	}
}
