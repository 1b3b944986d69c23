package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"finpom/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestSaveThenLoadSettings(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "FinPom", settingsFileName)
	saved := model.Settings{
		WorkHours:        6,
		ReminderInterval: 10 * time.Minute,
		TickInterval:     500 * time.Millisecond,
		Notifications:    false,
	}

	require.NoError(t, SaveSettingsTo(configPath, saved))
	loaded, err := LoadSettingsFrom(configPath)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestLoadSettingsIgnoresInvalidValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("work_hours: -3\nreminder_interval_seconds: 0\n"), 0o644))

	settings, err := LoadSettingsFrom(configPath)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestLoadSettingsRejectsMalformedYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("work_hours: [1, 2"), 0o644))

	_, err := LoadSettingsFrom(configPath)
	assert.Error(t, err)
}
