package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"finpom/internal/core/model"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkHours               int   `yaml:"work_hours"`
	ReminderIntervalSeconds int   `yaml:"reminder_interval_seconds"`
	TickIntervalMillis      int   `yaml:"tick_interval_millis"`
	Notifications           *bool `yaml:"notifications"`
}

// LoadSettings reads user settings from the per-user config directory.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (model.Settings, error) {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return model.DefaultSettings(), err
	}
	return LoadSettingsFrom(configPath)
}

// LoadSettingsFrom reads user settings from configPath.
func LoadSettingsFrom(configPath string) (model.Settings, error) {
	settings := model.DefaultSettings()
	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user settings to the per-user config directory.
func SaveSettings(appName string, settings model.Settings) error {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsTo(configPath, settings)
}

// SaveSettingsTo writes user settings to configPath.
func SaveSettingsTo(configPath string, settings model.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := MarshalSettings(settings)
	if err != nil {
		return err
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// MarshalSettings renders settings in the settings file format.
func MarshalSettings(settings model.Settings) ([]byte, error) {
	notifications := settings.Notifications
	fileData := yamlSettings{
		WorkHours:               settings.WorkHours,
		ReminderIntervalSeconds: int(settings.ReminderInterval / time.Second),
		TickIntervalMillis:      int(settings.TickInterval / time.Millisecond),
		Notifications:           &notifications,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return nil, fmt.Errorf("marshal settings yaml: %w", err)
	}
	return serialized, nil
}

// SettingsPath returns the settings file location for appName.
func SettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	if fileData.WorkHours > 0 {
		settings.WorkHours = fileData.WorkHours
	}
	if fileData.ReminderIntervalSeconds > 0 {
		settings.ReminderInterval = time.Duration(fileData.ReminderIntervalSeconds) * time.Second
	}
	if fileData.TickIntervalMillis > 0 {
		settings.TickInterval = time.Duration(fileData.TickIntervalMillis) * time.Millisecond
	}
	if fileData.Notifications != nil {
		settings.Notifications = *fileData.Notifications
	}
}
