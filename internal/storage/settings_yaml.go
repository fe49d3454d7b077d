package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"stepshow/internal/config"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	TickIntervalMillis int  `yaml:"tick_interval_millis"`
	Fullscreen         bool `yaml:"fullscreen"`
	ExportWidth        int  `yaml:"export_width"`
}

// LoadSettings reads player preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (config.Settings, error) {
	settings := config.DefaultSettings()
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return settings, err
	}

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

// SaveSettings writes player preferences to YAML.
func SaveSettings(appName string, settings config.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		TickIntervalMillis: int(settings.TickInterval / time.Millisecond),
		Fullscreen:         settings.Fullscreen,
		ExportWidth:        settings.ExportWidth,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *config.Settings, fileData yamlSettings) {
	if fileData.TickIntervalMillis > 0 {
		settings.TickInterval = time.Duration(fileData.TickIntervalMillis) * time.Millisecond
	}
	if fileData.ExportWidth >= 320 {
		settings.ExportWidth = fileData.ExportWidth
	}
	settings.Fullscreen = fileData.Fullscreen
}
