package touch

import (
	"fmt"
	"os"

	"github.com/dansimau/coreutils/pkg/fsutil"
	"gopkg.in/yaml.v2"
)

// SettingsEnvVar names the environment variable that may point at a settings
// file.
const SettingsEnvVar = "TOUCH_CONFIG"

// Settings are optional user defaults read from a YAML file.
type Settings struct {
	Path        string   `yaml:"-"`
	DateLayouts []string `yaml:"dateLayouts"`
	Jobs        int      `yaml:"jobs"`
}

func defaultSettings() *Settings {
	return &Settings{Jobs: 1}
}

// ReadSettings reads the settings file at path. If path is empty, the file
// named by $TOUCH_CONFIG is used if it exists; otherwise defaults are
// returned.
func ReadSettings(path string) (*Settings, error) {
	if path == "" {
		envPath := os.Getenv(SettingsEnvVar)
		if envPath == "" {
			return defaultSettings(), nil
		}

		exists, err := fsutil.Exists(envPath, true)
		if err != nil {
			return nil, err
		}

		if !exists {
			return defaultSettings(), nil
		}

		path = envPath
	}

	yamlBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	settings := defaultSettings()
	if err := yaml.Unmarshal(yamlBytes, settings); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if settings.Jobs < 1 {
		return nil, fmt.Errorf("%s: jobs must be at least 1", path)
	}

	settings.Path = path

	return settings, nil
}

// Resolver returns a Resolver that also accepts the configured date layouts.
func (s *Settings) Resolver() *Resolver {
	return &Resolver{DateLayouts: s.DateLayouts}
}
