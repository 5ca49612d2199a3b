package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Loader handles configuration loading from YAML files
type Loader struct{}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load loads configuration from a YAML file with environment variable
// substitution. Variables can be referenced in the YAML using:
//   - ${VAR_NAME} - substitutes the value of VAR_NAME, empty string if not set
//   - ${VAR_NAME:-default} - substitutes VAR_NAME or "default" if not set
//
// Missing config files are not an error; defaults apply.
func (l *Loader) Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	filePath := l.resolveConfigPath(configPath)
	if filePath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expandedData := l.expandEnvVars(string(data))

	if err := yaml.Unmarshal([]byte(expandedData), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

func (l *Loader) resolveConfigPath(configPath string) string {
	if configPath != "" {
		return configPath
	}

	// Only app-specific names: a bare config.yaml in the working directory
	// likely belongs to something else.
	defaults := []string{
		".review-bot.yaml",
		filepath.Join(os.Getenv("HOME"), ".review-bot", "config.yaml"),
	}

	for _, path := range defaults {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

var envVarPattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::-([^}]*))?\}`)

// expandEnvVars expands ${VAR} and ${VAR:-default} references in the input.
func (l *Loader) expandEnvVars(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		defaultVal := ""
		if len(submatches) >= 3 {
			defaultVal = submatches[2]
		}

		if val, exists := os.LookupEnv(varName); exists {
			return val
		}

		return defaultVal
	})
}
