package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigDirEnv overrides the configuration directory.
const ConfigDirEnv = "BIBTIDY_CONFIG_DIR"

// configDirOverride holds a user-specified configuration directory.
// When empty, $BIBTIDY_CONFIG_DIR or $HOME/.bibtidy is used.
var configDirOverride string

// SetConfigDir overrides the default configuration directory.
func SetConfigDir(dir string) {
	configDirOverride = dir
}

// ConfigDir returns the bibtidy configuration directory.
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".bibtidy"), nil
}

// Dir returns the user rules directory.
func Dir() (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "rules"), nil
}

// Path returns the file path for a named user rule set.
func Path(name string) (string, error) {
	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid rule set name: %s", name)
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name+".yaml"), nil
}

// Create writes a copy of the embedded rule set under name in the user rules
// directory and returns its path. Existing files are not overwritten.
func Create(name string) (string, error) {
	path, err := Path(name)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("rule set %s already exists at %s", name, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating rules directory: %w", err)
	}

	data := strings.Replace(string(defaultYAML), "name: "+DefaultName, "name: "+name, 1)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return "", fmt.Errorf("writing rule set: %w", err)
	}
	return path, nil
}
