package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/agentx-labs/agentinit/internal/agent"
	"github.com/agentx-labs/agentinit/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyAuthor   = "default_author"
	KeyPlatform = "default_platform"
	KeyOutput   = "default_output"
)

// Keys lists every recognized configuration key.
var Keys = []string{KeyAuthor, KeyPlatform, KeyOutput}

// Dir returns the path to the config directory (~/.agentinit/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.agentinit/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the directory holding path if it does not exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the default config file.
func Load() {
	LoadFile(FilePath())
}

// LoadFile initializes Viper to read from path. Environment variables are
// deliberately not bound.
func LoadFile(path string) {
	viper.SetConfigFile(path)
	viper.SetConfigType(fileType)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// All returns every recognized key with its current value, sorted by key.
func All() [][2]string {
	keys := append([]string(nil), Keys...)
	sort.Strings(keys)
	out := make([][2]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, [2]string{k, Get(k)})
	}
	return out
}

// Set validates and writes a config key-value pair, then saves the file
// Viper was loaded from.
func Set(key, value string) error {
	if err := checkValue(key, value); err != nil {
		return err
	}

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = FilePath()
	}
	if err := EnsureDir(configFile); err != nil {
		return err
	}

	viper.Set(key, value)

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func checkValue(key, value string) error {
	switch key {
	case KeyAuthor, KeyOutput:
		return nil
	case KeyPlatform:
		_, err := agent.ParsePlatform(value)
		return err
	default:
		return fmt.Errorf("unknown config key %q (valid keys: %v)", key, Keys)
	}
}
