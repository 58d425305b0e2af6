// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	DefaultAuthor string `yaml:"default_author"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:       "agentinit",
			DisplayName:   "AgentInit",
			Description:   "Scaffolds the directory skeleton of a new agent definition",
			HomeDir:       ".agentinit",
			DefaultAuthor: "marcos-defenz",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "agentinit").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".agentinit").
func HomeDir() string { load(); return defaults.HomeDir }

// DefaultAuthor returns the author recorded in generated manifests when
// neither a flag nor the user config provides one.
func DefaultAuthor() string { load(); return defaults.DefaultAuthor }
