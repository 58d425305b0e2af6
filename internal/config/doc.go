// Package config manages user-level settings stored at ~/.agentinit/config.yaml.
// It provides functions to load, read, and write the defaults applied when a
// flag is not given on the command line: author, platform and output root.
package config
