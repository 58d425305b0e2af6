// Package cli defines the Cobra command tree for the agentinit CLI. The root
// command scaffolds an agent; each other file registers one subcommand
// (validate, version, config) with the root. Commands delegate to internal
// packages and only handle flag parsing, defaults and output.
package cli
