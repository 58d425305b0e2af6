// Package manifest parses and checks the documents of a scaffolded agent: the
// AGENT.md front matter and the three config/ YAML files. Each document is
// validated against an embedded JSON Schema, then checked for the semantic
// rules a schema cannot express (semver version, workflow transitions, a
// single platform fragment).
package manifest
