// Package agent holds the parameters of one scaffolding run. It validates the
// requested agent name and target platform, applies defaults, and defines the
// error kinds every later stage reports through.
package agent
