package agent

import (
	"fmt"
	"strings"
)

// Platform is the automation environment a generated agent targets.
type Platform string

const (
	PlatformClaudeCode  Platform = "claude-code"
	PlatformAntigravity Platform = "antigravity"
	PlatformN8n         Platform = "n8n"
)

// DefaultPlatform is used when no platform is requested.
const DefaultPlatform = PlatformClaudeCode

// Platforms lists every accepted platform in display order.
var Platforms = []Platform{
	PlatformClaudeCode,
	PlatformAntigravity,
	PlatformN8n,
}

// PlatformNames returns the accepted platform literals.
func PlatformNames() []string {
	names := make([]string, len(Platforms))
	for i, p := range Platforms {
		names[i] = string(p)
	}
	return names
}

// ParsePlatform accepts exactly one of the known platform literals.
func ParsePlatform(s string) (Platform, error) {
	for _, p := range Platforms {
		if string(p) == s {
			return p, nil
		}
	}
	return "", &Error{
		Kind: ErrInvalidPlatform,
		Path: s,
		Msg:  fmt.Sprintf("must be one of %s", strings.Join(PlatformNames(), ", ")),
	}
}

// Valid reports whether p is one of the known platforms.
func (p Platform) Valid() bool {
	_, err := ParsePlatform(string(p))
	return err == nil
}

func (p Platform) String() string { return string(p) }
