package agent

import "strings"

// ValidateName checks an agent name: ASCII letters, digits and single
// hyphens between alphanumeric segments.
func ValidateName(name string) error {
	if strings.Trim(name, "-") == "" {
		return invalidName(name, "must contain at least one letter or digit")
	}
	for _, r := range name {
		if !isAlnum(r) && r != '-' {
			return invalidName(name, "must contain only letters, digits and hyphens")
		}
	}
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
		return invalidName(name, "must not start or end with a hyphen")
	}
	if strings.Contains(name, "--") {
		return invalidName(name, "hyphens must separate letters or digits")
	}
	return nil
}

func isAlnum(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}
