package agent

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RunConfig holds the validated parameters of one scaffolding run.
type RunConfig struct {
	Name        string   // e.g., "doc-processor"
	Platform    Platform // target platform
	Description string   // free text, may be empty
	Author      string   // recorded in the manifest metadata
	OutputDir   string   // parent of the agent directory
}

// NewRunConfig validates name and platform. Platform and author are taken as
// given, so an empty platform is rejected and an empty author is kept; callers
// resolve their own defaults first. An empty outputDir means the current
// directory.
func NewRunConfig(name, platform, description, author, outputDir string) (*RunConfig, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	p, err := ParsePlatform(platform)
	if err != nil {
		return nil, err
	}

	if outputDir == "" {
		outputDir = "."
	}

	return &RunConfig{
		Name:        name,
		Platform:    p,
		Description: description,
		Author:      author,
		OutputDir:   outputDir,
	}, nil
}

// AgentDir returns the directory the run creates: <OutputDir>/<Name>.
func (c *RunConfig) AgentDir() string {
	return filepath.Join(c.OutputDir, c.Name)
}

// Title derives a display title from the name: "doc-processor" → "Doc Processor".
func (c *RunConfig) Title() string {
	return Title(c.Name)
}

// ManifestDescription returns the description, falling back to "Agente <Title>".
func (c *RunConfig) ManifestDescription() string {
	if strings.TrimSpace(c.Description) != "" {
		return c.Description
	}
	return "Agente " + c.Title()
}

// Title replaces hyphens with spaces and title-cases every run of letters, so
// a letter following a digit starts a new word: "agent2go-v2x" → "Agent2Go V2X".
func Title(name string) string {
	caser := cases.Title(language.Und)
	s := strings.ReplaceAll(name, "-", " ")

	var b strings.Builder
	for s != "" {
		r, _ := utf8.DecodeRuneInString(s)
		letter := unicode.IsLetter(r)
		end := strings.IndexFunc(s, func(r rune) bool { return unicode.IsLetter(r) != letter })
		if end < 0 {
			end = len(s)
		}
		if letter {
			b.WriteString(caser.String(s[:end]))
		} else {
			b.WriteString(s[:end])
		}
		s = s[end:]
	}
	return b.String()
}
