package manifest

import (
	"bytes"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

var frontMatterDelim = []byte("---")

// SplitFrontMatter separates a leading "---" delimited YAML block from the
// markdown body that follows it.
func SplitFrontMatter(data []byte) (frontMatter, body []byte, err error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	first, rest, ok := cutLine(data)
	if !ok || !bytes.Equal(bytes.TrimRight(first, " \r"), frontMatterDelim) {
		return nil, nil, fmt.Errorf("missing front matter: document must start with %q", frontMatterDelim)
	}

	offset := 0
	for {
		line, next, more := cutLine(rest[offset:])
		if bytes.Equal(bytes.TrimRight(line, " \r"), frontMatterDelim) {
			end := len(rest) - len(next)
			if !more {
				end = len(rest)
			}
			return rest[:offset], rest[end:], nil
		}
		if !more {
			return nil, nil, fmt.Errorf("unterminated front matter: closing %q not found", frontMatterDelim)
		}
		offset = len(rest) - len(next)
	}
}

// cutLine returns the first line of data (without the newline), the remainder,
// and whether a newline was found.
func cutLine(data []byte) (line, rest []byte, found bool) {
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return data[:i], data[i+1:], true
	}
	return data, nil, false
}

// ParseAgent decodes an AGENT.md document.
func ParseAgent(data []byte) (*AgentManifest, error) {
	fm, body, err := SplitFrontMatter(data)
	if err != nil {
		return nil, err
	}
	var m AgentManifest
	if err := yaml.Unmarshal(fm, &m); err != nil {
		return nil, fmt.Errorf("parsing front matter: %w", err)
	}
	m.Body = string(body)
	return &m, nil
}

// ParseAgentFile reads and decodes an AGENT.md file.
func ParseAgentFile(path string) (*AgentManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	m, err := ParseAgent(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseSkillsFile reads config/skills.yaml.
func ParseSkillsFile(path string) (*SkillsRegistry, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseTyped[SkillsRegistry](data, path)
}

// ParseWorkflowsFile reads config/workflows.yaml.
func ParseWorkflowsFile(path string) (*WorkflowsDocument, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseTyped[WorkflowsDocument](data, path)
}

// ParsePlatformConfigFile reads config/platform-config.yaml.
func ParsePlatformConfigFile(path string) (*PlatformConfig, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseTyped[PlatformConfig](data, path)
}

// parseTyped unmarshals YAML data into a typed document struct.
func parseTyped[T any](data []byte, path string) (*T, error) {
	var m T
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &m, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
