package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"strconv"
	"strings"
	"text/template"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/agentx-labs/agentinit/internal/agent"
)

//go:embed templates
var templateFS embed.FS

const (
	artifactsDir = "templates/agent"
	platformsDir = "templates/platforms"
	dateLayout   = "2006-01-02"
)

// platformFragments maps every platform to its config fragment template.
var platformFragments = map[agent.Platform]string{
	agent.PlatformClaudeCode:  "claude-code.yaml.tmpl",
	agent.PlatformAntigravity: "antigravity.yaml.tmpl",
	agent.PlatformN8n:         "n8n.yaml.tmpl",
}

// TemplateData holds all variables available to agent templates.
type TemplateData struct {
	Name             string // e.g., "doc-processor"
	Title            string // Derived: "Doc Processor"
	Description      string // Flag value or "Agente <Title>"
	Platform         string // e.g., "claude-code"
	Author           string
	Created          string // YYYY-MM-DD
	PlatformFragment string // Rendered fragment for Platform
}

// NewTemplateData derives the template variables for cfg at time now.
func NewTemplateData(cfg *agent.RunConfig, now time.Time) *TemplateData {
	return &TemplateData{
		Name:        cfg.Name,
		Title:       cfg.Title(),
		Description: strings.TrimSpace(cfg.ManifestDescription()),
		Platform:    cfg.Platform.String(),
		Author:      cfg.Author,
		Created:     now.Format(dateLayout),
	}
}

var funcs = template.FuncMap{
	"indent":     indent,
	"yamlScalar": yamlScalar,
}

// indent prefixes every line after the first with n spaces, so multi-line
// values stay inside a YAML block scalar.
func indent(n int, s string) string {
	return strings.ReplaceAll(s, "\n", "\n"+strings.Repeat(" ", n))
}

// yamlScalar renders s as a single-line YAML scalar, quoting only when the
// plain form would be read back as something else.
func yamlScalar(s string) string {
	out, err := yaml.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	str := strings.TrimSuffix(string(out), "\n")
	if strings.Contains(str, "\n") {
		return strconv.Quote(s)
	}
	return str
}

// execute parses and runs one embedded template.
func execute(tmplPath string, data *TemplateData) ([]byte, error) {
	raw, err := templateFS.ReadFile(tmplPath)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
	}
	tmpl, err := template.New(path.Base(tmplPath)).Funcs(funcs).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", tmplPath, err)
	}
	return buf.Bytes(), nil
}

// RenderFragment renders the platform-specific config fragment for p.
// Platforms outside the known set are rejected rather than defaulted.
func RenderFragment(p agent.Platform, data *TemplateData) (string, error) {
	name, ok := platformFragments[p]
	if !ok {
		_, err := agent.ParsePlatform(string(p))
		if err == nil {
			err = fmt.Errorf("no config fragment for platform %q", p)
		}
		return "", err
	}
	out, err := execute(path.Join(platformsDir, name), data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Render produces every artifact for cfg, keyed by its path relative to the
// agent directory. Nothing touches the filesystem.
func Render(cfg *agent.RunConfig, now time.Time) (map[string][]byte, error) {
	data := NewTemplateData(cfg, now)

	fragment, err := RenderFragment(cfg.Platform, data)
	if err != nil {
		return nil, err
	}
	data.PlatformFragment = fragment

	out := make(map[string][]byte, len(agent.Artifacts))
	for _, rel := range agent.Artifacts {
		content, err := execute(path.Join(artifactsDir, rel+".tmpl"), data)
		if err != nil {
			return nil, err
		}
		out[rel] = content
	}
	return out, nil
}
