package manifest

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/*.schema.json
var schemaFS embed.FS

var (
	compiledSchemas map[Kind]*jsonschema.Schema
	compileOnce     sync.Once
	compileErr      error
	printer         = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of one or more document checks.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is a single problem found in a document.
type ValidationIssue struct {
	File    string // Artifact path relative to the agent directory, if known
	Path    string // Instance location (e.g., "/name", "/workflows/0/steps/2")
	Message string // Human-readable error message
	Keyword string // Schema keyword or check name that failed
}

func (i ValidationIssue) String() string {
	var b strings.Builder
	if i.File != "" {
		b.WriteString(i.File)
		b.WriteString(": ")
	}
	if i.Path != "" {
		b.WriteString(i.Path)
		b.WriteString(": ")
	}
	b.WriteString(i.Message)
	return b.String()
}

func (r *ValidationResult) add(issues ...ValidationIssue) {
	r.Issues = append(r.Issues, issues...)
	r.Valid = len(r.Issues) == 0
}

// merge appends other's issues, tagging them with file.
func (r *ValidationResult) merge(file string, other *ValidationResult) {
	for _, issue := range other.Issues {
		if issue.File == "" {
			issue.File = file
		}
		r.add(issue)
	}
}

// getSchema compiles the embedded JSON schemas once and returns the one for kind.
func getSchema(kind Kind) (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		schemas := make(map[Kind]*jsonschema.Schema, len(Kinds))
		for _, k := range Kinds {
			name := string(k) + ".schema.json"
			raw, err := schemaFS.ReadFile("schema/" + name)
			if err != nil {
				compileErr = fmt.Errorf("reading schema %s: %w", name, err)
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
			if err != nil {
				compileErr = fmt.Errorf("unmarshaling schema %s: %w", name, err)
				return
			}
			if err := c.AddResource(name, doc); err != nil {
				compileErr = fmt.Errorf("adding schema resource %s: %w", name, err)
				return
			}
			s, err := c.Compile(name)
			if err != nil {
				compileErr = fmt.Errorf("compiling schema %s: %w", name, err)
				return
			}
			schemas[k] = s
		}
		compiledSchemas = schemas
	})
	if compileErr != nil {
		return nil, compileErr
	}
	s, ok := compiledSchemas[kind]
	if !ok {
		return nil, fmt.Errorf("no schema for document kind %q", kind)
	}
	return s, nil
}

// Validate validates a document against the schema for kind. For KindAgent,
// data is the whole AGENT.md and only its front matter is checked.
// The error return is for parse or schema compilation failures; validation
// issues are returned in the ValidationResult.
func Validate(kind Kind, data []byte) (*ValidationResult, error) {
	schema, err := getSchema(kind)
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	if kind == KindAgent {
		fm, _, err := SplitFrontMatter(data)
		if err != nil {
			return nil, err
		}
		data = fm
	}

	inst, err := toInstance(data)
	if err != nil {
		return nil, err
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("validating %s document: %w", kind, err)
	}

	result := &ValidationResult{}
	result.add(extractIssues(ve)...)
	return result, nil
}

// toInstance decodes YAML and re-reads it as JSON, so that numbers reach the
// validator as json.Number and map keys are strings.
func toInstance(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding YAML: %w", err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding document as JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding JSON instance: %w", err)
	}
	return inst, nil
}

// ValidateFile reads a file and validates it against the schema for kind.
func ValidateFile(kind Kind, path string) (*ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Validate(kind, data)
}

// extractIssues flattens a validation error into its leaf issues. A tree with
// no usable leaves collapses to one issue carrying the top-level message.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	issues := uniqueIssues(leafIssues(ve))
	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	return issues
}

func leafIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	if len(ve.Causes) > 0 {
		var out []ValidationIssue
		for _, cause := range ve.Causes {
			out = append(out, leafIssues(cause)...)
		}
		return out
	}
	if ve.ErrorKind == nil {
		return nil
	}

	var keyword string
	if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
		keyword = kw[len(kw)-1]
	}
	// Container keywords only summarize their children.
	switch keyword {
	case "", "allOf", "anyOf", "oneOf", "$ref":
		return nil
	}

	var loc string
	if len(ve.InstanceLocation) > 0 {
		loc = "/" + strings.Join(ve.InstanceLocation, "/")
	}
	return []ValidationIssue{{
		Path:    loc,
		Message: ve.ErrorKind.LocalizedString(printer),
		Keyword: keyword,
	}}
}

// uniqueIssues drops repeated issues, keeping first occurrences in order.
func uniqueIssues(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[ValidationIssue]struct{}, len(issues))
	out := issues[:0]
	for _, issue := range issues {
		if _, dup := seen[issue]; dup {
			continue
		}
		seen[issue] = struct{}{}
		out = append(out, issue)
	}
	return out
}
