package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemasCompile(t *testing.T) {
	for _, k := range Kinds {
		s, err := getSchema(k)
		require.NoError(t, err, "kind %s", k)
		assert.NotNil(t, s)
	}
	_, err := getSchema("unknown")
	assert.Error(t, err)
}

func TestValidateFixtureDocuments(t *testing.T) {
	dir := filepath.Join("testdata", "doc-processor")
	tests := []struct {
		kind Kind
		rel  string
	}{
		{KindAgent, "AGENT.md"},
		{KindSkills, "config/skills.yaml"},
		{KindWorkflows, "config/workflows.yaml"},
		{KindPlatformConfig, "config/platform-config.yaml"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			res, err := ValidateFile(tt.kind, filepath.Join(dir, filepath.FromSlash(tt.rel)))
			require.NoError(t, err)
			assert.True(t, res.Valid, "issues: %v", res.Issues)
			assert.Empty(t, res.Issues)
		})
	}
}

func TestValidateAgentInvalid(t *testing.T) {
	res, err := ValidateFile(KindAgent, filepath.Join("testdata", "documents", "bad-agent.md"))
	require.NoError(t, err)
	assert.False(t, res.Valid)

	byPath := map[string]string{}
	for _, issue := range res.Issues {
		byPath[issue.Path] = issue.Keyword
	}
	assert.Equal(t, "pattern", byPath["/name"])
	assert.Equal(t, "minLength", byPath["/description"])
	assert.Equal(t, "enum", byPath["/platform/target/0"])
	assert.Equal(t, "pattern", byPath["/metadata/created"])
}

func TestValidateMissingRequired(t *testing.T) {
	res, err := Validate(KindSkills, []byte("skills:\n  built_in: []\n  document: []\n  custom: []\n"))
	require.NoError(t, err)
	assert.False(t, res.Valid)
	require.NotEmpty(t, res.Issues)
	assert.Equal(t, "required", res.Issues[0].Keyword)
	assert.Contains(t, res.Issues[0].Message, "loading")
}

func TestValidateWorkflowStepID(t *testing.T) {
	doc := `
workflows:
  - name: w
    steps:
      - id: Start-Here
        action: go
        is_terminal: true
`
	res, err := Validate(KindWorkflows, []byte(doc))
	require.NoError(t, err)
	assert.False(t, res.Valid)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "/workflows/0/steps/0/id", res.Issues[0].Path)
	assert.Equal(t, "pattern", res.Issues[0].Keyword)
}

func TestValidatePlatformConfigNeedsMatchingFragment(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "doc-processor", "config", "platform-config.yaml"))
	require.NoError(t, err)

	// Declaring another platform leaves the claude_code fragment unmatched.
	swapped := []byte("platform: antigravity\n" + string(data[len("platform: claude-code\n"):]))
	res, err := Validate(KindPlatformConfig, swapped)
	require.NoError(t, err)
	assert.False(t, res.Valid)

	found := false
	for _, issue := range res.Issues {
		if issue.Keyword == "required" {
			found = true
			assert.Contains(t, issue.Message, "antigravity")
		}
	}
	assert.True(t, found, "issues: %v", res.Issues)
}

func TestValidateParseErrors(t *testing.T) {
	_, err := Validate(KindWorkflows, []byte("workflows: [unclosed"))
	assert.Error(t, err)

	_, err = Validate(KindAgent, []byte("no front matter here"))
	assert.Error(t, err)
}

func TestValidationIssueString(t *testing.T) {
	tests := []struct {
		issue ValidationIssue
		want  string
	}{
		{ValidationIssue{Message: "m"}, "m"},
		{ValidationIssue{File: "AGENT.md", Message: "m"}, "AGENT.md: m"},
		{ValidationIssue{File: "AGENT.md", Path: "/name", Message: "m"}, "AGENT.md: /name: m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.issue.String())
	}
}

func TestUniqueIssues(t *testing.T) {
	in := []ValidationIssue{
		{Path: "/a", Keyword: "type", Message: "x"},
		{Path: "/a", Keyword: "type", Message: "x"},
		{Path: "/b", Keyword: "type", Message: "x"},
	}
	assert.Len(t, uniqueIssues(in), 2)
}
