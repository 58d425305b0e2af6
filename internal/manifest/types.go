package manifest

// AgentManifest is the YAML front matter of AGENT.md.
type AgentManifest struct {
	Name        string        `yaml:"name" json:"name"`
	Type        string        `yaml:"type" json:"type"`
	Version     string        `yaml:"version" json:"version"`
	Description string        `yaml:"description" json:"description"`
	Skills      []string      `yaml:"skills,omitempty" json:"skills,omitempty"`
	Workflows   []WorkflowRef `yaml:"workflows,omitempty" json:"workflows,omitempty"`
	Platform    PlatformRef   `yaml:"platform" json:"platform"`
	Autonomy    Autonomy      `yaml:"autonomy" json:"autonomy"`
	Metadata    Metadata      `yaml:"metadata" json:"metadata"`

	// Body is the markdown following the front matter.
	Body string `yaml:"-" json:"-"`
}

// WorkflowRef names a workflow the agent exposes and its trigger phrases.
type WorkflowRef struct {
	Name     string   `yaml:"name" json:"name"`
	Triggers []string `yaml:"triggers,omitempty" json:"triggers,omitempty"`
}

// PlatformRef lists the platforms an agent targets.
type PlatformRef struct {
	Target []string `yaml:"target" json:"target"`
}

// Autonomy describes which actions run unattended.
type Autonomy struct {
	Level       string   `yaml:"level" json:"level"`
	AskBefore   []string `yaml:"ask_before,omitempty" json:"ask_before,omitempty"`
	AutoExecute []string `yaml:"auto_execute,omitempty" json:"auto_execute,omitempty"`
}

// Metadata carries authorship and dates (YYYY-MM-DD).
type Metadata struct {
	Author      string `yaml:"author" json:"author"`
	Created     string `yaml:"created" json:"created"`
	LastUpdated string `yaml:"last_updated,omitempty" json:"last_updated,omitempty"`
}

// SkillsRegistry is config/skills.yaml.
type SkillsRegistry struct {
	Skills  SkillCatalog  `yaml:"skills" json:"skills"`
	Loading LoadingPolicy `yaml:"loading" json:"loading"`
}

// SkillCatalog groups skill entries by category.
type SkillCatalog struct {
	BuiltIn  []SkillEntry `yaml:"built_in" json:"built_in"`
	Document []SkillEntry `yaml:"document" json:"document"`
	Custom   []SkillEntry `yaml:"custom" json:"custom"`
}

// SkillEntry is one invokable skill.
type SkillEntry struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	AutoInvoke  bool   `yaml:"auto_invoke" json:"auto_invoke"`
}

// LoadingPolicy controls how the runtime loads skills.
type LoadingPolicy struct {
	Strategy       string `yaml:"strategy" json:"strategy"`
	MaxConcurrent  int    `yaml:"max_concurrent" json:"max_concurrent"`
	TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds"`
}

// WorkflowsDocument is config/workflows.yaml.
type WorkflowsDocument struct {
	Workflows []Workflow `yaml:"workflows" json:"workflows"`
}

// Workflow is a named chain of steps with success/failure transitions.
type Workflow struct {
	Name        string           `yaml:"name" json:"name"`
	Description string           `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string           `yaml:"version,omitempty" json:"version,omitempty"`
	Triggers    []Trigger        `yaml:"triggers,omitempty" json:"triggers,omitempty"`
	Steps       []Step           `yaml:"steps" json:"steps"`
	Metadata    WorkflowMetadata `yaml:"metadata" json:"metadata"`
}

// Trigger matches user input by pattern or by classified intent.
type Trigger struct {
	Pattern string `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Intent  string `yaml:"intent,omitempty" json:"intent,omitempty"`
}

// Step is one node of a workflow.
type Step struct {
	ID         string  `yaml:"id" json:"id"`
	Name       string  `yaml:"name,omitempty" json:"name,omitempty"`
	Action     string  `yaml:"action" json:"action"`
	Skill      *string `yaml:"skill,omitempty" json:"skill,omitempty"`
	OnSuccess  string  `yaml:"on_success,omitempty" json:"on_success,omitempty"`
	OnFailure  string  `yaml:"on_failure,omitempty" json:"on_failure,omitempty"`
	IsTerminal bool    `yaml:"is_terminal,omitempty" json:"is_terminal,omitempty"`
}

// WorkflowMetadata carries scheduling hints for the runtime.
type WorkflowMetadata struct {
	EstimatedDuration string `yaml:"estimated_duration,omitempty" json:"estimated_duration,omitempty"`
	RequiresUserInput bool   `yaml:"requires_user_input" json:"requires_user_input"`
}

// PlatformConfig is config/platform-config.yaml. Exactly one of the
// platform fragments is expected to be set.
type PlatformConfig struct {
	Platform    string         `yaml:"platform" json:"platform"`
	Version     string         `yaml:"version" json:"version"`
	ClaudeCode  map[string]any `yaml:"claude_code,omitempty" json:"claude_code,omitempty"`
	Antigravity map[string]any `yaml:"antigravity,omitempty" json:"antigravity,omitempty"`
	N8n         map[string]any `yaml:"n8n,omitempty" json:"n8n,omitempty"`
	General     General        `yaml:"general" json:"general"`
	Limits      Limits         `yaml:"limits" json:"limits"`
}

// General holds execution settings common to all platforms.
type General struct {
	DebugMode   bool        `yaml:"debug_mode" json:"debug_mode"`
	LogLevel    string      `yaml:"log_level" json:"log_level"`
	Execution   Execution   `yaml:"execution" json:"execution"`
	RetryPolicy RetryPolicy `yaml:"retry_policy" json:"retry_policy"`
}

// Execution bounds a single agent run.
type Execution struct {
	MaxSteps       int `yaml:"max_steps" json:"max_steps"`
	TimeoutSeconds int `yaml:"timeout_seconds" json:"timeout_seconds"`
}

// RetryPolicy is the runtime's retry policy for failed steps.
type RetryPolicy struct {
	MaxRetries     int    `yaml:"max_retries" json:"max_retries"`
	BackoffType    string `yaml:"backoff_type" json:"backoff_type"`
	InitialDelayMs int    `yaml:"initial_delay_ms" json:"initial_delay_ms"`
}

// Limits caps resource usage.
type Limits struct {
	MaxTokensPerRequest int `yaml:"max_tokens_per_request" json:"max_tokens_per_request"`
	MaxFileSizeMB       int `yaml:"max_file_size_mb" json:"max_file_size_mb"`
	MaxConcurrentSkills int `yaml:"max_concurrent_skills" json:"max_concurrent_skills"`
}

// Fragments returns the keys of the platform fragments present, in the
// fixed order claude_code, antigravity, n8n.
func (p *PlatformConfig) Fragments() []string {
	var keys []string
	if p.ClaudeCode != nil {
		keys = append(keys, FragmentClaudeCode)
	}
	if p.Antigravity != nil {
		keys = append(keys, FragmentAntigravity)
	}
	if p.N8n != nil {
		keys = append(keys, FragmentN8n)
	}
	return keys
}

// Top-level keys of the platform fragments.
const (
	FragmentClaudeCode  = "claude_code"
	FragmentAntigravity = "antigravity"
	FragmentN8n         = "n8n"
)

// Kind identifies which schema a document is checked against.
type Kind string

const (
	KindAgent          Kind = "agent"
	KindSkills         Kind = "skills"
	KindWorkflows      Kind = "workflows"
	KindPlatformConfig Kind = "platform-config"
)

// Kinds lists every document kind.
var Kinds = []Kind{KindAgent, KindSkills, KindWorkflows, KindPlatformConfig}
