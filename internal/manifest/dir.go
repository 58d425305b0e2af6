package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/agentx-labs/agentinit/internal/agent"
)

// artifactKinds maps each schema-checked artifact to its document kind.
var artifactKinds = map[string]Kind{
	agent.ManifestPath:       KindAgent,
	agent.SkillsPath:         KindSkills,
	agent.WorkflowsPath:      KindWorkflows,
	agent.PlatformConfigPath: KindPlatformConfig,
}

// ValidateAgentDir checks a scaffolded agent directory: layout, schemas of
// every document, and the cross-document rules. The error return is reserved
// for failures unrelated to the directory's content.
func ValidateAgentDir(dir string) (*ValidationResult, error) {
	for _, k := range Kinds {
		if _, err := getSchema(k); err != nil {
			return nil, fmt.Errorf("loading schema: %w", err)
		}
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("reading agent directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	result := &ValidationResult{Valid: true}

	for _, sub := range agent.Subdirectories {
		if fi, err := os.Stat(filepath.Join(dir, sub)); err != nil || !fi.IsDir() {
			result.add(ValidationIssue{File: sub + "/", Message: "directory is missing", Keyword: CheckMissing})
		}
	}
	for _, rel := range append(slices.Clone(agent.Artifacts), agent.Markers()...) {
		if _, err := os.Stat(agent.Join(dir, rel)); err != nil {
			result.add(ValidationIssue{File: rel, Message: "file is missing", Keyword: CheckMissing})
		}
	}

	for _, rel := range agent.Artifacts {
		kind, ok := artifactKinds[rel]
		if !ok {
			continue
		}
		path := agent.Join(dir, rel)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		res, err := ValidateFile(kind, path)
		if err != nil {
			result.add(ValidationIssue{File: rel, Message: err.Error(), Keyword: "parse"})
			continue
		}
		result.merge(rel, res)
	}

	checkDocuments(dir, result)
	return result, nil
}

// checkDocuments runs the semantic checks on whichever documents decode.
func checkDocuments(dir string, result *ValidationResult) {
	var (
		agentDoc    *AgentManifest
		platformDoc *PlatformConfig
	)

	if m, err := ParseAgentFile(agent.Join(dir, agent.ManifestPath)); err == nil {
		agentDoc = m
		issues := CheckVersion(m.Version)
		if base := filepath.Base(filepath.Clean(dir)); m.Name != "" && m.Name != base {
			issues = append(issues, ValidationIssue{
				Path:    "/name",
				Message: fmt.Sprintf("name %q does not match directory %q", m.Name, base),
				Keyword: CheckMismatch,
			})
		}
		result.merge(agent.ManifestPath, &ValidationResult{Issues: issues})
	}

	if w, err := ParseWorkflowsFile(agent.Join(dir, agent.WorkflowsPath)); err == nil {
		result.merge(agent.WorkflowsPath, &ValidationResult{Issues: CheckWorkflows(w)})
	}

	if p, err := ParsePlatformConfigFile(agent.Join(dir, agent.PlatformConfigPath)); err == nil {
		platformDoc = p
		result.merge(agent.PlatformConfigPath, &ValidationResult{Issues: CheckPlatformConfig(p)})
	}

	if agentDoc != nil && platformDoc != nil && platformDoc.Platform != "" &&
		!slices.Contains(agentDoc.Platform.Target, platformDoc.Platform) {
		result.add(ValidationIssue{
			File:    agent.PlatformConfigPath,
			Path:    "/platform",
			Message: fmt.Sprintf("platform %q is not listed in %s platform.target", platformDoc.Platform, agent.ManifestPath),
			Keyword: CheckMismatch,
		})
	}
}
