package agent

import "path/filepath"

// Fixed subdirectories of every agent directory.
const (
	ConfigDir     = "config"
	SkillsDir     = "skills"
	ScriptsDir    = "scripts"
	ReferencesDir = "references"
	AssetsDir     = "assets"
)

// Subdirectories lists the fixed agent subdirectories in creation order.
var Subdirectories = []string{ConfigDir, SkillsDir, ScriptsDir, ReferencesDir, AssetsDir}

// MarkerDirs are the subdirectories that receive an empty marker file so that
// tools discarding empty directories still track them.
var MarkerDirs = []string{SkillsDir, ScriptsDir, AssetsDir}

// MarkerFile is the name of the empty marker file.
const MarkerFile = ".gitkeep"

// Artifact paths, relative to the agent directory, using forward slashes.
const (
	ManifestPath         = "AGENT.md"
	SkillsPath           = ConfigDir + "/skills.yaml"
	WorkflowsPath        = ConfigDir + "/workflows.yaml"
	PlatformConfigPath   = ConfigDir + "/platform-config.yaml"
	DecisionPatternsPath = ReferencesDir + "/decision-patterns.md"
)

// Artifacts lists the rendered documents in write order.
var Artifacts = []string{
	ManifestPath,
	SkillsPath,
	WorkflowsPath,
	PlatformConfigPath,
	DecisionPatternsPath,
}

// Markers returns the marker file paths relative to the agent directory.
func Markers() []string {
	out := make([]string, len(MarkerDirs))
	for i, d := range MarkerDirs {
		out[i] = d + "/" + MarkerFile
	}
	return out
}

// Join resolves a slash-separated artifact path under dir.
func Join(dir, rel string) string {
	return filepath.Join(dir, filepath.FromSlash(rel))
}
