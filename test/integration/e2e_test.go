//go:build integration

package integration_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agentx-labs/agentinit/internal/agent"
	"github.com/agentx-labs/agentinit/internal/config"
	"github.com/agentx-labs/agentinit/internal/manifest"
	"github.com/agentx-labs/agentinit/internal/scaffold"
)

var expectedTree = []string{
	"AGENT.md",
	"assets/",
	"assets/.gitkeep",
	"config/",
	"config/platform-config.yaml",
	"config/skills.yaml",
	"config/workflows.yaml",
	"references/",
	"references/decision-patterns.md",
	"scripts/",
	"scripts/.gitkeep",
	"skills/",
	"skills/.gitkeep",
}

// TestFullFlowEveryPlatform scaffolds one agent per platform and name shape,
// then validates the result the way `agentinit validate` does.
func TestFullFlowEveryPlatform(t *testing.T) {
	env := setupTestEnv(t)
	names := []string{"a", "doc-processor", "Agent2Go", "x-1-y-2"}

	for _, p := range agent.Platforms {
		for _, name := range names {
			t.Run(fmt.Sprintf("%s/%s", p, name), func(t *testing.T) {
				out := filepath.Join(env.OutputDir, string(p))
				cfg, err := agent.NewRunConfig(name, string(p), "", "", out)
				if err != nil {
					t.Fatalf("NewRunConfig: %v", err)
				}

				result, err := scaffold.Generate(cfg, scaffold.Options{})
				if err != nil {
					t.Fatalf("Generate: %v", err)
				}
				if len(result.Warnings) > 0 {
					t.Errorf("warnings: %v", result.Warnings)
				}

				if got := strings.Join(listTree(t, result.AgentDir), "\n"); got != strings.Join(expectedTree, "\n") {
					t.Errorf("tree mismatch:\n%s", got)
				}

				res, err := manifest.ValidateAgentDir(result.AgentDir)
				if err != nil {
					t.Fatalf("ValidateAgentDir: %v", err)
				}
				if !res.Valid {
					t.Errorf("generated agent invalid: %v", res.Issues)
				}

				pc, err := manifest.ParsePlatformConfigFile(agent.Join(result.AgentDir, agent.PlatformConfigPath))
				if err != nil {
					t.Fatalf("ParsePlatformConfigFile: %v", err)
				}
				if frags := pc.Fragments(); len(frags) != 1 || frags[0] != manifest.FragmentKey(string(p)) {
					t.Errorf("fragments = %v", frags)
				}
			})
		}
	}
}

// TestRerunLeavesTreeUntouched runs the generator twice on the same target.
func TestRerunLeavesTreeUntouched(t *testing.T) {
	env := setupTestEnv(t)
	cfg, err := agent.NewRunConfig("repeat", "n8n", "Primeira execução", "ana", env.OutputDir)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := scaffold.Generate(cfg, scaffold.Options{}); err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	dir := cfg.AgentDir()
	before := readTree(t, dir)

	second, err := agent.NewRunConfig("repeat", "claude-code", "Segunda", "bia", env.OutputDir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := scaffold.Generate(second, scaffold.Options{}); !errors.Is(err, agent.ErrAlreadyExists) {
		t.Fatalf("second Generate error = %v, want ErrAlreadyExists", err)
	}

	after := readTree(t, dir)
	if len(after) != len(before) {
		t.Fatalf("file count changed: %d -> %d", len(before), len(after))
	}
	for rel, content := range before {
		if after[rel] != content {
			t.Errorf("%s changed", rel)
		}
	}
	assertFileContains(t, filepath.Join(dir, "AGENT.md"), "Primeira execução")
}

// TestDatesFollowClock checks that the manifest dates come from the injected clock.
func TestDatesFollowClock(t *testing.T) {
	env := setupTestEnv(t)
	cfg, err := agent.NewRunConfig("dated", "claude-code", "", "marcos-defenz", env.OutputDir)
	if err != nil {
		t.Fatal(err)
	}
	clock := func() time.Time { return time.Date(2031, 2, 3, 23, 59, 0, 0, time.UTC) }

	if _, err := scaffold.Generate(cfg, scaffold.Options{Now: clock}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	m, err := manifest.ParseAgentFile(filepath.Join(cfg.AgentDir(), "AGENT.md"))
	if err != nil {
		t.Fatal(err)
	}
	if m.Metadata.Created != "2031-02-03" || m.Metadata.LastUpdated != "2031-02-03" {
		t.Errorf("dates = %s / %s", m.Metadata.Created, m.Metadata.LastUpdated)
	}
}

// TestConfigDefaultsRoundTrip persists defaults under the sandboxed HOME and
// reads them back through a fresh load.
func TestConfigDefaultsRoundTrip(t *testing.T) {
	env := setupTestEnv(t)
	config.Load()

	if err := config.Set(config.KeyPlatform, "antigravity"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	assertFileExists(t, filepath.Join(env.HomeDir, ".agentinit", "config.yaml"))
	assertFileContains(t, config.FilePath(), "default_platform: antigravity")

	config.Load()
	cfg, err := agent.NewRunConfig("configured", config.Get(config.KeyPlatform), "", "", env.OutputDir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := scaffold.Generate(cfg, scaffold.Options{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	assertFileContains(t, filepath.Join(cfg.AgentDir(), "config", "platform-config.yaml"), "antigravity:")
	assertFileNotExists(t, filepath.Join(env.OutputDir, "configured", "config", "platform-config.yaml.tmp"))
}
