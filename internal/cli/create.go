package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/agentx-labs/agentinit/internal/agent"
	"github.com/agentx-labs/agentinit/internal/config"
	"github.com/agentx-labs/agentinit/internal/scaffold"
)

func runCreate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	platform := flagOrConfig(flags.Changed("platform"), createPlatform, config.KeyPlatform)
	author := flagOrConfig(flags.Changed("author"), createAuthor, config.KeyAuthor)
	output := flagOrConfig(flags.Changed("output"), createOutput, config.KeyOutput)

	cfg, err := agent.NewRunConfig(args[0], platform, createDescription, author, output)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Creating agent: %s\n", cfg.Name)
	fmt.Fprintf(out, "  Platform: %s\n", cfg.Platform)
	fmt.Fprintf(out, "  Author:   %s\n\n", cfg.Author)

	result, err := scaffold.Generate(cfg, scaffold.Options{Out: out})
	if err != nil {
		return err
	}

	printResult(out, cfg, result)
	return nil
}

// flagOrConfig returns the flag value when it was set explicitly, otherwise
// the configured default for key, otherwise the flag's built-in default.
func flagOrConfig(changed bool, value, key string) string {
	if changed {
		return value
	}
	if v := config.Get(key); v != "" {
		log.Debug("using configured default", "key", key, "value", v)
		return v
	}
	return value
}

func printResult(w io.Writer, cfg *agent.RunConfig, result *scaffold.Result) {
	if len(result.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}

	dir := result.AgentDir
	fmt.Fprintf(w, "\nAgent '%s' created at %s/ (%d files)\n", cfg.Name, dir, len(result.Files))
	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "  1. Edit %s with the agent details\n", agent.Join(dir, agent.ManifestPath))
	fmt.Fprintf(w, "  2. Configure skills in %s\n", agent.Join(dir, agent.SkillsPath))
	fmt.Fprintf(w, "  3. Define workflows in %s\n", agent.Join(dir, agent.WorkflowsPath))
	fmt.Fprintf(w, "  4. Adjust the platform in %s\n", agent.Join(dir, agent.PlatformConfigPath))
}
