package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/agentinit/internal/manifest"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <dir>",
	Short: "Check a scaffolded agent directory",
	Long: `Check the layout of an agent directory, validate AGENT.md and the config/
documents against their schemas, and verify the manifest version, the
workflow transitions and the platform fragment.

Example:
  agentinit validate ./doc-processor`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		out := cmd.OutOrStdout()

		result, err := manifest.ValidateAgentDir(dir)
		if err != nil {
			return err
		}

		if result.Valid {
			fmt.Fprintf(out, "  [ OK ] %s is a valid agent directory\n", dir)
			return nil
		}
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "  [FAIL] %s\n", issue)
		}
		return fmt.Errorf("%s: %d issue(s) found", dir, len(result.Issues))
	},
}
