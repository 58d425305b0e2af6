package cli

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/agentx-labs/agentinit/internal/agent"
	"github.com/agentx-labs/agentinit/internal/branding"
	"github.com/agentx-labs/agentinit/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	createPlatform    string
	createDescription string
	createAuthor      string
	createOutput      string
	verbose           bool
)

func init() {
	rootCmd.Flags().StringVarP(&createPlatform, "platform", "p", string(agent.DefaultPlatform),
		"Target platform: "+strings.Join(agent.PlatformNames(), ", "))
	rootCmd.Flags().StringVarP(&createDescription, "description", "d", "", "Agent description (default: \"Agente <Title>\")")
	rootCmd.Flags().StringVarP(&createAuthor, "author", "a", branding.DefaultAuthor(), "Author recorded in the manifest")
	rootCmd.Flags().StringVarP(&createOutput, "output", "o", ".", "Directory in which the agent directory is created")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <name>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a new agent definition: an AGENT.md manifest, skill,
workflow and platform configuration files, a decision-patterns reference,
and the empty skills/, scripts/ and assets/ directories.

Examples:
  agentinit doc-processor
  agentinit doc-processor --platform n8n --description "Processa documentos"
  agentinit report-bot -p antigravity -a "Ana Souza" -o ./agents`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		config.Load()
	},
	RunE: runCreate,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
