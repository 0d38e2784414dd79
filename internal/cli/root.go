package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forma-cli/forma/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "forma",
	Short: "forma: architecture-aware scaffolding for React and Next.js",
	Long: `forma scaffolds React and Next.js projects according to one of four
architecture patterns (atomic-design, feature-based, domain-driven,
mvc-like), persists the chosen configuration, and keeps generated
resources consistent through add, rename, and remove operations.

The same path-resolution logic the commands use is exposed to coding
assistants through an MCP server (forma serve).`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and translates errors into exit codes.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("forma %s\n", version.GetFullVersion()))
}

// projectRoot resolves the project root from the --root flag or the
// working directory. Ambient state is read once here; everything below
// the command layer receives the root explicitly.
func projectRoot(cmd *cobra.Command) (string, error) {
	if root, err := cmd.Flags().GetString("root"); err == nil && root != "" {
		return root, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return cwd, nil
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
