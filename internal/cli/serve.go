package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/forma-cli/forma/internal/mcp"
	"github.com/forma-cli/forma/pkg/version"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"mcp"},
	Short:   "Run the MCP server over stdio",
	Long: `Run the Model Context Protocol server over stdin/stdout. Coding
assistants use it to query the project configuration and resolve
resource paths with the exact logic the add command uses.

Diagnostics go to stderr; stdout carries only protocol messages.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("root", "", "Project root directory (default: current directory)")
	serveCmd.Flags().Bool("verbose", false, "Log every request to stderr")
}

func runServe(cmd *cobra.Command, _ []string) error {
	root, err := projectRoot(cmd)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if getBoolFlag(cmd, "verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	server := mcp.NewServer(root, version.GetVersion(), cmd.InOrStdin(), cmd.OutOrStdout(), logger)
	return server.Serve(cmd.Context())
}
