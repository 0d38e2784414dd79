package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/forma-cli/forma/internal/arch"
	"github.com/forma-cli/forma/internal/config"
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the architecture guide for the configured pattern",
	Long: `Show where each resource type lives, what it is named, and which
file extensions apply under the configured framework and pattern.`,
	Args: cobra.NoArgs,
	RunE: runGuide,
}

func init() {
	rootCmd.AddCommand(guideCmd)

	guideCmd.Flags().String("root", "", "Project root directory (default: current directory)")
	guideCmd.Flags().Bool("plain", false, "Print raw markdown without terminal rendering")
}

func runGuide(cmd *cobra.Command, _ []string) error {
	root, err := projectRoot(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	markdown := arch.GuideFor(cfg).Markdown()

	if getBoolFlag(cmd, "plain") || !isatty.IsTerminal(os.Stdout.Fd()) {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), markdown)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), markdown)
		return nil
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), markdown)
		return nil
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
