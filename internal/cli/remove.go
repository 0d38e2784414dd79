package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/forma-cli/forma/internal/arch"
	"github.com/forma-cli/forma/internal/config"
	"github.com/forma-cli/forma/internal/scaffold"
)

var removeCmd = &cobra.Command{
	Use:   "remove <type> <Name>",
	Short: "Delete a resource directory",
	Long: `Delete a resource and everything inside its directory. Asks for
confirmation unless --yes is given.`,
	Args: cobra.ExactArgs(2),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)

	removeCmd.Flags().String("root", "", "Project root directory (default: current directory)")
	removeCmd.Flags().String("level", "", "Atomic level of the component being removed")
	removeCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

func runRemove(cmd *cobra.Command, args []string) error {
	root, err := projectRoot(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	req := arch.Request{
		Type:        arch.ResourceType(args[0]),
		Name:        args[1],
		AtomicLevel: getStringFlag(cmd, "level"),
	}

	if !getBoolFlag(cmd, "yes") {
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("refusing to remove without confirmation; pass --yes in non-interactive runs")
		}
		confirmed, err := promptConfirmRemoval(fmt.Sprintf("%s %s", req.Type, req.Name))
		if err != nil {
			if errors.Is(err, ErrCancelled) {
				confirmed = false
			} else {
				return err
			}
		}
		if !confirmed {
			// Declining is a success, not a failure.
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Nothing removed.")
			return nil
		}
	}

	removed, err := scaffold.Remove(root, req, cfg)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(),
		renderSuccessCard(fmt.Sprintf("%s %s removed", req.Type, req.Name),
			cliMuted.Render(removed)))
	return nil
}
