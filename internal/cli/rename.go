package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forma-cli/forma/internal/arch"
	"github.com/forma-cli/forma/internal/config"
	"github.com/forma-cli/forma/internal/scaffold"
)

var renameCmd = &cobra.Command{
	Use:   "rename <type> <OldName> <NewName>",
	Short: "Rename a resource, rewriting files and references",
	Long: `Rename a resource in place: every nested file and directory is
renamed, textual contents are rewritten to the new identifiers, and the
parent barrel file is patched.

Examples:
  forma rename component Button IconButton
  forma rename context Auth Cart`,
	Args: cobra.ExactArgs(3),
	RunE: runRename,
}

func init() {
	rootCmd.AddCommand(renameCmd)

	renameCmd.Flags().String("root", "", "Project root directory (default: current directory)")
	renameCmd.Flags().String("level", "", "Atomic level of the component being renamed")
}

func runRename(cmd *cobra.Command, args []string) error {
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

	result, err := scaffold.Rename(root, req, args[2], cfg)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(),
		renderSuccessCard(fmt.Sprintf("%s %s renamed to %s", req.Type, args[1], args[2]),
			renderKeyValueLines([]kvPair{
				{"From", result.OldPath},
				{"To", result.NewPath},
			})))
	return nil
}
