package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/forma-cli/forma/internal/arch"
	"github.com/forma-cli/forma/internal/config"
	"github.com/forma-cli/forma/internal/scaffold"
	"github.com/forma-cli/forma/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add <type> <Name>",
	Short: "Generate a resource with its files and barrel entry",
	Long: `Generate a resource directory with its template files, and register
it in the parent barrel file.

Types: component, hook, page, service, context, store, type, api, feature.
Names must be PascalCase (e.g. UserProfile).

Examples:
  forma add component Button
  forma add component Button --level molecule
  forma add hook Auth
  forma add feature Checkout`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().String("root", "", "Project root directory (default: current directory)")
	addCmd.Flags().String("level", "", "Atomic level for components: atom, molecule, organism, template, or page")
	addCmd.Flags().Bool("dry-run", false, "Print the resolved directory and files without writing")
}

func runAdd(cmd *cobra.Command, args []string) error {
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

	// Atomic-design components without an explicit level get an
	// interactive picker instead of silently defaulting.
	if req.Type == arch.TypeComponent &&
		cfg.Pattern == config.PatternAtomicDesign &&
		req.AtomicLevel == "" &&
		isatty.IsTerminal(os.Stdin.Fd()) {
		level, err := promptAtomicLevel(cfg.Framework)
		if err != nil {
			if errors.Is(err, ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.OutOrStderr(), "Cancelled.")
				return nil
			}
			return err
		}
		req.AtomicLevel = level
	}

	if getBoolFlag(cmd, "dry-run") {
		info, err := arch.Resolve(req, cfg)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "Would create %s\n", filepath.Join(root, filepath.FromSlash(info.Directory)))
		_, _ = fmt.Fprintln(out, renderFileList(info.Files))
		if info.Note != "" {
			_, _ = fmt.Fprintln(out, cliWarn.Render("Note: "+info.Note))
		}
		return nil
	}

	spin := ui.NewProgress(ui.DefaultTheme(), ui.NewHeadlessManager()).
		Spinner(fmt.Sprintf("Generating %s %s", req.Type, req.Name))
	result, err := scaffold.Add(root, req, cfg)
	spin.Stop()
	if err != nil {
		return err
	}

	barrel := string(result.BarrelAction)
	if barrel == "" {
		barrel = "none"
	}
	details := []string{
		renderKeyValueLines([]kvPair{
			{"Directory", result.Directory},
			{"Name", result.ResolvedName},
			{"Barrel", barrel},
		}),
		renderFileList(result.Files),
	}
	if result.Note != "" {
		details = append(details, cliWarn.Render("Note: "+result.Note))
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout())
	_, _ = fmt.Fprintln(cmd.OutOrStdout(),
		renderSuccessCard(fmt.Sprintf("%s %s created", req.Type, result.ResolvedName), details...))
	return nil
}
