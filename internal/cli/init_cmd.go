package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/forma-cli/forma/internal/arch"
	"github.com/forma-cli/forma/internal/config"
	"github.com/forma-cli/forma/internal/prefs"
	"github.com/forma-cli/forma/internal/scaffold"
	"github.com/forma-cli/forma/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init [project-dir]",
	Short: "Initialize a project with an architecture configuration",
	Long: `Initialize a project: choose framework, pattern, language, styling,
and test settings, write the configuration file, and scaffold the
pattern's folder structure.

Usage patterns:
  forma init              Initialize in the current directory
  forma init my-app       Create ./my-app/ and initialize inside it
  forma init --dry-run    Show the folder plan without writing anything`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("root", "", "Project root directory (default: current directory)")
	initCmd.Flags().String("framework", "", "Framework: react or nextjs")
	initCmd.Flags().String("pattern", "", "Architecture pattern: atomic-design, feature-based, domain-driven, or mvc-like")
	initCmd.Flags().String("language", "", "Language: typescript or javascript")
	initCmd.Flags().String("styling", "", "Styling: css or scss")
	initCmd.Flags().Bool("with-tests", false, "Generate test files alongside resources")
	initCmd.Flags().Bool("use-client", false, "Next.js only: add 'use client' to generated components by default")
	initCmd.Flags().Bool("non-interactive", false, "Skip the wizard; use flags and remembered preferences")
	initCmd.Flags().Bool("dry-run", false, "Print the folder plan without touching the disk")
	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	root, err := projectRoot(cmd)
	if err != nil {
		return err
	}
	dryRun := getBoolFlag(cmd, "dry-run")

	if len(args) > 0 && args[0] != "." {
		abs, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolve project path %q: %w", args[0], err)
		}
		root = abs
		if !dryRun {
			if err := os.MkdirAll(root, 0o755); err != nil {
				return fmt.Errorf("create project directory %q: %w", args[0], err)
			}
		}
	}

	if config.Exists(root) && !getBoolFlag(cmd, "force") && !dryRun {
		return fmt.Errorf("%s already exists in %s (use --force to overwrite)", config.FileName, root)
	}

	cfg := &config.Config{
		Framework: getStringFlag(cmd, "framework"),
		Pattern:   getStringFlag(cmd, "pattern"),
		Language:  getStringFlag(cmd, "language"),
		Styling:   getStringFlag(cmd, "styling"),
		WithTests: getBoolFlag(cmd, "with-tests"),
		UseClient: getBoolFlag(cmd, "use-client"),
	}

	interactive := !getBoolFlag(cmd, "non-interactive") &&
		isatty.IsTerminal(os.Stdin.Fd()) &&
		!dryRun

	if interactive {
		// Remembered answers from the last run seed the wizard; explicit
		// flags still win.
		if p, err := prefs.Load(); err == nil {
			p.Apply(cfg)
		}
		if err := runInitWizard(cfg); err != nil {
			if errors.Is(err, ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.OutOrStderr(), "Initialization cancelled.")
				return nil
			}
			return fmt.Errorf("wizard failed: %w", err)
		}
	} else {
		applyInitDefaults(cfg)
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	structure := arch.StructureFor(cfg)

	if dryRun {
		printInitPlan(cmd, cfg, structure)
		return nil
	}

	if err := config.Save(root, cfg); err != nil {
		return err
	}

	hm := ui.NewHeadlessManager()
	if !interactive {
		hm.ForceHeadless(true)
	}
	bar := ui.NewProgress(ui.DefaultTheme(), hm).Bar("Scaffolding folders", len(structure.Folders))
	created, err := scaffold.ScaffoldFolders(root, structure)
	bar.Increment(len(created))
	bar.Done()
	if err != nil {
		return err
	}

	if err := prefs.Save(prefs.FromConfig(cfg)); err != nil {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Warning: could not save preferences: %v\n", err)
	}

	details := []string{
		renderKeyValueLines([]kvPair{
			{"Framework", arch.DisplayName(cfg.Framework)},
			{"Pattern", arch.DisplayName(cfg.Pattern)},
			{"Language", arch.DisplayName(cfg.Language)},
			{"Folders", fmt.Sprintf("%d created", len(created))},
		}),
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout())
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccessCard("Project initialized", details...))
	return nil
}

// applyInitDefaults fills unset fields for non-interactive runs.
func applyInitDefaults(cfg *config.Config) {
	if cfg.Framework == "" {
		cfg.Framework = config.FrameworkReact
	}
	if cfg.Pattern == "" {
		cfg.Pattern = config.PatternFeatureBased
	}
	if cfg.Language == "" {
		cfg.Language = config.LanguageTypeScript
	}
	if cfg.Styling == "" {
		cfg.Styling = config.StylingCSS
	}
}

// printInitPlan shows what init would create, without side effects.
func printInitPlan(cmd *cobra.Command, cfg *config.Config, s *arch.Structure) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Would write %s:\n", config.FileName)
	explanation := config.Explain(cfg)
	for _, key := range config.Keys {
		_, _ = fmt.Fprintf(out, "  %-10s %s\n", key, explanation[key])
	}
	_, _ = fmt.Fprintln(out, "\nWould create folders:")
	_, _ = fmt.Fprintln(out, strings.TrimRight(renderFileList(s.Folders), "\n"))
}
