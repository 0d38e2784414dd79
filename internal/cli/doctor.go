package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forma-cli/forma/internal/arch"
	"github.com/forma-cli/forma/internal/config"
	"github.com/forma-cli/forma/internal/scaffold"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the project configuration and folder structure",
	Long: `Check project health: configuration file presence, schema and enum
validity, and whether the folders the configured pattern expects are
present on disk.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)

	doctorCmd.Flags().String("root", "", "Project root directory (default: current directory)")
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	root, err := projectRoot(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	var problems []string
	ok := func(label string) {
		_, _ = fmt.Fprintln(out, cliSuccess.Render("✓")+" "+label)
	}
	fail := func(label, detail string) {
		_, _ = fmt.Fprintln(out, cliError.Render("✗")+" "+label)
		if detail != "" {
			_, _ = fmt.Fprintln(out, "  "+cliMuted.Render(detail))
		}
		problems = append(problems, label)
	}

	if !config.Exists(root) {
		fail("configuration file", config.ErrConfigMissing.Error())
		return fmt.Errorf("%d problem(s) found", len(problems))
	}
	ok("configuration file present")

	// Schema check runs on the raw document so malformed JSON and
	// out-of-domain values are reported before the typed load.
	issues, err := config.ValidateDocument(root)
	switch {
	case err != nil:
		fail("configuration schema", err.Error())
	case len(issues) > 0:
		details := make([]string, len(issues))
		for i, issue := range issues {
			details[i] = issue.String()
		}
		fail("configuration schema", strings.Join(details, "; "))
	default:
		ok("configuration schema valid")
	}

	cfg, err := config.Load(root)
	if err != nil {
		var verrs *config.ValidationErrors
		if errors.As(err, &verrs) {
			fail("configuration values", verrs.Error())
		} else {
			fail("configuration values", err.Error())
		}
		return fmt.Errorf("%d problem(s) found", len(problems))
	}
	ok("configuration values in domain")

	// Missing folders are a warning, not a failure: the structure is
	// restored by the next add, or by re-running init.
	missing := scaffold.MissingFolders(root, arch.StructureFor(cfg))
	if len(missing) > 0 {
		_, _ = fmt.Fprintln(out, cliWarn.Render("!")+" expected folders")
		_, _ = fmt.Fprintln(out, "  "+cliMuted.Render("missing: "+strings.Join(missing, ", ")))
	} else {
		ok("expected folders present")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%d problem(s) found", len(problems))
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard("Project healthy"))
	return nil
}
