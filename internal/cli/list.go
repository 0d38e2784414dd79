package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forma-cli/forma/internal/config"
	"github.com/forma-cli/forma/internal/scaffold"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the resources present in the project",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().String("root", "", "Project root directory (default: current directory)")
	listCmd.Flags().String("type", "", "Only list resources of this type")
}

func runList(cmd *cobra.Command, _ []string) error {
	root, err := projectRoot(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	filter := getStringFlag(cmd, "type")
	entries := scaffold.Inventory(root, cfg)
	out := cmd.OutOrStdout()

	count := 0
	pairs := make([]kvPair, 0, len(entries))
	for _, e := range entries {
		if filter != "" && string(e.Type) != filter {
			continue
		}
		count++
		pairs = append(pairs, kvPair{
			key:   fmt.Sprintf("%-10s %s", e.Type, e.Name),
			value: cliMuted.Render(e.Path),
		})
	}

	if count == 0 {
		_, _ = fmt.Fprintln(out, "No resources found.")
		return nil
	}

	_, _ = fmt.Fprintln(out, renderCard(
		fmt.Sprintf("Resources (%d)", count),
		renderKeyValueLines(pairs),
	))
	return nil
}
