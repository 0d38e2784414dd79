package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forma-cli/forma/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change the project configuration",
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set one configuration value and persist the result.

Keys: ` + strings.Join(config.Keys, ", ") + `

Examples:
  forma config set pattern atomic-design
  forma config set withTests true`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a single configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all configuration values with explanations",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd, configGetCmd, configListCmd)

	configCmd.PersistentFlags().String("root", "", "Project root directory (default: current directory)")
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	root, err := projectRoot(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := config.Set(cfg, key, value); err != nil {
		return err
	}
	if err := config.Save(root, cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(),
		renderSuccessCard(fmt.Sprintf("%s set to %s", key, value)))
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	root, err := projectRoot(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	value, err := config.Get(cfg, args[0])
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	root, err := projectRoot(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	explanation := config.Explain(cfg)
	pairs := make([]kvPair, 0, len(config.Keys))
	for _, key := range config.Keys {
		value, _ := config.Get(cfg, key)
		pairs = append(pairs, kvPair{
			key:   key,
			value: value + "  " + cliMuted.Render(explanation[key]),
		})
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(),
		renderCard("Configuration", renderKeyValueLines(pairs)))
	return nil
}
