package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show [variant]",
	Short: "Print the effective config of a variant",
	Long: `Loads the config the way 'play' does (--config, then
~/.blockfall/configs, then ./configs, then the built-in default), applies
--preset and --seed, and prints the result as YAML.

Examples:
  blockfall config show
  blockfall config show blockfall_mock --preset hard`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfigShow,
}

var configDefaultCmd = &cobra.Command{
	Use:   "default [variant]",
	Short: "Print the built-in default config of a variant",
	Long: `Prints the embedded default YAML, a starting point for a custom
config file.

Example:
  blockfall config default blockfall_mock > ~/.blockfall/configs/blockfall_mock.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfigDefault,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configDefaultCmd)
}

func variantArg(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return config.VariantDisplay
}

func runConfigShow(_ *cobra.Command, args []string) {
	variant := variantArg(args)
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		exitErr("%v", err)
	}

	cfg, source, err := config.LoadBlockfall(variant, flagConfig)
	if err != nil {
		exitErr("%v", err)
	}
	config.ApplyBlockfallPreset(&cfg, preset)
	if flagSeed != 0 {
		cfg.Sequencer.Seed = flagSeed
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		exitErr("%v", err)
	}
	fmt.Printf("# variant: %s\n# source: %s\n# preset: %s\n", variant, source, preset)
	os.Stdout.Write(data)
}

func runConfigDefault(_ *cobra.Command, args []string) {
	variant := variantArg(args)
	data := config.GetDefaultYAML(variant)
	if data == nil {
		exitErr("%v %q", config.ErrUnknownVariant, variant)
	}
	os.Stdout.Write(data)
}
