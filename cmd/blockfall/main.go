// blockfall is a falling-block puzzle that runs in the terminal, on an
// emulated memory-mapped panel or in a desktop window.
//
// Usage:
//
//	blockfall list                 - List available variants
//	blockfall play [variant]       - Play a variant (default: blockfall)
//	blockfall menu                 - Pick a variant and difficulty interactively
//	blockfall shapes [kind]        - Print the piece catalog
//	blockfall config show [variant] - Print the effective config
//
// Global flags:
//
//	--config <path>    - Custom config YAML
//	--preset <name>    - Difficulty preset: easy, normal, hard, fixed
//	--seed <value>     - Sequencer seed override (0 keeps the config's)
//	--fps <rate>       - Tick rate override (0 keeps the variant's)
//	--log-level <lvl>  - debug, info, warn, error
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

var (
	// Global flags
	flagConfig   string
	flagPreset   string
	flagSeed     uint64
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle for terminals and panels",
	Long: `Blockfall drops pieces into a well. There is no line clearing: when
a piece lands at the very top the board is wiped and play continues.

Available commands:
  list     - Show all variants
  play     - Play a variant on a chosen display
  menu     - Interactive variant picker
  shapes   - Print the piece catalog
  config   - Inspect configuration

Examples:
  blockfall play
  blockfall play blockfall_mock --display ansi
  blockfall play --display mmio --ticks 500 --no-input
  blockfall menu --preset hard
  blockfall shapes T`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "Sequencer seed (0 = config value)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = variant default)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(configCmd)
}

// exitErr prints an error the way every command reports failures and exits.
func exitErr(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the run logger. Without --log-file, logs go to stderr
// unless the display owns the terminal, in which case they are discarded.
// The returned func closes the log file.
func newLogger(ownsTerminal bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	case ownsTerminal:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
		Level:           level,
	})
	return logger.With("run", uuid.NewString()), closer, nil
}

// setupGames applies the global flags to games created afterwards.
func setupGames(logger *log.Logger) error {
	if _, err := config.ParsePreset(flagPreset); err != nil {
		return err
	}
	blockfall.SetConfigPath(flagConfig)
	blockfall.SetDifficultyPreset(flagPreset)
	blockfall.SetLogger(logger)
	return nil
}

// runtimeConfig reads the terminal size and applies the global overrides.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
