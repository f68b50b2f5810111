package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and difficulty, then play",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a variant, Left/Right to change the
difficulty, Enter to play. Quitting a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate
  Left/Right   - Difficulty
  Enter/Space  - Play
  Q            - Quit

Examples:
  blockfall menu
  blockfall menu --preset hard --log-file /tmp/blockfall.log`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		exitErr("%v", err)
	}
	defer closeLog()

	if err := setupGames(logger); err != nil {
		exitErr("%v", err)
	}

	cfg := runtimeConfig()
	preset, _ := config.ParsePreset(flagPreset)

	for {
		result, err := tui.RunMenu(cfg, preset)
		if err != nil {
			closeLog()
			exitErr("%v", err)
		}
		cfg = result.Config
		preset = result.Preset
		if result.Quit {
			return
		}

		blockfall.SetDifficultyPreset(string(preset))
		game, err := registry.Create(result.GameID)
		if err != nil {
			closeLog()
			exitErr("creating variant: %v", err)
		}

		logger.Info("starting", "variant", result.GameID, "preset", preset)
		if err := tui.Run(game, cfg, logger); err != nil {
			closeLog()
			exitErr("running %s: %v", result.GameID, err)
		}
	}
}
