package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/magicsim/internal/games/magicsim"
	"github.com/vovakirdan/magicsim/internal/platform/tui"
	"github.com/vovakirdan/magicsim/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode (default: sandbox).

Modes:
` + registry.Usage() + `

Controls:
  W/A/S/D, arrows  - Move one tile (push a crate ahead of you)
  Space            - Cast the active magic where you face
  Tab              - Switch between fire and water
  R                - Reset the map
  ` + "`" + `/F3             - Toggle the debug window
  ?                - Show all keys
  P                - Pause
  Esc/B            - Back (exits when not started from the menu)
  Q/Ctrl+C         - Quit

Examples:
  magicsim play
  magicsim play clear
  magicsim play --config ./my-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := string(magicsim.ModeSandbox)
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if errors.Is(err, registry.ErrUnknownMode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'magicsim list' to see available modes.")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, ring, closeLog, err := newLogger(appConfig.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	_, runErr := tui.Run(game, runtimeConfig(), sessionOptions(logger, ring))

	// Close log before potential exit
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
