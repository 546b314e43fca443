// magicsim is a terminal grid sandbox: walk a tile board, push crates, and
// set them on fire or put them out with magic.
//
// Usage:
//
//	magicsim list                  - List game modes
//	magicsim play [mode]           - Play a mode (default: sandbox)
//	magicsim menu                  - Pick modes interactively
//	magicsim magic <type>          - Print the parameter bundle of a magic type
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Use a custom magicsim.yaml
//	--log <path>          - Append logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/magicsim/internal/config"
	"github.com/vovakirdan/magicsim/internal/games/magicsim"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLog      string
	flagLogLevel string

	// appConfig is loaded once per invocation by loadConfig.
	appConfig config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "magicsim",
	Short: "Magic Sim - push crates and cast fire and water in your terminal",
	Long: `Magic Sim is a small grid sandbox. Walk the board with WASD, push
crates one at a time, and cast fire to burn them down or water to put
them out.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  magic    - Print a magic type's parameters as YAML

Examples:
  magicsim play
  magicsim play clear --fps 30
  magicsim menu --log ~/.magicsim/magicsim.log
  magicsim magic water --power 2`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom magicsim.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Log file path (overrides log.path in config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(magicCmd)
}

// loadConfig loads and validates the configuration, applies flag overrides
// and hands the result to the game package.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log") {
		cfg.Log.Path = flagLog
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	appConfig = cfg
	magicsim.SetConfig(cfg)
	return nil
}
