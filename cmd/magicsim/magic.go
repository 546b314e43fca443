package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/magicsim/internal/config"
	"github.com/vovakirdan/magicsim/internal/magic"
)

var (
	flagPower float64
	flagColor string
)

var magicCmd = &cobra.Command{
	Use:   "magic <type>",
	Short: "Print the parameter bundle of a magic type",
	Long: `Print the parameters a magic type is cast with, as YAML.

The base bundle (type color, power 1) is overlaid with the magic section
of the config and then with --power/--color.

Types: fire, water

Examples:
  magicsim magic fire
  magicsim magic water --power 2 --color "#3399ff"`,
	Args: cobra.ExactArgs(1),
	Run:  runMagic,
}

func init() {
	magicCmd.Flags().Float64Var(&flagPower, "power", 1, "Override power")
	magicCmd.Flags().StringVar(&flagColor, "color", "", "Override color (any CSS color string)")
}

func runMagic(cmd *cobra.Command, args []string) {
	var o magic.Overrides
	if cmd.Flags().Changed("power") {
		o.Power = &flagPower
	}
	if cmd.Flags().Changed("color") {
		c := magic.TextColor(flagColor)
		o.Color = &c
	}

	if err := printMagic(cmd.OutOrStdout(), appConfig, args[0], o); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printMagic writes the params of the named type as YAML. Overrides in o win
// over the ones from cfg, field by field.
func printMagic(w io.Writer, cfg config.Config, name string, o magic.Overrides) error {
	t, err := magic.ParseType(name)
	if err != nil {
		return err
	}

	var params magic.Params
	if o.IsZero() {
		params, err = cfg.MagicParams(t)
	} else {
		params, err = magic.CreateParams(t, mergeOverrides(cfg.Magic[t], o))
	}
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to encode params: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// mergeOverrides applies the set fields of top over base.
func mergeOverrides(base, top magic.Overrides) magic.Overrides {
	if top.Power != nil {
		base.Power = top.Power
	}
	if top.Color != nil {
		base.Color = top.Color
	}
	if top.Behavior != nil {
		base.Behavior = top.Behavior
	}
	return base
}
