package cmd

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// settable are the settings that can be updated via "clonecalc set"
var settable = []string{
	"bp-mass",
	"defaults.ratio",
	"defaults.total",
	"defaults.backbone-length",
	"defaults.backbone-conc",
	"defaults.insert-length",
	"defaults.insert-conc",
	"limits.min-length",
	"limits.min-conc",
	"limits.min-ratio",
	"limits.min-total",
}

// setCmd is for updating a default or limit in the settings file
var setCmd = &cobra.Command{
	Use:                        "set [setting] [value]",
	Short:                      "Update a setting in the settings file",
	Run:                        setRun,
	Args:                       cobra.ExactArgs(2),
	SuggestionsMinimumDistance: 1,
	Aliases:                    []string{"update"},
	Long: `
Update a default or limit in the settings file. Updated defaults are prefilled
in interactive mode and used whenever a flag or reaction file leaves the value
unset.`,
	Example: "  clonecalc set defaults.ratio 3.0",
}

// setRun updates one setting, writing the settings file back out
func setRun(cmd *cobra.Command, args []string) {
	key := args[0]

	known := false
	for _, s := range settable {
		if s == key {
			known = true
			break
		}
	}
	if !known {
		log.Fatalf("unrecognized setting %s, choose one of %v", key, settable)
	}

	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		log.Fatalf("%s is not a number", args[1])
	}
	if value <= 0 {
		log.Fatalf("%s must be positive", key)
	}

	viper.Set(key, value)
	if err := viper.WriteConfig(); err != nil {
		log.Fatalf("failed to write settings, %v", err)
	}

	fmt.Printf("%s = %s\n", key, args[1])
}
