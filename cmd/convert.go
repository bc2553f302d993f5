package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mibohl/cloning-calculator/internal/mix"
)

// convertCmd is for one-off conversions between molar amount and mass
// of a single fragment
var convertCmd = &cobra.Command{
	Use:                        "convert [mass,moles]",
	Short:                      "Convert between molar amount and mass of a fragment",
	SuggestionsMinimumDistance: 2,
	Long: `
Convert between a fragment's molar amount (pmol) and its mass (ng) using the
fragment's length and the configured molar mass per base pair.`,
}

// convertMassCmd converts pmol to ng
var convertMassCmd = &cobra.Command{
	Use:                        "mass [pmol] [kbp]",
	Short:                      "Convert a molar amount (pmol) to a mass (ng)",
	Run:                        mix.ConvertMassCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  clonecalc convert mass 0.5 5.0",
}

// convertMolesCmd converts ng to pmol
var convertMolesCmd = &cobra.Command{
	Use:                        "moles [ng] [kbp]",
	Short:                      "Convert a mass (ng) to a molar amount (pmol)",
	Run:                        mix.ConvertMolesCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  clonecalc convert moles 550 5.0",
	Aliases:                    []string{"amount"},
}

// set flags
func init() {
	convertCmd.AddCommand(convertMassCmd)
	convertCmd.AddCommand(convertMolesCmd)

	rootCmd.AddCommand(convertCmd)
}
