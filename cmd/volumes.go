package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mibohl/cloning-calculator/internal/mix"
)

// volumesCmd is for calculating the volume of each fragment to pipette
// into an assembly reaction mix
var volumesCmd = &cobra.Command{
	Use:                        "volumes",
	Short:                      "Calculate the volume of each fragment to pipette into a reaction mix",
	Run:                        mix.VolumesCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"vol", "mix"},
	Long: `Calculate, per fragment, the molar amount (pmol), mass (ng) and volume (µL)
to pipette into a DNA assembly reaction mix (Gibson, Golden Gate, ligation).

The backbone is always the first fragment. Every insert is added at the
insert:backbone molar ratio, and the amounts sum to the total amount of DNA.
Fragments are passed as comma separated lists, in a TOML reaction file, or
interactively when neither is given.`,
	Example: `  clonecalc volumes -l 5.0,1.0 -c 100,150 -r 2.0 -n 0.5
  clonecalc volumes -i reaction.toml -w
  clonecalc volumes`,
}

// set flags
func init() {
	volumesCmd.Flags().StringP("length", "l", "", "comma separated fragment lengths (kbp), backbone first")
	volumesCmd.Flags().StringP("conc", "c", "", "comma separated fragment concentrations (ng/µL), same order")
	volumesCmd.Flags().Float64P("ratio", "r", 2.0, "insert:backbone molar ratio")
	volumesCmd.Flags().Float64P("total", "n", 0.5, "total amount of DNA in the mix (pmol)")
	volumesCmd.Flags().StringP("in", "i", "", "input reaction file <TOML>")
	volumesCmd.Flags().StringP("out", "o", "", "output file name with the calculated mix <JSON>")
	volumesCmd.Flags().BoolP("watch", "w", false, "recalculate whenever the reaction file changes")

	viper.BindPFlag("defaults.ratio", volumesCmd.Flags().Lookup("ratio"))
	viper.BindPFlag("defaults.total", volumesCmd.Flags().Lookup("total"))

	rootCmd.AddCommand(volumesCmd)
}
