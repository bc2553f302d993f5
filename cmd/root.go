// Package cmd is for command line interactions with the clonecalc application
package cmd

import (
	"log"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mibohl/cloning-calculator/config"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "clonecalc",
	Short: `Calculate pipetting volumes for DNA assembly reaction mixes.
Give each fragment's length and concentration, a molar ratio, and a total amount`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		settings, _ := cmd.Flags().GetString("settings")
		config.Setup(settings)

		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if viper.GetBool("verbose") {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	rootCmd.PersistentFlags().StringP("settings", "s", config.RootSettingsFile, "path to the settings file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "whether to log debug messages")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}
