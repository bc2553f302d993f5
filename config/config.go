// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultsConfig are the values prefilled in interactive mode and used
// when a flag or reaction file leaves a parameter unset
type DefaultsConfig struct {
	// the insert:backbone molar ratio
	Ratio float64 `mapstructure:"ratio"`

	// the total molar amount of DNA in the reaction (pmol)
	Total float64 `mapstructure:"total"`

	// backbone length (kbp)
	BackboneLength float64 `mapstructure:"backbone-length"`

	// backbone concentration (ng/µL)
	BackboneConc float64 `mapstructure:"backbone-conc"`

	// insert length (kbp)
	InsertLength float64 `mapstructure:"insert-length"`

	// insert concentration (ng/µL)
	InsertConc float64 `mapstructure:"insert-conc"`
}

// LimitsConfig are the minimum allowed input values. They keep
// degenerate reactions (zero concentration, zero total) out of the
// calculator
type LimitsConfig struct {
	// minimum fragment length (kbp)
	Length float64 `mapstructure:"min-length"`

	// minimum fragment concentration (ng/µL)
	Conc float64 `mapstructure:"min-conc"`

	// minimum insert:backbone ratio
	Ratio float64 `mapstructure:"min-ratio"`

	// minimum total molar amount (pmol)
	Total float64 `mapstructure:"min-total"`
}

// Config is the root-level settings struct and is a mix
// of settings available in settings.yaml and those
// available from the command line
type Config struct {
	// average molar mass of a DNA base pair (g/mol)
	BpMass float64 `mapstructure:"bp-mass"`

	// whether to log debug messages
	Verbose bool `mapstructure:"verbose"`

	// Default input values
	Defaults DefaultsConfig `mapstructure:"defaults"`

	// Minimum input values
	Limits LimitsConfig `mapstructure:"limits"`
}

// RootSettingsFile is the default path to the user's settings file
var RootSettingsFile = filepath.Join(userDir(), "settings.yaml")

// New returns a new Config struct populated by Viper settings (either
// from the local settings.yaml) and/or command line arguments
func New() *Config {
	setDefaults()

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return c
}

// Setup reads the user's settings file into Viper, creating an empty
// one on first run so "clonecalc set" has a file to write to
func Setup(file string) {
	if file == "" {
		file = RootSettingsFile
	}

	viper.SetConfigFile(file)
	viper.SetConfigType("yaml")

	if _, err := os.Stat(file); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
			return // read-only home, run on stock defaults
		}
		if err := os.WriteFile(file, []byte{}, 0644); err != nil {
			return
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("failed to read settings file %s, %v", file, err)
	}
}

// setDefaults stores the stock settings in Viper. The form defaults
// mirror a typical Gibson reaction: a 5 kbp backbone at 100 ng/µL with
// 1 kbp inserts at 150 ng/µL, a 2:1 molar ratio and 0.5 pmol of DNA
func setDefaults() {
	viper.SetDefault("bp-mass", 660.0)

	viper.SetDefault("defaults.ratio", 2.0)
	viper.SetDefault("defaults.total", 0.5)
	viper.SetDefault("defaults.backbone-length", 5.0)
	viper.SetDefault("defaults.backbone-conc", 100.0)
	viper.SetDefault("defaults.insert-length", 1.0)
	viper.SetDefault("defaults.insert-conc", 150.0)

	viper.SetDefault("limits.min-length", 0.1)
	viper.SetDefault("limits.min-conc", 0.1)
	viper.SetDefault("limits.min-ratio", 0.5)
	viper.SetDefault("limits.min-total", 0.05)
}

// userDir is the per-user directory holding the settings file
func userDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".clonecalc"
	}
	return filepath.Join(home, ".clonecalc")
}
