package mix

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mibohl/cloning-calculator/config"
)

// ConvertMassCmd converts a molar amount (pmol) of a fragment with a
// known length (kbp) to its mass in ng. args: [pmol] [kbp].
func ConvertMassCmd(cmd *cobra.Command, args []string) {
	conf := config.New()

	moles, lengthKb, err := parseConvertArgs(args)
	if err != nil {
		cmd.Help()
		stderr.Fatal().Err(err).Msg("failed to parse arguments")
	}

	mass := MassNg(conf.BpMass, moles, lengthKb)
	fmt.Printf("%.2f pmol of a %.2f kbp fragment is %.2f ng\n", moles, lengthKb, mass)
}

// ConvertMolesCmd converts a mass (ng) of a fragment with a known
// length (kbp) to its molar amount in pmol. args: [ng] [kbp].
func ConvertMolesCmd(cmd *cobra.Command, args []string) {
	conf := config.New()

	mass, lengthKb, err := parseConvertArgs(args)
	if err != nil {
		cmd.Help()
		stderr.Fatal().Err(err).Msg("failed to parse arguments")
	}

	moles := MolesPmol(conf.BpMass, mass, lengthKb)
	fmt.Printf("%.2f ng of a %.2f kbp fragment is %.2f pmol\n", mass, lengthKb, moles)
}

// parseConvertArgs parses the two positional arguments of the convert
// commands, an amount and a fragment length, both positive.
func parseConvertArgs(args []string) (amount, lengthKb float64, err error) {
	if len(args) != 2 {
		return 0, 0, errors.Wrap(ErrInvalidInput, "expected an amount and a fragment length")
	}

	if amount, err = strconv.ParseFloat(args[0], 64); err != nil {
		return 0, 0, errors.Wrapf(ErrInvalidInput, "%s is not a number", args[0])
	}
	if lengthKb, err = strconv.ParseFloat(args[1], 64); err != nil {
		return 0, 0, errors.Wrapf(ErrInvalidInput, "%s is not a number", args[1])
	}

	if amount <= 0 || lengthKb <= 0 {
		return 0, 0, errors.Wrap(ErrInvalidInput, "amount and length must be positive")
	}

	return amount, lengthKb, nil
}
