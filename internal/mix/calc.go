package mix

import (
	"github.com/pkg/errors"
)

// BpMolarMass is the average molar mass of a double-stranded DNA base
// pair in g/mol. With amounts in pmol and lengths in kbp the unit
// conversions cancel exactly (10^-12 * 10^9 * 10^3 = 1), so
// mass_ng = amount_pmol * 660 * length_kbp without any further factor.
const BpMolarMass = 660.0

// ErrInvalidInput is returned when a reaction's inputs are unusable:
// no fragments, mismatched lengths/concentrations, or a non-positive
// length, concentration, ratio or total amount.
var ErrInvalidInput = errors.New("invalid reaction input")

// Volumes computes the molar amount (pmol), mass (ng) and pipetting
// volume (µL) of every fragment in an assembly reaction. Fragment 0 is
// the backbone; every insert gets ratio times the backbone's molar
// amount, and the amounts sum to total.
func Volumes(lengths, concs []float64, ratio, total float64) (vols, masses, moles []float64, err error) {
	return volumes(BpMolarMass, lengths, concs, ratio, total)
}

// volumes is Volumes with the base pair molar mass as a parameter, for
// callers that override the 660 g/mol default via settings.
func volumes(bpMass float64, lengths, concs []float64, ratio, total float64) (vols, masses, moles []float64, err error) {
	if len(lengths) == 0 {
		return nil, nil, nil, errors.Wrap(ErrInvalidInput, "no fragments")
	}
	if len(lengths) != len(concs) {
		return nil, nil, nil, errors.Wrapf(ErrInvalidInput, "%d lengths vs %d concentrations", len(lengths), len(concs))
	}
	if ratio <= 0 {
		return nil, nil, nil, errors.Wrapf(ErrInvalidInput, "ratio %f is not positive", ratio)
	}
	if total <= 0 {
		return nil, nil, nil, errors.Wrapf(ErrInvalidInput, "total amount %f is not positive", total)
	}
	if bpMass <= 0 {
		return nil, nil, nil, errors.Wrapf(ErrInvalidInput, "bp molar mass %f is not positive", bpMass)
	}
	for i := range lengths {
		if lengths[i] <= 0 {
			return nil, nil, nil, errors.Wrapf(ErrInvalidInput, "fragment %d length %f is not positive", i, lengths[i])
		}
		if concs[i] <= 0 {
			return nil, nil, nil, errors.Wrapf(ErrInvalidInput, "fragment %d concentration %f is not positive", i, concs[i])
		}
	}

	// each insert carries ratio times the backbone's molar amount, so
	// the backbone's share of the total is 1/(1 + ratio*inserts)
	inserts := float64(len(lengths) - 1)
	backbone := total / (1 + ratio*inserts)

	vols = make([]float64, len(lengths))
	masses = make([]float64, len(lengths))
	moles = make([]float64, len(lengths))
	for i := range lengths {
		moles[i] = backbone
		if i > 0 {
			moles[i] = ratio * backbone
		}
		masses[i] = moles[i] * bpMass * lengths[i]
		vols[i] = masses[i] / concs[i]
	}

	return vols, masses, moles, nil
}

// MassNg converts a molar amount (pmol) of a fragment with the passed
// length (kbp) to its mass in ng.
func MassNg(bpMass, moles, lengthKb float64) float64 {
	return moles * bpMass * lengthKb
}

// MolesPmol converts a mass (ng) of a fragment with the passed length
// (kbp) to its molar amount in pmol.
func MolesPmol(bpMass, mass, lengthKb float64) float64 {
	return mass / (bpMass * lengthKb)
}
