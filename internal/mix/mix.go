// Package mix converts molar ratios for a DNA assembly reaction, eg
// a Gibson or Golden Gate cloning mix, into pipetting volumes.
//
// The only domain logic is in Volumes: molar-ratio partitioning of the
// total amount of DNA across the backbone and its inserts, and the
// unit conversion bp <-> mass <-> volume. Everything else in the
// package collects inputs (flags, a TOML reaction file, or stdin
// prompts) and renders results.
package mix

import (
	"strconv"

	"github.com/mibohl/cloning-calculator/config"
)

// Fragment is a single piece of DNA in the reaction mix.
type Fragment struct {
	// Name of the fragment, eg "backbone" or "insert 2"
	Name string `json:"name"`

	// Length of the fragment in kbp
	Length float64 `json:"lengthKb"`

	// Conc is the concentration of the fragment's stock in ng/µL
	Conc float64 `json:"concNgUl"`
}

// Reaction is a single assembly reaction to calculate volumes for.
// Fragment 0 is always the backbone.
type Reaction struct {
	// Fragments in the mix, backbone first
	Fragments []Fragment

	// Ratio is the insert:backbone molar ratio, applied to every insert
	Ratio float64

	// Total molar amount of DNA in the mix (pmol), backbone included
	Total float64

	// BpMass is the molar mass of a base pair (g/mol), BpMolarMass if zero
	BpMass float64
}

// Result is one fragment's computed amounts.
type Result struct {
	Fragment

	// Moles of the fragment to add (pmol)
	Moles float64 `json:"amountPmol"`

	// Mass of the fragment to add (ng)
	Mass float64 `json:"massNg"`

	// Volume of the fragment's stock to pipette (µL)
	Volume float64 `json:"volumeUl"`
}

// NewReaction assembles a Reaction from parallel length/concentration
// slices, naming the fragments by convention.
func NewReaction(lengths, concs []float64, ratio, total float64, conf *config.Config) *Reaction {
	frags := make([]Fragment, 0, len(lengths))
	for i := range lengths {
		conc := 0.0
		if i < len(concs) {
			conc = concs[i]
		}
		frags = append(frags, Fragment{
			Name:   fragmentName(i),
			Length: lengths[i],
			Conc:   conc,
		})
	}

	return &Reaction{
		Fragments: frags,
		Ratio:     ratio,
		Total:     total,
		BpMass:    conf.BpMass,
	}
}

// Plan runs the calculator over the reaction's fragments.
func (r *Reaction) Plan() ([]Result, error) {
	lengths := make([]float64, len(r.Fragments))
	concs := make([]float64, len(r.Fragments))
	for i, f := range r.Fragments {
		lengths[i] = f.Length
		concs[i] = f.Conc
	}

	bpMass := r.BpMass
	if bpMass == 0 {
		bpMass = BpMolarMass
	}

	vols, masses, moles, err := volumes(bpMass, lengths, concs, r.Ratio, r.Total)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(r.Fragments))
	for i := range r.Fragments {
		results[i] = Result{
			Fragment: r.Fragments[i],
			Moles:    moles[i],
			Mass:     masses[i],
			Volume:   vols[i],
		}
	}

	return results, nil
}

// fragmentName is the conventional name of fragment i in a reaction.
func fragmentName(i int) string {
	if i == 0 {
		return "backbone"
	}
	return "insert " + strconv.Itoa(i)
}
