package mix

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/mibohl/cloning-calculator/config"
)

// reactionFile mirrors Reaction with TOML tags. Ratio and total may be
// omitted in the file and fall back to the configured defaults.
type reactionFile struct {
	Ratio     float64         `toml:"ratio"`
	Total     float64         `toml:"total"`
	Fragments []fragmentEntry `toml:"fragments"`
}

// fragmentEntry is one [[fragments]] table in a reaction file. The
// first entry is the backbone.
type fragmentEntry struct {
	Name   string  `toml:"name"`
	Length float64 `toml:"length"`
	Conc   float64 `toml:"conc"`
}

// ReadReactionFile reads and parses a TOML reaction file:
//
//	ratio = 2.0
//	total = 0.5
//
//	[[fragments]]
//	name = "backbone"
//	length = 5.0
//	conc = 100.0
//
//	[[fragments]]
//	name = "gfp insert"
//	length = 1.0
//	conc = 150.0
func ReadReactionFile(path string, conf *config.Config) (*Reaction, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read reaction file %s", path)
	}

	var rf reactionFile
	if err := toml.Unmarshal(contents, &rf); err != nil {
		return nil, errors.Wrapf(err, "failed to parse reaction file %s", path)
	}

	if len(rf.Fragments) < 2 {
		return nil, errors.Wrapf(ErrInvalidInput, "reaction file %s needs a backbone and at least one insert", path)
	}

	if rf.Ratio == 0 {
		rf.Ratio = conf.Defaults.Ratio
	}
	if rf.Total == 0 {
		rf.Total = conf.Defaults.Total
	}

	frags := make([]Fragment, len(rf.Fragments))
	for i, fe := range rf.Fragments {
		name := fe.Name
		if name == "" {
			name = fragmentName(i)
		}

		frags[i] = Fragment{
			Name:   name,
			Length: fe.Length,
			Conc:   fe.Conc,
		}
	}

	return &Reaction{
		Fragments: frags,
		Ratio:     rf.Ratio,
		Total:     rf.Total,
		BpMass:    conf.BpMass,
	}, nil
}
