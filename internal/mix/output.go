package mix

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Output is a struct containing the calculated reaction mix, written
// as a table to stdout and optionally as JSON to a file.
type Output struct {
	// Time, ex: "2018-01-01 20:41:00"
	Time string `json:"time"`

	// BpMass used for the mass conversion (g/mol per bp)
	BpMass float64 `json:"bpMass"`

	// Ratio is the insert:backbone molar ratio of the mix
	Ratio float64 `json:"ratio"`

	// Total molar amount of DNA in the mix (pmol)
	Total float64 `json:"totalPmol"`

	// Fragments with their computed amounts, backbone first
	Fragments []Result `json:"fragments"`

	// TotalVolume of DNA solution in the mix (µL)
	TotalVolume float64 `json:"totalVolumeUl"`
}

// newOutput rounds a reaction's results to the two decimal places
// shown to the user and totals the volume.
func newOutput(r *Reaction, results []Result) (*Output, error) {
	t := time.Now()
	stamp := fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	bpMass := r.BpMass
	if bpMass == 0 {
		bpMass = BpMolarMass
	}

	totalVolume := 0.0
	rounded := make([]Result, len(results))
	for i, res := range results {
		totalVolume += res.Volume

		var err error
		if res.Moles, err = round(res.Moles); err != nil {
			return nil, err
		}
		if res.Mass, err = round(res.Mass); err != nil {
			return nil, err
		}
		if res.Volume, err = round(res.Volume); err != nil {
			return nil, err
		}
		rounded[i] = res
	}

	totalVolume, err := round(totalVolume)
	if err != nil {
		return nil, err
	}

	return &Output{
		Time:        stamp,
		BpMass:      bpMass,
		Ratio:       r.Ratio,
		Total:       r.Total,
		Fragments:   rounded,
		TotalVolume: totalVolume,
	}, nil
}

// Table renders the output as a fixed-width table, one row per
// fragment plus a total volume row.
func (o *Output) Table() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf(
		"%-12s %14s %14s %14s %12s %12s\n",
		"fragment", "length (kbp)", "conc (ng/µL)", "amount (pmol)", "mass (ng)", "volume (µL)",
	))

	for _, f := range o.Fragments {
		b.WriteString(fmt.Sprintf(
			"%-12s %14.2f %14.2f %14.2f %12.2f %12.2f\n",
			f.Name, f.Length, f.Conc, f.Moles, f.Mass, f.Volume,
		))
	}

	b.WriteString(fmt.Sprintf("%-12s %14s %14s %14s %12s %12.2f\n", "total", "", "", "", "", o.TotalVolume))

	return b.String()
}

// writeJSON writes the output to the filename requested.
func (o *Output) writeJSON(filename string) error {
	contents, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to serialize output")
	}

	if err = os.WriteFile(filename, contents, 0666); err != nil {
		return errors.Wrapf(err, "failed to write the output to %s", filename)
	}

	return nil
}

// round to two decimal places
func round(v float64) (float64, error) {
	return strconv.ParseFloat(fmt.Sprintf("%.2f", v), 64)
}
