package mix

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mibohl/cloning-calculator/config"
)

var (
	// stderr is for diagnostics, results go to stdout unlogged
	stderr = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
)

// Flags contains parsed cobra flags like "in", "out", "watch", etc
// that control where the reaction comes from and where results go.
type Flags struct {
	// the path to a TOML reaction file to read the mix from
	in string

	// the path to write the results to as JSON (optional)
	out string

	// whether to keep running and recalculate when "in" changes
	watch bool
}

// inputParser contains methods for parsing flags from the input &cobra.Command.
type inputParser struct{}

// VolumesCmd calculates and prints the pipetting volumes for an
// assembly reaction described via flags, a reaction file, or
// interactive prompts.
func VolumesCmd(cmd *cobra.Command, args []string) {
	conf := config.New()

	flags, reaction, err := parseCmdFlags(cmd, args, conf)
	if err != nil {
		stderr.Fatal().Err(err).Msg("failed to parse input")
	}

	if flags.watch && flags.in != "" {
		watchVolumes(flags, conf)
		return
	}

	if err := run(reaction, flags.out, os.Stdout); err != nil {
		stderr.Fatal().Err(err).Msg("failed to calculate volumes")
	}
}

// run plans the reaction, writes the table to w and, if out is set,
// the JSON output file.
func run(r *Reaction, out string, w io.Writer) error {
	results, err := r.Plan()
	if err != nil {
		return err
	}

	o, err := newOutput(r, results)
	if err != nil {
		return err
	}

	fmt.Fprint(w, o.Table())

	if out != "" {
		if err := o.writeJSON(out); err != nil {
			return err
		}
		stderr.Debug().Str("path", out).Msg("wrote results")
	}

	return nil
}

// watchVolumes recalculates the reaction every time its reaction file
// is written, until interrupted.
func watchVolumes(flags *Flags, conf *config.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	recalc := func() {
		if err := readAndRun(flags.in, flags.out, os.Stdout, conf); err != nil {
			stderr.Error().Err(err).Str("path", flags.in).Msg("failed to recalculate volumes")
		}
	}

	if err := Watch(ctx, flags.in, 100*time.Millisecond, recalc); err != nil {
		stderr.Fatal().Err(err).Str("path", flags.in).Msg("failed to watch reaction file")
	}
}

// readAndRun reads a reaction file, enforces the configured minimums
// and calculates the mix. Every re-read in watch mode goes through the
// same limit checks as a one-shot run.
func readAndRun(in, out string, w io.Writer, conf *config.Config) error {
	r, err := ReadReactionFile(in, conf)
	if err != nil {
		return err
	}

	p := inputParser{}
	if err := p.checkLimits(r, conf.Limits); err != nil {
		return err
	}

	return run(r, out, w)
}

// parseCmdFlags gathers the reaction and the in/out paths from a cobra
// cmd object. Falls back to interactive prompts when neither a length
// list nor a reaction file was passed.
func parseCmdFlags(cmd *cobra.Command, args []string, conf *config.Config) (*Flags, *Reaction, error) {
	var err error
	fs := &Flags{} // parsed flags
	p := inputParser{}

	if fs.in, err = cmd.Flags().GetString("in"); err != nil {
		return nil, nil, err
	}
	if fs.out, err = cmd.Flags().GetString("out"); err != nil {
		return nil, nil, err
	}
	if fs.watch, err = cmd.Flags().GetBool("watch"); err != nil {
		return nil, nil, err
	}

	lengthCSV, err := cmd.Flags().GetString("length")
	if err != nil {
		return nil, nil, err
	}
	concCSV, err := cmd.Flags().GetString("conc")
	if err != nil {
		return nil, nil, err
	}

	// ratio and total are bound to Viper, settings file and flag both land in conf
	ratio := conf.Defaults.Ratio
	total := conf.Defaults.Total

	var reaction *Reaction
	switch {
	case fs.in != "":
		if reaction, err = ReadReactionFile(fs.in, conf); err != nil {
			return nil, nil, err
		}
	case lengthCSV != "":
		lengths, err := p.parseFloats(lengthCSV)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to parse --length")
		}
		concs, err := p.parseFloats(concCSV)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to parse --conc")
		}
		if len(lengths) != len(concs) {
			return nil, nil, errors.Wrapf(ErrInvalidInput, "%d lengths vs %d concentrations", len(lengths), len(concs))
		}
		reaction = NewReaction(lengths, concs, ratio, total, conf)
	default:
		if reaction, err = p.prompt(os.Stdin, os.Stdout, conf); err != nil {
			return nil, nil, err
		}
	}

	if err = p.checkLimits(reaction, conf.Limits); err != nil {
		return nil, nil, err
	}

	return fs, reaction, nil
}

// parseFloats splits a comma separated list of numbers, eg "5.0,1.0".
func (p inputParser) parseFloats(csv string) (vals []float64, err error) {
	for _, field := range strings.Split(csv, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidInput, "%s is not a number", field)
		}
		vals = append(vals, v)
	}

	return vals, nil
}

// checkLimits enforces the configured minimums on a reaction before it
// reaches the calculator. The calculator rejects non-positive values
// itself, this keeps out values that are positive but senseless, eg a
// 1 bp backbone.
func (p inputParser) checkLimits(r *Reaction, limits config.LimitsConfig) error {
	if len(r.Fragments) < 2 {
		return errors.Wrap(ErrInvalidInput, "a reaction needs a backbone and at least one insert")
	}
	if r.Ratio < limits.Ratio {
		return errors.Wrapf(ErrInvalidInput, "ratio %.2f is below the minimum %.2f", r.Ratio, limits.Ratio)
	}
	if r.Total < limits.Total {
		return errors.Wrapf(ErrInvalidInput, "total amount %.2f pmol is below the minimum %.2f", r.Total, limits.Total)
	}

	for _, f := range r.Fragments {
		if f.Length < limits.Length {
			return errors.Wrapf(ErrInvalidInput, "%s length %.2f kbp is below the minimum %.2f", f.Name, f.Length, limits.Length)
		}
		if f.Conc < limits.Conc {
			return errors.Wrapf(ErrInvalidInput, "%s concentration %.2f ng/µL is below the minimum %.2f", f.Name, f.Conc, limits.Conc)
		}
	}

	return nil
}

// prompt collects a reaction interactively, showing the configured
// defaults for every answer.
func (p inputParser) prompt(in io.Reader, out io.Writer, conf *config.Config) (*Reaction, error) {
	s := bufio.NewScanner(in)

	inserts, err := p.promptInt(s, out, "Number of inserts", 1)
	if err != nil {
		return nil, err
	}
	if inserts < 1 {
		return nil, errors.Wrap(ErrInvalidInput, "a reaction needs at least one insert")
	}

	ratio, err := p.promptFloat(s, out, "Insert : backbone molar ratio", conf.Defaults.Ratio)
	if err != nil {
		return nil, err
	}
	total, err := p.promptFloat(s, out, "Total amount of DNA (pmol)", conf.Defaults.Total)
	if err != nil {
		return nil, err
	}

	lengths := []float64{0}
	concs := []float64{0}
	if lengths[0], err = p.promptFloat(s, out, "Backbone length (kbp)", conf.Defaults.BackboneLength); err != nil {
		return nil, err
	}
	if concs[0], err = p.promptFloat(s, out, "Backbone concentration (ng/µL)", conf.Defaults.BackboneConc); err != nil {
		return nil, err
	}

	for i := 1; i <= inserts; i++ {
		length, err := p.promptFloat(s, out, fmt.Sprintf("Insert %d length (kbp)", i), conf.Defaults.InsertLength)
		if err != nil {
			return nil, err
		}
		conc, err := p.promptFloat(s, out, fmt.Sprintf("Insert %d concentration (ng/µL)", i), conf.Defaults.InsertConc)
		if err != nil {
			return nil, err
		}

		lengths = append(lengths, length)
		concs = append(concs, conc)
	}

	return NewReaction(lengths, concs, ratio, total, conf), nil
}

// promptFloat asks for a single number, returning the default on an
// empty answer.
func (p inputParser) promptFloat(s *bufio.Scanner, out io.Writer, label string, def float64) (float64, error) {
	fmt.Fprintf(out, "%s [%.2f]: ", label, def)

	if !s.Scan() {
		return def, s.Err()
	}

	answer := strings.TrimSpace(s.Text())
	if answer == "" {
		return def, nil
	}

	v, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidInput, "%s is not a number", answer)
	}

	return v, nil
}

// promptInt asks for a single whole number, returning the default on
// an empty answer.
func (p inputParser) promptInt(s *bufio.Scanner, out io.Writer, label string, def int) (int, error) {
	fmt.Fprintf(out, "%s [%d]: ", label, def)

	if !s.Scan() {
		return def, s.Err()
	}

	answer := strings.TrimSpace(s.Text())
	if answer == "" {
		return def, nil
	}

	v, err := strconv.Atoi(answer)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidInput, "%s is not a whole number", answer)
	}

	return v, nil
}
