// Package cli wires flag parsing, option validation, and the report run
package cli

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"

	"boroughtally/internal/adapters/ingest/csvfile"
	"boroughtally/internal/platform/bind"
	perr "boroughtally/internal/platform/errors"
	"boroughtally/internal/platform/logger"
	xtime "boroughtally/internal/platform/time"
	dom "boroughtally/internal/services/tally/domain"
	"boroughtally/internal/services/tally/service"
)

// Options is the full CLI surface
type Options struct {
	Input  string `flag:"input" validate:"required"`
	Start  string `flag:"start" validate:"required,mdy"`
	End    string `flag:"end" validate:"required,mdy"`
	Output string `flag:"output" validate:"omitempty"`
}

// stdout is a seam so tests can capture report output
var stdout io.Writer = os.Stdout

// Parse reads flags from args and validates the result.
// Short and long spellings are equivalent: -i/--input, -s/--start,
// -e/--end, -o/--output
func Parse(args []string) (Options, error) {
	var o Options
	fs := flag.NewFlagSet("boroughtally", flag.ContinueOnError)
	fs.StringVar(&o.Input, "i", "", "input CSV file of 311 service requests")
	fs.StringVar(&o.Input, "input", "", "input CSV file of 311 service requests")
	fs.StringVar(&o.Start, "s", "", "window start date, MM/DD/YYYY")
	fs.StringVar(&o.Start, "start", "", "window start date, MM/DD/YYYY")
	fs.StringVar(&o.End, "e", "", "window end date, MM/DD/YYYY, inclusive")
	fs.StringVar(&o.End, "end", "", "window end date, MM/DD/YYYY, inclusive")
	fs.StringVar(&o.Output, "o", "", "output file (default stdout)")
	fs.StringVar(&o.Output, "output", "", "output file (default stdout)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return o, err
		}
		return o, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "parse flags")
	}
	if err := bind.Options(o); err != nil {
		return o, err
	}
	return o, nil
}

// Window builds the validated date window from the parsed options.
// The end date is normalized to 23:59:59 of its calendar day before the
// ordering check, so equal start and end dates form a one-day window
func (o Options) Window() (dom.Window, error) {
	since, err := xtime.ParseDay(o.Start)
	if err != nil {
		return dom.Window{}, perr.InvalidArgf("start date %q must be in MM/DD/YYYY format", o.Start)
	}
	until, err := xtime.ParseDay(o.End)
	if err != nil {
		return dom.Window{}, perr.InvalidArgf("end date %q must be in MM/DD/YYYY format", o.End)
	}
	until = xtime.EndOfDay(until)
	if since.After(until) {
		return dom.Window{}, perr.InvalidArgf("start date %s must be before or equal to end date %s", o.Start, o.End)
	}
	return dom.Window{Since: since, Until: until}, nil
}

// rowSource adapts the csvfile reader to the tally source port
type rowSource struct{ rd *csvfile.Reader }

func (s rowSource) Next() (dom.Row, error) { return s.rd.Next() }

// Run executes one aggregation pass.
// Argument and fatal I/O errors return non-nil with nothing written; the
// report is only emitted after the pass completes cleanly
func Run(ctx context.Context, o Options) error {
	w, err := o.Window()
	if err != nil {
		return err
	}

	src, err := csvfile.Open(o.Input)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			logger.C(ctx).Error().Err(cerr).Msg("close input")
		}
	}()

	counts, err := service.New(rowSource{rd: src}).Count(ctx, w)
	if err != nil {
		return err
	}

	rows, skipped := src.Stats()
	logger.C(ctx).Debug().
		Int("rows", rows).
		Int("decoder_skipped", skipped).
		Int("pairs", len(counts)).
		Msg("aggregation pass done")

	if o.Output == "" {
		return service.Write(stdout, counts)
	}

	f, err := os.Create(o.Output)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeIO, "create output %q", o.Output)
	}
	if err := service.Write(f, counts); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeIO, "close output %q", o.Output)
	}
	return nil
}
