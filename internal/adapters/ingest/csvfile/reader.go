package csvfile

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"

	perr "boroughtally/internal/platform/errors"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Reader streams Row items from a comma-delimited file with a header row
type Reader struct {
	f       *os.File
	cr      *csv.Reader
	cols    map[string]int
	err     error
	rows    int
	skipped int
}

// Open opens path and consumes the header row.
// A missing or unreadable file is a fatal condition; an empty file is not,
// it just streams zero rows
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "input file %q not found", path)
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeIO, "open input %q", path)
	}

	// BOMOverride passes BOM-less input through byte-identical
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	cr := csv.NewReader(transform.NewReader(f, dec))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rd := &Reader{f: f, cr: cr}

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			// no header, no rows
			rd.err = io.EOF
			return rd, nil
		}
		if cerr := f.Close(); cerr != nil {
			return nil, perr.Wrapf(cerr, perr.ErrorCodeIO, "close input %q", path)
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeIO, "read header of %q", path)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		// first occurrence wins on duplicate headers
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	rd.cols = cols
	return rd, nil
}

// Next reads the next row; returns io.EOF when done.
// Rows the csv decoder rejects are counted and skipped, not surfaced
func (rd *Reader) Next() (Row, error) {
	if rd.err != nil {
		return Row{}, rd.err
	}
	for {
		rec, err := rd.cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				rd.err = io.EOF
				return Row{}, io.EOF
			}
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				rd.skipped++
				continue
			}
			rd.err = perr.Wrap(err, perr.ErrorCodeIO, "read row")
			return Row{}, rd.err
		}
		rd.rows++
		return Row{fields: rec, cols: rd.cols}, nil
	}
}

// Close closes the underlying file
func (rd *Reader) Close() error {
	if rd.f == nil {
		return nil
	}
	return rd.f.Close()
}

// Stats returns the number of rows yielded and rows skipped by the decoder so far
func (rd *Reader) Stats() (rows, skipped int) {
	return rd.rows, rd.skipped
}
