package service

import (
	"fmt"
	"io"

	perr "boroughtally/internal/platform/errors"
	dom "boroughtally/internal/services/tally/domain"
)

// Header is the fixed first line of the report
const Header = "complaint type, borough, count"

// Render returns the report lines: header, then one line per key in
// ascending (complaint, borough) order. Field values are emitted verbatim;
// embedded delimiters are deliberately not escaped, matching the published
// output format
func Render(c dom.Counts) []string {
	keys := c.Keys()
	lines := make([]string, 0, len(keys)+1)
	lines = append(lines, Header)
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s, %s, %d", k.Complaint, k.Borough, c[k]))
	}
	return lines
}

// Write renders c and writes newline-terminated lines to w
func Write(w io.Writer, c dom.Counts) error {
	for _, line := range Render(c) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return perr.Wrap(err, perr.ErrorCodeIO, "write report")
		}
	}
	return nil
}
