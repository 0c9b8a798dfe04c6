// Package service provides the tally service implementation
package service

import (
	"context"
	"errors"
	"io"

	perr "boroughtally/internal/platform/errors"
	pstr "boroughtally/internal/platform/strings"
	xtime "boroughtally/internal/platform/time"
	dom "boroughtally/internal/services/tally/domain"
)

// Service aggregates rows from a source into per-(complaint, borough) counts
type Service struct {
	Src dom.SourcePort
}

// New constructs a tally service over a required row source
func New(src dom.SourcePort) *Service {
	return &Service{Src: src}
}

// Count runs the single filter/aggregate pass.
// Per-row conditions (unparsable date, out-of-window timestamp, blank
// category fields) skip the row and never halt the run; a source read error
// aborts with no partial result
func (s *Service) Count(ctx context.Context, w dom.Window) (dom.Counts, error) {
	counts := make(dom.Counts)
	for {
		if err := ctx.Err(); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "aggregation canceled")
		}

		row, err := s.Src.Next()
		if errors.Is(err, io.EOF) {
			return counts, nil
		}
		if err != nil {
			return nil, err
		}

		created, ok := row.Get(dom.ColCreated)
		if !ok {
			continue
		}
		ts, ok := xtime.ParseCreated(created)
		if !ok {
			continue
		}
		if !w.Contains(ts) {
			continue
		}

		complaint, _ := row.Get(dom.ColComplaint)
		borough, _ := row.Get(dom.ColBorough)
		complaint = pstr.Clean(complaint)
		borough = pstr.Clean(borough)
		if complaint == "" || borough == "" {
			continue
		}

		counts.Inc(dom.Key{Complaint: complaint, Borough: borough})
	}
}
