// Package domain defines the types and interfaces for the tally service
package domain

import (
	"sort"
	"time"
)

// Column names this tool reads from a service-request export.
// Extra columns in the input are ignored
const (
	ColCreated   = "Created Date"
	ColComplaint = "Complaint Type"
	ColBorough   = "Borough"
)

// Window defines an inclusive time range with a start (Since) and end (Until).
// Until is expected to arrive already normalized to end-of-day
type Window struct {
	Since time.Time
	Until time.Time
}

// Contains reports whether t falls inside the window, both ends inclusive
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Since) && !t.After(w.Until)
}

// Key identifies a count bucket. Both parts are whitespace-trimmed upstream;
// equal keys merge counts
type Key struct {
	Complaint string
	Borough   string
}

// Less orders keys ascending by complaint type, then borough
func (k Key) Less(o Key) bool {
	if k.Complaint != o.Complaint {
		return k.Complaint < o.Complaint
	}
	return k.Borough < o.Borough
}

// Counts maps keys to occurrence counts.
// Entries appear on first increment, so every present key has count >= 1
type Counts map[Key]int

// Inc bumps the count for k, creating the entry at 1 if absent
func (c Counts) Inc(k Key) { c[k]++ }

// Keys returns all keys in ascending (complaint, borough) order,
// independent of map iteration order
func (c Counts) Keys() []Key {
	keys := make([]Key, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}
