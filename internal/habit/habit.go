package habit

import (
	"sort"
	"strings"
	"time"
)

// DateLayout is the key format used for every day in a Log.
const DateLayout = "2006-01-02"

// DayRecord maps a habit name to whether it was completed that day.
// A habit missing from the record counts as not completed.
type DayRecord map[string]bool

// Completed returns the number of habits marked true.
func (r DayRecord) Completed() int {
	n := 0
	for _, done := range r {
		if done {
			n++
		}
	}
	return n
}

// Done reports whether name was completed. An exact key wins; otherwise
// keys are matched case-insensitively, so "Water" counts for "water".
func (r DayRecord) Done(name string) bool {
	if done, ok := r[name]; ok {
		return done
	}
	for k, done := range r {
		if done && strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}

// Names returns the habit names in the record, sorted.
func (r DayRecord) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Log maps an ISO date key ("2024-03-15") to that day's record.
type Log map[string]DayRecord

// Day returns the record for t, or an empty record when absent.
func (l Log) Day(t time.Time) DayRecord {
	if r, ok := l[Key(t)]; ok && r != nil {
		return r
	}
	return DayRecord{}
}

// Has reports whether a record exists for t.
func (l Log) Has(t time.Time) bool {
	_, ok := l[Key(t)]
	return ok
}

// Clone returns a copy that shares no maps with l.
func (l Log) Clone() Log {
	out := make(Log, len(l))
	for k, r := range l {
		rec := make(DayRecord, len(r))
		for name, done := range r {
			rec[name] = done
		}
		out[k] = rec
	}
	return out
}

// Key formats t as a Log key.
func Key(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseKey parses a Log key into midnight of that day in loc.
func ParseKey(key string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, key, loc)
}

// Midnight truncates t to the start of its calendar day, keeping its location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
