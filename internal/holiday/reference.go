package holiday

import (
	"regexp"
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

var rangeRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})至(\d{4}-\d{2}-\d{2})$`)

// ParseReference resolves the reference date carried in a batch's file_date
// field. A single calendar date is used directly; a "start至end" range
// resolves to its midpoint; anything unparsable falls back to the supplied
// processing time.
func ParseReference(s string, fallback time.Time) time.Time {
	s = strings.TrimSpace(s)

	if m := rangeRe.FindStringSubmatch(s); m != nil {
		start, err1 := time.Parse(dayLayout, m[1])
		end, err2 := time.Parse(dayLayout, m[2])
		if err1 == nil && err2 == nil {
			return start.Add(end.Sub(start) / 2)
		}
		return truncate(fallback)
	}

	if t, err := time.Parse(dayLayout, s); err == nil {
		return t
	}

	return truncate(fallback)
}
