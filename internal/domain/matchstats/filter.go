package matchstats

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Filter is a resolved report window. Empty Leagues or Patches mean no
// restriction on that column.
type Filter struct {
	Start   string
	End     string
	Leagues []string
	Patches []string
}

// NewFilter validates an inclusive ISO date window and normalizes the
// league and patch sets.
func NewFilter(start, end string, leagues, patches []string) (Filter, error) {
	startDate, err := parseDate("start_date", start)
	if err != nil {
		return Filter{}, err
	}
	endDate, err := parseDate("end_date", end)
	if err != nil {
		return Filter{}, err
	}
	if startDate.After(endDate) {
		return Filter{}, invalid("start_date", "must not be after end_date")
	}

	return Filter{
		Start:   startDate.Format(DateLayout),
		End:     endDate.Format(DateLayout),
		Leagues: NormalizeSet(leagues),
		Patches: NormalizeSet(patches),
	}, nil
}

func parseDate(field, raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, invalid(field, "is required")
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, invalid(field, "must be a YYYY-MM-DD date")
	}
	return t, nil
}

// NormalizeSet trims values, drops blanks and removes duplicates keeping the
// first occurrence.
func NormalizeSet(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		item := strings.TrimSpace(v)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
