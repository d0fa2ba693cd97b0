package usecase

import "github.com/riskibarqy/lol-stats/internal/domain/matchstats"

// ResolveFilter builds the report window shared by every report. Invalid
// dates come back as ErrInvalidInput naming the field.
func ResolveFilter(start, end string, leagues, patches []string) (matchstats.Filter, error) {
	f, err := matchstats.NewFilter(start, end, leagues, patches)
	if err != nil {
		return matchstats.Filter{}, invalidInput(err)
	}
	return f, nil
}
