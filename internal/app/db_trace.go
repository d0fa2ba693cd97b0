package app

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	maxTracedQueryLength = 512
	// placeholder lists longer than this are collapsed in span queries
	maxTracedPlaceholders = 8
)

var (
	queryWhitespaceRegex = regexp.MustCompile(`\s+`)
	placeholderListRegex = regexp.MustCompile(`\(\s*(?:(?:\$\d+|\?)\s*,\s*)+(?:\$\d+|\?)\s*\)`)
)

// formatDBQueryForTrace flattens whitespace and shortens the IN lists the
// league, patch and game id sets expand to, so a 500 id opponent lookup
// still fits in one span attribute.
func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := queryWhitespaceRegex.ReplaceAllString(query, " ")
	normalized = placeholderListRegex.ReplaceAllStringFunc(normalized, collapsePlaceholderList)
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}

func collapsePlaceholderList(list string) string {
	n := strings.Count(list, ",") + 1
	if n <= maxTracedPlaceholders {
		return list
	}
	first := strings.TrimSpace(strings.SplitN(strings.Trim(list, "()"), ",", 2)[0])
	return "(" + first + ", ... " + strconv.Itoa(n) + " values)"
}
