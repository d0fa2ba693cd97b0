package app

import (
	"net/url"
	"path"
	"strings"

	"github.com/riskibarqy/lol-stats/internal/config"
)

// normalizeDBURL only touches Postgres URLs; SQLite DSNs pass through.
func normalizeDBURL(driver, raw string, disablePreparedBinaryResult bool) string {
	if driver != config.DriverPostgres || !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

func dbNameFromURL(driver, raw string) string {
	trimmed := strings.TrimSpace(raw)
	if driver == config.DriverSQLite {
		return sqliteName(trimmed)
	}

	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
		if name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if !strings.HasPrefix(token, "dbname=") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(token, "dbname="))
		name = strings.Trim(name, `"'`)
		if name != "" {
			return name
		}
	}

	return ""
}

// sqliteName returns the database file name of a SQLite DSN such as
// "file:data/lolstats.db?mode=ro" or "/var/lib/lolstats.db".
func sqliteName(dsn string) string {
	dsn = strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(dsn, '?'); i >= 0 {
		dsn = dsn[:i]
	}
	if dsn == "" || dsn == ":memory:" {
		return "memory"
	}
	return path.Base(dsn)
}

func isSQLiteMemory(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}
