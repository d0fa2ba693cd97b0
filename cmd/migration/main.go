package main

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/riskibarqy/lol-stats/internal/platform/logging"
)

var errUsage = errors.New("usage")

// migrator is the slice of *migrate.Migrate the commands drive.
type migrator interface {
	Up() error
	Steps(n int) error
	Migrate(version uint) error
	Force(version int) error
	Version() (uint, bool, error)
}

func main() {
	logger := logging.New(os.Stderr, logging.ParseLevel(os.Getenv("APP_LOG_LEVEL")), logging.FormatConsole)
	defer func() { _ = logger.Sync() }()

	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(2)
	}

	m, sourceURL, err := openMigrator()
	if err != nil {
		logger.Error("open migrator", "error", err)
		os.Exit(1)
	}

	err = run(m, os.Args[1:], os.Stdout, logger.With("source", sourceURL))
	closeMigrator(m, logger)
	if errors.Is(err, errUsage) {
		printUsage(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		logger.Error("migration failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func openMigrator() (*migrate.Migrate, string, error) {
	dbURL := strings.TrimSpace(os.Getenv("DB_URL"))
	if dbURL == "" {
		return nil, "", errors.New("DB_URL is required")
	}

	dir, err := resolveMigrationsDir()
	if err != nil {
		return nil, "", err
	}

	sourceURL := "file://" + filepath.ToSlash(dir)
	m, err := migrate.New(sourceURL, migrationURL(strings.TrimSpace(os.Getenv("DB_DRIVER")), dbURL))
	if err != nil {
		return nil, "", fmt.Errorf("create migrator: %w", err)
	}
	return m, sourceURL, nil
}

// run executes one migration command. A no-op migration is not an error.
func run(m migrator, args []string, out io.Writer, logger *logging.Logger) error {
	if len(args) == 0 {
		return errUsage
	}

	switch cmd := strings.ToLower(strings.TrimSpace(args[0])); cmd {
	case "up":
		return applied(logger, "migrations applied", m.Up())
	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(strings.TrimSpace(args[1]))
			if err != nil || n <= 0 {
				return fmt.Errorf("down steps must be a positive integer, got %q", args[1])
			}
			steps = n
		}
		return applied(logger.With("steps", steps), "migrations rolled back", m.Steps(-steps))
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			_, err = fmt.Fprintln(out, "version: none\ndirty: false")
			return err
		}
		if err != nil {
			return fmt.Errorf("read version: %w", err)
		}
		_, err = fmt.Fprintf(out, "version: %d\ndirty: %t\n", version, dirty)
		return err
	case "force":
		target, err := versionArg(cmd, args)
		if err != nil {
			return err
		}
		if target > uint64(^uint(0)>>1) {
			return fmt.Errorf("force version %d is too large for this platform", target)
		}
		if err := m.Force(int(target)); err != nil {
			return fmt.Errorf("force version %d: %w", target, err)
		}
		logger.Info("version forced", "version", target)
		return nil
	case "goto", "migrate":
		target, err := versionArg(cmd, args)
		if err != nil {
			return err
		}
		return applied(logger.With("version", target), "migrated to version", m.Migrate(uint(target)))
	default:
		return errUsage
	}
}

func versionArg(cmd string, args []string) (uint64, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("%s requires a version argument", cmd)
	}
	v, err := strconv.ParseUint(strings.TrimSpace(args[1]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s version %q: %w", cmd, args[1], err)
	}
	return v, nil
}

func applied(logger *logging.Logger, msg string, err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info(msg)
	return nil
}

func closeMigrator(m *migrate.Migrate, logger *logging.Logger) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("close migration source", "error", srcErr)
	}
	if dbErr != nil {
		logger.Warn("close migration db", "error", dbErr)
	}
}

func resolveMigrationsDir() (string, error) {
	for _, candidate := range []string{
		strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")),
		"./db/migrations",
		"/app/db/migrations",
	} {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return abs, nil
		}
	}
	return "", errors.New("migration directory not found (checked MIGRATIONS_DIR, ./db/migrations, /app/db/migrations)")
}

// migrationURL maps a service DB_URL to the URL golang-migrate expects. SQLite
// DSNs get the sqlite:// scheme; Postgres URLs get the prepared binary flag.
func migrationURL(driver, raw string) string {
	if strings.EqualFold(driver, "sqlite") {
		if strings.HasPrefix(raw, "sqlite://") {
			return raw
		}
		path, _, _ := strings.Cut(strings.TrimPrefix(raw, "file:"), "?")
		return "sqlite://" + path
	}

	switch strings.ToLower(strings.TrimSpace(os.Getenv("DB_DISABLE_PREPARED_BINARY_RESULT"))) {
	case "1", "true", "yes", "on":
	default:
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func printUsage(w io.Writer) {
	bin := filepath.Base(os.Args[0])
	fmt.Fprintf(w, "usage: %s <up|down [n]|version|force <v>|goto <v>>\n", bin)
	fmt.Fprintf(w, "  DB_URL=postgres://... %s up\n", bin)
	fmt.Fprintf(w, "  DB_DRIVER=sqlite DB_URL=lolstats.db %s version\n", bin)
}
