package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/lol-stats/internal/app"
	"github.com/riskibarqy/lol-stats/internal/domain/matchstats"
	"github.com/riskibarqy/lol-stats/internal/platform/logging"
	"github.com/riskibarqy/lol-stats/internal/usecase"
	"github.com/spf13/cobra"
)

// Opener connects to the match store. The returned close func releases it.
type Opener func(ctx context.Context, driver, dsn string) (matchstats.Repository, func() error, error)

// OpenStore opens the SQL store without the service's cache or breaker; a
// CLI run issues a handful of reads and exits.
func OpenStore(ctx context.Context, driver, dsn string) (matchstats.Repository, func() error, error) {
	db, err := app.OpenDB(ctx, app.DBOptions{Driver: driver, URL: dsn})
	if err != nil {
		return nil, nil, err
	}
	return app.NewRepository(db, app.RepositoryOptions{}), db.Close, nil
}

type Deps struct {
	Stdout        io.Writer
	Stderr        io.Writer
	Open          Opener
	DefaultDriver string
	DefaultDSN    string
}

type rootOptions struct {
	Driver   string `flag:"driver" validate:"oneof=postgres sqlite"`
	DSN      string `flag:"dsn" validate:"required"`
	Start    string
	End      string
	Leagues  []string
	Patches  []string
	JSON     bool
	LogLevel string `flag:"log-level" validate:"omitempty,oneof=debug info warn warning error"`
}

type runner struct {
	deps     Deps
	opts     rootOptions
	validate *validator.Validate
	logger   *logging.Logger
}

// NewRootCommand wires every report subcommand onto one root.
func NewRootCommand(deps Deps) *cobra.Command {
	if deps.Open == nil {
		deps.Open = OpenStore
	}
	if deps.DefaultDriver == "" {
		deps.DefaultDriver = "sqlite"
	}
	if deps.DefaultDSN == "" {
		deps.DefaultDSN = "lolstats.db"
	}

	r := &runner{deps: deps, validate: newValidator(), logger: logging.NewNop()}

	root := &cobra.Command{
		Use:           "lolstats",
		Short:         "LoL match statistics reports",
		Long:          "Query player, team and champion statistics from a matches store and print them as tables or JSON.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			r.logger = logging.New(deps.Stderr, logging.ParseLevel(r.opts.LogLevel), logging.FormatConsole)
			return nil
		},
	}
	root.SetOut(deps.Stdout)
	root.SetErr(deps.Stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&r.opts.Driver, "driver", deps.DefaultDriver, "store driver (sqlite|postgres)")
	flags.StringVar(&r.opts.DSN, "dsn", deps.DefaultDSN, "store DSN or SQLite file path")
	flags.StringVar(&r.opts.Start, "start", "", "window start date (YYYY-MM-DD)")
	flags.StringVar(&r.opts.End, "end", "", "window end date (YYYY-MM-DD)")
	flags.StringSliceVar(&r.opts.Leagues, "league", nil, "league filter (repeatable or comma-separated)")
	flags.StringSliceVar(&r.opts.Patches, "patch", nil, "patch filter (repeatable or comma-separated)")
	flags.BoolVar(&r.opts.JSON, "json", false, "print JSON instead of tables")
	flags.StringVar(&r.opts.LogLevel, "log-level", "warn", "stderr log level (debug|info|warn|error)")

	root.AddCommand(
		r.statsCommand(),
		r.historyCommand(),
		r.poolCommand(),
		r.patchCommand(),
		r.correlateCommand(),
		r.headToHeadCommand(),
		r.catalogCommand(),
	)
	return root
}

// withServices validates the shared flags, opens the store and runs fn.
func (r *runner) withServices(cmd *cobra.Command, fn func(ctx context.Context, svc app.Services) error) error {
	if err := r.validateStruct(&r.opts); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	repo, closeStore, err := r.deps.Open(ctx, r.opts.Driver, r.opts.DSN)
	if err != nil {
		r.logger.Error("open match store", "driver", r.opts.Driver, "error", err)
		return fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, err)
	}
	defer func() {
		if closeStore != nil {
			_ = closeStore()
		}
	}()

	if err := fn(ctx, app.NewServices(repo)); err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			r.logger.Warn("invalid request", "command", cmd.Name(), "error", err)
		} else {
			r.logger.Error("report failed", "command", cmd.Name(), "error", err)
		}
		return err
	}
	return nil
}

func (r *runner) filter() (matchstats.Filter, error) {
	return usecase.ResolveFilter(r.opts.Start, r.opts.End, r.opts.Leagues, r.opts.Patches)
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("flag"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})
	return v
}

func (r *runner) validateStruct(v any) error {
	if err := r.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			rule := fe.Tag()
			if fe.Param() != "" {
				rule += "=" + fe.Param()
			}
			return fmt.Errorf("%w: --%s failed %s", usecase.ErrInvalidInput, fe.Field(), rule)
		}
		return fmt.Errorf("%w: %w", usecase.ErrInvalidInput, err)
	}
	return nil
}

// ExitCode maps a command error to a process exit status: 2 for bad input,
// 1 for everything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, usecase.ErrInvalidInput):
		return 2
	default:
		return 1
	}
}
