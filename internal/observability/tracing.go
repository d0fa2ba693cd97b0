package observability

import (
	"context"
	"strings"

	"github.com/riskibarqy/lol-stats/internal/config"
	"github.com/riskibarqy/lol-stats/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
)

// startTracing installs the Uptrace OpenTelemetry providers. Without a DSN
// the global no-op providers stay in place and nil is returned.
func startTracing(cfg config.Config, logger *logging.Logger) func(context.Context) error {
	dsn := strings.TrimSpace(cfg.UptraceDSN)
	switch {
	case !cfg.UptraceEnabled:
		logger.Info("tracing disabled", "reason", "UPTRACE_ENABLED=false")
		return nil
	case dsn == "":
		logger.Warn("tracing disabled", "reason", "no UPTRACE_DSN or OTLP headers")
		return nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(dsn),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
	)
	logger.Info("tracing enabled", "exporter", "uptrace", "store", cfg.DBDriver)
	return uptrace.Shutdown
}
