// Package observability starts the process-wide tracing and profiling hooks
// of the API binary.
package observability

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/lol-stats/internal/config"
	"github.com/riskibarqy/lol-stats/internal/platform/logging"
)

// Runtime owns the telemetry started for one process. Every hook is
// optional; disabled hooks are nil.
type Runtime struct {
	logger *logging.Logger

	flushTraces  func(context.Context) error
	stopProfiler func() error
	pprof        *pprofServer
}

// Start brings up tracing, continuous profiling and the pprof listener as
// configured. On error everything already started is stopped again.
func Start(cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}
	rt := &Runtime{logger: logger}

	rt.flushTraces = startTracing(cfg, logger)

	stop, err := startProfiler(cfg, logger)
	if err != nil {
		_ = rt.Shutdown(context.Background())
		return nil, crerr.Wrap(err, "start pyroscope")
	}
	rt.stopProfiler = stop

	srv, err := startPprof(cfg.PprofEnabled, cfg.PprofAddr, logger)
	if err != nil {
		_ = rt.Shutdown(context.Background())
		return nil, crerr.Wrap(err, "start pprof")
	}
	rt.pprof = srv

	return rt, nil
}

// PprofAddr reports the bound pprof address, or "" when pprof is off.
func (rt *Runtime) PprofAddr() string {
	if rt == nil || rt.pprof == nil {
		return ""
	}
	return rt.pprof.addr()
}

// Shutdown stops the hooks in reverse start order and flushes pending spans.
func (rt *Runtime) Shutdown(ctx context.Context) error {
	if rt == nil {
		return nil
	}

	var errs error
	if rt.pprof != nil {
		if err := rt.pprof.stop(ctx); err != nil {
			errs = crerr.CombineErrors(errs, crerr.Wrap(err, "stop pprof"))
		}
		rt.pprof = nil
	}
	if rt.stopProfiler != nil {
		if err := rt.stopProfiler(); err != nil {
			errs = crerr.CombineErrors(errs, crerr.Wrap(err, "stop pyroscope"))
		}
		rt.stopProfiler = nil
	}
	if rt.flushTraces != nil {
		if err := rt.flushTraces(ctx); err != nil {
			errs = crerr.CombineErrors(errs, crerr.Wrap(err, "flush traces"))
		}
		rt.flushTraces = nil
	}
	return errs
}
