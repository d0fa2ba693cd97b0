package observability

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/lol-stats/internal/config"
	"github.com/riskibarqy/lol-stats/internal/platform/logging"
)

func TestStart_AllDisabled(t *testing.T) {
	rt, err := Start(config.Config{ServiceName: "lol-stats-api"}, logging.NewNop())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if rt.PprofAddr() != "" {
		t.Fatalf("expected pprof to stay off, got %q", rt.PprofAddr())
	}
	if err := rt.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestStart_TracingWithoutDSNIsNoop(t *testing.T) {
	rt, err := Start(config.Config{UptraceEnabled: true, UptraceDSN: "  "}, nil)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if rt.flushTraces != nil {
		t.Fatalf("expected no trace exporter without a DSN")
	}
	if err := rt.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestStart_PprofServesIndex(t *testing.T) {
	rt, err := Start(config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}, logging.NewNop())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer func() { _ = rt.Shutdown(context.Background()) }()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get("http://" + rt.PprofAddr() + "/debug/pprof/")
	if err != nil {
		t.Fatalf("get pprof index: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "goroutine") {
		t.Fatalf("unexpected pprof index: %d %q", resp.StatusCode, body)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := rt.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if rt.PprofAddr() != "" {
		t.Fatalf("expected pprof address cleared after shutdown")
	}
}

func TestStart_PprofBadAddr(t *testing.T) {
	if _, err := Start(config.Config{PprofEnabled: true, PprofAddr: "not-a-port"}, logging.NewNop()); err == nil {
		t.Fatalf("expected listen error")
	}
}

func TestShutdown_NilRuntime(t *testing.T) {
	var rt *Runtime
	if err := rt.Shutdown(context.Background()); err != nil {
		t.Fatalf("nil shutdown: %v", err)
	}
}
