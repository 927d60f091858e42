package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/cliquesat/config"
	"github.com/katalvlaran/cliquesat/monitor"
)

// progress owns the monitor of one run and whatever it reports to.
type progress struct {
	monitor *monitor.Monitor
	async   *monitor.Async
	server  *http.Server
	logger  *slog.Logger
}

// startProgress builds the sinks for cfg.Mode. Silent mode returns a
// progress with a nil monitor.
func startProgress(cfg config.Config, logger *slog.Logger) (*progress, error) {
	p := &progress{logger: logger}
	if cfg.Monitor.Mode == config.ModeSilent {
		return p, nil
	}

	sinks := monitor.Multi{monitor.NewLogSink(logger)}
	if cfg.Monitor.Mode == config.ModeMetrics {
		reg := prometheus.NewRegistry()
		ms, err := monitor.NewMetricsSink(reg, "")
		if err != nil {
			return nil, err
		}
		if err = p.serve(cfg.Monitor.MetricsAddr, reg); err != nil {
			return nil, err
		}
		sinks = append(sinks, ms)
	}

	p.async = monitor.NewAsync(sinks, 0)
	p.monitor = monitor.New(cfg.MonitorConfig(), p.async)

	return p, nil
}

func (p *progress) serve(addr string, reg *prometheus.Registry) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	p.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := p.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			p.logger.Error("metrics server stopped", "error", err)
		}
	}()
	p.logger.Info("serving metrics", "addr", ln.Addr().String())

	return nil
}

// Close flushes pending snapshots and stops the metrics server.
func (p *progress) Close() {
	if p.async != nil {
		p.async.Close()
		if n := p.async.Dropped(); n > 0 {
			p.logger.Warn("progress snapshots dropped", "count", n)
		}
	}
	if p.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = p.server.Shutdown(ctx)
	}
}
