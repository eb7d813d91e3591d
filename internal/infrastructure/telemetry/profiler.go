package telemetry

import (
	"context"
	"fmt"
	"os"

	"github.com/grafana/pyroscope-go"
	"go.uber.org/zap"
)

// Profiler wraps a running Pyroscope profiler
type Profiler struct {
	profiler *pyroscope.Profiler
}

// StartProfiler starts continuous profiling when enabled and returns a no-op profiler otherwise
func StartProfiler(enabled bool, serverURL, appName string, logger *zap.Logger) (*Profiler, error) {
	if !enabled {
		return &Profiler{}, nil
	}
	if serverURL == "" {
		return nil, fmt.Errorf("pyroscope server url is required when profiling is enabled")
	}

	tags := map[string]string{}
	if host, err := os.Hostname(); err == nil {
		tags["hostname"] = host
	}

	p, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: appName,
		ServerAddress:   serverURL,
		Logger:          pyroscopeLogger{logger.Named("pyroscope").Sugar()},
		Tags:            tags,
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start Pyroscope profiler: %w", err)
	}
	logger.Info("Pyroscope profiler started", zap.String("server", serverURL))
	return &Profiler{profiler: p}, nil
}

// Running reports whether profiles are being collected
func (p *Profiler) Running() bool {
	return p.profiler != nil
}

// Stop flushes and stops the profiler
func (p *Profiler) Stop() error {
	if p.profiler == nil {
		return nil
	}
	return p.profiler.Stop()
}

// WithProfilingLabels runs fn with pprof labels attached so profiles can be sliced
// by request attributes. kv alternates label names and values.
func WithProfilingLabels(ctx context.Context, fn func(context.Context), kv ...string) {
	if len(kv) == 0 || len(kv)%2 != 0 {
		fn(ctx)
		return
	}
	pyroscope.TagWrapper(ctx, pyroscope.Labels(kv...), fn)
}

type pyroscopeLogger struct {
	s *zap.SugaredLogger
}

func (l pyroscopeLogger) Infof(format string, args ...any)  { l.s.Debugf(format, args...) }
func (l pyroscopeLogger) Debugf(format string, args ...any) { l.s.Debugf(format, args...) }
func (l pyroscopeLogger) Errorf(format string, args ...any) { l.s.Errorf(format, args...) }
