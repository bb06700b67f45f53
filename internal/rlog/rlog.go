package rlog

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ringCapacityDefault bounds the in-memory recent-entry ring so that a long
// annealing/routing run cannot grow the telemetry buffer without limit.
const ringCapacityDefault = 512

// Entry is one recorded log line, kept for HUD-style "what just happened"
// consumers without pulling in any rendering library.
type Entry struct {
	Level   string
	Message string
}

// Logger is a small facade over *zap.Logger that also keeps a bounded ring
// of recent entries for introspection.
type Logger struct {
	z   *zap.Logger
	mu  sync.Mutex
	ring []Entry
	next int
	full bool
	cap  int
}

// Option configures a Logger at construction time.
type Option func(*config)

type config struct {
	level    zapcore.Level
	devel    bool
	ringCap  int
}

// WithLevel sets the minimum enabled log level. Default is zapcore.InfoLevel.
func WithLevel(level zapcore.Level) Option {
	return func(c *config) { c.level = level }
}

// WithDevelopment switches to zap's human-readable console encoder,
// matching how a developer running the CLI locally wants to read the
// progress HUD rather than parse JSON.
func WithDevelopment() Option {
	return func(c *config) { c.devel = true }
}

// WithRingCapacity overrides the number of recent entries retained for
// Recent(). Values <= 0 fall back to ringCapacityDefault.
func WithRingCapacity(n int) Option {
	return func(c *config) { c.ringCap = n }
}

// New builds a Logger. By default it logs JSON at Info level, suitable for
// the CLI's progress output and for piping to a log aggregator.
func New(opts ...Option) (*Logger, error) {
	cfg := &config{level: zapcore.InfoLevel, ringCap: ringCapacityDefault}
	for _, opt := range opts {
		opt(cfg)
	}

	var zcfg zap.Config
	if cfg.devel {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(cfg.level)

	z, err := zcfg.Build()
	if err != nil {
		return nil, err
	}

	ringCap := cfg.ringCap
	if ringCap <= 0 {
		ringCap = ringCapacityDefault
	}

	return &Logger{z: z, ring: make([]Entry, ringCap), cap: ringCap}, nil
}

// Nop returns a Logger that discards everything. Useful for tests and for
// library consumers that want the engine's API without its log output.
func Nop() *Logger {
	return &Logger{z: zap.NewNop(), ring: make([]Entry, ringCapacityDefault), cap: ringCapacityDefault}
}

func (l *Logger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ring[l.next] = Entry{Level: level, Message: msg}
	l.next = (l.next + 1) % l.cap
	if l.next == 0 {
		l.full = true
	}
}

// Info logs at INFO, e.g. construction milestones and committed routes.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.z.Info(msg, fields...)
	l.record("INFO", msg)
}

// Warn logs at WARN, e.g. a recoverable rip-up-and-reroute round.
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.z.Warn(msg, fields...)
	l.record("WARN", msg)
}

// Error logs at ERROR immediately before a fatal typed error is returned
// to the caller (see spec §7): logging here is observational, not a
// substitute for propagating the error itself.
func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.z.Error(msg, fields...)
	l.record("ERROR", msg)
}

// Debug logs at DEBUG, e.g. per-mutation and per-step placer/router detail.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.z.Debug(msg, fields...)
	l.record("DEBUG", msg)
}

// Recent returns up to n of the most recently recorded entries, oldest
// first. It never allocates more than min(n, ring capacity) entries.
func (l *Logger) Recent(n int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	size := l.next
	if l.full {
		size = l.cap
	}
	if n > size {
		n = size
	}
	if n <= 0 {
		return nil
	}

	out := make([]Entry, n)
	start := l.next - n
	for i := 0; i < n; i++ {
		idx := ((start+i)%l.cap + l.cap) % l.cap
		out[i] = l.ring[idx]
	}
	return out
}

// Sync flushes any buffered log entries. Callers should defer Sync on the
// logger returned from New.
func (l *Logger) Sync() error {
	return l.z.Sync()
}
