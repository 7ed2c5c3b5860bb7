// internal/app/system/telemetry/telemetry.go

// Package telemetry is the sink for non-fatal failures: audit writes that
// could not be persisted, lookups that resolved to nothing, filters that
// were abandoned as ambiguous. These are reported, never raised — callers
// treat them as warnings attached to an otherwise successful operation.
package telemetry

import (
	"go.uber.org/zap"
)

// Sink receives non-fatal failure events.
type Sink interface {
	// Warn reports one event. Implementations must be safe for concurrent
	// use and must never fail.
	Warn(event string, fields ...zap.Field)
}

// Mode values controlling the zap-backed sink, mirroring the audit logging
// configuration style ("all"/"log" emit, "off" discards).
const (
	ModeAll = "all"
	ModeLog = "log"
	ModeOff = "off"
)

type zapSink struct {
	log  *zap.Logger
	mode string
}

// New creates a Sink writing through the given zap logger. Unknown modes
// behave as ModeAll so misconfiguration loses nothing.
func New(log *zap.Logger, mode string) Sink {
	return &zapSink{log: log, mode: mode}
}

func (s *zapSink) Warn(event string, fields ...zap.Field) {
	if s.mode == ModeOff {
		return
	}
	all := make([]zap.Field, 0, len(fields)+2)
	all = append(all, zap.Bool("telemetry", true), zap.String("event", event))
	all = append(all, fields...)
	s.log.Warn("telemetry event", all...)
}

type nopSink struct{}

func (nopSink) Warn(string, ...zap.Field) {}

// Nop returns a Sink that discards everything. Used by tests and as the
// fallback when no sink is wired.
func Nop() Sink {
	return nopSink{}
}
