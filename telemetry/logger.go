package telemetry

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level mirrors the handful of severities the run loop actually emits.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format selects the zerolog writer: structured JSON for machine
// consumption, or a colorized console writer for local runs.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Config configures a Logger. The zero value is Level: "" (treated as
// disabled); see NewLogger.
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
}

// Logger wraps a zerolog.Logger with the handful of call sites
// core.FactorGraph needs: iteration progress, convergence, freeze, and
// sample events. A nil *Logger is valid and every method on it is a no-op.
type Logger struct {
	enabled bool
	z       zerolog.Logger
}

// NewLogger builds a Logger from cfg. An empty cfg.Level disables logging
// entirely, so callers who don't care about telemetry can pass a zero
// Config and incur no zerolog overhead beyond the disabled-check branch.
func NewLogger(cfg Config) *Logger {
	if cfg.Level == "" {
		return &Logger{enabled: false}
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	var w io.Writer = out
	if cfg.Format == FormatText {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: false}
	}

	z := zerolog.New(w).With().Timestamp().Logger()
	switch cfg.Level {
	case LevelDebug:
		z = z.Level(zerolog.DebugLevel)
	case LevelWarn:
		z = z.Level(zerolog.WarnLevel)
	case LevelError:
		z = z.Level(zerolog.ErrorLevel)
	default:
		z = z.Level(zerolog.InfoLevel)
	}

	return &Logger{enabled: true, z: z}
}

// Iteration logs one message-passing iteration's convergence signal at
// debug level.
func (l *Logger) Iteration(i int, discrepancy float64) {
	if l == nil || !l.enabled {
		return
	}
	l.z.Debug().Int("iteration", i).Float64("discrepancy", discrepancy).Msg("bp iteration")
}

// Converged logs a successful Run at info level.
func (l *Logger) Converged(iterations int, discrepancy float64) {
	if l == nil || !l.enabled {
		return
	}
	l.z.Info().Int("iterations", iterations).Float64("discrepancy", discrepancy).Msg("bp converged")
}

// Failed logs an unsuccessful Run at warn level.
func (l *Logger) Failed(iterations int, discrepancy float64) {
	if l == nil || !l.enabled {
		return
	}
	l.z.Warn().Int("iterations", iterations).Float64("discrepancy", discrepancy).Msg("bp did not converge")
}

// Froze logs a FreezeVariable call at debug level.
func (l *Logger) Froze(varIndex int) {
	if l == nil || !l.enabled {
		return
	}
	l.z.Debug().Int("variable", varIndex).Msg("variable frozen")
}

// Sampled logs a completed Sample call at info level.
func (l *Logger) Sampled(count int, totalIterations int) {
	if l == nil || !l.enabled {
		return
	}
	l.z.Info().Int("variables", count).Int("total_iterations", totalIterations).Msg("sampling complete")
}
