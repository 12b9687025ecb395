// Package telemetry provides the structured-logging wrapper used by
// core.FactorGraph's run loop, built over github.com/rs/zerolog.
//
// A nil or zero-value *Logger is safe to use and silently discards every
// record, so the engine never requires a caller to configure logging.
package telemetry
