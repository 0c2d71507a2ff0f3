// Package log provides structured logging for rocdate.
//
// Package: log
// Title: rocdate Structured Logging
// Description: Leveled, structured logging with JSON, text and logfmt output.
//              Coded errors from the core error package are logged with their
//              code, severity, operation and details as fields.
// Author: paisley
// Version: v0.2.0
// Created: 2026-03-02
// Modified: 2026-09-23
//
// Change History:
// - 2026-03-02 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-09-23 v0.2.0: Service-zone timestamps, correlation IDs, operation timers
//
// Features:
// - Levels trace, debug, info, warn and error
// - JSON, text and logfmt formats with sorted field keys
// - Immutable derivation through WithField, WithName and WithCorrelationID
// - LogError chooses the level from the error severity
// - Operation timers that log their duration
//
// Timestamps come from timex.NowTime, so log lines carry the same UTC+8
// wall clock the date utilities use. Config.Clock replaces it in tests.
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelInfo,
//		Format: log.FormatJSON,
//		Name:   "toroc",
//	}).WithCorrelationID(id)
//
//	logger.Info("converted", log.Fields{"input": raw, "output": out})
//
//	timer := logger.StartTimer("reformat")
//	defer timer.Stop()
//
//	if err != nil {
//		logger.LogError(err)
//	}
//
// A Logger is safe for concurrent use. Loggers derived from one another
// share a write lock, so lines are never interleaved.
package log
