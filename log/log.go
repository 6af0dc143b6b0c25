// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2022-present Datadog, Inc.

// Package log provides a pluggable logging facade. By default, messages are
// forwarded to the datadog-agent logger; embedders may install their own
// [Backend] with [SetBackend].
package log

import (
	"fmt"
	"sync"

	agentlog "github.com/DataDog/datadog-agent/pkg/util/log"
)

// Backend is the set of functions used to emit log messages at each level.
// The Errorf and Criticalf functions return an error built from the message,
// so that callers can log and return in a single statement.
type Backend struct {
	Trace     func(string, ...any)
	Debug     func(string, ...any)
	Info      func(string, ...any)
	Warn      func(string, ...any)
	Errorf    func(string, ...any) error
	Criticalf func(string, ...any) error
}

var (
	backendMu sync.RWMutex
	backend   = defaultBackend()
)

// SetBackend replaces the current logging backend. Levels left nil in be keep
// using the default datadog-agent logger.
func SetBackend(be Backend) {
	def := defaultBackend()
	if be.Trace == nil {
		be.Trace = def.Trace
	}
	if be.Debug == nil {
		be.Debug = def.Debug
	}
	if be.Info == nil {
		be.Info = def.Info
	}
	if be.Warn == nil {
		be.Warn = def.Warn
	}
	if be.Errorf == nil {
		be.Errorf = def.Errorf
	}
	if be.Criticalf == nil {
		be.Criticalf = def.Criticalf
	}

	backendMu.Lock()
	backend = be
	backendMu.Unlock()
}

// Trace logs a message at the trace level.
func Trace(format string, args ...any) {
	current().Trace(format, args...)
}

// Debug logs a message at the debug level.
func Debug(format string, args ...any) {
	current().Debug(format, args...)
}

// Info logs a message at the info level.
func Info(format string, args ...any) {
	current().Info(format, args...)
}

// Warn logs a message at the warning level.
func Warn(format string, args ...any) {
	current().Warn(format, args...)
}

// Errorf logs a message at the error level and returns it as an error. The
// format supports the %w verb.
func Errorf(format string, args ...any) error {
	return current().Errorf(format, args...)
}

// Criticalf logs a message at the critical level and returns it as an error.
// The format supports the %w verb.
func Criticalf(format string, args ...any) error {
	return current().Criticalf(format, args...)
}

func current() Backend {
	backendMu.RLock()
	defer backendMu.RUnlock()
	return backend
}

func defaultBackend() Backend {
	return Backend{
		Trace: agentlog.Tracef,
		Debug: agentlog.Debugf,
		Info:  agentlog.Infof,
		Warn: func(format string, args ...any) {
			_ = agentlog.Warnf(format, args...)
		},
		Errorf: func(format string, args ...any) error {
			err := fmt.Errorf(format, args...)
			_ = agentlog.Error(err.Error())
			return err
		},
		Criticalf: func(format string, args ...any) error {
			err := fmt.Errorf(format, args...)
			_ = agentlog.Critical(err.Error())
			return err
		},
	}
}
