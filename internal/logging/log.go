/*
 * opera-engine-sub000 - chess engine core in Go
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package logging sets up the per-concern loggers used across the engine.
// Each concern (standard, search, test) gets its own named logger so log
// level can be tuned independently, e.g. a quiet standard log with a
// verbose search trace during tuning sessions.
package logging

import (
	"os"
	"sync"

	"github.com/op/go-logging"
)

var (
	once        sync.Once
	backendOnce sync.Once

	stdLog    *logging.Logger
	searchLog *logging.Logger
	testLog   *logging.Logger
)

const module = ""

func setupBackend() {
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.DEBUG, module)
	logging.SetBackend(leveled)
}

// GetLog returns the standard (non-search) engine log.
func GetLog() *logging.Logger {
	backendOnce.Do(setupBackend)
	once.Do(func() {
		stdLog = logging.MustGetLogger("standard")
	})
	return stdLog
}

// GetSearchLog returns the dedicated search trace log. Kept separate from
// the standard log so search tracing can be enabled without flooding the
// engine log with per-node detail.
func GetSearchLog() *logging.Logger {
	backendOnce.Do(setupBackend)
	once.Do(func() {
		stdLog = logging.MustGetLogger("standard")
	})
	if searchLog == nil {
		searchLog = logging.MustGetLogger("search")
	}
	return searchLog
}

// GetTestLog returns the logger used by the test suite and perft harness.
func GetTestLog() *logging.Logger {
	backendOnce.Do(setupBackend)
	if testLog == nil {
		testLog = logging.MustGetLogger("test")
	}
	return testLog
}

// SetLevel sets the level for a named logger ("standard", "search", "test").
func SetLevel(level logging.Level, name string) {
	logging.SetLevel(level, name)
}

// LevelFromString maps a config string ("debug", "info", ...) to a go-logging Level.
// Unknown names fall back to INFO rather than failing configuration.
func LevelFromString(s string) logging.Level {
	switch s {
	case "critical":
		return logging.CRITICAL
	case "error":
		return logging.ERROR
	case "warning":
		return logging.WARNING
	case "notice":
		return logging.NOTICE
	case "info":
		return logging.INFO
	case "debug":
		return logging.DEBUG
	default:
		return logging.INFO
	}
}
