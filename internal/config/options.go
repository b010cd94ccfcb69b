//
// opera-engine-sub000 - chess engine core in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package config

import (
	"fmt"
	"strconv"

	"github.com/DickermanJosh/opera-engine-sub000/internal/logging"
)

// ConfigurationError reports a malformed value or an unknown option name
// passed to SetOption; the setting is left unchanged. Out-of-range numeric
// values do not produce this error: they are clamped and logged instead.
type ConfigurationError struct {
	Option string
	Value  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration option %q=%q rejected: %s", e.Option, e.Value, e.Reason)
}

// optionRange clamps an int to [lo, hi], returning the clamped value and
// whether clamping was necessary.
func optionRange(v, lo, hi int) (int, bool) {
	switch {
	case v < lo:
		return lo, true
	case v > hi:
		return hi, true
	default:
		return v, false
	}
}

func setIntOption(name, value string, lo, hi int, dst *int) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return &ConfigurationError{Option: name, Value: value, Reason: "not an integer"}
	}
	clamped, wasClamped := optionRange(v, lo, hi)
	*dst = clamped
	if wasClamped {
		logging.GetLog().Warningf("option %s=%d out of range [%d, %d], clamped to %d", name, v, lo, hi, clamped)
	}
	return nil
}

func setFloatOption(name, value string, lo, hi float64, dst *float64) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return &ConfigurationError{Option: name, Value: value, Reason: "not a number"}
	}
	clamped := v
	wasClamped := false
	if v < lo {
		clamped, wasClamped = lo, true
	} else if v > hi {
		clamped, wasClamped = hi, true
	}
	*dst = clamped
	if wasClamped {
		logging.GetLog().Warningf("option %s=%v out of range [%v, %v], clamped to %v", name, v, lo, hi, clamped)
	}
	return nil
}

func setBoolOption(name, value string, dst *bool) error {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return &ConfigurationError{Option: name, Value: value, Reason: "not a boolean"}
	}
	*dst = v
	return nil
}

// SetOption applies a single named tunable to Settings, following the
// engine API's setOption(handle, name, value) contract. Out-of-range
// numeric values are clamped to a sane range and logged via GetLog().Warning
// rather than rejected outright; malformed values (non-numeric, non-bool)
// return a *ConfigurationError and leave the setting unchanged.
func SetOption(name, value string) error {
	switch name {
	case "HashMB":
		return setIntOption(name, value, 1, MaxTTSizeInMB, &Settings.Search.TTSize)
	case "Threads":
		return setIntOption(name, value, 1, 256, &Settings.Search.Threads)
	case "NullMoveReduction":
		return setIntOption(name, value, 0, 10, &Settings.Search.NmpReduction)
	case "LMRFullDepthMoves":
		return setIntOption(name, value, 0, 64, &Settings.Search.LmrMovesSearched)
	case "LMRReductionLimit":
		return setIntOption(name, value, 0, 10, &Settings.Search.LmrReductionLimit)
	case "FutilityMargin":
		return setIntOption(name, value, 0, 2000, &Settings.Search.FutilityMargin)
	case "RazoringMargin":
		return setIntOption(name, value, 0, 2000, &Settings.Search.RazorMargin)
	case "MinDepthForNMP":
		return setIntOption(name, value, 1, 32, &Settings.Search.NmpDepth)
	case "MinDepthForLMR":
		return setIntOption(name, value, 1, 32, &Settings.Search.LmrDepth)
	case "MinDepthForFutility":
		return setIntOption(name, value, 0, 6, &Settings.Search.MinDepthForFutility)
	case "MinDepthForRazoring":
		return setIntOption(name, value, 1, 32, &Settings.Search.MinDepthForRazoring)
	case "MorphyBias":
		return setFloatOption(name, value, 0.0, 2.0, &Settings.Eval.MorphyBias)
	case "UseMorphyStyle":
		return setBoolOption(name, value, &Settings.Eval.UseMorphyStyle)
	default:
		return &ConfigurationError{Option: name, Value: value, Reason: "unknown option"}
	}
}

// MaxTTSizeInMB bounds the HashMB option. Kept in config (rather than
// importing transpositiontable, which would create an import cycle since
// transpositiontable already depends on config for its own settings) and
// mirrors transpositiontable.MaxSizeInMB.
const MaxTTSizeInMB = 65_536
