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
	"testing"
)

func TestSetOptionValid(t *testing.T) {
	if err := SetOption("HashMB", "256"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Settings.Search.TTSize != 256 {
		t.Fatalf("expected TTSize 256, got %d", Settings.Search.TTSize)
	}

	if err := SetOption("UseMorphyStyle", "true"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Settings.Eval.UseMorphyStyle {
		t.Fatal("expected UseMorphyStyle true")
	}

	if err := SetOption("MorphyBias", "1.5"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Settings.Eval.MorphyBias != 1.5 {
		t.Fatalf("expected MorphyBias 1.5, got %v", Settings.Eval.MorphyBias)
	}
}

func TestSetOptionClampsOutOfRange(t *testing.T) {
	if err := SetOption("FutilityMargin", "-50"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Settings.Search.FutilityMargin != 0 {
		t.Fatalf("expected FutilityMargin clamped to 0, got %d", Settings.Search.FutilityMargin)
	}

	if err := SetOption("MorphyBias", "5.0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Settings.Eval.MorphyBias != 2.0 {
		t.Fatalf("expected MorphyBias clamped to 2.0, got %v", Settings.Eval.MorphyBias)
	}
}

func TestSetOptionRejectsMalformedValue(t *testing.T) {
	err := SetOption("HashMB", "not-a-number")
	if err == nil {
		t.Fatal("expected error for malformed value")
	}
	if _, ok := err.(*ConfigurationError); !ok {
		t.Fatalf("expected *ConfigurationError, got %T", err)
	}
}

func TestSetOptionRejectsUnknownName(t *testing.T) {
	err := SetOption("NotARealOption", "1")
	if err == nil {
		t.Fatal("expected error for unknown option name")
	}
	if _, ok := err.(*ConfigurationError); !ok {
		t.Fatalf("expected *ConfigurationError, got %T", err)
	}
}
