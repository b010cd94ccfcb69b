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

// Package version holds build-time identification for the engine binary.
// version and buildTime are meant to be overwritten at link time, e.g.
//
//	go build -ldflags "-X github.com/DickermanJosh/opera-engine-sub000/internal/version.version=1.2.0 -X github.com/DickermanJosh/opera-engine-sub000/internal/version.buildTime=2026-07-30"
package version

var (
	version   = "dev"
	buildTime = "unknown"
)

// Version returns the engine's version string, "dev" when built without
// the version ldflag.
func Version() string {
	return version
}

// BuildTime returns the recorded build timestamp, "unknown" when built
// without the buildTime ldflag.
func BuildTime() string {
	return buildTime
}
