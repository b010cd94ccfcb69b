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

package engine

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DickermanJosh/opera-engine-sub000/internal/config"
	"github.com/DickermanJosh/opera-engine-sub000/internal/position"
	. "github.com/DickermanJosh/opera-engine-sub000/internal/types"
)

// make tests run in the project's root directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

func TestEngineSearchReturnsLegalMove(t *testing.T) {
	p := position.NewPosition()
	e := NewEngine(p)

	result := e.Search(Limits{MaxDepth: 3})

	assert.NotEqual(t, MoveNone, result.BestMove)
	assert.False(t, e.IsSearching())
}

func TestEngineStopIsIdempotent(t *testing.T) {
	p := position.NewPosition()
	e := NewEngine(p)

	e.Stop()
	e.Stop()

	assert.False(t, e.IsSearching())
}

func TestEngineSetOptionAppliesToGlobalSettings(t *testing.T) {
	p := position.NewPosition()
	e := NewEngine(p)

	err := e.SetOption("MorphyBias", "0.5")

	assert.NoError(t, err)
	assert.EqualValues(t, 0.5, config.Settings.Eval.MorphyBias)
}
