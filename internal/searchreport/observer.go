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

// Package searchreport defines the progress-reporting contract a caller can
// plug into a search to receive iteration and result updates. It exists so
// internal/search never imports a concrete transport: callers embedding the
// engine (a UCI bridge, a test harness, a perft CLI) implement Observer
// themselves and hand it to Search.SetObserver.
package searchreport

import (
	"time"

	"github.com/DickermanJosh/opera-engine-sub000/internal/moveslice"
	"github.com/DickermanJosh/opera-engine-sub000/internal/types"
)

// Observer receives progress callbacks from a running search. All methods
// are called from the search goroutine; implementations that forward to a
// slow sink (a socket, a UI) should not block the search for long.
type Observer interface {
	// SendReadyOk acknowledges a readiness check.
	SendReadyOk()

	// SendInfoString forwards a free-form diagnostic message.
	SendInfoString(info string)

	// SendIterationEndInfo reports the completed result of one iterative
	// deepening depth: {depth, score, nodes, timeMs, nps, pv}.
	SendIterationEndInfo(depth int, seldepth int, value types.Value, nodes uint64, nps uint64, time time.Duration, pv moveslice.MoveSlice)

	// SendAspirationResearchInfo reports a fail-low/fail-high re-search at
	// the root with the window bound that failed.
	SendAspirationResearchInfo(depth int, seldepth int, value types.Value, valueType types.ValueType, nodes uint64, nps uint64, time time.Duration, pv moveslice.MoveSlice)

	// SendCurrentRootMove reports which root move is currently searched.
	SendCurrentRootMove(currMove types.Move, moveNumber int)

	// SendSearchUpdate reports periodic node/nps/hashfull counters while a
	// depth is still being searched.
	SendSearchUpdate(depth int, seldepth int, nodes uint64, nps uint64, time time.Duration, hashfull int)

	// SendCurrentLine reports the move sequence currently being searched.
	SendCurrentLine(moveList moveslice.MoveSlice)

	// SendResult reports the final best move and ponder move once the
	// search has stopped.
	SendResult(bestMove types.Move, ponderMove types.Move)
}
