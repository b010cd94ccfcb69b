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

// Package engine exposes the language-neutral engine API over the search
// package: newEngine/search/stop/isSearching/setOption, decoupled from any
// wire protocol. A UCI front end, a test harness, or a future gRPC/JSON
// bridge can all be built on top of it without pulling in protocol parsing.
package engine

import (
	"time"

	"github.com/DickermanJosh/opera-engine-sub000/internal/config"
	"github.com/DickermanJosh/opera-engine-sub000/internal/moveslice"
	"github.com/DickermanJosh/opera-engine-sub000/internal/position"
	"github.com/DickermanJosh/opera-engine-sub000/internal/search"
	"github.com/DickermanJosh/opera-engine-sub000/internal/searchreport"
	"github.com/DickermanJosh/opera-engine-sub000/internal/types"
)

// Limits mirrors the engine API's language-neutral search limits:
// {maxDepth, maxNodes, maxTimeMs, infinite}.
type Limits struct {
	MaxDepth  int
	MaxNodes  uint64
	MaxTimeMs int64
	Infinite  bool
}

// Result mirrors the engine API's language-neutral search result:
// {bestMove, ponderMove?, score, depth, nodes, timeMs, pv}.
type Result struct {
	BestMove   types.Move
	PonderMove types.Move
	Score      types.Value
	Depth      int
	Nodes      uint64
	TimeMs     int64
	Pv         moveslice.MoveSlice
}

// Handle is the opaque search handle returned by NewEngine, tied to a board.
type Handle struct {
	s *search.Search
	p *position.Position
}

// NewEngine creates a search handle tied to the given board, per
// newEngine(board) -> handle.
func NewEngine(p *position.Position) *Handle {
	return &Handle{
		s: search.NewSearch(),
		p: p,
	}
}

// SetObserver wires a progress callback invoked after each completed
// depth, per the engine API's optional progress callback.
func (h *Handle) SetObserver(observer searchreport.Observer) {
	h.s.SetObserver(observer)
}

// Search blocks until the search completes, per search(handle, limits) -> result.
func (h *Handle) Search(limits Limits) Result {
	sl := search.NewSearchLimits()
	if limits.Infinite {
		sl.Infinite = true
	}
	if limits.MaxDepth > 0 {
		sl.Depth = limits.MaxDepth
	}
	if limits.MaxNodes > 0 {
		sl.Nodes = limits.MaxNodes
	}
	if limits.MaxTimeMs > 0 {
		sl.TimeControl = true
		sl.MoveTime = time.Duration(limits.MaxTimeMs) * time.Millisecond
	}

	h.s.StartSearch(*h.p, *sl)
	h.s.WaitWhileSearching()

	r := h.s.LastSearchResult()
	return Result{
		BestMove:   r.BestMove,
		PonderMove: r.PonderMove,
		Score:      r.BestValue,
		Depth:      r.SearchDepth,
		Nodes:      h.s.NodesVisited(),
		TimeMs:     r.SearchTime.Milliseconds(),
		Pv:         r.Pv,
	}
}

// Stop sets the stop flag; idempotent, per stop(handle).
func (h *Handle) Stop() {
	h.s.StopSearch()
}

// IsSearching reports whether a search is in progress, per isSearching(handle).
func (h *Handle) IsSearching() bool {
	return h.s.IsSearching()
}

// SetOption applies a named tunable to the engine's global settings, per
// setOption(handle, name, value). Settings are process-wide (as in the
// underlying config package), so the handle argument is accepted for API
// symmetry but does not scope the change to this handle alone.
func (h *Handle) SetOption(name, value string) error {
	return config.SetOption(name, value)
}
