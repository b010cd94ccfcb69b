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

// Package types contains the primitive data types shared across the engine:
// squares, files, ranks, colors, pieces, bitboards, moves and their packed
// value encoding, and the precomputed attack/ray tables move generation and
// search rely on. Many of these would be enum candidates in another language;
// Go expresses them as small integer types with a const block and methods.
package types

// Key is a Zobrist hash of a position. It needs the full 64 bits for
// distribution and is used to index the transposition table and the
// pawn structure cache.
type Key uint64

var initialized = false

// init precomputes bitboard tables (rays, magics, distances) and the
// piece-square value tables. Both are read-only lookup tables built once
// at process start; guarded by a flag since Go runs package init() once
// per import but bitboard.go and posValues.go both depend on this package
// being fully initialized before first use.
func init() {
	if initialized {
		return
	}
	initBb()
	initPosValues()
	initialized = true
}

const (
	// SqLength number of squares on a board
	SqLength int = 64

	// MaxDepth max search depth
	MaxDepth = 128

	// MaxMoves max number of moves for a game
	MaxMoves = 512

	// KB = 1,024 bytes
	KB uint64 = 1024

	// MB = KB * KB
	MB uint64 = KB * KB

	// GB = KB * MB
	GB uint64 = KB * MB

	// GamePhaseMax is the maximum game phase value. Game phase is derived
	// from the count of remaining non-pawn material and tapers evaluation
	// between midgame and endgame piece-square tables.
	GamePhaseMax = 24
)
