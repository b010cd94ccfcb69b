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

package types

// MoveType distinguishes the four families of move that need special
// make/unmake handling. A pawn double push is still a Normal move: it is
// recognized by the two-rank from/to distance and needs no dedicated type,
// it only needs the en-passant square set on make.
type MoveType uint8

const (
	// Normal covers quiet moves, captures and pawn double pushes.
	Normal MoveType = iota
	// Promotion is a pawn reaching the back rank; the generator emits one
	// Promotion move per target piece type (Q, R, B, N).
	Promotion
	// EnPassant is a pawn capture of the square behind an enemy pawn that
	// just double-pushed.
	EnPassant
	// Castling is a king move of two squares with the matching rook jump.
	Castling
)

// IsValid reports whether mt is one of the four defined move types.
func (mt MoveType) IsValid() bool {
	return mt <= Castling
}

func (mt MoveType) String() string {
	switch mt {
	case Normal:
		return "n"
	case Promotion:
		return "p"
	case EnPassant:
		return "e"
	case Castling:
		return "c"
	default:
		return "?"
	}
}
