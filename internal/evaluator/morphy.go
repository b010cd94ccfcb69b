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

package evaluator

import (
	"github.com/DickermanJosh/opera-engine-sub000/internal/config"
	. "github.com/DickermanJosh/opera-engine-sub000/internal/types"
)

// Morphy style bias multipliers. A bias of 1.0 applies them as named below,
// 0.0 disables them (plain evaluation), 2.0 doubles their effect on top of
// the base 1.0x. Named after Paul Morphy's rapid development, sacrificial
// and king-hunting style.
const (
	developmentBias       = 1.2
	kingSafetyBias        = 1.5
	mobilityBias          = 1.1
	sacrificeCompensation = 100 // max cp compensation for a material deficit
	uncastledPenalty      = 50  // cp penalty for a king still on its home square
)

// morphyAdjustment returns a centipawn adjustment (from White's view) applied
// on top of the base evaluation when UseMorphyStyle is enabled. It biases the
// position towards rapid development, aggressive attacks on the enemy king,
// piece activity and material sacrifices for initiative - the hallmarks of
// Morphy's play - scaled by the configured MorphyBias (0.0-2.0).
func (e *Evaluator) morphyAdjustment(baseValue Value) Value {
	bias := config.Settings.Eval.MorphyBias
	if bias < 0 {
		bias = 0
	} else if bias > 2 {
		bias = 2
	}
	if bias < 0.01 {
		return 0
	}

	var adjustment float64

	// 1. Development bias - rewards getting minor pieces off the back rank
	// early, faded out once the game phase tells us we are past the opening.
	if e.position.GamePhase()*2 > GamePhaseMax {
		devAdvantage := float64(e.developmentScore(White) - e.developmentScore(Black))
		adjustment += devAdvantage * (developmentBias - 1.0) * bias
	}

	// 2. King safety aggression - the king safety difference is amplified:
	// an unsafe black king counts extra for White, an unsafe white king
	// counts extra against White, both with the same multiplier.
	if config.Settings.Eval.UseAttacksInEval {
		whiteKingSafety := float64(e.kingSafetyScore(White))
		blackKingSafety := float64(e.kingSafetyScore(Black))
		multiplier := (kingSafetyBias - 1.0) * bias
		adjustment += -blackKingSafety*multiplier - (-whiteKingSafety * multiplier)
	}

	// 3. Mobility / initiative - active pieces are worth extra to a player
	// looking for attacking chances rather than passive consolidation.
	if config.Settings.Eval.UseAttacksInEval && config.Settings.Eval.UseMobility {
		mobAdvantage := float64(e.attack.Mobility[White] - e.attack.Mobility[Black])
		adjustment += mobAdvantage * (mobilityBias - 1.0) * bias
	}

	// 4. Uncastled king exploitation - an opponent who has not castled in
	// the middlegame is an invitation to open lines towards their king.
	if e.position.GamePhase()*2 > GamePhaseMax {
		if e.isUncastledInOpening(Black) {
			adjustment += uncastledPenalty * bias
		}
		if e.isUncastledInOpening(White) {
			adjustment -= uncastledPenalty * bias
		}
	}

	// 5. Sacrifice compensation - a material deficit is partially excused
	// when the side down material has enough activity to show for it.
	materialBalance := e.position.Material(White) - e.position.Material(Black)
	if materialBalance < -50 {
		adjustment += float64(e.sacrificeCompensation(White, materialBalance))
	} else if materialBalance > 50 {
		adjustment -= float64(e.sacrificeCompensation(Black, -materialBalance))
	}

	return Value(adjustment)
}

// developmentScore counts minor pieces that have left their starting
// squares, the simplest proxy for "has this side started developing".
func (e *Evaluator) developmentScore(c Color) int {
	homeRank := Rank1_Bb
	if c == Black {
		homeRank = Rank8_Bb
	}
	minors := e.position.PiecesBb(c, Knight) | e.position.PiecesBb(c, Bishop)
	developed := minors.PopCount() - (minors & homeRank).PopCount()
	return developed * 10
}

// kingSafetyScore is a rough per-side danger score: positive means the
// king is relatively safe, negative means it is under pressure. Reuses the
// attacks already computed by evaluate() via UseAttacksInEval.
func (e *Evaluator) kingSafetyScore(c Color) int {
	them := c.Flip()
	enemyAttacks := e.kingRing[c] & e.attack.All[them]
	ourDefence := e.kingRing[c] & e.attack.All[c]
	return ourDefence.PopCount() - enemyAttacks.PopCount()
}

// isUncastledInOpening reports whether the given side's king is still on
// its home square. It does not look at the game phase; the caller does.
func (e *Evaluator) isUncastledInOpening(c Color) bool {
	home := SqE1
	if c == Black {
		home = SqE8
	}
	return e.position.KingSquare(c) == home
}

// sacrificeCompensation estimates how much of a material deficit is offset
// by initiative: piece activity and pressure on the enemy king. Capped at
// sacrificeCompensation centipawns regardless of how large the deficit is.
func (e *Evaluator) sacrificeCompensation(c Color, materialDeficit Value) int {
	them := c.Flip()
	compensation := 0

	if config.Settings.Eval.UseAttacksInEval {
		compensation += int(e.attack.Mobility[c]-e.attack.Mobility[them]) * 4
		kingPressure := (e.kingRing[them] & e.attack.All[c]).PopCount()
		compensation += kingPressure * 15
	}

	if e.developmentScore(c) > e.developmentScore(them) {
		compensation += 10
	}

	if compensation < 0 {
		compensation = 0
	}
	if compensation > sacrificeCompensation {
		compensation = sacrificeCompensation
	}
	return compensation
}
