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

// Perft is the standalone move generation validator. With a fen and a depth
// it prints leaf counts for depths 1..depth; with no arguments it runs the
// fixed regression suite and, after all cases have run, exits non-zero if
// any of them mismatched.
package main

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/DickermanJosh/opera-engine-sub000/internal/movegen"
	"github.com/DickermanJosh/opera-engine-sub000/internal/position"
)

var out = message.NewPrinter(language.German)

type perftCase struct {
	name     string
	fen      string
	depth    int
	expected uint64
}

// fixedSuite mirrors the canonical Chess Programming Wiki perft results
// used throughout the engine's own test suite.
var fixedSuite = []perftCase{
	{"Startpos", position.StartFen, 5, 4_865_609},
	{"Startpos", position.StartFen, 6, 119_060_324},
	{"Kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 5, 193_690_690},
	{"EdgeCase ep-pin", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 5, 674_624},
	{"EdgeCase ep-pin (black)", "3k4/3p4/8/K1P4r/8/8/8/8 b - - 0 1", 5, 185_429},
}

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		runFixedSuite()
		return
	}

	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: perft <fen> <depth>")
		os.Exit(2)
	}

	fen := args[0]
	depth, err := strconv.Atoi(args[1])
	if err != nil || depth < 1 {
		fmt.Fprintf(os.Stderr, "invalid depth %q: %v\n", args[1], err)
		os.Exit(2)
	}

	if _, posErr := position.NewPositionFen(fen); posErr != nil {
		fmt.Fprintf(os.Stderr, "invalid fen %q: %v\n", fen, posErr)
		os.Exit(2)
	}

	var p movegen.Perft
	for d := 1; d <= depth; d++ {
		p.StartPerft(fen, d, true)
		out.Printf("depth %2d : %d\n", d, p.Nodes)
	}
}

func runFixedSuite() {
	failed := false
	var p movegen.Perft
	for _, c := range fixedSuite {
		p.StartPerft(c.fen, c.depth, true)
		status := "ok"
		if p.Nodes != c.expected {
			status = "MISMATCH"
			failed = true
		}
		out.Printf("%-25s depth %d : got %d, want %d [%s]\n", c.name, c.depth, p.Nodes, c.expected, status)
	}
	if failed {
		os.Exit(1)
	}
}
