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

package transpositiontable

import (
	"os"
	"path"
	"runtime"
	"testing"
	"unsafe"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/DickermanJosh/opera-engine-sub000/internal/config"
	"github.com/DickermanJosh/opera-engine-sub000/internal/logging"
	"github.com/DickermanJosh/opera-engine-sub000/internal/position"
	. "github.com/DickermanJosh/opera-engine-sub000/internal/types"
)

var logTest *logging2.Logger

// make tests run in the projects root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestEntrySize(t *testing.T) {
	var e TtEntry
	assert.EqualValues(t, 16, unsafe.Sizeof(e))
	logTest.Debugf("Size of Entry %d bytes", unsafe.Sizeof(e))
}

func TestClusterSize(t *testing.T) {
	var c TtCluster
	assert.EqualValues(t, ClusterSize*16, unsafe.Sizeof(c))
}

func TestNew(t *testing.T) {
	tt := NewTtTable(2)
	assert.Equal(t, uint64(2*MB/clusterSize), tt.ClusterCount())
	assert.Equal(t, int(tt.ClusterCount()), cap(tt.data))

	tt = NewTtTable(64)
	assert.Equal(t, uint64(64*MB/clusterSize), tt.ClusterCount())

	tt = NewTtTable(MaxSizeInMB + 1)
	assert.Equal(t, uint64(MaxSizeInMB)*MB/clusterSize, tt.ClusterCount())
}

func TestGetAndProbe(t *testing.T) {
	tt := NewTtTable(64)

	pos := position.NewPosition()
	move := CreateMove(SqE2, SqE4, Normal, PtNone)
	key := pos.ZobristKey()

	tt.Put(key, move, 5, Value(123), EXACT, Value(100))

	// unaltered get
	e := tt.GetEntry(key)
	assert.NotNil(t, e)
	assert.Equal(t, key, e.Key())
	assert.Equal(t, move, e.Move())
	assert.EqualValues(t, 5, e.Depth())
	assert.Equal(t, EXACT, e.Vtype())

	// probe decreases age by 1 (floors at 0)
	e = tt.Probe(key)
	assert.NotNil(t, e)
	assert.EqualValues(t, 0, e.Age())
	e = tt.Probe(key)
	assert.EqualValues(t, 0, e.Age())

	// not in tt
	pos.DoMove(move)
	e = tt.Probe(pos.ZobristKey())
	assert.Nil(t, e)
}

func TestClear(t *testing.T) {
	tt := NewTtTable(1)

	pos := position.NewPosition()
	move := CreateMove(SqE2, SqE4, Normal, PtNone)
	key := pos.ZobristKey()

	tt.Put(key, move, 5, Value(1), EXACT, Value(1))
	assert.EqualValues(t, 1, tt.Len())

	tt.Clear()

	e := tt.Probe(key)
	assert.Nil(t, e)
	assert.EqualValues(t, 0, tt.Len())
}

func TestAgeEntries(t *testing.T) {
	tt := NewTtTable(4)
	move := CreateMove(SqE2, SqE4, Normal, PtNone)

	for i := Key(1); i < 1_000; i++ {
		tt.Put(i, move, 2, Value(1), EXACT, Value(1))
	}
	for i := Key(1); i < 1_000; i++ {
		e := tt.GetEntry(i)
		if e != nil {
			assert.EqualValues(t, 0, e.Age())
		}
	}

	tt.AgeEntries()

	found := false
	for i := Key(1); i < 1_000; i++ {
		e := tt.GetEntry(i)
		if e != nil {
			found = true
			assert.EqualValues(t, 1, e.Age())
		}
	}
	assert.True(t, found)
}

func TestPutAndUpdate(t *testing.T) {
	tt := NewTtTable(4)
	move := CreateMove(SqE2, SqE4, Normal, PtNone)

	tt.Put(111, move, 4, Value(111), ALPHA, Value(10))
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfPuts)

	e := tt.Probe(111)
	assert.EqualValues(t, 111, e.Key())
	assert.Equal(t, move, e.Move())
	assert.EqualValues(t, 111, e.Value())
	assert.EqualValues(t, 4, e.Depth())
	assert.Equal(t, ALPHA, e.Vtype())

	// update same key
	tt.Put(111, move, 5, Value(112), BETA, Value(20))
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfUpdates)
	e = tt.Probe(111)
	assert.EqualValues(t, 112, e.Value())
	assert.Equal(t, BETA, e.Vtype())
}

func TestPutFillsClusterThenEvicts(t *testing.T) {
	tt := NewTtTable(1) // small table, few clusters
	move := CreateMove(SqE2, SqE4, Normal, PtNone)

	base := tt.clusterIndex(1)
	// find ClusterSize+1 keys mapping to the same cluster as key 1
	keys := []Key{1}
	for k := Key(2); len(keys) < ClusterSize+1; k++ {
		if tt.clusterIndex(k) == base {
			keys = append(keys, k)
		}
	}

	for i, k := range keys[:ClusterSize] {
		tt.Put(k, move, int8(i+1), Value(100+i), EXACT, Value(0))
	}
	assert.EqualValues(t, ClusterSize, tt.Len())

	// one more key forces an eviction rather than growing the cluster
	tt.Put(keys[ClusterSize], move, 1, Value(200), EXACT, Value(0))
	assert.EqualValues(t, ClusterSize, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfCollisions)
	assert.EqualValues(t, 1, tt.Stats.numberOfOverwrites)
}

func TestHashfull(t *testing.T) {
	tt := NewTtTable(1)
	assert.EqualValues(t, 0, tt.Hashfull())
	move := CreateMove(SqE2, SqE4, Normal, PtNone)
	for i := Key(1); i <= 1_000; i++ {
		tt.Put(i, move, 1, Value(1), EXACT, Value(1))
	}
	assert.True(t, tt.Hashfull() > 0)
}
