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

// Package transpositiontable implements a clustered, age-aware cache from
// Zobrist key to best move / score / depth / bound for the search.
// The TtTable class is not thread safe and needs to be synchronized
// externally if used from multiple threads. Is especially relevant
// for Resize and Clear which should not be called in parallel
// while searching.
package transpositiontable

import (
	"math"
	"sync"
	"time"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/DickermanJosh/opera-engine-sub000/internal/logging"
	. "github.com/DickermanJosh/opera-engine-sub000/internal/types"
	"github.com/DickermanJosh/opera-engine-sub000/internal/util"
)

var out = message.NewPrinter(language.German)

const (
	// MaxSizeInMB maximal memory usage of tt
	MaxSizeInMB = 65_536

	clusterSize = uint64(unsafe.Sizeof(TtCluster{}))
)

// TtTable is the actual transposition table object holding data and state.
// Create with NewTtTable(). Indexing is by cluster: hash(key) selects a
// TtCluster of ClusterSize entries, each tagged with the key so a probe
// can disambiguate entries that hash to the same cluster.
type TtTable struct {
	log             *logging.Logger
	data            []TtCluster
	sizeInByte      uint64
	clusterMask     uint64
	clusterCount    uint64
	numberOfEntries uint64
	Stats           TtStats
}

// TtStats holds statistical data on tt usage
type TtStats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a new TtTable with the given number of bytes
// as a maximum of memory usage. actual size will be determined
// by the number of elements fitting into this size which need
// to be a power of 2 for efficient hashing/addressing via bit
// masks.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := TtTable{
		log:             myLogging.GetLog(),
		data:            nil,
		sizeInByte:      0,
		clusterMask:     0,
		clusterCount:    0,
		numberOfEntries: 0,
	}
	tt.Resize(sizeInMByte)
	return &tt
}

// Resize resizes the tt table. All entries will be cleared.
// The TtTable class is not thread safe and needs to be synchronized
// externally if used from multiple threads. Is especially relevant
// for Resize and Clear which should not be called in parallel
// while searching.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	// calculate the maximum power of 2 of clusters fitting into the given size in MB
	tt.sizeInByte = uint64(sizeInMByte) * MB
	if tt.sizeInByte < clusterSize {
		tt.clusterCount = 0
	} else {
		tt.clusterCount = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/clusterSize))))
	}
	tt.clusterMask = tt.clusterCount - 1 // --> 0x0001111....111

	// calculate the real memory usage
	tt.sizeInByte = tt.clusterCount * clusterSize

	// Create new slice/array - garbage collection takes care of cleanup
	tt.data = make([]TtCluster, tt.clusterCount)
	tt.numberOfEntries = 0

	tt.log.Info(out.Sprintf("TT Size %d MByte, %d clusters of %d entries (%d Bytes/cluster) (Requested were %d MBytes)",
		tt.sizeInByte/MB, tt.clusterCount, ClusterSize, clusterSize, sizeInMByte))
	tt.log.Debug(util.MemStat())
}

// clusterIndex folds the key's upper and lower halves to select a cluster.
// Using the fold rather than the raw low bits spreads keys whose low bits
// happen to correlate (e.g. many positions sharing a near-identical pawn
// structure) more evenly across the table.
func (tt *TtTable) clusterIndex(key Key) uint64 {
	k := uint64(key)
	return (k ^ (k >> 32)) & tt.clusterMask
}

// GetEntry returns a pointer to the matching entry in key's cluster, or nil
// if no entry in the cluster carries this key. Does not change statistics.
func (tt *TtTable) GetEntry(key Key) *TtEntry {
	if tt.clusterCount == 0 {
		return nil
	}
	cluster := &tt.data[tt.clusterIndex(key)]
	for i := range cluster.Entries {
		if cluster.Entries[i].key == key {
			return &cluster.Entries[i]
		}
	}
	return nil
}

// Probe scans the four entries of key's cluster for a match. Returns nil
// on a cluster miss. Decreases the found entry's Age by 1 (a probed entry
// is "fresher" for replacement purposes than the age-only default).
func (tt *TtTable) Probe(key Key) *TtEntry {
	tt.Stats.numberOfProbes++
	if tt.clusterCount == 0 {
		tt.Stats.numberOfMisses++
		return nil
	}
	cluster := &tt.data[tt.clusterIndex(key)]
	for i := range cluster.Entries {
		e := &cluster.Entries[i]
		if e.key == key {
			e.decreaseAge()
			tt.Stats.numberOfHits++
			return e
		}
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Put stores an entry for key, replacing an existing same-key entry or
// picking a victim slot in the cluster per the replacement policy: prefer
// an empty slot; otherwise evict the slot maximizing
// 4*ageDifference + max(0, newDepth-entryDepth) (oldest-shallowest first).
func (tt *TtTable) Put(key Key, move Move, depth int8, value Value, valueType ValueType, eval Value) {
	if tt.clusterCount == 0 {
		return
	}

	cluster := &tt.data[tt.clusterIndex(key)]
	tt.Stats.numberOfPuts++

	// same-key update: always refresh, preserving fields the caller
	// leaves as "unknown" sentinels (MoveNone / ValueNA).
	for i := range cluster.Entries {
		e := &cluster.Entries[i]
		if e.key == key {
			tt.Stats.numberOfUpdates++
			if move != MoveNone {
				e.move = uint16(move)
			}
			if eval != ValueNA {
				e.eval = int16(eval)
			}
			if value != ValueNA {
				e.value = int16(value)
				e.vmeta = uint16(depth)<<depthShift + uint16(valueType)<<vtypeShift
			}
			return
		}
	}

	// empty slot available
	for i := range cluster.Entries {
		e := &cluster.Entries[i]
		if e.key == 0 {
			tt.numberOfEntries++
			tt.writeEntry(e, key, move, depth, value, valueType, eval)
			return
		}
	}

	// cluster full of other positions: pick the best eviction candidate.
	// A freshly written entry starts at age 0 and is bumped once per search
	// round by AgeEntries, so an entry's own age already is its age
	// difference relative to a brand new write.
	tt.Stats.numberOfCollisions++
	victim := 0
	victimScore := -1
	for i := range cluster.Entries {
		e := &cluster.Entries[i]
		depthGain := int(depth) - int(e.Depth())
		if depthGain < 0 {
			depthGain = 0
		}
		score := 4*int(e.Age()) + depthGain
		if score > victimScore {
			victimScore = score
			victim = i
		}
	}
	tt.Stats.numberOfOverwrites++
	tt.writeEntry(&cluster.Entries[victim], key, move, depth, value, valueType, eval)
}

func (tt *TtTable) writeEntry(e *TtEntry, key Key, move Move, depth int8, value Value, valueType ValueType, eval Value) {
	e.key = key
	e.move = uint16(move)
	e.eval = int16(eval)
	e.value = int16(value)
	e.vmeta = uint16(depth)<<depthShift + uint16(valueType)<<vtypeShift
}

// Clear clears all entries of the tt.
// The TtTable class is not thread safe and needs to be synchronized
// externally if used from multiple threads. Is especially relevant
// for Resize and Clear which should not be called in parallel
// while searching.
func (tt *TtTable) Clear() {
	tt.data = make([]TtCluster, tt.clusterCount)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}
}

// Hashfull returns how full the transposition table is in permill as per UCI.
func (tt *TtTable) Hashfull() int {
	if tt.clusterCount == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / (tt.clusterCount * ClusterSize))
}

// String returns a string representation of this TtTable instance.
func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB clusters %d entries/cluster %d used %d (%d%%) puts %d "+
		"updates %d collisions %d overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/MB, tt.clusterCount, ClusterSize, tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites, tt.Stats.numberOfProbes,
		tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

// Len returns the number of non-empty entries in the tt.
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

// ClusterCount, EntriesPerCluster and BytesPerCluster report the table's
// memory layout, mirroring the introspection the original engine exposed
// for diagnostics.
func (tt *TtTable) ClusterCount() uint64    { return tt.clusterCount }
func (tt *TtTable) EntriesPerCluster() int  { return ClusterSize }
func (tt *TtTable) BytesPerCluster() uint64 { return clusterSize }

// AgeEntries ages each occupied entry in the tt, fanning the sweep out
// across goroutines over cluster slices. Called once per new search so
// that entries surviving from earlier searches become preferred eviction
// candidates in Put's replacement scoring.
func (tt *TtTable) AgeEntries() {
	startTime := time.Now()
	if tt.numberOfEntries > 0 {
		numberOfGoroutines := uint64(32) // arbitrary - uses up to 32 threads
		var wg sync.WaitGroup
		wg.Add(int(numberOfGoroutines))
		slice := tt.clusterCount / numberOfGoroutines
		for i := uint64(0); i < numberOfGoroutines; i++ {
			go func(i uint64) {
				defer wg.Done()
				start := i * slice
				end := start + slice
				if i == numberOfGoroutines-1 {
					end = tt.clusterCount
				}
				for n := start; n < end; n++ {
					cluster := &tt.data[n]
					for j := range cluster.Entries {
						if cluster.Entries[j].key != 0 {
							cluster.Entries[j].increaseAge()
						}
					}
				}
			}(i)
		}
		wg.Wait()
	}
	elapsed := time.Since(startTime)
	tt.log.Debug(out.Sprintf("Aged %d entries of %d clusters in %d ms\n", tt.numberOfEntries, tt.clusterCount, elapsed.Milliseconds()))
}

