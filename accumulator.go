package blaze

import (
	"sort"
	"sync"
)

// ═══════════════════════════════════════════════════════════════════════════════
// SHARDED CONCURRENT ACCUMULATOR
// ═══════════════════════════════════════════════════════════════════════════════
// The parallel scoring path has many goroutines doing "acc[docID] += delta"
// for unrelated docIDs at once. A single mutex around one map would
// serialize all of them; this is the Go translation of the original
// ConcurrentMap<Key, Value>: a fixed number of shards, each owning its own
// mutex and its own map[int32]float64, selected by key mod B.
//
// Each critical section is one hashed lookup plus one addition, so
// contention drops to roughly 1/B. B is restricted to accumulating
// integer-keyed float64 values — exactly the "doc_id → relevance" shape the
// scorer needs.
// ═══════════════════════════════════════════════════════════════════════════════

const defaultAccumulatorShards = 8

// ShardedAccumulator is a striped, concurrency-safe map from int key to
// float64 value, tuned for many goroutines each accumulating into disjoint
// keys.
type ShardedAccumulator struct {
	shards []accumulatorShard
}

type accumulatorShard struct {
	mu     sync.Mutex
	values map[int32]float64
}

// NewShardedAccumulator creates an accumulator with the given number of
// shards. shardCount must be positive; DefaultAccumulatorShards is the
// recommended value for the scorer's workload.
func NewShardedAccumulator(shardCount int) *ShardedAccumulator {
	if shardCount < 1 {
		shardCount = defaultAccumulatorShards
	}
	shards := make([]accumulatorShard, shardCount)
	for i := range shards {
		shards[i].values = make(map[int32]float64)
	}
	return &ShardedAccumulator{shards: shards}
}

// DefaultAccumulatorShards returns the shard count used by the parallel
// scoring path (B = 8, per spec.md §4.8).
func DefaultAccumulatorShards() int {
	return defaultAccumulatorShards
}

func (a *ShardedAccumulator) shardFor(key int32) *accumulatorShard {
	idx := int(uint32(key)) % len(a.shards)
	return &a.shards[idx]
}

// Add adds delta to the value stored under key, creating the entry with a
// zero value if absent. Safe to call concurrently for different keys from
// different goroutines; concurrent calls for the same key are serialized by
// that key's shard.
func (a *ShardedAccumulator) Add(key int32, delta float64) {
	shard := a.shardFor(key)
	shard.mu.Lock()
	shard.values[key] += delta
	shard.mu.Unlock()
}

// Erase removes key from the accumulator, if present.
func (a *ShardedAccumulator) Erase(key int32) {
	shard := a.shardFor(key)
	shard.mu.Lock()
	delete(shard.values, key)
	shard.mu.Unlock()
}

// accumulated pairs a key with its accumulated value, used by BuildOrdered.
type accumulated struct {
	key   int32
	value float64
}

// BuildOrdered merges every shard into a single slice ordered ascending by
// key. Intended for end-of-query materialization, not a hot path: it
// acquires every shard's lock in turn.
func (a *ShardedAccumulator) BuildOrdered() []accumulated {
	total := 0
	for i := range a.shards {
		a.shards[i].mu.Lock()
		total += len(a.shards[i].values)
	}
	result := make([]accumulated, 0, total)
	for i := range a.shards {
		for k, v := range a.shards[i].values {
			result = append(result, accumulated{key: k, value: v})
		}
		a.shards[i].mu.Unlock()
	}
	sort.Slice(result, func(i, j int) bool { return result[i].key < result[j].key })
	return result
}
