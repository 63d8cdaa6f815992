// Package store is the versioned column-family store.
//
// Every row key owns a short history of immutable row versions, newest first. A put never edits
// an existing version: it prepends a full replacement snapshot and, once the history holds
// MaxVersions entries, the oldest version falls off the end.
//
// Rows are spread over a fixed table of shards by an FNV-1a hash of the row key. Each shard has
// its own lock, so writes to the same row key are serialized while writes to rows on other shards
// proceed independently. Scans visit one shard at a time: every returned row is a complete
// version, but a scan running next to writers is not a snapshot of the whole table.
package store

import (
	"errors"
	"fmt"
	"github.com/VictoriaMetrics/metrics"
	"github.com/colstore/colstore/internal/cdc_emitter"
	"hash/fnv"
	"sync"
	"time"
)

//go:generate mockgen -destination=emitter_mock.go -package=store -source=store.go

const (
	// MaxVersions is the default number of versions retained per row key.
	MaxVersions = 5

	defaultShardCount = 16
	maxShardCount     = 256
	maxVersionLimit   = 100
)

type emitter interface {
	Emit(params *cdc_emitter.CDCParams)
}

// Store holds every row's version history in memory.
type Store struct {
	shards      []*shard
	shardCount  int
	maxVersions int

	clock   *clock
	cdc     emitter
	set     *metrics.Set
	metrics *storeMetrics
}

type Config struct {
	// ShardCount is the number of lock shards; 0 selects the default.
	ShardCount int
	// MaxVersions is the number of versions kept per row key; 0 selects MaxVersions.
	MaxVersions int
	// CDC receives an event for every put and every delete of an existing row. Optional.
	CDC emitter
	// Now overrides the wall clock used for write timestamps. Optional.
	Now func() time.Time
	// Metrics is the set the store registers its metrics in. A private set is created when nil.
	Metrics *metrics.Set
}

func (c *Config) validate() error {
	var errGrp []error
	if c.ShardCount < 0 || c.ShardCount > maxShardCount {
		errGrp = append(errGrp, fmt.Errorf("shard count must be between 1 and %d", maxShardCount))
	}
	if c.MaxVersions < 0 || c.MaxVersions > maxVersionLimit {
		errGrp = append(errGrp, fmt.Errorf("max versions must be between 1 and %d", maxVersionLimit))
	}
	return errors.Join(errGrp...)
}

// New creates an empty store. A process is expected to create one store and hand it to every
// consumer.
func New(cfg *Config) (*Store, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	shardCount := cfg.ShardCount
	if shardCount == 0 {
		shardCount = defaultShardCount
	}
	maxVersions := cfg.MaxVersions
	if maxVersions == 0 {
		maxVersions = MaxVersions
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	set := cfg.Metrics
	if set == nil {
		set = metrics.NewSet()
	}

	s := &Store{
		shards:      make([]*shard, shardCount),
		shardCount:  shardCount,
		maxVersions: maxVersions,
		clock:       &clock{now: now},
		cdc:         cfg.CDC,
		set:         set,
	}
	for i := range s.shards {
		s.shards[i] = newShard()
	}
	s.metrics = newStoreMetrics(set, func() float64 {
		return float64(s.Len())
	})

	return s, nil
}

// MaxVersions returns the per-row retention limit.
func (s *Store) MaxVersions() int {
	return s.maxVersions
}

// Metrics returns the set holding the store's metrics.
func (s *Store) Metrics() *metrics.Set {
	return s.set
}

// Len returns the number of row keys currently stored.
func (s *Store) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mutex.RLock()
		n += len(sh.rows)
		sh.mutex.RUnlock()
	}
	return n
}

// shard owns the histories of every row key that hashes to it.
type shard struct {
	mutex sync.RWMutex
	rows  map[string]*history
}

func newShard() *shard {
	return &shard{
		rows: make(map[string]*history),
	}
}

// shardFor returns the shard a row key belongs to.
func (s *Store) shardFor(rowKey string) *shard {
	return s.shards[s.getShardIndex(rowKey)]
}

// getShardIndex hashes the row key with FNV-1a and maps it onto the shard table.
func (s *Store) getShardIndex(rowKey string) int {
	if s.shardCount <= 1 {
		return 0
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(rowKey))
	return int(h.Sum32() % uint32(s.shardCount))
}
