package htable

import (
	"fmt"
	"iter"

	"go.uber.org/zap"
)

const (
	// maxLoadFactor is the highest items/capacity ratio a Put may leave behind.
	maxLoadFactor = 0.6

	// maxPutRetries bounds how many times a single Put may grow the table.
	maxPutRetries = 3
)

// entry is an immutable key/value pair. Overwriting a key replaces its entry.
type entry[V any] struct {
	key   string
	value V
}

// Table is a string-keyed hash table using open addressing over a single
// slice whose length is always prime. Entries cannot be removed.
//
// A Table is not safe for concurrent use; callers sharing one across
// goroutines must guard every call with a lock.
type Table[V any] struct {
	slots  []*entry[V]
	items  int
	probe  Probe
	hasher Hasher
	logger *zap.Logger

	resizes  int
	probes   int
	maxProbe int
}

// Stats describes the occupancy and probing behaviour of a Table.
type Stats struct {
	Capacity   int
	Items      int
	LoadFactor float64
	// Resizes counts how many times the table has grown.
	Resizes int
	// Probes is the total number of slots examined by Put.
	Probes int
	// MaxProbe is the longest probe run seen by a single Put.
	MaxProbe int
}

// New creates a table whose capacity is the smallest prime >= initialCapacity.
func New[V any](initialCapacity int, opts ...Option) *Table[V] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newTable[V](nextPrime(initialCapacity), cfg)
}

func newTable[V any](capacity int, cfg config) *Table[V] {
	return &Table[V]{
		slots:  make([]*entry[V], capacity),
		probe:  cfg.probe,
		hasher: cfg.hasher,
		logger: cfg.logger,
	}
}

// Put stores value under key, replacing any previous value. The table grows
// before inserting a new key whenever that key would push the load factor
// above 0.6.
func (t *Table[V]) Put(key string, value V) error {
	if key == "" {
		return fmt.Errorf("put: key cannot be empty: %w", ErrInvalidArgument)
	}
	return t.putWithRetry(&entry[V]{key: key, value: value}, 0)
}

// putWithRetry places e, growing the table and starting over when the load
// limit would be exceeded or no usable slot is reachable.
func (t *Table[V]) putWithRetry(e *entry[V], retryCount int) error {
	if retryCount > maxPutRetries {
		t.logger.Warn("giving up on put",
			zap.String("key", e.key),
			zap.Int("capacity", len(t.slots)),
			zap.Int("retries", retryCount))
		return fmt.Errorf("exceeded maximum retry count (%d) during put: %w", retryCount, ErrTableFull)
	}

	idx, probes, ok := t.findInsertionPoint(e.key)
	if !ok {
		if err := t.resize(); err != nil {
			return err
		}
		return t.putWithRetry(e, retryCount+1)
	}

	if t.slots[idx] == nil {
		if t.overloaded(t.items + 1) {
			if err := t.resize(); err != nil {
				return err
			}
			return t.putWithRetry(e, retryCount+1)
		}
		t.items++
	}

	t.probes += probes
	if probes > t.maxProbe {
		t.maxProbe = probes
	}
	t.slots[idx] = e
	return nil
}

// overloaded reports whether holding items entries would exceed maxLoadFactor.
func (t *Table[V]) overloaded(items int) bool {
	return float64(items)/float64(len(t.slots)) > maxLoadFactor
}

// Get returns the value stored under key. ok is false if key is absent.
func (t *Table[V]) Get(key string) (value V, ok bool, err error) {
	if key == "" {
		return value, false, fmt.Errorf("get: key cannot be empty: %w", ErrInvalidArgument)
	}
	idx, found := t.findExisting(key)
	if !found {
		return value, false, nil
	}
	return t.slots[idx].value, true, nil
}

// HasKey reports whether key is present.
func (t *Table[V]) HasKey(key string) (bool, error) {
	if key == "" {
		return false, fmt.Errorf("has key: key cannot be empty: %w", ErrInvalidArgument)
	}
	_, found := t.findExisting(key)
	return found, nil
}

// Keys returns every stored key in slot order.
func (t *Table[V]) Keys() []string {
	keys := make([]string, 0, t.items)
	for _, e := range t.slots {
		if e != nil {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// All returns an iterator over the stored pairs in slot order. The table must
// not be modified while iterating.
func (t *Table[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, e := range t.slots {
			if e != nil && !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Len returns the number of stored keys.
func (t *Table[V]) Len() int {
	return t.items
}

// LoadFactor returns Len()/Capacity().
func (t *Table[V]) LoadFactor() float64 {
	return float64(t.items) / float64(len(t.slots))
}

// Capacity returns the number of slots.
func (t *Table[V]) Capacity() int {
	return len(t.slots)
}

// Probe returns the collision strategy chosen at construction.
func (t *Table[V]) Probe() Probe {
	return t.probe
}

func (t *Table[V]) Stats() Stats {
	return Stats{
		Capacity:   len(t.slots),
		Items:      t.items,
		LoadFactor: t.LoadFactor(),
		Resizes:    t.resizes,
		Probes:     t.probes,
		MaxProbe:   t.maxProbe,
	}
}

// resize rehashes every entry into a fresh table of at least twice the
// capacity and then adopts its slots. The live table is left untouched if
// rehashing fails.
func (t *Table[V]) resize() error {
	oldCapacity := len(t.slots)
	fresh := newTable[V](nextPrime(oldCapacity*2), config{
		probe:  t.probe,
		hasher: t.hasher,
		logger: t.logger,
	})

	for _, e := range t.slots {
		if e == nil {
			continue
		}
		if err := fresh.putWithRetry(e, 0); err != nil {
			return fmt.Errorf("resize from %d slots: %w", oldCapacity, err)
		}
	}

	t.slots, t.items = fresh.slots, fresh.items
	t.resizes += 1 + fresh.resizes

	t.logger.Debug("resized hash table",
		zap.Int("old_capacity", oldCapacity),
		zap.Int("new_capacity", len(t.slots)),
		zap.Int("items", t.items),
		zap.Stringer("probe", t.probe))
	return nil
}
