// Package statetable interns lattice coordinates into stable integer
// state ids, via a dense id-indexed arena and a hash-bucketed coord
// index, matching the state-table behavior specified for the planner's
// coord<->id bookkeeping.
package statetable

import (
	"github.com/edaniels/golog"

	"github.com/sbpl-go/armlattice/discretize"
)

// HashEntry is one interned lattice state: its coord, the end-effector
// cell it maps to at intern time, the representative joint angles, and
// heuristic/obstacle-distance caches the owner may populate.
type HashEntry struct {
	ID                     int
	Coord                  discretize.Coord
	EECell                 [3]int32
	ContinuousState        []float64
	CachedHeuristic        int
	CachedObstacleDistance float64
}

// Table is an arena of HashEntry values indexed by id, with a
// hash-bucketed coord index for get-or-create lookups. Buckets hold ids,
// never pointers, so entries never hold cyclic references back into the
// table.
type Table struct {
	logger    golog.Logger
	size      int
	entries   []HashEntry
	buckets   [][]int
	goalID    int
	haveGoal  bool
}

// New builds an empty Table with the given bucket count, which must be a
// power of two (DefaultTableSize if unsure).
func New(logger golog.Logger, size int) *Table {
	return &Table{
		logger:  logger,
		size:    size,
		buckets: make([][]int, size),
	}
}

// Size returns the number of interned entries.
func (t *Table) Size() int { return len(t.entries) }

// Entry returns the entry for id. Callers must not retain the returned
// pointer across a Create call, which may reallocate the backing slice.
func (t *Table) Entry(id int) *HashEntry { return &t.entries[id] }

// Get looks up an entry by coord, via hash bucket + linear scan for exact
// coord equality. It returns (id, true) on a hit, or (0, false) otherwise.
func (t *Table) Get(coord discretize.Coord) (int, bool) {
	bucket := hashCoord(coord, t.size)
	for _, id := range t.buckets[bucket] {
		if t.entries[id].Coord.Equal(coord) {
			return id, true
		}
	}
	return 0, false
}

// Create allocates a new entry for coord/cell, assigns it the next
// sequential id, and pushes it into both the dense arena and its bucket.
func (t *Table) Create(coord discretize.Coord, cell [3]int32) int {
	id := len(t.entries)
	t.entries = append(t.entries, HashEntry{
		ID:     id,
		Coord:  coord.Clone(),
		EECell: cell,
	})
	bucket := hashCoord(coord, t.size)
	t.buckets[bucket] = append(t.buckets[bucket], id)
	return id
}

// GetOrCreate returns the existing entry id for coord if interned,
// otherwise creates one.
func (t *Table) GetOrCreate(coord discretize.Coord, cell [3]int32) int {
	if id, ok := t.Get(coord); ok {
		return id
	}
	return t.Create(coord, cell)
}

// ReserveGoal allocates the distinguished absorbing goal entry with a
// placeholder coord, and returns its id. GoalID and GoalEntry always
// resolve to this entry regardless of its current coord.
func (t *Table) ReserveGoal(placeholder discretize.Coord) int {
	id := t.Create(placeholder, [3]int32{})
	t.goalID = id
	t.haveGoal = true
	return id
}

// GoalEntry returns the goal entry, panicking if ReserveGoal was never
// called — this is a programmer error, not a runtime condition.
func (t *Table) GoalEntry() *HashEntry {
	if !t.haveGoal {
		panic("statetable: goal entry not reserved")
	}
	return &t.entries[t.goalID]
}

// GoalID returns the id of the distinguished goal entry.
func (t *Table) GoalID() int { return t.goalID }

// OverwriteGoal replaces the goal entry's coord, cell and representative
// state with a successor that satisfied the goal predicate. The goal
// entry's id never changes; only its contents are updated, so the
// absorbing state remains a single stable id across a whole search.
func (t *Table) OverwriteGoal(coord discretize.Coord, cell [3]int32, continuousState []float64) {
	e := &t.entries[t.goalID]
	e.Coord = coord.Clone()
	e.EECell = cell
	e.ContinuousState = append([]float64(nil), continuousState...)
}

// BucketHistogram returns, for diagnostics only, a map from occupied-
// bucket-length to the count of buckets with that length. It never gates
// planning behavior. Logged at Debug by callers that want visibility into
// hash-table skew.
func (t *Table) BucketHistogram() map[int]int {
	hist := make(map[int]int)
	for _, b := range t.buckets {
		if len(b) == 0 {
			continue
		}
		hist[len(b)]++
	}
	if t.logger != nil {
		t.logger.Debugw("state table bucket histogram", "buckets", hist, "entries", len(t.entries))
	}
	return hist
}
