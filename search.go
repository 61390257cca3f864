package htable

// findExisting walks the probe sequence of key and returns the slot holding
// it. The walk stops at the first empty slot, or after visiting as many slots
// as the table has, since a table that is never full always has a gap.
func (t *Table[V]) findExisting(key string) (idx int, found bool) {
	pos := t.hash(key)
	for step := 0; step < len(t.slots); step++ {
		e := t.slots[pos]
		if e == nil {
			return pos, false
		}
		if e.key == key {
			return pos, true
		}
		pos = t.nextLocation(pos, key, step+1)
	}
	return -1, false
}

// findInsertionPoint walks the probe sequence of key and returns the first
// slot that is empty or already holds key, along with the number of slots
// visited. ok is false when no such slot is reachable within capacity probes,
// which only the quadratic sequence can produce on a table that is not full.
func (t *Table[V]) findInsertionPoint(key string) (idx, probes int, ok bool) {
	pos := t.hash(key)
	for step := 0; step < len(t.slots); step++ {
		e := t.slots[pos]
		if e == nil || e.key == key {
			return pos, step + 1, true
		}
		pos = t.nextLocation(pos, key, step+1)
	}
	return -1, len(t.slots), false
}
