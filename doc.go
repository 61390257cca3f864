/*
Package htable provides a string-keyed hash table that resolves collisions by
open addressing over a single slice.

Table is meant for single-goroutine use: it carries no locks, and callers that
share one must serialize access themselves. Keys cannot be deleted.

Basic usage:

	import "github.com/theflywheel/htable"

	// Create a table with room for about 16 keys, probing quadratically
	t := htable.New[int](16, htable.WithProbe(htable.Quadratic))

	// Insert data
	if err := t.Put("apples", 3); err != nil {
		log.Fatal(err)
	}

	// Retrieve data
	n, ok, err := t.Get("apples")
	if err != nil {
		log.Fatal(err)
	}
	if ok {
		fmt.Println("Value:", n)
	}

Features:

  - Generic values with non-empty string keys
  - Insert with overwrite, lookup, membership and key enumeration
  - Three probe strategies: Linear, Quadratic and DoubleHash
  - Prime table sizes, grown to the next prime at least twice as large
  - Load factor kept at or below 0.6 after every Put
  - Pluggable key hash: FNV-1a by default, xxHash via WithHasher(XXHash)

Implementation Details:

Every slot is either empty or holds one immutable key/value entry. A key's
home slot is its hash modulo the capacity. On a collision the next candidate
is the current slot plus a delta, modulo the capacity: 1 for Linear, the
square of the attempt number for Quadratic, and hash%8+1 for DoubleHash.
Searches stop at the first empty slot and never visit more slots than the
table holds.

Before a new key would push the load factor above 0.6 the table grows: every
entry is rehashed into a fresh slice and the table switches to it in one step.
The same growth runs when the quadratic sequence of a key cannot reach a free
slot.
*/
package htable
