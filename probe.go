package htable

import "fmt"

// Probe selects how the next candidate slot is chosen after a collision.
type Probe uint8

const (
	// Linear advances one slot at a time.
	Linear Probe = iota
	// Quadratic advances by the square of the probe attempt number.
	Quadratic
	// DoubleHash advances by a key-dependent step from a secondary hash.
	DoubleHash
)

func (p Probe) String() string {
	switch p {
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	case DoubleHash:
		return "double-hash"
	default:
		return fmt.Sprintf("Probe(%d)", uint8(p))
	}
}

// nextLocation returns the slot to examine after pos on probe attempt step.
// step 0 is the home slot, so the first move is made with step 1.
func (t *Table[V]) nextLocation(pos int, key string, step int) int {
	var delta int
	switch t.probe {
	case Quadratic:
		delta = step * step % len(t.slots)
	case DoubleHash:
		delta = t.doubleHash(key)
	default:
		delta = 1
	}
	return (pos + delta) % len(t.slots)
}
