package relstore

import "github.com/aalhour/rockyardkv"

// CompareFunc is a foreign total-order comparison over byte sequences.
// It returns a value < 0 if a sorts before b, 0 if they are equal and
// > 0 if a sorts after b.
//
// The engine invokes the function concurrently from its background
// threads (compaction, flush, concurrent reads) for the whole lifetime
// of the store, up to and including close. Implementations must be
// reentrant and must not retain the argument slices.
type CompareFunc func(a, b []byte) int

// ComparatorDescriptor describes a foreign key ordering for one column
// family.
type ComparatorDescriptor struct {
	// Name identifies the ordering on disk. It must be non-empty and
	// stable: reopening an existing database under a different name is
	// rejected by the engine.
	Name string

	// Compare is the ordering callback.
	Compare CompareFunc

	// DifferentBytesCanBeEqual declares that two distinct byte sequences
	// may compare equal. This relaxes uniqueness assumptions the engine
	// makes for prefix-based optimizations, and disables index key
	// shortening, which would otherwise synthesize keys that only
	// bytewise-equal orderings can place correctly.
	DifferentBytesCanBeEqual bool
}

// bridgedComparator adapts a ComparatorDescriptor to the engine's
// comparator interface. It carries no mutable state, so it is safe for
// concurrent use as long as the callback itself is.
type bridgedComparator struct {
	name    string
	compare CompareFunc
	relaxed bool
}

// newComparator builds the engine comparator for a descriptor.
// Construction never fails; a nil descriptor yields a nil comparator,
// which the engine replaces with its default bytewise ordering.
func newComparator(d *ComparatorDescriptor) rockyardkv.Comparator {
	if d == nil {
		return nil
	}
	return &bridgedComparator{
		name:    d.Name,
		compare: d.Compare,
		relaxed: d.DifferentBytesCanBeEqual,
	}
}

func (c *bridgedComparator) Compare(a, b []byte) int {
	return c.compare(a, b)
}

func (c *bridgedComparator) Name() string {
	return c.name
}

// FindShortestSeparator finds a key k with a <= k < b under the foreign
// ordering. Shortened keys are synthesized bytewise, which is only
// correct when byte equality coincides with key equality, so a relaxed
// comparator always returns a unchanged.
func (c *bridgedComparator) FindShortestSeparator(a, b []byte) []byte {
	if c.relaxed {
		return a
	}

	minLen := min(len(a), len(b))
	diffIndex := 0
	for diffIndex < minLen && a[diffIndex] == b[diffIndex] {
		diffIndex++
	}
	if diffIndex >= minLen {
		// One is a prefix of the other
		return a
	}

	diffByte := a[diffIndex]
	if diffByte < 0xFF && diffByte+1 < b[diffIndex] {
		shortened := make([]byte, diffIndex+1)
		copy(shortened, a[:diffIndex+1])
		shortened[diffIndex]++
		// Keep the shortened key only if the foreign ordering agrees
		// that it still separates a from b.
		if c.compare(a, shortened) <= 0 && c.compare(shortened, b) < 0 {
			return shortened
		}
	}
	return a
}

// FindShortSuccessor finds a short key >= a, subject to the same
// bytewise-synthesis caveat as FindShortestSeparator.
func (c *bridgedComparator) FindShortSuccessor(a []byte) []byte {
	if c.relaxed {
		return a
	}

	for i := range a {
		if a[i] != 0xFF {
			succ := make([]byte, i+1)
			copy(succ, a[:i+1])
			succ[i]++
			if c.compare(a, succ) <= 0 {
				return succ
			}
			return a
		}
	}
	return a
}
