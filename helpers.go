package relstore

// UpperBound returns the first key that does not share the given
// prefix, for use as an exclusive iteration upper bound.
//
// It increments the last byte of the prefix that is not 0xFF and
// truncates everything after it. If all bytes are 0xFF (or the prefix
// is empty), it returns nil: no upper bound exists and iteration runs
// to the end of the keyspace.
//
// For example, if the input is [0x01, 0x02, 0xFF], the output will be
// [0x01, 0x03].
func UpperBound(prefix []byte) (limit []byte) {
	for i := len(prefix) - 1; i >= 0; i-- {
		c := prefix[i]
		if c == 0xFF {
			continue
		}
		limit = make([]byte, i+1)
		copy(limit, prefix)
		limit[i] = c + 1
		break
	}
	return limit
}
