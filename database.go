package relstore

import "errors"

var (
	// ErrClosed is returned when an operation is attempted on a closed
	// store.
	ErrClosed = errors.New("relstore: store is closed")

	// ErrEmptyKey is returned when an empty key is passed to a read or
	// write operation.
	ErrEmptyKey = errors.New("relstore: empty key")

	// ErrNotOpen is returned when an operation is attempted on a store
	// whose open failed.
	ErrNotOpen = errors.New("relstore: store is not open")
)

// Family addresses one of the two column families of a store by
// position. The positions are a compatibility contract: every database
// opened by this package has exactly the families "default" and
// "relation", in that order.
type Family int

const (
	// Primary is the default column family.
	Primary Family = iota

	// Relation is the secondary "relation" column family.
	Relation
)

// String returns the on-disk column family name.
func (f Family) String() string {
	if f == Relation {
		return RelationFamilyName
	}
	return DefaultFamilyName
}

// Status is the caller-visible outcome of an open call: an ok flag plus
// the engine's message text, preserved verbatim. Interpreting error
// categories (lock contention, corruption, ...) is left to the caller.
type Status struct {
	OK      bool
	Message string
}

func statusOK() Status {
	return Status{OK: true}
}

func statusFromErr(err error) Status {
	if err == nil {
		return statusOK()
	}
	return Status{Message: err.Error()}
}

// Err converts a Status back into an error, nil when the status is ok.
func (s Status) Err() error {
	if s.OK {
		return nil
	}
	return errors.New(s.Message)
}
