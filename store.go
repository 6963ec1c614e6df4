package relstore

import (
	"os"
	"sync"

	"github.com/aalhour/rockyardkv"
)

// Store is a handle to an open two-family transactional store. It owns
// the engine instance, the column family handles, the path and any
// bridged comparators for its whole lifetime.
//
// A Store is safe for concurrent use. Close is single-call: it must run
// with no other goroutine still using the handle, and the handle must
// not be used afterwards. There is no re-open.
type Store struct {
	path string // database directory, immutable after Open
	log  Logger

	db       *rockyardkv.TransactionDB
	families [2]rockyardkv.ColumnFamilyHandle

	// Exclusive advisory lock on the database directory, held from a
	// successful open until Close.
	lock *pathLock

	// Bridged comparators stay referenced until the engine is fully
	// closed: background compaction may invoke them at any point up to
	// and including close.
	primaryCmp   rockyardkv.Comparator
	secondaryCmp rockyardkv.Comparator

	destroyOnExit bool

	quitLock sync.RWMutex // protects closed and the teardown transition
	closed   bool
}

// Open resolves cfg, opens the transactional engine at cfg.DBPath and
// binds the fixed ["default", "relation"] family pair.
//
// Open reports failure through the returned Status rather than an
// error: the Store is constructed either way so the caller can always
// Close it, but after a failed open it holds no usable engine instance
// and must be discarded.
//
// Open takes an exclusive advisory lock on the database directory
// before touching the engine; a second open of the same path, from
// this process or any other, fails immediately with a locked Status.
func Open(cfg Config) (*Store, Status) {
	res := Resolve(cfg)

	logger := cfg.Logger
	if logger == nil {
		logger = stdLogger{}
	}

	s := &Store{
		path:          cfg.DBPath,
		log:           logger,
		destroyOnExit: cfg.DestroyOnExit,
		primaryCmp:    res.Primary.Comparator,
		secondaryCmp:  res.Secondary.Comparator,
	}

	lock, err := acquirePathLock(cfg.DBPath, cfg.CreateIfMissing)
	if err != nil {
		return s, statusFromErr(err)
	}

	db, err := rockyardkv.OpenTransactionDB(cfg.DBPath, engineOptions(res), rockyardkv.DefaultTransactionDBOptions())
	if err != nil {
		_ = lock.release()
		return s, statusFromErr(err)
	}

	handles, err := bindFamilies(db.GetDB(), res)
	if err != nil {
		_ = db.Close()
		_ = lock.release()
		return s, statusFromErr(err)
	}

	s.db = db
	s.families = handles
	s.lock = lock

	return s, statusOK()
}

// Path returns the database directory.
func (s *Store) Path() string {
	return s.path
}

// FamilyNames returns the column family names in handle order.
func (s *Store) FamilyNames() []string {
	names := make([]string, len(s.families))
	for i, h := range s.families {
		names[i] = h.Name()
	}
	return names
}

// Engine exposes the underlying transactional engine, nil after a
// failed open.
func (s *Store) Engine() *rockyardkv.TransactionDB {
	return s.db
}

// handle returns the engine handle for a family.
func (s *Store) handle(f Family) rockyardkv.ColumnFamilyHandle {
	if f == Relation {
		return s.families[1]
	}
	return s.families[0]
}

// guard takes the read side of the teardown lock and reports whether
// the store is usable. The caller must invoke release when done.
func (s *Store) guard() (release func(), err error) {
	s.quitLock.RLock()
	if s.closed {
		s.quitLock.RUnlock()
		return nil, ErrClosed
	}
	if s.db == nil {
		s.quitLock.RUnlock()
		return nil, ErrNotOpen
	}
	return s.quitLock.RUnlock, nil
}

// Close tears the store down. It is a single-call operation: the first
// call runs the teardown, later calls are no-ops returning nil.
//
// Without destroy-on-exit, Close flushes the memtables and closes the
// engine, returning any error; all on-disk state persists and can be
// reopened. With destroy-on-exit, Close additionally deletes everything
// under the store's path. Teardown failures in that mode are logged and
// swallowed: the close typically runs during scope exit with no caller
// left to receive them, and the deletion is attempted regardless of
// whether the engine close succeeded so that "destroy" is honored even
// when close misbehaves.
func (s *Store) Close() error {
	s.quitLock.Lock()
	defer s.quitLock.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	if s.db == nil {
		// Failed open: the lock was already released on the failing
		// path and the directory is left alone even in destroy mode,
		// matching "engine instance present" as the destroy
		// precondition.
		return nil
	}

	if !s.destroyOnExit {
		err := s.db.Flush(rockyardkv.DefaultFlushOptions())
		if err != nil {
			_ = s.db.Close()
		} else {
			err = s.db.Close()
		}
		s.db = nil
		s.releaseLock()
		return err
	}

	s.log.Info("destroying store on close", "path", s.path)
	if err := s.db.Close(); err != nil {
		s.log.Error("engine close failed during destroy", "path", s.path, "err", err)
	}
	s.db = nil
	s.releaseLock()

	// Deletion runs regardless of the close outcome so that no on-disk
	// state survives a misbehaving close.
	if err := os.RemoveAll(s.path); err != nil {
		s.log.Error("failed to delete store path", "path", s.path, "err", err)
	}

	// The comparators may be invoked by the engine right up to the end
	// of close; only now are they released.
	s.primaryCmp = nil
	s.secondaryCmp = nil

	return nil
}

// releaseLock drops the path lock. Callers hold quitLock exclusively.
func (s *Store) releaseLock() {
	if s.lock == nil {
		return
	}
	if err := s.lock.release(); err != nil {
		s.log.Warn("failed to release path lock", "path", s.path, "err", err)
	}
	s.lock = nil
}

// Put sets the value for key in the given family outside a transaction.
func (s *Store) Put(f Family, key, value []byte) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	release, err := s.guard()
	if err != nil {
		return err
	}
	defer release()
	return s.db.GetDB().PutCF(nil, s.handle(f), key, value)
}

// Get retrieves the value for key from the given family. It returns the
// engine's not-found error when the key does not exist.
func (s *Store) Get(f Family, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	release, err := s.guard()
	if err != nil {
		return nil, err
	}
	defer release()
	return s.db.GetDB().GetCF(nil, s.handle(f), key)
}

// Delete removes key from the given family outside a transaction.
func (s *Store) Delete(f Family, key []byte) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	release, err := s.guard()
	if err != nil {
		return err
	}
	defer release()
	return s.db.GetDB().DeleteCF(nil, s.handle(f), key)
}

// Scan visits every key under prefix in the given family, in key order,
// until fn returns a non-nil error or the prefix is exhausted. An empty
// prefix scans the whole family.
//
// The key and value slices passed to fn are only valid for the
// duration of the call; fn must copy them if it retains them.
func (s *Store) Scan(f Family, prefix []byte, fn func(key, value []byte) error) error {
	release, err := s.guard()
	if err != nil {
		return err
	}
	defer release()

	ro := rockyardkv.DefaultReadOptions()
	if len(prefix) > 0 {
		ro.IterateLowerBound = prefix
		ro.IterateUpperBound = UpperBound(prefix)
	}

	iter := s.db.GetDB().NewIteratorCF(ro, s.handle(f))
	defer iter.Close()

	for iter.SeekToFirst(); iter.Valid(); iter.Next() {
		if err := fn(iter.Key(), iter.Value()); err != nil {
			return err
		}
	}
	return iter.Error()
}

// Compact flattens the whole keyspace: deleted and overwritten versions
// are discarded and the data is rearranged for cheaper access.
func (s *Store) Compact() error {
	release, err := s.guard()
	if err != nil {
		return err
	}
	defer release()
	return s.db.GetDB().CompactRange(nil, nil, nil)
}

// Flush persists all pending writes of both families to disk.
func (s *Store) Flush() error {
	release, err := s.guard()
	if err != nil {
		return err
	}
	defer release()
	return s.db.Flush(rockyardkv.DefaultFlushOptions())
}
