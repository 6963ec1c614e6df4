// Package relstore configures, opens and tears down a transactional
// embedded key-ordered store with a fixed two-column-family topology:
// a primary "default" family and a secondary "relation" family. It is
// built on top of RockyardKV (a pure-Go, RocksDB-compatible storage
// engine) and is aimed at runtimes that keep tuples in the primary
// family and relation metadata in the secondary one.
//
// # Overview
//
// relstore wraps the engine to provide:
//   - A single explicit Config resolved once into engine-wide and
//     per-family option sets
//   - Bridging of foreign key-ordering callbacks into engine
//     comparators, one slot per family
//   - A handle that owns the engine, both family handles and the
//     comparators for its whole lifetime
//   - An irreversible destroy-on-exit teardown mode for ephemeral and
//     test instances
//
// # Quick Start
//
//	cfg := relstore.DefaultConfig("./data")
//	store, status := relstore.Open(cfg)
//	if !status.OK {
//	    log.Fatal(status.Message)
//	}
//	defer store.Close()
//
//	// Direct reads and writes, addressed by family
//	store.Put(relstore.Primary, []byte("key"), []byte("value"))
//	store.Put(relstore.Relation, []byte("rel"), []byte("meta"))
//	val, err := store.Get(relstore.Primary, []byte("key"))
//
// # Transactions
//
// Begin starts a pessimistic transaction with a consistent snapshot
// spanning both families. Writes buffer until Commit and apply
// atomically:
//
//	tx, err := store.Begin()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tx.Put(relstore.Primary, []byte("k"), []byte("v"))
//	tx.Put(relstore.Relation, []byte("r"), []byte("m"))
//	if err := tx.Commit(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Custom orderings
//
// Each family accepts an optional foreign ordering callback via a
// ComparatorDescriptor. The descriptor's name is written to disk;
// reopening an existing database under a different name fails at open.
// The relation family's comparator can only be installed when the
// family is created: opening an existing database with SndComparator
// set fails rather than silently falling back to bytewise order.
// The callback may be invoked concurrently by the engine's background
// threads for the entire lifetime of the store, including during
// close, and the store keeps the bridged comparator alive accordingly.
//
//	cfg.PriComparator = &relstore.ComparatorDescriptor{
//	    Name:    "myapp_cmp_v1",
//	    Compare: myCompare,
//	}
//
// # Teardown
//
// Close is single-call. Without DestroyOnExit it flushes and closes
// the engine, leaving all data reopenable at the same path. With
// DestroyOnExit it closes the engine and then unconditionally deletes
// everything under the path; failures in that mode are logged and
// swallowed, since destroy teardown typically runs during scope exit.
//
// Open holds an exclusive advisory lock on the database directory for
// the lifetime of the Store, so a second open of the same path fails
// immediately, whether from this process or another. Callers must
// treat a failed open as final for that Store instance and may retry
// with a fresh Open.
package relstore
