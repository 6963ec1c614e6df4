package relstore

// Config enumerates every knob recognized when opening a store. It is
// resolved exactly once by Resolve; fields left at their zero value fall
// back to the engine defaults described on each field.
//
// A Config is plain data: it is never mutated by the store and may be
// reused for several Open calls.
type Config struct {
	// DBPath is the directory holding all on-disk state of the store.
	DBPath string

	// CreateIfMissing creates the database directory on first open.
	CreateIfMissing bool

	// ParanoidChecks enables aggressive consistency checking inside the
	// engine.
	ParanoidChecks bool

	// DestroyOnExit irreversibly deletes everything under DBPath when the
	// store is closed. Intended for ephemeral and test instances.
	DestroyOnExit bool

	// PrepareForBulkLoad trades read performance and background
	// compaction for raw ingest speed. Engine-wide only.
	PrepareForBulkLoad bool

	// IncreaseParallelism raises the engine's background job concurrency.
	// Zero or negative values are a no-op.
	IncreaseParallelism int

	// OptimizeLevelStyleCompaction tunes the engine-wide and both
	// per-family option sets for level-style compaction workloads.
	OptimizeLevelStyleCompaction bool

	// EnableBlobFiles stores large values in separate blob files. When
	// set, the three value fields below are copied verbatim to the
	// engine-wide and both per-family option sets.
	EnableBlobFiles bool
	MinBlobSize     int
	BlobFileSize    int64
	EnableBlobGC    bool

	// UseBloomFilter replaces the default block layout's filter policy
	// with a bloom filter on the engine-wide and both per-family option
	// sets.
	UseBloomFilter               bool
	BloomFilterBitsPerKey        int
	BloomFilterWholeKeyFiltering bool

	// Prefix extractor policy, independent per family. Capped and fixed
	// variants are mutually exclusive for one family; if both are
	// requested, the fixed one silently wins because it is applied after
	// capped in resolution order.
	PriUseCappedPrefixExtractor bool
	PriCappedPrefixExtractorLen int
	PriUseFixedPrefixExtractor  bool
	PriFixedPrefixExtractorLen  int

	SndUseCappedPrefixExtractor bool
	SndCappedPrefixExtractorLen int
	SndUseFixedPrefixExtractor  bool
	SndFixedPrefixExtractorLen  int

	// PriComparator and SndComparator install foreign key orderings for
	// the primary and relation families. Nil keeps the engine's default
	// bytewise ordering for that family.
	//
	// The engine installs a family's comparator only when the family is
	// created. Opening an existing database with SndComparator set
	// fails: the relation family already exists and cannot be rebound,
	// and binding it without the comparator would mis-order reads
	// against the foreign-ordered data on disk.
	PriComparator *ComparatorDescriptor
	SndComparator *ComparatorDescriptor

	// Logger receives teardown and lifecycle messages. Nil uses a
	// stderr-backed default.
	Logger Logger
}

// DefaultConfig returns a Config suitable for a fresh store at path.
func DefaultConfig(path string) Config {
	return Config{
		DBPath:          path,
		CreateIfMissing: true,
	}
}
