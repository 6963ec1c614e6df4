package relstore

import "github.com/aalhour/rockyardkv"

// CompactionPriority selects how the engine picks files for compaction.
type CompactionPriority int

const (
	// CompactionPriMinOverlappingRatio prefers files whose compaction
	// rewrites the fewest bytes in the next level.
	CompactionPriMinOverlappingRatio CompactionPriority = iota
)

// FilterPolicy describes a bloom filter attached to the block layout.
type FilterPolicy struct {
	BitsPerKey        int
	WholeKeyFiltering bool
}

// TableOptions describes the block-based storage layout of one option
// set.
type TableOptions struct {
	BlockSize                        int
	CacheIndexAndFilterBlocks        bool
	PinL0FilterAndIndexBlocksInCache bool
	FormatVersion                    uint32

	// FilterPolicy is nil for the default layout; UseBloomFilter installs
	// one uniformly on the engine-wide and both family option sets.
	FilterPolicy *FilterPolicy
}

// FamilyOptions is the resolved tuning for one column family. The
// engine-wide option set carries the same fields as a uniform default;
// comparator and prefix-extractor slots are only ever populated on the
// two family-scoped sets.
type FamilyOptions struct {
	Compression                      rockyardkv.CompressionType
	BottommostCompression            rockyardkv.CompressionType
	LevelCompactionDynamicLevelBytes bool
	CompactionPri                    CompactionPriority

	WriteBufferSize                int
	MaxWriteBufferNumber           int
	Level0FileNumCompactionTrigger int

	Blob  rockyardkv.BlobDBOptions
	Table TableOptions

	PrefixExtractor rockyardkv.PrefixExtractor
	Comparator      rockyardkv.Comparator
}

// EngineOptions is the resolved engine-wide option set.
type EngineOptions struct {
	FamilyOptions

	CreateIfMissing        bool
	ParanoidChecks         bool
	DisableAutoCompactions bool

	MaxBackgroundCompactions int
	MaxBackgroundFlushes     int
	BytesPerSync             int
	MaxSubcompactions        int
}

// ResolvedOptions is the output of Resolve: one engine-wide set plus
// exactly two family-scoped sets, primary first.
type ResolvedOptions struct {
	Engine    EngineOptions
	Primary   FamilyOptions
	Secondary FamilyOptions
}

// Resolve maps a Config onto deterministic option sets. It is a pure
// function with no error path: every recognized field either applies or
// is silently a no-op, as documented on Config.
//
// The overrides run in a fixed order. The order matters in one place:
// a fixed-length prefix extractor is applied after a capped one, so
// when both are requested for the same family the fixed one wins.
func Resolve(cfg Config) ResolvedOptions {
	res := ResolvedOptions{
		Engine:    defaultEngineOptions(),
		Primary:   defaultFamilyOptions(),
		Secondary: defaultFamilyOptions(),
	}

	// 1. Bulk-load preparation, engine-wide only.
	if cfg.PrepareForBulkLoad {
		res.Engine.DisableAutoCompactions = true
		res.Engine.Level0FileNumCompactionTrigger = bulkLoadL0Trigger
		res.Engine.MaxBackgroundFlushes = defaultBackgroundCompactions
	}

	// 2. Parallelism hint, engine-wide only, positive values only.
	if cfg.IncreaseParallelism > 0 {
		res.Engine.MaxBackgroundCompactions = cfg.IncreaseParallelism
		res.Engine.MaxSubcompactions = cfg.IncreaseParallelism
	}

	// 3. Level-style compaction profile, engine-wide and both families.
	if cfg.OptimizeLevelStyleCompaction {
		for _, fo := range []*FamilyOptions{&res.Engine.FamilyOptions, &res.Primary, &res.Secondary} {
			fo.WriteBufferSize = levelStyleWriteBufferSize
			fo.MaxWriteBufferNumber = levelStyleMaxWriteBuffers
			fo.Level0FileNumCompactionTrigger = levelStyleL0Trigger
		}
	}

	// 4. Creation and consistency flags.
	res.Engine.CreateIfMissing = cfg.CreateIfMissing
	res.Engine.ParanoidChecks = cfg.ParanoidChecks

	// 5. Blob-file policy, copied verbatim to all three sets.
	if cfg.EnableBlobFiles {
		for _, fo := range []*FamilyOptions{&res.Engine.FamilyOptions, &res.Primary, &res.Secondary} {
			fo.Blob.Enable = true
			fo.Blob.MinBlobSize = cfg.MinBlobSize
			fo.Blob.BlobFileSize = cfg.BlobFileSize
			fo.Blob.EnableBlobGC = cfg.EnableBlobGC
		}
	}

	// 6. Bloom filter, replacing the filter policy on all three sets.
	if cfg.UseBloomFilter {
		policy := FilterPolicy{
			BitsPerKey:        cfg.BloomFilterBitsPerKey,
			WholeKeyFiltering: cfg.BloomFilterWholeKeyFiltering,
		}
		for _, fo := range []*FamilyOptions{&res.Engine.FamilyOptions, &res.Primary, &res.Secondary} {
			p := policy
			fo.Table.FilterPolicy = &p
		}
	}

	// 7. Prefix extractors, family-scoped, capped before fixed.
	if cfg.PriUseCappedPrefixExtractor {
		res.Primary.PrefixExtractor = rockyardkv.NewCappedPrefixExtractor(cfg.PriCappedPrefixExtractorLen)
	}
	if cfg.SndUseCappedPrefixExtractor {
		res.Secondary.PrefixExtractor = rockyardkv.NewCappedPrefixExtractor(cfg.SndCappedPrefixExtractorLen)
	}
	if cfg.PriUseFixedPrefixExtractor {
		res.Primary.PrefixExtractor = rockyardkv.NewFixedPrefixExtractor(cfg.PriFixedPrefixExtractorLen)
	}
	if cfg.SndUseFixedPrefixExtractor {
		res.Secondary.PrefixExtractor = rockyardkv.NewFixedPrefixExtractor(cfg.SndFixedPrefixExtractorLen)
	}

	// Comparators ride along with the family option sets so that open
	// can attach and then own them in one step.
	res.Primary.Comparator = newComparator(cfg.PriComparator)
	res.Secondary.Comparator = newComparator(cfg.SndComparator)

	return res
}
