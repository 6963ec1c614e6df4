package relstore

import "github.com/aalhour/rockyardkv"

// Tuning applied unconditionally before any Config override. The
// numbers follow the usual profile for a write-heavy ordered store:
// fast general compression with a high-ratio codec at the bottom
// level, bounded background concurrency, periodic byte-synced writes
// and minimal-overlap compaction scheduling.
const (
	defaultBlockSize     = 16 * 1024
	defaultFormatVersion = 5
	defaultBytesPerSync  = 1024 * 1024

	defaultBackgroundCompactions = 4
	defaultBackgroundFlushes     = 2

	// Write buffer sizing used by the level-style compaction profile.
	levelStyleWriteBufferSize = 128 * 1024 * 1024
	levelStyleMaxWriteBuffers = 6
	levelStyleL0Trigger       = 2

	// Bulk-load mode stops compaction from competing with the ingest.
	bulkLoadL0Trigger = 1 << 30
)

func defaultTableOptions() TableOptions {
	return TableOptions{
		BlockSize:                        defaultBlockSize,
		CacheIndexAndFilterBlocks:        true,
		PinL0FilterAndIndexBlocksInCache: true,
		FormatVersion:                    defaultFormatVersion,
	}
}

func defaultFamilyOptions() FamilyOptions {
	return FamilyOptions{
		Compression:                      rockyardkv.LZ4Compression,
		BottommostCompression:            rockyardkv.ZstdCompression,
		LevelCompactionDynamicLevelBytes: true,
		CompactionPri:                    CompactionPriMinOverlappingRatio,
		Blob:                             rockyardkv.DefaultBlobDBOptions(),
		Table:                            defaultTableOptions(),
	}
}

func defaultEngineOptions() EngineOptions {
	return EngineOptions{
		FamilyOptions:            defaultFamilyOptions(),
		MaxBackgroundCompactions: defaultBackgroundCompactions,
		MaxBackgroundFlushes:     defaultBackgroundFlushes,
		BytesPerSync:             defaultBytesPerSync,
		MaxSubcompactions:        1,
	}
}
