package relstore_test

import (
	"testing"

	"github.com/aalhour/rockyardkv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sxwebdev/relstore"
)

func TestResolve_Defaults(t *testing.T) {
	res := relstore.Resolve(relstore.DefaultConfig(t.TempDir()))

	for _, fo := range []relstore.FamilyOptions{res.Engine.FamilyOptions, res.Primary, res.Secondary} {
		assert.Equal(t, rockyardkv.LZ4Compression, fo.Compression)
		assert.Equal(t, rockyardkv.ZstdCompression, fo.BottommostCompression)
		assert.True(t, fo.LevelCompactionDynamicLevelBytes)
		assert.Equal(t, relstore.CompactionPriMinOverlappingRatio, fo.CompactionPri)

		// Default block layout: 16 KiB blocks, cached and pinned
		// index/filter blocks, fixed format version, no filter policy.
		assert.Equal(t, 16*1024, fo.Table.BlockSize)
		assert.True(t, fo.Table.CacheIndexAndFilterBlocks)
		assert.True(t, fo.Table.PinL0FilterAndIndexBlocksInCache)
		assert.Equal(t, uint32(5), fo.Table.FormatVersion)
		assert.Nil(t, fo.Table.FilterPolicy)

		assert.False(t, fo.Blob.Enable)
		assert.Nil(t, fo.PrefixExtractor)
	}

	assert.True(t, res.Engine.CreateIfMissing)
	assert.False(t, res.Engine.ParanoidChecks)
	assert.False(t, res.Engine.DisableAutoCompactions)
	assert.Equal(t, 4, res.Engine.MaxBackgroundCompactions)
	assert.Equal(t, 2, res.Engine.MaxBackgroundFlushes)
	assert.Equal(t, 1024*1024, res.Engine.BytesPerSync)

	// No custom comparators installed by default.
	assert.Nil(t, res.Primary.Comparator)
	assert.Nil(t, res.Secondary.Comparator)
}

func TestResolve_IsDeterministic(t *testing.T) {
	cfg := relstore.DefaultConfig("/some/path")
	cfg.UseBloomFilter = true
	cfg.BloomFilterBitsPerKey = 10
	cfg.EnableBlobFiles = true
	cfg.OptimizeLevelStyleCompaction = true

	a := relstore.Resolve(cfg)
	b := relstore.Resolve(cfg)
	assert.Equal(t, a.Engine, b.Engine)
	assert.Equal(t, a.Primary.Table, b.Primary.Table)
	assert.Equal(t, a.Secondary.Blob, b.Secondary.Blob)
}

func TestResolve_ParallelismHint(t *testing.T) {
	// Zero and negative values are a no-op.
	for _, n := range []int{0, -3} {
		cfg := relstore.DefaultConfig(t.TempDir())
		cfg.IncreaseParallelism = n
		res := relstore.Resolve(cfg)
		assert.Equal(t, 4, res.Engine.MaxBackgroundCompactions)
		assert.Equal(t, 1, res.Engine.MaxSubcompactions)
	}

	cfg := relstore.DefaultConfig(t.TempDir())
	cfg.IncreaseParallelism = 8
	res := relstore.Resolve(cfg)
	assert.Equal(t, 8, res.Engine.MaxBackgroundCompactions)
	assert.Equal(t, 8, res.Engine.MaxSubcompactions)
}

func TestResolve_BulkLoadIsEngineWideOnly(t *testing.T) {
	cfg := relstore.DefaultConfig(t.TempDir())
	cfg.PrepareForBulkLoad = true
	res := relstore.Resolve(cfg)

	assert.True(t, res.Engine.DisableAutoCompactions)
	assert.Equal(t, 1<<30, res.Engine.Level0FileNumCompactionTrigger)

	// The family-scoped sets keep their defaults.
	assert.Zero(t, res.Primary.Level0FileNumCompactionTrigger)
	assert.Zero(t, res.Secondary.Level0FileNumCompactionTrigger)
}

func TestResolve_LevelStyleCompactionAppliesToAllThree(t *testing.T) {
	cfg := relstore.DefaultConfig(t.TempDir())
	cfg.OptimizeLevelStyleCompaction = true
	res := relstore.Resolve(cfg)

	for _, fo := range []relstore.FamilyOptions{res.Engine.FamilyOptions, res.Primary, res.Secondary} {
		assert.Equal(t, 128*1024*1024, fo.WriteBufferSize)
		assert.Equal(t, 6, fo.MaxWriteBufferNumber)
		assert.Equal(t, 2, fo.Level0FileNumCompactionTrigger)
	}
}

func TestResolve_BlobPolicyCopiedVerbatim(t *testing.T) {
	cfg := relstore.DefaultConfig(t.TempDir())
	cfg.EnableBlobFiles = true
	cfg.MinBlobSize = 0
	cfg.BlobFileSize = 64 * 1024 * 1024
	cfg.EnableBlobGC = true
	res := relstore.Resolve(cfg)

	for _, fo := range []relstore.FamilyOptions{res.Engine.FamilyOptions, res.Primary, res.Secondary} {
		assert.True(t, fo.Blob.Enable)
		assert.Equal(t, 0, fo.Blob.MinBlobSize)
		assert.Equal(t, int64(64*1024*1024), fo.Blob.BlobFileSize)
		assert.True(t, fo.Blob.EnableBlobGC)
	}
}

func TestResolve_BloomFilterReplacesFilterPolicy(t *testing.T) {
	cfg := relstore.DefaultConfig(t.TempDir())
	cfg.UseBloomFilter = true
	cfg.BloomFilterBitsPerKey = 10
	cfg.BloomFilterWholeKeyFiltering = true
	res := relstore.Resolve(cfg)

	for _, fo := range []relstore.FamilyOptions{res.Engine.FamilyOptions, res.Primary, res.Secondary} {
		require.NotNil(t, fo.Table.FilterPolicy)
		assert.Equal(t, 10, fo.Table.FilterPolicy.BitsPerKey)
		assert.True(t, fo.Table.FilterPolicy.WholeKeyFiltering)
	}
}

// Blob files and bloom filter combine independently: both land on all
// three option sets, and without the bloom flag the default layout has
// no filter policy even when blob files are enabled.
func TestResolve_BlobAndBloomScoping(t *testing.T) {
	cfg := relstore.DefaultConfig(t.TempDir())
	cfg.EnableBlobFiles = true
	cfg.MinBlobSize = 0
	res := relstore.Resolve(cfg)

	assert.True(t, res.Engine.Blob.Enable)
	assert.True(t, res.Primary.Blob.Enable)
	assert.True(t, res.Secondary.Blob.Enable)
	assert.Nil(t, res.Engine.Table.FilterPolicy)
	assert.Nil(t, res.Primary.Table.FilterPolicy)
	assert.Nil(t, res.Secondary.Table.FilterPolicy)

	cfg.UseBloomFilter = true
	cfg.BloomFilterBitsPerKey = 10
	res = relstore.Resolve(cfg)

	require.NotNil(t, res.Engine.Table.FilterPolicy)
	require.NotNil(t, res.Primary.Table.FilterPolicy)
	require.NotNil(t, res.Secondary.Table.FilterPolicy)
	assert.True(t, res.Secondary.Blob.Enable)
}

func TestResolve_PrefixExtractorsAreFamilyScoped(t *testing.T) {
	cfg := relstore.DefaultConfig(t.TempDir())
	cfg.PriUseCappedPrefixExtractor = true
	cfg.PriCappedPrefixExtractorLen = 8
	res := relstore.Resolve(cfg)

	require.NotNil(t, res.Primary.PrefixExtractor)
	assert.Equal(t, "rocksdb.CappedPrefix", res.Primary.PrefixExtractor.Name())
	assert.Nil(t, res.Secondary.PrefixExtractor)
	assert.Nil(t, res.Engine.PrefixExtractor)

	cfg = relstore.DefaultConfig(t.TempDir())
	cfg.SndUseFixedPrefixExtractor = true
	cfg.SndFixedPrefixExtractorLen = 4
	res = relstore.Resolve(cfg)

	assert.Nil(t, res.Primary.PrefixExtractor)
	require.NotNil(t, res.Secondary.PrefixExtractor)
	assert.Equal(t, "rocksdb.FixedPrefix", res.Secondary.PrefixExtractor.Name())
}

// Capped and fixed extractors are mutually exclusive per family; when
// both are requested the fixed one wins because it resolves later.
// This is a documented resolution-order tie-break, not validation.
func TestResolve_FixedExtractorWinsOverCapped(t *testing.T) {
	cfg := relstore.DefaultConfig(t.TempDir())
	cfg.PriUseCappedPrefixExtractor = true
	cfg.PriCappedPrefixExtractorLen = 8
	cfg.PriUseFixedPrefixExtractor = true
	cfg.PriFixedPrefixExtractorLen = 4
	res := relstore.Resolve(cfg)

	require.NotNil(t, res.Primary.PrefixExtractor)
	assert.Equal(t, "rocksdb.FixedPrefix", res.Primary.PrefixExtractor.Name())
}

func TestResolve_ComparatorsAttachToFamilies(t *testing.T) {
	cfg := relstore.DefaultConfig(t.TempDir())
	cfg.PriComparator = &relstore.ComparatorDescriptor{
		Name:    "test_cmp_v1",
		Compare: func(a, b []byte) int { return len(a) - len(b) },
	}
	res := relstore.Resolve(cfg)

	require.NotNil(t, res.Primary.Comparator)
	assert.Equal(t, "test_cmp_v1", res.Primary.Comparator.Name())
	assert.Nil(t, res.Secondary.Comparator)
	assert.Nil(t, res.Engine.Comparator)
}
