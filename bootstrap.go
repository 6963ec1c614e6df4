package relstore

import (
	"fmt"

	"github.com/aalhour/rockyardkv"
)

const (
	// DefaultFamilyName is the engine's primary column family.
	DefaultFamilyName = rockyardkv.DefaultColumnFamilyName

	// RelationFamilyName is the secondary column family.
	RelationFamilyName = "relation"
)

// FamilyDescriptor binds a column family name to its resolved options.
type FamilyDescriptor struct {
	Name    string
	Options FamilyOptions
}

// familyDescriptors returns the fixed two-entry descriptor list of
// every store: ("default", primary), ("relation", secondary). The order
// is load-bearing; callers address families by position in the handle
// list, which is built parallel to this slice.
func familyDescriptors(res ResolvedOptions) [2]FamilyDescriptor {
	return [2]FamilyDescriptor{
		{Name: DefaultFamilyName, Options: res.Primary},
		{Name: RelationFamilyName, Options: res.Secondary},
	}
}

// engineOptions lowers the resolved engine-wide set onto the engine's
// native options. The default column family reads its comparator and
// prefix extractor from the database-wide options, so the primary
// family-scoped slots are lowered here as well.
func engineOptions(res ResolvedOptions) *rockyardkv.Options {
	e := res.Engine

	o := rockyardkv.DefaultOptions()
	o.CreateIfMissing = e.CreateIfMissing
	o.ParanoidChecks = e.ParanoidChecks
	o.Compression = e.Compression
	o.BlockSize = e.Table.BlockSize
	o.FormatVersion = e.Table.FormatVersion
	o.DisableAutoCompactions = e.DisableAutoCompactions
	o.MaxSubcompactions = e.MaxSubcompactions

	if e.Table.FilterPolicy != nil {
		o.BloomFilterBitsPerKey = e.Table.FilterPolicy.BitsPerKey
	} else {
		o.BloomFilterBitsPerKey = 0
	}
	if e.WriteBufferSize > 0 {
		o.WriteBufferSize = e.WriteBufferSize
	}
	if e.MaxWriteBufferNumber > 0 {
		o.MaxWriteBufferNumber = e.MaxWriteBufferNumber
	}
	if e.Level0FileNumCompactionTrigger > 0 {
		o.Level0FileNumCompactionTrigger = e.Level0FileNumCompactionTrigger
	}

	o.Comparator = res.Primary.Comparator
	o.PrefixExtractor = res.Primary.PrefixExtractor

	return o
}

// familyOptions lowers one resolved family set onto the engine's
// per-family options.
func familyOptions(fo FamilyOptions) rockyardkv.ColumnFamilyOptions {
	cf := rockyardkv.DefaultColumnFamilyOptions()
	cf.Comparator = fo.Comparator
	if fo.WriteBufferSize > 0 {
		cf.WriteBufferSize = fo.WriteBufferSize
	}
	return cf
}

// bindFamilies resolves the fixed handle pair on an opened database,
// creating the relation family if this is a fresh database. The engine
// creates column families by call rather than by an open-time
// descriptor list, so ensure-then-bind is the open path for both fresh
// and existing stores.
//
// The engine installs a family's comparator only at creation and
// restores persisted families with default options on recovery, with
// no rebind primitive. Binding an existing relation family while a
// secondary comparator is configured would therefore silently order
// new writes bytewise against foreign-ordered on-disk data, so that
// combination fails the open instead.
func bindFamilies(db rockyardkv.DB, res ResolvedOptions) ([2]rockyardkv.ColumnFamilyHandle, error) {
	var handles [2]rockyardkv.ColumnFamilyHandle

	descs := familyDescriptors(res)

	handles[0] = db.DefaultColumnFamily()

	rel := db.GetColumnFamily(descs[1].Name)
	if rel == nil {
		created, err := db.CreateColumnFamily(familyOptions(descs[1].Options), descs[1].Name)
		if err != nil {
			return handles, err
		}
		rel = created
	} else if cmp := descs[1].Options.Comparator; cmp != nil {
		return handles, fmt.Errorf("relstore: cannot attach comparator %q to existing %q column family: the engine only installs a family's comparator when the family is created", cmp.Name(), descs[1].Name)
	}
	handles[1] = rel

	return handles, nil
}
