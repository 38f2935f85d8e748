package nbt_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/chaisql/nbt"
)

var variants = []nbt.Variant{nbt.BigEndian, nbt.LittleEndian, nbt.NetworkLittleEndian}

func testDocument() nbt.Compound {
	return nbt.Compound{
		"byte":   nbt.Byte(-5),
		"bool":   nbt.Bool(true),
		"short":  nbt.Short(-1234),
		"int":    nbt.Int(123456),
		"long":   nbt.Long(-9876543210),
		"float":  nbt.Float(1.5),
		"double": nbt.Double(-2.25),
		"string": nbt.String("héllo, wörld"),
		"bytes":  nbt.ByteArray{0x01, 0x02, 0xFF, 0x00},
		"list":   nbt.List{nbt.String("a"), nbt.String("bc")},
		"empty":  nbt.List{},
		"nested": nbt.Compound{
			"inner": nbt.List{nbt.Int(1), nbt.Int(-2), nbt.Int(1 << 30)},
			"leaf":  nbt.Compound{},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	doc := testDocument()

	for _, variant := range variants {
		t.Run(variant.String(), func(t *testing.T) {
			data, err := nbt.Marshal(doc, variant)
			require.NoError(t, err)

			got, err := nbt.Unmarshal(data, variant)
			require.NoError(t, err)
			require.Empty(t, cmp.Diff(doc, got))
		})
	}
}

func TestRoundTripNamedRoot(t *testing.T) {
	// the root name is part of the header, not of the tree: a named root
	// round-trips to the same compound as an unnamed one
	for _, variant := range variants {
		t.Run(variant.String(), func(t *testing.T) {
			data, err := nbt.Marshal(&record{A: 5}, variant)
			require.NoError(t, err)

			got, err := nbt.Unmarshal(data, variant)
			require.NoError(t, err)
			require.Equal(t, nbt.Compound{"a": nbt.Int(5)}, got)
		})
	}
}

func TestRoundTripExtremes(t *testing.T) {
	doc := nbt.Compound{
		"minShort": nbt.Short(-1 << 15),
		"maxShort": nbt.Short(1<<15 - 1),
		"minInt":   nbt.Int(-1 << 31),
		"maxInt":   nbt.Int(1<<31 - 1),
		"minLong":  nbt.Long(-1 << 63),
		"maxLong":  nbt.Long(1<<63 - 1),
		"zero":     nbt.Int(0),
	}

	for _, variant := range variants {
		t.Run(variant.String(), func(t *testing.T) {
			data, err := nbt.Marshal(doc, variant)
			require.NoError(t, err)

			got, err := nbt.Unmarshal(data, variant)
			require.NoError(t, err)
			require.Equal(t, doc, got)
		})
	}
}

func TestMarshalDeterministic(t *testing.T) {
	doc := testDocument()

	ref, err := nbt.MarshalBigEndian(doc)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		got, err := nbt.MarshalBigEndian(doc)
		require.NoError(t, err)
		require.Equal(t, ref, got)
	}
}

func TestMarshalConcurrent(t *testing.T) {
	// independent encodes on independent sinks need no coordination
	doc := testDocument()

	for _, variant := range variants {
		variant := variant
		t.Run(variant.String(), func(t *testing.T) {
			ref, err := nbt.Marshal(doc, variant)
			require.NoError(t, err)

			var g errgroup.Group
			for i := 0; i < 8; i++ {
				g.Go(func() error {
					for j := 0; j < 50; j++ {
						got, err := nbt.Marshal(doc, variant)
						if err != nil {
							return err
						}
						if d := cmp.Diff(ref, got); d != "" {
							return fmt.Errorf("output mismatch:\n%s", d)
						}
					}
					return nil
				})
			}
			require.NoError(t, g.Wait())
		})
	}
}
