package nbt_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaisql/nbt"
)

// marshalFunc lets tests express arbitrary shapes inline.
type marshalFunc func(enc nbt.Encoder) error

func (f marshalFunc) MarshalNBT(enc nbt.Encoder) error { return f(enc) }

type record struct {
	A int32
}

func (r *record) MarshalNBT(enc nbt.Encoder) error {
	s, err := enc.EncodeStruct("rec")
	if err != nil {
		return err
	}
	if err := s.EncodeField("a", nbt.Int(r.A)); err != nil {
		return err
	}
	return s.End()
}

type profile struct {
	Name  string
	Alias nbt.Marshaler // optional
}

func (p *profile) MarshalNBT(enc nbt.Encoder) error {
	s, err := enc.EncodeStruct("profile")
	if err != nil {
		return err
	}
	if err := s.EncodeField("name", nbt.String(p.Name)); err != nil {
		return err
	}
	if err := s.EncodeField("alias", p.Alias); err != nil {
		return err
	}
	return s.End()
}

type profileNameOnly struct {
	Name string
}

func (p *profileNameOnly) MarshalNBT(enc nbt.Encoder) error {
	s, err := enc.EncodeStruct("profile")
	if err != nil {
		return err
	}
	if err := s.EncodeField("name", nbt.String(p.Name)); err != nil {
		return err
	}
	return s.End()
}

func TestMarshalRecord(t *testing.T) {
	tests := []struct {
		variant nbt.Variant
		want    []byte
	}{
		{nbt.BigEndian, []byte{
			0x0A, 0x00, 0x03, 'r', 'e', 'c', // root header
			0x03, 0x00, 0x01, 'a', // Int tag, field name
			0x00, 0x00, 0x00, 0x05, // payload
			0x00, // End
		}},
		{nbt.LittleEndian, []byte{
			0x0A, 0x03, 0x00, 'r', 'e', 'c',
			0x03, 0x01, 0x00, 'a',
			0x05, 0x00, 0x00, 0x00,
			0x00,
		}},
		{nbt.NetworkLittleEndian, []byte{
			0x0A, 0x03, 'r', 'e', 'c',
			0x03, 0x01, 'a',
			0x0A, // zigzag 5
			0x00,
		}},
	}

	for _, test := range tests {
		t.Run(test.variant.String(), func(t *testing.T) {
			got, err := nbt.Marshal(&record{A: 5}, test.variant)
			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}

func TestMarshalRootNaming(t *testing.T) {
	// a struct root names the document after itself, a compound root is
	// always unnamed
	got, err := nbt.MarshalBigEndian(nbt.Compound{})
	require.NoError(t, err)
	require.Equal(t, []byte{0x0A, 0x00, 0x00, 0x00}, got)

	got, err = nbt.MarshalBigEndian(marshalFunc(func(enc nbt.Encoder) error {
		s, err := enc.EncodeStruct("Level")
		if err != nil {
			return err
		}
		return s.End()
	}))
	require.NoError(t, err)
	require.Equal(t, []byte{0x0A, 0x00, 0x05, 'L', 'e', 'v', 'e', 'l', 0x00}, got)
}

func TestMarshalAbsentFieldOmitted(t *testing.T) {
	for _, variant := range []nbt.Variant{nbt.BigEndian, nbt.LittleEndian, nbt.NetworkLittleEndian} {
		t.Run(variant.String(), func(t *testing.T) {
			withNil, err := nbt.Marshal(&profile{Name: "steve"}, variant)
			require.NoError(t, err)

			without, err := nbt.Marshal(&profileNameOnly{Name: "steve"}, variant)
			require.NoError(t, err)

			require.Equal(t, without, withNil)
		})
	}
}

func TestMarshalPresentFieldIsPlain(t *testing.T) {
	got, err := nbt.MarshalBigEndian(&profile{Name: "steve", Alias: nbt.String("sv")})
	require.NoError(t, err)

	require.Equal(t, []byte{
		0x0A, 0x00, 0x07, 'p', 'r', 'o', 'f', 'i', 'l', 'e',
		0x08, 0x00, 0x04, 'n', 'a', 'm', 'e', 0x00, 0x05, 's', 't', 'e', 'v', 'e',
		0x08, 0x00, 0x05, 'a', 'l', 'i', 'a', 's', 0x00, 0x02, 's', 'v',
		0x00,
	}, got)
}

func TestMarshalNetworkIntList(t *testing.T) {
	// no root header for a bare list, no trailing terminator
	got, err := nbt.MarshalNetwork(nbt.List{nbt.Int(1), nbt.Int(2), nbt.Int(3)})
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x03, // element tag
		0x06, // zigzag count 3
		0x02, 0x04, 0x06,
	}, got)
}

func TestMarshalEmptyList(t *testing.T) {
	got, err := nbt.MarshalNetwork(nbt.Compound{"l": nbt.List{}})
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x0A, 0x00, // unnamed root
		0x09, 0x01, 'l',
		0x00, 0x00, // (End, 0): the empty list keeps its tag and count
		0x00,
	}, got)
}

func TestMarshalEndMarkers(t *testing.T) {
	// every compound ends with exactly one End byte, at every depth. The
	// values are chosen so no payload byte is zero; the only other zero
	// byte in the network layout is the empty root name.
	doc := nbt.Compound{
		"a": nbt.Compound{"b": nbt.Byte(1)},
		"c": nbt.Compound{},
	}

	got, err := nbt.MarshalNetwork(doc)
	require.NoError(t, err)
	require.Equal(t, 4, bytes.Count(got, []byte{0x00}))
	require.Equal(t, byte(0x00), got[len(got)-1])
}

func TestMarshalUnsupported(t *testing.T) {
	tests := []struct {
		name string
		v    nbt.Marshaler
	}{
		{"uint8", marshalFunc(func(enc nbt.Encoder) error { return enc.EncodeUint8(1) })},
		{"uint16", marshalFunc(func(enc nbt.Encoder) error { return enc.EncodeUint16(1) })},
		{"uint32", marshalFunc(func(enc nbt.Encoder) error { return enc.EncodeUint32(1) })},
		{"uint64", marshalFunc(func(enc nbt.Encoder) error { return enc.EncodeUint64(1) })},
		{"nil root", nil},
		{"unknown length list", marshalFunc(func(enc nbt.Encoder) error {
			_, err := enc.EncodeList(-1)
			return err
		})},
		{"nil list element", nbt.List{nil}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := nbt.MarshalTo(&buf, test.v, nbt.BigEndian)
			require.Error(t, err)
			require.True(t, nbt.IsUnsupportedType(err))
			require.Zero(t, buf.Len())
		})
	}
}

func TestMarshalNilCompoundEntry(t *testing.T) {
	_, err := nbt.MarshalBigEndian(nbt.Compound{"a": nil})
	require.Error(t, err)
	require.True(t, nbt.IsUnsupportedType(err))
}

func TestMarshalListLengthMismatch(t *testing.T) {
	tests := []struct {
		name     string
		declared int
		encode   int
	}{
		{"too few", 2, 1},
		{"too many", 1, 2},
		{"none", 3, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := nbt.MarshalBigEndian(marshalFunc(func(enc nbt.Encoder) error {
				l, err := enc.EncodeList(test.declared)
				if err != nil {
					return err
				}
				for i := 0; i < test.encode; i++ {
					if err := l.EncodeElement(nbt.Byte(1)); err != nil {
						return err
					}
				}
				return l.End()
			}))
			require.Error(t, err)
			require.ErrorContains(t, err, "declared")
		})
	}
}

func TestMarshalScalarTags(t *testing.T) {
	// one field per leaf shape; the probe must emit the matching tag byte
	tests := []struct {
		v   nbt.Marshaler
		tag nbt.Tag
	}{
		{marshalFunc(func(enc nbt.Encoder) error { return enc.EncodeBool(true) }), nbt.TagByte},
		{nbt.Byte(1), nbt.TagByte},
		{nbt.Short(1), nbt.TagShort},
		{nbt.Int(1), nbt.TagInt},
		{nbt.Long(1), nbt.TagLong},
		{nbt.Float(1), nbt.TagFloat},
		{nbt.Double(1), nbt.TagDouble},
		{nbt.String("x"), nbt.TagString},
		{nbt.ByteArray{1}, nbt.TagByteArray},
		{nbt.List{nbt.Byte(1)}, nbt.TagList},
		{nbt.Compound{}, nbt.TagCompound},
	}

	for _, test := range tests {
		t.Run(test.tag.String(), func(t *testing.T) {
			got, err := nbt.MarshalBigEndian(marshalFunc(func(enc nbt.Encoder) error {
				s, err := enc.EncodeStruct("t")
				if err != nil {
					return err
				}
				if err := s.EncodeField("v", test.v); err != nil {
					return err
				}
				return s.End()
			}))
			require.NoError(t, err)

			// skip the root header: tag, u16 name length, name
			require.Equal(t, byte(test.tag), got[4])
		})
	}
}

func TestMarshalToFailingWriter(t *testing.T) {
	w := &failingWriter{failAfter: 4}
	err := nbt.MarshalTo(w, &record{A: 5}, nbt.BigEndian)
	require.Error(t, err)
	require.ErrorContains(t, err, "sink full")
}

type failingWriter struct {
	failAfter int
	written   int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.written+len(p) > w.failAfter {
		return 0, fmt.Errorf("sink full")
	}
	w.written += len(p)
	return len(p), nil
}
