package nbt

import "github.com/chaisql/nbt/internal/wire"

// Variant selects one of the three concrete byte layouts. It is fixed when
// an encode or decode starts and applies to the whole document.
type Variant = wire.Variant

const (
	// BigEndian is the layout used by Java Edition level and region files.
	BigEndian = wire.BigEndian

	// LittleEndian is the layout used by Bedrock Edition on disk.
	LittleEndian = wire.LittleEndian

	// NetworkLittleEndian is the layout used by the Bedrock Edition network
	// protocol.
	NetworkLittleEndian = wire.NetworkLittleEndian
)

// Marshaler is implemented by types that can describe themselves to an
// Encoder. MarshalNBT may be called more than once per encode: the encoder
// runs a probing traversal over a value to learn its tag byte before the
// traversal that writes its payload, and both must describe the same shape.
type Marshaler interface {
	MarshalNBT(enc Encoder) error
}

// Encoder is the shape-dispatch surface handed to MarshalNBT. Its methods
// mirror the shapes the format can represent; a value announces its own
// shape by calling exactly one of them.
//
// The package provides two implementations: the wire encoder, which writes
// payload bytes, and the tag probe, which writes a single tag byte.
// Implementations of Marshaler must not depend on which one they are handed.
type Encoder interface {
	EncodeBool(v bool) error
	EncodeInt8(v int8) error
	EncodeInt16(v int16) error
	EncodeInt32(v int32) error
	EncodeInt64(v int64) error
	EncodeFloat32(v float32) error
	EncodeFloat64(v float64) error
	EncodeString(v string) error
	EncodeByteArray(v []byte) error

	// The format has no unsigned integer types. These methods exist so
	// that the rejection is explicit: they always fail with an
	// UnsupportedTypeError.
	EncodeUint8(v uint8) error
	EncodeUint16(v uint16) error
	EncodeUint32(v uint32) error
	EncodeUint64(v uint64) error

	// EncodeList begins a list of exactly length elements. The format
	// requires the length up front; a negative length fails with an
	// UnsupportedTypeError.
	EncodeList(length int) (ListEncoder, error)

	// EncodeCompound begins a compound. If it is the document root, the
	// root is unnamed.
	EncodeCompound() (CompoundEncoder, error)

	// EncodeStruct begins a compound for a named record type. If it is the
	// document root, the document is named after the type.
	EncodeStruct(name string) (StructEncoder, error)
}

// ListEncoder encodes the elements of a list. All elements must share one
// shape; the element tag and count are written when the first element is
// encoded. Exactly as many elements as declared must be encoded before End.
type ListEncoder interface {
	EncodeElement(v Marshaler) error
	End() error
}

// CompoundEncoder encodes the named entries of a compound. Entry values must
// not be nil. End writes the compound's End marker and must be called even
// when there are no entries.
type CompoundEncoder interface {
	EncodeEntry(name string, v Marshaler) error
	End() error
}

// StructEncoder encodes the fields of a record. It behaves like
// CompoundEncoder except that a nil field value marks an absent optional
// field, which is omitted from the output entirely.
type StructEncoder interface {
	EncodeField(name string, v Marshaler) error
	End() error
}
