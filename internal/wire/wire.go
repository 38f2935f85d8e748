// Package wire implements the byte-level layout rules shared by the three
// NBT wire variants. It only deals with primitives: fixed and variable-length
// integers, floats, string lengths and list counts. Tag dispatch and document
// structure live in the parent package.
package wire

import "math"

// Variant selects one of the three concrete byte layouts. The zero value is
// BigEndian.
type Variant uint8

const (
	// BigEndian is the fixed-width big-endian layout used by Java Edition
	// level and region files.
	BigEndian Variant = iota

	// LittleEndian is the fixed-width little-endian layout used by Bedrock
	// Edition for on-disk storage.
	LittleEndian

	// NetworkLittleEndian is the layout used by the Bedrock Edition network
	// protocol: floats and 16-bit integers are fixed little-endian while
	// 32/64-bit integers, string lengths and list counts are
	// variable-length encoded.
	NetworkLittleEndian
)

func (v Variant) String() string {
	switch v {
	case BigEndian:
		return "big-endian"
	case LittleEndian:
		return "little-endian"
	case NetworkLittleEndian:
		return "network-little-endian"
	}

	return "unknown"
}

// MaxStringLen returns the longest string length representable by the
// variant's string length field.
func (v Variant) MaxStringLen() int64 {
	if v == NetworkLittleEndian {
		return math.MaxUint32
	}

	return math.MaxUint16
}

// MaxCount is the largest list, byte array or compound entry count
// representable by any variant. Counts are signed 32-bit integers.
const MaxCount = math.MaxInt32
