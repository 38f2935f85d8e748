package wire

import (
	"encoding/binary"
	"math"
)

// AppendInt16 appends the 2-byte encoding of x. All variants use a fixed
// width; only the byte order differs.
func AppendInt16(dst []byte, v Variant, x int16) []byte {
	if v == BigEndian {
		return append(dst, byte(x>>8), byte(x))
	}

	return append(dst, byte(x), byte(x>>8))
}

// AppendInt32 appends the encoding of x: 4 fixed bytes for the big and
// little-endian variants, a zigzag varint for the network variant.
func AppendInt32(dst []byte, v Variant, x int32) []byte {
	switch v {
	case BigEndian:
		return append(dst, byte(x>>24), byte(x>>16), byte(x>>8), byte(x))
	case LittleEndian:
		return append(dst, byte(x), byte(x>>8), byte(x>>16), byte(x>>24))
	}

	return binary.AppendVarint(dst, int64(x))
}

// AppendInt64 appends the encoding of x: 8 fixed bytes for the big and
// little-endian variants, a zigzag varint for the network variant.
func AppendInt64(dst []byte, v Variant, x int64) []byte {
	switch v {
	case BigEndian:
		return append(dst,
			byte(x>>56), byte(x>>48), byte(x>>40), byte(x>>32),
			byte(x>>24), byte(x>>16), byte(x>>8), byte(x),
		)
	case LittleEndian:
		return append(dst,
			byte(x), byte(x>>8), byte(x>>16), byte(x>>24),
			byte(x>>32), byte(x>>40), byte(x>>48), byte(x>>56),
		)
	}

	return binary.AppendVarint(dst, x)
}

// AppendFloat32 appends the 4-byte IEEE 754 encoding of x. The network
// variant uses the little-endian form.
func AppendFloat32(dst []byte, v Variant, x float32) []byte {
	bits := math.Float32bits(x)
	if v == BigEndian {
		return append(dst, byte(bits>>24), byte(bits>>16), byte(bits>>8), byte(bits))
	}

	return append(dst, byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24))
}

// AppendFloat64 appends the 8-byte IEEE 754 encoding of x. The network
// variant uses the little-endian form.
func AppendFloat64(dst []byte, v Variant, x float64) []byte {
	bits := math.Float64bits(x)
	if v == BigEndian {
		return append(dst,
			byte(bits>>56), byte(bits>>48), byte(bits>>40), byte(bits>>32),
			byte(bits>>24), byte(bits>>16), byte(bits>>8), byte(bits),
		)
	}

	return append(dst,
		byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24),
		byte(bits>>32), byte(bits>>40), byte(bits>>48), byte(bits>>56),
	)
}

// AppendString appends the length prefix of s followed by its raw bytes.
// The length field is an unsigned 16-bit integer for the fixed-width
// variants and an unsigned varint for the network variant. The caller must
// reject strings longer than v.MaxStringLen() beforehand.
func AppendString(dst []byte, v Variant, s string) []byte {
	switch v {
	case BigEndian:
		dst = append(dst, byte(len(s)>>8), byte(len(s)))
	case LittleEndian:
		dst = append(dst, byte(len(s)), byte(len(s)>>8))
	default:
		dst = binary.AppendUvarint(dst, uint64(len(s)))
	}

	return append(dst, s...)
}

// AppendCount appends a list, byte array or compound count: a signed 32-bit
// integer for the fixed-width variants, a zigzag varint for the network
// variant.
func AppendCount(dst []byte, v Variant, n int32) []byte {
	return AppendInt32(dst, v, n)
}
