package wire

import (
	"encoding/binary"
	"math"

	"github.com/cockroachdb/errors"
)

// ErrUnexpectedEnd is returned when the input ends in the middle of a value.
var ErrUnexpectedEnd = errors.New("unexpected end of input")

// Int16 reads a 16-bit integer and returns it with the number of bytes
// consumed.
func Int16(b []byte, v Variant) (int16, int, error) {
	if len(b) < 2 {
		return 0, 0, ErrUnexpectedEnd
	}

	if v == BigEndian {
		return int16(uint16(b[0])<<8 | uint16(b[1])), 2, nil
	}

	return int16(uint16(b[1])<<8 | uint16(b[0])), 2, nil
}

// Int32 reads a 32-bit integer and returns it with the number of bytes
// consumed.
func Int32(b []byte, v Variant) (int32, int, error) {
	switch v {
	case BigEndian:
		if len(b) < 4 {
			return 0, 0, ErrUnexpectedEnd
		}
		return int32(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])), 4, nil
	case LittleEndian:
		if len(b) < 4 {
			return 0, 0, ErrUnexpectedEnd
		}
		return int32(uint32(b[3])<<24 | uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0])), 4, nil
	}

	x, n, err := varint(b)
	if err != nil {
		return 0, 0, err
	}
	if x < math.MinInt32 || x > math.MaxInt32 {
		return 0, 0, errors.New("varint overflows int32")
	}

	return int32(x), n, nil
}

// Int64 reads a 64-bit integer and returns it with the number of bytes
// consumed.
func Int64(b []byte, v Variant) (int64, int, error) {
	switch v {
	case BigEndian:
		if len(b) < 8 {
			return 0, 0, ErrUnexpectedEnd
		}
		return int64(binary.BigEndian.Uint64(b)), 8, nil
	case LittleEndian:
		if len(b) < 8 {
			return 0, 0, ErrUnexpectedEnd
		}
		return int64(binary.LittleEndian.Uint64(b)), 8, nil
	}

	return varint(b)
}

// Float32 reads a 4-byte IEEE 754 float and returns it with the number of
// bytes consumed.
func Float32(b []byte, v Variant) (float32, int, error) {
	if len(b) < 4 {
		return 0, 0, ErrUnexpectedEnd
	}

	var bits uint32
	if v == BigEndian {
		bits = binary.BigEndian.Uint32(b)
	} else {
		bits = binary.LittleEndian.Uint32(b)
	}

	return math.Float32frombits(bits), 4, nil
}

// Float64 reads an 8-byte IEEE 754 float and returns it with the number of
// bytes consumed.
func Float64(b []byte, v Variant) (float64, int, error) {
	if len(b) < 8 {
		return 0, 0, ErrUnexpectedEnd
	}

	var bits uint64
	if v == BigEndian {
		bits = binary.BigEndian.Uint64(b)
	} else {
		bits = binary.LittleEndian.Uint64(b)
	}

	return math.Float64frombits(bits), 8, nil
}

// String reads a length-prefixed string and returns it with the number of
// bytes consumed.
func String(b []byte, v Variant) (string, int, error) {
	var l int64
	var n int

	switch v {
	case BigEndian, LittleEndian:
		if len(b) < 2 {
			return "", 0, ErrUnexpectedEnd
		}
		if v == BigEndian {
			l = int64(uint16(b[0])<<8 | uint16(b[1]))
		} else {
			l = int64(uint16(b[1])<<8 | uint16(b[0]))
		}
		n = 2
	default:
		u, un, err := uvarint(b)
		if err != nil {
			return "", 0, err
		}
		if u > math.MaxUint32 {
			return "", 0, errors.New("string length overflows uint32")
		}
		l = int64(u)
		n = un
	}

	if int64(len(b)-n) < l {
		return "", 0, ErrUnexpectedEnd
	}

	return string(b[n : n+int(l)]), n + int(l), nil
}

// Count reads a list, byte array or compound count and returns it with the
// number of bytes consumed.
func Count(b []byte, v Variant) (int32, int, error) {
	return Int32(b, v)
}

func varint(b []byte) (int64, int, error) {
	x, n := binary.Varint(b)
	if n == 0 {
		return 0, 0, ErrUnexpectedEnd
	}
	if n < 0 {
		return 0, 0, errors.New("varint overflows int64")
	}

	return x, n, nil
}

func uvarint(b []byte) (uint64, int, error) {
	x, n := binary.Uvarint(b)
	if n == 0 {
		return 0, 0, ErrUnexpectedEnd
	}
	if n < 0 {
		return 0, 0, errors.New("uvarint overflows uint64")
	}

	return x, n, nil
}
