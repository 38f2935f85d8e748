package nbt

import (
	"github.com/cockroachdb/errors"

	"github.com/chaisql/nbt/internal/wire"
)

// Unmarshal parses a document encoded with the given variant and returns its
// root compound. The root's name, whether empty or not, is discarded. Input
// with bytes remaining after the document is rejected.
func Unmarshal(data []byte, variant Variant) (Compound, error) {
	if len(data) == 0 {
		return nil, ErrUnexpectedEnd
	}
	if Tag(data[0]) != TagCompound {
		return nil, errors.Newf("document root must be a compound, got %s", Tag(data[0]))
	}

	_, n, err := wire.String(data[1:], variant)
	if err != nil {
		return nil, err
	}
	n++

	root, nn, err := decodeCompound(data[n:], variant)
	if err != nil {
		return nil, err
	}

	if rest := len(data) - n - nn; rest != 0 {
		return nil, errors.Newf("%d trailing bytes after document", rest)
	}

	return root, nil
}

// UnmarshalBigEndian parses a document in the layout used by Java Edition.
func UnmarshalBigEndian(data []byte) (Compound, error) {
	return Unmarshal(data, BigEndian)
}

// UnmarshalLittleEndian parses a document in the layout used by Bedrock
// Edition on disk.
func UnmarshalLittleEndian(data []byte) (Compound, error) {
	return Unmarshal(data, LittleEndian)
}

// UnmarshalNetwork parses a document in the layout used by the Bedrock
// Edition network protocol.
func UnmarshalNetwork(data []byte) (Compound, error) {
	return Unmarshal(data, NetworkLittleEndian)
}

// decodeValue reads one payload of the given shape and returns it with the
// number of bytes consumed.
func decodeValue(b []byte, variant Variant, tag Tag) (Value, int, error) {
	switch tag {
	case TagByte:
		if len(b) < 1 {
			return nil, 0, ErrUnexpectedEnd
		}
		return Byte(b[0]), 1, nil
	case TagShort:
		x, n, err := wire.Int16(b, variant)
		return Short(x), n, err
	case TagInt:
		x, n, err := wire.Int32(b, variant)
		return Int(x), n, err
	case TagLong:
		x, n, err := wire.Int64(b, variant)
		return Long(x), n, err
	case TagFloat:
		x, n, err := wire.Float32(b, variant)
		return Float(x), n, err
	case TagDouble:
		x, n, err := wire.Float64(b, variant)
		return Double(x), n, err
	case TagString:
		x, n, err := wire.String(b, variant)
		return String(x), n, err
	case TagByteArray:
		return decodeByteArray(b, variant)
	case TagList:
		return decodeList(b, variant)
	case TagCompound:
		return decodeCompound(b, variant)
	}

	return nil, 0, errors.Newf("invalid tag %s", tag)
}

func decodeByteArray(b []byte, variant Variant) (Value, int, error) {
	count, n, err := wire.Count(b, variant)
	if err != nil {
		return nil, 0, err
	}
	if count < 0 {
		return nil, 0, errors.Newf("negative byte array length %d", count)
	}
	if len(b)-n < int(count) {
		return nil, 0, ErrUnexpectedEnd
	}

	arr := append(ByteArray(nil), b[n:n+int(count)]...)
	return arr, n + int(count), nil
}

func decodeList(b []byte, variant Variant) (Value, int, error) {
	if len(b) < 1 {
		return nil, 0, ErrUnexpectedEnd
	}
	elem := Tag(b[0])
	n := 1

	count, nn, err := wire.Count(b[n:], variant)
	if err != nil {
		return nil, 0, err
	}
	n += nn

	if count < 0 {
		return nil, 0, errors.Newf("negative list length %d", count)
	}
	if count == 0 {
		return List{}, n, nil
	}
	if elem == TagEnd || elem > TagCompound {
		return nil, 0, errors.Newf("invalid list element tag %s", elem)
	}

	list := make(List, 0, min(int(count), 256))
	for i := int32(0); i < count; i++ {
		v, nn, err := decodeValue(b[n:], variant, elem)
		if err != nil {
			return nil, 0, err
		}
		n += nn

		list = append(list, v)
	}

	return list, n, nil
}

// decodeCompound reads named entries up to and including the End marker.
func decodeCompound(b []byte, variant Variant) (Compound, int, error) {
	m := Compound{}

	var n int
	for {
		if n >= len(b) {
			return nil, 0, ErrUnexpectedEnd
		}

		tag := Tag(b[n])
		n++

		if tag == TagEnd {
			return m, n, nil
		}

		name, nn, err := wire.String(b[n:], variant)
		if err != nil {
			return nil, 0, err
		}
		n += nn

		v, nn, err := decodeValue(b[n:], variant, tag)
		if err != nil {
			return nil, 0, err
		}
		n += nn

		m[name] = v
	}
}
