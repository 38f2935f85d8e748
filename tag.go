package nbt

import "fmt"

// Tag identifies the shape of an NBT value. It is written as a single byte
// before each named compound entry and once before the elements of a list.
type Tag uint8

// The complete tag vocabulary. The integer and long array tags introduced by
// later Java Edition versions are not part of this codec.
const (
	TagEnd Tag = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
)

func (t Tag) String() string {
	switch t {
	case TagEnd:
		return "End"
	case TagByte:
		return "Byte"
	case TagShort:
		return "Short"
	case TagInt:
		return "Int"
	case TagLong:
		return "Long"
	case TagFloat:
		return "Float"
	case TagDouble:
		return "Double"
	case TagByteArray:
		return "ByteArray"
	case TagString:
		return "String"
	case TagList:
		return "List"
	case TagCompound:
		return "Compound"
	}

	return fmt.Sprintf("Tag(%d)", uint8(t))
}
