/*
Package nbt encodes and decodes the Named Binary Tag format used by both
Minecraft editions, in its three concrete byte layouts.

# Variants

The same tag tree can be laid out on the wire in three ways, selected by a
Variant value passed to the entry points:

  - BigEndian: fixed-width big-endian integers and floats. Used by Java
    Edition level and region files.
  - LittleEndian: fixed-width little-endian. Used by Bedrock Edition for
    on-disk storage.
  - NetworkLittleEndian: little-endian floats and shorts, variable-length
    32/64-bit integers, string lengths and counts. Used by the Bedrock
    Edition network protocol.

Tags, names and End markers are identical across variants; only the byte
regions carrying numbers and lengths differ.

# Encoding values

Types describe their own shape by implementing Marshaler. The methods of the
Encoder argument mirror the shapes the format can represent; anything else
(unsigned integers, lists of unknown length, nil values outside of a struct
field) fails with an UnsupportedTypeError.

	type Position struct {
		X, Y, Z int32
	}

	func (p *Position) MarshalNBT(enc nbt.Encoder) error {
		s, err := enc.EncodeStruct("Position")
		if err != nil {
			return err
		}
		if err := s.EncodeField("x", nbt.Int(p.X)); err != nil {
			return err
		}
		...
		return s.End()
	}

A struct field whose value is nil is omitted from the output entirely; this
is how optional fields are expressed.

Documents without a static schema can be built from the Value types: Byte,
Short, Int, Long, Float, Double, String, ByteArray, List and Compound. The
decoder returns these same types.

# Document roots

A document opens with a single (Compound, name) header, written when the
encoder reaches the first struct or compound. A struct root names the
document after itself; a Compound root is always unnamed. Unmarshal accepts
both.
*/
package nbt
