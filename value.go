package nbt

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Value is a dynamically typed NBT value, usable when the document has no
// static schema. Unmarshal returns trees of these types.
type Value interface {
	Marshaler

	value()
}

type (
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	String    string
	ByteArray []byte
	List      []Value
	Compound  map[string]Value
)

// Bool returns the Byte representation of b. The format has no dedicated
// boolean tag; booleans are bytes 0 and 1.
func Bool(b bool) Byte {
	if b {
		return 1
	}

	return 0
}

func (v Byte) MarshalNBT(enc Encoder) error      { return enc.EncodeInt8(int8(v)) }
func (v Short) MarshalNBT(enc Encoder) error     { return enc.EncodeInt16(int16(v)) }
func (v Int) MarshalNBT(enc Encoder) error       { return enc.EncodeInt32(int32(v)) }
func (v Long) MarshalNBT(enc Encoder) error      { return enc.EncodeInt64(int64(v)) }
func (v Float) MarshalNBT(enc Encoder) error     { return enc.EncodeFloat32(float32(v)) }
func (v Double) MarshalNBT(enc Encoder) error    { return enc.EncodeFloat64(float64(v)) }
func (v String) MarshalNBT(enc Encoder) error    { return enc.EncodeString(string(v)) }
func (v ByteArray) MarshalNBT(enc Encoder) error { return enc.EncodeByteArray(v) }

func (v List) MarshalNBT(enc Encoder) error {
	l, err := enc.EncodeList(len(v))
	if err != nil {
		return err
	}

	for _, el := range v {
		if err := l.EncodeElement(el); err != nil {
			return err
		}
	}

	return l.End()
}

// MarshalNBT encodes the compound's entries in sorted key order so that the
// same tree always produces the same bytes.
func (v Compound) MarshalNBT(enc Encoder) error {
	c, err := enc.EncodeCompound()
	if err != nil {
		return err
	}

	keys := maps.Keys(v)
	slices.Sort(keys)

	for _, k := range keys {
		if err := c.EncodeEntry(k, v[k]); err != nil {
			return err
		}
	}

	return c.End()
}

func (Byte) value()      {}
func (Short) value()     {}
func (Int) value()       {}
func (Long) value()      {}
func (Float) value()     {}
func (Double) value()    {}
func (String) value()    {}
func (ByteArray) value() {}
func (List) value()      {}
func (Compound) value()  {}
