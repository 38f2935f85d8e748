package nbt

import (
	"io"

	"github.com/cockroachdb/errors"

	"github.com/chaisql/nbt/internal/wire"
)

// encoder is the wire implementation of the Encoder surface. It owns the
// output sink for the duration of one encode and is never shared between
// encodes. Writes go through a reused scratch buffer; every method flushes
// the buffer before returning, so nested container handles can reuse it
// safely.
type encoder struct {
	unsupported

	w       io.Writer
	variant Variant
	buf     []byte

	// rootWritten is set once the (Compound, name) document header has
	// been emitted by the first struct or compound the encoder reaches.
	rootWritten bool
}

func newEncoder(w io.Writer, variant Variant) *encoder {
	return &encoder{w: w, variant: variant}
}

func (e *encoder) write(p []byte) error {
	_, err := e.w.Write(p)
	return err
}

func (e *encoder) writeByte(b byte) error {
	e.buf = append(e.buf[:0], b)
	return e.write(e.buf)
}

func (e *encoder) writeCount(n int32) error {
	e.buf = wire.AppendCount(e.buf[:0], e.variant, n)
	return e.write(e.buf)
}

func (e *encoder) EncodeBool(v bool) error {
	if v {
		return e.writeByte(1)
	}

	return e.writeByte(0)
}

func (e *encoder) EncodeInt8(v int8) error {
	return e.writeByte(byte(v))
}

func (e *encoder) EncodeInt16(v int16) error {
	e.buf = wire.AppendInt16(e.buf[:0], e.variant, v)
	return e.write(e.buf)
}

func (e *encoder) EncodeInt32(v int32) error {
	e.buf = wire.AppendInt32(e.buf[:0], e.variant, v)
	return e.write(e.buf)
}

func (e *encoder) EncodeInt64(v int64) error {
	e.buf = wire.AppendInt64(e.buf[:0], e.variant, v)
	return e.write(e.buf)
}

func (e *encoder) EncodeFloat32(v float32) error {
	e.buf = wire.AppendFloat32(e.buf[:0], e.variant, v)
	return e.write(e.buf)
}

func (e *encoder) EncodeFloat64(v float64) error {
	e.buf = wire.AppendFloat64(e.buf[:0], e.variant, v)
	return e.write(e.buf)
}

func (e *encoder) EncodeString(v string) error {
	if int64(len(v)) > e.variant.MaxStringLen() {
		return errors.Newf("string of %d bytes overflows the %s length field", len(v), e.variant)
	}

	e.buf = wire.AppendString(e.buf[:0], e.variant, v)
	return e.write(e.buf)
}

func (e *encoder) EncodeByteArray(v []byte) error {
	if len(v) > wire.MaxCount {
		return errors.Newf("byte array of %d bytes overflows the count field", len(v))
	}

	if err := e.writeCount(int32(len(v))); err != nil {
		return err
	}

	return e.write(v)
}

func (e *encoder) EncodeList(length int) (ListEncoder, error) {
	if err := checkListLength(length); err != nil {
		return nil, err
	}

	return &listEncoder{enc: e, declared: length}, nil
}

func (e *encoder) EncodeCompound() (CompoundEncoder, error) {
	if err := e.writeRootHeader(""); err != nil {
		return nil, err
	}

	return &compoundEncoder{enc: e}, nil
}

func (e *encoder) EncodeStruct(name string) (StructEncoder, error) {
	if err := e.writeRootHeader(name); err != nil {
		return nil, err
	}

	return &structEncoder{compoundEncoder{enc: e}}, nil
}

// writeRootHeader writes the single (Compound, name) pair that opens a
// document. Only the first struct or compound the encoder reaches is the
// document root; nested ones are plain payloads.
func (e *encoder) writeRootHeader(name string) error {
	if e.rootWritten {
		return nil
	}
	e.rootWritten = true

	if err := e.writeByte(byte(TagCompound)); err != nil {
		return err
	}

	return e.EncodeString(name)
}

// checkListLength is shared by the wire encoder and the tag probe so both
// reject the same lengths.
func checkListLength(length int) error {
	if length < 0 {
		return &UnsupportedTypeError{Kind: "list of unknown length"}
	}
	if length > wire.MaxCount {
		return errors.Newf("list of %d elements overflows the count field", length)
	}

	return nil
}

// unsupported implements the rejected part of the Encoder surface. It is
// embedded by both the wire encoder and the tag probe so the two dispatchers
// cannot drift apart.
type unsupported struct{}

func (unsupported) EncodeUint8(uint8) error   { return &UnsupportedTypeError{Kind: "uint8"} }
func (unsupported) EncodeUint16(uint16) error { return &UnsupportedTypeError{Kind: "uint16"} }
func (unsupported) EncodeUint32(uint32) error { return &UnsupportedTypeError{Kind: "uint32"} }
func (unsupported) EncodeUint64(uint64) error { return &UnsupportedTypeError{Kind: "uint64"} }

// listEncoder defers the (element tag, count) pair until the first element
// reveals its shape through the probe.
type listEncoder struct {
	enc      *encoder
	declared int
	count    int
	started  bool
}

func (l *listEncoder) EncodeElement(v Marshaler) error {
	if v == nil {
		return &UnsupportedTypeError{Kind: "nil list element"}
	}

	if !l.started {
		l.started = true

		if err := l.enc.probeTag(v); err != nil {
			return err
		}
		if err := l.enc.writeCount(int32(l.declared)); err != nil {
			return err
		}
	}

	l.count++

	// Elements carry no per-element tag, name or separator.
	return v.MarshalNBT(l.enc)
}

func (l *listEncoder) End() error {
	if !l.started {
		if l.declared != 0 {
			return errors.Newf("list declared %d elements, encoded 0", l.declared)
		}

		// An empty list still carries its (tag, count) pair; End is the
		// conventional element tag when there are no elements to name one.
		if err := l.enc.writeByte(byte(TagEnd)); err != nil {
			return err
		}

		return l.enc.writeCount(0)
	}

	if l.count != l.declared {
		return errors.Newf("list declared %d elements, encoded %d", l.declared, l.count)
	}

	return nil
}

type compoundEncoder struct {
	enc *encoder
}

func (c *compoundEncoder) EncodeEntry(name string, v Marshaler) error {
	if v == nil {
		return &UnsupportedTypeError{Kind: "nil compound entry"}
	}

	return c.encodeNamed(name, v)
}

// encodeNamed writes one (tag, name, payload) triple. The tag byte precedes
// the name but the generic traversal only reveals a value's shape while
// consuming it, so the probe runs a separate traversal over v that stops
// after the tag.
func (c *compoundEncoder) encodeNamed(name string, v Marshaler) error {
	if err := c.enc.probeTag(v); err != nil {
		return err
	}
	if err := c.enc.EncodeString(name); err != nil {
		return err
	}

	return v.MarshalNBT(c.enc)
}

func (c *compoundEncoder) End() error {
	return c.enc.writeByte(byte(TagEnd))
}

type structEncoder struct {
	compoundEncoder
}

// EncodeField writes one named field. A nil value marks an absent optional
// field: nothing is written for it, not even the name.
func (s *structEncoder) EncodeField(name string, v Marshaler) error {
	if v == nil {
		return nil
	}

	return s.encodeNamed(name, v)
}
