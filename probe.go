package nbt

// tagProbe is the second implementation of the Encoder surface. It mirrors
// every shape the wire encoder accepts but writes only the value's tag byte,
// leaving the payload to the wire encoder's own traversal. It never recurses
// into containers: once the container tag is known there is nothing left to
// learn.
type tagProbe struct {
	unsupported

	enc *encoder
}

// probeTag runs a probing traversal over v to write its tag byte before the
// wire encoder consumes it for real. Both traversals observe the same value,
// so they agree on its shape by construction.
func (e *encoder) probeTag(v Marshaler) error {
	return v.MarshalNBT(&tagProbe{enc: e})
}

func (p *tagProbe) writeTag(t Tag) error {
	return p.enc.writeByte(byte(t))
}

func (p *tagProbe) EncodeBool(bool) error        { return p.writeTag(TagByte) }
func (p *tagProbe) EncodeInt8(int8) error        { return p.writeTag(TagByte) }
func (p *tagProbe) EncodeInt16(int16) error      { return p.writeTag(TagShort) }
func (p *tagProbe) EncodeInt32(int32) error      { return p.writeTag(TagInt) }
func (p *tagProbe) EncodeInt64(int64) error      { return p.writeTag(TagLong) }
func (p *tagProbe) EncodeFloat32(float32) error  { return p.writeTag(TagFloat) }
func (p *tagProbe) EncodeFloat64(float64) error  { return p.writeTag(TagDouble) }
func (p *tagProbe) EncodeString(string) error    { return p.writeTag(TagString) }
func (p *tagProbe) EncodeByteArray([]byte) error { return p.writeTag(TagByteArray) }

func (p *tagProbe) EncodeList(length int) (ListEncoder, error) {
	if err := checkListLength(length); err != nil {
		return nil, err
	}
	if err := p.writeTag(TagList); err != nil {
		return nil, err
	}

	return probeList{}, nil
}

func (p *tagProbe) EncodeCompound() (CompoundEncoder, error) {
	if err := p.writeTag(TagCompound); err != nil {
		return nil, err
	}

	return probeCompound{}, nil
}

func (p *tagProbe) EncodeStruct(string) (StructEncoder, error) {
	if err := p.writeTag(TagCompound); err != nil {
		return nil, err
	}

	return probeStruct{}, nil
}

// probeList, probeCompound and probeStruct swallow container contents during
// a probing traversal.

type probeList struct{}

func (probeList) EncodeElement(Marshaler) error { return nil }
func (probeList) End() error                    { return nil }

type probeCompound struct{}

func (probeCompound) EncodeEntry(string, Marshaler) error { return nil }
func (probeCompound) End() error                          { return nil }

type probeStruct struct{}

func (probeStruct) EncodeField(string, Marshaler) error { return nil }
func (probeStruct) End() error                          { return nil }
