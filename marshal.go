package nbt

import (
	"bytes"
	"io"
)

// Marshal encodes v with the given variant and returns the encoded document.
func Marshal(v Marshaler, variant Variant) ([]byte, error) {
	var buf bytes.Buffer

	if err := MarshalTo(&buf, v, variant); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// MarshalTo encodes v with the given variant into w. The sink is append-only:
// on error, bytes written before the failure are left in place and the whole
// output must be discarded by the caller.
func MarshalTo(w io.Writer, v Marshaler, variant Variant) error {
	if v == nil {
		return &UnsupportedTypeError{Kind: "nil value"}
	}

	return v.MarshalNBT(newEncoder(w, variant))
}

// MarshalBigEndian encodes v in the layout used by Java Edition.
func MarshalBigEndian(v Marshaler) ([]byte, error) {
	return Marshal(v, BigEndian)
}

// MarshalLittleEndian encodes v in the layout used by Bedrock Edition on
// disk.
func MarshalLittleEndian(v Marshaler) ([]byte, error) {
	return Marshal(v, LittleEndian)
}

// MarshalNetwork encodes v in the layout used by the Bedrock Edition network
// protocol.
func MarshalNetwork(v Marshaler) ([]byte, error) {
	return Marshal(v, NetworkLittleEndian)
}
