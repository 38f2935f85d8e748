package nbt

import (
	"github.com/cockroachdb/errors"

	"github.com/chaisql/nbt/internal/wire"
)

// ErrUnexpectedEnd is returned by Unmarshal when the input ends in the
// middle of a value.
var ErrUnexpectedEnd = wire.ErrUnexpectedEnd

// UnsupportedTypeError is returned when a value uses a shape the NBT format
// cannot represent, such as an unsigned integer, a list of unknown length,
// or a nil value outside of a struct field.
type UnsupportedTypeError struct {
	Kind string
}

func (e *UnsupportedTypeError) Error() string {
	return "nbt: cannot encode " + e.Kind
}

// IsUnsupportedType reports whether err was caused by a value shape the
// format cannot represent.
func IsUnsupportedType(err error) bool {
	var target *UnsupportedTypeError
	return errors.As(err, &target)
}
