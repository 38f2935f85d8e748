package nbt

import (
	"math"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
)

// ParseJSON builds a Value tree from a JSON document. Objects become
// Compounds, arrays Lists, strings Strings and booleans Bytes. Integral
// numbers that fit in 32 bits become Ints, larger ones Longs, everything
// else Doubles.
//
// The format has no null: a null object member is treated as an absent
// optional field and dropped, while null anywhere else is an error.
func ParseJSON(data []byte) (Value, error) {
	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, err
	}

	return parseJSONValue(dataType, value)
}

func parseJSONValue(dataType jsonparser.ValueType, data []byte) (Value, error) {
	switch dataType {
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, err
		}
		return Bool(b), nil
	case jsonparser.Number:
		i, err := jsonparser.ParseInt(data)
		if err != nil {
			// if it doesn't parse as an int64, try as a floating point number
			f, err := jsonparser.ParseFloat(data)
			if err != nil {
				return nil, err
			}
			return Double(f), nil
		}
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return Int(i), nil
		}
		return Long(i), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case jsonparser.Array:
		list := List{}

		var cbErr error
		_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
			if cbErr != nil {
				return
			}
			if err != nil {
				cbErr = err
				return
			}

			v, err := parseJSONValue(dataType, value)
			if err != nil {
				cbErr = err
				return
			}

			list = append(list, v)
		})
		if err != nil {
			return nil, err
		}
		if cbErr != nil {
			return nil, cbErr
		}

		return list, nil
	case jsonparser.Object:
		m := Compound{}

		err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, offset int) error {
			if dataType == jsonparser.Null {
				// absent optional field
				return nil
			}

			v, err := parseJSONValue(dataType, value)
			if err != nil {
				return err
			}

			m[string(key)] = v
			return nil
		})
		if err != nil {
			return nil, err
		}

		return m, nil
	case jsonparser.Null:
		return nil, errors.New("the NBT format cannot represent null")
	}

	return nil, errors.Newf("unsupported JSON value type %s", dataType)
}
