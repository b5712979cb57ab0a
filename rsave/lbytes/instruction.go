package lbytes

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ExecuteInstructions create the final value t with type T by
//
//   - Reading the instruction into a map, then
//   - Create JSON bytes from the map, and finally
//   - Read the JSON bytes into t
//
// In order to lessen the burden of manual mapping.
func ExecuteInstructions[T any](instructions []Instruction) (*T, error) {
	tMap := map[string]any{}
	for _, instruction := range instructions {
		value, err := instruction.ReadFunction()
		if err != nil {
			err := errors.Wrapf(err, `ExecuteInstructions error reading key "%v"`, instruction.Key)
			return nil, err
		}
		tMap[instruction.Key] = value
	}
	tBytes, err := json.Marshal(tMap)
	if err != nil {
		err := errors.Wrapf(err, `ExecuteInstructions error marshalling map "%v" to JSON`, tMap)
		return nil, err
	}

	var t T
	if err := json.Unmarshal(tBytes, &t); err != nil {
		err := errors.Wrapf(
			err, `ExecuteInstructions error unmarshalling bytes "%s" to type "%T"`,
			string(tBytes), t,
		)
		return nil, err
	}

	return &t, nil
}

func CreateConstReadFunction(value any) ReadFunction {
	return func() (any, error) {
		return value, nil
	}
}

func CreateIntReadFunction(reader *Reader, kind Kind) ReadFunction {
	return func() (any, error) {
		return reader.ReadKind(kind)
	}
}

func CreateIntArrayReadFunction(reader *Reader, kind Kind, n int) ReadFunction {
	return func() (any, error) {
		values := make([]int64, 0, n)
		for i := 0; i < n; i++ {
			value, err := reader.ReadKind(kind)
			if err != nil {
				return nil, errors.Wrapf(err, "array element %d", i)
			}
			values = append(values, value)
		}
		return values, nil
	}
}

func CreateStringReadFunction(reader *Reader, max int) ReadFunction {
	return func() (any, error) {
		return reader.ReadString(max)
	}
}

// ReadKind reads one integer of the given kind, widened to int64.
func (b *Reader) ReadKind(kind Kind) (int64, error) {
	switch kind {
	case KindU8:
		v, err := b.ReadU8()
		return int64(v), err
	case KindS8:
		v, err := b.ReadS8()
		return int64(v), err
	case KindU16:
		v, err := b.ReadU16()
		return int64(v), err
	case KindS16:
		v, err := b.ReadS16()
		return int64(v), err
	case KindU32:
		v, err := b.ReadU32()
		return int64(v), err
	case KindS32:
		v, err := b.ReadS32()
		return int64(v), err
	}
	return 0, errors.Errorf(`ReadKind error: "%s" is not an integer kind`, kind)
}

// WriteKind writes value truncated to the width of kind.
func (w *Writer) WriteKind(kind Kind, value int64) error {
	switch kind {
	case KindU8, KindS8:
		w.WriteU8(uint8(value))
	case KindU16, KindS16:
		w.WriteU16(uint16(value))
	case KindU32, KindS32:
		w.WriteU32(uint32(value))
	default:
		return errors.Errorf(`WriteKind error: "%s" is not an integer kind`, kind)
	}
	return nil
}
