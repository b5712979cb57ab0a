package lbytes

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"roguesave/rsave/rversion"
)

func (f Field) Present(gate rversion.Gate) bool {
	if !f.Since.IsZero() && gate.OlderThan(f.Since) {
		return false
	}
	if !f.Until.IsZero() && !gate.OlderThan(f.Until) {
		return false
	}
	return true
}

// Present lists the fields carried by a stream of the gate's version.
func (s Schema) Present(gate rversion.Gate) Schema {
	return lo.Filter(
		s,
		func(field Field, _ int) bool {
			return field.Present(gate)
		},
	)
}

// Instructions turns the schema into read instructions for one record.
// Absent fields yield their Default without touching the stream.
func (s Schema) Instructions(reader *Reader, gate rversion.Gate) []Instruction {
	return lo.FilterMap(
		s,
		func(field Field, _ int) (Instruction, bool) {
			if !field.Present(gate) {
				if field.Default == nil {
					return Instruction{}, false
				}
				return Instruction{field.Key, CreateConstReadFunction(field.Default)}, true
			}
			switch {
			case field.Kind == KindString:
				return Instruction{field.Key, CreateStringReadFunction(reader, field.Len)}, true
			case field.Len > 0:
				return Instruction{field.Key, CreateIntArrayReadFunction(reader, field.Kind, field.Len)}, true
			default:
				return Instruction{field.Key, CreateIntReadFunction(reader, field.Kind)}, true
			}
		},
	)
}

func DecodeSchema[T any](reader *Reader, gate rversion.Gate, schema Schema) (*T, error) {
	t, err := ExecuteInstructions[T](schema.Instructions(reader, gate))
	if err != nil {
		return nil, errors.Wrap(err, "DecodeSchema error")
	}
	return t, nil
}

// EncodeSchema writes the fields of value that the gate's version
// carries, in schema order. Keys are matched against value's JSON
// encoding; missing keys are written as zero.
func EncodeSchema(writer *Writer, gate rversion.Gate, schema Schema, value any) error {
	valueBytes, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, `EncodeSchema error marshalling "%T"`, value)
	}
	decoder := json.NewDecoder(bytes.NewReader(valueBytes))
	decoder.UseNumber()
	valueMap := map[string]any{}
	if err := decoder.Decode(&valueMap); err != nil {
		return errors.Wrapf(err, `EncodeSchema error decoding "%s"`, string(valueBytes))
	}

	for _, field := range schema.Present(gate) {
		raw := valueMap[field.Key]
		switch {
		case field.Kind == KindString:
			s, _ := raw.(string)
			writer.WriteString(s)
		case field.Len > 0:
			items, _ := raw.([]any)
			for i := 0; i < field.Len; i++ {
				item := any(nil)
				if i < len(items) {
					item = items[i]
				}
				if err := writer.WriteKind(field.Kind, toInt64(item)); err != nil {
					return errors.Wrapf(err, `EncodeSchema error writing "%s[%d]"`, field.Key, i)
				}
			}
		default:
			if err := writer.WriteKind(field.Kind, toInt64(raw)); err != nil {
				return errors.Wrapf(err, `EncodeSchema error writing "%s"`, field.Key)
			}
		}
	}
	return nil
}

func toInt64(value any) int64 {
	switch v := value.(type) {
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			f, _ := v.Float64()
			return int64(f)
		}
		return i
	case bool:
		if v {
			return 1
		}
		return 0
	}
	return 0
}
