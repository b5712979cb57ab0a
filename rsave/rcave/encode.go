package rcave

import (
	"github.com/pkg/errors"

	"roguesave/rsave/lbytes"
	"roguesave/rsave/rversion"
)

// Encode writes the cave in the layout Decode reads. Derived bits are
// never written.
func Encode(writer *lbytes.Writer, gate rversion.Gate, cave *Cave) error {
	if err := lbytes.EncodeSchema(writer, gate, HeaderSchema, cave.Header); err != nil {
		return errors.Wrap(err, "rcave.Encode error writing header")
	}
	planes := []struct {
		name string
		kind lbytes.Kind
		get  func(i int) int64
	}{
		{"cave_info", lbytes.KindU8, func(i int) int64 {
			y, x := cell(i)
			return int64(cave.Info[y][x] &^ CaveDerived)
		}},
		{"play_info", lbytes.KindU8, func(i int) int64 {
			y, x := cell(i)
			return int64(cave.Play[y][x])
		}},
		{"feat", FeatKind(gate), func(i int) int64 {
			y, x := cell(i)
			return int64(cave.Feat[y][x])
		}},
	}
	for _, plane := range planes {
		if err := EncodeRLE(writer, plane.kind, CellCount, plane.get); err != nil {
			return errors.Wrapf(err, "rcave.Encode error writing %s", plane.name)
		}
	}
	if gate.OlderThan(rversion.V060) {
		return nil
	}

	err := EncodeRLE(
		writer, lbytes.KindU8, BlockCount,
		func(i int) int64 {
			by, bx := block(i)
			return int64(cave.RoomIdx[by][bx])
		},
	)
	if err != nil {
		return errors.Wrap(err, "rcave.Encode error writing room_idx")
	}
	writer.WriteU16(uint16(len(cave.Rooms)))
	for i, room := range cave.Rooms {
		if err := lbytes.EncodeSchema(writer, gate, RoomSchema, room); err != nil {
			return errors.Wrapf(err, "rcave.Encode error writing room %d", i)
		}
	}
	return nil
}
