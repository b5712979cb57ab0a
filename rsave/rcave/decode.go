package rcave

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"roguesave/rsave/lbytes"
	"roguesave/rsave/rerr"
	"roguesave/rsave/rinfo"
	"roguesave/rsave/rversion"
)

const stage = "dungeon"

// Decode reads the level header, the three grid planes and, from 0.6.0,
// the room tables. Derived flags are stripped; call Derive to rebuild
// them.
func Decode(reader *lbytes.Reader, gate rversion.Gate, tables *rinfo.Tables) (*Cave, error) {
	header, err := lbytes.DecodeSchema[Header](reader, gate, HeaderSchema)
	if err != nil {
		return nil, errors.Wrap(err, "rcave.Decode error reading header")
	}
	if err := header.check(); err != nil {
		return nil, err
	}
	cave := &Cave{Header: *header}

	err = DecodeRLE(
		reader, lbytes.KindU8, CellCount,
		func(i int, value int64) error {
			y, x := cell(i)
			cave.Info[y][x] = uint8(value) &^ CaveDerived
			return nil
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "rcave.Decode error reading cave_info")
	}

	err = DecodeRLE(
		reader, lbytes.KindU8, CellCount,
		func(i int, value int64) error {
			y, x := cell(i)
			cave.Play[y][x] = uint8(value)
			return nil
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "rcave.Decode error reading play_info")
	}

	err = DecodeRLE(
		reader, FeatKind(gate), CellCount,
		func(i int, value int64) error {
			if value >= int64(len(tables.Features)) {
				return rerr.Malformed(stage, "feat", value, int64(len(tables.Features)-1))
			}
			y, x := cell(i)
			cave.Feat[y][x] = uint16(value)
			return nil
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "rcave.Decode error reading features")
	}

	if gate.OlderThan(rversion.V060) {
		glog.V(2).Infof("dungeon %d level %d read without rooms", cave.Dungeon, cave.Depth)
		return cave, nil
	}
	if err := cave.decodeRooms(reader, gate, tables.Limits.RoomMax); err != nil {
		return nil, err
	}
	return cave, nil
}

// FeatKind is the width of a feature value in the stream.
func FeatKind(gate rversion.Gate) lbytes.Kind {
	if gate.OlderThan(rversion.V063) {
		return lbytes.KindU8
	}
	return lbytes.KindU16
}

func (h Header) check() error {
	switch {
	case h.YMax < 1 || h.YMax > DungeonHgt:
		return rerr.Malformed(stage, "ymax", int64(h.YMax), DungeonHgt)
	case h.XMax < 1 || h.XMax > DungeonWid:
		return rerr.Malformed(stage, "xmax", int64(h.XMax), DungeonWid)
	case h.Py < 0 || h.Py >= h.YMax:
		return rerr.Malformed(stage, "py", int64(h.Py), int64(h.YMax-1))
	case h.Px < 0 || h.Px >= h.XMax:
		return rerr.Malformed(stage, "px", int64(h.Px), int64(h.XMax-1))
	}
	return nil
}

func (c *Cave) decodeRooms(reader *lbytes.Reader, gate rversion.Gate, roomMax int) error {
	err := DecodeRLE(
		reader, lbytes.KindU8, BlockCount,
		func(i int, value int64) error {
			if value > int64(roomMax) {
				return rerr.Malformed(stage, "room_idx", value, int64(roomMax))
			}
			by, bx := block(i)
			c.RoomIdx[by][bx] = uint8(value)
			return nil
		},
	)
	if err != nil {
		return errors.Wrap(err, "rcave.Decode error reading room_idx")
	}

	count, err := reader.ReadU16()
	if err != nil {
		return errors.Wrap(err, "rcave.Decode error reading room_count")
	}
	if int(count) > roomMax {
		return rerr.Malformed(stage, "room_count", int64(count), int64(roomMax))
	}
	c.Rooms = make([]Room, 0, count)
	for i := 0; i < int(count); i++ {
		room, err := lbytes.DecodeSchema[Room](reader, gate, RoomSchema)
		if err != nil {
			return errors.Wrapf(err, "rcave.Decode error reading room %d", i)
		}
		c.Rooms = append(c.Rooms, *room)
	}

	for _, row := range c.RoomIdx {
		for _, idx := range row {
			if int(idx) > len(c.Rooms) {
				return rerr.Malformed(stage, "room_idx", int64(idx), int64(len(c.Rooms)))
			}
		}
	}
	return nil
}
