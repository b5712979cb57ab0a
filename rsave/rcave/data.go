package rcave

import (
	"roguesave/rsave/lbytes"
	"roguesave/rsave/rindex"
)

const (
	DungeonHgt = 66
	DungeonWid = 198
	BlockHgt   = 11
	BlockWid   = 11
	BlockRows  = DungeonHgt / BlockHgt
	BlockCols  = DungeonWid / BlockWid
	CellCount  = DungeonHgt * DungeonWid
	BlockCount = BlockRows * BlockCols
)

// Stored cave_info bits.
const (
	CaveGlow uint8 = 1 << iota
	CaveRoom
	CaveIcky
	CaveMark
	CaveSeen
	// Derived bits, recomputed from the feature table after every load.
	CaveXLOS
	CaveXLOF
	CaveHalo

	CaveDerived = CaveXLOS | CaveXLOF | CaveHalo
)

// play_info bits.
const (
	PlayMark uint8 = 1 << iota
	PlaySeen
	PlayView
	PlayLite
	PlayTemp
)

type (
	Header struct {
		Depth   int `json:"depth"`
		Dungeon int `json:"dungeon"`
		Py      int `json:"py"`
		Px      int `json:"px"`
		YMax    int `json:"ymax"`
		XMax    int `json:"xmax"`
	}
	Room struct {
		Type    int    `json:"type"`
		Flags   uint32 `json:"flags"`
		Section [4]int `json:"section"`
	}
	Point struct {
		Y int `json:"y"`
		X int `json:"x"`
	}

	// Cave is one decoded level. The planes are indexed [y][x].
	Cave struct {
		Header

		Info    [DungeonHgt][DungeonWid]uint8  `json:"-"`
		Play    [DungeonHgt][DungeonWid]uint8  `json:"-"`
		Feat    [DungeonHgt][DungeonWid]uint16 `json:"-"`
		RoomIdx [BlockRows][BlockCols]uint8    `json:"-"`
		Rooms   []Room                         `json:"rooms"`

		// Heads of the per-cell chains, filled by the linker.
		OIdx     [DungeonHgt][DungeonWid]rindex.Ref `json:"-"`
		MIdx     [DungeonHgt][DungeonWid]rindex.Ref `json:"-"`
		PieceIdx [DungeonHgt][DungeonWid]rindex.Ref `json:"-"`

		// Dyna lists the cells with dynamic terrain. When it overflows,
		// DynaFull is set and every cell has to be scanned instead.
		Dyna     []Point `json:"dyna"`
		DynaFull bool    `json:"dyna_full"`
	}
)

var HeaderSchema = lbytes.Schema{
	{Key: "depth", Kind: lbytes.KindS16},
	{Key: "dungeon", Kind: lbytes.KindS16},
	{Key: "py", Kind: lbytes.KindS16},
	{Key: "px", Kind: lbytes.KindS16},
	{Key: "ymax", Kind: lbytes.KindS16},
	{Key: "xmax", Kind: lbytes.KindS16},
	{Key: "spare", Kind: lbytes.KindU16},
}

var RoomSchema = lbytes.Schema{
	{Key: "type", Kind: lbytes.KindU8},
	{Key: "flags", Kind: lbytes.KindU32},
	{Key: "section", Kind: lbytes.KindS16, Len: 4},
}
