package rcave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roguesave/rsave/lbytes"
	"roguesave/rsave/rerr"
	"roguesave/rsave/rinfo"
	"roguesave/rsave/rversion"
)

const (
	featFloor     = 1
	featGranite   = 2
	featWater     = 7
	featLava      = 9
	featCrystal   = 10
	featDownStair = 12
)

func loadTables(t *testing.T) *rinfo.Tables {
	tables, err := rinfo.Default()
	require.NoError(t, err)
	return tables
}

func sampleCave() *Cave {
	cave := &Cave{Header: Header{Depth: 5, Dungeon: 2, Py: 10, Px: 20, YMax: DungeonHgt, XMax: DungeonWid}}
	for y := 0; y < DungeonHgt; y++ {
		for x := 0; x < DungeonWid; x++ {
			switch {
			case y == 0 || x == 0 || y == DungeonHgt-1 || x == DungeonWid-1:
				cave.Feat[y][x] = featGranite
			default:
				cave.Feat[y][x] = featFloor
				cave.Info[y][x] = CaveRoom
			}
		}
	}
	cave.Feat[30][40] = featDownStair
	cave.Play[10][20] = PlaySeen | PlayView
	cave.RoomIdx[1][2] = 1
	cave.Rooms = []Room{{Type: 3, Flags: 0x10, Section: [4]int{1, 2, 3, 4}}}
	return cave
}

func encodeCave(t *testing.T, gate rversion.Version, cave *Cave) []byte {
	writer := lbytes.NewWriter()
	require.NoError(t, Encode(writer, gate, cave))
	writer.WriteU8(0x99)
	return writer.Bytes()
}

func TestDecode_RoundTrip(t *testing.T) {
	tables := loadTables(t)
	for _, gate := range []rversion.Version{rversion.V054, rversion.V060, rversion.Current} {
		reader := lbytes.NewBytesReader(encodeCave(t, gate, sampleCave()))
		cave, err := Decode(reader, gate, tables)
		require.NoError(t, err, gate.String())
		tail, err := reader.ReadU8()
		require.NoError(t, err)
		assert.Equal(t, uint8(0x99), tail, gate.String())

		expected := sampleCave()
		if gate.OlderThan(rversion.V060) {
			expected.RoomIdx = [BlockRows][BlockCols]uint8{}
			expected.Rooms = nil
		}
		assert.Equal(t, expected.Header, cave.Header, gate.String())
		assert.Equal(t, expected.Feat, cave.Feat, gate.String())
		assert.Equal(t, expected.Info, cave.Info, gate.String())
		assert.Equal(t, expected.Play, cave.Play, gate.String())
		assert.Equal(t, expected.RoomIdx, cave.RoomIdx, gate.String())
		assert.Equal(t, expected.Rooms, cave.Rooms, gate.String())
	}
}

func TestDecode_StripsStoredDerivedBits(t *testing.T) {
	cave := sampleCave()
	writer := lbytes.NewWriter()
	require.NoError(t, lbytes.EncodeSchema(writer, rversion.Current, HeaderSchema, cave.Header))
	require.NoError(t, EncodeRLE(writer, lbytes.KindU8, CellCount, func(int) int64 { return int64(CaveGlow | CaveHalo | CaveXLOS) }))
	require.NoError(t, EncodeRLE(writer, lbytes.KindU8, CellCount, func(int) int64 { return 0 }))
	require.NoError(t, EncodeRLE(writer, lbytes.KindU8, CellCount, func(int) int64 { return featFloor }))

	decoded, err := Decode(lbytes.NewBytesReader(writer.Bytes()), rversion.V054, loadTables(t))
	require.NoError(t, err)
	assert.Equal(t, CaveGlow, decoded.Info[33][99])
}

func TestDecode_UnknownFeature(t *testing.T) {
	cave := sampleCave()
	cave.Feat[5][5] = 200

	_, err := Decode(lbytes.NewBytesReader(encodeCave(t, rversion.Current, cave)), rversion.Current, loadTables(t))
	var malformed rerr.ErrMalformedField
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "feat", malformed.Field)
	assert.Equal(t, int64(200), malformed.Value)
}

func TestDecode_BadHeader(t *testing.T) {
	tests := map[string]func(h *Header){
		"ymax": func(h *Header) { h.YMax = DungeonHgt + 1 },
		"xmax": func(h *Header) { h.XMax = 0 },
		"py":   func(h *Header) { h.Py = h.YMax },
		"px":   func(h *Header) { h.Px = -1 },
	}
	for field, corrupt := range tests {
		cave := sampleCave()
		corrupt(&cave.Header)
		_, err := Decode(lbytes.NewBytesReader(encodeCave(t, rversion.Current, cave)), rversion.Current, loadTables(t))
		var malformed rerr.ErrMalformedField
		require.ErrorAs(t, err, &malformed, field)
		assert.Equal(t, field, malformed.Field)
	}
}

func TestDecode_RoomIndexBeyondRooms(t *testing.T) {
	cave := sampleCave()
	cave.RoomIdx[0][0] = 2

	_, err := Decode(lbytes.NewBytesReader(encodeCave(t, rversion.Current, cave)), rversion.Current, loadTables(t))
	var malformed rerr.ErrMalformedField
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "room_idx", malformed.Field)
}

func TestDecode_FeatureWidthByVersion(t *testing.T) {
	assert.Equal(t, lbytes.KindU8, FeatKind(rversion.V062))
	assert.Equal(t, lbytes.KindU16, FeatKind(rversion.V063))
}
