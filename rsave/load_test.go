package rsave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"roguesave/rsave/rcave"
	"roguesave/rsave/rerr"
	"roguesave/rsave/rindex"
	"roguesave/rsave/rinfo"
	"roguesave/rsave/rlink"
	"roguesave/rsave/robject"
	"roguesave/rsave/rsavetest"
	"roguesave/rsave/rstore"
	"roguesave/rsave/rversion"
)

type scriptedPrompter struct {
	answers  []bool
	messages []string
	asked    []string
}

func (p *scriptedPrompter) Message(text string) {
	p.messages = append(p.messages, text)
}

func (p *scriptedPrompter) Confirm(question string) bool {
	p.asked = append(p.asked, question)
	if len(p.asked) > len(p.answers) {
		return false
	}
	return p.answers[len(p.asked)-1]
}

type LoadTestSuite struct {
	suite.Suite
	tables *rinfo.Tables
}

func (s *LoadTestSuite) SetupSuite() {
	tables, err := rinfo.Default()
	s.Require().NoError(err)
	s.tables = tables
}

func (s *LoadTestSuite) load(fixture rsavetest.Fixture, config Config) error {
	_, err := Load(fixture.MustEncode(), s.tables, config)
	return err
}

func (s *LoadTestSuite) TestCurrent() {
	fixture := rsavetest.Sample()
	state, err := Load(fixture.MustEncode(), s.tables, DefaultConfig())
	s.Require().NoError(err)

	s.True(state.CharacterLoaded)
	s.True(state.CharacterDungeon)
	s.Equal(fixture.Version, state.Version)
	s.Equal(fixture.Info, state.Info)
	s.Equal(fixture.RNG, state.RNG)
	s.Equal(fixture.Options, state.Options)
	s.True(state.Options.IsSet(3))
	s.False(state.Options.IsSet(4))
	s.Equal(fixture.Messages, state.Messages)
	s.Equal([]int{4, 9}, state.Tips)
	s.Empty(state.Warnings)

	s.Equal(uint32(0x80000001), state.MonsterLore[1].Flags[0])
	s.Equal(uint32(0x4), state.MonsterLore[7].Flags[5])
	s.Equal(1, state.Tables.Races[7].MaxNum)
	s.True(state.KindLore[1].Aware())
	s.Len(state.Quests, 3)
	s.Len(state.Quests[0].Event, 1)

	s.Equal("Frodo", state.Player.Name)
	s.Equal(fixture.Player.HP, state.Player.HP)
	s.Equal(1, state.FlavorLore[2].Aware)

	s.Len(state.Inventory, s.tables.Limits.InvenTotal)
	s.Equal(robject.TvFood, state.Inventory[0].Tval)
	s.Equal(3, state.Inventory[0].Number)
	s.Equal(robject.TvPotion, state.Inventory[1].Tval)
	s.True(state.Inventory[2].IsEmpty())
	s.Equal(robject.TvLite, state.Inventory[24].Tval)
	s.Equal(1, state.Inventory[24].Name1)
	s.Equal(6, state.Inventory[25].KIdx)
	s.Equal(1, state.ArtifactLore[1].CurNum)

	s.Equal([][]int{{1, 2, 0, 0}, {12, 0}}, state.Bags)
	s.Equal([]int{0, 7, 5}, state.MaxDepths)

	s.Require().Len(state.Stores, 4)
	s.Equal("General Store", state.Stores[0].Name)
	s.Equal("Darg-Low the Grim", state.Stores[1].OwnerName)
	s.Len(state.Stores[0].Stock, 2)
	s.Empty(state.Stores[3].Stock)
}

func (s *LoadTestSuite) TestCurrentDungeon() {
	state, err := Load(rsavetest.Sample().MustEncode(), s.tables, DefaultConfig())
	s.Require().NoError(err)

	cave := state.Cave
	s.Require().NotNil(cave)
	s.Equal(5, cave.Depth)
	s.Equal(uint16(rsavetest.FeatLava), cave.Feat[30][60])
	s.NotZero(cave.Info[0][0] & rcave.CaveXLOS)
	s.NotZero(cave.Info[31][61] & rcave.CaveHalo)
	s.Zero(cave.Info[32][62] & rcave.CaveHalo)
	s.Equal([]rcave.Point{{Y: 30, X: 60}}, cave.Dyna)
	s.Len(cave.Rooms, 1)

	s.Equal(3, state.Objects.Len())
	s.Equal(2, state.Monsters.Len())
	s.Equal(1, state.Tables.Races[1].CurNum)
	s.Equal(1, state.Tables.Races[6].CurNum)
	s.Equal(rindex.Ref(1), cave.MIdx[12][16])
	s.Equal(rindex.Ref(2), cave.MIdx[20][30])
	s.Equal([]rindex.Ref{3, 1}, rlink.Chain(state.Objects, cave.OIdx[10][10], rlink.NextObject))
	s.Equal([]rindex.Ref{2}, rlink.Chain(state.Objects, state.Monsters.Get(1).HoldOIdx, rlink.NextObject))
	s.Equal([]rindex.Ref{2, 1}, rlink.Chain(state.RegionPieces, state.Regions.Get(1).FirstPiece, rlink.NextInRegion))
	s.Equal([]rindex.Ref{1}, rlink.Chain(state.RegionPieces, cave.PieceIdx[3][3], rlink.NextInGrid))
}

func (s *LoadTestSuite) TestLegacy() {
	fixture := rsavetest.Legacy()
	state, err := Load(fixture.MustEncode(), s.tables, DefaultConfig())
	s.Require().NoError(err)

	s.Empty(state.Tips)
	s.Equal([]int{9, 0, 0}, state.MaxDepths)
	s.Equal([][]int{{1, 2, 0, 0}, {12, 0}}, state.Bags)
	s.Equal(1, state.MonsterLore[1].TBlows)
	s.Empty(state.Quests[0].Event)
	s.Equal(uint16(rsavetest.FeatLava), state.Cave.Feat[30][60])
	s.Empty(state.Cave.Rooms)
	s.Equal(0, state.Regions.Len())
	s.True(state.CharacterDungeon)
}

func (s *LoadTestSuite) TestLegacyWithoutGhost() {
	fixture := rsavetest.Legacy()
	fixture.Ghost = ""
	s.NoError(s.load(fixture, DefaultConfig()))
}

func (s *LoadTestSuite) TestEveryVersionReads() {
	versions := []rversion.Version{
		rversion.V051, rversion.V052, rversion.V053, rversion.V054,
		rversion.V060, rversion.V061, rversion.V062, rversion.V063,
	}
	for _, version := range versions {
		fixture := rsavetest.Sample()
		if version.OlderThan(rversion.V060) {
			fixture = rsavetest.Legacy()
		}
		fixture.Version = version
		if version.OlderThan(rversion.V061) {
			fixture.Tips = nil
		}
		state, err := Load(fixture.MustEncode(), s.tables, DefaultConfig())
		s.Require().NoError(err, version.String())
		s.Equal("Frodo", state.Player.Name, version.String())
		s.Equal(uint16(rsavetest.FeatLava), state.Cave.Feat[30][60], version.String())
	}
}

func (s *LoadTestSuite) TestVersionRange() {
	fixture := rsavetest.Sample()
	fixture.Version = rversion.Version{Major: 0, Minor: 4, Patch: 9}
	var tooOld rerr.ErrFormatTooOld
	s.ErrorAs(s.load(fixture, DefaultConfig()), &tooOld)

	fixture.Version = rversion.Version{Major: 0, Minor: 6, Patch: 6}
	var tooNew rerr.ErrFormatTooNew
	s.ErrorAs(s.load(fixture, DefaultConfig()), &tooNew)
}

func (s *LoadTestSuite) TestDeadCharacter() {
	fixture := rsavetest.Sample()
	fixture.Player.IsDead = 1
	fixture.Player.DiedFrom = "Grip, Farmer Maggot's Dog"
	state, err := Load(fixture.MustEncode(), s.tables, DefaultConfig())
	s.Require().NoError(err)

	s.True(state.CharacterLoaded)
	s.False(state.CharacterDungeon)
	s.Nil(state.Cave)
	s.Empty(state.Stores)
	s.Empty(state.FlavorLore)
	s.Equal(robject.TvFood, state.Inventory[0].Tval)
}

func (s *LoadTestSuite) TestCapacityChecks() {
	tests := map[string]struct {
		corrupt func(f *rsavetest.Fixture, limits *rinfo.Limits)
		stage   string
		field   string
	}{
		"messages": {
			corrupt: func(f *rsavetest.Fixture, limits *rinfo.Limits) { limits.MessageMax = 1 },
			stage:   StageMessages, field: "count",
		},
		"tips": {
			corrupt: func(f *rsavetest.Fixture, limits *rinfo.Limits) { limits.TipMax = 1 },
			stage:   StageTips, field: "count",
		},
		"quests": {
			corrupt: func(f *rsavetest.Fixture, limits *rinfo.Limits) { f.Quests = append(f.Quests, f.Quests...) },
			stage:   StageQuests, field: "count",
		},
		"quest events": {
			corrupt: func(f *rsavetest.Fixture, limits *rinfo.Limits) { limits.QuestEventMax = 0 },
			stage:   StageQuests, field: "events",
		},
		"hit points": {
			corrupt: func(f *rsavetest.Fixture, limits *rinfo.Limits) { limits.PlayerMaxLevel = 5 },
			stage:   StagePlayer, field: "hp_count",
		},
		"equipment slot": {
			corrupt: func(f *rsavetest.Fixture, limits *rinfo.Limits) {
				f.Inventory = append(f.Inventory, rsavetest.Slotted{Slot: 40, Object: robject.Object{KIdx: 1}})
			},
			stage: StageInventory, field: "slot",
		},
		"pack": {
			corrupt: func(f *rsavetest.Fixture, limits *rinfo.Limits) { limits.PackMax = 1 },
			stage:   StageInventory, field: "pack",
		},
		"bag slots": {
			corrupt: func(f *rsavetest.Fixture, limits *rinfo.Limits) { f.Bags[1] = []int{1, 2, 3} },
			stage:   StageBags, field: "slots",
		},
		"monster lore": {
			corrupt: func(f *rsavetest.Fixture, limits *rinfo.Limits) {
				f.MonsterLore = append(f.MonsterLore, f.MonsterLore[0])
			},
			stage: StageMonsterLore, field: "count",
		},
	}
	for name, test := range tests {
		fixture := rsavetest.Sample()
		tables := s.tables.Clone()
		test.corrupt(&fixture, &tables.Limits)

		_, err := Load(fixture.MustEncode(), tables, DefaultConfig())
		var malformed rerr.ErrMalformedField
		s.Require().ErrorAs(err, &malformed, name)
		s.Equal(test.stage, malformed.Stage, name)
		s.Equal(test.field, malformed.Field, name)
		s.Contains(err.Error(), test.stage+" stage", name)
	}
}

func (s *LoadTestSuite) TestStoreOverflow() {
	fixture := rsavetest.Sample()
	extra := rstore.Store{StoreOpen: 999, Stock: []robject.Object{{KIdx: 2, Number: 1}}}
	fixture.Stores = append(fixture.Stores, extra)

	state, err := Load(fixture.MustEncode(), s.tables, DefaultConfig())
	s.Require().NoError(err)
	s.Len(state.Stores, 4)
	s.Require().Len(state.Warnings, 1)
	s.Contains(state.Warnings[0], "declares 5 stores")
	s.True(state.CharacterDungeon)
}

func (s *LoadTestSuite) TestStockOverflow() {
	fixture := rsavetest.Sample()
	stock := make([]robject.Object, 30)
	for i := range stock {
		stock[i] = robject.Object{KIdx: 1, Number: 1}
	}
	fixture.Stores[0].Stock = stock

	state, err := Load(fixture.MustEncode(), s.tables, DefaultConfig())
	s.Require().NoError(err)
	s.Len(state.Stores[0].Stock, 24)
	s.Require().Len(state.Warnings, 1)
	s.Contains(state.Warnings[0], "store 0 declares 30 items")
}

func TestLoadTestSuite(t *testing.T) {
	suite.Run(t, new(LoadTestSuite))
}

func TestLoad_NoTables(t *testing.T) {
	_, err := Load(rsavetest.Sample().MustEncode(), nil, DefaultConfig())
	assert.Error(t, err)
}

func TestLoad_LeavesTablesAlone(t *testing.T) {
	tables, err := rinfo.Default()
	require.NoError(t, err)
	pristine := tables.Clone()

	first, err := Load(rsavetest.Sample().MustEncode(), tables, DefaultConfig())
	require.NoError(t, err)
	second, err := Load(rsavetest.Sample().MustEncode(), tables, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, pristine, tables)
	assert.Equal(t, 1, first.Tables.Races[1].CurNum)
	assert.Equal(t, 1, second.Tables.Races[1].CurNum)
	assert.NotEqual(t, tables.Artifacts[4].Name, first.Tables.Artifacts[4].Name)
	assert.Equal(t, first.Tables.Artifacts[4].Name, second.Tables.Artifacts[4].Name)
}

func TestFixBags(t *testing.T) {
	bags := []rinfo.Bag{{Name: "a", Slots: 3}, {Name: "b", Slots: 1}, {Name: "c", Slots: 2}}
	tests := map[string]struct {
		flat     []int
		expected [][]int
	}{
		"full":    {[]int{1, 2, 3, 4, 5, 6}, [][]int{{1, 2, 3}, {4}, {5, 6}}},
		"short":   {[]int{1, 2, 3, 4}, [][]int{{1, 2, 3}, {4}, {0, 0}}},
		"partial": {[]int{1, 2}, [][]int{{1, 2, 0}, {0}, {0, 0}}},
		"empty":   {nil, [][]int{{0, 0, 0}, {0}, {0, 0}}},
	}
	for name, test := range tests {
		assert.Equal(t, test.expected, fixBags(test.flat, bags), name)
	}
}
