package rsavetest

import (
	"roguesave/rsave/rcave"
	"roguesave/rsave/rheader"
	"roguesave/rsave/rlore"
	"roguesave/rsave/rmonster"
	"roguesave/rsave/robject"
	"roguesave/rsave/rplayer"
	"roguesave/rsave/rquest"
	"roguesave/rsave/rrand"
	"roguesave/rsave/rregion"
	"roguesave/rsave/rstate"
	"roguesave/rsave/rstore"
	"roguesave/rsave/rversion"
)

// Sizes of the default edit tables.
const (
	Races     = 9
	Kinds     = 21
	Artifacts = 6
	Egos      = 6
	Flavors   = 6
	Quests    = 3
)

// Feature indexes of the default edit tables.
const (
	FeatFloor   = 1
	FeatGranite = 2
	FeatLava    = 9
)

// Sample is a living character at the current version, standing in a
// small walled level with two monsters, a floor object, a held object
// and a region.
func Sample() Fixture {
	version := rversion.Current
	version.Extra = 0x5A

	rng := rrand.State{Place: 17}
	for i := range rng.Table {
		rng.Table[i] = uint32(i) * 2654435761
	}
	options := rstate.Options{DelayFactor: 4, HitpointWarn: 3}
	options.Flag[0] = 0x0F
	options.Mask[0] = 0xFF

	monsterLore := make([]rlore.MonsterLore, Races)
	monsterLore[1] = rlore.MonsterLore{Sights: 3, TKills: 1, TBlows: 2, TDamage: 5, MaxNum: 1, Flags: [6]uint32{0xFFFFFFFF}}
	monsterLore[7] = rlore.MonsterLore{Sights: 1, MaxNum: 1, Flags: [6]uint32{0, 0, 0, 0, 0, 0xFF}}
	kindLore := make([]rlore.KindLore, Kinds)
	kindLore[1] = rlore.KindLore{Flags: rlore.KindAware | rlore.KindEverSeen}
	kindLore[3] = rlore.KindLore{Flags: rlore.KindTried}
	artifactLore := make([]rlore.ArtifactLore, Artifacts)
	egoLore := make([]rlore.EgoLore, Egos)
	egoLore[5] = rlore.EgoLore{EverSeen: 1, Known: [4]uint32{1, 0, 0, 0}}
	flavorLore := make([]rlore.FlavorLore, Flavors)
	flavorLore[2] = rlore.FlavorLore{Aware: 1}

	player := rplayer.Player{
		Name: "Frodo", DiedFrom: "(alive and well)", History: "A hobbit of the Shire.",
		PRace: 3, PClass: 4, HitDie: 7, ExpFact: 110, Age: 50, Ht: 42, Wt: 60,
		StatMax: [rplayer.StatCount]int{12, 10, 14, 17, 13, 15},
		StatCur: [rplayer.StatCount]int{12, 10, 14, 17, 13, 15},
		Au:      310, MaxExp: 400, Exp: 390, Lev: 8, MHP: 48, CHP: 40, MaxLev: 8,
		Dungeon: 2, Depth: 5, Food: 5000, Turn: 52000, OldTurn: 51000,
		HP: []int{7, 12, 18, 23, 29, 35, 41, 48},
	}

	cave := &rcave.Cave{Header: rcave.Header{Depth: 5, Dungeon: 2, Py: 12, Px: 14, YMax: rcave.DungeonHgt, XMax: rcave.DungeonWid}}
	for y := 0; y < rcave.DungeonHgt; y++ {
		for x := 0; x < rcave.DungeonWid; x++ {
			if y == 0 || x == 0 || y == rcave.DungeonHgt-1 || x == rcave.DungeonWid-1 {
				cave.Feat[y][x] = FeatGranite
			} else {
				cave.Feat[y][x] = FeatFloor
			}
		}
	}
	cave.Feat[30][60] = FeatLava
	cave.Info[12][14] = rcave.CaveGlow | rcave.CaveRoom
	cave.Play[12][14] = rcave.PlaySeen
	cave.RoomIdx[1][1] = 1
	cave.Rooms = []rcave.Room{{Type: 2, Flags: 0x1, Section: [4]int{1, 2, 3, 4}}}

	return Fixture{
		Version:  version,
		Info:     rheader.Info{OS: 2, When: 1700000000, Lives: 1, Saves: 14},
		RNG:      rng,
		Options:  options,
		Messages: []rstate.Message{{Text: "Welcome to the Old Forest.", Type: 0}, {Text: "You feel something roll beneath your feet.", Type: 3}},
		Tips:     []int{4, 9},

		MonsterLore:  monsterLore,
		KindLore:     kindLore,
		Quests:       []rquest.Quest{{Stage: 1, Event: []rquest.Event{{Dungeon: 1, Level: 3, Race: 1, Number: 1, Experience: 50}}}, {}, {}},
		RandartSeed:  0xC0FFEE,
		ArtifactLore: artifactLore,
		EgoLore:      egoLore,
		Player:       player,
		FlavorLore:   flavorLore,

		Inventory: []Slotted{
			{Slot: 0, Object: robject.Object{KIdx: 1, Number: 3}},
			{Slot: 5, Object: robject.Object{KIdx: 3, Number: 2}},
			{Slot: 2, Object: robject.Object{}},
			{Slot: 24, Object: robject.Object{KIdx: 15, Number: 1, Name1: 1, Timeout: 500}},
			{Slot: 25, Object: robject.Object{KIdx: 6, Number: 1, ToH: 2, ToD: 3, DD: 1, DS: 4, Weight: 12}},
		},
		Bags:      [][]int{{1, 2, 0, 0}, {12, 0}},
		MaxDepths: []int{0, 7, 5},
		Stores: []rstore.Store{
			{StoreOpen: 100, Owner: 0, Stock: []robject.Object{{KIdx: 1, Number: 5}, {KIdx: 2, Number: 9}}},
			{StoreOpen: 200, Owner: 1, Stock: []robject.Object{{KIdx: 14, Number: 1, Weight: 65, AC: 5}}},
			{StoreOpen: 300, Owner: 0, Stock: []robject.Object{{KIdx: 3, Number: 4}}},
			{StoreOpen: 400, Owner: 0},
		},

		Cave: cave,
		Objects: []robject.Object{
			{KIdx: 6, Number: 1, Iy: 10, Ix: 10, Weight: 12, DD: 1, DS: 4},
			{KIdx: 12, Number: 20, HeldMIdx: 1},
			{KIdx: 1, Number: 1, Iy: 10, Ix: 10},
		},
		Monsters: []rmonster.Monster{
			{RIdx: 1, Fy: 12, Fx: 16, HP: 10, MaxHP: 10, MSpeed: 120},
			{RIdx: 6, Fy: 20, Fx: 30, HP: 40, MaxHP: 45, MSpeed: 110, CSleep: 50},
		},
		Regions: []rregion.Region{{Type: 1, Level: 5, Y0: 3, X0: 3, Y1: 3, X1: 4, Lifespan: 10}},
		RegionPieces: []rregion.Piece{
			{Y: 3, X: 3, Region: 1},
			{Y: 3, X: 4, Region: 1},
		},
	}
}

// Legacy is Sample written at the oldest readable version, with a
// ghost record and no data that version cannot hold.
func Legacy() Fixture {
	f := Sample()
	f.Version = rversion.Oldest
	f.Version.Extra = 0x21
	f.Tips = nil
	f.Player.MaxDepth = 9
	f.MaxDepths = nil
	f.Regions = nil
	f.RegionPieces = nil
	f.Cave.RoomIdx = [rcave.BlockRows][rcave.BlockCols]uint8{}
	f.Cave.Rooms = nil
	f.Ghost = "Grip"
	return f
}
