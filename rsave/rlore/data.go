package rlore

import (
	"roguesave/rsave/lbytes"
	"roguesave/rsave/rversion"
)

type (
	// MonsterLore is what the player has learnt about one race.
	MonsterLore struct {
		Sights     int       `json:"sights"`
		Deaths     int       `json:"deaths"`
		PKills     int       `json:"pkills"`
		TKills     int       `json:"tkills"`
		TBlows     int       `json:"tblows"`
		TDamage    int       `json:"tdamage"`
		Wake       int       `json:"wake"`
		Ignore     int       `json:"ignore"`
		Xtra1      int       `json:"xtra1"`
		Xtra2      int       `json:"xtra2"`
		DropGold   int       `json:"drop_gold"`
		DropItem   int       `json:"drop_item"`
		CastInnate int       `json:"cast_innate"`
		CastSpell  int       `json:"cast_spell"`
		Blows      [4]int    `json:"blows"`
		Flags      [6]uint32 `json:"flags"`
		MaxNum     int       `json:"max_num"`
	}
	KindLore struct {
		Flags int `json:"flags"`
	}
	ArtifactLore struct {
		CurNum int `json:"cur_num"`
	}
	EgoLore struct {
		EverSeen int       `json:"everseen"`
		Known    [4]uint32 `json:"known"`
	}
	FlavorLore struct {
		Aware int `json:"aware"`
	}
)

const (
	KindAware    = 0x01
	KindTried    = 0x02
	KindEverSeen = 0x04
)

var MonsterSchema = lbytes.Schema{
	{Key: "sights", Kind: lbytes.KindS16},
	{Key: "deaths", Kind: lbytes.KindS16},
	{Key: "pkills", Kind: lbytes.KindS16},
	{Key: "tkills", Kind: lbytes.KindS16},
	{Key: "tblows", Kind: lbytes.KindS16, Since: rversion.V051},
	{Key: "tdamage", Kind: lbytes.KindS16, Since: rversion.V051},
	{Key: "wake", Kind: lbytes.KindU8},
	{Key: "ignore", Kind: lbytes.KindU8},
	{Key: "xtra1", Kind: lbytes.KindU8},
	{Key: "xtra2", Kind: lbytes.KindU8},
	{Key: "drop_gold", Kind: lbytes.KindU8},
	{Key: "drop_item", Kind: lbytes.KindU8},
	{Key: "cast_innate", Kind: lbytes.KindU8},
	{Key: "cast_spell", Kind: lbytes.KindU8},
	{Key: "blows", Kind: lbytes.KindU8, Len: 4},
	{Key: "flags", Kind: lbytes.KindU32, Len: 6},
	{Key: "max_num", Kind: lbytes.KindU8},
	{Key: "spare", Kind: lbytes.KindU8, Len: 3},
}

var KindSchema = lbytes.Schema{
	{Key: "flags", Kind: lbytes.KindU8},
}

var ArtifactSchema = lbytes.Schema{
	{Key: "cur_num", Kind: lbytes.KindU8},
	{Key: "spare", Kind: lbytes.KindU8, Len: 3},
}

var EgoSchema = lbytes.Schema{
	{Key: "everseen", Kind: lbytes.KindU8},
	{Key: "known", Kind: lbytes.KindU32, Len: 4, Since: rversion.V060},
}

var FlavorSchema = lbytes.Schema{
	{Key: "aware", Kind: lbytes.KindU8},
}
