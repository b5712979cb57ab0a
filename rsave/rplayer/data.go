package rplayer

import (
	"roguesave/rsave/lbytes"
	"roguesave/rsave/rversion"
)

type (
	// Player is the "player extra" record: everything about the character
	// that is not its inventory.
	Player struct {
		Name     string         `json:"name"`
		DiedFrom string         `json:"died_from"`
		History  string         `json:"history"`
		PRace    int            `json:"prace"`
		PClass   int            `json:"pclass"`
		PSex     int            `json:"psex"`
		HitDie   int            `json:"hitdie"`
		ExpFact  int            `json:"expfact"`
		Age      int            `json:"age"`
		Ht       int            `json:"ht"`
		Wt       int            `json:"wt"`
		StatMax  [StatCount]int `json:"stat_max"`
		StatCur  [StatCount]int `json:"stat_cur"`
		Au       int            `json:"au"`
		MaxExp   int            `json:"max_exp"`
		Exp      int            `json:"exp"`
		ExpFrac  int            `json:"exp_frac"`
		Lev      int            `json:"lev"`
		MHP      int            `json:"mhp"`
		CHP      int            `json:"chp"`
		CHPFrac  int            `json:"chp_frac"`
		MSP      int            `json:"msp"`
		CSP      int            `json:"csp"`
		CSPFrac  int            `json:"csp_frac"`
		MaxLev   int            `json:"max_lev"`

		// MaxDepth is only stored by saves older than 0.6.0; newer saves
		// keep a table of depths per dungeon instead.
		MaxDepth   int             `json:"max_depth"`
		Dungeon    int             `json:"dungeon"`
		Depth      int             `json:"depth"`
		Timers     [TimerCount]int `json:"timers"`
		Food       int             `json:"food"`
		Energy     int             `json:"energy"`
		WordRecall int             `json:"word_recall"`
		IsDead     int             `json:"is_dead"`
		Feeling    int             `json:"feeling"`
		Turn       uint32          `json:"turn"`
		OldTurn    uint32          `json:"old_turn"`

		HP     []int  `json:"hp"`
		Spells Spells `json:"spells"`

		// Leaving is set when the character must be placed on a fresh
		// level, as after a dungeon was discarded.
		Leaving bool `json:"leaving"`
	}
	Spells struct {
		Learned   [2]uint32          `json:"spell_learned"`
		Worked    [2]uint32          `json:"spell_worked"`
		Forgotten [2]uint32          `json:"spell_forgotten"`
		Order     [SpellOrderLen]int `json:"spell_order"`
	}
)

const (
	StatCount     = 6
	TimerCount    = 18
	SpellOrderLen = 64
	NameMax       = 32
	DiedFromMax   = 80
	HistoryMax    = 240
)

var Schema = lbytes.Schema{
	{Key: "name", Kind: lbytes.KindString, Len: NameMax},
	{Key: "died_from", Kind: lbytes.KindString, Len: DiedFromMax},
	{Key: "history", Kind: lbytes.KindString, Len: HistoryMax},
	{Key: "prace", Kind: lbytes.KindU8},
	{Key: "pclass", Kind: lbytes.KindU8},
	{Key: "psex", Kind: lbytes.KindU8},
	{Key: "hitdie", Kind: lbytes.KindU8},
	{Key: "expfact", Kind: lbytes.KindU16},
	{Key: "age", Kind: lbytes.KindS16},
	{Key: "ht", Kind: lbytes.KindS16},
	{Key: "wt", Kind: lbytes.KindS16},
	{Key: "stat_max", Kind: lbytes.KindS16, Len: StatCount},
	{Key: "stat_cur", Kind: lbytes.KindS16, Len: StatCount},
	{Key: "au", Kind: lbytes.KindS32},
	{Key: "max_exp", Kind: lbytes.KindS32},
	{Key: "exp", Kind: lbytes.KindS32},
	{Key: "exp_frac", Kind: lbytes.KindU16},
	{Key: "lev", Kind: lbytes.KindS16},
	{Key: "mhp", Kind: lbytes.KindS16},
	{Key: "chp", Kind: lbytes.KindS16},
	{Key: "chp_frac", Kind: lbytes.KindU16},
	{Key: "msp", Kind: lbytes.KindS16},
	{Key: "csp", Kind: lbytes.KindS16},
	{Key: "csp_frac", Kind: lbytes.KindU16},
	{Key: "max_lev", Kind: lbytes.KindS16},
	{Key: "max_depth", Kind: lbytes.KindS16, Until: rversion.V060},
	{Key: "dungeon", Kind: lbytes.KindU8, Since: rversion.V060},
	{Key: "depth", Kind: lbytes.KindS16},
	{Key: "timers", Kind: lbytes.KindS16, Len: 12, Until: rversion.V061},
	{Key: "timers", Kind: lbytes.KindS16, Len: 16, Since: rversion.V061, Until: rversion.V064},
	{Key: "timers", Kind: lbytes.KindS16, Len: TimerCount, Since: rversion.V064},
	{Key: "food", Kind: lbytes.KindS16},
	{Key: "energy", Kind: lbytes.KindS16},
	{Key: "word_recall", Kind: lbytes.KindS16},
	{Key: "is_dead", Kind: lbytes.KindU8},
	{Key: "feeling", Kind: lbytes.KindS16},
	{Key: "turn", Kind: lbytes.KindU32},
	{Key: "old_turn", Kind: lbytes.KindU32},
}

var SpellSchema = lbytes.Schema{
	{Key: "spell_learned", Kind: lbytes.KindU32, Len: 2},
	{Key: "spell_worked", Kind: lbytes.KindU32, Len: 2},
	{Key: "spell_forgotten", Kind: lbytes.KindU32, Len: 2},
	{Key: "spell_order", Kind: lbytes.KindU8, Len: SpellOrderLen},
}
