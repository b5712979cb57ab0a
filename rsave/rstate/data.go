package rstate

import (
	"roguesave/rsave/lbytes"
	"roguesave/rsave/rcave"
	"roguesave/rsave/rheader"
	"roguesave/rsave/rindex"
	"roguesave/rsave/rinfo"
	"roguesave/rsave/rlore"
	"roguesave/rsave/rmonster"
	"roguesave/rsave/robject"
	"roguesave/rsave/rplayer"
	"roguesave/rsave/rquest"
	"roguesave/rsave/rrand"
	"roguesave/rsave/rregion"
	"roguesave/rsave/rstore"
	"roguesave/rsave/rversion"
)

const OptionWords = 8

type (
	Options struct {
		DelayFactor  int                 `json:"delay_factor"`
		HitpointWarn int                 `json:"hitpoint_warn"`
		Cheat        int                 `json:"cheat"`
		Flag         [OptionWords]uint32 `json:"flag"`
		Mask         [OptionWords]uint32 `json:"mask"`
		WindowFlag   [OptionWords]uint32 `json:"window_flag"`
		WindowMask   [OptionWords]uint32 `json:"window_mask"`
	}
	Message struct {
		Text string `json:"text"`
		Type int    `json:"type"`
	}

	// GameState is everything one savefile holds. It owns a private copy
	// of the edit tables, so census counters and artifact names of one
	// load never reach another.
	GameState struct {
		Version rversion.Version `json:"version"`
		Info    rheader.Info     `json:"info"`
		RNG     rrand.State      `json:"rng"`
		Options Options          `json:"options"`

		Messages []Message `json:"messages"`
		Tips     []int     `json:"tips"`

		MonsterLore  []rlore.MonsterLore  `json:"monster_lore"`
		KindLore     []rlore.KindLore     `json:"kind_lore"`
		Quests       []rquest.Quest       `json:"quests"`
		RandartSeed  uint32               `json:"randart_seed"`
		ArtifactLore []rlore.ArtifactLore `json:"artifact_lore"`
		EgoLore      []rlore.EgoLore      `json:"ego_lore"`
		Player       rplayer.Player       `json:"player"`
		FlavorLore   []rlore.FlavorLore   `json:"flavor_lore"`

		// Inventory is indexed by slot; pack slots come first, then the
		// equipment.
		Inventory []robject.Object `json:"inventory"`
		Bags      [][]int          `json:"bags"`
		MaxDepths []int            `json:"max_depths"`
		Stores    []rstore.Store   `json:"stores"`

		// Cave is nil when the savefile holds no level.
		Cave         *rcave.Cave                     `json:"cave"`
		Objects      *rindex.Arena[robject.Object]   `json:"-"`
		Monsters     *rindex.Arena[rmonster.Monster] `json:"-"`
		Regions      *rindex.Arena[rregion.Region]   `json:"-"`
		RegionPieces *rindex.Arena[rregion.Piece]    `json:"-"`

		Tables *rinfo.Tables `json:"-"`

		CharacterLoaded  bool     `json:"character_loaded"`
		CharacterDungeon bool     `json:"character_dungeon"`
		Warnings         []string `json:"warnings"`
	}
)

var OptionsSchema = lbytes.Schema{
	{Key: "delay_factor", Kind: lbytes.KindU8},
	{Key: "hitpoint_warn", Kind: lbytes.KindU8},
	{Key: "cheat", Kind: lbytes.KindU16},
	{Key: "flag", Kind: lbytes.KindU32, Len: OptionWords},
	{Key: "mask", Kind: lbytes.KindU32, Len: OptionWords},
	{Key: "window_flag", Kind: lbytes.KindU32, Len: OptionWords},
	{Key: "window_mask", Kind: lbytes.KindU32, Len: OptionWords},
}

// MessageTextMax bounds a message line, terminator included.
const MessageTextMax = 128
