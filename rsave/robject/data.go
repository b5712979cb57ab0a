package robject

import (
	"roguesave/rsave/lbytes"
	"roguesave/rsave/rindex"
	"roguesave/rsave/rversion"
)

type (
	// Object is one item, wherever it lies: in the pack, a store, on the
	// floor or carried by a monster.
	Object struct {
		KIdx     int `json:"k_idx"`
		Iy       int `json:"iy"`
		Ix       int `json:"ix"`
		Tval     int `json:"tval"`
		Sval     int `json:"sval"`
		Pval     int `json:"pval"`
		Discount int `json:"discount"`
		Number   int `json:"number"`
		Weight   int `json:"weight"`
		Name1    int `json:"name1"`
		Name2    int `json:"name2"`
		Timeout  int `json:"timeout"`
		ToH      int `json:"to_h"`
		ToD      int `json:"to_d"`
		ToA      int `json:"to_a"`
		AC       int `json:"ac"`
		DD       int `json:"dd"`
		DS       int `json:"ds"`
		Ident    int `json:"ident"`
		Marked   int `json:"marked"`
		Feeling  int `json:"feeling"`
		// CanFlags, MayFlags and NotFlags record what the player knows the
		// object does, might do and does not do.
		CanFlags    [FlagWords]uint32 `json:"can_flags"`
		MayFlags    [FlagWords]uint32 `json:"may_flags"`
		NotFlags    [FlagWords]uint32 `json:"not_flags"`
		HeldMIdx    rindex.Ref        `json:"held_m_idx"`
		Xtra1       int               `json:"xtra1"`
		Xtra2       int               `json:"xtra2"`
		Inscription string            `json:"inscription"`

		NextOIdx rindex.Ref `json:"-"`
	}
)

const (
	FlagWords       = 4
	legacyFlagWords = 3
	InscriptionMax  = 80
)

// Item classes the decoder needs to tell apart.
const (
	TvSkeleton  = 1
	TvJunk      = 3
	TvShot      = 16
	TvArrow     = 17
	TvBolt      = 18
	TvBow       = 19
	TvDigging   = 20
	TvHafted    = 21
	TvPolearm   = 22
	TvSword     = 23
	TvBoots     = 30
	TvGloves    = 31
	TvHelm      = 32
	TvCrown     = 33
	TvShield    = 34
	TvCloak     = 35
	TvSoftArmor = 36
	TvHardArmor = 37
	TvDragArmor = 38
	TvLite      = 39
	TvAmulet    = 40
	TvRing      = 45
	TvStaff     = 55
	TvWand      = 65
	TvRod       = 66
	TvScroll    = 70
	TvPotion    = 75
	TvFlask     = 77
	TvFood      = 80
	TvMagicBook = 90
	TvGold      = 100
	TvBag       = 101
)

var Schema = lbytes.Schema{
	{Key: "k_idx", Kind: lbytes.KindS16},
	{Key: "iy", Kind: lbytes.KindU8},
	{Key: "ix", Kind: lbytes.KindU8},
	{Key: "tval", Kind: lbytes.KindU8},
	{Key: "sval", Kind: lbytes.KindU8},
	{Key: "pval", Kind: lbytes.KindS16},
	{Key: "discount", Kind: lbytes.KindU8},
	{Key: "number", Kind: lbytes.KindU8},
	{Key: "weight", Kind: lbytes.KindS16},
	{Key: "name1", Kind: lbytes.KindU8},
	{Key: "name2", Kind: lbytes.KindU8},
	{Key: "timeout", Kind: lbytes.KindS16},
	{Key: "to_h", Kind: lbytes.KindS16},
	{Key: "to_d", Kind: lbytes.KindS16},
	{Key: "to_a", Kind: lbytes.KindS16},
	{Key: "ac", Kind: lbytes.KindS16},
	{Key: "dd", Kind: lbytes.KindU8},
	{Key: "ds", Kind: lbytes.KindU8},
	{Key: "ident", Kind: lbytes.KindU16},
	{Key: "marked", Kind: lbytes.KindU8},
	{Key: "feeling", Kind: lbytes.KindU8, Since: rversion.V052},
	{Key: "can_flags", Kind: lbytes.KindU32, Len: legacyFlagWords, Until: rversion.V053},
	{Key: "can_flags", Kind: lbytes.KindU32, Len: FlagWords, Since: rversion.V053},
	{Key: "may_flags", Kind: lbytes.KindU32, Len: legacyFlagWords, Until: rversion.V053},
	{Key: "may_flags", Kind: lbytes.KindU32, Len: FlagWords, Since: rversion.V053},
	{Key: "not_flags", Kind: lbytes.KindU32, Len: legacyFlagWords, Until: rversion.V053},
	{Key: "not_flags", Kind: lbytes.KindU32, Len: FlagWords, Since: rversion.V053},
	{Key: "held_m_idx", Kind: lbytes.KindS16},
	{Key: "xtra1", Kind: lbytes.KindU8},
	{Key: "xtra2", Kind: lbytes.KindU8},
	{Key: "inscription", Kind: lbytes.KindString, Len: InscriptionMax},
}
