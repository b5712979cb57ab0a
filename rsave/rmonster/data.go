package rmonster

import (
	"roguesave/rsave/lbytes"
	"roguesave/rsave/rindex"
	"roguesave/rsave/rversion"
)

type Monster struct {
	RIdx     int    `json:"r_idx"`
	Fy       int    `json:"fy"`
	Fx       int    `json:"fx"`
	HP       int    `json:"hp"`
	MaxHP    int    `json:"maxhp"`
	CSleep   int    `json:"csleep"`
	MSpeed   int    `json:"mspeed"`
	Energy   int    `json:"energy"`
	Stunned  int    `json:"stunned"`
	Confused int    `json:"confused"`
	MonFear  int    `json:"monfear"`
	Slowed   int    `json:"slowed"`
	Hasted   int    `json:"hasted"`
	Blind    int    `json:"blind"`
	Cut      int    `json:"cut"`
	Poisoned int    `json:"poisoned"`
	MFlag    uint32 `json:"mflag"`
	Smart    uint32 `json:"smart"`

	// HoldOIdx heads the chain of objects the monster carries.
	HoldOIdx rindex.Ref `json:"-"`
}

// Status timers arrived a few at a time; each is gated on the release
// that introduced it.
var Schema = lbytes.Schema{
	{Key: "r_idx", Kind: lbytes.KindS16},
	{Key: "fy", Kind: lbytes.KindU8},
	{Key: "fx", Kind: lbytes.KindU8},
	{Key: "hp", Kind: lbytes.KindS16},
	{Key: "maxhp", Kind: lbytes.KindS16},
	{Key: "csleep", Kind: lbytes.KindS16},
	{Key: "mspeed", Kind: lbytes.KindU8},
	{Key: "energy", Kind: lbytes.KindU8},
	{Key: "stunned", Kind: lbytes.KindU8},
	{Key: "confused", Kind: lbytes.KindU8},
	{Key: "monfear", Kind: lbytes.KindU8},
	{Key: "slowed", Kind: lbytes.KindU8, Since: rversion.V052},
	{Key: "hasted", Kind: lbytes.KindU8, Since: rversion.V052},
	{Key: "blind", Kind: lbytes.KindU8, Since: rversion.V061},
	{Key: "cut", Kind: lbytes.KindU8, Since: rversion.V061},
	{Key: "poisoned", Kind: lbytes.KindU8, Since: rversion.V061},
	{Key: "mflag", Kind: lbytes.KindU32},
	{Key: "smart", Kind: lbytes.KindU32, Since: rversion.V064},
}
