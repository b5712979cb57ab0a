package rheader

import (
	"roguesave/rsave/lbytes"
	"roguesave/rsave/rversion"
)

type (
	// Prefix is the unscrambled start of every savefile.
	Prefix struct {
		Major uint8
		Minor uint8
		Patch uint8
		Extra uint8
	}
	// Info follows the prefix and is the first scrambled record.
	Info struct {
		OS    uint32 `json:"os"`
		When  uint32 `json:"when"`
		Lives uint16 `json:"lives"`
		Saves uint16 `json:"saves"`
	}
)

const PrefixSize = 4

var InfoSchema = lbytes.Schema{
	{Key: "os", Kind: lbytes.KindU32},
	{Key: "when", Kind: lbytes.KindU32},
	{Key: "lives", Kind: lbytes.KindU16},
	{Key: "saves", Kind: lbytes.KindU16},
	{Key: "spare_1", Kind: lbytes.KindU32},
	{Key: "spare_2", Kind: lbytes.KindU32},
}

func (p Prefix) Version() rversion.Version {
	return rversion.Version{
		Major: p.Major,
		Minor: p.Minor,
		Patch: p.Patch,
		Extra: p.Extra,
	}
}
