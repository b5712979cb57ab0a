package rquest

import (
	"roguesave/rsave/lbytes"
)

type (
	Quest struct {
		Stage  int     `json:"stage"`
		Flags  int     `json:"flags"`
		Events int     `json:"events"`
		Event  []Event `json:"event"`
	}
	// Event is the progress of one quest stage: what must happen, where,
	// and what it pays.
	Event struct {
		Flags      uint32 `json:"flags"`
		Dungeon    int    `json:"dungeon"`
		Level      int    `json:"level"`
		Room       int    `json:"room"`
		Action     int    `json:"action"`
		Feat       int    `json:"feat"`
		Store      int    `json:"store"`
		Race       int    `json:"race"`
		Kind       int    `json:"kind"`
		Number     int    `json:"number"`
		Artifact   int    `json:"artifact"`
		Ego        int    `json:"ego"`
		Power      int    `json:"power"`
		Experience int    `json:"experience"`
		Gold       int    `json:"gold"`
	}
)

var Schema = lbytes.Schema{
	{Key: "stage", Kind: lbytes.KindU8},
	{Key: "flags", Kind: lbytes.KindU8},
	{Key: "events", Kind: lbytes.KindU8},
}

var EventSchema = lbytes.Schema{
	{Key: "flags", Kind: lbytes.KindU32},
	{Key: "dungeon", Kind: lbytes.KindU8},
	{Key: "level", Kind: lbytes.KindU8},
	{Key: "room", Kind: lbytes.KindU8},
	{Key: "action", Kind: lbytes.KindU8},
	{Key: "feat", Kind: lbytes.KindU16},
	{Key: "store", Kind: lbytes.KindU8},
	{Key: "race", Kind: lbytes.KindU16},
	{Key: "kind", Kind: lbytes.KindU16},
	{Key: "number", Kind: lbytes.KindU16},
	{Key: "artifact", Kind: lbytes.KindU8},
	{Key: "ego", Kind: lbytes.KindU8},
	{Key: "power", Kind: lbytes.KindU8},
	{Key: "experience", Kind: lbytes.KindS32},
	{Key: "gold", Kind: lbytes.KindS32},
}
