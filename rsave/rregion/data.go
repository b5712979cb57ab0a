package rregion

import (
	"roguesave/rsave/lbytes"
	"roguesave/rsave/rindex"
)

type (
	// Region is an ongoing spell or trap effect.
	Region struct {
		Type     int    `json:"type"`
		Level    int    `json:"level"`
		Effect   int    `json:"effect"`
		Who      int    `json:"who"`
		What     int    `json:"what"`
		Y0       int    `json:"y0"`
		X0       int    `json:"x0"`
		Y1       int    `json:"y1"`
		X1       int    `json:"x1"`
		Age      int    `json:"age"`
		Lifespan int    `json:"lifespan"`
		Flags    uint32 `json:"flags"`
		Damage   int    `json:"damage"`

		FirstPiece rindex.Ref `json:"-"`
	}
	// Piece is one grid cell a region covers.
	Piece struct {
		Y      int        `json:"y"`
		X      int        `json:"x"`
		Region rindex.Ref `json:"region"`
		D      int        `json:"d"`

		NextInRegion rindex.Ref `json:"-"`
		NextInGrid   rindex.Ref `json:"-"`
	}
)

var Schema = lbytes.Schema{
	{Key: "type", Kind: lbytes.KindS16},
	{Key: "level", Kind: lbytes.KindS16},
	{Key: "effect", Kind: lbytes.KindU16},
	{Key: "who", Kind: lbytes.KindS16},
	{Key: "what", Kind: lbytes.KindS16},
	{Key: "y0", Kind: lbytes.KindU8},
	{Key: "x0", Kind: lbytes.KindU8},
	{Key: "y1", Kind: lbytes.KindU8},
	{Key: "x1", Kind: lbytes.KindU8},
	{Key: "age", Kind: lbytes.KindS16},
	{Key: "lifespan", Kind: lbytes.KindS16},
	{Key: "flags", Kind: lbytes.KindU32},
	{Key: "damage", Kind: lbytes.KindS16},
}

var PieceSchema = lbytes.Schema{
	{Key: "y", Kind: lbytes.KindU8},
	{Key: "x", Kind: lbytes.KindU8},
	{Key: "region", Kind: lbytes.KindS16},
	{Key: "d", Kind: lbytes.KindS16},
}
