package rregion

import (
	"github.com/pkg/errors"

	"roguesave/rsave/lbytes"
	"roguesave/rsave/rversion"
)

func Decode(reader *lbytes.Reader, gate rversion.Gate) (*Region, error) {
	region, err := lbytes.DecodeSchema[Region](reader, gate, Schema)
	if err != nil {
		return nil, errors.Wrap(err, "rregion.Decode error")
	}
	return region, nil
}

// DecodePiece reads a piece. Its region is checked by the linker.
func DecodePiece(reader *lbytes.Reader, gate rversion.Gate) (*Piece, error) {
	piece, err := lbytes.DecodeSchema[Piece](reader, gate, PieceSchema)
	if err != nil {
		return nil, errors.Wrap(err, "rregion.DecodePiece error")
	}
	return piece, nil
}

func Encode(writer *lbytes.Writer, gate rversion.Gate, region Region) error {
	return lbytes.EncodeSchema(writer, gate, Schema, region)
}

func EncodePiece(writer *lbytes.Writer, gate rversion.Gate, piece Piece) error {
	return lbytes.EncodeSchema(writer, gate, PieceSchema, piece)
}
