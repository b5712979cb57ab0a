package rmonster

import (
	"github.com/pkg/errors"

	"roguesave/rsave/lbytes"
	"roguesave/rsave/rversion"
)

// Decode reads one monster. The race is not checked here; whoever places
// the monster owns that check and the race census.
func Decode(reader *lbytes.Reader, gate rversion.Gate) (*Monster, error) {
	monster, err := lbytes.DecodeSchema[Monster](reader, gate, Schema)
	if err != nil {
		return nil, errors.Wrap(err, "rmonster.Decode error")
	}
	return monster, nil
}

func Encode(writer *lbytes.Writer, gate rversion.Gate, monster Monster) error {
	return lbytes.EncodeSchema(writer, gate, Schema, monster)
}
