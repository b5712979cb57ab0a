package robject

import (
	"roguesave/rsave/lbytes"
	"roguesave/rsave/rversion"
)

func Encode(writer *lbytes.Writer, gate rversion.Gate, object Object) error {
	return lbytes.EncodeSchema(writer, gate, Schema, object)
}
