package rheader

import (
	"roguesave/rsave/lbytes"
	"roguesave/rsave/rversion"
)

// Encode writes the prefix unscrambled, so the seed byte keys the rest
// of the file, and clears the writer's checksums.
func Encode(writer *lbytes.Writer, version rversion.Version) {
	writer.WriteRawByte(version.Major)
	writer.WriteRawByte(version.Minor)
	writer.WriteRawByte(version.Patch)
	writer.WriteRawByte(version.Extra)
	writer.ResetChecksums()
}

func EncodeInfo(writer *lbytes.Writer, gate rversion.Gate, info Info) error {
	return lbytes.EncodeSchema(writer, gate, InfoSchema, info)
}
