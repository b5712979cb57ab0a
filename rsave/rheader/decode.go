package rheader

import (
	"encoding/binary"

	"github.com/go-restruct/restruct"
	"github.com/pkg/errors"

	"roguesave/rsave/lbytes"
	"roguesave/rsave/rerr"
	"roguesave/rsave/rversion"
)

// Peek unpacks the prefix without touching a descrambler, for callers
// that only want to know what a file claims to be.
func Peek(bs []byte) (*Prefix, error) {
	if len(bs) < PrefixSize {
		return nil, errors.Errorf("Peek error: need %d bytes, got %d", PrefixSize, len(bs))
	}
	prefix := Prefix{}
	if err := restruct.Unpack(bs[:PrefixSize], binary.LittleEndian, &prefix); err != nil {
		return nil, errors.Wrap(err, "Peek error")
	}
	return &prefix, nil
}

// Decode reads the prefix through the reader, which leaves the
// descrambling key at the seed byte, then clears the checksums.
func Decode(reader *lbytes.Reader) (*rversion.Version, error) {
	prefixBytes := make([]byte, 0, PrefixSize)
	for i := 0; i < PrefixSize; i++ {
		b, err := reader.ReadRawByte()
		if err != nil {
			return nil, errors.Wrap(err, "rheader.Decode error")
		}
		prefixBytes = append(prefixBytes, b)
	}
	reader.ResetChecksums()

	prefix, err := Peek(prefixBytes)
	if err != nil {
		return nil, err
	}
	version := prefix.Version()
	if err := CheckRange(version); err != nil {
		return nil, err
	}
	return &version, nil
}

// CheckRange accepts Oldest <= v <= Current with one extra patch level.
// The seed byte takes no part in the check.
func CheckRange(version rversion.Version) error {
	release := version.Release()
	if release.OlderThan(rversion.Oldest) {
		return rerr.ErrFormatTooOld{Version: version, Oldest: rversion.Oldest}
	}
	newest := rversion.Current.Release()
	newest.Patch++
	if newest.OlderThan(release) {
		return rerr.ErrFormatTooNew{Version: version, Newest: newest}
	}
	return nil
}

func DecodeInfo(reader *lbytes.Reader, gate rversion.Gate) (*Info, error) {
	info, err := lbytes.DecodeSchema[Info](reader, gate, InfoSchema)
	if err != nil {
		return nil, errors.Wrap(err, "rheader.DecodeInfo error")
	}
	return info, nil
}
