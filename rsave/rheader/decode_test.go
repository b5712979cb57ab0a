package rheader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roguesave/rsave/lbytes"
	"roguesave/rsave/rerr"
	"roguesave/rsave/rversion"
)

func TestDecode(t *testing.T) {
	version := rversion.Version{Major: 0, Minor: 6, Patch: 2, Extra: 0xA7}
	writer := lbytes.NewWriter()
	Encode(writer, version)
	info := Info{OS: 2, When: 1700000000, Lives: 1, Saves: 31}
	require.NoError(t, EncodeInfo(writer, version, info))

	reader := lbytes.NewBytesReader(writer.Bytes())
	decoded, err := Decode(reader)
	require.NoError(t, err)
	assert.Equal(t, version, *decoded)

	decodedInfo, err := DecodeInfo(reader, *decoded)
	require.NoError(t, err)
	assert.Equal(t, info, *decodedInfo)

	rv, rx := reader.Checksums()
	wv, wx := writer.Checksums()
	assert.Equal(t, wv, rv)
	assert.Equal(t, wx, rx)
}

func TestPeek(t *testing.T) {
	prefix, err := Peek([]byte{0, 6, 4, 200, 99})
	require.NoError(t, err)
	assert.Equal(t, rversion.Version{Major: 0, Minor: 6, Patch: 4, Extra: 200}, prefix.Version())

	_, err = Peek([]byte{0, 6})
	assert.Error(t, err)
}

func TestCheckRange(t *testing.T) {
	tests := map[string]struct {
		version rversion.Version
		err     error
	}{
		"oldest":            {rversion.Version{Major: 0, Minor: 5, Patch: 0, Extra: 255}, nil},
		"current":           {rversion.Version{Major: 0, Minor: 6, Patch: 4, Extra: 0}, nil},
		"one patch ahead":   {rversion.Version{Major: 0, Minor: 6, Patch: 5, Extra: 17}, nil},
		"too old":           {rversion.Version{Major: 0, Minor: 4, Patch: 9, Extra: 255}, rerr.ErrFormatTooOld{}},
		"two patches ahead": {rversion.Version{Major: 0, Minor: 6, Patch: 6, Extra: 0}, rerr.ErrFormatTooNew{}},
		"next minor":        {rversion.Version{Major: 0, Minor: 7, Patch: 0, Extra: 0}, rerr.ErrFormatTooNew{}},
	}
	for name, test := range tests {
		err := CheckRange(test.version)
		if test.err == nil {
			assert.NoError(t, err, name)
			continue
		}
		assert.IsType(t, test.err, err, name)
	}
}

func TestDecode_RejectsBeforeBody(t *testing.T) {
	reader := lbytes.NewBytesReader([]byte{0, 3, 0, 0})
	_, err := Decode(reader)
	assert.IsType(t, rerr.ErrFormatTooOld{}, err)
}
