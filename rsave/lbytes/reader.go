package lbytes

import (
	"bytes"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

// ReadRawByte returns the next byte as stored and makes it the key for
// the byte after it. The savefile prefix is read this way so that the
// last prefix byte seeds the descrambler.
func (b *Reader) ReadRawByte() (byte, error) {
	raw, err := b.Reader.ReadByte()
	if err != nil {
		return 0, errors.Wrap(err, "ReadRawByte error")
	}
	b.key = raw
	return raw, nil
}

func (b *Reader) ReadByte() (byte, error) {
	raw, err := b.Reader.ReadByte()
	if err != nil {
		return 0, errors.Wrap(err, "ReadByte error")
	}
	decoded := raw ^ b.key
	b.key = raw
	b.vCheck += uint32(decoded)
	b.xCheck += uint32(raw)
	return decoded, nil
}

func (b *Reader) ReadU8() (uint8, error) {
	return b.ReadByte()
}

func (b *Reader) ReadS8() (int8, error) {
	v, err := b.ReadByte()
	return int8(v), err
}

func (b *Reader) ReadU16() (uint16, error) {
	lo, err := b.ReadByte()
	if err != nil {
		return 0, err
	}
	hi, err := b.ReadByte()
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

func (b *Reader) ReadS16() (int16, error) {
	v, err := b.ReadU16()
	return int16(v), err
}

func (b *Reader) ReadU32() (uint32, error) {
	result := uint32(0)
	for shift := 0; shift < 32; shift += 8 {
		v, err := b.ReadByte()
		if err != nil {
			return 0, err
		}
		result |= uint32(v) << shift
	}
	return result, nil
}

func (b *Reader) ReadS32() (int32, error) {
	v, err := b.ReadU32()
	return int32(v), err
}

// ReadString reads a NUL terminated Latin-1 string. Only the first
// max-1 bytes are kept; anything after them up to the terminator is
// consumed and dropped.
func (b *Reader) ReadString(max int) (string, error) {
	bs := make([]byte, 0, max)
	for {
		v, err := b.ReadByte()
		if err != nil {
			return "", errors.Wrap(err, "ReadString error")
		}
		if v == 0 {
			break
		}
		if len(bs) < max-1 {
			bs = append(bs, v)
		}
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(bs)
	if err != nil {
		return "", errors.Wrapf(err, `ReadString error decoding "%v"`, bs)
	}
	return string(decoded), nil
}

// Strip reads and drops n bytes. They still count towards the checksums.
func (b *Reader) Strip(n int) error {
	for i := 0; i < n; i++ {
		if _, err := b.ReadByte(); err != nil {
			return errors.Wrapf(err, "Strip error at byte %d of %d", i, n)
		}
	}
	return nil
}

func (b *Reader) Checksums() (uint32, uint32) {
	return b.vCheck, b.xCheck
}

func (b *Reader) ResetChecksums() {
	b.vCheck = 0
	b.xCheck = 0
}
