package lbytes

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

func (w *Writer) WriteRawByte(v byte) {
	w.buf.WriteByte(v)
	w.key = v
}

func (w *Writer) WriteByte(v byte) error {
	encoded := v ^ w.key
	w.key = encoded
	w.vCheck += uint32(v)
	w.xCheck += uint32(encoded)
	return w.buf.WriteByte(encoded)
}

func (w *Writer) WriteU8(v uint8) {
	_ = w.WriteByte(v)
}

func (w *Writer) WriteS8(v int8) {
	w.WriteU8(uint8(v))
}

func (w *Writer) WriteU16(v uint16) {
	w.WriteU8(uint8(v))
	w.WriteU8(uint8(v >> 8))
}

func (w *Writer) WriteS16(v int16) {
	w.WriteU16(uint16(v))
}

func (w *Writer) WriteU32(v uint32) {
	for shift := 0; shift < 32; shift += 8 {
		w.WriteU8(uint8(v >> shift))
	}
}

func (w *Writer) WriteS32(v int32) {
	w.WriteU32(uint32(v))
}

// WriteString writes s as Latin-1 followed by a NUL. Runes outside
// Latin-1 are replaced.
func (w *Writer) WriteString(s string) {
	encoder := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	bs, err := encoder.Bytes([]byte(s))
	if err != nil {
		bs = []byte(s)
	}
	for _, b := range bs {
		w.WriteU8(b)
	}
	w.WriteU8(0)
}

func (w *Writer) Checksums() (uint32, uint32) {
	return w.vCheck, w.xCheck
}

func (w *Writer) ResetChecksums() {
	w.vCheck = 0
	w.xCheck = 0
}
