package lbytes

import (
	"bytes"

	"roguesave/rsave/rversion"
)

type (
	// Reader descrambles a savefile body one byte at a time. Every byte
	// is XORed with the previous raw byte, and both the decoded and the
	// raw byte are added to the running checksums.
	Reader struct {
		bytes.Reader
		key    byte
		vCheck uint32
		xCheck uint32
	}
	// Writer is the scrambling counterpart of Reader.
	Writer struct {
		buf    bytes.Buffer
		key    byte
		vCheck uint32
		xCheck uint32
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)

	Kind string
	// Field is one entry of a versioned record layout. The field is in
	// the stream for versions v with Since <= v < Until; a zero Since or
	// Until leaves that side open.
	Field struct {
		Key     string
		Kind    Kind
		Len     int
		Since   rversion.Version
		Until   rversion.Version
		Default any
	}
	Schema []Field
)

const (
	KindU8     = Kind("u8")
	KindS8     = Kind("s8")
	KindU16    = Kind("u16")
	KindS16    = Kind("s16")
	KindU32    = Kind("u32")
	KindS32    = Kind("s32")
	KindString = Kind("string")
)

// EndOfList terminates variable-length lists such as the inventory.
const EndOfList = 0xFFFF
