package rrand

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"roguesave/rsave/lbytes"
	"roguesave/rsave/rinfo"
	"roguesave/rsave/rversion"
)

func Decode(reader *lbytes.Reader, gate rversion.Gate) (*State, error) {
	state, err := lbytes.DecodeSchema[State](reader, gate, Schema)
	if err != nil {
		return nil, errors.Wrap(err, "rrand.Decode error")
	}
	if int(state.Place) >= Degree {
		state.Place = 0
	}
	return state, nil
}

func Encode(writer *lbytes.Writer, gate rversion.Gate, state State) error {
	return lbytes.EncodeSchema(writer, gate, Schema, state)
}

func NewQuick(seed uint32) *Quick {
	return &Quick{Value: seed}
}

// Div returns a number in [0, m).
func (q *Quick) Div(m uint32) uint32 {
	if m <= 1 {
		return 0
	}
	q.Value = 1103515245*q.Value + 12345
	return (q.Value >> 4) % m
}

// ArtifactNames regenerates the names of the random artifacts from the
// seed, writing them into artifacts. Fixed artifacts keep their names.
// The same seed always gives the same names.
func ArtifactNames(seed uint32, artifacts []rinfo.Artifact) {
	quick := NewQuick(seed)
	for i := range artifacts {
		if !artifacts[i].Random {
			continue
		}
		artifacts[i].Name = "'" + makeName(quick) + "'"
	}
}

func makeName(quick *Quick) string {
	count := 2 + int(quick.Div(2))
	parts := lo.Times(
		count,
		func(_ int) string {
			return syllables[quick.Div(uint32(len(syllables)))]
		},
	)
	name := strings.Join(parts, "")
	return strings.ToUpper(name[:1]) + name[1:]
}
