package robject

import (
	"github.com/pkg/errors"

	"roguesave/rsave/lbytes"
	"roguesave/rsave/rerr"
	"roguesave/rsave/rinfo"
	"roguesave/rsave/rversion"
)

// Decode reads one object and repairs it against the edit tables.
func Decode(reader *lbytes.Reader, gate rversion.Gate, tables *rinfo.Tables) (*Object, error) {
	object, err := lbytes.DecodeSchema[Object](reader, gate, Schema)
	if err != nil {
		return nil, errors.Wrap(err, "robject.Decode error")
	}
	if err := object.Repair(tables); err != nil {
		return nil, err
	}
	return object, nil
}

// Repair makes the object agree with its kind. The stream's tval and
// sval are never trusted: they always come from the kind table.
func (o *Object) Repair(tables *rinfo.Tables) error {
	if o.KIdx < 0 || o.KIdx >= len(tables.Kinds) {
		return rerr.Malformed("object", "k_idx", int64(o.KIdx), int64(len(tables.Kinds)-1))
	}
	if replacedBy := tables.Kinds[o.KIdx].ReplacedBy; replacedBy != 0 {
		o.KIdx = replacedBy
	}
	if o.KIdx == 0 {
		o.Wipe()
		return nil
	}

	kind := tables.Kinds[o.KIdx]
	o.Tval = kind.Tval
	o.Sval = kind.Sval

	if !IsWearable(o.Tval) {
		o.ToH = kind.ToH
		o.ToD = kind.ToD
		o.ToA = kind.ToA
		o.AC = kind.AC
		o.DD = kind.DD
		o.DS = kind.DS
		o.Weight = kind.Weight
		o.Name1 = 0
		o.Name2 = 0
		return nil
	}

	if o.Name1 != 0 {
		if o.Name1 >= len(tables.Artifacts) || tables.Artifacts[o.Name1].Name == "" {
			o.Name1 = 0
		}
	}
	if o.Name2 != 0 {
		if o.Name2 >= len(tables.Egos) || tables.Egos[o.Name2].Name == "" {
			o.Name2 = 0
		}
	}
	return nil
}

// Wipe turns the object into the empty object.
func (o *Object) Wipe() {
	*o = Object{}
}

func (o Object) IsEmpty() bool {
	return o.KIdx == 0
}

func (o Object) IsArtifact() bool {
	return o.Name1 != 0
}

// IsWearable covers everything from ammunition to rings.
func IsWearable(tval int) bool {
	return TvShot <= tval && tval <= TvRing
}
