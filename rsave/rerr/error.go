package rerr

import (
	"fmt"

	"github.com/pkg/errors"

	"roguesave/rsave/rversion"
)

type (
	ErrFormatTooOld struct {
		Version rversion.Version
		Oldest  rversion.Version
	}
	ErrFormatTooNew struct {
		Version rversion.Version
		Newest  rversion.Version
	}
	// ErrMalformedField reports a decoded value that breaks a structural
	// rule: an index outside its table or a count above a capacity.
	ErrMalformedField struct {
		Stage string
		Field string
		Value int64
		Limit int64
	}
	ErrChecksumMismatch struct {
		Which    string
		Expected uint32
		Actual   uint32
	}
	// ErrCorruptDungeon wraps any failure inside the dungeon stage. It is
	// the only failure a load may recover from.
	ErrCorruptDungeon struct {
		Cause error
	}
	// WarnStoreOverflow is reported, never returned: the load clamps the
	// store and carries on.
	WarnStoreOverflow struct {
		Store    int
		Declared int
		Capacity int
	}
)

func (r ErrFormatTooOld) Error() string {
	return fmt.Sprintf(
		"savefile from version %s is too old; the oldest readable version is %s",
		r.Version, r.Oldest,
	)
}

func (r ErrFormatTooNew) Error() string {
	return fmt.Sprintf(
		"savefile from version %s is too new; the newest readable version is %s",
		r.Version, r.Newest,
	)
}

func (r ErrMalformedField) Error() string {
	return fmt.Sprintf(
		`%s: malformed field "%s": value %d outside limit %d`,
		r.Stage, r.Field, r.Value, r.Limit,
	)
}

func (r ErrChecksumMismatch) Error() string {
	return fmt.Sprintf(
		"invalid %s checksum: expected %d, got %d",
		r.Which, r.Expected, r.Actual,
	)
}

func (r ErrCorruptDungeon) Error() string {
	return fmt.Sprintf("dungeon data is corrupt: %v", r.Cause)
}

func (r ErrCorruptDungeon) Unwrap() error {
	return r.Cause
}

func (r WarnStoreOverflow) String() string {
	if r.Store < 0 {
		return fmt.Sprintf(
			"savefile declares %d stores but only %d exist; the extra stores were dropped",
			r.Declared, r.Capacity,
		)
	}
	return fmt.Sprintf(
		"store %d declares %d items but holds at most %d; the extra items were dropped",
		r.Store, r.Declared, r.Capacity,
	)
}

func Malformed(stage string, field string, value int64, limit int64) error {
	return ErrMalformedField{
		Stage: stage,
		Field: field,
		Value: value,
		Limit: limit,
	}
}

// IsRecoverable reports whether err, or anything it wraps, is a corrupt
// dungeon.
func IsRecoverable(err error) bool {
	var corrupt ErrCorruptDungeon
	return errors.As(err, &corrupt)
}
