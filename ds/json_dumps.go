package ds

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// DumpJSON renders t on one line for logs and terse output. It never
// fails: a marshal error is rendered in place of the value.
func DumpJSON[T any](t T) string {
	tBytes, err := json.Marshal(t)
	if err != nil {
		return errors.Wrap(err, "DumpJSON error").Error()
	}

	return string(tBytes)
}
