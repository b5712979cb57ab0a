package rcave

import (
	"github.com/pkg/errors"

	"roguesave/rsave/lbytes"
)

// MaxRun is the longest run a single count byte can describe.
const MaxRun = 255

// DecodeRLE fills a plane of n cells from (run, value) pairs. Runs fill
// row-major and wrap across rows. A zero run or one that overflows the
// plane is an error, as is any error returned by set.
func DecodeRLE(reader *lbytes.Reader, kind lbytes.Kind, n int, set func(i int, value int64) error) error {
	for i := 0; i < n; {
		run, err := reader.ReadU8()
		if err != nil {
			return errors.Wrapf(err, "DecodeRLE error reading run at cell %d", i)
		}
		value, err := reader.ReadKind(kind)
		if err != nil {
			return errors.Wrapf(err, "DecodeRLE error reading value at cell %d", i)
		}
		if run == 0 {
			return errors.Errorf("DecodeRLE error: zero-length run at cell %d", i)
		}
		if i+int(run) > n {
			return errors.Errorf("DecodeRLE error: run of %d at cell %d overflows plane of %d", run, i, n)
		}
		for j := i; j < i+int(run); j++ {
			if err := set(j, value); err != nil {
				return errors.Wrapf(err, "DecodeRLE error at cell %d", j)
			}
		}
		i += int(run)
	}
	return nil
}

// EncodeRLE writes a plane of n cells as (run, value) pairs. Runs may
// cross row boundaries and never exceed MaxRun.
func EncodeRLE(writer *lbytes.Writer, kind lbytes.Kind, n int, get func(i int) int64) error {
	for i := 0; i < n; {
		value := get(i)
		run := 1
		for i+run < n && run < MaxRun && get(i+run) == value {
			run++
		}
		writer.WriteU8(uint8(run))
		if err := writer.WriteKind(kind, value); err != nil {
			return errors.Wrapf(err, "EncodeRLE error at cell %d", i)
		}
		i += run
	}
	return nil
}

func cell(i int) (int, int) {
	return i / DungeonWid, i % DungeonWid
}

func block(i int) (int, int) {
	return i / BlockCols, i % BlockCols
}
