// Package rfile is the filesystem side of loading: it finds and reads a
// savefile and hands the bytes to rsave.
package rfile

import (
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"roguesave/rsave"
	"roguesave/rsave/rheader"
	"roguesave/rsave/rinfo"
	"roguesave/rsave/rstate"
)

type (
	ErrNotAFile struct {
		Path string
	}
	ErrEmptyFile struct {
		Path string
	}
)

func (r ErrNotAFile) Error() string {
	return "not a regular file: " + r.Path
}

func (r ErrEmptyFile) Error() string {
	return "savefile is empty: " + r.Path
}

// Open reads the whole savefile. Its FileInfo carries the modification
// time for display.
func Open(path string) ([]byte, os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, `Open error reading "%s"`, path)
	}
	if !info.Mode().IsRegular() {
		return nil, nil, ErrNotAFile{Path: path}
	}
	if info.Size() == 0 {
		return nil, nil, ErrEmptyFile{Path: path}
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, `Open error reading "%s"`, path)
	}
	return bs, info, nil
}

// LoadPath opens and loads a savefile.
func LoadPath(path string, tables *rinfo.Tables, config rsave.Config) (*rstate.GameState, os.FileInfo, error) {
	bs, info, err := Open(path)
	if err != nil {
		return nil, nil, err
	}
	if prefix, err := rheader.Peek(bs); err == nil {
		glog.V(1).Infof("%s: version %s, saved %s", path, prefix.Version(), info.ModTime())
	}
	state, err := rsave.Load(bs, tables, config)
	if err != nil {
		return nil, info, errors.Wrapf(err, `LoadPath error loading "%s"`, path)
	}
	return state, info, nil
}

// IsSavefile reports whether path looks like something Load could read:
// a non-empty regular file whose prefix is a readable version.
func IsSavefile(path string) bool {
	bs, _, err := Open(path)
	if err != nil {
		return false
	}
	prefix, err := rheader.Peek(bs)
	if err != nil {
		return false
	}
	return rheader.CheckRange(prefix.Version()) == nil
}
