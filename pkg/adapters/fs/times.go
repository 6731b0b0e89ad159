package fs

import (
	"fmt"
	"os"

	"github.com/aretw0/patina/pkg/core"
)

// Times returns the stored clock values for the file at path.
//
// File birth time is not exposed portably across platforms, so the
// modification time doubles as the creation value. That is good enough in
// practice: the creation field is only ever written when a note does not
// carry one yet, and for a freshly created note both clocks coincide.
func Times(path string) (core.FileTimes, error) {
	info, err := os.Stat(path)
	if err != nil {
		return core.FileTimes{}, err
	}
	if !info.Mode().IsRegular() {
		return core.FileTimes{}, fmt.Errorf("%s: %w", path, core.ErrNotRegularFile)
	}

	mtime := info.ModTime()
	return core.FileTimes{Created: mtime, Modified: mtime}, nil
}
