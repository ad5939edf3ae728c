package database

import (
	"time"

	"github.com/castpress/castpress/app/audio"
)

// ProbeRepository caches probe results keyed by path. A cached entry is only
// returned while the file's size and mtime still match.
type ProbeRepository interface {
	Get(path string, size int64, mtime time.Time) (*audio.Info, error)
	Put(path string, size int64, mtime time.Time, info *audio.Info) error
}
