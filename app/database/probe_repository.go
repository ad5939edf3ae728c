package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/castpress/castpress/app/audio"
)

var _ ProbeRepository = (*SQLProbeRepository)(nil)

type SQLProbeRepository struct {
	db *DB
}

func NewProbeRepository(db *DB) *SQLProbeRepository {
	return &SQLProbeRepository{db: db}
}

// Get returns the cached probe info for path, or nil on a cache miss. An
// entry whose recorded size or mtime no longer matches is a miss.
func (r *SQLProbeRepository) Get(path string, size int64, mtime time.Time) (*audio.Info, error) {
	var raw string
	err := r.db.QueryRow(`
		SELECT info FROM probes
		WHERE path = ? AND size = ? AND mtime = ?
	`, path, size, mtime.Unix()).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query probe cache: %w", err)
	}

	var info audio.Info
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return nil, fmt.Errorf("corrupt probe cache entry for %s: %w", path, err)
	}

	return &info, nil
}

// Put stores (or replaces) the probe info for path.
func (r *SQLProbeRepository) Put(path string, size int64, mtime time.Time, info *audio.Info) error {
	raw, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to serialize probe info: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO probes (path, size, mtime, info)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			size = excluded.size,
			mtime = excluded.mtime,
			info = excluded.info,
			created_at = CURRENT_TIMESTAMP
	`, path, size, mtime.Unix(), string(raw))
	if err != nil {
		return fmt.Errorf("failed to store probe info: %w", err)
	}

	return nil
}
