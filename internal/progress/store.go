package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Store reads and writes the progress file.
type Store struct {
	logger *zap.Logger
}

// NewStore returns a Store. A nil logger silences it.
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{logger: logger}
}

// Load reads the record at path. A missing or corrupt file yields the
// default record, never an error: save data problems are recoverable.
func (s *Store) Load(path string) Record {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("progress file unreadable, starting fresh",
				zap.String("path", path), zap.Error(err))
		}
		return Default()
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		s.logger.Warn("progress file corrupt, starting fresh",
			zap.String("path", path), zap.Error(err))
		return Default()
	}

	return sanitize(rec)
}

// Save writes the record to path atomically: the new contents land in
// a temp file and replace the old file in a single rename, so a crash
// mid-write never corrupts an existing save.
func (s *Store) Save(rec Record, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}

	data, err := json.MarshalIndent(sanitize(rec), "", "  ")
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace progress file: %w", err)
	}

	return nil
}
