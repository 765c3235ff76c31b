package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/preston-bernstein/games-api/internal/domain/games"
	"github.com/preston-bernstein/games-api/internal/logging"
	"github.com/preston-bernstein/games-api/internal/metrics"
)

// FileStore is a MemoryStore whose collection is mirrored to a JSON file.
// The file holds a single array and is rewritten whole on every persist.
type FileStore struct {
	mem       *MemoryStore
	path      string
	persistMu sync.Mutex
	logger    *slog.Logger
	metrics   *metrics.Recorder
}

// NewFileStore constructs a file-backed store. Call Load before serving traffic.
func NewFileStore(path string, policyYear int, logger *slog.Logger, rec *metrics.Recorder) *FileStore {
	return &FileStore{
		mem:     NewMemoryStore(policyYear),
		path:    path,
		logger:  logger,
		metrics: rec,
	}
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the backing file. Any failure resets the collection to empty.
func (s *FileStore) Load(ctx context.Context) error {
	defer s.mem.loaded.Store(true)
	logger := logging.FromContext(ctx, s.logger)

	list, err := s.readFile()
	s.metrics.RecordStoreLoad(err)
	if err != nil {
		s.mem.SetGames(nil)
		if errors.Is(err, fs.ErrNotExist) {
			logging.Warn(logger, "store load failed, starting empty",
				logging.FieldFile, s.path,
				"error", err,
			)
		} else {
			logging.Error(logger, "store load failed", err, logging.FieldFile, s.path)
		}
		return err
	}

	s.mem.SetGames(list)
	logging.Info(logger, "store loaded",
		logging.FieldFile, s.path,
		logging.FieldCount, len(list),
	)
	return nil
}

func (s *FileStore) readFile() ([]games.Game, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var list []games.Game
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return list, nil
}

// Loaded reports whether Load has run, successfully or not.
func (s *FileStore) Loaded() bool {
	return s.mem.Loaded()
}

// List returns a copy of the collection in insertion order.
func (s *FileStore) List() []games.Game {
	return s.mem.List()
}

// GetByID returns the first game whose positional ID matches.
func (s *FileStore) GetByID(id int) (games.Game, bool) {
	return s.mem.GetByID(id)
}

// Append adds the game in memory and waits for the following persist.
// A failed persist leaves the in-memory collection authoritative.
func (s *FileStore) Append(ctx context.Context, d games.Draft) (games.Game, []games.Game) {
	g, list := s.mem.Append(ctx, d)
	_ = s.Persist(ctx)
	return g, list
}

// Persist writes the collection to a temp file and renames it over the target.
// The collection is read after the persist lock is taken so the last write
// always includes every append that finished before it started.
func (s *FileStore) Persist(ctx context.Context) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	start := time.Now()
	list := s.mem.List()
	err := writeJSONFile(s.path, list)
	s.metrics.RecordStorePersist(time.Since(start), err)
	if err != nil {
		logging.Error(logging.FromContext(ctx, s.logger), "store persist failed", err,
			logging.FieldFile, s.path,
			logging.FieldCount, len(list),
		)
		return err
	}
	logging.Debug(logging.FromContext(ctx, s.logger), "store persisted",
		logging.FieldFile, s.path,
		logging.FieldCount, len(list),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func writeJSONFile(target string, payload any) error {
	if dir := filepath.Dir(target); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*FileStore)(nil)
)
