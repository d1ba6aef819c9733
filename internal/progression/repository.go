package progression

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/myrjola/liftlog/internal/errors"
)

// ErrSnapshotNotFound is returned by stores when no snapshot has been
// persisted yet. First launch is the common producer.
var ErrSnapshotNotFound = errors.NewSentinel("snapshot not found")

// snapshotStore is one place a training-state snapshot lives. Save receives
// the already-serialized payload so every store persists byte-identical
// JSON.
type snapshotStore interface {
	Source() string
	Rank() int
	Load(ctx context.Context) (*TrainingState, error)
	Save(ctx context.Context, payload []byte) error
}

// sqliteSnapshotStore keeps the state in the training_snapshots table,
// one row per source.
type sqliteSnapshotStore struct {
	db *sql.DB
}

func newSQLiteSnapshotStore(db *sql.DB) *sqliteSnapshotStore {
	return &sqliteSnapshotStore{db: db}
}

func (s *sqliteSnapshotStore) Source() string { return "sqlite" }
func (s *sqliteSnapshotStore) Rank() int      { return 0 }

func (s *sqliteSnapshotStore) Load(ctx context.Context) (*TrainingState, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM training_snapshots WHERE source = ?", s.Source()).
		Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "query training snapshot")
	}
	return decodeState([]byte(payload))
}

func (s *sqliteSnapshotStore) Save(ctx context.Context, payload []byte) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO training_snapshots (source, payload, updated_at)
VALUES (?, ?, ?)
ON CONFLICT (source) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		s.Source(), string(payload), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return errors.Wrap(err, "upsert training snapshot")
	}
	return nil
}

// fileSnapshotStore keeps a plain-JSON backup beside the database so the
// state survives a lost or corrupted database file.
type fileSnapshotStore struct {
	path string
}

func newFileSnapshotStore(path string) *fileSnapshotStore {
	return &fileSnapshotStore{path: path}
}

func (s *fileSnapshotStore) Source() string { return "file" }
func (s *fileSnapshotStore) Rank() int      { return 1 }

func (s *fileSnapshotStore) Load(_ context.Context) (*TrainingState, error) {
	payload, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "read backup snapshot")
	}
	return decodeState(payload)
}

// Save writes to a temporary file and renames it into place so a crash
// mid-write cannot truncate the previous backup.
func (s *fileSnapshotStore) Save(_ context.Context, payload []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create backup temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write backup snapshot")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "close backup snapshot")
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Wrap(err, "replace backup snapshot")
	}
	return nil
}

func decodeState(payload []byte) (*TrainingState, error) {
	var state TrainingState
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, errors.Wrap(err, "decode training state")
	}
	state.normalize()
	return &state, nil
}
