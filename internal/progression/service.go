package progression

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/myrjola/liftlog/internal/errors"
	"github.com/myrjola/liftlog/internal/sqlite"
)

// Service is the concurrency-safe front of the engine. It owns the training
// state, serializes access with a mutex, and flushes the state to every
// snapshot store after each mutation. Reads of persisted state happen only
// at startup; after that the in-memory state is the source of truth.
type Service struct {
	mu     sync.Mutex
	engine *Engine
	stores []snapshotStore
	logger *slog.Logger
	wg     sync.WaitGroup
}

// NewService restores the training state from the available snapshot stores
// and wires the engine over it. A missing or unreadable snapshot is logged
// and skipped; with no usable snapshot the service starts empty.
func NewService(
	ctx context.Context,
	db *sqlite.Database,
	backupPath string,
	cfg Config,
	logger *slog.Logger,
) (*Service, error) {
	stores := []snapshotStore{
		newSQLiteSnapshotStore(db.ReadWrite),
		newFileSnapshotStore(backupPath),
	}

	candidates := make([]Snapshot, 0, len(stores))
	for _, store := range stores {
		state, err := store.Load(ctx)
		switch {
		case errors.Is(err, ErrSnapshotNotFound):
			continue
		case err != nil:
			logger.LogAttrs(ctx, slog.LevelWarn, "skipping unreadable training snapshot",
				slog.String("source", store.Source()), errors.SlogError(err))
			continue
		}
		candidates = append(candidates, Snapshot{
			Source: store.Source(),
			Rank:   store.Rank(),
			State:  state,
		})
	}

	state := NewTrainingState()
	if best := PickBest(candidates); best != nil {
		state = best.State
		logger.LogAttrs(ctx, slog.LevelInfo, "restored training state",
			slog.String("source", best.Source),
			slog.Int("entries", entryCount(state)))
	}

	return &Service{
		engine: NewEngine(state, cfg),
		stores: stores,
		logger: logger,
	}, nil
}

// LogLift records a session and flushes the updated state.
func (s *Service) LogLift(ctx context.Context, exerciseName string, sets []Set, dateKey string) (LogResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.engine.LogLift(exerciseName, sets, dateKey)
	if err != nil {
		return LogResult{}, err
	}
	s.flushLocked(ctx)
	return result, nil
}

// RemoveLiftEntry deletes a logged day and flushes the updated state.
func (s *Service) RemoveLiftEntry(ctx context.Context, exerciseName, dateKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.engine.RemoveLiftEntry(exerciseName, dateKey); err != nil {
		return err
	}
	s.flushLocked(ctx)
	return nil
}

// GetPR returns the stored personal record for an exercise.
func (s *Service) GetPR(exerciseName string) *PersonalRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.GetPR(exerciseName)
}

// LiftHistory returns a copy of the ledger for one exercise, oldest first.
func (s *Service) LiftHistory(exerciseName string) []LiftEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := s.engine.State().LiftHistory[exerciseName]
	out := make([]LiftEntry, len(history))
	copy(out, history)
	return out
}

// WeeklyVolume aggregates one muscle group over the trailing window.
func (s *Service) WeeklyVolume(muscleGroup string, windowDays int) MuscleGroupVolume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.WeeklyVolume(muscleGroup, windowDays)
}

// AllWeeklyVolumes aggregates every configured muscle group.
func (s *Service) AllWeeklyVolumes(windowDays int) map[string]MuscleGroupVolume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.AllWeeklyVolumes(windowDays)
}

// SuggestNext proposes the next session's targets for an exercise.
func (s *Service) SuggestNext(exerciseName string) *Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.SuggestNext(exerciseName)
}

// ShouldDeload reports whether a deload week is due.
func (s *Service) ShouldDeload() DeloadStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.ShouldDeload()
}

// MarkDeloadComplete resets the deload clock and flushes the state.
func (s *Service) MarkDeloadComplete(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.MarkDeloadComplete()
	s.flushLocked(ctx)
}

// PrioritizedAreas ranks recovery areas by accumulated fatigue.
func (s *Service) PrioritizedAreas() []RecoveryPriority {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.PrioritizedAreas()
}

// SaveExerciseSwap records a one-day substitution and flushes the state.
func (s *Service) SaveExerciseSwap(ctx context.Context, dateKey, original, substitute string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.engine.SaveExerciseSwap(dateKey, original, substitute); err != nil {
		return err
	}
	s.flushLocked(ctx)
	return nil
}

// GetExerciseSwap returns the substitute recorded for the exercise on the
// given day, if any.
func (s *Service) GetExerciseSwap(dateKey, original string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.GetExerciseSwap(dateKey, original)
}

// ExerciseSwaps returns a copy of the substitutions recorded for a day.
func (s *Service) ExerciseSwaps(dateKey string) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	swaps := s.engine.State().ExerciseSwaps[dateKey]
	out := make(map[string]string, len(swaps))
	for original, substitute := range swaps {
		out[original] = substitute
	}
	return out
}

// flushLocked serializes the state under the lock, then persists to every
// store in the background so a slow disk never blocks the request. A failed
// store is logged and otherwise ignored; the other stores still get the
// payload, which is why restore picks the best candidate instead of
// trusting one store.
func (s *Service) flushLocked(ctx context.Context) {
	payload, err := json.Marshal(s.engine.State())
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "encode training state", errors.SlogError(err))
		return
	}

	// The request context gets cancelled when the response is written, so
	// the saves run on a detached context.
	saveCtx := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for _, store := range s.stores {
			if saveErr := store.Save(saveCtx, payload); saveErr != nil {
				s.logger.LogAttrs(saveCtx, slog.LevelError, "persist training snapshot",
					slog.String("source", store.Source()), errors.SlogError(saveErr))
			}
		}
	}()
}

// Close waits for in-flight snapshot writes to finish.
func (s *Service) Close() {
	s.wg.Wait()
}
