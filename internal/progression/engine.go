package progression

import (
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/myrjola/liftlog/internal/errors"
	"github.com/myrjola/liftlog/internal/ptr"
)

// Progression model constants.
const (
	// Ledger bound per exercise, oldest entries dropped beyond it.
	maxEntriesPerExercise = 100

	// Default trailing window for volume aggregation, in days.
	DefaultWindowDays = 7

	// Double-progression weight steps.
	weightIncrementKg = 5.0
	weightDecrementKg = 5.0
	minWeightKg       = 5.0

	// Rep bands, evaluated top to bottom.
	progressReps  = 12
	addRepReps    = 10
	buildReps     = 8
	rebuildReps   = 6
	targetLowReps = 6
	floorReps     = 8

	// The maintain override fires when weekly sets come within this many
	// sets of the group's MRV.
	mrvProximitySets = 3

	// Deload thresholds in whole weeks.
	deloadDueWeeks    = 4
	deloadUrgentWeeks = 6

	// Recovery score bands.
	scoreNeedsRecovery   = 0.9
	scoreModerateFatigue = 0.7
	scoreTrained         = 0.5
)

// Engine computes progression decisions over a shared training state. It is
// stateless between invocations: every operation reads the state object it
// was constructed around, so it is safe to call repeatedly from any caller.
// The caller owns synchronization of the state object.
type Engine struct {
	state *TrainingState
	cfg   Config
	// now is swappable for tests.
	now func() time.Time
}

// NewEngine constructs an engine over the given state and reference tables.
func NewEngine(state *TrainingState, cfg Config) *Engine {
	state.normalize()
	return &Engine{
		state: state,
		cfg:   cfg,
		now:   time.Now,
	}
}

// State exposes the underlying training state for the persistence
// collaborator to serialize.
func (e *Engine) State() *TrainingState {
	return e.state
}

// LogLift records the sets performed for an exercise on a calendar day and
// runs personal-record detection in the same step.
//
// dateKey is the logical day of the session; pass the day captured when the
// logging started so a save after midnight lands on the right day. An empty
// dateKey defaults to the current local day. Logging the same (exercise,
// day) pair again replaces the entry; the ledger keeps the most recent 100
// entries per exercise.
func (e *Engine) LogLift(exerciseName string, sets []Set, dateKey string) (LogResult, error) {
	if exerciseName == "" {
		return LogResult{}, errors.New("exercise name cannot be empty")
	}
	if len(sets) == 0 {
		return LogResult{}, errors.New("cannot log a lift without sets, use RemoveLiftEntry to delete a day")
	}
	if dateKey == "" {
		dateKey = FormatDateKey(e.now())
	} else if _, err := ParseDateKey(dateKey); err != nil {
		return LogResult{}, fmt.Errorf("log lift: %w", err)
	}

	best, estimate := bestSet(sets)
	entry := LiftEntry{
		ExerciseName: exerciseName,
		DateKey:      dateKey,
		Sets:         slices.Clone(sets),
		Volume:       totalVolume(sets),
		Estimated1RM: estimate,
		BestSet:      best,
	}

	e.upsertEntry(entry)

	result := LogResult{
		IsPR:         false,
		Estimated1RM: estimate,
		Volume:       entry.Volume,
		PreviousBest: nil,
	}

	// A record only moves on a strictly greater estimate, so editing a
	// session down never registers a PR and the stored record is monotonic.
	record, exists := e.state.PersonalRecords[exerciseName]
	if !exists || estimate > record.Estimated1RM {
		if exists {
			result.PreviousBest = ptr.Ref(record)
		}
		result.IsPR = true
		e.state.PersonalRecords[exerciseName] = PersonalRecord{
			WeightKg:     best.WeightKg,
			Reps:         best.Reps,
			Estimated1RM: estimate,
			DateKey:      dateKey,
		}
	}

	return result, nil
}

// upsertEntry replaces the same-day entry or inserts in chronological
// order, dropping the oldest entries beyond the ledger cap.
func (e *Engine) upsertEntry(entry LiftEntry) {
	history := e.state.LiftHistory[entry.ExerciseName]

	for i := range history {
		if history[i].DateKey == entry.DateKey {
			history[i] = entry
			e.state.LiftHistory[entry.ExerciseName] = history
			return
		}
	}

	// dateKeys are fixed-width, so string order is chronological order.
	pos, _ := slices.BinarySearchFunc(history, entry, func(a, b LiftEntry) int {
		return compareDateKeys(a.DateKey, b.DateKey)
	})
	history = slices.Insert(history, pos, entry)
	if len(history) > maxEntriesPerExercise {
		history = history[len(history)-maxEntriesPerExercise:]
	}
	e.state.LiftHistory[entry.ExerciseName] = history
}

func compareDateKeys(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// RemoveLiftEntry deletes the entry for the exercise on the given day.
// Removing a day that was never logged is a no-op.
func (e *Engine) RemoveLiftEntry(exerciseName, dateKey string) error {
	if _, err := ParseDateKey(dateKey); err != nil {
		return fmt.Errorf("remove lift entry: %w", err)
	}

	history := e.state.LiftHistory[exerciseName]
	for i := range history {
		if history[i].DateKey == dateKey {
			history = slices.Delete(history, i, i+1)
			if len(history) == 0 {
				delete(e.state.LiftHistory, exerciseName)
			} else {
				e.state.LiftHistory[exerciseName] = history
			}
			return nil
		}
	}
	return nil
}

// GetPR returns the stored personal record for an exercise, or nil when the
// exercise has never been logged.
func (e *Engine) GetPR(exerciseName string) *PersonalRecord {
	record, ok := e.state.PersonalRecords[exerciseName]
	if !ok {
		return nil
	}
	return ptr.Ref(record)
}

// WeeklyVolume sums the sets and load performed for a muscle group within
// the trailing window, boundary day inclusive. Exercises missing from the
// muscle-group table and entries with corrupted data contribute nothing.
func (e *Engine) WeeklyVolume(muscleGroup string, windowDays int) MuscleGroupVolume {
	return e.aggregateVolumes(windowDays)[muscleGroup]
}

// AllWeeklyVolumes computes the volume for every configured muscle group in
// a single pass over the ledger.
func (e *Engine) AllWeeklyVolumes(windowDays int) map[string]MuscleGroupVolume {
	volumes := e.aggregateVolumes(windowDays)
	// Groups without any logged training still show up with zero volume.
	for _, group := range e.cfg.MuscleGroups() {
		if _, ok := volumes[group]; !ok {
			volumes[group] = MuscleGroupVolume{Sets: 0, Volume: 0}
		}
	}
	return volumes
}

func (e *Engine) aggregateVolumes(windowDays int) map[string]MuscleGroupVolume {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	today := e.now()
	volumes := make(map[string]MuscleGroupVolume)

	for exerciseName, history := range e.state.LiftHistory {
		for _, entry := range history {
			// A bad record must not break whole-app computations.
			if len(entry.Sets) == 0 {
				continue
			}
			entryDate, err := ParseDateKey(entry.DateKey)
			if err != nil {
				continue
			}
			age := daysBetween(entryDate, today)
			if age < 0 || age > windowDays {
				continue
			}

			// A swap recorded for this day redirects the entry to the
			// substitute exercise's muscle groups for this day only.
			effectiveName := e.resolveSwap(entry.DateKey, exerciseName)
			for _, group := range e.cfg.ExerciseMuscleGroups[effectiveName] {
				volume := volumes[group]
				volume.Sets += len(entry.Sets)
				volume.Volume += entry.Volume
				volumes[group] = volume
			}
		}
	}

	return volumes
}

// SuggestNext proposes the next session's target weight and reps for an
// exercise under a double-progression model: reps build within a range
// before weight moves. Returns nil when the exercise has never been logged.
//
// The bands are non-overlapping and evaluated top to bottom; the
// near-ceiling volume override beats all of them.
func (e *Engine) SuggestNext(exerciseName string) *Suggestion {
	todayKey := FormatDateKey(e.now())
	effectiveName := e.resolveSwap(todayKey, exerciseName)

	history := e.state.LiftHistory[effectiveName]
	if len(history) == 0 {
		return nil
	}
	last := history[len(history)-1]
	if len(last.Sets) == 0 {
		return nil
	}

	currentWeight := last.Sets[len(last.Sets)-1].WeightKg
	avgReps := averageReps(last.Sets)

	// When any muscle group this exercise trains is close to its weekly
	// ceiling, adding load or reps would push past MRV; hold steady instead.
	if group, ok := e.groupNearCeiling(effectiveName); ok {
		return &Suggestion{
			WeightKg: currentWeight,
			Reps:     avgReps,
			Message:  fmt.Sprintf("Maintain: %s is close to its weekly volume ceiling, hold weight and reps this session.", group),
		}
	}

	switch {
	case avgReps >= progressReps:
		return &Suggestion{
			WeightKg: currentWeight + weightIncrementKg,
			Reps:     targetLowReps,
			Message: fmt.Sprintf("Load increase due: add %.0f and work back up from %d-%d reps.",
				weightIncrementKg, targetLowReps, floorReps),
		}
	case avgReps >= addRepReps:
		return &Suggestion{
			WeightKg: currentWeight,
			Reps:     avgReps + 1,
			Message:  "Almost there: same weight, one more rep per set.",
		}
	case avgReps >= buildReps:
		return &Suggestion{
			WeightKg: currentWeight,
			Reps:     avgReps + 1,
			Message:  "Building: same weight, add a rep.",
		}
	case avgReps >= rebuildReps:
		return &Suggestion{
			WeightKg: currentWeight,
			Reps:     floorReps,
			Message:  fmt.Sprintf("Rebuild to %d reps before adding load.", floorReps),
		}
	default:
		weight := currentWeight - weightDecrementKg
		if weight < minWeightKg {
			weight = minWeightKg
		}
		return &Suggestion{
			WeightKg: weight,
			Reps:     floorReps,
			Message: fmt.Sprintf("Reps fell below %d: drop %.0f and reset at %d reps.",
				rebuildReps, weightDecrementKg, floorReps),
		}
	}
}

// groupNearCeiling reports the first muscle group trained by the exercise
// whose weekly sets are within mrvProximitySets of its MRV.
func (e *Engine) groupNearCeiling(exerciseName string) (string, bool) {
	volumes := e.aggregateVolumes(DefaultWindowDays)
	for _, group := range e.cfg.ExerciseMuscleGroups[exerciseName] {
		landmarks := e.cfg.LandmarksFor(group)
		if landmarks.MRV-volumes[group].Sets <= mrvProximitySets {
			return group, true
		}
	}
	return "", false
}

// averageReps is the integer-rounded mean rep count across sets.
func averageReps(sets []Set) int {
	total := 0
	for _, set := range sets {
		total += set.Reps
	}
	return (total + len(sets)/2) / len(sets)
}

// ShouldDeload reports whether a deload week is due. The clock runs from
// the later of the first logged set and the last acknowledged deload;
// training gaps do not pause it. With no sets ever logged there is nothing
// to deload from.
func (e *Engine) ShouldDeload() DeloadStatus {
	firstKey, ok := e.firstLoggedDateKey()
	if !ok {
		return DeloadStatus{Recommended: false, WeeksSinceDeload: 0, Reason: ""}
	}

	reference, err := ParseDateKey(firstKey)
	if err != nil {
		return DeloadStatus{Recommended: false, WeeksSinceDeload: 0, Reason: ""}
	}
	if e.state.LastDeloadDate != "" {
		if lastDeload, parseErr := time.Parse(time.RFC3339, e.state.LastDeloadDate); parseErr == nil &&
			lastDeload.After(reference) {
			reference = lastDeload
		}
	}

	weeks := daysBetween(reference, e.now()) / 7
	status := DeloadStatus{
		Recommended:      weeks >= deloadDueWeeks,
		WeeksSinceDeload: weeks,
		Reason:           "",
	}
	switch {
	case weeks >= deloadUrgentWeeks:
		status.Reason = fmt.Sprintf("%d weeks of accumulating fatigue, schedule a deload week now.", weeks)
	case weeks >= deloadDueWeeks:
		status.Reason = fmt.Sprintf("%d weeks since your last deload, plan a lighter week soon.", weeks)
	}
	return status
}

// MarkDeloadComplete resets the deload clock to now. Logged history is
// untouched.
func (e *Engine) MarkDeloadComplete() {
	e.state.LastDeloadDate = e.now().UTC().Format(time.RFC3339)
}

func (e *Engine) firstLoggedDateKey() (string, bool) {
	first := ""
	for _, history := range e.state.LiftHistory {
		if len(history) == 0 {
			continue
		}
		if key := history[0].DateKey; first == "" || key < first {
			first = key
		}
	}
	return first, first != ""
}

// PrioritizedAreas ranks the configured recovery areas by how close their
// most trained muscle group sits to its weekly volume ceiling. The ranking
// is recomputed from the ledger on every call so it reflects the latest
// logged set; untrained areas sort to the bottom with score zero.
func (e *Engine) PrioritizedAreas() []RecoveryPriority {
	volumes := e.aggregateVolumes(DefaultWindowDays)

	priorities := make([]RecoveryPriority, 0, len(e.cfg.BodyAreas))
	for area, muscles := range e.cfg.BodyAreas {
		if len(muscles) == 0 {
			continue
		}
		top := RecoveryPriority{
			Area:   area,
			Score:  0,
			Muscle: muscles[0],
			Reason: "",
			Sets:   volumes[muscles[0]].Sets,
		}
		for _, muscle := range muscles {
			sets := volumes[muscle].Sets
			mrv := e.cfg.LandmarksFor(muscle).MRV
			if mrv <= 0 {
				continue
			}
			score := float64(sets) / float64(mrv)
			if score > top.Score {
				top.Score = score
				top.Muscle = muscle
				top.Sets = sets
			}
		}
		top.Reason = recoveryReason(top.Muscle, top.Score)
		priorities = append(priorities, top)
	}

	sort.Slice(priorities, func(i, j int) bool {
		if priorities[i].Score != priorities[j].Score {
			return priorities[i].Score > priorities[j].Score
		}
		return priorities[i].Area < priorities[j].Area
	})
	return priorities
}

func recoveryReason(muscle string, score float64) string {
	switch {
	case score >= scoreNeedsRecovery:
		return fmt.Sprintf("%s needs recovery", muscle)
	case score >= scoreModerateFatigue:
		return fmt.Sprintf("%s shows moderate fatigue", muscle)
	case score >= scoreTrained:
		return fmt.Sprintf("%s trained this week", muscle)
	default:
		return fmt.Sprintf("%s light recovery", muscle)
	}
}

// SaveExerciseSwap records that substitute replaces original for the given
// day only. The aggregator and advisor resolve through it for that day.
func (e *Engine) SaveExerciseSwap(dateKey, original, substitute string) error {
	if _, err := ParseDateKey(dateKey); err != nil {
		return fmt.Errorf("save exercise swap: %w", err)
	}
	if original == "" || substitute == "" {
		return errors.New("swap requires both an original and a substitute exercise")
	}

	swaps := e.state.ExerciseSwaps[dateKey]
	if swaps == nil {
		swaps = make(map[string]string)
		e.state.ExerciseSwaps[dateKey] = swaps
	}
	swaps[original] = substitute
	return nil
}

// GetExerciseSwap returns the substitute recorded for the exercise on the
// given day, if any.
func (e *Engine) GetExerciseSwap(dateKey, original string) (string, bool) {
	substitute, ok := e.state.ExerciseSwaps[dateKey][original]
	return substitute, ok
}

func (e *Engine) resolveSwap(dateKey, exerciseName string) string {
	if substitute, ok := e.state.ExerciseSwaps[dateKey][exerciseName]; ok {
		return substitute
	}
	return exerciseName
}
