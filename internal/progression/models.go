// Package progression implements the adaptive progression and
// volume-tracking engine: the lift ledger, one-rep-max estimation,
// personal-record detection, weekly volume aggregation against MEV/MAV/MRV
// landmarks, next-session suggestions, deload monitoring, and
// fatigue-ranked recovery priorities.
package progression

// Set is a single performed set.
type Set struct {
	WeightKg float64 `json:"weight"`
	Reps     int     `json:"reps"`
}

// LiftEntry records all sets for one exercise on one calendar day. At most
// one entry exists per (exercise, dateKey) pair; saving again for the same
// day replaces the entry in place.
type LiftEntry struct {
	ExerciseName string  `json:"exerciseName"`
	DateKey      string  `json:"dateKey"`
	Sets         []Set   `json:"sets"`
	Volume       float64 `json:"volume"`
	Estimated1RM float64 `json:"estimated1RM"`
	BestSet      Set     `json:"bestSet"`
}

// PersonalRecord is the best-ever estimated one-rep max for an exercise.
// Its Estimated1RM never decreases through this engine.
type PersonalRecord struct {
	WeightKg     float64 `json:"weight"`
	Reps         int     `json:"reps"`
	Estimated1RM float64 `json:"estimated1RM"`
	DateKey      string  `json:"dateKey"`
}

// TrainingState is the shared state object the engine computes over. The
// persistence collaborator serializes it verbatim; the engine itself holds
// no state between invocations.
type TrainingState struct {
	LiftHistory     map[string][]LiftEntry       `json:"liftHistory"`
	PersonalRecords map[string]PersonalRecord    `json:"personalRecords"`
	LastDeloadDate  string                       `json:"lastDeloadDate,omitempty"`
	ExerciseSwaps   map[string]map[string]string `json:"exerciseSwaps,omitempty"`
}

// NewTrainingState returns an empty state ready for logging.
func NewTrainingState() *TrainingState {
	return &TrainingState{
		LiftHistory:     make(map[string][]LiftEntry),
		PersonalRecords: make(map[string]PersonalRecord),
		LastDeloadDate:  "",
		ExerciseSwaps:   make(map[string]map[string]string),
	}
}

// normalize backfills nil maps after deserialization so the engine can
// assume they exist.
func (s *TrainingState) normalize() {
	if s.LiftHistory == nil {
		s.LiftHistory = make(map[string][]LiftEntry)
	}
	if s.PersonalRecords == nil {
		s.PersonalRecords = make(map[string]PersonalRecord)
	}
	if s.ExerciseSwaps == nil {
		s.ExerciseSwaps = make(map[string]map[string]string)
	}
}

// LogResult is returned from LogLift so the caller can display the outcome.
type LogResult struct {
	IsPR         bool            `json:"isPR"`
	Estimated1RM float64         `json:"estimated1RM"`
	Volume       float64         `json:"volume"`
	PreviousBest *PersonalRecord `json:"previousBest,omitempty"`
}

// MuscleGroupVolume is the training volume performed for a muscle group
// within a trailing window. Derived on demand, never stored.
type MuscleGroupVolume struct {
	Sets   int     `json:"sets"`
	Volume float64 `json:"volume"`
}

// Suggestion is the next-session target for an exercise.
type Suggestion struct {
	WeightKg float64 `json:"weight"`
	Reps     int     `json:"reps"`
	Message  string  `json:"message"`
}

// DeloadStatus reports whether a deload week is due.
type DeloadStatus struct {
	Recommended      bool   `json:"recommended"`
	WeeksSinceDeload int    `json:"weeksSinceDeload"`
	Reason           string `json:"reason,omitempty"`
}

// RecoveryPriority ranks a body area by how close its most fatigued muscle
// is to that muscle's weekly volume ceiling.
type RecoveryPriority struct {
	Area   string  `json:"area"`
	Score  float64 `json:"score"`
	Muscle string  `json:"muscle"`
	Reason string  `json:"reason"`
	Sets   int     `json:"sets"`
}
