package progression

import "testing"

func snapshotWithEntries(source string, rank, entries int) Snapshot {
	state := NewTrainingState()
	for i := 0; i < entries; i++ {
		state.LiftHistory["Back Squat"] = append(state.LiftHistory["Back Squat"], LiftEntry{
			ExerciseName: "Back Squat",
			DateKey:      FormatDateKey(testNow.AddDate(0, 0, -i)),
			Sets:         []Set{{WeightKg: 100, Reps: 5}},
		})
	}
	return Snapshot{Source: source, Rank: rank, State: state}
}

func TestPickBest(t *testing.T) {
	testCases := []struct {
		name       string
		candidates []Snapshot
		wantSource string
		wantNil    bool
	}{
		{
			name:    "no candidates",
			wantNil: true,
		},
		{
			name:       "nil states are skipped",
			candidates: []Snapshot{{Source: "sqlite", Rank: 0, State: nil}},
			wantNil:    true,
		},
		{
			name: "most entries wins regardless of rank",
			candidates: []Snapshot{
				snapshotWithEntries("sqlite", 0, 2),
				snapshotWithEntries("file", 1, 5),
			},
			wantSource: "file",
		},
		{
			name: "rank breaks ties",
			candidates: []Snapshot{
				snapshotWithEntries("file", 1, 3),
				snapshotWithEntries("sqlite", 0, 3),
			},
			wantSource: "sqlite",
		},
		{
			name: "empty state still beats nothing",
			candidates: []Snapshot{
				snapshotWithEntries("file", 1, 0),
			},
			wantSource: "file",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := PickBest(tc.candidates)
			if tc.wantNil {
				if got != nil {
					t.Errorf("PickBest = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("PickBest = nil, want a snapshot")
			}
			if got.Source != tc.wantSource {
				t.Errorf("PickBest source = %s, want %s", got.Source, tc.wantSource)
			}
		})
	}
}
