package progression

// Snapshot is one persisted copy of the training state together with where
// it came from. Lower rank wins ties.
type Snapshot struct {
	Source string
	Rank   int
	State  *TrainingState
}

// PickBest chooses the snapshot to restore from: the one with the most
// logged entries, breaking ties by source rank. The reducer never merges
// snapshots; a user who logged on the primary store must not lose entries
// to a stale backup. Returns nil when no candidate holds a usable state.
func PickBest(candidates []Snapshot) *Snapshot {
	var best *Snapshot
	for i := range candidates {
		candidate := &candidates[i]
		if candidate.State == nil {
			continue
		}
		if best == nil {
			best = candidate
			continue
		}
		candidateEntries := entryCount(candidate.State)
		bestEntries := entryCount(best.State)
		if candidateEntries > bestEntries ||
			(candidateEntries == bestEntries && candidate.Rank < best.Rank) {
			best = candidate
		}
	}
	return best
}

func entryCount(state *TrainingState) int {
	count := 0
	for _, history := range state.LiftHistory {
		count += len(history)
	}
	return count
}
