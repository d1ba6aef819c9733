package progression

import "math"

// maxFormulaReps caps the rep count fed into the Brzycki relation; the
// formula is not considered reliable beyond a 12-rep set.
const maxFormulaReps = 12

// Estimate1RM converts a (weight, reps) pair into an estimated one-rep max
// using the Brzycki relation weight × 36 / (37 − reps), rounded to the
// nearest whole unit. A single is returned as-is and rep counts above 12
// are clamped before the formula applies.
func Estimate1RM(weightKg float64, reps int) float64 {
	if reps <= 1 {
		return weightKg
	}
	if reps > maxFormulaReps {
		reps = maxFormulaReps
	}
	return math.Round(weightKg * 36 / float64(37-reps))
}

// bestSet returns the set with the highest one-rep-max estimate and that
// estimate. Ties go to the earliest set. The best set is not necessarily
// the heaviest one: 185×6 beats 185×5 and may beat 190×3.
func bestSet(sets []Set) (Set, float64) {
	var (
		best     Set
		bestEst  float64
		haveBest bool
	)
	for _, set := range sets {
		est := Estimate1RM(set.WeightKg, set.Reps)
		if !haveBest || est > bestEst {
			best = set
			bestEst = est
			haveBest = true
		}
	}
	return best, bestEst
}

// totalVolume sums weight × reps over all sets.
func totalVolume(sets []Set) float64 {
	var volume float64
	for _, set := range sets {
		volume += set.WeightKg * float64(set.Reps)
	}
	return volume
}
