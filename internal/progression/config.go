package progression

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
)

// Landmarks are the science-based weekly set-count targets for a muscle
// group: Minimum Effective Volume, Maximum Adaptive Volume, and Maximum
// Recoverable Volume.
type Landmarks struct {
	MEV int `json:"mev"`
	MAV int `json:"mav"`
	MRV int `json:"mrv"`
}

// Config holds the static reference tables the engine resolves against.
// It is load-time data and never mutated by the engine.
type Config struct {
	// ExerciseMuscleGroups maps canonical exercise names to the muscle
	// groups they train. An exercise missing from the table contributes to
	// no group's volume.
	ExerciseMuscleGroups map[string][]string `json:"exerciseMuscleGroups"`
	// Landmarks maps muscle groups to their weekly volume landmarks.
	Landmarks map[string]Landmarks `json:"landmarks"`
	// DefaultLandmarks apply to muscle groups missing from Landmarks.
	DefaultLandmarks Landmarks `json:"defaultLandmarks"`
	// BodyAreas maps recovery/mobility areas to the muscle groups whose
	// fatigue makes them a priority.
	BodyAreas map[string][]string `json:"bodyAreas"`
}

// DefaultConfig returns the built-in reference tables.
func DefaultConfig() Config {
	return Config{
		ExerciseMuscleGroups: map[string][]string{
			"Barbell Bench Press":    {"chest", "triceps"},
			"Incline Dumbbell Press": {"chest", "shoulders"},
			"Dumbbell Fly":           {"chest"},
			"Push-Up":                {"chest", "triceps"},
			"Overhead Press":         {"shoulders", "triceps"},
			"Lateral Raise":          {"shoulders"},
			"Barbell Row":            {"back", "biceps"},
			"Pull-Up":                {"back", "biceps"},
			"Lat Pulldown":           {"back", "biceps"},
			"Seated Cable Row":       {"back"},
			"Barbell Curl":           {"biceps"},
			"Hammer Curl":            {"biceps"},
			"Triceps Pushdown":       {"triceps"},
			"Skull Crusher":          {"triceps"},
			"Back Squat":             {"quads", "glutes"},
			"Front Squat":            {"quads", "abs"},
			"Leg Press":              {"quads", "glutes"},
			"Dumbbell Lunge":         {"quads", "glutes"},
			"Leg Extension":          {"quads"},
			"Deadlift":               {"back", "hamstrings", "glutes"},
			"Romanian Deadlift":      {"hamstrings", "glutes"},
			"Leg Curl":               {"hamstrings"},
			"Hip Thrust":             {"glutes"},
			"Standing Calf Raise":    {"calves"},
			"Seated Calf Raise":      {"calves"},
			"Plank":                  {"abs"},
			"Cable Crunch":           {"abs"},
		},
		Landmarks: map[string]Landmarks{
			"chest":      {MEV: 8, MAV: 14, MRV: 20},
			"back":       {MEV: 10, MAV: 16, MRV: 25},
			"shoulders":  {MEV: 8, MAV: 16, MRV: 26},
			"biceps":     {MEV: 8, MAV: 14, MRV: 20},
			"triceps":    {MEV: 6, MAV: 10, MRV: 18},
			"quads":      {MEV: 8, MAV: 12, MRV: 18},
			"hamstrings": {MEV: 6, MAV: 10, MRV: 16},
			"glutes":     {MEV: 6, MAV: 10, MRV: 16},
			"calves":     {MEV: 8, MAV: 12, MRV: 16},
			"abs":        {MEV: 6, MAV: 12, MRV: 20},
		},
		DefaultLandmarks: Landmarks{MEV: 6, MAV: 10, MRV: 16},
		BodyAreas: map[string][]string{
			"IT Band":         {"quads", "glutes"},
			"Lower Back":      {"back", "glutes"},
			"Shoulder Girdle": {"shoulders", "triceps", "chest"},
			"Knees":           {"quads", "hamstrings", "calves"},
			"Hip Flexors":     {"quads", "abs"},
			"Hamstring Chain": {"hamstrings", "glutes"},
			"Elbows & Wrists": {"biceps", "triceps", "forearms"},
		},
	}
}

// LoadConfig reads a JSON file with the Config shape and overlays it on the
// defaults: any table present in the file replaces the built-in one.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var overlay Config
	if err = json.Unmarshal(data, &overlay); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if overlay.ExerciseMuscleGroups != nil {
		cfg.ExerciseMuscleGroups = overlay.ExerciseMuscleGroups
	}
	if overlay.Landmarks != nil {
		cfg.Landmarks = overlay.Landmarks
	}
	if overlay.DefaultLandmarks != (Landmarks{}) {
		cfg.DefaultLandmarks = overlay.DefaultLandmarks
	}
	if overlay.BodyAreas != nil {
		cfg.BodyAreas = overlay.BodyAreas
	}

	return cfg, nil
}

// LandmarksFor resolves the landmarks for a muscle group, falling back to
// the default set for unmapped groups.
func (c Config) LandmarksFor(group string) Landmarks {
	if lm, ok := c.Landmarks[group]; ok {
		return lm
	}
	return c.DefaultLandmarks
}

// MuscleGroups returns every configured muscle group, sorted: the union of
// the landmark table and the groups referenced by the exercise table.
func (c Config) MuscleGroups() []string {
	seen := make(map[string]struct{}, len(c.Landmarks))
	for group := range c.Landmarks {
		seen[group] = struct{}{}
	}
	for _, groups := range c.ExerciseMuscleGroups {
		for _, group := range groups {
			seen[group] = struct{}{}
		}
	}

	groups := make([]string, 0, len(seen))
	for group := range seen {
		groups = append(groups, group)
	}
	slices.Sort(groups)
	return groups
}
