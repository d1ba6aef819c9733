package main

import (
	"net/http"
	"sort"

	"github.com/myrjola/liftlog/internal/progression"
)

type homeTemplateData struct {
	BaseTemplateData
	// Groups lists every configured muscle group with its weekly volume.
	Groups []groupView
	// Deload is the current deload recommendation.
	Deload progression.DeloadStatus
	// Priorities ranks recovery areas by fatigue, most fatigued first.
	Priorities []progression.RecoveryPriority
}

// groupView is a single muscle group's row on the dashboard.
type groupView struct {
	Name   string
	Sets   int
	Volume float64
	// Landmarks are the MEV/MAV/MRV set targets for the group.
	Landmarks progression.Landmarks
	// Zone summarizes where the weekly sets sit relative to the landmarks.
	Zone string
}

func volumeZone(sets int, landmarks progression.Landmarks) string {
	switch {
	case sets >= landmarks.MRV:
		return "over limit"
	case sets >= landmarks.MAV:
		return "approaching limit"
	case sets >= landmarks.MEV:
		return "productive"
	case sets > 0:
		return "below minimum"
	default:
		return "untrained"
	}
}

func (app *application) toGroupViews(volumes map[string]progression.MuscleGroupVolume) []groupView {
	groups := make([]groupView, 0, len(volumes))
	for name, volume := range volumes {
		landmarks := app.progressionCfg.LandmarksFor(name)
		groups = append(groups, groupView{
			Name:      name,
			Sets:      volume.Sets,
			Volume:    volume.Volume,
			Landmarks: landmarks,
			Zone:      volumeZone(volume.Sets, landmarks),
		})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	return groups
}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	data := homeTemplateData{
		BaseTemplateData: newBaseTemplateData(),
		Groups:           app.toGroupViews(app.trainingService.AllWeeklyVolumes(progression.DefaultWindowDays)),
		Deload:           app.trainingService.ShouldDeload(),
		Priorities:       app.trainingService.PrioritizedAreas(),
	}
	data.Flash = app.sessionManager.PopString(r.Context(), "flash")

	app.render(w, r, http.StatusOK, "home", data)
}
