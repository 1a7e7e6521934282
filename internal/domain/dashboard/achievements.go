package dashboard

import (
	"fmt"
)

// Achievement kinds
const (
	AchievementSleepConsistency    = "sleep_consistency"
	AchievementHydrationGoal       = "hydration_goal"
	AchievementJournalingVolume    = "journaling_volume"
	AchievementExerciseConsistency = "exercise_consistency"
)

// Achievement thresholds. Sleep counts trailing consecutive days at or above
// minSleepHours; hydration and exercise count qualifying days anywhere in
// the window; journaling counts entries ever created.
const (
	minSleepHours           = 6.0
	sleepConsistencyDays    = 3
	hydrationGoalDays       = 5
	journalingVolumeCount   = 7
	exerciseConsistencyDays = 4
)

// EvaluateAchievements runs the fixed rule table over the window aggregates.
// It is pure and stateless: achievements are "currently true" predicates,
// re-evaluated on every load, never awarded once and stored. Rules are
// independent; every rule that meets its threshold emits exactly one
// Achievement carrying the measured value, and none suppresses another.
func EvaluateAchievements(summaries []DailySummary, journalTotal int, targets Targets) []Achievement {
	achievements := []Achievement{}

	// Sleep consistency: consecutive trailing days with enough sleep,
	// counted from the newest day backward.
	trailing := 0
	for i := len(summaries) - 1; i >= 0; i-- {
		if summaries[i].SleepHours < minSleepHours {
			break
		}
		trailing++
	}
	if trailing >= sleepConsistencyDays {
		achievements = append(achievements, Achievement{
			Kind:         AchievementSleepConsistency,
			Title:        "Sleep Champion",
			Description:  fmt.Sprintf("%d consecutive days with %.0f+ hours of sleep", trailing, minSleepHours),
			ThresholdMet: true,
		})
	}

	// Hydration goal: days in the window meeting the configured target.
	hydrated := 0
	for _, s := range summaries {
		if targets.WaterMl > 0 && s.WaterMl >= targets.WaterMl {
			hydrated++
		}
	}
	if hydrated >= hydrationGoalDays {
		achievements = append(achievements, Achievement{
			Kind:         AchievementHydrationGoal,
			Title:        "Hydration Hero",
			Description:  fmt.Sprintf("Hit your water goal on %d days this week", hydrated),
			ThresholdMet: true,
		})
	}

	// Journaling volume: lifetime entry count, not windowed.
	if journalTotal >= journalingVolumeCount {
		achievements = append(achievements, Achievement{
			Kind:         AchievementJournalingVolume,
			Title:        "Reflective Mind",
			Description:  fmt.Sprintf("%d journal entries written", journalTotal),
			ThresholdMet: true,
		})
	}

	// Exercise consistency: days in the window with any activity.
	active := 0
	for _, s := range summaries {
		if s.ExerciseMinutes > 0 {
			active++
		}
	}
	if active >= exerciseConsistencyDays {
		achievements = append(achievements, Achievement{
			Kind:         AchievementExerciseConsistency,
			Title:        "Movement Streak",
			Description:  fmt.Sprintf("Active on %d days this week", active),
			ThresholdMet: true,
		})
	}

	return achievements
}
