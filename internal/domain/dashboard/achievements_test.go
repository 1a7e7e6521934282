package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalogapp/vitalog-backend/internal/domain/dates"
)

func week(t *testing.T) []DailySummary {
	t.Helper()
	return Aggregate(Streams{}, dates.Window(dates.MustParse("2024-03-07"), 7))
}

func kinds(achievements []Achievement) []string {
	out := make([]string, 0, len(achievements))
	for _, a := range achievements {
		out = append(out, a.Kind)
	}
	return out
}

func TestEvaluateAchievementsEmptyWindow(t *testing.T) {
	achievements := EvaluateAchievements(week(t), 0, Targets{WaterMl: 2000})
	assert.Empty(t, achievements)
}

func TestEvaluateAchievementsSleepConsistency(t *testing.T) {
	summaries := week(t)
	for i := len(summaries) - 3; i < len(summaries); i++ {
		summaries[i].SleepHours = 7
	}

	achievements := EvaluateAchievements(summaries, 0, Targets{})

	require.Len(t, achievements, 1)
	assert.Equal(t, AchievementSleepConsistency, achievements[0].Kind)
	assert.True(t, achievements[0].ThresholdMet)
	assert.Contains(t, achievements[0].Description, "3 consecutive days")
}

func TestEvaluateAchievementsSleepMustBeTrailing(t *testing.T) {
	summaries := week(t)
	// Three good nights early in the window, short sleep last night.
	summaries[0].SleepHours = 8
	summaries[1].SleepHours = 8
	summaries[2].SleepHours = 8
	summaries[len(summaries)-1].SleepHours = 4

	achievements := EvaluateAchievements(summaries, 0, Targets{})

	assert.NotContains(t, kinds(achievements), AchievementSleepConsistency)
}

func TestEvaluateAchievementsHydrationNeedsFiveDays(t *testing.T) {
	summaries := week(t)
	for i := 0; i < 4; i++ {
		summaries[i].WaterMl = 2500
	}

	achievements := EvaluateAchievements(summaries, 0, Targets{WaterMl: 2000})
	assert.NotContains(t, kinds(achievements), AchievementHydrationGoal)

	summaries[4].WaterMl = 2000

	achievements = EvaluateAchievements(summaries, 0, Targets{WaterMl: 2000})
	assert.Contains(t, kinds(achievements), AchievementHydrationGoal)
}

func TestEvaluateAchievementsHydrationSkippedWithoutTarget(t *testing.T) {
	summaries := week(t)
	for i := range summaries {
		summaries[i].WaterMl = 3000
	}

	achievements := EvaluateAchievements(summaries, 0, Targets{WaterMl: 0})

	assert.NotContains(t, kinds(achievements), AchievementHydrationGoal)
}

func TestEvaluateAchievementsJournalingVolume(t *testing.T) {
	assert.NotContains(t, kinds(EvaluateAchievements(week(t), 6, Targets{})), AchievementJournalingVolume)
	assert.Contains(t, kinds(EvaluateAchievements(week(t), 7, Targets{})), AchievementJournalingVolume)
	assert.Contains(t, kinds(EvaluateAchievements(week(t), 40, Targets{})), AchievementJournalingVolume)
}

func TestEvaluateAchievementsExerciseConsistency(t *testing.T) {
	summaries := week(t)
	// Four active days anywhere in the window, not necessarily consecutive.
	summaries[0].ExerciseMinutes = 20
	summaries[2].ExerciseMinutes = 45
	summaries[4].ExerciseMinutes = 10
	summaries[6].ExerciseMinutes = 60

	achievements := EvaluateAchievements(summaries, 0, Targets{})

	require.Len(t, achievements, 1)
	assert.Equal(t, AchievementExerciseConsistency, achievements[0].Kind)
}

func TestEvaluateAchievementsRulesAreIndependent(t *testing.T) {
	summaries := week(t)
	for i := range summaries {
		summaries[i].SleepHours = 7.5
		summaries[i].WaterMl = 2200
		summaries[i].ExerciseMinutes = 30
	}

	achievements := EvaluateAchievements(summaries, 12, Targets{WaterMl: 2000})

	assert.ElementsMatch(t, []string{
		AchievementSleepConsistency,
		AchievementHydrationGoal,
		AchievementJournalingVolume,
		AchievementExerciseConsistency,
	}, kinds(achievements))
}
