package dashboard

import (
	"testing"
	"time"

	"codeclimb/backend/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

var streakToday = time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return streakToday.AddDate(0, 0, offset)
}

func daySet(offsets ...int) map[time.Time]struct{} {
	days := make(map[time.Time]struct{})
	for _, offset := range offsets {
		days[day(offset)] = struct{}{}
	}
	return days
}

func TestCurrentStreakCountsBackFromToday(t *testing.T) {
	assert.Equal(t, 3, currentStreak(daySet(-2, -1, 0), streakToday))
}

func TestCurrentStreakZeroWithoutActivityToday(t *testing.T) {
	days := daySet(-2, -1)
	assert.Equal(t, 0, currentStreak(days, streakToday))
	assert.Equal(t, 2.0, averageStreak(days))
}

func TestCurrentStreakStopsAtFirstGap(t *testing.T) {
	assert.Equal(t, 2, currentStreak(daySet(-4, -3, -1, 0), streakToday))
}

func TestAverageStreakOfTwoEqualRuns(t *testing.T) {
	assert.Equal(t, 2.0, averageStreak(daySet(-6, -5, -2, -1)))
}

func TestAverageStreakMixedRunLengths(t *testing.T) {
	// Runs of 1 and 3 average to 2.0.
	assert.Equal(t, 2.0, averageStreak(daySet(-7, -3, -2, -1)))
}

func TestAverageStreakFractional(t *testing.T) {
	// Runs of 1 and 2 average to 1.5.
	assert.Equal(t, 1.5, averageStreak(daySet(-5, -2, -1)))
}

func TestAverageStreakEmpty(t *testing.T) {
	assert.Equal(t, 0.0, averageStreak(daySet()))
}

func TestActivityDatesSkipsUndatedAndMeaninglessEntries(t *testing.T) {
	solved := true
	blank := "   "
	dated := datatypes.Date(day(-1))

	entries := []models.AttemptEntry{
		{Solved: &solved, DateSolved: &dated},
		{Solved: &solved},  // no date
		{Notes: &blank},    // neither dated nor meaningful
	}

	days := activityDates(entries)
	assert.Len(t, days, 1)
	assert.Contains(t, days, day(-1))
}

func TestActivityDatesCountsUnsolvedActivity(t *testing.T) {
	solved := false
	dated := datatypes.Date(day(0))
	entries := []models.AttemptEntry{{Solved: &solved, DateSolved: &dated}}

	days := activityDates(entries)
	assert.Equal(t, 1, currentStreak(days, streakToday))
}
