package dashboard

import (
	"sort"
	"time"

	"codeclimb/backend/models"
)

// activityDates collects the distinct calendar days with at least one
// meaningful dated attempt. Any meaningful activity counts, solved or not.
func activityDates(entries []models.AttemptEntry) map[time.Time]struct{} {
	days := make(map[time.Time]struct{})
	for i := range entries {
		entry := &entries[i]
		if entry.DateSolved == nil || !entry.Meaningful() {
			continue
		}
		days[entry.SolvedDate()] = struct{}{}
	}
	return days
}

// currentStreak counts consecutive active days backward from today. A day
// without activity ends the streak; no activity today means zero.
func currentStreak(days map[time.Time]struct{}, today time.Time) int {
	streak := 0
	cursor := today
	for {
		if _, ok := days[cursor]; !ok {
			return streak
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
}

// averageStreak partitions the active days into maximal runs of consecutive
// calendar days and returns the mean run length.
func averageStreak(days map[time.Time]struct{}) float64 {
	if len(days) == 0 {
		return 0
	}

	sorted := make([]time.Time, 0, len(days))
	for day := range days {
		sorted = append(sorted, day)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	runs := 0
	totalLength := 0
	currentRun := 0
	var previous time.Time
	for _, day := range sorted {
		if currentRun == 0 || !day.Equal(previous.AddDate(0, 0, 1)) {
			totalLength += currentRun
			runs++
			currentRun = 1
		} else {
			currentRun++
		}
		previous = day
	}
	totalLength += currentRun

	return float64(totalLength) / float64(runs)
}
