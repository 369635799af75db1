package dashboard

import (
	"sort"

	"codeclimb/backend/models"
)

// computeSolvedCounts rolls the derived states up per category. Totals per
// category always cover the full template catalog; only the solved counts
// are scope-dependent.
func computeSolvedCounts(problems []models.Problem, states map[int]ProblemState) SolvedCounts {
	byCategory := make(map[string]*CategorySolved)
	totalSolved := 0

	for _, p := range problems {
		stats, ok := byCategory[p.Category]
		if !ok {
			stats = &CategorySolved{Category: p.Category}
			byCategory[p.Category] = stats
		}
		stats.TotalInCategory++
		if states[p.Neet250ID] != StateSolved {
			continue
		}
		totalSolved++
		stats.SolvedCount++
		switch p.Difficulty {
		case models.DifficultyEasy:
			stats.EasySolved++
		case models.DifficultyMedium:
			stats.MediumSolved++
		case models.DifficultyHard:
			stats.HardSolved++
		}
	}

	perCategory := make([]CategorySolved, 0, len(byCategory))
	for _, stats := range byCategory {
		perCategory = append(perCategory, *stats)
	}
	sort.Slice(perCategory, func(i, j int) bool {
		return perCategory[i].Category < perCategory[j].Category
	})

	return SolvedCounts{TotalSolved: totalSolved, PerCategory: perCategory}
}

// computeTimeAverages means timeMinutes over every attempt row carrying it,
// superseded entries included. This is deliberately NOT the latest-wins
// view used for solved counts: each timed attempt is a real data point.
func computeTimeAverages(problems []models.Problem, entries []models.AttemptEntry) TimeAverages {
	categoryByProblem := make(map[int]string, len(problems))
	for _, p := range problems {
		categoryByProblem[p.Neet250ID] = p.Category
	}

	type running struct {
		sum   float64
		count int
	}
	overall := running{}
	byCategory := make(map[string]*running)

	for i := range entries {
		entry := &entries[i]
		if entry.TimeMinutes == nil {
			continue
		}
		minutes := float64(*entry.TimeMinutes)
		overall.sum += minutes
		overall.count++
		category, ok := categoryByProblem[entry.Neet250ID]
		if !ok {
			continue
		}
		r, ok := byCategory[category]
		if !ok {
			r = &running{}
			byCategory[category] = r
		}
		r.sum += minutes
		r.count++
	}

	averages := TimeAverages{PerCategory: []CategoryAvgTime{}}
	if overall.count > 0 {
		avg := overall.sum / float64(overall.count)
		averages.OverallAvgTimeMinutes = &avg
	}
	for category, r := range byCategory {
		averages.PerCategory = append(averages.PerCategory, CategoryAvgTime{
			Category:       category,
			AvgTimeMinutes: r.sum / float64(r.count),
		})
	}
	sort.Slice(averages.PerCategory, func(i, j int) bool {
		return averages.PerCategory[i].Category < averages.PerCategory[j].Category
	})

	return averages
}
