package dashboard

import "codeclimb/backend/models"

const (
	latestSolvedLimit = 2
	nextUnsolvedLimit = 4
)

// computeProgress derives the solving frontier and the two right-panel
// lists. problems must be the full template catalog in orderIndex order.
func computeProgress(problems []models.Problem, states map[int]ProblemState) (farthest *ProgressItem, latestSolved, nextUnsolved []ProgressItem) {
	latestSolved = []ProgressItem{}
	nextUnsolved = []ProgressItem{}

	// Walk from the top of the ordering: the first solved problem is the
	// frontier, and the first two are the "latest solved" panel.
	for i := len(problems) - 1; i >= 0; i-- {
		p := problems[i]
		if states[p.Neet250ID] != StateSolved {
			continue
		}
		item := toProgressItem(p)
		if farthest == nil {
			farthest = &item
		}
		if len(latestSolved) < latestSolvedLimit {
			latestSolved = append(latestSolved, item)
		} else {
			break
		}
	}

	threshold := 0
	if farthest != nil {
		threshold = farthest.OrderIndex
	}
	for _, p := range problems {
		if p.OrderIndex <= threshold || states[p.Neet250ID] == StateSolved {
			continue
		}
		nextUnsolved = append(nextUnsolved, toProgressItem(p))
		if len(nextUnsolved) == nextUnsolvedLimit {
			break
		}
	}

	return farthest, latestSolved, nextUnsolved
}

func toProgressItem(p models.Problem) ProgressItem {
	return ProgressItem{
		Neet250ID:  p.Neet250ID,
		OrderIndex: p.OrderIndex,
		Title:      p.Title,
		Category:   p.Category,
	}
}
