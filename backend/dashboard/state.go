package dashboard

import (
	"codeclimb/backend/models"

	"github.com/google/uuid"
)

// ProblemState is the derived current state of a problem within the scope.
type ProblemState int

const (
	StateNoAttempt ProblemState = iota
	StateUnsolved
	StateSolved
)

type listProblemKey struct {
	listID    uuid.UUID
	neet250ID int
}

// newerThan orders entries by UpdatedAt with ties broken by the greater id,
// so latest-wins is deterministic even for equal timestamps.
func newerThan(a, b *models.AttemptEntry) bool {
	if a.UpdatedAt.Equal(b.UpdatedAt) {
		return a.ID.String() > b.ID.String()
	}
	return a.UpdatedAt.After(b.UpdatedAt)
}

func latestPerListProblem(entries []models.AttemptEntry) map[listProblemKey]*models.AttemptEntry {
	latest := make(map[listProblemKey]*models.AttemptEntry)
	for i := range entries {
		entry := &entries[i]
		key := listProblemKey{listID: entry.ListID, neet250ID: entry.Neet250ID}
		if current, ok := latest[key]; !ok || newerThan(entry, current) {
			latest[key] = entry
		}
	}
	return latest
}

// LatestPerProblem returns the current attempt entry per problem for the
// entries of a single list. Callers rendering "problem with latest attempt"
// views share this derivation with the engine so the two never disagree.
func LatestPerProblem(entries []models.AttemptEntry) map[int]models.AttemptEntry {
	latest := latestPerListProblem(entries)
	out := make(map[int]models.AttemptEntry, len(latest))
	for key, entry := range latest {
		if current, ok := out[key.neet250ID]; !ok || newerThan(entry, &current) {
			out[key.neet250ID] = *entry
		}
	}
	return out
}

// deriveStates collapses the attempt history into one state per problem.
// Within each (list, problem) pair the most recent entry wins; across lists
// a problem counts as solved when any scoped list's current entry says so.
func deriveStates(entries []models.AttemptEntry) map[int]ProblemState {
	states := make(map[int]ProblemState)
	for key, entry := range latestPerListProblem(entries) {
		if entry.Solved != nil && *entry.Solved {
			states[key.neet250ID] = StateSolved
		} else if states[key.neet250ID] != StateSolved {
			states[key.neet250ID] = StateUnsolved
		}
	}
	return states
}
