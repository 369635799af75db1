package dashboard

import (
	"testing"
	"time"

	"codeclimb/backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func boolPtr(v bool) *bool { return &v }

func testEntry(listID uuid.UUID, neetID int, solved *bool, updatedAt time.Time) models.AttemptEntry {
	return models.AttemptEntry{
		ID:        uuid.New(),
		ListID:    listID,
		Neet250ID: neetID,
		Solved:    solved,
		UpdatedAt: updatedAt,
	}
}

func TestDeriveStatesLatestEntryWins(t *testing.T) {
	listID := uuid.New()
	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	entries := []models.AttemptEntry{
		testEntry(listID, 1, boolPtr(true), base),
		testEntry(listID, 1, boolPtr(false), base.Add(time.Hour)), // supersedes
		testEntry(listID, 2, boolPtr(false), base),
		testEntry(listID, 2, boolPtr(true), base.Add(time.Hour)), // supersedes
		testEntry(listID, 3, nil, base),
	}

	states := deriveStates(entries)
	assert.Equal(t, StateUnsolved, states[1])
	assert.Equal(t, StateSolved, states[2])
	assert.Equal(t, StateUnsolved, states[3])
	assert.Equal(t, StateNoAttempt, states[4])
}

func TestDeriveStatesTieBreakIsDeterministic(t *testing.T) {
	listID := uuid.New()
	at := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	lower := testEntry(listID, 1, boolPtr(true), at)
	lower.ID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	higher := testEntry(listID, 1, boolPtr(false), at)
	higher.ID = uuid.MustParse("ffffffff-0000-0000-0000-000000000001")

	// The greater id wins regardless of slice order.
	states := deriveStates([]models.AttemptEntry{lower, higher})
	assert.Equal(t, StateUnsolved, states[1])
	states = deriveStates([]models.AttemptEntry{higher, lower})
	assert.Equal(t, StateUnsolved, states[1])
}

func TestDeriveStatesSolvedInAnyListWins(t *testing.T) {
	listA := uuid.New()
	listB := uuid.New()
	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	entries := []models.AttemptEntry{
		testEntry(listA, 1, boolPtr(false), base.Add(time.Hour)),
		testEntry(listB, 1, boolPtr(true), base),
	}

	// listA's current entry is unsolved and newer, but listB's current
	// entry says solved; across lists solved wins.
	states := deriveStates(entries)
	assert.Equal(t, StateSolved, states[1])
}

func TestLatestPerProblemMatchesDerivedStates(t *testing.T) {
	listID := uuid.New()
	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	entries := []models.AttemptEntry{
		testEntry(listID, 1, boolPtr(true), base),
		testEntry(listID, 1, boolPtr(false), base.Add(time.Hour)),
	}

	latest := LatestPerProblem(entries)
	assert.Len(t, latest, 1)
	assert.Equal(t, false, *latest[1].Solved)
}

func TestMeaningfulPredicate(t *testing.T) {
	blank := "  "
	notes := "two pointers from both ends"

	empty := models.AttemptEntry{Notes: &blank}
	assert.False(t, empty.Meaningful())

	withNotes := models.AttemptEntry{Notes: &notes}
	assert.True(t, withNotes.Meaningful())

	withSolved := models.AttemptEntry{Solved: boolPtr(false)}
	assert.True(t, withSolved.Meaningful())
}
