package dashboard

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"codeclimb/backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testTemplate = "neet250.v1"

func newTestEngine(t *testing.T) (*Engine, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.List{},
		&models.Problem{},
		&models.AttemptEntry{},
	))
	return NewEngine(db, testTemplate), db
}

func seedProblems(t *testing.T, db *gorm.DB, template, category string, from, to int) {
	t.Helper()
	for i := from; i <= to; i++ {
		problem := models.Problem{
			TemplateVersion: template,
			Neet250ID:       i,
			Title:           fmt.Sprintf("Problem %d", i),
			LeetcodeSlug:    fmt.Sprintf("problem-%d", i),
			Category:        category,
			Difficulty:      models.DifficultyEasy,
			OrderIndex:      i,
		}
		require.NoError(t, db.Create(&problem).Error)
	}
}

func createUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Email: email, PasswordHash: "x", Timezone: "UTC"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createList(t *testing.T, db *gorm.DB, userID uuid.UUID, name, template string) models.List {
	t.Helper()
	list := models.List{UserID: userID, Name: name, TemplateVersion: template}
	require.NoError(t, db.Create(&list).Error)
	return list
}

func createAttempt(t *testing.T, db *gorm.DB, userID, listID uuid.UUID, neetID int, mutate func(*models.AttemptEntry)) models.AttemptEntry {
	t.Helper()
	entry := models.AttemptEntry{UserID: userID, ListID: listID, Neet250ID: neetID}
	if mutate != nil {
		mutate(&entry)
	}
	require.NoError(t, db.Create(&entry).Error)
	return entry
}

func intPtr(v int) *int { return &v }

func datePtr(v time.Time) *datatypes.Date {
	d := datatypes.Date(v)
	return &d
}

func orderIndexes(items []ProgressItem) []int {
	out := make([]int, 0, len(items))
	for _, item := range items {
		out = append(out, item.OrderIndex)
	}
	return out
}

func TestDashboardSolvedWithExplicitUnsolvedAfterFrontier(t *testing.T) {
	engine, db := newTestEngine(t)
	seedProblems(t, db, testTemplate, "Arrays & Hashing", 1, 20)
	user := createUser(t, db, "frontier@example.com")
	list := createList(t, db, user.ID, "A", testTemplate)

	createAttempt(t, db, user.ID, list.ID, 2, func(e *models.AttemptEntry) { e.Solved = boolPtr(true) })
	createAttempt(t, db, user.ID, list.ID, 3, func(e *models.AttemptEntry) { e.Solved = boolPtr(false) })

	snapshot, err := engine.GetDashboardAt(user.ID, "latest", nil, streakToday)
	require.NoError(t, err)

	require.NotNil(t, snapshot.FarthestOrderIndex)
	assert.Equal(t, 2, *snapshot.FarthestOrderIndex)
	assert.Equal(t, []int{2}, orderIndexes(snapshot.RightPanel.LatestSolved))
	assert.Equal(t, []int{3, 4, 5, 6}, orderIndexes(snapshot.RightPanel.NextUnsolved))
	assert.Equal(t, 1, snapshot.SolvedCounts.TotalSolved)
	require.NotNil(t, snapshot.LatestListID)
	assert.Equal(t, list.ID, *snapshot.LatestListID)
}

func TestDashboardSolvedWithGaps(t *testing.T) {
	engine, db := newTestEngine(t)
	seedProblems(t, db, testTemplate, "Arrays & Hashing", 1, 20)
	user := createUser(t, db, "gaps@example.com")
	list := createList(t, db, user.ID, "B", testTemplate)

	createAttempt(t, db, user.ID, list.ID, 2, func(e *models.AttemptEntry) { e.Solved = boolPtr(true) })
	createAttempt(t, db, user.ID, list.ID, 3, func(e *models.AttemptEntry) { e.Solved = boolPtr(false) })
	createAttempt(t, db, user.ID, list.ID, 5, func(e *models.AttemptEntry) { e.Solved = boolPtr(true) })

	snapshot, err := engine.GetDashboardAt(user.ID, "latest", nil, streakToday)
	require.NoError(t, err)

	require.NotNil(t, snapshot.FarthestProblem)
	assert.Equal(t, 5, snapshot.FarthestProblem.OrderIndex)
	assert.Equal(t, []int{5, 2}, orderIndexes(snapshot.RightPanel.LatestSolved))
	assert.Equal(t, []int{6, 7, 8, 9}, orderIndexes(snapshot.RightPanel.NextUnsolved))
	assert.Equal(t, 2, snapshot.SolvedCounts.TotalSolved)
}

func TestDashboardRejectsUnknownScope(t *testing.T) {
	engine, db := newTestEngine(t)
	user := createUser(t, db, "bad-scope@example.com")

	_, err := engine.GetDashboardAt(user.ID, "everything", nil, streakToday)
	assert.ErrorIs(t, err, ErrBadScope)
}

func TestDashboardListScopeRequiresListID(t *testing.T) {
	engine, db := newTestEngine(t)
	user := createUser(t, db, "no-list-id@example.com")

	_, err := engine.GetDashboardAt(user.ID, "list", nil, streakToday)
	assert.ErrorIs(t, err, ErrListIDRequired)
}

func TestDashboardListScopeRejectsForeignList(t *testing.T) {
	engine, db := newTestEngine(t)
	seedProblems(t, db, testTemplate, "Arrays & Hashing", 1, 5)
	owner := createUser(t, db, "owner@example.com")
	intruder := createUser(t, db, "intruder@example.com")
	list := createList(t, db, owner.ID, "private", testTemplate)

	_, err := engine.GetDashboardAt(intruder.ID, "list", &list.ID, streakToday)
	assert.ErrorIs(t, err, ErrListNotFound)
}

func TestDashboardEmptySnapshotWithoutLists(t *testing.T) {
	engine, db := newTestEngine(t)
	seedProblems(t, db, testTemplate, "Arrays & Hashing", 1, 5)
	user := createUser(t, db, "fresh@example.com")

	snapshot, err := engine.GetDashboardAt(user.ID, "latest", nil, streakToday)
	require.NoError(t, err)

	assert.Nil(t, snapshot.LatestListID)
	assert.Nil(t, snapshot.LastActivityAt)
	assert.Nil(t, snapshot.FarthestProblem)
	assert.Equal(t, 0, snapshot.SolvedCounts.TotalSolved)
	assert.Empty(t, snapshot.SolvedCounts.PerCategory)
	assert.Empty(t, snapshot.RightPanel.LatestSolved)
	assert.Empty(t, snapshot.RightPanel.NextUnsolved)
	assert.Equal(t, 0, snapshot.StreakCurrent)
	assert.Equal(t, 0.0, snapshot.StreakAverage)

	allScope, err := engine.GetDashboardAt(user.ID, "all", nil, streakToday)
	require.NoError(t, err)
	assert.Empty(t, allScope.SolvedCounts.PerCategory)
	assert.Nil(t, allScope.FarthestProblem)
}

func TestDashboardLatestFallsBackToMostRecentList(t *testing.T) {
	engine, db := newTestEngine(t)
	seedProblems(t, db, testTemplate, "Arrays & Hashing", 1, 10)
	seedProblems(t, db, "alt.v1", "Graphs", 1, 5)
	user := createUser(t, db, "fallback@example.com")

	older := createList(t, db, user.ID, "older", testTemplate)
	newer := createList(t, db, user.ID, "newer", "alt.v1")
	require.NoError(t, db.Model(&older).UpdateColumn("updated_at", streakToday.Add(-48*time.Hour)).Error)
	require.NoError(t, db.Model(&newer).UpdateColumn("updated_at", streakToday.Add(-1*time.Hour)).Error)

	// No attempts anywhere: the most recently updated list wins, so the
	// category breakdown reflects its template.
	snapshot, err := engine.GetDashboardAt(user.ID, "latest", nil, streakToday)
	require.NoError(t, err)

	require.Len(t, snapshot.SolvedCounts.PerCategory, 1)
	assert.Equal(t, "Graphs", snapshot.SolvedCounts.PerCategory[0].Category)
	assert.Equal(t, 5, snapshot.SolvedCounts.PerCategory[0].TotalInCategory)
	require.NotNil(t, snapshot.LatestListID)
	assert.Equal(t, newer.ID, *snapshot.LatestListID)
}

func TestDashboardAllScopeSpansCanonicalListsOnly(t *testing.T) {
	engine, db := newTestEngine(t)
	seedProblems(t, db, testTemplate, "Arrays & Hashing", 1, 10)
	seedProblems(t, db, "alt.v1", "Graphs", 1, 5)
	user := createUser(t, db, "all-scope@example.com")

	listA := createList(t, db, user.ID, "A", testTemplate)
	listB := createList(t, db, user.ID, "B", testTemplate)
	altList := createList(t, db, user.ID, "alt", "alt.v1")

	createAttempt(t, db, user.ID, listA.ID, 2, func(e *models.AttemptEntry) { e.Solved = boolPtr(true) })
	createAttempt(t, db, user.ID, listB.ID, 5, func(e *models.AttemptEntry) { e.Solved = boolPtr(true) })
	createAttempt(t, db, user.ID, altList.ID, 1, func(e *models.AttemptEntry) { e.Solved = boolPtr(true) })

	snapshot, err := engine.GetDashboardAt(user.ID, "all", nil, streakToday)
	require.NoError(t, err)

	// The alt-template solve is excluded from the anchored "all" scope.
	assert.Equal(t, 2, snapshot.SolvedCounts.TotalSolved)
	require.NotNil(t, snapshot.FarthestOrderIndex)
	assert.Equal(t, 5, *snapshot.FarthestOrderIndex)
	assert.Nil(t, snapshot.ListID)
	assert.Nil(t, snapshot.LatestListID)
}

func TestDashboardCategoryTotalsCoverFullCatalog(t *testing.T) {
	engine, db := newTestEngine(t)
	seedProblems(t, db, testTemplate, "Arrays & Hashing", 1, 10)
	seedProblems(t, db, testTemplate, "Graphs", 11, 20)
	user := createUser(t, db, "categories@example.com")
	list := createList(t, db, user.ID, "main", testTemplate)

	createAttempt(t, db, user.ID, list.ID, 1, func(e *models.AttemptEntry) { e.Solved = boolPtr(true) })

	snapshot, err := engine.GetDashboardAt(user.ID, "latest", nil, streakToday)
	require.NoError(t, err)

	require.Len(t, snapshot.SolvedCounts.PerCategory, 2)
	total := 0
	for _, category := range snapshot.SolvedCounts.PerCategory {
		total += category.TotalInCategory
	}
	assert.Equal(t, 20, total)

	arrays := snapshot.SolvedCounts.PerCategory[0]
	assert.Equal(t, "Arrays & Hashing", arrays.Category)
	assert.Equal(t, 1, arrays.SolvedCount)
	assert.Equal(t, 1, arrays.EasySolved)

	graphs := snapshot.SolvedCounts.PerCategory[1]
	assert.Equal(t, "Graphs", graphs.Category)
	assert.Equal(t, 0, graphs.SolvedCount)
	assert.Equal(t, 10, graphs.TotalInCategory)
}

func TestDashboardTimeAveragesIncludeSupersededAttempts(t *testing.T) {
	engine, db := newTestEngine(t)
	seedProblems(t, db, testTemplate, "Arrays & Hashing", 1, 5)
	user := createUser(t, db, "time-avg@example.com")
	list := createList(t, db, user.ID, "main", testTemplate)

	base := streakToday.Add(-2 * time.Hour)
	createAttempt(t, db, user.ID, list.ID, 1, func(e *models.AttemptEntry) {
		e.Solved = boolPtr(false)
		e.TimeMinutes = intPtr(30)
		e.UpdatedAt = base
	})
	createAttempt(t, db, user.ID, list.ID, 1, func(e *models.AttemptEntry) {
		e.Solved = boolPtr(true)
		e.TimeMinutes = intPtr(10)
		e.UpdatedAt = base.Add(time.Hour)
	})

	snapshot, err := engine.GetDashboardAt(user.ID, "latest", nil, streakToday)
	require.NoError(t, err)

	// Solved counts use the current state only; time averages use every
	// timed attempt, the superseded one included.
	assert.Equal(t, 1, snapshot.SolvedCounts.TotalSolved)
	require.NotNil(t, snapshot.TimeAverages.OverallAvgTimeMinutes)
	assert.Equal(t, 20.0, *snapshot.TimeAverages.OverallAvgTimeMinutes)
	require.Len(t, snapshot.TimeAverages.PerCategory, 1)
	assert.Equal(t, 20.0, snapshot.TimeAverages.PerCategory[0].AvgTimeMinutes)
}

func TestDashboardStreaksFromDatedActivity(t *testing.T) {
	engine, db := newTestEngine(t)
	seedProblems(t, db, testTemplate, "Arrays & Hashing", 1, 10)
	user := createUser(t, db, "streaks@example.com")
	list := createList(t, db, user.ID, "main", testTemplate)

	for offset := -2; offset <= 0; offset++ {
		date := day(offset)
		createAttempt(t, db, user.ID, list.ID, 3+offset, func(e *models.AttemptEntry) {
			e.Solved = boolPtr(true)
			e.DateSolved = datePtr(date)
		})
	}

	snapshot, err := engine.GetDashboardAt(user.ID, "latest", nil, streakToday)
	require.NoError(t, err)

	assert.Equal(t, 3, snapshot.StreakCurrent)
	assert.Equal(t, 3.0, snapshot.StreakAverage)
	assert.NotNil(t, snapshot.LastActivityAt)
}

func TestDashboardIsIdempotent(t *testing.T) {
	engine, db := newTestEngine(t)
	seedProblems(t, db, testTemplate, "Arrays & Hashing", 1, 20)
	user := createUser(t, db, "idempotent@example.com")
	list := createList(t, db, user.ID, "main", testTemplate)

	createAttempt(t, db, user.ID, list.ID, 2, func(e *models.AttemptEntry) { e.Solved = boolPtr(true) })
	createAttempt(t, db, user.ID, list.ID, 5, func(e *models.AttemptEntry) {
		e.Solved = boolPtr(true)
		e.TimeMinutes = intPtr(25)
		e.DateSolved = datePtr(day(0))
	})

	first, err := engine.GetDashboardAt(user.ID, "latest", nil, streakToday)
	require.NoError(t, err)
	second, err := engine.GetDashboardAt(user.ID, "latest", nil, streakToday)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
