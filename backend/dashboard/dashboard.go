// Package dashboard derives a user's progress snapshot from the attempt
// log, the list store and the problem catalog: the solving frontier, the
// right-panel problem lists, per-category solved counts, time averages and
// day-streak metrics.
//
// The "all" scope is anchored to the canonical signup template version.
// Lists a user owns on other template versions are silently excluded from
// "all" aggregations; operators migrating templates should keep this in
// mind rather than expect a cross-template union.
package dashboard

import (
	"time"

	"codeclimb/backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressItem struct {
	Neet250ID  int    `json:"neet250Id"`
	OrderIndex int    `json:"orderIndex"`
	Title      string `json:"title"`
	Category   string `json:"category"`
}

type CategorySolved struct {
	Category        string `json:"category"`
	SolvedCount     int    `json:"solvedCount"`
	TotalInCategory int    `json:"totalInCategory"`
	EasySolved      int    `json:"easySolved"`
	MediumSolved    int    `json:"mediumSolved"`
	HardSolved      int    `json:"hardSolved"`
}

type CategoryAvgTime struct {
	Category       string  `json:"category"`
	AvgTimeMinutes float64 `json:"avgTimeMinutes"`
}

type SolvedCounts struct {
	TotalSolved int              `json:"totalSolved"`
	PerCategory []CategorySolved `json:"perCategory"`
}

type TimeAverages struct {
	OverallAvgTimeMinutes *float64          `json:"overallAvgTimeMinutes"`
	PerCategory           []CategoryAvgTime `json:"perCategory"`
}

type RightPanel struct {
	LatestSolved []ProgressItem `json:"latestSolved"`
	NextUnsolved []ProgressItem `json:"nextUnsolved"`
}

// Snapshot is one immutable dashboard result.
type Snapshot struct {
	Scope              string        `json:"scope"`
	LatestListID       *uuid.UUID    `json:"latestListId"`
	ListID             *uuid.UUID    `json:"listId"`
	LastActivityAt     *time.Time    `json:"lastActivityAt"`
	StreakCurrent      int           `json:"streakCurrent"`
	StreakAverage      float64       `json:"streakAverage"`
	FarthestCategory   *string       `json:"farthestCategory"`
	FarthestOrderIndex *int          `json:"farthestOrderIndex"`
	FarthestProblem    *ProgressItem `json:"farthestProblem"`
	SolvedCounts       SolvedCounts  `json:"solvedCounts"`
	TimeAverages       TimeAverages  `json:"timeAverages"`
	RightPanel         RightPanel    `json:"rightPanel"`
}

// Engine composes scope resolution, progress, stats and streak derivation
// into dashboard snapshots. It holds no mutable state; concurrent calls are
// independent reads.
type Engine struct {
	store           *Store
	templateVersion string
}

func NewEngine(db *gorm.DB, templateVersion string) *Engine {
	return &Engine{store: NewStore(db), templateVersion: templateVersion}
}

// GetDashboard resolves "today" in the user's timezone and composes the
// snapshot for the requested scope.
func (e *Engine) GetDashboard(userID uuid.UUID, rawScope string, listID *uuid.UUID) (*Snapshot, error) {
	today, err := e.Today(userID)
	if err != nil {
		return nil, err
	}
	return e.GetDashboardAt(userID, rawScope, listID, today)
}

// Today returns the current calendar date in the user's timezone,
// normalized to a UTC midnight so it is comparable with activity dates.
// Unknown zone names fall back to UTC.
func (e *Engine) Today(userID uuid.UUID) (time.Time, error) {
	user, err := e.store.FindUser(userID)
	if err != nil {
		return time.Time{}, err
	}
	loc, err := time.LoadLocation(user.Timezone)
	if err != nil {
		loc = time.UTC
	}
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
}

// GetDashboardAt is GetDashboard with an injected "today", which keeps the
// streak math deterministic under test.
func (e *Engine) GetDashboardAt(userID uuid.UUID, rawScope string, listID *uuid.UUID, today time.Time) (*Snapshot, error) {
	scope, err := ParseScope(rawScope)
	if err != nil {
		return nil, err
	}

	sc, err := e.resolveScope(userID, scope, listID)
	if err != nil {
		return nil, err
	}
	if sc.empty {
		return emptySnapshot(scope), nil
	}

	problems, err := e.store.ListProblems(sc.templateVersion)
	if err != nil {
		return nil, err
	}
	attempts, err := e.store.AttemptsInScope(userID, sc.templateVersion, sc.listID)
	if err != nil {
		return nil, err
	}

	// One shared latest-wins derivation feeds both the progress panels and
	// the solved counts, so they cannot disagree about what is solved.
	states := deriveStates(attempts)
	farthest, latestSolved, nextUnsolved := computeProgress(problems, states)
	days := activityDates(attempts)

	snapshot := &Snapshot{
		Scope:           string(scope),
		LastActivityAt:  lastActivityAt(attempts),
		StreakCurrent:   currentStreak(days, today),
		StreakAverage:   averageStreak(days),
		FarthestProblem: farthest,
		SolvedCounts:    computeSolvedCounts(problems, states),
		TimeAverages:    computeTimeAverages(problems, attempts),
		RightPanel:      RightPanel{LatestSolved: latestSolved, NextUnsolved: nextUnsolved},
	}
	if farthest != nil {
		snapshot.FarthestCategory = &farthest.Category
		snapshot.FarthestOrderIndex = &farthest.OrderIndex
	}
	if scope == ScopeLatest {
		snapshot.LatestListID = sc.latestListID
	}
	if scope == ScopeList {
		snapshot.ListID = sc.listID
	}

	return snapshot, nil
}

func lastActivityAt(entries []models.AttemptEntry) *time.Time {
	var last *time.Time
	for i := range entries {
		entry := &entries[i]
		if !entry.Meaningful() {
			continue
		}
		if last == nil || entry.UpdatedAt.After(*last) {
			last = &entry.UpdatedAt
		}
	}
	return last
}

// emptySnapshot is the "no lists yet" dashboard: every count zero, every
// panel empty, no list identified.
func emptySnapshot(scope Scope) *Snapshot {
	return &Snapshot{
		Scope:        string(scope),
		SolvedCounts: SolvedCounts{PerCategory: []CategorySolved{}},
		TimeAverages: TimeAverages{PerCategory: []CategoryAvgTime{}},
		RightPanel:   RightPanel{LatestSolved: []ProgressItem{}, NextUnsolved: []ProgressItem{}},
	}
}
