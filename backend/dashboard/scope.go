package dashboard

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrBadScope       = errors.New("scope must be one of: latest, list, all")
	ErrListIDRequired = errors.New("listId is required when scope=list")
	ErrListNotFound   = errors.New("list not found")
	ErrUserNotFound   = errors.New("user not found")
)

// Scope selects which lists a dashboard aggregation runs against.
type Scope string

const (
	// ScopeLatest targets the most recently active list.
	ScopeLatest Scope = "latest"
	// ScopeList targets one explicitly named list.
	ScopeList Scope = "list"
	// ScopeAll spans every list the user owns on the canonical template.
	ScopeAll Scope = "all"
)

// ParseScope converts the raw query value into a Scope. Matching is
// case-insensitive; anything else is ErrBadScope.
func ParseScope(raw string) (Scope, error) {
	switch Scope(strings.ToLower(raw)) {
	case ScopeLatest:
		return ScopeLatest, nil
	case ScopeList:
		return ScopeList, nil
	case ScopeAll:
		return ScopeAll, nil
	}
	return "", ErrBadScope
}

// scopeContext is the resolved aggregation target. A nil listID means
// "every list the user owns on templateVersion".
type scopeContext struct {
	scope           Scope
	templateVersion string
	listID          *uuid.UUID
	latestListID    *uuid.UUID
	empty           bool
}

func (e *Engine) resolveScope(userID uuid.UUID, scope Scope, listID *uuid.UUID) (scopeContext, error) {
	ctx := scopeContext{scope: scope, templateVersion: e.templateVersion}

	latestListID, err := e.store.FindMostRecentListActivity(userID)
	if err != nil {
		return ctx, err
	}
	ctx.latestListID = latestListID

	switch scope {
	case ScopeLatest:
		scopedID := latestListID
		if scopedID == nil {
			// No attempts yet: fall back to the most recently updated list.
			lists, err := e.store.ListsOwnedByUser(userID)
			if err != nil {
				return ctx, err
			}
			if len(lists) == 0 {
				ctx.empty = true
				return ctx, nil
			}
			scopedID = &lists[0].ID
		}
		list, err := e.store.FindOwnedList(userID, *scopedID)
		if err != nil {
			return ctx, err
		}
		ctx.listID = &list.ID
		ctx.latestListID = &list.ID
		ctx.templateVersion = list.TemplateVersion
	case ScopeList:
		if listID == nil {
			return ctx, ErrListIDRequired
		}
		list, err := e.store.FindOwnedList(userID, *listID)
		if err != nil {
			return ctx, err
		}
		ctx.listID = &list.ID
		ctx.templateVersion = list.TemplateVersion
	case ScopeAll:
		// Anchored to the canonical template; lists on other template
		// versions are excluded. See the package comment.
		lists, err := e.store.ListsOwnedByUser(userID)
		if err != nil {
			return ctx, err
		}
		owned := false
		for _, list := range lists {
			if list.TemplateVersion == e.templateVersion {
				owned = true
				break
			}
		}
		if !owned {
			ctx.empty = true
		}
	}

	return ctx, nil
}
