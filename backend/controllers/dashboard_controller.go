package controllers

import (
	"errors"

	"codeclimb/backend/config"
	"codeclimb/backend/dashboard"
	"codeclimb/backend/middleware"
	"codeclimb/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DashboardController struct {
	Engine *dashboard.Engine
	Cfg    *config.Config
}

func NewDashboardController(db *gorm.DB, cfg *config.Config) *DashboardController {
	return &DashboardController{
		Engine: dashboard.NewEngine(db, config.DefaultTemplateVersion),
		Cfg:    cfg,
	}
}

// GetDashboard godoc
// @Summary Progress dashboard
// @Description Returns the composed progress snapshot for the requested scope
// @Tags dashboard
// @Produce json
// @Param scope query string false "latest, list or all" default(latest)
// @Param listId query string false "List id, required when scope=list"
// @Success 200 {object} dashboard.Snapshot
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /dashboard [get]
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	scope := c.Query("scope", string(dashboard.ScopeLatest))

	var listID *uuid.UUID
	if raw := c.Query("listId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return utils.BadRequest(c, "Invalid listId")
		}
		listID = &parsed
	}

	snapshot, err := dc.Engine.GetDashboard(middleware.UserID(c), scope, listID)
	if err != nil {
		switch {
		case errors.Is(err, dashboard.ErrBadScope), errors.Is(err, dashboard.ErrListIDRequired):
			return utils.BadRequest(c, err.Error())
		case errors.Is(err, dashboard.ErrListNotFound), errors.Is(err, dashboard.ErrUserNotFound):
			return utils.NotFound(c, err.Error())
		}
		return utils.InternalServerError(c, "Could not build dashboard")
	}

	return c.JSON(snapshot)
}
