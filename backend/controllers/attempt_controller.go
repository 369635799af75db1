package controllers

import (
	"errors"
	"strings"
	"time"

	"codeclimb/backend/config"
	"codeclimb/backend/middleware"
	"codeclimb/backend/models"
	"codeclimb/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AttemptController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAttemptController(db *gorm.DB, cfg *config.Config) *AttemptController {
	return &AttemptController{DB: db, Cfg: cfg}
}

// AttemptPayload is the full field set of an attempt entry. Both create and
// update replace every field, so a retry's history stays separate from
// corrections to a single entry.
type AttemptPayload struct {
	Solved          *bool   `json:"solved"`
	DateSolved      *string `json:"dateSolved" validate:"omitempty,datetime=2006-01-02"`
	TimeMinutes     *int    `json:"timeMinutes" validate:"omitempty,gte=0"`
	Attempts        *int    `json:"attempts" validate:"omitempty,gte=1"`
	Confidence      *string `json:"confidence"`
	TimeComplexity  *string `json:"timeComplexity"`
	SpaceComplexity *string `json:"spaceComplexity"`
	Notes           *string `json:"notes"`
	ProblemURL      *string `json:"problemUrl"`
}

type AttemptResponse struct {
	ID              uuid.UUID  `json:"id"`
	ListID          uuid.UUID  `json:"listId"`
	Neet250ID       int        `json:"neet250Id"`
	Solved          *bool      `json:"solved"`
	DateSolved      *string    `json:"dateSolved"`
	TimeMinutes     *int       `json:"timeMinutes"`
	Attempts        *int       `json:"attempts"`
	Confidence      *string    `json:"confidence"`
	TimeComplexity  *string    `json:"timeComplexity"`
	SpaceComplexity *string    `json:"spaceComplexity"`
	Notes           *string    `json:"notes"`
	ProblemURL      *string    `json:"problemUrl"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func toAttemptResponse(entry *models.AttemptEntry) AttemptResponse {
	resp := AttemptResponse{
		ID:              entry.ID,
		ListID:          entry.ListID,
		Neet250ID:       entry.Neet250ID,
		Solved:          entry.Solved,
		TimeMinutes:     entry.TimeMinutes,
		Attempts:        entry.Attempts,
		TimeComplexity:  entry.TimeComplexity,
		SpaceComplexity: entry.SpaceComplexity,
		Notes:           entry.Notes,
		ProblemURL:      entry.ProblemURL,
		UpdatedAt:       entry.UpdatedAt,
	}
	if entry.DateSolved != nil {
		formatted := entry.SolvedDate().Format("2006-01-02")
		resp.DateSolved = &formatted
	}
	if entry.Confidence != nil {
		confidence := string(*entry.Confidence)
		resp.Confidence = &confidence
	}
	return resp
}

func normalizeNullable(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func parseConfidence(value *string) (*models.Confidence, error) {
	normalized := normalizeNullable(value)
	if normalized == nil {
		return nil, nil
	}
	switch models.Confidence(*normalized) {
	case models.ConfidenceLow, models.ConfidenceMedium, models.ConfidenceHigh:
		confidence := models.Confidence(*normalized)
		return &confidence, nil
	}
	return nil, errors.New("Confidence must be LOW, MEDIUM, or HIGH")
}

// apply writes the payload over the entry's mutable fields. Returns a
// caller-fault error for a bad confidence value or a meaningless payload.
func (p *AttemptPayload) apply(entry *models.AttemptEntry) error {
	confidence, err := parseConfidence(p.Confidence)
	if err != nil {
		return err
	}

	entry.Solved = p.Solved
	entry.DateSolved = nil
	if p.DateSolved != nil {
		parsed, err := time.Parse("2006-01-02", *p.DateSolved)
		if err != nil {
			return errors.New("dateSolved must be formatted YYYY-MM-DD")
		}
		date := datatypes.Date(parsed)
		entry.DateSolved = &date
	}
	entry.TimeMinutes = p.TimeMinutes
	entry.Attempts = p.Attempts
	entry.Confidence = confidence
	entry.TimeComplexity = normalizeNullable(p.TimeComplexity)
	entry.SpaceComplexity = normalizeNullable(p.SpaceComplexity)
	entry.Notes = p.Notes
	entry.ProblemURL = p.ProblemURL

	if !entry.Meaningful() {
		return errors.New("Attempt payload must include at least one meaningful field")
	}
	return nil
}

// CreateAttempt godoc
// @Summary Record a new attempt
// @Description Appends an attempt entry for a problem; retries are new entries, not edits
// @Tags attempts
// @Accept json
// @Produce json
// @Param listId path string true "List id"
// @Param neetId path int true "Problem id within the list's template"
// @Param request body AttemptPayload true "Attempt data"
// @Success 201 {object} AttemptResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /lists/{listId}/problems/{neetId}/attempts [post]
func (ac *AttemptController) CreateAttempt(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	listID, err := uuid.Parse(c.Params("listId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid list id")
	}
	neetID, err := c.ParamsInt("neetId")
	if err != nil {
		return utils.BadRequest(c, "Invalid problem id")
	}

	var list models.List
	err = ac.DB.Where("id = ? AND user_id = ?", listID, userID).First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "List not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var problemCount int64
	err = ac.DB.Model(&models.Problem{}).
		Where("template_version = ? AND neet250_id = ?", list.TemplateVersion, neetID).
		Count(&problemCount).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if problemCount == 0 {
		return utils.BadRequest(c, "Problem not found in list template")
	}

	var payload AttemptPayload
	if err := c.BodyParser(&payload); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(&payload); err != nil {
		return utils.ValidationError(c, validationDetails(err))
	}

	entry := models.AttemptEntry{
		UserID:    userID,
		ListID:    listID,
		Neet250ID: neetID,
	}
	if err := payload.apply(&entry); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	if err := ac.DB.Create(&entry).Error; err != nil {
		return utils.InternalServerError(c, "Could not create attempt")
	}

	return c.Status(fiber.StatusCreated).JSON(toAttemptResponse(&entry))
}

// UpdateAttempt godoc
// @Summary Edit an attempt entry
// @Description Replaces the fields of an existing entry (a correction, not a retry)
// @Tags attempts
// @Accept json
// @Produce json
// @Param attemptId path string true "Attempt id"
// @Param request body AttemptPayload true "Attempt data"
// @Success 200 {object} AttemptResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /attempts/{attemptId} [patch]
func (ac *AttemptController) UpdateAttempt(c *fiber.Ctx) error {
	attemptID, err := uuid.Parse(c.Params("attemptId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid attempt id")
	}

	var entry models.AttemptEntry
	err = ac.DB.Where("id = ? AND user_id = ?", attemptID, middleware.UserID(c)).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Attempt not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var payload AttemptPayload
	if err := c.BodyParser(&payload); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(&payload); err != nil {
		return utils.ValidationError(c, validationDetails(err))
	}
	if err := payload.apply(&entry); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	entry.UpdatedAt = time.Now()
	if err := ac.DB.Save(&entry).Error; err != nil {
		return utils.InternalServerError(c, "Could not update attempt")
	}

	return c.JSON(toAttemptResponse(&entry))
}

// DeleteAttempt godoc
// @Summary Delete an attempt entry
// @Tags attempts
// @Param attemptId path string true "Attempt id"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /attempts/{attemptId} [delete]
func (ac *AttemptController) DeleteAttempt(c *fiber.Ctx) error {
	attemptID, err := uuid.Parse(c.Params("attemptId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid attempt id")
	}

	var entry models.AttemptEntry
	err = ac.DB.Where("id = ? AND user_id = ?", attemptID, middleware.UserID(c)).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Attempt not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := ac.DB.Delete(&entry).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete attempt")
	}
	return utils.NoContent(c)
}

// GetAttemptHistory godoc
// @Summary Attempt history for a problem
// @Description Returns every attempt entry for the (list, problem) pair, newest first
// @Tags attempts
// @Produce json
// @Param listId path string true "List id"
// @Param neetId path int true "Problem id within the list's template"
// @Success 200 {array} AttemptResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /lists/{listId}/problems/{neetId}/attempts [get]
func (ac *AttemptController) GetAttemptHistory(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	listID, err := uuid.Parse(c.Params("listId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid list id")
	}
	neetID, err := c.ParamsInt("neetId")
	if err != nil {
		return utils.BadRequest(c, "Invalid problem id")
	}

	var list models.List
	err = ac.DB.Where("id = ? AND user_id = ?", listID, userID).First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "List not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var entries []models.AttemptEntry
	err = ac.DB.Where("user_id = ? AND list_id = ? AND neet250_id = ?", userID, listID, neetID).
		Order("updated_at desc").Find(&entries).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	history := make([]AttemptResponse, 0, len(entries))
	for i := range entries {
		history = append(history, toAttemptResponse(&entries[i]))
	}
	return c.JSON(fiber.Map{"attempts": history})
}
