package controllers

import (
	"errors"

	"codeclimb/backend/config"
	"codeclimb/backend/dashboard"
	"codeclimb/backend/middleware"
	"codeclimb/backend/models"
	"codeclimb/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProblemController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProblemController(db *gorm.DB, cfg *config.Config) *ProblemController {
	return &ProblemController{DB: db, Cfg: cfg}
}

type ProblemWithLatestAttempt struct {
	Neet250ID     int               `json:"neet250Id"`
	OrderIndex    int               `json:"orderIndex"`
	Title         string            `json:"title"`
	LeetcodeSlug  string            `json:"leetcodeSlug"`
	Category      string            `json:"category"`
	Difficulty    models.Difficulty `json:"difficulty"`
	LatestAttempt *AttemptResponse  `json:"latestAttempt"`
}

// GetProblems godoc
// @Summary Problems of a list with their latest attempt
// @Description Returns the list's full template in solving order, each problem joined with its current attempt entry
// @Tags problems
// @Produce json
// @Param listId path string true "List id"
// @Success 200 {array} ProblemWithLatestAttempt
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /lists/{listId}/problems [get]
func (pc *ProblemController) GetProblems(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	listID, err := uuid.Parse(c.Params("listId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid list id")
	}

	var list models.List
	err = pc.DB.Where("id = ? AND user_id = ?", listID, userID).First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "List not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var problems []models.Problem
	err = pc.DB.Where("template_version = ?", list.TemplateVersion).
		Order("order_index asc").Find(&problems).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	var entries []models.AttemptEntry
	err = pc.DB.Where("user_id = ? AND list_id = ?", userID, listID).Find(&entries).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	latest := dashboard.LatestPerProblem(entries)

	out := make([]ProblemWithLatestAttempt, 0, len(problems))
	for _, p := range problems {
		item := ProblemWithLatestAttempt{
			Neet250ID:    p.Neet250ID,
			OrderIndex:   p.OrderIndex,
			Title:        p.Title,
			LeetcodeSlug: p.LeetcodeSlug,
			Category:     p.Category,
			Difficulty:   p.Difficulty,
		}
		if entry, ok := latest[p.Neet250ID]; ok {
			resp := toAttemptResponse(&entry)
			item.LatestAttempt = &resp
		}
		out = append(out, item)
	}

	return c.JSON(fiber.Map{"problems": out})
}
