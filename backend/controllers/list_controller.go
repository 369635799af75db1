package controllers

import (
	"errors"
	"time"

	"codeclimb/backend/config"
	"codeclimb/backend/models"
	"codeclimb/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"codeclimb/backend/middleware"
)

type ListController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewListController(db *gorm.DB, cfg *config.Config) *ListController {
	return &ListController{DB: db, Cfg: cfg}
}

type CreateListRequest struct {
	Name            string `json:"name" validate:"required"`
	TemplateVersion string `json:"templateVersion" validate:"required"`
}

type RenameListRequest struct {
	Name string `json:"name" validate:"required"`
}

func (lc *ListController) findOwnedList(c *fiber.Ctx, param string) (*models.List, error) {
	listID, err := uuid.Parse(c.Params(param))
	if err != nil {
		return nil, utils.BadRequest(c, "Invalid list id")
	}
	var list models.List
	err = lc.DB.Where("id = ? AND user_id = ?", listID, middleware.UserID(c)).First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound(c, "List not found")
		}
		return nil, utils.InternalServerError(c, "Could not query database")
	}
	return &list, nil
}

// CreateList godoc
// @Summary Create a list
// @Description Creates a new list bound to an existing template version
// @Tags lists
// @Accept json
// @Produce json
// @Param request body CreateListRequest true "List data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /lists [post]
func (lc *ListController) CreateList(c *fiber.Ctx) error {
	var req CreateListRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ValidationError(c, validationDetails(err))
	}

	var templateSize int64
	if err := lc.DB.Model(&models.Problem{}).Where("template_version = ?", req.TemplateVersion).Count(&templateSize).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if templateSize == 0 {
		return utils.BadRequest(c, "Unknown template version")
	}

	list := models.List{
		UserID:          middleware.UserID(c),
		Name:            req.Name,
		TemplateVersion: req.TemplateVersion,
	}
	if err := lc.DB.Create(&list).Error; err != nil {
		return utils.InternalServerError(c, "Could not create list")
	}

	return utils.Created(c, list)
}

// GetLists godoc
// @Summary List owned lists
// @Description Returns the caller's lists, most recently updated first
// @Tags lists
// @Produce json
// @Success 200 {array} models.List
// @Security ApiKeyAuth
// @Router /lists [get]
func (lc *ListController) GetLists(c *fiber.Ctx) error {
	var lists []models.List
	err := lc.DB.Where("user_id = ?", middleware.UserID(c)).Order("updated_at desc").Find(&lists).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(fiber.Map{"lists": lists})
}

// RenameList godoc
// @Summary Rename a list
// @Tags lists
// @Accept json
// @Produce json
// @Param id path string true "List id"
// @Param request body RenameListRequest true "New name"
// @Success 200 {object} models.List
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /lists/{id} [patch]
func (lc *ListController) RenameList(c *fiber.Ctx) error {
	list, errResp := lc.findOwnedList(c, "id")
	if list == nil {
		return errResp
	}

	var req RenameListRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ValidationError(c, validationDetails(err))
	}

	list.Name = req.Name
	list.UpdatedAt = time.Now()
	if err := lc.DB.Save(list).Error; err != nil {
		return utils.InternalServerError(c, "Could not update list")
	}
	return c.JSON(list)
}

// DeprecateList godoc
// @Summary Deprecate a list
// @Description Marks the list deprecated; lists are never hard-deleted
// @Tags lists
// @Produce json
// @Param id path string true "List id"
// @Success 200 {object} models.List
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /lists/{id}/deprecate [post]
func (lc *ListController) DeprecateList(c *fiber.Ctx) error {
	list, errResp := lc.findOwnedList(c, "id")
	if list == nil {
		return errResp
	}

	list.Deprecated = true
	list.UpdatedAt = time.Now()
	if err := lc.DB.Save(list).Error; err != nil {
		return utils.InternalServerError(c, "Could not update list")
	}
	return c.JSON(list)
}
