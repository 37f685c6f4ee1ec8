package sport

import (
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/schoolsports/pkg/apperrors"
	"github.com/DhavalSuthar-24/schoolsports/pkg/pagination"
	"github.com/DhavalSuthar-24/schoolsports/pkg/responses"
	"github.com/gin-gonic/gin"
)

// SportController handles API requests related to sports.
type SportController struct {
	repo SportRepository
}

// NewSportController creates a new SportController.
func NewSportController(repo SportRepository) *SportController {
	return &SportController{repo: repo}
}

// --- DTOs (Data Transfer Objects) for requests/responses ---

type CreateSportRequest struct {
	Name        string   `json:"name" binding:"required,min=2,max=100"`
	Description string   `json:"description" binding:"omitempty,max=5000"`
	Category    Category `json:"category" binding:"required,oneof=individual team traditional"`
	Status      Status   `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateSportRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string   `json:"description" binding:"omitempty,max=5000"`
	Category    *Category `json:"category" binding:"omitempty,oneof=individual team traditional"`
	Status      *Status   `json:"status" binding:"omitempty,oneof=active inactive"`
}

// CreateSport godoc
// @Summary Create a new sport
// @Tags Sports
// @Accept json
// @Produce json
// @Param sport body CreateSportRequest true "Sport creation request"
// @Success 201 {object} responses.SuccessResponse{data=Sport}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 409 {object} responses.ErrorResponse "Sport with this name already exists"
// @Router /sports [post]
// @Security BearerAuth
func (sc *SportController) CreateSport(c *gin.Context) {
	var req CreateSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}

	existing, err := sc.repo.FindSportByName(c.Request.Context(), req.Name)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "Sport with this name already exists", nil)
		return
	}

	sport := Sport{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Status:      StatusActive, // Default to active
	}
	if req.Status != "" {
		sport.Status = req.Status
	}

	if err := sc.repo.CreateSport(c.Request.Context(), &sport); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Sport created successfully", sport)
}

// GetAllSports godoc
// @Summary List sports
// @Tags Sports
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param category query string false "Category filter"
// @Param status query string false "Status filter"
// @Success 200 {object} responses.PaginatedResponse{data=[]Sport}
// @Router /sports [get]
func (sc *SportController) GetAllSports(c *gin.Context) {
	var (
		filter Filter
		page   pagination.Params
	)
	if err := c.ShouldBindQuery(&filter); err != nil {
		responses.ValidationError(c, err)
		return
	}
	if err := c.ShouldBindQuery(&page); err != nil {
		responses.ValidationError(c, err)
		return
	}

	result, err := sc.repo.GetAllSports(c.Request.Context(), filter, page)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Sports retrieved successfully", result.Items, result.Meta)
}

// GetSportByID godoc
// @Summary Get a sport by ID
// @Tags Sports
// @Produce json
// @Param sport_id path int true "Sport ID"
// @Success 200 {object} responses.SuccessResponse{data=Sport}
// @Failure 404 {object} responses.ErrorResponse "Sport not found"
// @Router /sports/{sport_id} [get]
func (sc *SportController) GetSportByID(c *gin.Context) {
	sportID, err := strconv.ParseUint(c.Param("sport_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid sport ID format", nil)
		return
	}

	sport, err := sc.repo.GetSportByID(c.Request.Context(), uint(sportID))
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if sport == nil {
		responses.NotFound(c, "Sport")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Sport retrieved successfully", sport)
}

// UpdateSport godoc
// @Summary Update a sport
// @Tags Sports
// @Accept json
// @Produce json
// @Param sport_id path int true "Sport ID"
// @Param sport body UpdateSportRequest true "Sport update request"
// @Success 200 {object} responses.SuccessResponse{data=Sport}
// @Failure 404 {object} responses.ErrorResponse "Sport not found"
// @Router /sports/{sport_id} [put]
// @Security BearerAuth
func (sc *SportController) UpdateSport(c *gin.Context) {
	sportID, err := strconv.ParseUint(c.Param("sport_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid sport ID format", nil)
		return
	}

	var req UpdateSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}

	ctx := c.Request.Context()
	sport, err := sc.repo.GetSportByID(ctx, uint(sportID))
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if sport == nil {
		responses.FromError(c, apperrors.NotFound("sport", "Update", "sport %d not found", sportID))
		return
	}

	changes := map[string]interface{}{}
	if req.Name != nil && *req.Name != sport.Name {
		other, err := sc.repo.FindSportByName(ctx, *req.Name)
		if err != nil {
			responses.FromError(c, err)
			return
		}
		if other != nil && other.ID != sport.ID {
			responses.SendError(c, http.StatusConflict, "Another sport with this name already exists", nil)
			return
		}
		changes["name"] = *req.Name
	}
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if req.Category != nil {
		changes["category"] = *req.Category
	}
	if req.Status != nil {
		changes["status"] = *req.Status
	}
	if len(changes) > 0 {
		if err := sc.repo.UpdateSport(ctx, sport.ID, changes); err != nil {
			responses.FromError(c, err)
			return
		}
	}

	updated, err := sc.repo.GetSportByID(ctx, sport.ID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Sport updated successfully", updated)
}
