package team

import (
	"net/http"
	"slices"

	"github.com/DhavalSuthar-24/schoolsports/internal/common"
	"github.com/DhavalSuthar-24/schoolsports/internal/models"
	"github.com/DhavalSuthar-24/schoolsports/internal/sport"
	"github.com/DhavalSuthar-24/schoolsports/internal/store"
	"github.com/DhavalSuthar-24/schoolsports/pkg/apperrors"
	"github.com/DhavalSuthar-24/schoolsports/pkg/pagination"
	"github.com/DhavalSuthar-24/schoolsports/pkg/responses"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TeamController handles API requests related to teams.
type TeamController struct {
	repo   TeamRepository
	sports sport.SportRepository
	roster *Roster
	tx     *store.Transactor
}

// NewTeamController creates a new TeamController.
func NewTeamController(repo TeamRepository, sports sport.SportRepository, roster *Roster, tx *store.Transactor) *TeamController {
	return &TeamController{repo: repo, sports: sports, roster: roster, tx: tx}
}

type CreateTeamRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	SportID    uint   `json:"sport_id" binding:"required"`
	CoachName  string `json:"coach_name" binding:"omitempty,max=100"`
	MaxMembers int    `json:"max_members" binding:"omitempty,min=0,max=500"`
}

// UpdateTeamRequest changes team details. The sport of a team is fixed.
type UpdateTeamRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=2,max=100"`
	CoachName  *string `json:"coach_name" binding:"omitempty,max=100"`
	MaxMembers *int    `json:"max_members" binding:"omitempty,min=0,max=500"`
	Status     *Status `json:"status" binding:"omitempty,oneof=active inactive"`
}

// MembersResponse compares the cached member list with the one derived from enrollments.
type MembersResponse struct {
	TeamID  uint         `json:"team_id"`
	Members models.IDSet `json:"members"`
	Cached  models.IDSet `json:"cached"`
	InSync  bool         `json:"in_sync"`
}

// CreateTeam godoc
// @Summary Create a team for a sport
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team creation request"
// @Success 201 {object} responses.SuccessResponse{data=Team}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse "Sport not found"
// @Router /teams [post]
// @Security BearerAuth
func (tc *TeamController) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}

	ctx := c.Request.Context()
	s, err := tc.sports.GetSportByID(ctx, req.SportID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if s == nil {
		responses.NotFound(c, "Sport")
		return
	}

	team := Team{
		Name:       req.Name,
		SportID:    s.ID,
		CoachName:  req.CoachName,
		MaxMembers: req.MaxMembers,
		Members:    models.IDSet{},
		Status:     StatusActive,
	}
	if err := tc.repo.CreateTeam(ctx, &team); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Team created successfully", team)
}

// GetAllTeams godoc
// @Summary List teams
// @Tags Teams
// @Produce json
// @Param sport_id query int false "Sport ID"
// @Param status query string false "Status" Enums(active, inactive)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]Team}
// @Router /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
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
	result, err := tc.repo.GetAllTeams(c.Request.Context(), filter, page)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Teams retrieved successfully", result.Items, result.Meta)
}

// GetTeamByID godoc
// @Summary Get a team
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 404 {object} responses.ErrorResponse
// @Router /teams/{team_id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	id, ok := teamID(c)
	if !ok {
		return
	}
	team, err := tc.repo.GetTeamByID(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if team == nil {
		responses.NotFound(c, "Team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team retrieved successfully", team)
}

// GetTeamMembers godoc
// @Summary Team roster derived from active enrollments
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=MembersResponse}
// @Failure 404 {object} responses.ErrorResponse
// @Router /teams/{team_id}/members [get]
func (tc *TeamController) GetTeamMembers(c *gin.Context) {
	id, ok := teamID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	team, err := tc.repo.GetTeamByID(ctx, id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if team == nil {
		responses.NotFound(c, "Team")
		return
	}
	members, err := tc.roster.Members(ctx, id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team members retrieved successfully", MembersResponse{
		TeamID:  id,
		Members: members,
		Cached:  team.Members,
		InSync:  slices.Equal(members, team.Members),
	})
}

// UpdateTeam godoc
// @Summary Update a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param team_id path int true "Team ID"
// @Param team body UpdateTeamRequest true "Team update request"
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 400 {object} responses.ErrorResponse "Capacity below current roster"
// @Failure 404 {object} responses.ErrorResponse
// @Router /teams/{team_id} [put]
// @Security BearerAuth
func (tc *TeamController) UpdateTeam(c *gin.Context) {
	id, ok := teamID(c)
	if !ok {
		return
	}
	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}

	var updated *Team
	err := tc.tx.WithTransaction(c.Request.Context(), func(tx *gorm.DB) error {
		ctx := c.Request.Context()
		repo := tc.repo.WithTx(tx)
		team, err := repo.GetTeamByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if team == nil {
			return apperrors.NotFound("team", "Update", "team %d not found", id)
		}

		changes := map[string]interface{}{}
		if req.Name != nil {
			changes["name"] = *req.Name
		}
		if req.CoachName != nil {
			changes["coach_name"] = *req.CoachName
		}
		if req.MaxMembers != nil {
			if *req.MaxMembers > 0 && *req.MaxMembers < len(team.Members) {
				return apperrors.Validation("team", "Update",
					"max_members %d is below the current roster of %d", *req.MaxMembers, len(team.Members))
			}
			changes["max_members"] = *req.MaxMembers
		}
		if req.Status != nil {
			changes["status"] = *req.Status
		}
		if len(changes) > 0 {
			if err := repo.UpdateTeam(ctx, id, changes); err != nil {
				return err
			}
		}
		updated, err = repo.GetTeamByID(ctx, id)
		return err
	})
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team updated successfully", updated)
}

// ReconcileTeam godoc
// @Summary Rebuild a team's cached member list from active enrollments
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 404 {object} responses.ErrorResponse
// @Router /teams/{team_id}/reconcile [post]
// @Security BearerAuth
func (tc *TeamController) ReconcileTeam(c *gin.Context) {
	id, ok := teamID(c)
	if !ok {
		return
	}
	var team *Team
	err := tc.tx.WithTransaction(c.Request.Context(), func(tx *gorm.DB) error {
		var err error
		team, err = tc.roster.WithTx(tx).Reconcile(c.Request.Context(), id)
		return err
	})
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team roster reconciled", team)
}

func teamID(c *gin.Context) (uint, bool) {
	id, err := common.ParseIDParam(c, "team_id")
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID format", nil)
		return 0, false
	}
	return id, true
}
