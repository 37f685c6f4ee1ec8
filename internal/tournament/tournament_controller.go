package tournament

import (
	"context"
	"net/http"

	"github.com/DhavalSuthar-24/schoolsports/internal/common"
	"github.com/DhavalSuthar-24/schoolsports/pkg/pagination"
	"github.com/DhavalSuthar-24/schoolsports/pkg/responses"
	"github.com/gin-gonic/gin"
)

// TournamentController handles API requests for tournaments, schedules and results.
type TournamentController struct {
	scheduler *Scheduler
}

func NewTournamentController(scheduler *Scheduler) *TournamentController {
	return &TournamentController{scheduler: scheduler}
}

type UpdateStatusRequest struct {
	Status Status `json:"status" binding:"required,oneof=scheduled ongoing completed cancelled"`
}

type AddTeamsRequest struct {
	TeamIDs []uint `json:"team_ids" binding:"required,min=1"`
}

type AddParticipantsRequest struct {
	StudentIDs []uint `json:"student_ids" binding:"required,min=1"`
}

type ScheduleRequest struct {
	Matches []Match `json:"matches" binding:"required,min=1"`
}

type MediaRequest struct {
	URLs []string `json:"urls" binding:"required,min=1,dive,url"`
}

// CreateTournament godoc
// @Summary Create a tournament
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament body CreateInput true "Tournament creation request"
// @Success 201 {object} responses.SuccessResponse{data=Tournament}
// @Failure 400 {object} responses.ErrorResponse "Invalid dates"
// @Failure 404 {object} responses.ErrorResponse "Sport not found"
// @Router /tournaments [post]
// @Security BearerAuth
func (tc *TournamentController) CreateTournament(c *gin.Context) {
	var req CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}
	t, err := tc.scheduler.CreateTournament(c.Request.Context(), req)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Tournament created successfully", t)
}

// GetTournaments godoc
// @Summary List tournaments
// @Tags Tournaments
// @Produce json
// @Param sport_id query int false "Sport ID"
// @Param status query string false "Status" Enums(scheduled, ongoing, completed, cancelled)
// @Param type query string false "Tournament type"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]Tournament}
// @Router /tournaments [get]
func (tc *TournamentController) GetTournaments(c *gin.Context) {
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
	result, err := tc.scheduler.List(c.Request.Context(), filter, page)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Tournaments retrieved successfully", result.Items, result.Meta)
}

// GetTournamentByID godoc
// @Summary Get a tournament
// @Tags Tournaments
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Success 200 {object} responses.SuccessResponse{data=Tournament}
// @Failure 404 {object} responses.ErrorResponse
// @Router /tournaments/{tournament_id} [get]
func (tc *TournamentController) GetTournamentByID(c *gin.Context) {
	id, ok := tournamentID(c)
	if !ok {
		return
	}
	t, err := tc.scheduler.Get(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Tournament retrieved successfully", t)
}

// UpdateStatus godoc
// @Summary Change a tournament's status
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param body body UpdateStatusRequest true "Target status"
// @Success 200 {object} responses.SuccessResponse{data=Tournament}
// @Failure 409 {object} responses.ErrorResponse "Transition not allowed"
// @Router /tournaments/{tournament_id}/status [put]
// @Security BearerAuth
func (tc *TournamentController) UpdateStatus(c *gin.Context) {
	id, ok := tournamentID(c)
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}
	t, err := tc.scheduler.UpdateTournamentStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Tournament status updated", t)
}

// DeleteTournament godoc
// @Summary Delete a tournament that is not completed
// @Tags Tournaments
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 409 {object} responses.ErrorResponse "Tournament completed"
// @Router /tournaments/{tournament_id} [delete]
// @Security BearerAuth
func (tc *TournamentController) DeleteTournament(c *gin.Context) {
	id, ok := tournamentID(c)
	if !ok {
		return
	}
	if err := tc.scheduler.DeleteTournament(c.Request.Context(), id); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Tournament deleted successfully", nil)
}

// AddTeams godoc
// @Summary Register teams in a tournament
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param body body AddTeamsRequest true "Team IDs"
// @Success 200 {object} responses.SuccessResponse{data=Tournament}
// @Failure 400 {object} responses.ErrorResponse "Team of another sport"
// @Failure 404 {object} responses.ErrorResponse
// @Router /tournaments/{tournament_id}/teams [post]
// @Security BearerAuth
func (tc *TournamentController) AddTeams(c *gin.Context) {
	id, ok := tournamentID(c)
	if !ok {
		return
	}
	var req AddTeamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}
	t, err := tc.scheduler.AddTeams(c.Request.Context(), id, req.TeamIDs)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Teams added to tournament", t)
}

// AddParticipants godoc
// @Summary Register individual participants in a tournament
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param body body AddParticipantsRequest true "Student IDs"
// @Success 200 {object} responses.SuccessResponse{data=Tournament}
// @Router /tournaments/{tournament_id}/participants [post]
// @Security BearerAuth
func (tc *TournamentController) AddParticipants(c *gin.Context) {
	id, ok := tournamentID(c)
	if !ok {
		return
	}
	var req AddParticipantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}
	t, err := tc.scheduler.AddParticipants(c.Request.Context(), id, req.StudentIDs)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Participants added to tournament", t)
}

// CreateSchedule godoc
// @Summary Append matches to a tournament schedule
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param body body ScheduleRequest true "Matches"
// @Success 200 {object} responses.SuccessResponse{data=Tournament}
// @Failure 400 {object} responses.ErrorResponse "Match outside tournament dates or sides not registered"
// @Router /tournaments/{tournament_id}/matches [post]
// @Security BearerAuth
func (tc *TournamentController) CreateSchedule(c *gin.Context) {
	id, ok := tournamentID(c)
	if !ok {
		return
	}
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}
	t, err := tc.scheduler.CreateMatchSchedule(c.Request.Context(), id, req.Matches)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match schedule created", t)
}

// RecordResult godoc
// @Summary Record the result of a scheduled match
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param match_id path string true "Match ID"
// @Param body body MatchResult true "Result"
// @Success 200 {object} responses.SuccessResponse{data=Match}
// @Failure 400 {object} responses.ErrorResponse "Winner is not a side of the match"
// @Failure 404 {object} responses.ErrorResponse
// @Router /tournaments/{tournament_id}/matches/{match_id}/result [put]
// @Security BearerAuth
func (tc *TournamentController) RecordResult(c *gin.Context) {
	id, ok := tournamentID(c)
	if !ok {
		return
	}
	var req MatchResult
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}
	m, err := tc.scheduler.RecordMatchResult(c.Request.Context(), id, c.Param("match_id"), req)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match result recorded", m)
}

// GetPlayerStatistics godoc
// @Summary Win/loss/draw tallies of every team and participant
// @Tags Tournaments
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Success 200 {object} responses.SuccessResponse{data=[]Tally}
// @Router /tournaments/{tournament_id}/player-stats [get]
func (tc *TournamentController) GetPlayerStatistics(c *gin.Context) {
	id, ok := tournamentID(c)
	if !ok {
		return
	}
	tallies, err := tc.scheduler.GetPlayerStatistics(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player statistics retrieved successfully", tallies)
}

// UploadPhotos godoc
// @Summary Attach photo URLs to a tournament
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param body body MediaRequest true "Photo URLs"
// @Success 200 {object} responses.SuccessResponse{data=Tournament}
// @Router /tournaments/{tournament_id}/photos [post]
// @Security BearerAuth
func (tc *TournamentController) UploadPhotos(c *gin.Context) {
	tc.uploadMedia(c, tc.scheduler.UploadPhotos, "Photos added to tournament")
}

// UploadVideos godoc
// @Summary Attach video URLs to a tournament
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param body body MediaRequest true "Video URLs"
// @Success 200 {object} responses.SuccessResponse{data=Tournament}
// @Router /tournaments/{tournament_id}/videos [post]
// @Security BearerAuth
func (tc *TournamentController) UploadVideos(c *gin.Context) {
	tc.uploadMedia(c, tc.scheduler.UploadVideos, "Videos added to tournament")
}

type mediaFunc func(ctx context.Context, tournamentID uint, urls []string) (*Tournament, error)

func (tc *TournamentController) uploadMedia(c *gin.Context, upload mediaFunc, message string) {
	id, ok := tournamentID(c)
	if !ok {
		return
	}
	var req MediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}
	t, err := upload(c.Request.Context(), id, req.URLs)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, message, t)
}

func tournamentID(c *gin.Context) (uint, bool) {
	id, err := common.ParseIDParam(c, "tournament_id")
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid tournament ID format", nil)
		return 0, false
	}
	return id, true
}
