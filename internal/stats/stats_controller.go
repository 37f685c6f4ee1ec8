package stats

import (
	"net/http"

	"github.com/DhavalSuthar-24/schoolsports/internal/common"
	"github.com/DhavalSuthar-24/schoolsports/pkg/responses"
	"github.com/gin-gonic/gin"
)

type StatsController struct {
	aggregator *Aggregator
}

func NewStatsController(aggregator *Aggregator) *StatsController {
	return &StatsController{aggregator: aggregator}
}

// GetEnrollmentStats godoc
// @Summary Enrollment counts and attendance average
// @Tags Statistics
// @Produce json
// @Param sport_id query int false "Sport ID"
// @Param team_id query int false "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=EnrollmentStats}
// @Router /stats/enrollments [get]
// @Security BearerAuth
func (sc *StatsController) GetEnrollmentStats(c *gin.Context) {
	var filter Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		responses.ValidationError(c, err)
		return
	}
	out, err := sc.aggregator.GetEnrollmentStats(c.Request.Context(), filter)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Enrollment statistics retrieved successfully", out)
}

// GetStudentSummary godoc
// @Summary A student's participation across sports
// @Tags Statistics
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} responses.SuccessResponse{data=ParticipationSummary}
// @Router /stats/students/{student_id} [get]
// @Security BearerAuth
func (sc *StatsController) GetStudentSummary(c *gin.Context) {
	studentID, err := common.ParseIDParam(c, "student_id")
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid student ID format", nil)
		return
	}
	out, err := sc.aggregator.GetStudentParticipationSummary(c.Request.Context(), studentID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Participation summary retrieved successfully", out)
}

// GetTournamentStats godoc
// @Summary Roster, schedule progress and tallies of a tournament
// @Tags Statistics
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Success 200 {object} responses.SuccessResponse{data=TournamentStats}
// @Failure 404 {object} responses.ErrorResponse
// @Router /stats/tournaments/{tournament_id} [get]
func (sc *StatsController) GetTournamentStats(c *gin.Context) {
	tournamentID, err := common.ParseIDParam(c, "tournament_id")
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid tournament ID format", nil)
		return
	}
	out, err := sc.aggregator.GetTournamentStatistics(c.Request.Context(), tournamentID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Tournament statistics retrieved successfully", out)
}

// GetPlayerStats godoc
// @Summary Win/loss/draw tallies of a tournament
// @Tags Statistics
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Success 200 {object} responses.SuccessResponse{data=[]tournament.Tally}
// @Router /stats/tournaments/{tournament_id}/players [get]
func (sc *StatsController) GetPlayerStats(c *gin.Context) {
	tournamentID, err := common.ParseIDParam(c, "tournament_id")
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid tournament ID format", nil)
		return
	}
	out, err := sc.aggregator.GetPlayerStatistics(c.Request.Context(), tournamentID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player statistics retrieved successfully", out)
}
