package enrollment

import (
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/schoolsports/internal/common"
	"github.com/DhavalSuthar-24/schoolsports/pkg/pagination"
	"github.com/DhavalSuthar-24/schoolsports/pkg/responses"
	"github.com/gin-gonic/gin"
)

// EnrollmentController handles API requests for enrollments and attendance.
type EnrollmentController struct {
	manager *Manager
}

func NewEnrollmentController(manager *Manager) *EnrollmentController {
	return &EnrollmentController{manager: manager}
}

type AssignTeamRequest struct {
	TeamID uint `json:"team_id" binding:"required"`
}

type WithdrawRequest struct {
	Remarks string `json:"remarks" binding:"omitempty,max=2000"`
}

type MarkAttendanceRequest struct {
	Present *bool `json:"present" binding:"required"`
}

type BulkAttendanceRequest struct {
	Marks []AttendanceMark `json:"marks" binding:"required,min=1,dive"`
}

type AttendanceResponse struct {
	EnrollmentID    uint `json:"enrollment_id"`
	AttendanceCount int  `json:"attendance_count"`
	TotalSessions   int  `json:"total_sessions"`
	Percentage      int  `json:"percentage"`
}

// Enroll godoc
// @Summary Enroll a student in a sport
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param enrollment body EnrollInput true "Enrollment request"
// @Success 201 {object} responses.SuccessResponse{data=SportsEnrollment}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 422 {object} responses.ErrorResponse "Sport inactive or duplicate enrollment"
// @Router /enrollments [post]
// @Security BearerAuth
func (ec *EnrollmentController) Enroll(c *gin.Context) {
	var req EnrollInput
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}
	e, err := ec.manager.Enroll(c.Request.Context(), req)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Student enrolled successfully", e)
}

// GetEnrollments godoc
// @Summary List enrollments
// @Tags Enrollments
// @Produce json
// @Param sport_id query int false "Sport ID"
// @Param student_id query int false "Student ID"
// @Param team_id query int false "Team ID"
// @Param status query string false "Status" Enums(active, withdrawn, completed)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]SportsEnrollment}
// @Router /enrollments [get]
// @Security BearerAuth
func (ec *EnrollmentController) GetEnrollments(c *gin.Context) {
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
	result, err := ec.manager.List(c.Request.Context(), filter, page)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Enrollments retrieved successfully", result.Items, result.Meta)
}

// GetEnrollmentByID godoc
// @Summary Get an enrollment
// @Tags Enrollments
// @Produce json
// @Param enrollment_id path int true "Enrollment ID"
// @Success 200 {object} responses.SuccessResponse{data=SportsEnrollment}
// @Failure 404 {object} responses.ErrorResponse
// @Router /enrollments/{enrollment_id} [get]
// @Security BearerAuth
func (ec *EnrollmentController) GetEnrollmentByID(c *gin.Context) {
	id, ok := enrollmentID(c)
	if !ok {
		return
	}
	e, err := ec.manager.Get(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Enrollment retrieved successfully", e)
}

// AssignToTeam godoc
// @Summary Assign an enrollment to a team
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param enrollment_id path int true "Enrollment ID"
// @Param body body AssignTeamRequest true "Target team"
// @Success 200 {object} responses.SuccessResponse{data=SportsEnrollment}
// @Failure 400 {object} responses.ErrorResponse "Team belongs to another sport or is full"
// @Failure 409 {object} responses.ErrorResponse "Enrollment not active"
// @Router /enrollments/{enrollment_id}/team [put]
// @Security BearerAuth
func (ec *EnrollmentController) AssignToTeam(c *gin.Context) {
	id, ok := enrollmentID(c)
	if !ok {
		return
	}
	var req AssignTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}
	e, err := ec.manager.AssignToTeam(c.Request.Context(), id, req.TeamID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Enrollment assigned to team", e)
}

// Withdraw godoc
// @Summary Withdraw a student from a sport
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param enrollment_id path int true "Enrollment ID"
// @Param body body WithdrawRequest false "Remarks"
// @Success 200 {object} responses.SuccessResponse{data=SportsEnrollment}
// @Failure 409 {object} responses.ErrorResponse "Enrollment already withdrawn or completed"
// @Router /enrollments/{enrollment_id}/withdraw [post]
// @Security BearerAuth
func (ec *EnrollmentController) Withdraw(c *gin.Context) {
	id, ok := enrollmentID(c)
	if !ok {
		return
	}
	var req WithdrawRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.ValidationError(c, err)
			return
		}
	}
	e, err := ec.manager.WithdrawStudent(c.Request.Context(), id, req.Remarks)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Student withdrawn successfully", e)
}

// Complete godoc
// @Summary Complete an enrollment
// @Tags Enrollments
// @Produce json
// @Param enrollment_id path int true "Enrollment ID"
// @Success 200 {object} responses.SuccessResponse{data=SportsEnrollment}
// @Failure 409 {object} responses.ErrorResponse "Enrollment not active"
// @Router /enrollments/{enrollment_id}/complete [post]
// @Security BearerAuth
func (ec *EnrollmentController) Complete(c *gin.Context) {
	id, ok := enrollmentID(c)
	if !ok {
		return
	}
	e, err := ec.manager.CompleteEnrollment(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Enrollment completed successfully", e)
}

// MarkAttendance godoc
// @Summary Record one session for an enrollment
// @Tags Attendance
// @Accept json
// @Produce json
// @Param enrollment_id path int true "Enrollment ID"
// @Param body body MarkAttendanceRequest true "Presence"
// @Success 200 {object} responses.SuccessResponse{data=SportsEnrollment}
// @Failure 409 {object} responses.ErrorResponse "Enrollment not active"
// @Router /enrollments/{enrollment_id}/attendance [post]
// @Security BearerAuth
func (ec *EnrollmentController) MarkAttendance(c *gin.Context) {
	id, ok := enrollmentID(c)
	if !ok {
		return
	}
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}
	e, err := ec.manager.MarkAttendance(c.Request.Context(), id, *req.Present)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Attendance marked", e)
}

// GetAttendance godoc
// @Summary Attendance counters and percentage of an enrollment
// @Tags Attendance
// @Produce json
// @Param enrollment_id path int true "Enrollment ID"
// @Success 200 {object} responses.SuccessResponse{data=AttendanceResponse}
// @Router /enrollments/{enrollment_id}/attendance [get]
// @Security BearerAuth
func (ec *EnrollmentController) GetAttendance(c *gin.Context) {
	id, ok := enrollmentID(c)
	if !ok {
		return
	}
	e, err := ec.manager.Get(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Attendance retrieved successfully", AttendanceResponse{
		EnrollmentID:    e.ID,
		AttendanceCount: e.AttendanceCount,
		TotalSessions:   e.TotalSessions,
		Percentage:      e.AttendancePercentage(),
	})
}

// BulkMarkAttendance godoc
// @Summary Record one session for many enrollments
// @Description Items that fail are skipped; the response lists the enrollments that were updated.
// @Tags Attendance
// @Accept json
// @Produce json
// @Param body body BulkAttendanceRequest true "Attendance marks"
// @Success 200 {object} responses.SuccessResponse{data=[]SportsEnrollment}
// @Router /attendance/bulk [post]
// @Security BearerAuth
func (ec *EnrollmentController) BulkMarkAttendance(c *gin.Context) {
	var req BulkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}
	updated := ec.manager.BulkMarkAttendance(c.Request.Context(), req.Marks)
	msg := "Attendance marked for " + strconv.Itoa(len(updated)) + " of " + strconv.Itoa(len(req.Marks)) + " enrollments"
	responses.SendSuccess(c, http.StatusOK, msg, updated)
}

// CanEnroll godoc
// @Summary Check whether a student may enroll in a sport
// @Tags Enrollments
// @Produce json
// @Param sport_id path int true "Sport ID"
// @Param student_id query int true "Student ID"
// @Success 200 {object} responses.SuccessResponse{data=Eligibility}
// @Router /sports/{sport_id}/can-enroll [get]
// @Security BearerAuth
func (ec *EnrollmentController) CanEnroll(c *gin.Context) {
	sportID, err := common.ParseIDParam(c, "sport_id")
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid sport ID format", nil)
		return
	}
	studentID, err := strconv.ParseUint(c.Query("student_id"), 10, 32)
	if err != nil || studentID == 0 {
		responses.SendError(c, http.StatusBadRequest, "student_id query parameter is required", nil)
		return
	}
	result, err := ec.manager.CanEnroll(c.Request.Context(), sportID, uint(studentID))
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", result)
}

func enrollmentID(c *gin.Context) (uint, bool) {
	id, err := common.ParseIDParam(c, "enrollment_id")
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid enrollment ID format", nil)
		return 0, false
	}
	return id, true
}
