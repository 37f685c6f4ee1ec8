package achievement

import (
	"net/http"

	"github.com/DhavalSuthar-24/schoolsports/internal/common"
	"github.com/DhavalSuthar-24/schoolsports/pkg/pagination"
	"github.com/DhavalSuthar-24/schoolsports/pkg/responses"
	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	service *Service
}

func NewAchievementController(service *Service) *AchievementController {
	return &AchievementController{service: service}
}

// CreateAchievement godoc
// @Summary Record an achievement
// @Tags Achievements
// @Accept json
// @Produce json
// @Param achievement body CreateInput true "Achievement"
// @Success 201 {object} responses.SuccessResponse{data=SportsAchievement}
// @Failure 400 {object} responses.ErrorResponse "Missing type-specific fields"
// @Failure 404 {object} responses.ErrorResponse "Sport or tournament not found"
// @Router /achievements [post]
// @Security BearerAuth
func (ac *AchievementController) CreateAchievement(c *gin.Context) {
	var req CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}
	a, err := ac.service.Create(c.Request.Context(), req)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Achievement recorded successfully", a)
}

// GetAchievementByID godoc
// @Summary Get an achievement
// @Tags Achievements
// @Produce json
// @Param achievement_id path int true "Achievement ID"
// @Success 200 {object} responses.SuccessResponse{data=SportsAchievement}
// @Failure 404 {object} responses.ErrorResponse
// @Router /achievements/{achievement_id} [get]
// @Security BearerAuth
func (ac *AchievementController) GetAchievementByID(c *gin.Context) {
	id, ok := pathID(c, "achievement_id")
	if !ok {
		return
	}
	a, err := ac.service.Get(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Achievement retrieved successfully", a)
}

// GetStudentAchievements godoc
// @Summary List a student's achievements
// @Tags Achievements
// @Produce json
// @Param student_id path int true "Student ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]SportsAchievement}
// @Router /students/{student_id}/achievements [get]
// @Security BearerAuth
func (ac *AchievementController) GetStudentAchievements(c *gin.Context) {
	studentID, ok := pathID(c, "student_id")
	if !ok {
		return
	}
	var page pagination.Params
	if err := c.ShouldBindQuery(&page); err != nil {
		responses.ValidationError(c, err)
		return
	}
	result, err := ac.service.ListByStudent(c.Request.Context(), studentID, page)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Achievements retrieved successfully", result.Items, result.Meta)
}

// GetSportsCV godoc
// @Summary Sports section of a student's CV
// @Tags Achievements
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} responses.SuccessResponse{data=SportsCV}
// @Router /students/{student_id}/sports-cv [get]
// @Security BearerAuth
func (ac *AchievementController) GetSportsCV(c *gin.Context) {
	studentID, ok := pathID(c, "student_id")
	if !ok {
		return
	}
	cv, err := ac.service.GetStudentSportsForCV(c.Request.Context(), studentID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Sports CV generated successfully", cv)
}

// GetCertificateEligibility godoc
// @Summary Participation certificate eligibility of an enrollment
// @Tags Certificates
// @Produce json
// @Param enrollment_id path int true "Enrollment ID"
// @Success 200 {object} responses.SuccessResponse{data=Eligibility}
// @Router /enrollments/{enrollment_id}/certificate-eligibility [get]
// @Security BearerAuth
func (ac *AchievementController) GetCertificateEligibility(c *gin.Context) {
	id, ok := pathID(c, "enrollment_id")
	if !ok {
		return
	}
	result, err := ac.service.IsEligibleForParticipationCertificate(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, result.Reason, result)
}

// GetParticipationCertificate godoc
// @Summary Participation certificate data of an enrollment
// @Tags Certificates
// @Produce json
// @Param enrollment_id path int true "Enrollment ID"
// @Success 200 {object} responses.SuccessResponse{data=ParticipationCertificate}
// @Failure 404 {object} responses.ErrorResponse
// @Failure 422 {object} responses.ErrorResponse "Enrollment withdrawn"
// @Router /enrollments/{enrollment_id}/participation-certificate [get]
// @Security BearerAuth
func (ac *AchievementController) GetParticipationCertificate(c *gin.Context) {
	id, ok := pathID(c, "enrollment_id")
	if !ok {
		return
	}
	cert, err := ac.service.GenerateParticipationCertificateData(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Certificate data generated successfully", cert)
}

// GetAchievementCertificate godoc
// @Summary Certificate data of an achievement
// @Tags Certificates
// @Produce json
// @Param achievement_id path int true "Achievement ID"
// @Success 200 {object} responses.SuccessResponse{data=AchievementCertificate}
// @Failure 404 {object} responses.ErrorResponse
// @Router /achievements/{achievement_id}/certificate [get]
// @Security BearerAuth
func (ac *AchievementController) GetAchievementCertificate(c *gin.Context) {
	id, ok := pathID(c, "achievement_id")
	if !ok {
		return
	}
	cert, err := ac.service.GenerateAchievementCertificateData(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Certificate data generated successfully", cert)
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := common.ParseIDParam(c, name)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid "+name+" format", nil)
		return 0, false
	}
	return id, true
}
