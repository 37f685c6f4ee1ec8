package achievement

import "github.com/gin-gonic/gin"

// RegisterAchievementRoutes mounts achievement, certificate and CV endpoints.
func RegisterAchievementRoutes(router *gin.RouterGroup, ac *AchievementController, authenticated, staff []gin.HandlerFunc) {
	reads := router.Group("")
	reads.Use(authenticated...)
	{
		reads.GET("/achievements/:achievement_id", ac.GetAchievementByID)
		reads.GET("/achievements/:achievement_id/certificate", ac.GetAchievementCertificate)
		reads.GET("/students/:student_id/achievements", ac.GetStudentAchievements)
		reads.GET("/students/:student_id/sports-cv", ac.GetSportsCV)
		reads.GET("/enrollments/:enrollment_id/certificate-eligibility", ac.GetCertificateEligibility)
		reads.GET("/enrollments/:enrollment_id/participation-certificate", ac.GetParticipationCertificate)
	}

	writes := router.Group("/achievements")
	writes.Use(staff...)
	{
		writes.POST("", ac.CreateAchievement)
	}
}
