package stats

import "github.com/gin-gonic/gin"

// RegisterStatsRoutes mounts the statistics endpoints. Tournament figures are
// public; enrollment and student figures need authentication.
func RegisterStatsRoutes(router *gin.RouterGroup, sc *StatsController, authenticated ...gin.HandlerFunc) {
	stats := router.Group("/stats")
	{
		stats.GET("/tournaments/:tournament_id", sc.GetTournamentStats)
		stats.GET("/tournaments/:tournament_id/players", sc.GetPlayerStats)
	}

	private := router.Group("/stats")
	private.Use(authenticated...)
	{
		private.GET("/enrollments", sc.GetEnrollmentStats)
		private.GET("/students/:student_id", sc.GetStudentSummary)
	}
}
