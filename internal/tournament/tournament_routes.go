package tournament

import "github.com/gin-gonic/gin"

// RegisterTournamentRoutes mounts tournament endpoints. Reads are public; writes go
// through the staff chain.
func RegisterTournamentRoutes(router *gin.RouterGroup, tc *TournamentController, staff ...gin.HandlerFunc) {
	public := router.Group("/tournaments")
	{
		public.GET("", tc.GetTournaments)
		public.GET("/:tournament_id", tc.GetTournamentByID)
		public.GET("/:tournament_id/player-stats", tc.GetPlayerStatistics)
	}

	managed := router.Group("/tournaments")
	managed.Use(staff...)
	{
		managed.POST("", tc.CreateTournament)
		managed.DELETE("/:tournament_id", tc.DeleteTournament)
		managed.PUT("/:tournament_id/status", tc.UpdateStatus)
		managed.POST("/:tournament_id/teams", tc.AddTeams)
		managed.POST("/:tournament_id/participants", tc.AddParticipants)
		managed.POST("/:tournament_id/matches", tc.CreateSchedule)
		managed.PUT("/:tournament_id/matches/:match_id/result", tc.RecordResult)
		managed.POST("/:tournament_id/photos", tc.UploadPhotos)
		managed.POST("/:tournament_id/videos", tc.UploadVideos)
	}
}
