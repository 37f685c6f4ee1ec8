package team

import "github.com/gin-gonic/gin"

// RegisterTeamRoutes mounts team endpoints. Reads are public; writes go through the staff chain.
func RegisterTeamRoutes(router *gin.RouterGroup, tc *TeamController, staff ...gin.HandlerFunc) {
	publicTeams := router.Group("/teams")
	{
		publicTeams.GET("", tc.GetAllTeams)
		publicTeams.GET("/:team_id", tc.GetTeamByID)
		publicTeams.GET("/:team_id/members", tc.GetTeamMembers)
	}

	staffTeams := router.Group("/teams")
	staffTeams.Use(staff...)
	{
		staffTeams.POST("", tc.CreateTeam)
		staffTeams.PUT("/:team_id", tc.UpdateTeam)
		staffTeams.POST("/:team_id/reconcile", tc.ReconcileTeam)
	}
}
