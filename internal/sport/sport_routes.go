package sport

import (
	"github.com/gin-gonic/gin"
)

// RegisterSportRoutes mounts the sport catalogue. Reads are public; writes go
// through the staff chain (authentication then role check).
func RegisterSportRoutes(router *gin.RouterGroup, sportController *SportController, staff ...gin.HandlerFunc) {
	publicSports := router.Group("/sports")
	{
		publicSports.GET("", sportController.GetAllSports)
		publicSports.GET("/:sport_id", sportController.GetSportByID)
	}

	adminSports := router.Group("/sports")
	adminSports.Use(staff...)
	{
		adminSports.POST("", sportController.CreateSport)
		adminSports.PUT("/:sport_id", sportController.UpdateSport)
	}
}
