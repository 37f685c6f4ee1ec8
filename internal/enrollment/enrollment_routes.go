package enrollment

import "github.com/gin-gonic/gin"

// RegisterEnrollmentRoutes mounts enrollment and attendance endpoints. Reads need
// authentication; writes go through the staff chain.
func RegisterEnrollmentRoutes(router *gin.RouterGroup, ec *EnrollmentController, authenticated, staff []gin.HandlerFunc) {
	reads := router.Group("")
	reads.Use(authenticated...)
	{
		reads.GET("/enrollments", ec.GetEnrollments)
		reads.GET("/enrollments/:enrollment_id", ec.GetEnrollmentByID)
		reads.GET("/enrollments/:enrollment_id/attendance", ec.GetAttendance)
		reads.GET("/sports/:sport_id/can-enroll", ec.CanEnroll)
	}

	writes := router.Group("")
	writes.Use(staff...)
	{
		writes.POST("/enrollments", ec.Enroll)
		writes.PUT("/enrollments/:enrollment_id/team", ec.AssignToTeam)
		writes.POST("/enrollments/:enrollment_id/withdraw", ec.Withdraw)
		writes.POST("/enrollments/:enrollment_id/complete", ec.Complete)
		writes.POST("/enrollments/:enrollment_id/attendance", ec.MarkAttendance)
		writes.POST("/attendance/bulk", ec.BulkMarkAttendance)
	}
}
