package rmiddleware

import (
	"net/http"
	"strings"

	"github.com/DhavalSuthar-24/schoolsports/internal/common"
	"github.com/DhavalSuthar-24/schoolsports/pkg/responses"
	"github.com/gin-gonic/gin"
)

// Roles carried in the token's role claim.
const (
	RoleAdmin         = "admin"
	RoleCoach         = "coach"
	RoleSportsTeacher = "sports_teacher"
	RoleStudent       = "student"
)

// RoleMiddleware lets the request through when the authenticated user's role is one
// of requiredRoles. It must run after middleware.AuthMiddleware.
func RoleMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := common.GetUserIDFromContext(c); err != nil {
			responses.SendError(c, http.StatusUnauthorized, "Unauthorized: "+err.Error(), nil)
			return
		}

		userRole := common.GetUserRoleFromContext(c)
		for _, requiredRole := range requiredRoles {
			if strings.EqualFold(userRole, requiredRole) {
				c.Next()
				return
			}
		}
		responses.SendError(c, http.StatusForbidden, "You don't have permission to access this resource",
			gin.H{"required": requiredRoles, "user_role": userRole})
	}
}

// AdminMiddleware is a convenience middleware for admin-only access
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(RoleAdmin)
}

// StaffMiddleware admits the staff who run the sports program.
func StaffMiddleware() gin.HandlerFunc {
	return RoleMiddleware(RoleAdmin, RoleCoach, RoleSportsTeacher)
}
