package middleware

import (
	"net/http"
	"strings"

	"github.com/DhavalSuthar-24/schoolsports/internal/common"
	"github.com/DhavalSuthar-24/schoolsports/pkg/responses"
	"github.com/DhavalSuthar-24/schoolsports/pkg/token"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and stores the user id and role in the
// gin context. The user id also becomes the actor of the request's audit entries.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.SendError(c, http.StatusUnauthorized, "Authorization header is required", nil)
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			responses.SendError(c, http.StatusUnauthorized, "Invalid Authorization header format. Expected: Bearer <token>", nil)
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			responses.SendError(c, http.StatusUnauthorized, "Invalid or expired token: "+err.Error(), nil)
			return
		}

		c.Set(common.ContextUserIDKey, claims.UserID)
		c.Set(common.ContextUserRoleKey, claims.Role)

		ctx := c.Request.Context()
		meta := common.RequestMetaFrom(ctx)
		actor := claims.UserID
		meta.ActorID = &actor
		c.Request = c.Request.WithContext(common.WithRequestMeta(ctx, meta))
		c.Next()
	}
}
