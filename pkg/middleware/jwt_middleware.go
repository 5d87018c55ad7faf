package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	mem "fitlog/pkg/memcache"
	"fitlog/pkg/utils"
)

// JWTAuthMiddleware validates the bearer token and the session it names.
// The session check keeps token lifetime and activity timeout separate: a
// syntactically valid token is still rejected once its session idles out.
func JWTAuthMiddleware(sessions mem.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		if _, ok := sessions.Touch(claims.SessionID, time.Now()); !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Session expired")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("session_id", claims.SessionID)
		c.Next()
	}
}
