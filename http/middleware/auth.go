package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ghrc19/Hed-System/config"
	"github.com/ghrc19/Hed-System/infra"
	"github.com/ghrc19/Hed-System/utils"
)

// AuthMiddleware gates every protected route on session presence: the token
// must parse AND its session must still exist in Redis (logout deletes it).
func AuthMiddleware(inf *infra.Infra, env *config.EnvConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		tokenString := utils.ExtractToken(c)
		if tokenString == "" {
			utils.JSON401(c, "You are not logged in")
			c.Abort()
			return
		}

		token, err := utils.ParseToken(tokenString, env)
		if err != nil || !token.Valid {
			utils.JSON401(c, "Invalid or expired token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.JSON401(c, "Invalid token claims")
			c.Abort()
			return
		}

		if err := utils.InjectClaimsToContext(c, claims); err != nil {
			utils.JSON401(c, err.Error())
			c.Abort()
			return
		}

		sessionID := c.GetString("session_id")
		userID, err := inf.Redis.GetSession(ctx, sessionID)
		if err != nil {
			inf.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to check session: %v", err)
			utils.JSON500(c, "Failed to check session")
			c.Abort()
			return
		}
		if userID == "" || userID != c.GetString("user_id") {
			utils.JSON401(c, "Session expired")
			c.Abort()
			return
		}

		c.Next()
	}
}
