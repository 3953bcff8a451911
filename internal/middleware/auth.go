package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"skillbridge_backend/internal/config"
	"skillbridge_backend/internal/util"
)

// AuthMiddleware validates the Bearer token, rejects refresh tokens and
// revoked tokens, and puts the claims plus the raw token on the context.
func AuthMiddleware(cfg *config.Config, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil || claims.TokenType != util.TokenAccess {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if rdb != nil {
			n, err := rdb.Exists(c.Request.Context(), util.RevocationKey(tokenString)).Result()
			if err == nil && n > 0 {
				util.Unauthorized(c)
				c.Abort()
				return
			}
		}

		c.Set("user", claims)
		c.Set("rawToken", tokenString)
		c.Next()
	}
}
