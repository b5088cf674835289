package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dmac_back_end/internal/database"
)

const (
	LoginMaxAttempts = 5
	LoginCooldown    = 15 * time.Minute
)

// AdminLoginRateLimit limite les tentatives de login admin par IP. Sans Redis
// le limiteur est inactif (dev local).
func AdminLoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if database.Redis == nil {
			c.Next()
			return
		}

		ctx := context.Background()
		key := "admin_login_attempts:" + c.ClientIP()

		attempts, err := database.Redis.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if attempts == 1 {
			database.Redis.Expire(ctx, key, LoginCooldown)
		}

		if attempts > LoginMaxAttempts {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Trop de tentatives, réessayez plus tard",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
