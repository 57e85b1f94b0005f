package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"masterjacobs_backend/internal/cache"
)

const (
	APIMaxRequests     = 100 // per minute and IP for the general API
	SearchMaxRequests  = 30  // per minute and IP
	ContactMaxRequests = 3

	APICooldown     = 1 * time.Minute
	SearchCooldown  = 1 * time.Minute
	ContactCooldown = 10 * time.Minute
)

// APIRateLimit caps general API requests per IP. Without Redis the counters
// stay at zero and everything passes.
func APIRateLimit() gin.HandlerFunc {
	return limitByIP("api_requests:", APIMaxRequests, APICooldown,
		"För många förfrågningar. Försök igen om 1 minut")
}

// SearchRateLimit caps searches per IP (anti-spam).
func SearchRateLimit() gin.HandlerFunc {
	return limitByIP("search_requests:", SearchMaxRequests, SearchCooldown,
		"För många sökningar. Försök igen om 1 minut")
}

// ContactRateLimit keeps the contact form from being used as a spam relay.
func ContactRateLimit() gin.HandlerFunc {
	return limitByIP("contact_requests:", ContactMaxRequests, ContactCooldown,
		"För många meddelanden. Försök igen senare")
}

func limitByIP(prefix string, max int, window time.Duration, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cache.Enabled() {
			c.Next()
			return
		}

		key := prefix + c.ClientIP()
		count, err := cache.IncrementRateLimit(key, window)
		if err != nil {
			c.Next()
			return
		}
		if count > int64(max) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       message,
				"retry_after": int(window.Seconds()),
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", max))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", int64(max)-count))
		c.Next()
	}
}
