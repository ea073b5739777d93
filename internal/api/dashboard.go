package api

import (
	"context"  // Context for Redis operations
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"wellness_system/internal/store" // Injected storage layer
	"wellness_system/internal/utils" // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// UndefinedDosha is returned for users who have not taken the quiz yet.
const UndefinedDosha = "undefined"

// DashboardData is the payload of GET /api/get_dashboard_data/:user_id.
type DashboardData struct {
	Email string `json:"email"` // Account email
	Dosha string `json:"dosha"` // Dominant dosha label, or the sentinel
}

// DashboardHandler returns the user's email and dominant dosha. A user
// without a profile gets the "undefined" sentinel rather than an error.
func DashboardHandler(s store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		userID := uint(id)
		ctx := context.Background()
		cacheKey := dashboardCacheKey(userID)
		var data DashboardData
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &data); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"email": data.Email, "dosha": data.Dosha, "cached": true})
			return
		}
		user, err := s.UserByID(userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
			return
		}
		dosha := UndefinedDosha
		profile, err := s.DoshaProfileByUser(userID)
		switch {
		case err == nil:
			dosha = profile.DominantDosha
		case !errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dosha profile"})
			return
		}
		data = DashboardData{Email: user.Email, Dosha: dosha}
		_ = utils.SetCache(ctx, rdb, cacheKey, data, 60*time.Second)
		c.JSON(http.StatusOK, gin.H{"email": data.Email, "dosha": data.Dosha, "cached": false})
	}
}
