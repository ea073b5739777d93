package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"wellness_system/internal/store" // Injected storage layer
	"wellness_system/internal/utils" // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// SaveDoshaRequest is the body of POST /api/save_dosha. The scores are
// optional and default to zero.
type SaveDoshaRequest struct {
	UserID        uint   `json:"user_id" binding:"required"`        // Owner of the profile
	DominantDosha string `json:"dominant_dosha" binding:"required"` // Quiz result label
	VataScore     int    `json:"vata_score"`                        // Raw vata score
	PittaScore    int    `json:"pitta_score"`                       // Raw pitta score
	KaphaScore    int    `json:"kapha_score"`                       // Raw kapha score
}

// dashboardCacheKey is the redis key for a user's cached dashboard data.
func dashboardCacheKey(userID uint) string {
	return "dashboard:user:" + strconv.Itoa(int(userID))
}

// SaveDoshaHandler creates or overwrites the caller's dosha profile.
func SaveDoshaHandler(s store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SaveDoshaRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and dominant_dosha are required"})
			return
		}
		created, err := s.UpsertDoshaProfile(req.UserID, req.DominantDosha, req.VataScore, req.PittaScore, req.KaphaScore)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": req.UserID,
				"dosha":   req.DominantDosha,
				"error":   err.Error(),
			}).Error("Failed to save dosha profile")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save dosha profile"})
			return
		}
		message := "Profile updated"
		if created {
			message = "Profile created"
		}
		logrus.WithFields(logrus.Fields{
			"user_id": req.UserID,
			"dosha":   req.DominantDosha,
			"created": created,
		}).Info("Dosha profile saved")
		// The dashboard shows the dosha label, so its cache entry is
		// stale after any save.
		_ = utils.DeleteCache(context.Background(), rdb, dashboardCacheKey(req.UserID))
		c.JSON(http.StatusOK, gin.H{"message": message, "dosha": req.DominantDosha})
	}
}
