package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"wellness_system/internal/store" // Injected storage layer
	"wellness_system/internal/utils" // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// LogDayRequest is the body of POST /api/log_day. The habit flags and
// notes are pointers so an omitted field can be told apart from a
// supplied false/empty value: omitted fields never overwrite stored
// values on update.
type LogDayRequest struct {
	UserID     uint    `json:"user_id" binding:"required"` // Owner of the log
	Slept      *bool   `json:"slept"`                      // Consistent sleep schedule
	Diet       *bool   `json:"diet"`                       // Followed dietary principles
	Meditation *bool   `json:"meditation"`                 // Mind-body practice
	Movement   *bool   `json:"movement"`                   // Regular movement
	Notes      *string `json:"notes"`                      // Free-text journaling
}

// logsCacheKey is the redis key for one page of a user's log history.
func logsCacheKey(userID uint, page, pageSize int) string {
	return "logs:user:" + strconv.Itoa(int(userID)) + ":page:" + strconv.Itoa(page) + ":size:" + strconv.Itoa(pageSize)
}

// LogDayHandler records today's habits. The date is always the current
// UTC calendar day; logging twice on one day updates the existing row.
func LogDayHandler(s store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LogDayRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}
		patch := store.DailyLogPatch{
			Slept:      req.Slept,
			Diet:       req.Diet,
			Meditation: req.Meditation,
			Movement:   req.Movement,
			Notes:      req.Notes,
		}
		created, err := s.UpsertDailyLog(req.UserID, time.Now().UTC(), patch)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": req.UserID,
				"error":   err.Error(),
			}).Error("Failed to save daily log")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save daily log"})
			return
		}
		message := "Daily log updated"
		if created {
			message = "Daily log created"
		}
		logrus.WithFields(logrus.Fields{
			"user_id": req.UserID,
			"created": created,
		}).Info("Daily log saved")
		// Invalidate cached history pages (simple version: delete first 5 pages)
		ctx := context.Background()
		for i := 1; i <= 5; i++ {
			_ = utils.DeleteCache(ctx, rdb, logsCacheKey(req.UserID, i, 20))
		}
		c.JSON(http.StatusOK, gin.H{"message": message})
	}
}

// LogHistoryHandler returns the authenticated user's daily logs, newest
// first, with the same pagination contract as the other list endpoints.
func LogHistoryHandler(s store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		page := 1      // Default page
		pageSize := 20 // Default page size
		if p := c.Query("page"); p != "" {
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v
			}
		}
		if ps := c.Query("page_size"); ps != "" {
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
				pageSize = v
			}
		}
		offset := (page - 1) * pageSize
		ctx := context.Background()
		cacheKey := logsCacheKey(userID.(uint), page, pageSize)
		var cached struct {
			Logs       []LogHistoryEntry `json:"logs"`        // Page of logs
			Page       int               `json:"page"`        // Current page
			PageSize   int               `json:"page_size"`   // Page size
			Total      int64             `json:"total"`       // Total log rows
			TotalPages int               `json:"total_pages"` // Total pages
		}
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"logs":        cached.Logs,
				"page":        cached.Page,
				"page_size":   cached.PageSize,
				"total":       cached.Total,
				"total_pages": cached.TotalPages,
				"cached":      true,
			})
			return
		}
		logs, total, err := s.DailyLogs(userID.(uint), offset, pageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch logs"})
			return
		}
		entries := make([]LogHistoryEntry, len(logs))
		for i, l := range logs {
			entries[i] = LogHistoryEntry{
				Date:              l.Date.Format("2006-01-02"),
				SleptConsistently: l.SleptConsistently,
				FollowedDiet:      l.FollowedDiet,
				MindBodyPractice:  l.MindBodyPractice,
				Movement:          l.Movement,
				Notes:             l.Notes,
			}
		}
		totalPages := (int(total) + pageSize - 1) / pageSize
		resp := gin.H{
			"logs":        entries,
			"page":        page,
			"page_size":   pageSize,
			"total":       total,
			"total_pages": totalPages,
			"cached":      false,
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, 60*time.Second)
		c.JSON(http.StatusOK, resp)
	}
}

// LogHistoryEntry is one row of the history response.
type LogHistoryEntry struct {
	Date              string `json:"date"`               // Calendar day, YYYY-MM-DD
	SleptConsistently bool   `json:"slept_consistently"` // Habit flags follow
	FollowedDiet      bool   `json:"followed_diet"`
	MindBodyPractice  bool   `json:"mind_body_practice"`
	Movement          bool   `json:"movement"`
	Notes             string `json:"notes"` // Free-text journaling
}
