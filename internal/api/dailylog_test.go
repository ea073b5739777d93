package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wellness_system/internal/domain"
	"wellness_system/internal/middleware"
	"wellness_system/internal/store"
	"wellness_system/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logRouter(s store.Store, rdb *redis.Client) *gin.Engine {
	r := gin.New()
	r.POST("/api/log_day", LogDayHandler(s, rdb))
	protected := r.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware(testSecret))
	protected.GET("/logs", LogHistoryHandler(s, rdb))
	return r
}

func TestLogDayCreated(t *testing.T) {
	_, rdb := newTestRedis(t)
	fs := &fakeStore{logCreated: true}
	w, resp := doJSON(t, logRouter(fs, rdb), http.MethodPost, "/api/log_day",
		`{"user_id":5,"slept":true,"diet":false,"notes":"long day"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Daily log created", resp["message"])
	assert.EqualValues(t, 5, fs.gotUserID)

	// Supplied fields arrive as set pointers, omitted ones as nil.
	require.NotNil(t, fs.gotPatch.Slept)
	assert.True(t, *fs.gotPatch.Slept)
	require.NotNil(t, fs.gotPatch.Diet)
	assert.False(t, *fs.gotPatch.Diet)
	assert.Nil(t, fs.gotPatch.Meditation)
	assert.Nil(t, fs.gotPatch.Movement)
	require.NotNil(t, fs.gotPatch.Notes)
	assert.Equal(t, "long day", *fs.gotPatch.Notes)

	// The log is always dated today (UTC).
	assert.Equal(t, store.DayOf(time.Now().UTC()), store.DayOf(fs.gotDay))
}

func TestLogDayUpdated(t *testing.T) {
	_, rdb := newTestRedis(t)
	fs := &fakeStore{logCreated: false}
	w, resp := doJSON(t, logRouter(fs, rdb), http.MethodPost, "/api/log_day",
		`{"user_id":5,"movement":true}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Daily log updated", resp["message"])
	assert.Nil(t, fs.gotPatch.Notes) // Omitted notes must not overwrite
}

func TestLogDayMissingUserID(t *testing.T) {
	_, rdb := newTestRedis(t)
	w, _ := doJSON(t, logRouter(&fakeStore{}, rdb), http.MethodPost, "/api/log_day", `{"slept":true}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogDayStorageError(t *testing.T) {
	_, rdb := newTestRedis(t)
	fs := &fakeStore{logErr: errors.New("disk full")}
	w, _ := doJSON(t, logRouter(fs, rdb), http.MethodPost, "/api/log_day", `{"user_id":5}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLogDayInvalidatesHistoryCache(t *testing.T) {
	mr, rdb := newTestRedis(t)
	require.NoError(t, mr.Set(logsCacheKey(5, 1, 20), `{}`))

	w, _ := doJSON(t, logRouter(&fakeStore{}, rdb), http.MethodPost, "/api/log_day", `{"user_id":5}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, mr.Exists(logsCacheKey(5, 1, 20)))
}

func TestLogHistoryRequiresToken(t *testing.T) {
	_, rdb := newTestRedis(t)
	w, _ := doJSON(t, logRouter(&fakeStore{}, rdb), http.MethodGet, "/api/logs", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogHistory(t *testing.T) {
	_, rdb := newTestRedis(t)
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	fs := &fakeStore{
		logs: []domain.DailyLog{
			{UserID: 5, Date: day, SleptConsistently: true, Notes: "calm"},
			{UserID: 5, Date: day.AddDate(0, 0, -1), Movement: true},
		},
		logsTotal: 2,
	}
	token, err := utils.GenerateJWT(5, testSecret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	logRouter(fs, rdb).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 5, fs.gotUserID)
	assert.Contains(t, w.Body.String(), `"date":"2026-09-01"`)
	assert.Contains(t, w.Body.String(), `"total":2`)
	assert.Contains(t, w.Body.String(), `"total_pages":1`)
}
