package api

import (
	"time"

	"wellness_system/internal/domain"
	"wellness_system/internal/store"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeStore is a canned-response store.Store for handler tests. Each
// method returns the configured value/error pair and records the
// arguments it was called with.
type fakeStore struct {
	user      *domain.User
	userErr   error
	createErr error

	profile    *domain.DoshaProfile
	profileErr error

	profileCreated bool
	upsertErr      error
	gotDominant    string
	gotScores      [3]int

	logCreated bool
	logErr     error
	gotDay     time.Time
	gotPatch   store.DailyLogPatch

	logs      []domain.DailyLog
	logsTotal int64
	logsErr   error

	gotUserID uint
}

func (f *fakeStore) CreateUser(email, passwordHash string) (*domain.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.User{ID: 1, Email: email, Password: passwordHash, CreatedAt: time.Now().UTC()}, nil
}

func (f *fakeStore) UserByEmail(email string) (*domain.User, error) {
	if f.userErr != nil {
		return nil, f.userErr
	}
	return f.user, nil
}

func (f *fakeStore) UserByID(id uint) (*domain.User, error) {
	f.gotUserID = id
	if f.userErr != nil {
		return nil, f.userErr
	}
	return f.user, nil
}

func (f *fakeStore) DoshaProfileByUser(userID uint) (*domain.DoshaProfile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}

func (f *fakeStore) UpsertDoshaProfile(userID uint, dominant string, vata, pitta, kapha int) (bool, error) {
	f.gotUserID = userID
	f.gotDominant = dominant
	f.gotScores = [3]int{vata, pitta, kapha}
	if f.upsertErr != nil {
		return false, f.upsertErr
	}
	return f.profileCreated, nil
}

func (f *fakeStore) UpsertDailyLog(userID uint, day time.Time, patch store.DailyLogPatch) (bool, error) {
	f.gotUserID = userID
	f.gotDay = day
	f.gotPatch = patch
	if f.logErr != nil {
		return false, f.logErr
	}
	return f.logCreated, nil
}

func (f *fakeStore) DailyLogs(userID uint, offset, limit int) ([]domain.DailyLog, int64, error) {
	f.gotUserID = userID
	if f.logsErr != nil {
		return nil, 0, f.logsErr
	}
	return f.logs, f.logsTotal, nil
}
