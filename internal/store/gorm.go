package store

import (
	"errors"
	"time"

	"wellness_system/internal/domain" // Domain models

	"gorm.io/gorm" // GORM ORM library
)

// GormStore implements Store on top of a GORM database handle. Every
// mutation runs its check and write inside a single transaction; the
// unique indexes on users.email, dosha_profiles.user_id and
// daily_logs (user_id, date) resolve concurrent check-then-insert races
// by failing the losing writer at commit.
type GormStore struct {
	db *gorm.DB // Injected database handle
}

// NewGormStore wraps an open GORM handle.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// CreateUser inserts a new user, refusing duplicate emails.
func (s *GormStore) CreateUser(email, passwordHash string) (*domain.User, error) {
	user := domain.User{Email: email, Password: passwordHash}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing domain.User
		// Check for an existing account first so the caller gets a
		// clean conflict instead of a raw driver error.
		err := tx.Where("email = ?", email).First(&existing).Error
		if err == nil {
			return ErrEmailTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		// A racing writer can still hit the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// UserByEmail looks a user up by exact email match.
func (s *GormStore) UserByEmail(email string) (*domain.User, error) {
	var user domain.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// UserByID looks a user up by primary key.
func (s *GormStore) UserByID(id uint) (*domain.User, error) {
	var user domain.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// DoshaProfileByUser returns the user's profile if one exists.
func (s *GormStore) DoshaProfileByUser(userID uint) (*domain.DoshaProfile, error) {
	var profile domain.DoshaProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// UpsertDoshaProfile creates the user's profile on first save and
// overwrites all four quiz fields on every later save.
func (s *GormStore) UpsertDoshaProfile(userID uint, dominant string, vata, pitta, kapha int) (bool, error) {
	created := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var profile domain.DoshaProfile
		err := tx.Where("user_id = ?", userID).First(&profile).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created = true
			profile = domain.DoshaProfile{
				UserID:        userID,
				DominantDosha: dominant,
				VataScore:     vata,
				PittaScore:    pitta,
				KaphaScore:    kapha,
			}
			return tx.Create(&profile).Error
		}
		if err != nil {
			return err
		}
		profile.DominantDosha = dominant
		profile.VataScore = vata
		profile.PittaScore = pitta
		profile.KaphaScore = kapha
		// Save refreshes UpdatedAt via autoUpdateTime.
		return tx.Save(&profile).Error
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

// UpsertDailyLog creates the log row for (userID, day) on first call and
// applies a partial update on later calls: only non-nil patch fields
// overwrite stored values.
func (s *GormStore) UpsertDailyLog(userID uint, day time.Time, patch DailyLogPatch) (bool, error) {
	start := DayOf(day)
	created := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var log domain.DailyLog
		err := tx.Where("user_id = ? AND date = ?", userID, start).First(&log).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created = true
			log = domain.DailyLog{UserID: userID, Date: start}
			applyPatch(&log, patch)
			return tx.Create(&log).Error
		}
		if err != nil {
			return err
		}
		applyPatch(&log, patch)
		return tx.Save(&log).Error
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

// DailyLogs returns a page of the user's logs, newest first.
func (s *GormStore) DailyLogs(userID uint, offset, limit int) ([]domain.DailyLog, int64, error) {
	var total int64
	if err := s.db.Model(&domain.DailyLog{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var logs []domain.DailyLog
	err := s.db.Where("user_id = ?", userID).
		Order("date desc").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// applyPatch copies the supplied fields of a patch onto a log row,
// leaving omitted fields untouched.
func applyPatch(log *domain.DailyLog, patch DailyLogPatch) {
	if patch.Slept != nil {
		log.SleptConsistently = *patch.Slept
	}
	if patch.Diet != nil {
		log.FollowedDiet = *patch.Diet
	}
	if patch.Meditation != nil {
		log.MindBodyPractice = *patch.Meditation
	}
	if patch.Movement != nil {
		log.Movement = *patch.Movement
	}
	if patch.Notes != nil {
		log.Notes = *patch.Notes
	}
}

// translate maps GORM's not-found onto the store sentinel.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
