package store

import (
	"errors"
	"time"

	"wellness_system/internal/domain" // Domain models
)

// Sentinel errors surfaced by Store implementations. Handlers map these
// onto HTTP statuses; anything else is treated as a storage failure.
var (
	ErrNotFound   = errors.New("record not found")       // Unknown id or email
	ErrEmailTaken = errors.New("email already registered") // Duplicate User.Email
)

// DailyLogPatch carries the optional fields of a log_day request. A nil
// field means "not supplied": on update the stored value is kept, on
// create the zero value is used.
type DailyLogPatch struct {
	Slept      *bool   // Consistent sleep schedule
	Diet       *bool   // Followed dietary principles
	Meditation *bool   // Mind-body practice
	Movement   *bool   // Regular movement
	Notes      *string // Free-text journaling
}

// Store is the persistence boundary for the wellness backend. It is
// constructed once at startup and injected into every handler, so tests
// can swap in a fake or an in-memory database.
type Store interface {
	// CreateUser inserts a new user with an already-hashed password.
	// Returns ErrEmailTaken if the email is in use.
	CreateUser(email, passwordHash string) (*domain.User, error)
	// UserByEmail looks a user up by exact email match.
	UserByEmail(email string) (*domain.User, error)
	// UserByID looks a user up by primary key.
	UserByID(id uint) (*domain.User, error)
	// DoshaProfileByUser returns the user's profile, or ErrNotFound.
	DoshaProfileByUser(userID uint) (*domain.DoshaProfile, error)
	// UpsertDoshaProfile creates or overwrites the user's single
	// profile. Reports whether a new row was created.
	UpsertDoshaProfile(userID uint, dominant string, vata, pitta, kapha int) (bool, error)
	// UpsertDailyLog creates or partially updates the log for the given
	// day. Reports whether a new row was created.
	UpsertDailyLog(userID uint, day time.Time, patch DailyLogPatch) (bool, error)
	// DailyLogs returns a page of the user's logs, newest first, plus
	// the total row count for pagination.
	DailyLogs(userID uint, offset, limit int) ([]domain.DailyLog, int64, error)
}

// DayOf truncates a timestamp to its UTC calendar day. All DailyLog rows
// are keyed on this normalized value.
func DayOf(t time.Time) time.Time {
	tt := t.UTC()
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.UTC)
}
