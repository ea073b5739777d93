package domain

import "time"

// DailyLog Model
// One habit-tracking row per user per calendar day, enforced by the
// composite unique index on (user_id, date).
type DailyLog struct {
	ID                uint      `gorm:"primaryKey" json:"id"`                                  // Primary key
	UserID            uint      `gorm:"not null;uniqueIndex:uidx_user_date" json:"user_id"`    // Foreign key to User
	Date              time.Time `gorm:"type:date;not null;uniqueIndex:uidx_user_date" json:"date"` // Calendar day, no time component
	SleptConsistently bool      `gorm:"default:false" json:"slept_consistently"`               // Consistent sleep schedule
	FollowedDiet      bool      `gorm:"default:false" json:"followed_diet"`                    // Basic dietary principles
	MindBodyPractice  bool      `gorm:"default:false" json:"mind_body_practice"`               // Meditation / pranayama
	Movement          bool      `gorm:"default:false" json:"movement"`                         // Regular movement
	Notes             string    `gorm:"type:text" json:"notes"`                                // Optional free-text journaling
}
