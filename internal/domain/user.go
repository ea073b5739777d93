package domain

import "time"

// User Model
type User struct {
	ID        uint          `gorm:"primaryKey" json:"id"`                                   // Primary key
	Email     string        `gorm:"uniqueIndex;not null" json:"email"`                      // Unique email, exact-match lookup
	Password  string        `gorm:"not null" json:"-"`                                      // Bcrypt hash, never serialized
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"created_at"`                       // Set once at registration
	Profile   *DoshaProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`  // At most one profile per user
	DailyLogs []DailyLog    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`  // One log per user per day
}
