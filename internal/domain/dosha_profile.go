package domain

import "time"

// DoshaProfile Model
// Holds the result of the constitution quiz: the dominant dosha label
// (e.g. "Vata", "Pitta-Kapha") plus the raw scores behind it.
type DoshaProfile struct {
	ID            uint      `gorm:"primaryKey" json:"id"`              // Primary key
	UserID        uint      `gorm:"uniqueIndex;not null" json:"user_id"` // Foreign key to User, one profile per user
	DominantDosha string    `gorm:"size:50;not null" json:"dominant_dosha"` // Quiz result label
	VataScore     int       `gorm:"default:0" json:"vata_score"`       // Raw vata score
	PittaScore    int       `gorm:"default:0" json:"pitta_score"`      // Raw pitta score
	KaphaScore    int       `gorm:"default:0" json:"kapha_score"`      // Raw kapha score
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`  // Refreshed on every save
}
