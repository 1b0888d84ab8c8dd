package models

import "time"

// Update is a single announcement in the public feed. Records are
// append-only: nothing in the API updates or deletes them.
type Update struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Summary   *string   `json:"summary"`
	URL       string    `gorm:"column:url" json:"url"`
	Source    *string   `json:"source"`
	Category  *string   `json:"category"`
	Date      *string   `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

func (Update) TableName() string {
	return "updates"
}

// NewUpdate carries the caller-supplied fields of an Update.
type NewUpdate struct {
	Title    string
	Summary  *string
	URL      string
	Source   *string
	Category *string
	Date     *string
}

// StringPtr returns nil for an empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
