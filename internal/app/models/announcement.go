package models

import "time"

// Announcement defines a school-wide announcement based on the 'announcements' table
type Announcement struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Body        string    `json:"body" db:"body"`
	PublishedAt time.Time `json:"date" db:"published_at"`
}
