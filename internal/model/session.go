package model

import "time"

// Storage keys for the per-session credential slots.
const (
	KeyAdminToken   = "adminToken"
	KeyVisitorToken = "visitorToken"
	KeyVisitorUser  = "visitorUser"
)

// Session is the portal's only durable record: one row per browser
// session, holding at most one bearer token per identity kind plus the
// visitor profile snapshot and pending flash notifications.
type Session struct {
	ID           string    `gorm:"primaryKey;size:36"`
	AdminToken   string    `gorm:"size:2048"`
	VisitorToken string    `gorm:"size:2048"`
	VisitorUser  []byte    // JSON snapshot of the visitor identity
	Flashes      []byte    // JSON list of pending notifications
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
	ExpiresAt    time.Time `gorm:"index;not null"`
}

// Flash is one transient notification queued for the next response.
type Flash struct {
	Level   string `json:"level"` // "success" or "error"
	Message string `json:"message"`
}
