package models

import "time"

// SavedSchedule is a named selection persisted for a device. Sections and
// blocks are stored as JSON payloads; the planner core never reads this store
// directly.
type SavedSchedule struct {
	ID        string    `db:"id" json:"id"`
	DeviceID  string    `db:"device_id" json:"-"`
	Term      string    `db:"term" json:"term"`
	Name      string    `db:"name" json:"name"`
	Sections  []byte    `db:"sections" json:"-"`
	Blocks    string    `db:"blocks" json:"blocks"`
	IsDefault bool      `db:"is_default" json:"isDefault"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
