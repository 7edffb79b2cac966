package specification

import (
	"time"

	"gorm.io/gorm"
)

// ByIntent filters interaction logs by routing decision
type ByIntent struct {
	Intent string
}

func (s ByIntent) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("intent = ?", s.Intent)
}

// Escalated filters interactions that triggered a welfare escalation
type Escalated struct{}

func (s Escalated) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("escalated = ?", true)
}

// CreatedAfter filters records created after the given time
type CreatedAfter struct {
	After time.Time
}

func (s CreatedAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at > ?", s.After)
}
