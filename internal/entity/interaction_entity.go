package entity

import (
	"time"

	"edutrack-advisor-be/pkg/advisor/flow"

	"github.com/google/uuid"
)

type InteractionLog struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Query         string
	Answer        string
	Intent        string
	Capabilities  []string
	AgentFlow     string
	FlowEvents    []flow.Event
	Metrics       *flow.Metrics
	LatencyMillis int64
	Escalated     bool
	CreatedAt     time.Time
}
