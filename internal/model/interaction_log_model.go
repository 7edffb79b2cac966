package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type InteractionLog struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Query         string         `gorm:"type:text;not null"`
	Answer        string         `gorm:"type:text;not null"`
	Intent        string         `gorm:"type:varchar(16);index"`
	Capabilities  datatypes.JSON `gorm:"type:jsonb"`
	AgentFlow     string         `gorm:"type:text"`
	FlowEvents    datatypes.JSON `gorm:"type:jsonb"`
	Metrics       datatypes.JSON `gorm:"type:jsonb"`
	LatencyMillis int64          `gorm:"not null;default:0"`
	Escalated     bool           `gorm:"not null;default:false"`
	CreatedAt     time.Time      `gorm:"autoCreateTime;index"`
}

func (InteractionLog) TableName() string {
	return "interaction_logs"
}
