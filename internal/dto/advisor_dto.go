package dto

import (
	"time"

	"edutrack-advisor-be/pkg/advisor/flow"

	"github.com/google/uuid"
)

type AskRequest struct {
	Message string `json:"message" validate:"required"`
}

type AskMetrics struct {
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	TotalTimeMillis int64     `json:"total_time_ms"`
	AgentsInvoked   int       `json:"agents_invoked"`
	LLMCalls        int64     `json:"llm_calls"`
}

type AskResponse struct {
	Response     string       `json:"response"`
	Intent       string       `json:"intent"`
	Capabilities []string     `json:"capabilities"`
	AgentFlow    string       `json:"agent_flow"`
	FlowEvents   []flow.Event `json:"flow_events,omitempty"`
	Metrics      AskMetrics   `json:"metrics"`
	Cached       bool         `json:"cached,omitempty"`
}

type HistoryItem struct {
	Id            uuid.UUID `json:"id"`
	Query         string    `json:"query"`
	Answer        string    `json:"answer"`
	Intent        string    `json:"intent"`
	Capabilities  []string  `json:"capabilities"`
	LatencyMillis int64     `json:"latency_ms"`
	Escalated     bool      `json:"escalated"`
	CreatedAt     time.Time `json:"created_at"`
}

type HistoryRequest struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Intent string `query:"intent"`
}

type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

type ShowInteractionResponse struct {
	Id           uuid.UUID    `json:"id"`
	Query        string       `json:"query"`
	Answer       string       `json:"answer"`
	Intent       string       `json:"intent"`
	Capabilities []string     `json:"capabilities"`
	AgentFlow    string       `json:"agent_flow"`
	FlowEvents   []flow.Event `json:"flow_events"`
	Escalated    bool         `json:"escalated"`
	CreatedAt    time.Time    `json:"created_at"`
}

// InteractionRecordedMessage is the payload published on the internal
// bus after each advisory interaction is persisted.
type InteractionRecordedMessage struct {
	Id           uuid.UUID    `json:"id"`
	Query        string       `json:"query"`
	Answer       string       `json:"answer"`
	Intent       string       `json:"intent"`
	Capabilities []string     `json:"capabilities"`
	FlowEvents   []flow.Event `json:"flow_events"`
	Escalated    bool         `json:"escalated"`
	RecordedAt   time.Time    `json:"recorded_at"`
}
