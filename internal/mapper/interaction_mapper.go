package mapper

import (
	"encoding/json"

	"edutrack-advisor-be/internal/entity"
	"edutrack-advisor-be/internal/model"
	"edutrack-advisor-be/pkg/advisor/flow"
)

type InteractionMapper struct{}

func NewInteractionMapper() *InteractionMapper {
	return &InteractionMapper{}
}

func (m *InteractionMapper) ToEntity(l *model.InteractionLog) *entity.InteractionLog {
	if l == nil {
		return nil
	}

	var capabilities []string
	if len(l.Capabilities) > 0 {
		_ = json.Unmarshal(l.Capabilities, &capabilities)
	}

	var events []flow.Event
	if len(l.FlowEvents) > 0 {
		_ = json.Unmarshal(l.FlowEvents, &events)
	}

	var metrics *flow.Metrics
	if len(l.Metrics) > 0 {
		metrics = &flow.Metrics{}
		if err := json.Unmarshal(l.Metrics, metrics); err != nil {
			metrics = nil
		}
	}

	return &entity.InteractionLog{
		Id:            l.Id,
		Query:         l.Query,
		Answer:        l.Answer,
		Intent:        l.Intent,
		Capabilities:  capabilities,
		AgentFlow:     l.AgentFlow,
		FlowEvents:    events,
		Metrics:       metrics,
		LatencyMillis: l.LatencyMillis,
		Escalated:     l.Escalated,
		CreatedAt:     l.CreatedAt,
	}
}

func (m *InteractionMapper) ToModel(l *entity.InteractionLog) *model.InteractionLog {
	if l == nil {
		return nil
	}

	capabilities, _ := json.Marshal(l.Capabilities)
	events, _ := json.Marshal(l.FlowEvents)

	var metrics []byte
	if l.Metrics != nil {
		metrics, _ = json.Marshal(l.Metrics)
	}

	return &model.InteractionLog{
		Id:            l.Id,
		Query:         l.Query,
		Answer:        l.Answer,
		Intent:        l.Intent,
		Capabilities:  capabilities,
		AgentFlow:     l.AgentFlow,
		FlowEvents:    events,
		Metrics:       metrics,
		LatencyMillis: l.LatencyMillis,
		Escalated:     l.Escalated,
		CreatedAt:     l.CreatedAt,
	}
}

func (m *InteractionMapper) ToEntities(logs []*model.InteractionLog) []*entity.InteractionLog {
	entities := make([]*entity.InteractionLog, len(logs))
	for i, l := range logs {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
