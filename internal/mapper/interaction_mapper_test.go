package mapper

import (
	"testing"
	"time"

	"edutrack-advisor-be/internal/entity"
	"edutrack-advisor-be/pkg/advisor/flow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractionMapperRoundTrip(t *testing.T) {
	m := NewInteractionMapper()

	src := &entity.InteractionLog{
		Id:           uuid.New(),
		Query:        "what is my gpa",
		Answer:       "Your GPA is 8.7",
		Intent:       "lookup",
		Capabilities: []string{"academic"},
		AgentFlow:    "AGENT FLOW ANALYSIS",
		FlowEvents: []flow.Event{
			{Timestamp: time.Now().UTC().Truncate(time.Millisecond), Actor: flow.ActorRouter, Action: "Classification completed", Detail: "Result: lookup"},
		},
		Metrics:       &flow.Metrics{AgentsInvoked: 1, LLMCalls: 3, TotalTimeMillis: 120},
		LatencyMillis: 120,
		Escalated:     false,
	}

	model := m.ToModel(src)
	require.NotNil(t, model)
	assert.NotEmpty(t, model.Capabilities)
	assert.NotEmpty(t, model.FlowEvents)
	assert.NotEmpty(t, model.Metrics)

	back := m.ToEntity(model)
	require.NotNil(t, back)
	assert.Equal(t, src.Id, back.Id)
	assert.Equal(t, src.Query, back.Query)
	assert.Equal(t, src.Capabilities, back.Capabilities)
	require.Len(t, back.FlowEvents, 1)
	assert.Equal(t, src.FlowEvents[0].Action, back.FlowEvents[0].Action)
	require.NotNil(t, back.Metrics)
	assert.Equal(t, int64(3), back.Metrics.LLMCalls)
}

func TestInteractionMapperNilSafety(t *testing.T) {
	m := NewInteractionMapper()
	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))

	// Metrics may be absent on old rows.
	back := m.ToEntity(m.ToModel(&entity.InteractionLog{Id: uuid.New(), Query: "q", Answer: "a"}))
	require.NotNil(t, back)
	assert.Nil(t, back.Metrics)
}
