package flow

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"edutrack-advisor-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderOrderAndActors(t *testing.T) {
	rec := NewRecorder()
	rec.Record(ActorSystem, "Query received", "q")
	rec.Record(ActorRouter, "Classifying query", "")
	rec.Record(ActorRouter, "Classification completed", "lookup")

	events := rec.Events()
	require.Len(t, events, 3)
	assert.Equal(t, "Query received", events[0].Action)
	assert.Equal(t, "Classification completed", events[2].Action)

	// Distinct actors, first-seen order.
	assert.Equal(t, []string{ActorSystem, ActorRouter}, rec.Actors())
}

func TestRenderEmpty(t *testing.T) {
	rec := NewRecorder()
	assert.Equal(t, "No agent activity recorded for this session.", rec.Render())
}

func TestRender(t *testing.T) {
	rec := NewRecorder()
	rec.Record(ActorRouter, "Classifying query", "Analyzing: hi")
	rec.Record(ActorDataContext, "Dataset selection completed", "Selected: [academic_data]")

	out := rec.Render()
	assert.Contains(t, out, "AGENT FLOW ANALYSIS")
	assert.Contains(t, out, "Total Actors Invoked: 2")
	assert.Contains(t, out, "Total Communications: 2")
	assert.Contains(t, out, "1. [")
	assert.Contains(t, out, "Action: Classifying query")
	assert.Contains(t, out, "Details: Selected: [academic_data]")
	assert.Contains(t, out, "Actor Roles:")
}

type noopProvider struct{}

func (noopProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return "ok", nil
}

func (noopProvider) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	return "ok", nil
}

func TestMeteredProviderCountsCalls(t *testing.T) {
	m := StartMetrics()
	p := Metered(noopProvider{}, m)

	_, _ = p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	_, _ = p.Generate(context.Background(), "hi")
	_, _ = p.Chat(context.Background(), nil)

	m.Finish()

	assert.Equal(t, int64(3), m.LLMCalls)
	assert.False(t, m.EndTime.Before(m.StartTime))
	assert.GreaterOrEqual(t, m.TotalTimeMillis, int64(0))
}

func TestSnippetRuneBoundaries(t *testing.T) {
	assert.Equal(t, "short", Snippet("short", 50))

	long := strings.Repeat("ナ", 60)
	got := Snippet(long, 50)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("ナ", 50)+"...", got)

	// Exactly at the limit: returned untouched.
	exact := strings.Repeat("é", 50)
	assert.Equal(t, exact, Snippet(exact, 50))
}
