package group

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"edutrack-advisor-be/pkg/advisor/capability"
	"edutrack-advisor-be/pkg/advisor/flow"
	"edutrack-advisor-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProvider struct {
	calls     int
	err       error
	histories [][]llm.Message
}

func (p *countingProvider) Chat(_ context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	p.calls++
	p.histories = append(p.histories, history)
	if p.err != nil {
		return "", p.err
	}
	return fmt.Sprintf("turn %d", p.calls), nil
}

func (p *countingProvider) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return fmt.Sprintf("turn %d", p.calls), nil
}

func twoResponders() []*capability.Responder {
	return []*capability.Responder{
		{Name: "academic_advisor", Capability: capability.Academic, Instruction: "academic advice"},
		{Name: "career_advisor", Capability: capability.Career, Instruction: "career advice"},
	}
}

func TestMergeRoundRobin(t *testing.T) {
	provider := &countingProvider{}
	session := NewSession(RoundRobin{})
	rec := flow.NewRecorder()

	got := session.Merge(context.Background(), rec, provider, twoResponders(), "plan my semester")

	// Three rounds, speakers a, b, a.
	assert.Equal(t, 3, provider.calls)
	assert.Contains(t, got, "**academic_advisor**: turn 1")
	assert.Contains(t, got, "**career_advisor**: turn 2")
	assert.Contains(t, got, "**academic_advisor**: turn 3")
}

func TestMergeTranscriptPerspective(t *testing.T) {
	provider := &countingProvider{}
	session := NewSession(RoundRobin{})
	rec := flow.NewRecorder()

	session.Merge(context.Background(), rec, provider, twoResponders(), "plan my semester")

	// Second speaker sees its own instruction, the user's query, and the
	// first speaker's labeled turn.
	require.Len(t, provider.histories, 3)
	second := provider.histories[1]
	require.Len(t, second, 3)
	assert.Equal(t, "system", second[0].Role)
	assert.Equal(t, "career advice", second[0].Content)
	assert.Equal(t, "plan my semester", second[1].Content)
	assert.Equal(t, "[academic_advisor]: turn 1", second[2].Content)

	// Third round: the first speaker sees its own earlier turn as assistant.
	third := provider.histories[2]
	require.Len(t, third, 4)
	assert.Equal(t, "assistant", third[2].Role)
	assert.Equal(t, "turn 1", third[2].Content)
}

type flakyProvider struct {
	countingProvider
	failCall int
}

func (p *flakyProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	reply, err := p.countingProvider.Chat(ctx, history, opts...)
	if err == nil && p.calls == p.failCall {
		return "", errors.New("model down")
	}
	return reply, err
}

func TestMergeMidSessionErrorFallsBackToIndependent(t *testing.T) {
	provider := &flakyProvider{failCall: 2}
	session := NewSession(RoundRobin{})
	rec := flow.NewRecorder()

	got := session.Merge(context.Background(), rec, provider, twoResponders(), "plan my semester")

	// The first round succeeded, but a failed round voids the whole session:
	// every responder answers independently instead.
	assert.NotContains(t, got, "**academic_advisor**: turn 1")
	assert.Contains(t, got, "**academic_advisor**: turn 3")
	assert.Contains(t, got, "**career_advisor**: turn 4")

	var failed bool
	for _, ev := range rec.Events() {
		if ev.Action == "Group session failed" {
			failed = true
		}
	}
	assert.True(t, failed)
}

func TestMergeFallsBackToIndependent(t *testing.T) {
	provider := &countingProvider{err: errors.New("model down")}
	session := NewSession(nil)
	rec := flow.NewRecorder()

	got := session.Merge(context.Background(), rec, provider, twoResponders(), "help")

	// Even with every call failing, the result names both responders.
	assert.NotEmpty(t, got)
	assert.Contains(t, got, "**academic_advisor**:")
	assert.Contains(t, got, "**career_advisor**:")
	assert.Contains(t, got, "couldn't generate a response")
}

func TestMergeSingleResponder(t *testing.T) {
	provider := &countingProvider{}
	session := NewSession(RoundRobin{})
	rec := flow.NewRecorder()

	got := session.Merge(context.Background(), rec, provider,
		[]*capability.Responder{{Name: "welfare_advisor", Capability: capability.Welfare, Instruction: "care"}},
		"I need help")

	assert.Contains(t, got, "**welfare_advisor**:")
}
