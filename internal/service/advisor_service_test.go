package service

import (
	"context"
	"errors"
	"testing"

	"edutrack-advisor-be/internal/dto"
	"edutrack-advisor-be/internal/entity"
	"edutrack-advisor-be/internal/repository/contract"
	"edutrack-advisor-be/internal/repository/specification"
	"edutrack-advisor-be/internal/repository/unitofwork"
	"edutrack-advisor-be/pkg/advisor"
	"edutrack-advisor-be/pkg/advisor/capability"
	"edutrack-advisor-be/pkg/dataset"
	"edutrack-advisor-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory stand-ins for the persistence and messaging edges.

type fakeRepo struct {
	logs []*entity.InteractionLog
}

func (r *fakeRepo) Create(_ context.Context, log *entity.InteractionLog) error {
	r.logs = append(r.logs, log)
	return nil
}

func (r *fakeRepo) FindOne(_ context.Context, _ ...specification.Specification) (*entity.InteractionLog, error) {
	if len(r.logs) == 0 {
		return nil, nil
	}
	return r.logs[0], nil
}

func (r *fakeRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.InteractionLog, error) {
	return r.logs, nil
}

func (r *fakeRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.logs)), nil
}

type fakeUow struct {
	repo      *fakeRepo
	began     bool
	committed bool
}

func (u *fakeUow) Begin(context.Context) error { u.began = true; return nil }
func (u *fakeUow) Commit() error               { u.committed = true; return nil }
func (u *fakeUow) Rollback() error             { return nil }
func (u *fakeUow) InteractionLogRepository() contract.InteractionLogRepository {
	return u.repo
}

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakePublisher struct {
	payloads [][]byte
}

func (p *fakePublisher) Publish(_ context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

type scriptedProvider struct {
	replies []string
}

func (s *scriptedProvider) next() (string, error) {
	if len(s.replies) == 0 {
		return "", errors.New("script exhausted")
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	return reply, nil
}

func (s *scriptedProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return s.next()
}

func (s *scriptedProvider) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	return s.next()
}

func newTestService(t *testing.T, replies []string) (IAdvisorService, *fakeUowFactory, *fakePublisher) {
	t.Helper()

	registry, err := capability.NewRegistry(
		&capability.Responder{Name: "academic_advisor", Capability: capability.Academic, Instruction: "academic"},
		&capability.Responder{Name: "welfare_advisor", Capability: capability.Welfare, Instruction: "welfare"},
	)
	require.NoError(t, err)

	orchestrator := advisor.NewOrchestrator(
		&scriptedProvider{replies: replies},
		registry,
		dataset.NewStaticProvider(nil),
		nil,
		nil,
	)

	factory := &fakeUowFactory{uow: &fakeUow{repo: &fakeRepo{}}}
	publisher := &fakePublisher{}

	svc := NewAdvisorService(orchestrator, factory, publisher, nil, nil, noopLogger{})
	return svc, factory, publisher
}

func TestAskPersistsAndPublishes(t *testing.T) {
	svc, factory, publisher := newTestService(t, []string{
		"generative",
		"[academic]",
		"Review your notes nightly.",
	})

	res, err := svc.Ask(context.Background(), &dto.AskRequest{Message: "how should I study"})
	require.NoError(t, err)

	assert.Equal(t, "Review your notes nightly.", res.Response)
	assert.Equal(t, "generative", res.Intent)
	assert.Equal(t, []string{"academic"}, res.Capabilities)
	assert.Contains(t, res.AgentFlow, "AGENT FLOW ANALYSIS")
	assert.Contains(t, res.AgentFlow, "Communication Flow:")
	assert.NotEmpty(t, res.FlowEvents)
	assert.Equal(t, int64(3), res.Metrics.LLMCalls)
	assert.False(t, res.Cached)

	uow := factory.uow
	assert.True(t, uow.began)
	assert.True(t, uow.committed)
	require.Len(t, uow.repo.logs, 1)
	saved := uow.repo.logs[0]
	assert.Equal(t, "how should I study", saved.Query)
	assert.Equal(t, "Review your notes nightly.", saved.Answer)
	assert.NotEqual(t, uuid.Nil, saved.Id)
	assert.False(t, saved.Escalated)

	require.Len(t, publisher.payloads, 1)
	assert.Contains(t, string(publisher.payloads[0]), "Review your notes nightly.")
}

func TestAskFlagsWelfareEscalation(t *testing.T) {
	svc, factory, _ := newTestService(t, []string{
		"generative",
		"[welfare]",
		"Please talk to someone you trust.",
	})

	_, err := svc.Ask(context.Background(), &dto.AskRequest{Message: "I feel hopeless and want to give up"})
	require.NoError(t, err)

	require.Len(t, factory.uow.repo.logs, 1)
	assert.True(t, factory.uow.repo.logs[0].Escalated)
}

func TestHistoryPagination(t *testing.T) {
	svc, factory, _ := newTestService(t, nil)
	factory.uow.repo.logs = []*entity.InteractionLog{
		{Id: uuid.New(), Query: "q1", Intent: "lookup"},
		{Id: uuid.New(), Query: "q2", Intent: "generative"},
	}

	res, err := svc.History(context.Background(), &dto.HistoryRequest{})
	require.NoError(t, err)

	assert.Equal(t, int64(2), res.Total)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 20, res.Limit)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "q1", res.Items[0].Query)
}

func TestShowMissingInteraction(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	res, err := svc.Show(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, res)
}
