package service

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"edutrack-advisor-be/internal/constant"
	"edutrack-advisor-be/internal/dto"
	"edutrack-advisor-be/internal/entity"
	"edutrack-advisor-be/internal/pkg/logger"
	"edutrack-advisor-be/internal/repository/specification"
	"edutrack-advisor-be/internal/repository/unitofwork"
	"edutrack-advisor-be/pkg/advisor"
	"edutrack-advisor-be/pkg/events"
	pktNats "edutrack-advisor-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const answerCacheTTL = 10 * time.Minute

type IAdvisorService interface {
	Ask(ctx context.Context, req *dto.AskRequest) (*dto.AskResponse, error)
	History(ctx context.Context, req *dto.HistoryRequest) (*dto.HistoryResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowInteractionResponse, error)
}

type advisorService struct {
	orchestrator     *advisor.Orchestrator
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	rdb              *redis.Client
	logger           logger.ILogger
}

func NewAdvisorService(
	orchestrator *advisor.Orchestrator,
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	rdb *redis.Client,
	log logger.ILogger,
) IAdvisorService {
	return &advisorService{
		orchestrator:     orchestrator,
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		rdb:              rdb,
		logger:           log,
	}
}

func (s *advisorService) Ask(ctx context.Context, req *dto.AskRequest) (*dto.AskResponse, error) {
	query := strings.TrimSpace(req.Message)

	if cached := s.cachedAnswer(ctx, query); cached != nil {
		s.logger.Info("AdvisorService", "Answer cache hit", map[string]interface{}{"query": query})
		return cached, nil
	}

	result := s.orchestrator.Ask(ctx, query)

	capabilities := make([]string, 0, len(result.Capabilities))
	for _, tag := range result.Capabilities {
		capabilities = append(capabilities, string(tag))
	}

	escalated := s.needsEscalation(query)

	log := &entity.InteractionLog{
		Id:            uuid.New(),
		Query:         query,
		Answer:        result.Answer,
		Intent:        string(result.Intent),
		Capabilities:  capabilities,
		AgentFlow:     result.Trace,
		FlowEvents:    result.Events,
		Metrics:       result.Metrics,
		LatencyMillis: result.Metrics.TotalTimeMillis,
		Escalated:     escalated,
	}
	if err := s.persist(ctx, log); err != nil {
		// Persistence failure must not cost the student their answer.
		s.logger.Error("AdvisorService", "Failed to persist interaction", map[string]interface{}{"error": err.Error()})
	} else {
		s.publishRecorded(ctx, log)
	}

	res := &dto.AskResponse{
		Response:     result.Answer,
		Intent:       string(result.Intent),
		Capabilities: capabilities,
		AgentFlow:    result.Trace,
		FlowEvents:   result.Events,
		Metrics: dto.AskMetrics{
			StartTime:       result.Metrics.StartTime,
			EndTime:         result.Metrics.EndTime,
			TotalTimeMillis: result.Metrics.TotalTimeMillis,
			AgentsInvoked:   result.Metrics.AgentsInvoked,
			LLMCalls:        result.Metrics.LLMCalls,
		},
	}

	s.cacheAnswer(ctx, query, res)

	return res, nil
}

func (s *advisorService) persist(ctx context.Context, log *entity.InteractionLog) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.InteractionLogRepository().Create(ctx, log); err != nil {
		return fmt.Errorf("failed to create interaction log: %w", err)
	}

	return uow.Commit()
}

func (s *advisorService) publishRecorded(ctx context.Context, log *entity.InteractionLog) {
	msg := dto.InteractionRecordedMessage{
		Id:           log.Id,
		Query:        log.Query,
		Answer:       log.Answer,
		Intent:       log.Intent,
		Capabilities: log.Capabilities,
		FlowEvents:   log.FlowEvents,
		Escalated:    log.Escalated,
		RecordedAt:   time.Now(),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("AdvisorService", "Failed to marshal interaction message", map[string]interface{}{"error": err.Error()})
		return
	}

	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Error("AdvisorService", "Failed to publish interaction message", map[string]interface{}{"error": err.Error()})
	}

	// Mirror to NATS for external consumers. Best effort.
	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: constant.EventInteractionRecorded,
			Data: map[string]interface{}{
				"id":        log.Id.String(),
				"intent":    log.Intent,
				"escalated": log.Escalated,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("AdvisorService", "Failed to publish NATS event", map[string]interface{}{"error": err.Error()})
		}
	}
}

// needsEscalation flags queries whose wording suggests acute distress.
// The welfare responder handles the conversational side; this routes a
// copy to a human counselor.
func (s *advisorService) needsEscalation(query string) bool {
	lowered := strings.ToLower(query)
	for _, cue := range constant.WelfareEscalationCues {
		if strings.Contains(lowered, cue) {
			return true
		}
	}
	return false
}

func (s *advisorService) cacheKey(query string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(query))))
	return fmt.Sprintf("advisor:answer:%x", sum)
}

func (s *advisorService) cachedAnswer(ctx context.Context, query string) *dto.AskResponse {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, s.cacheKey(query)).Result()
	if err != nil {
		return nil
	}
	var res dto.AskResponse
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return nil
	}
	res.Cached = true
	return &res
}

func (s *advisorService) cacheAnswer(ctx context.Context, query string, res *dto.AskResponse) {
	if s.rdb == nil {
		return
	}
	payload, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, s.cacheKey(query), payload, answerCacheTTL).Err(); err != nil {
		s.logger.Warn("AdvisorService", "Failed to cache answer", map[string]interface{}{"error": err.Error()})
	}
}

func (s *advisorService) History(ctx context.Context, req *dto.HistoryRequest) (*dto.HistoryResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.InteractionLogRepository()

	filters := []specification.Specification{}
	if req.Intent != "" {
		filters = append(filters, specification.ByIntent{Intent: req.Intent})
	}

	total, err := repo.Count(ctx, filters...)
	if err != nil {
		return nil, fmt.Errorf("failed to count interactions: %w", err)
	}

	specs := append([]specification.Specification{}, filters...)
	specs = append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)

	logs, err := repo.FindAll(ctx, specs...)
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}

	items := make([]dto.HistoryItem, 0, len(logs))
	for _, l := range logs {
		items = append(items, dto.HistoryItem{
			Id:            l.Id,
			Query:         l.Query,
			Answer:        l.Answer,
			Intent:        l.Intent,
			Capabilities:  l.Capabilities,
			LatencyMillis: l.LatencyMillis,
			Escalated:     l.Escalated,
			CreatedAt:     l.CreatedAt,
		})
	}

	return &dto.HistoryResponse{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *advisorService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowInteractionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	log, err := uow.InteractionLogRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, fmt.Errorf("failed to get interaction: %w", err)
	}
	if log == nil {
		return nil, nil
	}

	return &dto.ShowInteractionResponse{
		Id:           log.Id,
		Query:        log.Query,
		Answer:       log.Answer,
		Intent:       log.Intent,
		Capabilities: log.Capabilities,
		AgentFlow:    log.AgentFlow,
		FlowEvents:   log.FlowEvents,
		Escalated:    log.Escalated,
		CreatedAt:    log.CreatedAt,
	}, nil
}
