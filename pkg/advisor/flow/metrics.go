package flow

import (
	"context"
	"sync/atomic"
	"time"

	"edutrack-advisor-be/pkg/llm"
)

// Metrics are per-query observational counters. Reset at query start, read
// once at query end.
type Metrics struct {
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	AgentsInvoked   int       `json:"agents_invoked"`
	LLMCalls        int64     `json:"llm_calls"`
	TotalTimeMillis int64     `json:"total_time_ms"`

	llmCalls atomic.Int64
}

func StartMetrics() *Metrics {
	return &Metrics{StartTime: time.Now()}
}

// Finish stamps the end time and derives the total. Rounded down to
// millisecond precision.
func (m *Metrics) Finish() {
	m.EndTime = time.Now()
	m.LLMCalls = m.llmCalls.Load()
	m.TotalTimeMillis = m.EndTime.Sub(m.StartTime).Milliseconds()
}

// TotalTime reports the elapsed duration at millisecond precision.
func (m *Metrics) TotalTime() time.Duration {
	return time.Duration(m.TotalTimeMillis) * time.Millisecond
}

// MeteredProvider wraps an LLM provider and counts every model call against
// the query's metrics.
type MeteredProvider struct {
	inner   llm.LLMProvider
	metrics *Metrics
}

var _ llm.LLMProvider = &MeteredProvider{}

func Metered(inner llm.LLMProvider, metrics *Metrics) *MeteredProvider {
	return &MeteredProvider{inner: inner, metrics: metrics}
}

func (p *MeteredProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	p.metrics.llmCalls.Add(1)
	return p.inner.Chat(ctx, history, options...)
}

func (p *MeteredProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	p.metrics.llmCalls.Add(1)
	return p.inner.Generate(ctx, prompt, options...)
}
