// Package advisor implements the query routing core: intent classification,
// responder selection, tabular lookup, and single/multi responder
// orchestration with a per-query decision trail.
package advisor

import (
	"context"
	"fmt"
	"log"

	"edutrack-advisor-be/pkg/advisor/capability"
	"edutrack-advisor-be/pkg/advisor/flow"
	"edutrack-advisor-be/pkg/advisor/group"
	"edutrack-advisor-be/pkg/advisor/intent"
	"edutrack-advisor-be/pkg/advisor/lookup"
	"edutrack-advisor-be/pkg/advisor/selector"
	"edutrack-advisor-be/pkg/dataset"
	"edutrack-advisor-be/pkg/llm"
)

// ClarificationMessage is the only user-visible "failure", returned as a
// normal value when no stage produced anything.
const ClarificationMessage = "I couldn't find relevant information or generate a helpful response. Please rephrase your question."

// Result carries everything one query produced: the answer, the rendered
// flow trace, the raw events, and the session metrics.
type Result struct {
	Answer       string
	Intent       intent.Intent
	Capabilities []capability.Capability
	Events       []flow.Event
	Trace        string
	Metrics      *flow.Metrics
}

// Orchestrator is the top-level state machine. It holds only immutable
// process-wide collaborators; all per-query state (recorder, metrics,
// metered provider) is created inside Ask, so one orchestrator instance is
// safe to share across concurrent requests.
type Orchestrator struct {
	provider llm.LLMProvider
	registry *capability.Registry
	datasets dataset.Provider
	session  *group.Session
	logger   *log.Logger
}

func NewOrchestrator(
	provider llm.LLMProvider,
	registry *capability.Registry,
	datasets dataset.Provider,
	policy group.SpeakerPolicy,
	logger *log.Logger,
) *Orchestrator {
	return &Orchestrator{
		provider: provider,
		registry: registry,
		datasets: datasets,
		session:  group.NewSession(policy),
		logger:   logger,
	}
}

// Ask runs the full pipeline for one query. It is a total function: every
// external failure degrades to a fallback and the worst case is the fixed
// clarification message, never an error.
func (o *Orchestrator) Ask(ctx context.Context, query string) *Result {
	rec := flow.NewRecorder()
	metrics := flow.StartMetrics()
	metered := flow.Metered(o.provider, metrics)

	rec.Record(flow.ActorSystem, "Query received", fmt.Sprintf("Processing: %s", query))

	mode := intent.NewClassifier(metered).Classify(ctx, rec, query)

	var dataResponse *string
	if mode.NeedsLookup() {
		dataResponse = lookup.NewEngine(metered, o.datasets).Lookup(ctx, rec, query)
	}

	var responderResponse *string
	var tags []capability.Capability
	if mode.NeedsResponders() {
		tags = selector.NewSelector(metered).Select(ctx, rec, query)
		handles := o.registry.Resolve(tags)
		metrics.AgentsInvoked = len(handles)

		switch {
		case len(handles) == 1:
			if reply := o.single(ctx, rec, metered, handles[0], query, dataResponse); reply != "" {
				responderResponse = &reply
			}
		case len(handles) > 1:
			enhanced := query
			if dataResponse != nil {
				enhanced = fmt.Sprintf("Context: %s\n\nQuery: %s", *dataResponse, query)
			}
			if reply := o.session.Merge(ctx, rec, metered, handles, enhanced); reply != "" {
				responderResponse = &reply
			}
		}
	}

	answer := Compose(mode, dataResponse, responderResponse)

	rec.Record(flow.ActorSystem, "Response generation completed", fmt.Sprintf("Mode: %s", mode))
	metrics.Finish()

	if o.logger != nil {
		o.logger.Printf("[ADVISOR] mode=%s responders=%d llm_calls=%d took=%s",
			mode, metrics.AgentsInvoked, metrics.LLMCalls, metrics.TotalTime())
	}

	return &Result{
		Answer:       answer,
		Intent:       mode,
		Capabilities: tags,
		Events:       rec.Events(),
		Trace:        rec.Render(),
		Metrics:      metrics,
	}
}

func (o *Orchestrator) single(ctx context.Context, rec *flow.Recorder, provider llm.LLMProvider, responder *capability.Responder, query string, contextData *string) string {
	rec.Record(responder.Name, "Generating response", "Single responder mode")

	enhanced := query
	if contextData != nil {
		enhanced = fmt.Sprintf(
			"Context data: %s\n\nUser query: %s\n\nPlease provide advice considering both the context data and the user's question.",
			*contextData, query)
	}

	reply, err := responder.Respond(ctx, provider, enhanced)
	if err != nil {
		rec.Record(responder.Name, "Response error", fmt.Sprintf("Error: %v", err))
		return ""
	}

	rec.Record(responder.Name, "Response completed", fmt.Sprintf("Generated response length: %d chars", len(reply)))
	return reply
}

// Compose merges the lookup and responder outputs into the final answer.
// Pure function of its inputs.
func Compose(mode intent.Intent, dataResponse, responderResponse *string) string {
	switch {
	case dataResponse != nil && responderResponse != nil:
		if mode == intent.Both {
			return fmt.Sprintf("**Data Insights:**\n%s\n\n**Recommendations:**\n%s", *dataResponse, *responderResponse)
		}
		// Data was only grounding context for the responders
		return *responderResponse
	case dataResponse != nil:
		return *dataResponse
	case responderResponse != nil:
		return *responderResponse
	default:
		return ClarificationMessage
	}
}
