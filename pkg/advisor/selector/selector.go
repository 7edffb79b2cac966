package selector

import (
	"context"
	"fmt"
	"strings"

	"edutrack-advisor-be/pkg/advisor/capability"
	"edutrack-advisor-be/pkg/advisor/flow"
	"edutrack-advisor-be/pkg/advisor/keyword"
	"edutrack-advisor-be/pkg/llm"
)

const systemInstruction = `You are a responder selector. Based on the user query, determine which specialized advisors should respond.
Available advisors:
- 'academic': academic performance, GPA, courses, study strategies
- 'career': career guidance, job prospects, professional development
- 'welfare': mental health, well-being, stress management
- 'performance': performance improvement, productivity, goal setting
Return ONLY a comma-separated list of advisor names inside square brackets, e.g. [academic] or [academic, performance]`

// Selector picks the capabilities that should answer a query. One model call;
// unparseable output falls back to the keyword classifier, and an empty
// result defaults to academic so the orchestrator never receives an empty
// selection.
type Selector struct {
	provider llm.LLMProvider
}

func NewSelector(provider llm.LLMProvider) *Selector {
	return &Selector{provider: provider}
}

func (s *Selector) Select(ctx context.Context, rec *flow.Recorder, query string) []capability.Capability {
	rec.Record(flow.ActorSelector, "Selecting responders", "Analyzing query for responder selection")

	reply, err := llm.Complete(ctx, s.provider, systemInstruction, query, llm.WithTemperature(0.0))
	if err != nil {
		rec.Record(flow.ActorSelector, "Selection error", fmt.Sprintf("Error: %v", err))
		return s.fallback(rec, query)
	}

	selected := ParseTagList(reply)
	if len(selected) == 0 {
		return s.fallback(rec, query)
	}

	rec.Record(flow.ActorSelector, "Responder selection completed", fmt.Sprintf("Selected: %v", selected))
	return selected
}

func (s *Selector) fallback(rec *flow.Recorder, query string) []capability.Capability {
	selected := keyword.Classify(query)
	if len(selected) == 0 {
		selected = []capability.Capability{capability.Academic}
	}
	rec.Record(flow.ActorSelector, "Fallback selection used", fmt.Sprintf("Selected: %v", selected))
	return selected
}

// ParseTagList extracts known capability names from a model reply. The reply
// is expected to contain a bracketed, delimited list; every token is
// validated against the closed capability set and anything else is dropped.
// The reply is never evaluated as code.
func ParseTagList(reply string) []capability.Capability {
	start := strings.Index(reply, "[")
	end := strings.LastIndex(reply, "]")
	if start == -1 || end == -1 || end <= start {
		return nil
	}

	var tags []capability.Capability
	seen := make(map[capability.Capability]bool)
	for _, token := range strings.Split(reply[start+1:end], ",") {
		token = strings.Trim(token, " \t\n'\"")
		tag, ok := capability.Parse(token)
		if !ok || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
