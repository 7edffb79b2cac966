package intent

import (
	"context"
	"fmt"
	"strings"

	"edutrack-advisor-be/pkg/advisor/flow"
	"edutrack-advisor-be/pkg/llm"
)

// Intent is the handling strategy resolved for a query.
type Intent string

const (
	Lookup     Intent = "lookup"
	Generative Intent = "generative"
	Both       Intent = "both"
)

// NeedsLookup reports whether the data lookup stage should run.
func (i Intent) NeedsLookup() bool { return i == Lookup || i == Both }

// NeedsResponders reports whether the responder selection stage should run.
func (i Intent) NeedsResponders() bool { return i == Generative || i == Both }

const systemInstruction = `You are a smart router. Analyze the user's question and decide how to handle it.
Categories:
- 'lookup': the question asks for specific data like GPA, student records, performance metrics, or factual information from databases
- 'generative': the question asks for advice, recommendations, explanations, or guidance
- 'both': the question needs both data lookup AND reasoning/advice
Reply with ONLY one word: 'lookup', 'generative', or 'both'`

var lookupCues = []string{"what is my", "show me", "find", "gpa", "records", "data"}
var adviceCues = []string{"how to", "improve", "advice", "help me", "suggest"}

// Classifier resolves a query's intent with a single model call, falling back
// to keyword cues when the reply is not one of the three labels.
type Classifier struct {
	provider llm.LLMProvider
}

func NewClassifier(provider llm.LLMProvider) *Classifier {
	return &Classifier{provider: provider}
}

// Classify never fails: a model error degrades to Generative, since the
// responders can always attempt an answer while a lookup may have nothing
// to show.
func (c *Classifier) Classify(ctx context.Context, rec *flow.Recorder, query string) Intent {
	rec.Record(flow.ActorRouter, "Classifying query", fmt.Sprintf("Analyzing: %s", flow.Snippet(query, 50)))

	reply, err := llm.Complete(ctx, c.provider, systemInstruction, query, llm.WithTemperature(0.0))
	if err != nil {
		rec.Record(flow.ActorRouter, "Classification error", fmt.Sprintf("Error: %v", err))
		return Generative
	}

	result := normalize(reply)
	if result == "" {
		result = fallback(query)
		rec.Record(flow.ActorRouter, "Fallback classification used", fmt.Sprintf("Result: %s", result))
		return result
	}

	rec.Record(flow.ActorRouter, "Classification completed", fmt.Sprintf("Result: %s", result))
	return result
}

// normalize accepts only an exact label; anything else is rejected.
func normalize(reply string) Intent {
	switch Intent(strings.ToLower(strings.TrimSpace(reply))) {
	case Lookup:
		return Lookup
	case Generative:
		return Generative
	case Both:
		return Both
	}
	return ""
}

func fallback(query string) Intent {
	lowered := strings.ToLower(query)
	for _, cue := range lookupCues {
		if strings.Contains(lowered, cue) {
			return Lookup
		}
	}
	for _, cue := range adviceCues {
		if strings.Contains(lowered, cue) {
			return Generative
		}
	}
	return Both
}

