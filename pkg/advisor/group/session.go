package group

import (
	"context"
	"fmt"
	"strings"

	"edutrack-advisor-be/pkg/advisor/capability"
	"edutrack-advisor-be/pkg/advisor/flow"
	"edutrack-advisor-be/pkg/llm"
)

// humanProxy is the non-generative participant that opens the session.
const humanProxy = "user"

// defaultMaxRounds caps the exchange length.
const defaultMaxRounds = 3

// Turn is one contribution to the session transcript.
type Turn struct {
	Speaker string
	Content string
}

// SpeakerPolicy chooses who talks next. The original coordinator let the
// model pick speakers; that choice is implementation-defined here, behind
// this interface.
type SpeakerPolicy interface {
	Next(round int, responders []*capability.Responder, transcript []Turn) *capability.Responder
}

// RoundRobin cycles through the responders in selection order.
type RoundRobin struct{}

func (RoundRobin) Next(round int, responders []*capability.Responder, _ []Turn) *capability.Responder {
	return responders[round%len(responders)]
}

// Session coordinates a bounded multi-turn exchange among two or more
// responders and merges their contributions into one narrative.
type Session struct {
	policy    SpeakerPolicy
	maxRounds int
}

func NewSession(policy SpeakerPolicy) *Session {
	if policy == nil {
		policy = RoundRobin{}
	}
	return &Session{policy: policy, maxRounds: defaultMaxRounds}
}

// Merge produces one combined answer from the selected responders. If the
// coordinated exchange fails or yields nothing usable, each responder is
// invoked independently instead, so the result is non-empty whenever at
// least one responder is present.
func (s *Session) Merge(ctx context.Context, rec *flow.Recorder, provider llm.LLMProvider, responders []*capability.Responder, query string) string {
	names := make([]string, len(responders))
	for i, r := range responders {
		names[i] = r.Name
	}
	rec.Record(flow.ActorGroupChat, "Initiating group session", fmt.Sprintf("Responders: %v", names))

	merged, err := s.run(ctx, provider, responders, query)
	if err != nil {
		rec.Record(flow.ActorGroupChat, "Group session failed", fmt.Sprintf("Error: %v", err))
		return s.independent(ctx, rec, provider, responders, query)
	}
	if merged == "" {
		rec.Record(flow.ActorGroupChat, "Fallback to individual responses", "Group session produced no turns")
		return s.independent(ctx, rec, provider, responders, query)
	}

	rec.Record(flow.ActorGroupChat, "Group session completed", fmt.Sprintf("Rounds: %d", s.maxRounds))
	return merged
}

func (s *Session) run(ctx context.Context, provider llm.LLMProvider, responders []*capability.Responder, query string) (string, error) {
	transcript := []Turn{{Speaker: humanProxy, Content: query}}

	for round := 0; round < s.maxRounds; round++ {
		speaker := s.policy.Next(round, responders, transcript)
		if speaker == nil {
			break
		}

		reply, err := provider.Chat(ctx, historyFor(speaker, transcript))
		if err != nil {
			// Any failed round voids the session; a partial transcript would
			// skip the responders that never got a turn.
			return "", fmt.Errorf("group session round %d (%s): %w", round+1, speaker.Name, err)
		}
		if strings.TrimSpace(reply) == "" {
			continue
		}
		transcript = append(transcript, Turn{Speaker: speaker.Name, Content: reply})
	}

	return renderTranscript(transcript), nil
}

// historyFor maps the shared transcript into the speaker's viewpoint: its own
// turns become assistant messages, everyone else's are user turns prefixed
// with the speaker label so responders can react to each other.
func historyFor(speaker *capability.Responder, transcript []Turn) []llm.Message {
	history := make([]llm.Message, 0, len(transcript)+1)
	history = append(history, llm.Message{Role: "system", Content: speaker.Instruction})
	for _, turn := range transcript {
		if turn.Speaker == speaker.Name {
			history = append(history, llm.Message{Role: "assistant", Content: turn.Content})
			continue
		}
		content := turn.Content
		if turn.Speaker != humanProxy {
			content = fmt.Sprintf("[%s]: %s", turn.Speaker, turn.Content)
		}
		history = append(history, llm.Message{Role: "user", Content: content})
	}
	return history
}

// renderTranscript collects every non-human turn, in chronological order, as
// labeled paragraphs. Empty when the session produced nothing usable.
func renderTranscript(transcript []Turn) string {
	var parts []string
	for _, turn := range transcript {
		if turn.Speaker == humanProxy {
			continue
		}
		parts = append(parts, fmt.Sprintf("**%s**: %s", turn.Speaker, turn.Content))
	}
	return strings.Join(parts, "\n\n")
}

// independent is the fallback path: every responder answers on its own and
// the labeled outputs are concatenated in selection order.
func (s *Session) independent(ctx context.Context, rec *flow.Recorder, provider llm.LLMProvider, responders []*capability.Responder, query string) string {
	var parts []string
	for _, responder := range responders {
		rec.Record(responder.Name, "Generating response", "Independent fallback mode")
		reply, err := responder.Respond(ctx, provider, query)
		if err != nil {
			rec.Record(responder.Name, "Response error", fmt.Sprintf("Error: %v", err))
			parts = append(parts, fmt.Sprintf("**%s**: Sorry, %s couldn't generate a response. Please try rephrasing your question.", responder.Name, responder.Name))
			continue
		}
		rec.Record(responder.Name, "Response completed", fmt.Sprintf("Generated response length: %d chars", len(reply)))
		parts = append(parts, fmt.Sprintf("**%s**: %s", responder.Name, reply))
	}
	return strings.Join(parts, "\n\n")
}
