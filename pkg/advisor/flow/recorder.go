package flow

import (
	"fmt"
	"strings"
	"time"
)

// Actor labels used in the flow trace.
const (
	ActorSystem      = "system"
	ActorRouter      = "router"
	ActorSelector    = "selector"
	ActorDataContext = "data_context"
	ActorInterpreter = "data_interpreter"
	ActorGroupChat   = "group_chat"
)

// Event is one routing decision in a query's trace. Append-only; insertion
// order is causal order.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
}

// Recorder collects the per-query decision trail. It is request-scoped state:
// one recorder per in-flight query, never shared across requests.
type Recorder struct {
	events []Event
	actors []string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends one event.
func (r *Recorder) Record(actor, action, detail string) {
	r.events = append(r.events, Event{
		Timestamp: time.Now(),
		Actor:     actor,
		Action:    action,
		Detail:    detail,
	})
	for _, a := range r.actors {
		if a == actor {
			return
		}
	}
	r.actors = append(r.actors, actor)
}

// Events returns the trail in insertion order.
func (r *Recorder) Events() []Event {
	return r.events
}

// Actors returns the distinct actors in first-seen order.
func (r *Recorder) Actors() []string {
	return r.actors
}

var actorRoles = map[string]string{
	ActorRouter:      "Determines query handling strategy (lookup/generative/both)",
	ActorSelector:    "Selects appropriate specialized responders",
	ActorDataContext: "Identifies relevant datasets",
	ActorInterpreter: "Analyzes and interprets data",
	"academic":       "Handles academic performance queries",
	"career":         "Provides career guidance",
	"welfare":        "Manages well-being concerns",
	"performance":    "Focuses on performance improvement",
}

// Render produces the human-readable agent-flow report returned to callers
// and persisted with each interaction.
func (r *Recorder) Render() string {
	if len(r.events) == 0 {
		return "No agent activity recorded for this session."
	}

	var out []string
	out = append(out, "AGENT FLOW ANALYSIS")
	out = append(out, strings.Repeat("=", 50))

	out = append(out, "Session Summary:")
	out = append(out, fmt.Sprintf("   - Total Actors Invoked: %d", len(r.actors)))
	out = append(out, fmt.Sprintf("   - Active Actors: %s", strings.Join(r.actors, ", ")))
	out = append(out, fmt.Sprintf("   - Total Communications: %d", len(r.events)))
	out = append(out, "")

	out = append(out, "Communication Flow:")
	for i, e := range r.events {
		out = append(out, fmt.Sprintf("   %d. [%s] %s", i+1, e.Timestamp.Format("15:04:05.000"), strings.ToUpper(e.Actor)))
		out = append(out, fmt.Sprintf("      Action: %s", e.Action))
		if e.Detail != "" {
			out = append(out, fmt.Sprintf("      Details: %s", e.Detail))
		}
	}
	out = append(out, "")

	out = append(out, "Actor Roles:")
	for _, actor := range r.actors {
		if role, ok := actorRoles[actor]; ok {
			out = append(out, fmt.Sprintf("   - %s: %s", actor, role))
		}
	}

	return strings.Join(out, "\n")
}

// Snippet shortens s to at most n runes for event details. Cuts on rune
// boundaries so multi-byte input stays valid UTF-8 in the persisted trace.
func Snippet(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
