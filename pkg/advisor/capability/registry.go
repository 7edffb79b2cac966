package capability

import (
	"context"
	"fmt"

	"edutrack-advisor-be/pkg/llm"
)

// Responder produces free-text advice for one capability. It is bound 1:1 to
// a Capability and never mutated after the registry is built.
type Responder struct {
	Name        string
	Capability  Capability
	Instruction string
}

// Respond generates a reply to the query. The provider is passed per call so
// the caller can wrap it (e.g. to count model invocations for one request).
func (r *Responder) Respond(ctx context.Context, provider llm.LLMProvider, query string) (string, error) {
	reply, err := llm.Complete(ctx, provider, r.Instruction, query)
	if err != nil {
		return "", fmt.Errorf("responder %s: %w", r.Name, err)
	}
	return reply, nil
}

// Registry is the immutable capability -> responder mapping, built once at
// process start and shared read-only across requests.
type Registry struct {
	responders map[Capability]*Responder
}

func NewRegistry(responders ...*Responder) (*Registry, error) {
	m := make(map[Capability]*Responder, len(responders))
	for _, r := range responders {
		if _, ok := Parse(string(r.Capability)); !ok {
			return nil, fmt.Errorf("unknown capability %q for responder %s", r.Capability, r.Name)
		}
		if _, exists := m[r.Capability]; exists {
			return nil, fmt.Errorf("duplicate responder for capability %s", r.Capability)
		}
		m[r.Capability] = r
	}
	return &Registry{responders: m}, nil
}

// Resolve maps capabilities to responder handles, skipping tags with no
// registered responder.
func (reg *Registry) Resolve(tags []Capability) []*Responder {
	handles := make([]*Responder, 0, len(tags))
	for _, tag := range tags {
		if r, ok := reg.responders[tag]; ok {
			handles = append(handles, r)
		}
	}
	return handles
}

// Get returns the responder for one capability.
func (reg *Registry) Get(tag Capability) (*Responder, bool) {
	r, ok := reg.responders[tag]
	return r, ok
}
