package capability

import (
	"context"
	"testing"

	"edutrack-advisor-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw    string
		want   Capability
		wantOk bool
	}{
		{"academic", Academic, true},
		{"  Career ", Career, true},
		{"WELFARE", Welfare, true},
		{"performance", Performance, true},
		{"finance", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.raw)
		assert.Equal(t, tt.wantOk, ok, "Parse(%q)", tt.raw)
		assert.Equal(t, tt.want, got, "Parse(%q)", tt.raw)
	}
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry(
		&Responder{Name: "a", Capability: Academic},
		&Responder{Name: "b", Capability: Academic},
	)
	assert.Error(t, err)
}

func TestNewRegistryRejectsUnknownCapability(t *testing.T) {
	_, err := NewRegistry(&Responder{Name: "x", Capability: "astrology"})
	assert.Error(t, err)
}

func TestRegistryResolve(t *testing.T) {
	academic := &Responder{Name: "academic_advisor", Capability: Academic}
	career := &Responder{Name: "career_advisor", Capability: Career}

	reg, err := NewRegistry(academic, career)
	require.NoError(t, err)

	// Tags without a registered responder are skipped.
	handles := reg.Resolve([]Capability{Academic, Welfare, Career})
	require.Len(t, handles, 2)
	assert.Same(t, academic, handles[0])
	assert.Same(t, career, handles[1])

	assert.Empty(t, reg.Resolve(nil))
}

type fixedProvider struct {
	reply string
	err   error
}

func (p *fixedProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return p.reply, p.err
}

func (p *fixedProvider) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	return p.reply, p.err
}

func TestResponderRespond(t *testing.T) {
	r := &Responder{Name: "academic_advisor", Capability: Academic, Instruction: "advise"}

	reply, err := r.Respond(context.Background(), &fixedProvider{reply: "study daily"}, "how to pass")
	require.NoError(t, err)
	assert.Equal(t, "study daily", reply)

	_, err = r.Respond(context.Background(), &fixedProvider{err: assert.AnError}, "how to pass")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "academic_advisor")
}
