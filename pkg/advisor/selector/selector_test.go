package selector

import (
	"context"
	"errors"
	"testing"

	"edutrack-advisor-be/pkg/advisor/capability"
	"edutrack-advisor-be/pkg/advisor/flow"
	"edutrack-advisor-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

type stubProvider struct {
	reply string
	err   error
}

func (s *stubProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return s.reply, s.err
}

func (s *stubProvider) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	return s.reply, s.err
}

func TestParseTagList(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  []capability.Capability
	}{
		{
			name:  "plain list",
			reply: "[academic, career]",
			want:  []capability.Capability{capability.Academic, capability.Career},
		},
		{
			name:  "surrounding prose and quotes",
			reply: "Sure, I'd pick: ['welfare']",
			want:  []capability.Capability{capability.Welfare},
		},
		{
			name:  "unknown names dropped, duplicates collapsed",
			reply: "[finance, academic, academic]",
			want:  []capability.Capability{capability.Academic},
		},
		{
			name:  "no brackets",
			reply: "academic and career",
			want:  nil,
		},
		{
			name:  "empty brackets",
			reply: "[]",
			want:  nil,
		},
		{
			name:  "reversed brackets",
			reply: "] academic [",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTagList(tt.reply))
		})
	}
}

func TestSelect(t *testing.T) {
	t.Run("valid model reply wins", func(t *testing.T) {
		rec := flow.NewRecorder()
		s := NewSelector(&stubProvider{reply: "[performance]"})

		got := s.Select(context.Background(), rec, "how do I get better")

		assert.Equal(t, []capability.Capability{capability.Performance}, got)
	})

	t.Run("model error falls back to keywords", func(t *testing.T) {
		rec := flow.NewRecorder()
		s := NewSelector(&stubProvider{err: errors.New("timeout")})

		got := s.Select(context.Background(), rec, "my gpa is dropping")

		assert.Equal(t, []capability.Capability{capability.Academic}, got)
	})

	t.Run("unparseable reply and no keywords defaults to academic", func(t *testing.T) {
		rec := flow.NewRecorder()
		s := NewSelector(&stubProvider{reply: "none of the above"})

		got := s.Select(context.Background(), rec, "xyzzy")

		assert.Equal(t, []capability.Capability{capability.Academic}, got)
	})
}
