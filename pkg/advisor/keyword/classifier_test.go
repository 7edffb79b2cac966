package keyword

import (
	"testing"

	"edutrack-advisor-be/pkg/advisor/capability"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  []capability.Capability
	}{
		{
			name: "gpa query maps to academic",
			text: "what is my gpa",
			want: []capability.Capability{capability.Academic},
		},
		{
			name: "distress wording maps to welfare",
			text: "I feel so much stress and anxiety lately",
			want: []capability.Capability{capability.Welfare},
		},
		{
			name: "mixed query touches several capabilities",
			text: "how can I improve my coding before the interview",
			want: []capability.Capability{capability.Academic, capability.Career, capability.Performance},
		},
		{
			name: "unrelated text matches nothing",
			text: "zzz qqq",
			want: nil,
		},
		{
			name: "empty input matches nothing",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Classify("WHAT IS MY GPA"), Classify("what is my gpa"))
}

func TestClassifyCanonicalOrder(t *testing.T) {
	// Welfare sorts before performance regardless of match order in the text.
	got := Classify("my performance suffers because of stress")
	assert.Equal(t, []capability.Capability{capability.Welfare, capability.Performance}, got)
}
