package keyword

import (
	"strings"

	"edutrack-advisor-be/pkg/advisor/capability"
)

// Classify maps free text to the capabilities whose lexicon it touches.
// Pure and total: no I/O, no failure mode, possibly empty result. All
// matching tags are returned, in canonical capability order.
func Classify(text string) []capability.Capability {
	lowered := strings.ToLower(text)
	matched := make(map[capability.Capability]bool)

	for word, tags := range lexicon {
		if strings.Contains(lowered, word) {
			for _, tag := range tags {
				matched[tag] = true
			}
		}
	}

	// Second pass over the broader cue sets
	for tag, cues := range broadCues {
		if matched[tag] {
			continue
		}
		for _, cue := range cues {
			if strings.Contains(lowered, cue) {
				matched[tag] = true
				break
			}
		}
	}

	result := make([]capability.Capability, 0, len(matched))
	for _, tag := range capability.All() {
		if matched[tag] {
			result = append(result, tag)
		}
	}
	return result
}
