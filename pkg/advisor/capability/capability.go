package capability

import "strings"

// Capability identifies one of the fixed advisory specializations.
type Capability string

const (
	Academic    Capability = "academic"
	Career      Capability = "career"
	Welfare     Capability = "welfare"
	Performance Capability = "performance"
)

// All returns the closed set of capabilities, in canonical order.
func All() []Capability {
	return []Capability{Academic, Career, Welfare, Performance}
}

// Parse validates a raw name against the closed set. Model output is never
// trusted beyond this check.
func Parse(raw string) (Capability, bool) {
	name := Capability(strings.ToLower(strings.TrimSpace(raw)))
	switch name {
	case Academic, Career, Welfare, Performance:
		return name, true
	}
	return "", false
}
