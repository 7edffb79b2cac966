package dataset

import (
	"sort"
	"strings"
)

// ID identifies one of the fixed advisory datasets.
type ID string

const (
	Academic    ID = "academic_data"
	Performance ID = "performance_data"
	Welfare     ID = "welfare_data"
	Career      ID = "career_data"
)

// All returns the closed set of dataset identifiers.
func All() []ID {
	return []ID{Academic, Performance, Welfare, Career}
}

// Parse maps a raw name (optionally with a .csv suffix, as the model tends to
// echo the filenames it was shown) to a known dataset ID.
func Parse(raw string) (ID, bool) {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.TrimSuffix(name, ".csv")
	for _, id := range All() {
		if name == string(id) {
			return id, true
		}
	}
	return "", false
}

// Record is a single read-only row. All values are treated as text for
// matching purposes.
type Record map[string]string

// Flatten concatenates the record's values into one lowercase string for
// substring matching. Keys are sorted so the output is deterministic.
func (r Record) Flatten() string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(r[k])
	}
	return strings.ToLower(sb.String())
}

// Provider serves tabular records. A missing dataset yields an empty slice,
// not an error.
type Provider interface {
	GetRecords(id ID) ([]Record, error)
}
