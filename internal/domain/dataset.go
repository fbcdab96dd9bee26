package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Dataset is the in-memory snapshot of one uploaded file. It is owned by a
// single session and replaced wholesale on re-upload, never mutated.
type Dataset struct {
	ID       string
	Source   string
	Records  []ProjectRecord
	LoadedAt time.Time
}

// NewDataset wraps normalized records in a fresh snapshot.
func NewDataset(source string, records []ProjectRecord) *Dataset {
	return &Dataset{
		ID:       uuid.NewString(),
		Source:   source,
		Records:  records,
		LoadedAt: time.Now().UTC(),
	}
}

// Vocabulary is the set of categorical values present in a dataset, used to
// ground query interpretation. Values keep their display casing; each list
// is deduplicated case-insensitively and sorted.
type Vocabulary struct {
	Statuses     []string
	ProjectNames []string
	DevTypes     []string
	Stages       []string
}

// Vocab extracts the vocabulary of the snapshot.
func (d *Dataset) Vocab() Vocabulary {
	return Vocabulary{
		Statuses:     distinct(d.Records, func(r *ProjectRecord) string { return r.Status }),
		ProjectNames: distinct(d.Records, func(r *ProjectRecord) string { return r.Name }),
		DevTypes:     distinct(d.Records, func(r *ProjectRecord) string { return r.DevType }),
		Stages:       distinct(d.Records, func(r *ProjectRecord) string { return r.Stage }),
	}
}

func distinct(records []ProjectRecord, get func(*ProjectRecord) string) []string {
	seen := make(map[string]string)
	for i := range records {
		v := get(&records[i])
		key := Canonical(v)
		if key == "" {
			continue
		}
		// First occurrence wins for display casing.
		if _, ok := seen[key]; !ok {
			seen[key] = v
		}
	}
	out := make([]string, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
