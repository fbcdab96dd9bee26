package aggregate

import (
	"fmt"
	"sort"

	"github.com/tosurajitc/Kraft-Henz-Poc/internal/domain"
)

// Dimension selects which categorical column CountBy buckets on.
type Dimension string

const (
	DimDevType     Dimension = "dev_type"
	DimProcessArea Dimension = "process_area"
	DimStage       Dimension = "stage"
)

// Unspecified is the bucket for records with no value in the counted
// dimension, so bucket totals always sum to the record total.
const Unspecified = "Unspecified"

// CategoryCount is one pie/bar slice.
type CategoryCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// CountBy buckets records along one categorical dimension. Buckets keep the
// display casing of the first occurrence and are sorted by value with the
// Unspecified bucket last.
func CountBy(records []domain.ProjectRecord, dim Dimension) ([]CategoryCount, error) {
	get, err := dimensionGetter(dim)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	display := make(map[string]string)

	for i := range records {
		v := get(&records[i])
		key := domain.Canonical(v)
		if key == "" {
			counts[Unspecified]++
			display[Unspecified] = Unspecified
			continue
		}
		if _, ok := display[key]; !ok {
			display[key] = v
		}
		counts[key]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for key, n := range counts {
		out = append(out, CategoryCount{Value: display[key], Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if (out[i].Value == Unspecified) != (out[j].Value == Unspecified) {
			return out[j].Value == Unspecified
		}
		return out[i].Value < out[j].Value
	})

	return out, nil
}

// ParseDimension resolves user input ("stage", "dev_type", "process_area")
// to a Dimension.
func ParseDimension(s string) (Dimension, error) {
	switch Dimension(s) {
	case DimDevType, DimProcessArea, DimStage:
		return Dimension(s), nil
	default:
		return "", fmt.Errorf("unknown dimension %q (want dev_type, process_area or stage)", s)
	}
}

func dimensionGetter(dim Dimension) (func(*domain.ProjectRecord) string, error) {
	switch dim {
	case DimDevType:
		return func(r *domain.ProjectRecord) string { return r.DevType }, nil
	case DimProcessArea:
		return func(r *domain.ProjectRecord) string { return r.ProcessArea }, nil
	case DimStage:
		return func(r *domain.ProjectRecord) string { return r.Stage }, nil
	default:
		return nil, fmt.Errorf("unknown dimension %q", dim)
	}
}
