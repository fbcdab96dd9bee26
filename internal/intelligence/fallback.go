package intelligence

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/tosurajitc/Kraft-Henz-Poc/internal/domain"
	"github.com/tosurajitc/Kraft-Henz-Poc/internal/importer"
)

// RuleInterpreter builds a filter from the question text by deterministic
// matching against the dataset vocabulary. It cannot fail: an empty or
// unintelligible question produces an empty filter.
type RuleInterpreter struct {
	// Now anchors relative date terms such as "this month". Tests pin it.
	Now func() time.Time
}

// NewRuleInterpreter returns a rule interpreter anchored to the wall clock.
func NewRuleInterpreter() *RuleInterpreter {
	return &RuleInterpreter{Now: time.Now}
}

// stopwords are tokens that carry no filtering signal on their own.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "is": true, "are": true, "was": true,
	"were": true, "be": true, "been": true, "show": true, "list": true,
	"give": true, "me": true, "all": true, "any": true, "of": true, "in": true,
	"on": true, "for": true, "with": true, "by": true, "and": true, "or": true,
	"to": true, "at": true, "what": true, "which": true, "who": true,
	"how": true, "many": true, "much": true, "do": true, "does": true,
	"did": true, "have": true, "has": true, "had": true, "that": true,
	"this": true, "these": true, "those": true, "please": true,
	"project": true, "projects": true, "record": true, "records": true,
	"status": true, "currently": true, "right": true, "now": true,
}

func (ri *RuleInterpreter) Interpret(_ context.Context, question string, vocab domain.Vocabulary) FilterResolution {
	res := FilterResolution{Source: SourceRules}

	q := domain.Canonical(question)
	if q == "" {
		return res
	}

	// Relative date terms first, so "this month" is not shredded into
	// stopword tokens below.
	if from, to, rest, ok := ri.matchRelativeTerm(q); ok {
		res.Filter.From, res.Filter.To = from, to
		q = rest
	}

	// Status vocabulary: substring match handles multi-word values.
	for _, status := range vocab.Statuses {
		key := domain.Canonical(status)
		if key != "" && strings.Contains(q, key) {
			res.Filter.Statuses = append(res.Filter.Statuses, status)
			q = excise(q, key)
		}
	}

	// Project names: longest match wins so "invoice portal v2" beats "invoice".
	names := make([]string, len(vocab.ProjectNames))
	copy(names, vocab.ProjectNames)
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	for _, name := range names {
		key := domain.Canonical(name)
		if key != "" && strings.Contains(q, key) {
			res.Filter.NameContains = name
			q = excise(q, key)
			break
		}
	}

	// Remaining tokens: explicit dates, then keywords.
	var dates []time.Time
	for _, tok := range strings.Fields(q) {
		tok = strings.Trim(tok, ".,;:!?\"'()")
		if tok == "" || stopwords[tok] {
			continue
		}
		if d, ok := importer.ParseDate(tok); ok {
			dates = append(dates, d)
			continue
		}
		if !containsString(res.Filter.Keywords, tok) {
			res.Filter.Keywords = append(res.Filter.Keywords, tok)
		}
	}

	if len(dates) > 0 && res.Filter.From == nil && res.Filter.To == nil {
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
		res.Filter.From = &dates[0]
		res.Filter.To = &dates[len(dates)-1]
	}

	return res
}

// relativeTerms is checked in order; longer phrases come first so "last
// month" is not half-matched.
var relativeTerms = []string{
	"this week", "last week", "this month", "last month",
	"this quarter", "this year", "last year", "yesterday", "today",
}

func (ri *RuleInterpreter) matchRelativeTerm(q string) (from, to *time.Time, rest string, ok bool) {
	for _, term := range relativeTerms {
		if !strings.Contains(q, term) {
			continue
		}
		f, t := ri.rangeFor(term)
		return &f, &t, excise(q, term), true
	}
	return nil, nil, q, false
}

func (ri *RuleInterpreter) rangeFor(term string) (time.Time, time.Time) {
	now := ri.Now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch term {
	case "today":
		return day, day
	case "yesterday":
		y := day.AddDate(0, 0, -1)
		return y, y
	case "this week":
		start := startOfWeek(day)
		return start, start.AddDate(0, 0, 6)
	case "last week":
		start := startOfWeek(day).AddDate(0, 0, -7)
		return start, start.AddDate(0, 0, 6)
	case "this month":
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1)
	case "last month":
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
		return start, start.AddDate(0, 1, -1)
	case "this quarter":
		qStart := time.Date(day.Year(), time.Month(3*((int(day.Month())-1)/3)+1), 1, 0, 0, 0, 0, time.UTC)
		return qStart, qStart.AddDate(0, 3, -1)
	case "this year":
		start := time.Date(day.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return start, time.Date(day.Year(), 12, 31, 0, 0, 0, 0, time.UTC)
	case "last year":
		return time.Date(day.Year()-1, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(day.Year()-1, 12, 31, 0, 0, 0, 0, time.UTC)
	}
	return day, day
}

func startOfWeek(day time.Time) time.Time {
	// ISO weeks start on Monday.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func excise(q, phrase string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(q, phrase, " ")), " ")
}

func containsString(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
