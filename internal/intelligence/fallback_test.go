package intelligence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tosurajitc/Kraft-Henz-Poc/internal/domain"
)

func testVocab() domain.Vocabulary {
	return domain.Vocabulary{
		Statuses:     []string{"At Risk", "Delayed", "On Track"},
		ProjectNames: []string{"Invoice Portal", "Payroll Cleanup", "Warehouse Sync"},
		DevTypes:     []string{"Enhancement", "Interface", "Report"},
		Stages:       []string{"Build", "Design", "Test"},
	}
}

func pinnedRules() *RuleInterpreter {
	ri := NewRuleInterpreter()
	ri.Now = func() time.Time {
		return time.Date(2024, 3, 14, 10, 30, 0, 0, time.UTC) // a Thursday
	}
	return ri
}

func TestRuleInterpreter_EmptyQuestionYieldsEmptyFilter(t *testing.T) {
	res := pinnedRules().Interpret(context.Background(), "   ", testVocab())

	assert.Equal(t, SourceRules, res.Source)
	assert.True(t, res.Filter.IsEmpty())
}

func TestRuleInterpreter_StatusVocabularyMatch(t *testing.T) {
	res := pinnedRules().Interpret(context.Background(), "show delayed projects", testVocab())

	assert.Equal(t, []string{"Delayed"}, res.Filter.Statuses)
	assert.Empty(t, res.Filter.Keywords, "status and stopword tokens should not leak into keywords")
}

func TestRuleInterpreter_MultiWordStatus(t *testing.T) {
	res := pinnedRules().Interpret(context.Background(), "which projects are at risk?", testVocab())

	assert.Equal(t, []string{"At Risk"}, res.Filter.Statuses)
}

func TestRuleInterpreter_ProjectNameLongestMatch(t *testing.T) {
	vocab := testVocab()
	vocab.ProjectNames = append(vocab.ProjectNames, "Invoice Portal Phase 2")

	res := pinnedRules().Interpret(context.Background(), "status of invoice portal phase 2", vocab)

	assert.Equal(t, "Invoice Portal Phase 2", res.Filter.NameContains)
}

func TestRuleInterpreter_RelativeDateThisMonth(t *testing.T) {
	res := pinnedRules().Interpret(context.Background(), "what is due this month", testVocab())

	require.NotNil(t, res.Filter.From)
	require.NotNil(t, res.Filter.To)
	assert.Equal(t, "2024-03-01", res.Filter.From.Format("2006-01-02"))
	assert.Equal(t, "2024-03-31", res.Filter.To.Format("2006-01-02"))
}

func TestRuleInterpreter_RelativeDateLastWeek(t *testing.T) {
	res := pinnedRules().Interpret(context.Background(), "anything delivered last week", testVocab())

	require.NotNil(t, res.Filter.From)
	assert.Equal(t, "2024-03-04", res.Filter.From.Format("2006-01-02"))
	assert.Equal(t, "2024-03-10", res.Filter.To.Format("2006-01-02"))
}

func TestRuleInterpreter_ExplicitDatesBecomeRange(t *testing.T) {
	res := pinnedRules().Interpret(context.Background(), "between 2024-02-01 and 2024-04-30", testVocab())

	require.NotNil(t, res.Filter.From)
	require.NotNil(t, res.Filter.To)
	assert.Equal(t, "2024-02-01", res.Filter.From.Format("2006-01-02"))
	assert.Equal(t, "2024-04-30", res.Filter.To.Format("2006-01-02"))
}

func TestRuleInterpreter_LeftoverTokensBecomeKeywords(t *testing.T) {
	res := pinnedRules().Interpret(context.Background(), "show finance interface work", testVocab())

	assert.Equal(t, []string{"finance", "interface", "work"}, res.Filter.Keywords)
}

func TestRuleInterpreter_CombinedQuestion(t *testing.T) {
	res := pinnedRules().Interpret(context.Background(),
		"is warehouse sync delayed this month?", testVocab())

	assert.Equal(t, "Warehouse Sync", res.Filter.NameContains)
	assert.Equal(t, []string{"Delayed"}, res.Filter.Statuses)
	require.NotNil(t, res.Filter.From)
	assert.Equal(t, "2024-03-01", res.Filter.From.Format("2006-01-02"))
	assert.Empty(t, res.Filter.Keywords)
}
