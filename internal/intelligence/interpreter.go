package intelligence

import (
	"context"

	"github.com/tosurajitc/Kraft-Henz-Poc/internal/domain"
	"github.com/tosurajitc/Kraft-Henz-Poc/internal/llm"
)

// Interpreter turns free-text questions into structured filters. Exactly one
// filter is produced per question and interpretation never fails: the worst
// case is an empty filter that matches the whole dataset.
type Interpreter interface {
	Interpret(ctx context.Context, question string, vocab domain.Vocabulary) FilterResolution
}

// NewInterpreter wires the model-assisted path with automatic demotion to
// the rule-based path. A nil client yields the rule path alone.
func NewInterpreter(client llm.Client) Interpreter {
	rules := NewRuleInterpreter()
	if client == nil {
		return rules
	}
	return &modelInterpreter{client: client, rules: rules}
}

type modelInterpreter struct {
	client llm.Client
	rules  *RuleInterpreter
}

func (m *modelInterpreter) Interpret(ctx context.Context, question string, vocab domain.Vocabulary) FilterResolution {
	resp, err := m.client.Complete(ctx, llm.Request{
		Task:         llm.TaskFilter,
		SystemPrompt: buildFilterSystemPrompt(vocab.Statuses, vocab.ProjectNames),
		UserPrompt:   question,
	})
	if err != nil {
		// Timeout, unreachable provider, exhausted retries: all demote.
		return m.rules.Interpret(ctx, question, vocab)
	}

	payload, err := llm.ExtractJSON[filterPayload](resp.Text, validatePayload(vocab))
	if err != nil {
		return m.rules.Interpret(ctx, question, vocab)
	}

	return FilterResolution{Filter: payload.toFilter(), Source: SourceModel}
}
