package intelligence

import (
	"context"
	"fmt"

	"github.com/tosurajitc/Kraft-Henz-Poc/internal/domain"
	"github.com/tosurajitc/Kraft-Henz-Poc/internal/llm"
)

// AnswerService runs the full question pipeline: interpret the question,
// build the bounded context, and ask the model for the final answer. Model
// failure at the final stage degrades to an "answer unavailable" result;
// it is never surfaced as an error.
type AnswerService struct {
	client llm.Client
	interp Interpreter
	budget int
}

// NewAnswerService wires the pipeline. A nil client means questions are
// still interpreted and counted, but answers report unavailable.
func NewAnswerService(client llm.Client, interp Interpreter, contextBudget int) *AnswerService {
	if contextBudget <= 0 {
		contextBudget = DefaultContextBudget
	}
	return &AnswerService{client: client, interp: interp, budget: contextBudget}
}

// Ask answers a free-text question against the current dataset snapshot.
func (s *AnswerService) Ask(ctx context.Context, question string, ds *domain.Dataset) (*Answer, error) {
	if ds == nil {
		return nil, ErrNoDataset
	}

	resolution := s.interp.Interpret(ctx, question, ds.Vocab())
	projectContext := BuildContext(resolution.Filter, ds.Records, s.budget)

	if projectContext.MatchCount == 0 {
		return &Answer{
			Text:         "No projects in the current dataset match your question.",
			Source:       AnswerDeterministic,
			FilterSource: resolution.Source,
			MatchCount:   0,
		}, nil
	}

	if s.client == nil {
		return s.unavailable(resolution, projectContext), nil
	}

	resp, err := s.client.Complete(ctx, llm.Request{
		Task:         llm.TaskAnswer,
		SystemPrompt: answerSystemPrompt,
		UserPrompt:   buildAnswerUserPrompt(question, projectContext),
	})
	if err != nil {
		return s.unavailable(resolution, projectContext), nil
	}

	return &Answer{
		Text:         resp.Text,
		Source:       AnswerModel,
		FilterSource: resolution.Source,
		MatchCount:   projectContext.MatchCount,
		Truncated:    projectContext.Truncated,
	}, nil
}

func (s *AnswerService) unavailable(res FilterResolution, projectContext Context) *Answer {
	return &Answer{
		Text: fmt.Sprintf("The assistant is unavailable right now. %d project(s) match your question; use the charts to inspect them.",
			projectContext.MatchCount),
		Source:       AnswerUnavailable,
		FilterSource: res.Source,
		MatchCount:   projectContext.MatchCount,
		Truncated:    projectContext.Truncated,
	}
}
