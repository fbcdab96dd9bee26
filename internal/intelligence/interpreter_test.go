package intelligence

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tosurajitc/Kraft-Henz-Poc/internal/llm"
)

// mockClient returns a fixed response or error for testing.
type mockClient struct {
	response string
	err      error
	lastReq  llm.Request
}

func (m *mockClient) Complete(_ context.Context, req llm.Request) (*llm.Response, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llm.Response{Text: m.response, Model: "llama3-70b-8192"}, nil
}

func TestInterpreter_ModelPathUsedWhenValid(t *testing.T) {
	client := &mockClient{response: `{"name_contains":"","statuses":["Delayed"],"from":"","to":"","keywords":[]}`}
	interp := NewInterpreter(client)

	res := interp.Interpret(context.Background(), "show delayed projects", testVocab())

	assert.Equal(t, SourceModel, res.Source)
	assert.Equal(t, []string{"Delayed"}, res.Filter.Statuses)
	assert.Contains(t, client.lastReq.SystemPrompt, "Delayed", "vocabulary should be in the prompt")
}

func TestInterpreter_ModelFailureDemotesToRules(t *testing.T) {
	client := &mockClient{err: llm.ErrUnavailable}
	interp := NewInterpreter(client)

	res := interp.Interpret(context.Background(), "show delayed projects", testVocab())

	assert.Equal(t, SourceRules, res.Source)
	assert.Equal(t, []string{"Delayed"}, res.Filter.Statuses)
}

func TestInterpreter_UnparsableModelOutputDemotesToRules(t *testing.T) {
	client := &mockClient{response: "I think you want the delayed ones, but I won't say so in JSON."}
	interp := NewInterpreter(client)

	res := interp.Interpret(context.Background(), "show delayed projects", testVocab())

	assert.Equal(t, SourceRules, res.Source)
	assert.Equal(t, []string{"Delayed"}, res.Filter.Statuses)
}

func TestInterpreter_UnknownStatusInModelOutputDemotesToRules(t *testing.T) {
	client := &mockClient{response: `{"name_contains":"","statuses":["Blocked"],"from":"","to":"","keywords":[]}`}
	interp := NewInterpreter(client)

	res := interp.Interpret(context.Background(), "show blocked projects", testVocab())

	// "Blocked" is not in the dataset vocabulary, so the rule path runs;
	// its output keeps the token as a keyword instead.
	assert.Equal(t, SourceRules, res.Source)
	assert.Empty(t, res.Filter.Statuses)
	assert.Equal(t, []string{"blocked"}, res.Filter.Keywords)
}

func TestInterpreter_NilClientUsesRulesDirectly(t *testing.T) {
	interp := NewInterpreter(nil)

	res := interp.Interpret(context.Background(), "show delayed projects", testVocab())
	assert.Equal(t, SourceRules, res.Source)
}

func TestInterpreter_TimeoutFallsBackSynchronously(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(10 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.APIKey = "test-key"
	cfg.MaxRetries = 0
	task := cfg.Tasks[llm.TaskFilter]
	task.TimeoutMs = 300
	cfg.Tasks[llm.TaskFilter] = task

	interp := NewInterpreter(llm.NewGroqClient(cfg, llm.NoopObserver{}))

	start := time.Now()
	res := interp.Interpret(context.Background(), "show delayed projects", testVocab())
	elapsed := time.Since(start)

	require.Equal(t, SourceRules, res.Source)
	assert.Equal(t, []string{"Delayed"}, res.Filter.Statuses)
	assert.Less(t, elapsed, 3*time.Second, "fallback must not wait out the slow server")
}

func TestInterpreter_ErrorsNeverEscape(t *testing.T) {
	client := &mockClient{err: errors.New("kaboom")}
	interp := NewInterpreter(client)

	res := interp.Interpret(context.Background(), "", testVocab())
	assert.Equal(t, SourceRules, res.Source)
	assert.True(t, res.Filter.IsEmpty())
}
