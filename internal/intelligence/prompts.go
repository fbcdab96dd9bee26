package intelligence

import (
	"fmt"
	"strings"
)

// buildFilterSystemPrompt instructs the model to emit a structured query
// filter.
// The dataset vocabulary is interpolated so the model cannot invent statuses
// or project names that do not exist in the snapshot.
func buildFilterSystemPrompt(statuses, projectNames []string) string {
	return fmt.Sprintf(`You are a query parser for a project tracking dashboard.
Convert the user's question into a JSON filter over the loaded project records.

You must output ONLY a JSON object with these exact fields:
- name_contains: substring of a project name, or "" if the question names no project
- statuses: array of status values, restricted to: [%s]
- from: start of a date range as "YYYY-MM-DD", or "" if the question has no date constraint
- to: end of a date range as "YYYY-MM-DD", or "" if the question has no date constraint
- keywords: array of other meaningful terms from the question, [] if none

Known project names: [%s]

CRITICAL RULES:
1. Use only statuses from the list above; leave the array empty rather than guessing
2. An unconstrained question yields {"name_contains":"","statuses":[],"from":"","to":"","keywords":[]}
3. Output ONLY the JSON object, no markdown, no explanation`,
		strings.Join(statuses, ", "), strings.Join(projectNames, ", "))
}

// answerSystemPrompt frames the final Q&A call over the serialized context.
const answerSystemPrompt = `You are a data analytics assistant for a project tracking dashboard.
Answer the user's question based only on the project data provided in the prompt.
Be concise and accurate. If the data does not contain the answer, say so plainly.
If the data block states that it was truncated, mention that the answer covers a subset of matching projects.`

// buildAnswerUserPrompt assembles the final prompt sent for TaskAnswer.
func buildAnswerUserPrompt(question string, projectContext Context) string {
	var b strings.Builder
	b.WriteString("Question: ")
	b.WriteString(question)
	b.WriteString("\n\nProject data (")
	fmt.Fprintf(&b, "%d matching record(s)", projectContext.MatchCount)
	if projectContext.Truncated {
		b.WriteString(", truncated to fit the context budget")
	}
	b.WriteString("):\n")
	b.WriteString(projectContext.Text)
	return b.String()
}
