package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/JonMunkholm/PhoneAdvisor/internal/llm"
	"github.com/JonMunkholm/PhoneAdvisor/internal/registry"
)

// stepOutcome is the two-case result driving the workflow's conditional
// edges. Failed steps record their cause in State.Err before returning.
type stepOutcome int

const (
	stepOK stepOutcome = iota
	stepFailed
)

const (
	sqlMaxTokens    = 512
	answerMaxTokens = 1024
)

// runTurn traverses the workflow exactly once:
//
//	ExtractQuestion -> GenerateSQL -> {ExecuteQuery | HandleError}
//	                -> {GenerateAnswer | HandleError} -> End
//
// Every path ends with a non-empty FinalAnswer; failures of any step
// converge on the single error terminal and are never retried within
// the turn.
func (a *Advisor) runTurn(ctx context.Context, st *State) {
	a.extractQuestion(st)

	if a.generateSQL(ctx, st) == stepFailed {
		a.handleError(st)
		return
	}
	if a.executeQuery(ctx, st) == stepFailed {
		a.handleError(st)
		return
	}
	if a.generateAnswer(ctx, st) == stepFailed {
		a.handleError(st)
	}
}

// extractQuestion reads the most recent user utterance into Question.
// A non-user latest message is used verbatim.
func (a *Advisor) extractQuestion(st *State) {
	if len(st.Messages) == 0 {
		return
	}
	st.Question = st.Messages[len(st.Messages)-1].Content
}

func (a *Advisor) generateSQL(ctx context.Context, st *State) stepOutcome {
	prompt := buildSQLPrompt(registry.SchemaText, registry.RenderExamples(a.examples), st.Question)

	raw, err := a.provider.Generate(ctx, llm.Request{
		System:      sqlSystemPrompt,
		Prompt:      prompt,
		Temperature: 0,
		MaxTokens:   sqlMaxTokens,
	})
	if err != nil {
		st.Err = fmt.Errorf("SQL generation failed: %w", err)
		return stepFailed
	}

	sql := SanitizeSQL(raw)
	if err := validateSQL(sql); err != nil {
		a.log.Warn("generated query rejected",
			zap.String("query", sql), zap.Error(err))
		st.Err = err
		return stepFailed
	}

	st.SQLQuery = sql
	a.log.Debug("generated query", zap.String("query", sql))
	return stepOK
}

func (a *Advisor) executeQuery(ctx context.Context, st *State) stepOutcome {
	rows, err := a.db.Query(ctx, st.SQLQuery)
	if err != nil {
		st.Err = fmt.Errorf("database error: %v", err)
		return stepFailed
	}
	st.Rows = rows
	return stepOK
}

func (a *Advisor) generateAnswer(ctx context.Context, st *State) stepOutcome {
	// Zero rows is a valid outcome, answered with a canned message and
	// no model call.
	if len(st.Rows) == 0 {
		st.FinalAnswer = noResultsMessage
		st.appendAssistant(noResultsMessage)
		return stepOK
	}

	rowsJSON, err := json.MarshalIndent(st.Rows, "", "  ")
	if err != nil {
		st.Err = fmt.Errorf("serialize results: %w", err)
		return stepFailed
	}

	raw, err := a.provider.Generate(ctx, llm.Request{
		System:      answerSystemPrompt,
		Prompt:      buildAnswerPrompt(st.Question, string(rowsJSON)),
		Temperature: 0,
		MaxTokens:   answerMaxTokens,
	})
	if err != nil {
		st.Err = fmt.Errorf("answer generation failed: %w", err)
		return stepFailed
	}

	answer := strings.TrimSpace(raw)
	st.FinalAnswer = answer
	st.appendAssistant(answer)
	return stepOK
}

// handleError is the single terminal for invalid SQL, execution
// failures, and answer-synthesis failures. The caller always receives
// an assistant-facing explanation, never a raw error.
func (a *Advisor) handleError(st *State) {
	errText := "Unknown error occurred"
	if st.Err != nil {
		errText = st.Err.Error()
	}
	answer := fmt.Sprintf(errorAnswerTemplate, errText)
	st.FinalAnswer = answer
	st.appendAssistant(answer)
}
