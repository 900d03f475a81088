package advisor

import "fmt"

const sqlSystemPrompt = "You are a SQL expert. Generate valid PostgreSQL queries."

const answerSystemPrompt = "You are a knowledgeable phone advisor who explains specifications clearly."

// noResultsMessage is returned verbatim when a query executes to zero
// rows; no model call is made in that case.
const noResultsMessage = "I couldn't find any phones matching your criteria. Try rephrasing your question or asking about different specifications."

// errorAnswerTemplate wraps an internal error into the assistant-facing
// message produced by the error terminal.
const errorAnswerTemplate = "I encountered an issue processing your question: %s\n\nPlease try rephrasing your question or ask something else about Samsung phones."

func buildSQLPrompt(schema, examples, question string) string {
	return fmt.Sprintf(`You are an expert at converting natural language questions into PostgreSQL queries.

DATABASE SCHEMA:
%s

EXAMPLE QUERIES:
%s

RULES:
1. Generate syntactically correct PostgreSQL only
2. Use ILIKE for case-insensitive string matching
3. Include LIMIT 5 unless specified otherwise
4. Return ONLY the SQL query, no explanations or markdown
5. Handle NULL values appropriately
6. Use proper WHERE clauses for filtering

USER QUESTION:
%s

SQL QUERY:`, schema, examples, question)
}

func buildAnswerPrompt(question, rowsJSON string) string {
	return fmt.Sprintf(`You are a helpful Samsung smartphone expert assistant.

USER QUESTION:
%s

DATABASE RESULTS:
%s

TASK:
- Explain the results in clear, conversational English
- Highlight key specifications and differences
- Be specific with numbers and details
- If comparing phones, present side-by-side comparisons
- Keep response concise but informative (100-200 words)
- Don't mention SQL or databases

ANSWER:`, question, rowsJSON)
}
