package advisor

import (
	"errors"
	"regexp"
	"strings"
)

// minSQLLength is the cheap plausibility floor for model output: it
// catches empty or truncated queries, not semantic errors.
const minSQLLength = 10

var fenceRe = regexp.MustCompile("(?i)```(?:sql)?")

var (
	errQueryTooShort = errors.New("the model returned an empty or truncated query")
	errNotSelect     = errors.New("only SELECT queries are allowed")
)

// SanitizeSQL strips Markdown code fences (language-tagged or bare,
// case-insensitively), trims surrounding whitespace, and removes a
// single trailing semicolon. Idempotent on already-clean input.
func SanitizeSQL(raw string) string {
	sql := fenceRe.ReplaceAllString(raw, "")
	sql = strings.TrimSpace(sql)
	sql = strings.TrimSuffix(sql, ";")
	return strings.TrimSpace(sql)
}

// validateSQL checks a sanitized query for plausibility: a minimal
// length and the SELECT/WITH statement allowlist.
func validateSQL(sql string) error {
	if len(sql) <= minSQLLength {
		return errQueryTooShort
	}
	lower := strings.ToLower(sql)
	if !strings.HasPrefix(lower, "select") && !strings.HasPrefix(lower, "with") {
		return errNotSelect
	}
	return nil
}
