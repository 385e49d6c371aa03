package jaunt

import "fmt"

// SyntaxError reports an invalid variable name or a malformed path
// expression. It is the only error kind this package returns to callers;
// everything else that can "fail" during traversal is absence, not an error.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Msg
}

// syntaxErrorf builds a SyntaxError from a format string.
func syntaxErrorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}
