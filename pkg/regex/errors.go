package regex

import "fmt"

// SyntaxError reports a malformed pattern. Pos is the rune offset of the offending token.
type SyntaxError struct {
	Pattern string
	Pos     int
	Reason  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regex %q: %s at position %d", e.Pattern, e.Reason, e.Pos)
}
