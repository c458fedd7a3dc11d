// Package match evaluates regular expressions against optional card text fields.
//
// Patterns are matched case-insensitively against the whole field value, with . also matching
// line breaks: ".*" matches every present field, multi-line card text included. A nil field never
// matches. Group patterns are only evaluated on fields that already matched, and every capturing
// group of every occurrence is collected in order.
//
// The package holds no state: every function compiles its patterns on each call and is safe for
// concurrent use.
package match

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidPattern is returned when a match or group pattern cannot be used.
var ErrInvalidPattern = errors.New("invalid pattern")

// Result is the outcome of matching with group capture.
type Result struct {
	Matched bool
	// Groups holds the captured texts in occurrence-then-group order; nil when nothing was captured.
	Groups []string
}

// compileMatch compiles pattern so that it must match a whole value, ignoring case and letting . match \n.
// The raw pattern is validated on its own first: ")(" is invalid but "^(?:)()$" is not.
func compileMatch(pattern string) (*regexp.Regexp, error) {
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, invalidPattern(pattern, err)
	}

	re, err := regexp.Compile(`(?is)^(?:` + pattern + `)$`)
	if err != nil {
		return nil, invalidPattern(pattern, err)
	}
	return re, nil
}

func compileGroup(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`(?is)` + pattern)
	if err != nil {
		return nil, invalidPattern(pattern, err)
	}
	return re, nil
}

func invalidPattern(pattern string, cause error) error {
	return fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, cause)
}

func captureAll(re *regexp.Regexp, value string) []string {
	var groups []string
	for _, occurrence := range re.FindAllStringSubmatch(value, -1) {
		groups = append(groups, occurrence[1:]...)
	}
	return groups
}
