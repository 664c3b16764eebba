package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
)

// previewLen bounds how much of the offending text a ParseError carries.
const previewLen = 200

// ParseError reports text that could not be decoded even after repair. It is
// always recoverable: callers route it to a fallback generator, never to the
// user.
type ParseError struct {
	Preview string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decode llm output: %v (text: %q)", e.Err, e.Preview)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Decode parses extracted text into a generic JSON value (maps, slices,
// scalars). A strict parse is attempted first; if it fails, the text is run
// through jsonrepair and parsed again, which recovers common model output
// defects such as single quotes, trailing commas, and unquoted keys.
func Decode(text string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err == nil {
		return v, nil
	}

	repaired, err := jsonrepair.JSONRepair(text)
	if err != nil {
		return nil, &ParseError{Preview: truncate(text, previewLen), Err: err}
	}
	if err := json.Unmarshal([]byte(repaired), &v); err != nil {
		return nil, &ParseError{Preview: truncate(text, previewLen), Err: err}
	}
	// Repair can quote arbitrary prose into a bare JSON string. A repaired
	// result only counts as recovered when it is an actual collection.
	switch v.(type) {
	case map[string]any, []any:
		return v, nil
	}
	return nil, &ParseError{Preview: truncate(text, previewLen), Err: errNotCollection}
}

var errNotCollection = errors.New("repaired text is not a JSON collection")

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
