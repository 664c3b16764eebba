// Package pipeline recovers structured data from free-form LLM output.
//
// Model responses arrive as prose that usually, but not always, contains the
// JSON we asked for. The pipeline runs in stages: Extract locates the JSON
// substring, Decode parses it (repairing near-JSON when the strict parse
// fails), and the Normalize functions coerce the decoded value into one of
// the schema-valid shapes the API promises. When no stage can produce a
// usable collection, the Fallback generators supply a deterministic,
// context-aware substitute, so callers always receive a valid body.
package pipeline

// QuizQuestion is a single multiple-choice interview question. After
// normalization, Options always has exactly four entries and CorrectAnswer
// indexes into it.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty"`
	Category      string   `json:"category"`
}

// VideoResource is a recommended video. Exactly one of URL and SearchQuery
// is populated: URL when it matches the direct-link pattern, SearchQuery
// otherwise.
type VideoResource struct {
	Title       string `json:"title"`
	Channel     string `json:"channel"`
	URL         string `json:"url,omitempty"`
	SearchQuery string `json:"search_query,omitempty"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}
