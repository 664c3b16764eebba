package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	maxCompanies = 10

	defaultDifficulty  = "Medium"
	defaultCategory    = "Technical"
	defaultExplanation = "Review this concept for interviews."
)

// watchURLRe is the direct-link pattern: a watch URL with an 11-character
// video ID. IDs are not verified against the provider.
var watchURLRe = regexp.MustCompile(`youtube\.com/watch\?v=[a-zA-Z0-9_-]{11}`)

// NormalizeQuestions coerces a decoded value into a schema-valid question
// list. The top-level value must be a non-empty sequence; anything else is a
// collection-level failure. Individual malformed elements are replaced with
// an index-numbered placeholder carrying the company/role context, so the
// output always has the same length as the input.
func NormalizeQuestions(v any, companyName, role string) ([]QuizQuestion, error) {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return nil, fmt.Errorf("questions: expected a non-empty array, got %T", v)
	}

	questions := make([]QuizQuestion, 0, len(items))
	for i, item := range items {
		questions = append(questions, normalizeQuestion(item, i, companyName, role))
	}
	return questions, nil
}

func normalizeQuestion(item any, index int, companyName, role string) QuizQuestion {
	obj, ok := item.(map[string]any)
	if !ok {
		return placeholderQuestion(index, companyName, role)
	}

	question := stringField(obj, "question")
	options := stringSlice(obj["options"])
	if question == "" || len(options) != 4 {
		return placeholderQuestion(index, companyName, role)
	}

	q := QuizQuestion{
		Question:    question,
		Options:     options,
		Explanation: stringField(obj, "explanation"),
		Difficulty:  stringField(obj, "difficulty"),
		Category:    stringField(obj, "category"),
	}
	if n, ok := obj["correctAnswer"].(float64); ok && n == float64(int(n)) && n >= 0 && n <= 3 {
		q.CorrectAnswer = int(n)
	}
	if q.Difficulty == "" {
		q.Difficulty = defaultDifficulty
	}
	if q.Category == "" {
		q.Category = defaultCategory
	}
	if q.Explanation == "" {
		q.Explanation = defaultExplanation
	}
	return q
}

func placeholderQuestion(index int, companyName, role string) QuizQuestion {
	return QuizQuestion{
		Question:      fmt.Sprintf("Technical question %d for %s at %s", index+1, role, companyName),
		Options:       []string{"Option A", "Option B", "Option C", "Option D"},
		CorrectAnswer: 0,
		Explanation:   "Detailed explanation needed.",
		Difficulty:    defaultDifficulty,
		Category:      defaultCategory,
	}
}

// NormalizeCompanies coerces a decoded value into a list of at most ten
// distinct, non-empty company names. Zero surviving entries is a
// collection-level failure.
func NormalizeCompanies(v any) ([]string, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("companies: expected an array, got %T", v)
	}

	seen := make(map[string]bool, len(items))
	var companies []string
	for _, item := range items {
		name, ok := item.(string)
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		companies = append(companies, name)
		if len(companies) == maxCompanies {
			break
		}
	}

	if len(companies) == 0 {
		return nil, fmt.Errorf("companies: no valid names in response")
	}
	return companies, nil
}

// NormalizeVideos coerces a decoded value into a video resource list. The
// top-level value must be an object with a non-empty "youtube" array; each
// element either keeps a URL matching the direct-link pattern or has it
// cleared in favor of a search query built from channel and title.
func NormalizeVideos(v any) ([]VideoResource, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("videos: expected an object, got %T", v)
	}
	items, ok := obj["youtube"].([]any)
	if !ok {
		return nil, fmt.Errorf("videos: missing youtube array")
	}

	videos := NormalizeVideoList(items)
	if len(videos) == 0 {
		return nil, fmt.Errorf("videos: no usable entries in response")
	}
	return videos, nil
}

// NormalizeVideoList applies per-element video repair to a bare sequence.
// Unlike NormalizeVideos, an empty result is acceptable here: the roadmap
// enrichment helper treats it as "no suggestions for this milestone".
func NormalizeVideoList(items []any) []VideoResource {
	var videos []VideoResource
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		video := VideoResource{
			Title:       stringField(obj, "title"),
			Channel:     stringField(obj, "channel"),
			URL:         stringField(obj, "url"),
			SearchQuery: stringField(obj, "search_query"),
			Type:        stringField(obj, "type"),
			Description: stringField(obj, "description"),
		}
		if video.Title == "" && video.Channel == "" {
			continue
		}
		if watchURLRe.MatchString(video.URL) {
			video.SearchQuery = ""
		} else {
			video.URL = ""
			video.SearchQuery = strings.TrimSpace(video.Channel + " " + video.Title)
		}
		videos = append(videos, video)
	}
	return videos
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil
		}
		out = append(out, s)
	}
	return out
}
