package core

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/Mangesh2904/EdunovaBackend/internal/llm"
	"github.com/Mangesh2904/EdunovaBackend/internal/pipeline"
	"github.com/Mangesh2904/EdunovaBackend/internal/prompt"
)

const (
	roadmapMaxTokens      = 4096
	simpleVideosMaxTokens = 512
	videosPerMilestone    = 3
)

// Roadmap is a generated week-by-week learning plan with per-milestone video
// suggestions.
type Roadmap struct {
	Topic               string      `json:"topic"`
	DurationWeeks       int         `json:"duration_weeks"`
	TotalEstimatedHours float64     `json:"total_estimated_hours"`
	Description         string      `json:"description"`
	Prerequisites       []string    `json:"prerequisites"`
	Milestones          []Milestone `json:"milestones"`
	Projects            []Project   `json:"projects"`
}

type Milestone struct {
	Week           int                      `json:"week"`
	Title          string                   `json:"title"`
	Topics         []string                 `json:"topics"`
	Difficulty     string                   `json:"difficulty"`
	EstimatedHours float64                  `json:"estimated_hours"`
	YouTubeVideos  []pipeline.VideoResource `json:"youtube_videos"`
}

type Project struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	WeekAssignment int     `json:"week_assignment"`
	Difficulty     string  `json:"difficulty"`
	EstimatedHours float64 `json:"estimated_hours"`
}

type RoadmapService struct {
	generator  llm.TextGenerator
	perplexity *llm.Perplexity
}

func NewRoadmapService(generator llm.TextGenerator, perplexity *llm.Perplexity) *RoadmapService {
	return &RoadmapService{generator: generator, perplexity: perplexity}
}

// Generate builds the roadmap outline, then enriches each milestone with
// video suggestions. Outline failure fails the request; a failed video fetch
// is isolated to its milestone, which keeps an empty list.
func (s *RoadmapService) Generate(ctx context.Context, topic string, weeks int) (*Roadmap, error) {
	text, err := s.generator.Generate(ctx, prompt.Roadmap(topic, weeks), roadmapMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("roadmap generation failed: %w", err)
	}

	v, err := pipeline.Decode(pipeline.Extract(text, pipeline.KindObject))
	if err != nil {
		return nil, fmt.Errorf("roadmap response was not valid JSON: %w", err)
	}
	// Round-trip through JSON to land the generic value in the typed shape.
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode roadmap: %w", err)
	}
	var roadmap Roadmap
	if err := json.Unmarshal(raw, &roadmap); err != nil {
		return nil, fmt.Errorf("roadmap response did not match the expected shape: %w", err)
	}
	if len(roadmap.Milestones) == 0 {
		return nil, fmt.Errorf("invalid roadmap structure: missing milestones")
	}

	for i := range roadmap.Milestones {
		milestone := &roadmap.Milestones[i]
		query := prompt.MilestoneQuery(topic, milestone.Title, milestone.Topics)
		milestone.YouTubeVideos = s.milestoneVideos(ctx, query)
		if milestone.YouTubeVideos == nil {
			milestone.YouTubeVideos = []pipeline.VideoResource{}
		}
	}

	return &roadmap, nil
}

// milestoneVideos fetches suggestions for one milestone. Perplexity is
// preferred when configured; either provider's failure degrades to a single
// templated stub, and an unusable-but-successful response yields an empty
// list.
func (s *RoadmapService) milestoneVideos(ctx context.Context, query string) []pipeline.VideoResource {
	var (
		text string
		err  error
	)
	if s.perplexity != nil && s.perplexity.Available() {
		text, err = s.perplexity.Generate(ctx, prompt.PerplexityVideoSearch(query, videosPerMilestone), 1000)
	} else {
		text, err = s.generator.Generate(ctx, prompt.SimpleVideos(query, videosPerMilestone), simpleVideosMaxTokens)
	}
	if err != nil {
		log.Printf("Video suggestions failed for %q: %v. Using fallback stub.", query, err)
		return pipeline.FallbackVideos(query, 1)
	}

	v, err := pipeline.Decode(pipeline.Extract(text, pipeline.KindArray))
	if err != nil {
		log.Printf("Failed to parse video suggestions for %q: %v. Using fallback stub.", query, err)
		return pipeline.FallbackVideos(query, 1)
	}
	items, ok := v.([]any)
	if !ok {
		return pipeline.FallbackVideos(query, 1)
	}
	videos := pipeline.NormalizeVideoList(items)
	if len(videos) > videosPerMilestone {
		videos = videos[:videosPerMilestone]
	}
	return videos
}
