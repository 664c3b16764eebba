package core

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/Mangesh2904/EdunovaBackend/internal/llm"
	"github.com/Mangesh2904/EdunovaBackend/internal/pipeline"
	"github.com/Mangesh2904/EdunovaBackend/internal/prompt"
	"github.com/Mangesh2904/EdunovaBackend/internal/store"
)

const (
	quizMaxTokens      = 4096
	conceptsMaxTokens  = 4096
	companiesMaxTokens = 1024
	resourcesMaxTokens = 2048
)

type PlacementService struct {
	dbStore    *store.SQLiteStore
	generator  llm.TextGenerator
	perplexity *llm.Perplexity // optional; nil or unconfigured degrades to the generator
}

func NewPlacementService(db *store.SQLiteStore, generator llm.TextGenerator, perplexity *llm.Perplexity) *PlacementService {
	return &PlacementService{dbStore: db, generator: generator, perplexity: perplexity}
}

// PlacementContent is the response body of a placement generation.
type PlacementContent struct {
	Questions   []pipeline.QuizQuestion `json:"questions"`
	Concepts    string                  `json:"concepts"`
	CompanyName string                  `json:"companyName"`
	Role        string                  `json:"role"`
}

// Generate produces interview questions and a study guide for a company and
// role. The two generations run concurrently and each recovers
// independently: the quiz side runs the extract/decode/normalize pipeline
// with a question fallback, the guide side passes markdown through with a
// templated fallback. The result is always schema-valid; persistence, when
// an identity is present, is best-effort.
func (s *PlacementService) Generate(ctx context.Context, userID *string, companyName, role string) *PlacementContent {
	var (
		wg            sync.WaitGroup
		questionsText string
		conceptsText  string
		questionsErr  error
		conceptsErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		questionsText, questionsErr = s.generator.Generate(ctx, prompt.Quiz(companyName, role), quizMaxTokens)
	}()
	go func() {
		defer wg.Done()
		conceptsText, conceptsErr = s.generator.Generate(ctx, prompt.StudyGuide(companyName, role), conceptsMaxTokens)
	}()
	wg.Wait()

	questions := s.recoverQuestions(questionsText, questionsErr, companyName, role)

	concepts := conceptsText
	if conceptsErr != nil {
		log.Printf("Study guide generation failed for %s %s: %v. Using fallback guide.", companyName, role, conceptsErr)
		concepts = fallbackConcepts(companyName, role)
	}

	if userID != nil {
		record := store.PlacementRecord{
			UserID:      *userID,
			CompanyName: companyName,
			Role:        role,
			Questions:   questions,
			Concepts:    concepts,
		}
		if err := s.dbStore.SavePlacement(&record); err != nil {
			log.Printf("Failed to save placement for user %s: %v", *userID, err)
		}
	}

	return &PlacementContent{
		Questions:   questions,
		Concepts:    concepts,
		CompanyName: companyName,
		Role:        role,
	}
}

func (s *PlacementService) recoverQuestions(text string, upstreamErr error, companyName, role string) []pipeline.QuizQuestion {
	if upstreamErr != nil {
		log.Printf("Question generation failed for %s %s: %v. Using fallback questions.", companyName, role, upstreamErr)
		return pipeline.FallbackQuestions(companyName, role)
	}

	v, err := pipeline.Decode(pipeline.Extract(text, pipeline.KindArray))
	if err != nil {
		log.Printf("Failed to parse questions for %s %s: %v. Using fallback questions.", companyName, role, err)
		return pipeline.FallbackQuestions(companyName, role)
	}
	questions, err := pipeline.NormalizeQuestions(v, companyName, role)
	if err != nil {
		log.Printf("Question response had invalid shape for %s %s: %v. Using fallback questions.", companyName, role, err)
		return pipeline.FallbackQuestions(companyName, role)
	}
	return questions
}

// SearchCompanies suggests up to ten company names matching the query. Any
// failure along the live path falls back to the static list, so the result
// is never empty.
func (s *PlacementService) SearchCompanies(ctx context.Context, query string) []string {
	text, err := s.generator.Generate(ctx, prompt.CompanySearch(query), companiesMaxTokens)
	if err != nil {
		log.Printf("Company search generation failed for %q: %v. Using fallback list.", query, err)
		return pipeline.FallbackCompanies(query)
	}

	v, err := pipeline.Decode(pipeline.Extract(text, pipeline.KindArray))
	if err != nil {
		log.Printf("Failed to parse company search response for %q: %v. Using fallback list.", query, err)
		return pipeline.FallbackCompanies(query)
	}
	companies, err := pipeline.NormalizeCompanies(v)
	if err != nil {
		log.Printf("Company search response had invalid shape for %q: %v. Using fallback list.", query, err)
		return pipeline.FallbackCompanies(query)
	}
	return companies
}

// VideoResources recommends interview-prep videos for a company and role.
// Perplexity (with live web search) is preferred when configured, then
// Gemini; the recovery pipeline enforces the direct-link invariant on both.
// When neither produces a usable list, templated stubs are returned.
func (s *PlacementService) VideoResources(ctx context.Context, companyName, role string) []pipeline.VideoResource {
	if s.perplexity != nil && s.perplexity.Available() {
		text, err := s.perplexity.Generate(ctx, prompt.PerplexityResources(companyName, role), resourcesMaxTokens)
		if err != nil {
			log.Printf("Perplexity resources failed for %s %s: %v. Trying Gemini.", companyName, role, err)
		} else if videos := recoverVideos(text); videos != nil {
			return videos
		}
	}

	text, err := s.generator.Generate(ctx, prompt.VideoResources(companyName, role), resourcesMaxTokens)
	if err != nil {
		log.Printf("Video resources generation failed for %s %s: %v. Using fallback stubs.", companyName, role, err)
		return pipeline.FallbackVideos(fmt.Sprintf("%s %s interview preparation", companyName, role), 3)
	}
	if videos := recoverVideos(text); videos != nil {
		return videos
	}
	log.Printf("Video resources response unusable for %s %s. Using fallback stubs.", companyName, role)
	return pipeline.FallbackVideos(fmt.Sprintf("%s %s interview preparation", companyName, role), 3)
}

func recoverVideos(text string) []pipeline.VideoResource {
	v, err := pipeline.Decode(pipeline.Extract(text, pipeline.KindObject))
	if err != nil {
		return nil
	}
	videos, err := pipeline.NormalizeVideos(v)
	if err != nil {
		return nil
	}
	return videos
}

// History returns the user's placement records, most recent first.
func (s *PlacementService) History(userID string) ([]store.PlacementRecord, error) {
	return s.dbStore.PlacementHistoryByUser(userID)
}

func fallbackConcepts(companyName, role string) string {
	return fmt.Sprintf(`## %[1]s %[2]s Preparation

### Technical Skills
- Review the core data structures and algorithms commonly asked for %[2]s roles
- Practice system design fundamentals: scalability, databases, APIs
- Study the languages and frameworks %[1]s is known to use

### Company Research
- Read about %[1]s's products, engineering blog, and interview process
- Prepare questions to ask your interviewers

### Practice
- Solve timed coding problems daily
- Do at least two mock interviews before the real one`, companyName, role)
}
