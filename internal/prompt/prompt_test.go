package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuiz(t *testing.T) {
	t.Parallel()

	p := Quiz("Google", "SDE")
	assert.Contains(t, p, "Google")
	assert.Contains(t, p, "SDE")
	assert.Contains(t, p, "10 TECHNICAL interview questions")
	// Format contract: the JSON skeleton names every required field.
	for _, field := range []string{`"question"`, `"options"`, `"correctAnswer"`, `"explanation"`, `"difficulty"`, `"category"`} {
		assert.Contains(t, p, field)
	}
	assert.Contains(t, p, "Return ONLY the JSON array")
}

func TestStudyGuide(t *testing.T) {
	t.Parallel()

	p := StudyGuide("Netflix", "Backend Engineer")
	assert.Contains(t, p, "Netflix")
	assert.Contains(t, p, "Backend Engineer")
	assert.Contains(t, p, "## Technical Skills Required for Backend Engineer")
	assert.Contains(t, p, "## Preparation Strategy")
}

func TestCompanySearch(t *testing.T) {
	t.Parallel()

	p := CompanySearch("str")
	assert.Contains(t, p, `"str"`)
	assert.Contains(t, p, "JSON array of company names")
	assert.Contains(t, p, "Return exactly 10 suggestions")
}

func TestVideoResources(t *testing.T) {
	t.Parallel()

	p := VideoResources("Meta", "SRE")
	assert.Contains(t, p, "Meta")
	assert.Contains(t, p, "SRE")
	assert.Contains(t, p, `"youtube"`)
	assert.Contains(t, p, "youtube.com/watch?v=")
	assert.Contains(t, p, "11 characters")
}

func TestRoadmap(t *testing.T) {
	t.Parallel()

	p := Roadmap("Rust", 6)
	assert.Contains(t, p, `"Rust"`)
	assert.Contains(t, p, "6-week learning roadmap")
	for _, field := range []string{`"milestones"`, `"projects"`, `"prerequisites"`, `"duration_weeks"`} {
		assert.Contains(t, p, field)
	}
}

func TestSimpleVideos(t *testing.T) {
	t.Parallel()

	p := SimpleVideos("go generics", 3)
	assert.Contains(t, p, "Find 3 YouTube tutorial videos")
	assert.Contains(t, p, `"go generics"`)
	assert.Contains(t, p, `"search_query"`)
}

func TestPerplexityPrompts(t *testing.T) {
	t.Parallel()

	search := PerplexityVideoSearch("kubernetes", 3)
	assert.Contains(t, search, "Find 3 high-quality")
	assert.Contains(t, search, `"kubernetes"`)
	assert.Contains(t, search, "youtube.com/watch?v=")

	resources := PerplexityResources("Amazon", "Data Engineer")
	assert.Contains(t, resources, "Amazon")
	assert.Contains(t, resources, "Data Engineer")
	assert.Contains(t, resources, `"youtube"`)
}

func TestMilestoneQuery(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Go week 1: basics", MilestoneQuery("Go", "week 1: basics", nil))
	assert.Equal(t, "Go syntax, tooling", MilestoneQuery("Go", "week 1", []string{"syntax", "tooling"}))
}
