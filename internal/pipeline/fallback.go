package pipeline

import (
	"fmt"
	"strings"
)

// fallbackCompanies is the static substitute list for company search. Order
// matters: the tiered matcher slices from the front.
var fallbackCompanies = []string{
	"Google", "Microsoft", "Amazon", "Apple", "Meta",
	"Netflix", "Tesla", "Uber", "Airbnb", "Adobe",
	"Oracle", "IBM", "Salesforce", "Intel", "Nvidia",
	"Twitter", "LinkedIn", "Spotify", "Slack", "Zoom",
	"PayPal", "Stripe", "Square", "Shopify", "Atlassian",
}

// fallbackChannels rotate through templated video stubs.
var fallbackChannels = []string{
	"freeCodeCamp",
	"Traversy Media",
	"The Net Ninja",
	"Programming with Mosh",
	"Web Dev Simplified",
	"Fireship",
	"Tech With Tim",
	"Corey Schafer",
}

// FallbackQuestions returns two schema-valid questions referencing the
// requested company and role. Used when live generation cannot be recovered
// into a usable question list. Deterministic: identical inputs yield
// identical output.
func FallbackQuestions(companyName, role string) []QuizQuestion {
	return []QuizQuestion{
		{
			Question:      fmt.Sprintf("What are the key responsibilities of a %s at %s?", role, companyName),
			Options:       []string{"Data Analysis", "Stakeholder Management", "Strategic Planning", "All of the above"},
			CorrectAnswer: 3,
			Explanation:   fmt.Sprintf("As a %s, you'll typically handle multiple responsibilities including analysis, communication, and planning.", role),
			Difficulty:    "Easy",
			Category:      "Role Understanding",
		},
		{
			Question:      fmt.Sprintf("Which skill is most important for %s position?", role),
			Options:       []string{"Technical Knowledge", "Communication", "Problem Solving", "All are equally important"},
			CorrectAnswer: 3,
			Explanation:   "A balanced skill set is crucial for success in this role.",
			Difficulty:    "Medium",
			Category:      "Skills Assessment",
		},
	}
}

// FallbackCompanies matches the query against the static list in tiers:
// case-insensitive substring match, then first-letter match, then the top
// ten entries. It never returns an empty list.
func FallbackCompanies(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))

	var companies []string
	for _, name := range fallbackCompanies {
		if strings.Contains(strings.ToLower(name), q) {
			companies = append(companies, name)
		}
	}
	if len(companies) == 0 && q != "" {
		for _, name := range fallbackCompanies {
			if strings.HasPrefix(strings.ToLower(name), q[:1]) {
				companies = append(companies, name)
			}
		}
	}
	if len(companies) == 0 {
		companies = append(companies, fallbackCompanies[:maxCompanies]...)
	}
	if len(companies) > maxCompanies {
		companies = companies[:maxCompanies]
	}
	return companies
}

// FallbackVideos returns up to three templated tutorial stubs for the query,
// rotating through well-known educational channels. Stubs carry a search
// query only, never a direct link.
func FallbackVideos(query string, count int) []VideoResource {
	if count > 3 {
		count = 3
	}
	videos := make([]VideoResource, 0, count)
	for i := 0; i < count; i++ {
		channel := fallbackChannels[i%len(fallbackChannels)]
		videos = append(videos, VideoResource{
			Title:       fmt.Sprintf("%s Tutorial", query),
			Channel:     channel,
			SearchQuery: fmt.Sprintf("%s %s 2024", channel, query),
			Type:        "Tutorial",
		})
	}
	return videos
}
