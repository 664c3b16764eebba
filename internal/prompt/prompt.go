// Package prompt builds the instruction text sent to the LLM providers.
//
// Each composer is a pure function embedding two contracts in the text: an
// output-format contract (an explicit example of the exact JSON or markdown
// expected back) and a content contract (question counts, option counts,
// name limits). The model's dialect cannot be constrained any other way, so
// the recovery pipeline downstream assumes neither contract was honored.
package prompt

import (
	"fmt"
	"strings"
)

// ChatContext wraps a chatbot message in the EduBot persona and guardrails.
func ChatContext(message string) string {
	return fmt.Sprintf(`You are EduBot, a friendly and knowledgeable educational assistant for Edunova - a learning platform. Your purpose is to help students with:

1. Academic subjects (Math, Science, Programming, etc.)
2. Study tips and learning strategies
3. Career guidance and skill development
4. Technology and coding questions
5. General educational advice

IMPORTANT RULES:
- Be warm, encouraging, and supportive
- Keep responses clear, concise, and easy to understand
- Use examples and analogies when explaining concepts
- If asked about non-educational topics (entertainment, politics, gossip, etc.), politely redirect: "I'm here to help with your studies and learning! How can I assist you with your education today?"
- Encourage curiosity and deeper learning
- Suggest resources when relevant (but don't make up URLs)

User's question: %s`, message)
}

// Quiz asks for ten technical multiple-choice questions for a role at a
// company, as a bare JSON array.
func Quiz(companyName, role string) string {
	return fmt.Sprintf(`You are a senior technical interviewer at %[1]s. Generate 10 TECHNICAL interview questions for the %[2]s position.

**CRITICAL: ALL QUESTIONS MUST BE TECHNICAL - NO BEHAVIORAL QUESTIONS**

**RESEARCH %[1]s:**
- Core products, services, and technologies
- Tech stack: programming languages, frameworks, databases, cloud services
- Scale and technical challenges
- Technologies %[2]s works with at %[1]s

**QUESTION BREAKDOWN:**
1. 4 questions: Data Structures & Algorithms (arrays, trees, graphs, sorting, searching)
2. 3 questions: System Design & Architecture (scalability, databases, APIs, microservices)
3. 2 questions: Technology-Specific (%[1]s's tech stack - Java, Python, React, AWS, etc.)
4. 1 question: Problem Solving & Optimization (time/space complexity, trade-offs)

**FORMAT - Return ONLY this JSON array:**
[
  {
    "question": "At %[1]s, you need to process %[1]s-scale data. Which data structure would you use for [specific technical scenario]?",
    "options": ["Array with O(n) lookup", "Hash Map with O(1) lookup", "Binary Search Tree with O(log n)", "Trie with O(k) complexity"],
    "correctAnswer": 1,
    "explanation": "Hash Map is optimal because [technical reasoning with Big-O analysis]. At %[1]s's scale of [mention scale], this provides best performance.",
    "difficulty": "Medium",
    "category": "Data Structures"
  }
]

**REQUIREMENTS:**
- ALL questions MUST be technical (coding, algorithms, system design, architecture)
- NO behavioral, cultural, or soft-skill questions
- Use %[1]s's actual technologies (AWS, GCP, Kubernetes, React, Node.js, etc.)
- Include Big-O notation and complexity analysis where relevant
- Reference %[1]s's scale (millions of users, petabytes of data, etc.)
- Mix difficulty: 3 Easy, 5 Medium, 2 Hard
- Categories: "Data Structures", "Algorithms", "System Design", "Coding", "Databases", "Architecture"
- Provide detailed technical explanations

Return ONLY the JSON array, no other text.`, companyName, role)
}

// StudyGuide asks for a markdown placement study guide for a role at a
// company. The response is free text and is passed through unmodified.
func StudyGuide(companyName, role string) string {
	return fmt.Sprintf(`Create a comprehensive study guide for %[1]s %[2]s position placement preparation. Include the most important concepts, topics, and areas to focus on specifically for the %[2]s role.

**FORMATTING REQUIREMENTS:**
- Use ## for main section headers
- Use ### for subsection headers
- Use bullet points (-) for lists
- Use **bold** for important terms
- Use *italics* for emphasis
- Include code examples in `+"`backticks`"+` when relevant
- Structure it like a professional study guide

**SECTIONS TO INCLUDE:**

## Technical Skills Required for %[2]s
### Programming Languages
- List the main programming languages %[1]s uses for %[2]s positions
- Mention proficiency levels expected for %[2]s

### Role-Specific Technical Skills
- Key technical skills specific to %[2]s
- Tools and technologies commonly used by %[2]s at %[1]s
- Industry standards and best practices for %[2]s

### Data Structures & Algorithms (if applicable to %[2]s)
- Key data structures to master for %[2]s
- Important algorithms and their applications in %[2]s
- Common problem patterns relevant to %[2]s

### System Design (if applicable to %[2]s)
- System design concepts relevant to %[2]s
- Scalability considerations for %[2]s
- Architecture patterns used in %[2]s

## Company-Specific Information
### About %[1]s
- Brief company overview
- Core products/services relevant to %[2]s
- Engineering/team culture and values
- How %[2]s fits into %[1]s's organization

### Interview Process for %[2]s
- Typical interview rounds for %[2]s position
- What to expect in each round for %[2]s
- Role-specific interview formats and assessments
- Tips for success in %[2]s interviews

## Key Topics to Study
### Core Computer Science
- Important CS fundamentals
- Operating systems concepts
- Database management
- Networking basics

### Advanced Topics
- Distributed systems
- Cloud computing (if relevant)
- Microservices architecture
- Security considerations

## Preparation Strategy
### Timeline
- Recommended preparation duration
- Week-by-week study plan
- Practice schedule

### Resources
- Recommended books and courses
- Online platforms for practice
- Mock interview resources

## Common Interview Questions Categories
### Technical Questions
- Most frequently asked topics
- Coding problem patterns
- System design scenarios

### Behavioral Questions
- Leadership and teamwork
- Problem-solving approach
- Company fit questions

## Tips for Success
### Technical Interview Tips
- Code optimization strategies
- Communication during coding
- Testing and debugging approach

### General Interview Tips
- How to research the company
- Questions to ask interviewers
- Follow-up best practices

Make it comprehensive, actionable, and specifically tailored to %[1]s's %[2]s interview process and requirements.`, companyName, role)
}

// CompanySearch asks for up to ten company names matching the query, as a
// bare JSON array of strings.
func CompanySearch(query string) string {
	return fmt.Sprintf(`List 10 well-known technology companies whose names start with or contain "%[1]s". Include both large corporations and notable startups.

Return ONLY a JSON array of company names, no additional text:
["Company Name 1", "Company Name 2", ...]

Examples format: ["Google", "Microsoft", "Amazon", "Meta", "Netflix", "Apple", "Tesla", "Uber", "Airbnb", "Stripe"]

Focus on:
- Tech companies (software, hardware, cloud, AI, etc.)
- Companies known for hiring software engineers
- Mix of FAANG, unicorns, and well-known startups
- Real company names only

Return exactly 10 suggestions that match "%[1]s".`, query)
}

// VideoResources asks for interview-prep video recommendations with direct
// links, as a JSON object with a "youtube" array.
func VideoResources(companyName, role string) string {
	return fmt.Sprintf(`You are helping someone prepare for a %[2]s interview at %[1]s.

Recommend 6-8 specific YouTube videos that would be helpful. For each video, you MUST provide:
1. A realistic video title
2. The channel name
3. A direct YouTube URL in format: https://www.youtube.com/watch?v=VIDEO_ID (use realistic video IDs)
4. Video type (Tutorial/Full Course/Interview Prep/etc.)
5. Brief description of relevance

IMPORTANT GUIDELINES:
- Use DIVERSE channels (freeCodeCamp, Traversy Media, Fireship, NeetCode, ByteByteGo, Tech With Tim, Web Dev Simplified, Hussein Nasser, etc.)
- Each URL must be a valid YouTube watch URL with a video ID
- DON'T repeat the same channel
- Focus on %[2]s skills and %[1]s interview prep
- Include recent, popular videos when possible

Return ONLY this exact JSON format (no markdown, no extra text):
{
  "youtube": [
    {
      "title": "Complete video title here",
      "channel": "Channel Name",
      "url": "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
      "type": "Tutorial",
      "description": "Brief explanation of how this helps"
    }
  ]
}

Make sure each URL follows the pattern: https://www.youtube.com/watch?v=XXXXXXXXXXX (11 characters for video ID)`, companyName, role)
}

// Roadmap asks for a week-by-week learning roadmap as a JSON object. Video
// suggestions are deliberately excluded; they are fetched per milestone
// afterwards.
func Roadmap(topic string, weeks int) string {
	return fmt.Sprintf(`Generate a comprehensive %[2]d-week learning roadmap for "%[1]s".

Return ONLY valid JSON in this exact format (YouTube videos will be added separately):
{
  "topic": "%[1]s",
  "duration_weeks": %[2]d,
  "total_estimated_hours": <number>,
  "description": "<brief overview>",
  "prerequisites": ["prereq1", "prereq2"],
  "milestones": [
    {
      "week": 1,
      "title": "Week 1: <Title>",
      "topics": ["topic1", "topic2", "topic3"],
      "difficulty": "Beginner|Intermediate|Advanced",
      "estimated_hours": <number>
    }
  ],
  "projects": [
    {
      "title": "<project name>",
      "description": "<what to build>",
      "week_assignment": <week_number>,
      "difficulty": "Beginner|Intermediate|Advanced",
      "estimated_hours": <number>
    }
  ]
}

Focus on creating a comprehensive learning path with clear topics for each week. YouTube resources will be added automatically using AI-powered search.`, topic, weeks)
}

// SimpleVideos asks for tutorial video suggestions without direct links, as
// a bare JSON array.
func SimpleVideos(query string, count int) string {
	return fmt.Sprintf(`Find %[2]d YouTube tutorial videos about "%[1]s".

Return ONLY a JSON array with video information:
[
  {
    "title": "Video title",
    "channel": "Channel name",
    "search_query": "%[1]s",
    "type": "Tutorial"
  }
]

Use diverse, well-known educational channels.`, query, count)
}

// PerplexityVideoSearch asks an online-search model for recent videos with
// working direct links, as a bare JSON array.
func PerplexityVideoSearch(query string, count int) string {
	return fmt.Sprintf(`Find %[2]d high-quality, recent YouTube videos or playlists about "%[1]s".

CRITICAL: You MUST provide actual, working YouTube video URLs in this format: https://www.youtube.com/watch?v=VIDEO_ID

Requirements:
1. Videos uploaded within the last 2 years
2. From well-known educational channels (freeCodeCamp, Traversy Media, Web Dev Simplified, etc.)
3. MUST include real YouTube video URLs with actual video IDs
4. Verify the videos exist and are available

Return ONLY a JSON array:
[
  {
    "title": "Specific topic the video covers",
    "channel": "Verified channel name",
    "url": "https://www.youtube.com/watch?v=REAL_VIDEO_ID",
    "type": "Full Course|Tutorial|Crash Course|Playlist"
  }
]

IMPORTANT:
- "url" field is REQUIRED and must be a real YouTube video URL
- Do NOT return search queries - only direct video links
- Each video must have a working URL that opens the video directly`, query, count)
}

// PerplexityResources asks an online-search model for verified interview-prep
// videos for a role at a company, as a JSON object with a "youtube" array.
func PerplexityResources(companyName, role string) string {
	return fmt.Sprintf(`Find genuine, recent YouTube videos for %[2]s interview preparation at %[1]s.

CRITICAL: You MUST provide actual, working YouTube video URLs with real video IDs.

Requirements:
1. Videos from the last 2 years
2. From reputable channels (freeCodeCamp, Traversy Media, etc.)
3. MUST include real YouTube URLs: https://www.youtube.com/watch?v=VIDEO_ID
4. 5-8 diverse resources covering interview prep, technical skills, company culture
5. Each video MUST have a working URL that opens directly

Return ONLY this JSON format:
{
  "youtube": [
    {
      "title": "What this video teaches",
      "channel": "Channel name",
      "url": "https://www.youtube.com/watch?v=REAL_VIDEO_ID",
      "type": "Full Course|Tutorial|Interview Prep|Crash Course",
      "description": "Why useful for %[2]s at %[1]s"
    }
  ]
}

IMPORTANT:
- "url" field is REQUIRED - must be a real YouTube video URL
- Do NOT provide search queries - only direct video links`, companyName, role)
}

// MilestoneQuery combines the roadmap topic with a milestone's topics into a
// single video search query. Falls back to the milestone title when the
// topic list is empty.
func MilestoneQuery(topic, title string, topics []string) string {
	if len(topics) == 0 {
		return strings.TrimSpace(topic + " " + title)
	}
	return strings.TrimSpace(topic + " " + strings.Join(topics, ", "))
}
