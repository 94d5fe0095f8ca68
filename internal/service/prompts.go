package service

import (
	"context"
	"fmt"
	"strings"

	"leembo/internal/catalog"
	"leembo/internal/domain"
	"leembo/internal/generation"
	"leembo/internal/ranking"
)

// Domains searched for course recommendations.
var courseDomains = []string{"youtube.com", "udemy.com", "coursera.org", "edx.org", "skillshare.com"}

const (
	defaultTrendingQuery = "trending educational topics in technology, science, and humanities of today"
	defaultCoursesQuery  = "best video courses tutorials"
)

func assessmentRequest(topic string) generation.Request[domain.Assessment] {
	prompt := fmt.Sprintf(`You are an expert educational assessor who determines a learner's knowledge level and
preferred learning style.

Assess the user's knowledge level and learning style for: %s. Return the result as a JSON string.

Return ONLY a JSON object with no additional text:
{
    "level": "Beginner/Intermediate/Advanced",
    "style": "Visual/Auditory/Reading/Kinesthetic"
}`, topic)

	return generation.Request[domain.Assessment]{
		Kind:     domain.KindAssessment,
		Prompt:   prompt,
		Expected: `A JSON object in the format {"level": "Beginner/Intermediate/Advanced", "style": "Visual/Auditory/Reading/Kinesthetic"}`,
		Decode:   generation.AssessmentDecoder,
		Fallback: generation.FallbackAssessment,
	}
}

func resourcesQuery(topic string, level domain.Level, style domain.Style) string {
	return fmt.Sprintf("%s %s level learning resources %s", topic, level, style)
}

func resourcesPrompt(level domain.Level, style domain.Style, results *domain.SearchResults) string {
	return fmt.Sprintf(`You are a learning resource curator who finds and summarizes the most useful material.

Curate and summarize these resources for %s level learners who prefer %s learning:
%s

Return ONLY the JSON array with no additional text.
Format:
[
    {
        "title": "Resource Title",
        "url": "Resource URL",
        "summary": "Brief summary"
    }
]`, level, style, results.String())
}

// resourcesRequest searches again on every attempt so a transient search
// failure only costs one attempt.
func resourcesRequest(search domain.SearchProvider, depth, topic string, level domain.Level, style domain.Style) generation.Request[[]domain.Resource] {
	return generation.Request[[]domain.Resource]{
		Kind:     domain.KindResources,
		Expected: "A JSON array of curated resources",
		Decode:   generation.ResourcesDecoder,
		Fallback: generation.FallbackResources,
		Compose: func(ctx context.Context) (string, error) {
			results, err := search.Search(ctx, resourcesQuery(topic, level, style), domain.SearchOptions{Depth: depth})
			if err != nil {
				return "", err
			}
			return resourcesPrompt(level, style, results), nil
		},
	}
}

func explanationRequest(topic string, level domain.Level, style domain.Style) generation.Request[string] {
	prompt := fmt.Sprintf(`You are a patient teacher who adapts explanations to the learner.

Explain %s for a %s level learner who prefers %s learning. Use markdown formatting.`, topic, level, style)

	return generation.Request[string]{
		Kind:     domain.KindExplanation,
		Prompt:   prompt,
		Expected: "A markdown-formatted explanation of the topic",
		Decode:   generation.ExplanationDecoder,
		Fallback: generation.FallbackExplanation,
	}
}

func quizRequest(topic string, level domain.Level) generation.Request[[]domain.QuizQuestion] {
	prompt := fmt.Sprintf(`You are a quiz author who writes clear multiple-choice questions.

Create a quiz about %s appropriate for %s level learners.
Generate exactly %d multiple-choice questions.
Each question must have exactly %d options.
"correct_answer" is the zero-based index of the correct option.
Return ONLY the JSON array with no additional text.
Format:
[
    {
        "question": "Question text",
        "options": ["Option 1", "Option 2", "Option 3", "Option 4"],
        "correct_answer": 0
    }
]`, topic, level, domain.QuizQuestionCount, domain.QuizOptionCount)

	return generation.Request[[]domain.QuizQuestion]{
		Kind:     domain.KindQuiz,
		Prompt:   prompt,
		Expected: fmt.Sprintf("A JSON array of %d quiz questions", domain.QuizQuestionCount),
		Decode:   generation.QuizDecoder,
		Fallback: func() []domain.QuizQuestion { return generation.FallbackQuiz(topic) },
	}
}

func trendingQuery(prefs []string, band ranking.AgeBand) string {
	if len(prefs) == 0 && band == ranking.AgeBandNone {
		return defaultTrendingQuery
	}
	parts := []string{"trending educational topics"}
	if len(prefs) > 0 {
		parts = append(parts, "related to "+strings.Join(prefs, ", "))
	}
	if ctx := band.Context(); ctx != "" {
		parts = append(parts, ctx)
	}
	return strings.Join(parts, " ")
}

// topicsRequest decodes, ranks and reduces the generated topics to names in
// one step; the fallback is the preference-aware catalog selection.
func topicsRequest(results *domain.SearchResults, limit int, prefs []string, band ranking.AgeBand) generation.Request[[]string] {
	var b strings.Builder
	fmt.Fprintf(&b, `You are a trend analyst who spots educational topics people want to learn about.

Analyze these search results and identify the top trending educational topics:
%s

Consider topics from various domains such as technology, science, humanities, arts, and business, including topics for children.
Focus on topics with educational value that people would want to learn about.
`, results.String())
	if len(prefs) > 0 {
		fmt.Fprintf(&b, "\nPrioritize topics related to the user's interests: %s\n", strings.Join(prefs, ", "))
	}
	if ctx := band.Context(); ctx != "" {
		fmt.Fprintf(&b, "\nEnsure topics are appropriate %s\n", ctx)
	}
	fmt.Fprintf(&b, `
Rank topics by their relevance and trendiness.

Return ONLY a JSON array with the top %d trending topics for learning:
[
    {
        "topic": "Full topic name as a learning subject",
        "category": "Technology/Science/Business/Humanities/Arts/Health/Other",
        "relevance_score": 7,
        "preference_match": false
    }
]
"relevance_score" is an integer from 1 to 10 and "preference_match" tells whether the topic relates to the user's interests.`, limit)

	return generation.Request[[]string]{
		Kind:     domain.KindTopics,
		Prompt:   b.String(),
		Expected: fmt.Sprintf("A JSON array of %d trending educational topics", limit),
		Decode: func(text string) ([]string, error) {
			topics, err := generation.TopicsDecoder(text)
			if err != nil {
				return nil, err
			}
			return ranking.TopicNames(ranking.Rank(topics, prefs, limit)), nil
		},
		Fallback: func() []string { return catalog.SelectTopics(prefs, limit) },
	}
}

func coursesQuery(topic string, prefs []string) string {
	switch {
	case topic != "":
		return fmt.Sprintf("best %s video courses tutorials", topic)
	case len(prefs) > 0:
		return fmt.Sprintf("best %s video courses tutorials", strings.Join(prefs, " "))
	default:
		return defaultCoursesQuery
	}
}

func coursesRequest(results *domain.SearchResults, topic string, prefs []string, limit int) generation.Request[[]domain.Course] {
	var b strings.Builder
	fmt.Fprintf(&b, `You are a learning resource curator who recommends high quality video courses.

Analyze these search results and identify the best video courses:
%s
`, results.String())
	if topic != "" {
		fmt.Fprintf(&b, "\nFocus on courses related to: %s\n", topic)
	}
	if len(prefs) > 0 {
		fmt.Fprintf(&b, "\nAlso consider the user's interests: %s\n", strings.Join(prefs, ", "))
	}
	fmt.Fprintf(&b, `
Extract course information and return a JSON array with %d recommended video courses.
For each course, include:
- id: A unique identifier (string or number)
- title: The course title
- platform: Platform name (YouTube, Udemy, Coursera, etc.)
- instructor: Name of instructor or organization
- duration: Course duration (e.g., "2 hours", "8 weeks")
- rating: A rating from 1.0 to 5.0
- thumbnail: URL to course thumbnail image (use a placeholder if unavailable)
- url: Direct URL to the course
- tags: Array of relevant topic tags (3-5 tags)

IMPORTANT: Return ONLY a valid JSON array, no additional text.`, limit)

	return generation.Request[[]domain.Course]{
		Kind:     domain.KindCourses,
		Prompt:   b.String(),
		Expected: fmt.Sprintf("A JSON array of %d recommended video courses", limit),
		Decode: func(text string) ([]domain.Course, error) {
			courses, err := generation.CoursesDecoder(text)
			if err != nil {
				return nil, err
			}
			return ranking.RankCourses(courses, prefs, limit), nil
		},
		Fallback: func() []domain.Course { return catalog.SelectCourses(topic, prefs, limit) },
	}
}
