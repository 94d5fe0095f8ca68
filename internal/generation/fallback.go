package generation

import (
	"fmt"

	"leembo/internal/domain"
)

// ApologyExplanation replaces an explanation that could not be generated.
const ApologyExplanation = "Sorry, I encountered an error while preparing your learning materials."

// FallbackQuiz is a single placeholder question about topic.
func FallbackQuiz(topic string) []domain.QuizQuestion {
	return []domain.QuizQuestion{{
		Question:      fmt.Sprintf("Basic question about %s?", topic),
		Options:       []string{"Option 1", "Option 2", "Option 3", "Option 4"},
		CorrectAnswer: 0,
	}}
}

// FallbackResources is the empty resource list.
func FallbackResources() []domain.Resource {
	return []domain.Resource{}
}

// FallbackAssessment is the default level and style.
func FallbackAssessment() domain.Assessment {
	return domain.DefaultAssessment()
}

// FallbackExplanation returns ApologyExplanation.
func FallbackExplanation() string {
	return ApologyExplanation
}
