package generation

import (
	"leembo/internal/domain"
	"leembo/internal/extractor"
	"leembo/internal/validation"
)

// Decoders for every artifact kind. The assessment is the only object-shaped
// artifact and uses the object-preferring extractor.
var (
	AssessmentDecoder = JSONDecoder(extractor.ExtractObject, validation.DecodeAssessment)
	ResourcesDecoder  = JSONDecoder(extractor.Extract, validation.DecodeResources)
	QuizDecoder       = JSONDecoder(extractor.Extract, validation.DecodeQuiz)
	TopicsDecoder     = JSONDecoder(extractor.Extract, validation.DecodeTopics)
	CoursesDecoder    = JSONDecoder(extractor.Extract, validation.DecodeCourses)
)

// ExplanationDecoder accepts any non-blank markdown once reasoning blocks and
// fences are removed.
func ExplanationDecoder(text string) (string, error) {
	cleaned := extractor.Clean(text)
	if !validation.IsValidExplanation(cleaned) {
		return "", domain.NewValidationError(domain.KindExplanation, "explanation is empty")
	}
	return cleaned, nil
}
