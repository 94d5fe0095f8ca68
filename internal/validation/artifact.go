package validation

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"leembo/internal/domain"

	"github.com/tidwall/gjson"
)

// Course defaults applied when generated entries omit optional fields.
const (
	DefaultCourseRating     = 4.5
	DefaultCourseThumbnail  = "/api/placeholder/400/225"
	DefaultCourseInstructor = "Unknown"
	DefaultCoursePlatform   = "Online"
	DefaultCourseDuration   = "Varies"
	DefaultCourseTag        = "Learning"

	DefaultTopicScore    = 5
	DefaultTopicCategory = "Other"
)

var requiredCourseKeys = []string{"id", "title", "platform", "url"}

func parse(raw json.RawMessage) (gjson.Result, bool) {
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, false
	}
	return gjson.ParseBytes(raw), true
}

func hasKeys(r gjson.Result, keys ...string) bool {
	if !r.IsObject() {
		return false
	}
	for _, k := range keys {
		if !r.Get(k).Exists() {
			return false
		}
	}
	return true
}

// nonEmptyArray returns the elements of a non-empty JSON array.
func nonEmptyArray(raw json.RawMessage) ([]gjson.Result, bool) {
	r, ok := parse(raw)
	if !ok || !r.IsArray() {
		return nil, false
	}
	items := r.Array()
	return items, len(items) > 0
}

// IsValidAssessment reports whether raw is an object with level and style keys.
func IsValidAssessment(raw json.RawMessage) bool {
	r, ok := parse(raw)
	return ok && hasKeys(r, "level", "style")
}

// IsValidResourceList reports whether raw is a non-empty array whose elements
// all carry title, url and summary keys.
func IsValidResourceList(raw json.RawMessage) bool {
	items, ok := nonEmptyArray(raw)
	if !ok {
		return false
	}
	for _, item := range items {
		if !hasKeys(item, "title", "url", "summary") {
			return false
		}
	}
	return true
}

// IsValidQuiz reports whether raw is a non-empty array of questions with
// exactly four options and an answer index in [0,3].
func IsValidQuiz(raw json.RawMessage) bool {
	items, ok := nonEmptyArray(raw)
	if !ok {
		return false
	}
	for _, item := range items {
		if !hasKeys(item, "question", "options", "correct_answer") {
			return false
		}
		options := item.Get("options")
		if !options.IsArray() || len(options.Array()) != domain.QuizOptionCount {
			return false
		}
		if _, ok := answerIndex(item.Get("correct_answer")); !ok {
			return false
		}
	}
	return true
}

// IsValidTopicList reports whether raw is a non-empty array of topics. Entries
// may be objects with a non-empty topic or bare strings.
func IsValidTopicList(raw json.RawMessage) bool {
	items, ok := nonEmptyArray(raw)
	if !ok {
		return false
	}
	for _, item := range items {
		if topicName(item) == "" {
			return false
		}
	}
	return true
}

// IsValidCourseList reports whether raw is a non-empty array holding at least
// one course with id, title, platform and url.
func IsValidCourseList(raw json.RawMessage) bool {
	items, ok := nonEmptyArray(raw)
	if !ok {
		return false
	}
	for _, item := range items {
		if hasKeys(item, requiredCourseKeys...) {
			return true
		}
	}
	return false
}

// IsValidExplanation reports whether a free-text explanation has content.
func IsValidExplanation(text string) bool {
	return strings.TrimSpace(text) != ""
}

// DecodeAssessment validates and decodes an assessment, normalizing unknown
// level or style values to the defaults.
func DecodeAssessment(raw json.RawMessage) (domain.Assessment, error) {
	if !IsValidAssessment(raw) {
		return domain.Assessment{}, domain.NewValidationError(domain.KindAssessment, "object with level and style expected")
	}
	r := gjson.ParseBytes(raw)
	return domain.Assessment{
		Level: domain.Level(r.Get("level").String()),
		Style: domain.Style(r.Get("style").String()),
	}.Normalize(), nil
}

// DecodeResources validates and decodes a resource list.
func DecodeResources(raw json.RawMessage) ([]domain.Resource, error) {
	if !IsValidResourceList(raw) {
		return nil, domain.NewValidationError(domain.KindResources, "non-empty array of {title,url,summary} expected")
	}
	items := gjson.ParseBytes(raw).Array()
	resources := make([]domain.Resource, 0, len(items))
	for _, item := range items {
		resources = append(resources, domain.Resource{
			Title:   item.Get("title").String(),
			URL:     item.Get("url").String(),
			Summary: item.Get("summary").String(),
		})
	}
	return resources, nil
}

// DecodeQuiz validates and decodes a quiz.
func DecodeQuiz(raw json.RawMessage) ([]domain.QuizQuestion, error) {
	if !IsValidQuiz(raw) {
		return nil, domain.NewValidationError(domain.KindQuiz, "non-empty array of questions with 4 options and answer index expected")
	}
	items := gjson.ParseBytes(raw).Array()
	quiz := make([]domain.QuizQuestion, 0, len(items))
	for _, item := range items {
		options := make([]string, 0, domain.QuizOptionCount)
		for _, o := range item.Get("options").Array() {
			options = append(options, o.String())
		}
		answer, _ := answerIndex(item.Get("correct_answer"))
		quiz = append(quiz, domain.QuizQuestion{
			Question:      item.Get("question").String(),
			Options:       options,
			CorrectAnswer: answer,
		})
	}
	return quiz, nil
}

// DecodeTopics validates and decodes a trending topic list.
func DecodeTopics(raw json.RawMessage) ([]domain.TrendingTopic, error) {
	if !IsValidTopicList(raw) {
		return nil, domain.NewValidationError(domain.KindTopics, "non-empty array of topics expected")
	}
	items := gjson.ParseBytes(raw).Array()
	topics := make([]domain.TrendingTopic, 0, len(items))
	for _, item := range items {
		topic := domain.TrendingTopic{
			Topic:          topicName(item),
			Category:       DefaultTopicCategory,
			RelevanceScore: DefaultTopicScore,
		}
		if item.IsObject() {
			if c := strings.TrimSpace(item.Get("category").String()); c != "" {
				topic.Category = c
			}
			if s := item.Get("relevance_score"); s.Type == gjson.Number {
				topic.RelevanceScore = clampInt(int(math.Round(s.Num)), 0, 10)
			}
			topic.PreferenceMatch = item.Get("preference_match").Bool()
		}
		topics = append(topics, topic)
	}
	return topics, nil
}

// DecodeCourses validates and decodes a course list. Entries missing a
// required key are dropped; optional fields receive their defaults.
func DecodeCourses(raw json.RawMessage) ([]domain.Course, error) {
	if !IsValidCourseList(raw) {
		return nil, domain.NewValidationError(domain.KindCourses, "non-empty array of courses with id, title, platform and url expected")
	}
	items := gjson.ParseBytes(raw).Array()
	courses := make([]domain.Course, 0, len(items))
	for _, item := range items {
		if !hasKeys(item, requiredCourseKeys...) {
			continue
		}
		courses = append(courses, domain.Course{
			ID:         item.Get("id").String(),
			Title:      stringOr(item.Get("title"), "Untitled Course"),
			Platform:   stringOr(item.Get("platform"), DefaultCoursePlatform),
			Instructor: stringOr(item.Get("instructor"), DefaultCourseInstructor),
			Duration:   stringOr(item.Get("duration"), DefaultCourseDuration),
			Rating:     rating(item.Get("rating")),
			Thumbnail:  stringOr(item.Get("thumbnail"), DefaultCourseThumbnail),
			URL:        item.Get("url").String(),
			Tags:       tags(item.Get("tags")),
		})
	}
	return courses, nil
}

func topicName(item gjson.Result) string {
	switch {
	case item.Type == gjson.String:
		return strings.TrimSpace(item.Str)
	case item.IsObject():
		return strings.TrimSpace(item.Get("topic").String())
	default:
		return ""
	}
}

// answerIndex accepts integral numbers and numeric strings.
func answerIndex(r gjson.Result) (int, bool) {
	var idx int
	switch r.Type {
	case gjson.Number:
		if r.Num != math.Trunc(r.Num) {
			return 0, false
		}
		idx = int(r.Num)
	case gjson.String:
		n, err := strconv.Atoi(strings.TrimSpace(r.Str))
		if err != nil {
			return 0, false
		}
		idx = n
	default:
		return 0, false
	}
	return idx, idx >= 0 && idx < domain.QuizOptionCount
}

func stringOr(r gjson.Result, def string) string {
	if s := strings.TrimSpace(r.String()); r.Exists() && r.Type != gjson.Null && s != "" {
		return s
	}
	return def
}

func rating(r gjson.Result) float64 {
	var v float64
	switch r.Type {
	case gjson.Number:
		v = r.Num
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil {
			return DefaultCourseRating
		}
		v = f
	default:
		return DefaultCourseRating
	}
	return math.Max(1.0, math.Min(5.0, v))
}

func tags(r gjson.Result) []string {
	if r.IsArray() {
		out := make([]string, 0, len(r.Array()))
		for _, t := range r.Array() {
			if s := strings.TrimSpace(t.String()); s != "" {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return []string{DefaultCourseTag}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
