package validation

import (
	"encoding/json"
	"testing"

	"leembo/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func TestIsValidQuiz(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"four options", `[{"question":"q","options":["a","b","c","d"],"correct_answer":0}]`, true},
		{"four empty options", `[{"question":"q","options":["","","",""],"correct_answer":3}]`, true},
		{"string answer index", `[{"question":"q","options":[1,2,3,4],"correct_answer":"2"}]`, true},
		{"three options", `[{"question":"q","options":["a","b","c"],"correct_answer":0}]`, false},
		{"five options", `[{"question":"q","options":["a","b","c","d","e"],"correct_answer":0}]`, false},
		{"one bad element", `[{"question":"q","options":["a","b","c","d"],"correct_answer":0},{"question":"q","options":["a"],"correct_answer":0}]`, false},
		{"answer out of range", `[{"question":"q","options":["a","b","c","d"],"correct_answer":4}]`, false},
		{"negative answer", `[{"question":"q","options":["a","b","c","d"],"correct_answer":-1}]`, false},
		{"fractional answer", `[{"question":"q","options":["a","b","c","d"],"correct_answer":1.5}]`, false},
		{"missing answer", `[{"question":"q","options":["a","b","c","d"]}]`, false},
		{"options not array", `[{"question":"q","options":"abcd","correct_answer":0}]`, false},
		{"empty array", `[]`, false},
		{"object", `{"question":"q"}`, false},
		{"malformed", `[{"question":`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidQuiz(raw(tt.in)))
		})
	}
}

func TestIsValidResourceList(t *testing.T) {
	assert.True(t, IsValidResourceList(raw(`[{"title":"","url":"","summary":""}]`)), "empty values are allowed")
	assert.True(t, IsValidResourceList(raw(`[{"title":"a","url":"b","summary":"c","extra":1}]`)))
	assert.False(t, IsValidResourceList(raw(`[{"title":"a","url":"b"}]`)))
	assert.False(t, IsValidResourceList(raw(`["a"]`)))
	assert.False(t, IsValidResourceList(raw(`[]`)))
}

func TestIsValidAssessment(t *testing.T) {
	assert.True(t, IsValidAssessment(raw(`{"level":"Expert","style":"Interpretive dance"}`)))
	assert.False(t, IsValidAssessment(raw(`{"level":"Beginner"}`)))
	assert.False(t, IsValidAssessment(raw(`[{"level":"Beginner","style":"Visual"}]`)))
}

func TestDecodeAssessment_NormalizesUnknownValues(t *testing.T) {
	a, err := DecodeAssessment(raw(`{"level":"advanced","style":"Interpretive dance"}`))
	require.NoError(t, err)
	assert.Equal(t, domain.Assessment{Level: domain.LevelAdvanced, Style: domain.StyleVisual}, a)

	_, err = DecodeAssessment(raw(`{"style":"Visual"}`))
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, domain.KindAssessment, vErr.Kind)
}

func TestDecodeQuiz(t *testing.T) {
	quiz, err := DecodeQuiz(raw(`[{"question":"What is Go?","options":["A language","A game","A car","A fruit"],"correct_answer":"0"}]`))
	require.NoError(t, err)
	require.Len(t, quiz, 1)
	assert.Equal(t, "What is Go?", quiz[0].Question)
	assert.Equal(t, []string{"A language", "A game", "A car", "A fruit"}, quiz[0].Options)
	assert.Equal(t, 0, quiz[0].CorrectAnswer)
}

func TestDecodeTopics(t *testing.T) {
	topics, err := DecodeTopics(raw(`[
		{"topic":"AI ethics","category":"Technology","relevance_score":7,"preference_match":true},
		{"topic":"Gardening","relevance_score":42},
		"Bare string topic"
	]`))
	require.NoError(t, err)
	require.Len(t, topics, 3)

	assert.Equal(t, domain.TrendingTopic{Topic: "AI ethics", Category: "Technology", RelevanceScore: 7, PreferenceMatch: true}, topics[0])
	assert.Equal(t, domain.TrendingTopic{Topic: "Gardening", Category: DefaultTopicCategory, RelevanceScore: 10}, topics[1])
	assert.Equal(t, domain.TrendingTopic{Topic: "Bare string topic", Category: DefaultTopicCategory, RelevanceScore: DefaultTopicScore}, topics[2])

	_, err = DecodeTopics(raw(`[{"category":"Science"}]`))
	assert.Error(t, err)
}

func TestDecodeCourses_AppliesDefaults(t *testing.T) {
	courses, err := DecodeCourses(raw(`[
		{"id": 7, "title": "Go in Action", "platform": "Udemy", "url": "https://udemy.com/go"},
		{"title": "No id", "platform": "YouTube", "url": "https://youtube.com/x"},
		{"id": "b", "title": "Rated", "platform": "", "url": "u", "instructor": "Ann", "duration": "3h",
		 "rating": "9.7", "thumbnail": "t.png", "tags": ["Go", "Concurrency"]},
		{"id": "c", "title": "Bad rating", "platform": "edX", "url": "u2", "rating": "great"}
	]`))
	require.NoError(t, err)
	require.Len(t, courses, 3, "entry without id is dropped")

	assert.Equal(t, domain.Course{
		ID:         "7",
		Title:      "Go in Action",
		Platform:   "Udemy",
		Instructor: DefaultCourseInstructor,
		Duration:   DefaultCourseDuration,
		Rating:     DefaultCourseRating,
		Thumbnail:  DefaultCourseThumbnail,
		URL:        "https://udemy.com/go",
		Tags:       []string{DefaultCourseTag},
	}, courses[0])

	assert.Equal(t, DefaultCoursePlatform, courses[1].Platform, "empty platform gets the default")
	assert.Equal(t, "Ann", courses[1].Instructor)
	assert.Equal(t, 5.0, courses[1].Rating, "rating is clamped")
	assert.Equal(t, []string{"Go", "Concurrency"}, courses[1].Tags)

	assert.Equal(t, DefaultCourseRating, courses[2].Rating)
}

func TestIsValidCourseList(t *testing.T) {
	assert.False(t, IsValidCourseList(raw(`[{"title":"x","url":"y"}]`)))
	assert.False(t, IsValidCourseList(raw(`[]`)))
	assert.True(t, IsValidCourseList(raw(`[{"id":"1","title":"x","platform":"p","url":"y"}]`)))
}
