package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevelAndStyle(t *testing.T) {
	tests := []struct {
		in        string
		wantLevel Level
		wantStyle Style
	}{
		{"Advanced", LevelAdvanced, StyleVisual},
		{"  intermediate ", LevelIntermediate, StyleVisual},
		{"kinesthetic", LevelBeginner, StyleKinesthetic},
		{"AUDITORY", LevelBeginner, StyleAuditory},
		{"expert", LevelBeginner, StyleVisual},
		{"", LevelBeginner, StyleVisual},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.wantLevel, ParseLevel(tt.in))
			assert.Equal(t, tt.wantStyle, ParseStyle(tt.in))
		})
	}
}

func TestAssessment_Normalize(t *testing.T) {
	a := Assessment{Level: "advanced", Style: "Podcasts"}.Normalize()
	assert.Equal(t, Assessment{Level: LevelAdvanced, Style: StyleVisual}, a)
	assert.Equal(t, DefaultAssessment(), Assessment{}.Normalize())
}

func TestSession_Clone(t *testing.T) {
	orig := Session{
		Topic:      "Go",
		Assessment: &Assessment{Level: LevelBeginner, Style: StyleReading},
		Resources:  []Resource{{Title: "Tour"}},
		Quiz:       []QuizQuestion{{Question: "Q", Options: []string{"a", "b", "c", "d"}}},
	}

	clone := orig.Clone()
	clone.Assessment.Level = LevelAdvanced
	clone.Resources[0].Title = "changed"
	clone.Quiz[0].Options[0] = "changed"

	assert.Equal(t, LevelBeginner, orig.Assessment.Level)
	assert.Equal(t, "Tour", orig.Resources[0].Title)
	assert.Equal(t, "a", orig.Quiz[0].Options[0])
	assert.False(t, orig.IsEmpty())
	assert.True(t, Session{ID: "01HZY8V3J6Q1W2E3R4T5Y6V7K8"}.IsEmpty())
}

func TestSearchResults_String(t *testing.T) {
	var nilResults *SearchResults
	assert.Empty(t, nilResults.String())

	r := &SearchResults{
		Query:  "go generics",
		Answer: "Type parameters arrived in Go 1.18.",
		Results: []SearchResult{
			{Title: "Tutorial", URL: "https://go.dev/doc/tutorial/generics", Content: "Getting started"},
		},
	}
	assert.Equal(t, "Search query: go generics\n"+
		"Summary: Type parameters arrived in Go 1.18.\n"+
		"1. Tutorial\n   URL: https://go.dev/doc/tutorial/generics\n   Getting started\n", r.String())
}

func TestErrors_Unwrap(t *testing.T) {
	root := errors.New("connection refused")
	collab := NewCollaboratorError("tavily search", root)
	exhausted := &GenerationExhaustedError{Kind: KindQuiz, Attempts: 3, Last: collab}

	var target *CollaboratorError
	require.ErrorAs(t, exhausted, &target)
	assert.Equal(t, "tavily search", target.Collaborator)
	assert.ErrorIs(t, exhausted, root)
	assert.Contains(t, exhausted.Error(), "quiz generation exhausted after 3 attempts")

	notFound := NewSessionNotFoundError("abc")
	assert.Equal(t, CodeSessionNotFound, notFound.Code)
	assert.Equal(t, "abc", notFound.Context["session_id"])
}
