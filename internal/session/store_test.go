package session

import (
	"testing"

	"leembo/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ApproveClearsPending(t *testing.T) {
	s := NewStore()
	s.BeginAssessment("X", domain.DefaultAssessment())

	_, ok := s.Pending()
	require.True(t, ok)

	sess := s.Approve("X", domain.Assessment{Level: domain.LevelAdvanced, Style: domain.StyleReading})

	_, ok = s.Pending()
	assert.False(t, ok)
	assert.Equal(t, "X", sess.Topic)
	require.NotNil(t, sess.Assessment)
	assert.Equal(t, domain.LevelAdvanced, sess.Assessment.Level)
	assert.Empty(t, sess.Resources)
	assert.Empty(t, sess.Explanation)
	assert.Empty(t, sess.Quiz)
	assert.Equal(t, sess, s.Current())
}

func TestStore_BeginAssessmentOverwrites(t *testing.T) {
	s := NewStore()
	s.BeginAssessment("Go", domain.DefaultAssessment())
	s.BeginAssessment("Rust", domain.Assessment{Level: domain.LevelIntermediate, Style: domain.StyleAuditory})

	p, ok := s.Pending()
	require.True(t, ok)
	assert.Equal(t, "Rust", p.Topic)
	assert.Equal(t, domain.LevelIntermediate, p.Assessment.Level)
}

func TestStore_ApproveOverwritesPreviousSession(t *testing.T) {
	s := NewStore()
	s.Approve("Go", domain.DefaultAssessment())
	s.SetExplanation("Go is a language.")
	s.SetQuiz([]domain.QuizQuestion{{Question: "q", Options: []string{"a", "b", "c", "d"}}})

	sess := s.Approve("Rust", domain.DefaultAssessment())

	assert.Equal(t, "Rust", sess.Topic)
	assert.Empty(t, sess.Explanation)
	assert.Empty(t, sess.Quiz)
}

func TestStore_CurrentIsSnapshot(t *testing.T) {
	s := NewStore()
	s.Approve("Go", domain.DefaultAssessment())
	s.SetResources([]domain.Resource{{Title: "Tour of Go", URL: "https://go.dev/tour", Summary: "Interactive"}})
	s.SetQuiz([]domain.QuizQuestion{{Question: "q", Options: []string{"a", "b", "c", "d"}}})

	snap := s.Current()
	snap.Resources[0].Title = "changed"
	snap.Quiz[0].Options[0] = "changed"
	snap.Assessment.Level = domain.LevelAdvanced

	cur := s.Current()
	assert.Equal(t, "Tour of Go", cur.Resources[0].Title)
	assert.Equal(t, "a", cur.Quiz[0].Options[0])
	assert.Equal(t, domain.LevelBeginner, cur.Assessment.Level)
}

func TestStore_Reset(t *testing.T) {
	s := NewStore()
	s.current.ID = "01HZY8V3J6Q1W2E3R4T5Y6V7K8"
	s.BeginAssessment("Go", domain.DefaultAssessment())
	s.Approve("Go", domain.DefaultAssessment())
	s.SetExplanation("text")
	s.BeginAssessment("Rust", domain.DefaultAssessment())

	s.Reset()

	cur := s.Current()
	assert.True(t, cur.IsEmpty())
	assert.Equal(t, "01HZY8V3J6Q1W2E3R4T5Y6V7K8", cur.ID)
	_, ok := s.Pending()
	assert.False(t, ok)
}
