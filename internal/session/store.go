// Package session holds the in-flight learning session of a mentor and the
// assessment awaiting the learner's approval.
package session

import (
	"strings"

	"leembo/internal/domain"
)

// Store is a single-slot session holder. It is not safe for concurrent use;
// callers sharing a Store must serialize access (see Registry).
type Store struct {
	current domain.Session
	pending *domain.PendingAssessment
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// BeginAssessment stages an assessment for topic, replacing any pending one.
func (s *Store) BeginAssessment(topic string, a domain.Assessment) domain.PendingAssessment {
	p := domain.PendingAssessment{Topic: strings.TrimSpace(topic), Assessment: a}
	s.pending = &p
	return p
}

// Pending returns the staged assessment, if any.
func (s *Store) Pending() (domain.PendingAssessment, bool) {
	if s.pending == nil {
		return domain.PendingAssessment{}, false
	}
	return *s.pending, true
}

// Approve clears the pending assessment and starts a new session for topic.
// Resources, explanation and quiz stay empty until they are generated.
func (s *Store) Approve(topic string, a domain.Assessment) domain.Session {
	s.pending = nil
	a = a.Normalize()
	s.current = domain.Session{
		ID:         s.current.ID,
		Topic:      strings.TrimSpace(topic),
		Assessment: &a,
	}
	return s.current.Clone()
}

func (s *Store) SetResources(resources []domain.Resource) {
	s.current.Resources = append([]domain.Resource(nil), resources...)
}

func (s *Store) SetExplanation(explanation string) {
	s.current.Explanation = explanation
}

func (s *Store) SetQuiz(quiz []domain.QuizQuestion) {
	s.current.Quiz = domain.Session{Quiz: quiz}.Clone().Quiz
}

// Reset clears the session and any pending assessment.
func (s *Store) Reset() {
	s.current = domain.Session{ID: s.current.ID}
	s.pending = nil
}

// Current returns a snapshot of the session.
func (s *Store) Current() domain.Session {
	return s.current.Clone()
}
