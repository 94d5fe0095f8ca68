package service

import (
	"context"
	"strings"

	"leembo/internal/catalog"
	"leembo/internal/domain"
	"leembo/internal/generation"
	"leembo/internal/ranking"
	"leembo/internal/session"

	"go.uber.org/zap"
)

const (
	DefaultTopicLimit  = 5
	DefaultCourseLimit = 4
)

// MentorService defines the learning operations exposed to the API and CLI.
// No operation fails: when generation or search is unavailable the result is
// a deterministic fallback.
type MentorService interface {
	AssessLevel(ctx context.Context, topic string) domain.Assessment
	CurateResources(ctx context.Context, topic string, level domain.Level, style domain.Style) []domain.Resource
	ExplainTopic(ctx context.Context, topic string, level domain.Level, style domain.Style) string
	GenerateQuiz(ctx context.Context, topic string, level domain.Level) []domain.QuizQuestion
	GetTrendingTopics(ctx context.Context, limit int, age int, prefs []string) []string
	GetRecommendedCourses(ctx context.Context, prefs []string, topic string, limit int) []domain.Course

	// Two-phase flow over a caller-owned session.
	BeginAssessment(ctx context.Context, store *session.Store, topic string) domain.PendingAssessment
	ApproveAssessment(ctx context.Context, store *session.Store, topic string, assessment domain.Assessment) domain.LearningPackage
	ResetSession(store *session.Store)
	CurrentSession(store *session.Store) domain.Session

	// LearnTopic runs assessment, curation, explanation and quiz in one go.
	LearnTopic(ctx context.Context, topic string) domain.LearningPackage
}

// mentorService implements MentorService
type mentorService struct {
	generator   *generation.Generator
	search      domain.SearchProvider
	searchDepth string
	logger      *zap.Logger
}

// NewMentorService creates a new instance of mentorService
func NewMentorService(generator *generation.Generator, search domain.SearchProvider, searchDepth string, logger *zap.Logger) MentorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if searchDepth == "" {
		searchDepth = "advanced"
	}
	return &mentorService{
		generator:   generator,
		search:      search,
		searchDepth: searchDepth,
		logger:      logger,
	}
}

// AssessLevel implements MentorService
func (s *mentorService) AssessLevel(ctx context.Context, topic string) domain.Assessment {
	res := generation.Run(ctx, s.generator, assessmentRequest(topic))
	s.logger.Info("Assessment generated",
		zap.String("topic", topic),
		zap.String("level", string(res.Value.Level)),
		zap.String("style", string(res.Value.Style)),
		zap.Bool("fallback", res.FromFallback))
	return res.Value
}

// CurateResources implements MentorService
func (s *mentorService) CurateResources(ctx context.Context, topic string, level domain.Level, style domain.Style) []domain.Resource {
	res := generation.Run(ctx, s.generator, resourcesRequest(s.search, s.searchDepth, topic, level, style))
	return res.Value
}

// ExplainTopic implements MentorService
func (s *mentorService) ExplainTopic(ctx context.Context, topic string, level domain.Level, style domain.Style) string {
	return generation.Run(ctx, s.generator, explanationRequest(topic, level, style)).Value
}

// GenerateQuiz implements MentorService
func (s *mentorService) GenerateQuiz(ctx context.Context, topic string, level domain.Level) []domain.QuizQuestion {
	return generation.Run(ctx, s.generator, quizRequest(topic, level)).Value
}

// GetTrendingTopics implements MentorService. A failed search means the
// pipeline cannot run at all and the generic error topics are returned.
func (s *mentorService) GetTrendingTopics(ctx context.Context, limit int, age int, prefs []string) []string {
	if limit <= 0 {
		limit = DefaultTopicLimit
	}
	prefs = cleanPreferences(prefs)
	band := ranking.BandForAge(age)

	query := trendingQuery(prefs, band)
	results, err := s.search.Search(ctx, query, domain.SearchOptions{Depth: s.searchDepth})
	if err != nil {
		s.logger.Error("Trending topic search failed, serving error topics",
			zap.String("query", query),
			zap.Error(err))
		return catalog.ErrorTopics(limit)
	}

	res := generation.Run(ctx, s.generator, topicsRequest(results, limit, prefs, band))
	s.logger.Info("Trending topics resolved",
		zap.Int("count", len(res.Value)),
		zap.Strings("preferences", prefs),
		zap.String("age_band", string(band)),
		zap.Bool("fallback", res.FromFallback))
	return res.Value
}

// GetRecommendedCourses implements MentorService
func (s *mentorService) GetRecommendedCourses(ctx context.Context, prefs []string, topic string, limit int) []domain.Course {
	if limit <= 0 {
		limit = DefaultCourseLimit
	}
	prefs = cleanPreferences(prefs)
	topic = strings.TrimSpace(topic)

	query := coursesQuery(topic, prefs)
	results, err := s.search.Search(ctx, query, domain.SearchOptions{Depth: s.searchDepth, IncludeDomains: courseDomains})
	if err != nil {
		s.logger.Error("Course search failed, serving catalog courses",
			zap.String("query", query),
			zap.Error(err))
		return catalog.SelectCourses(topic, prefs, limit)
	}

	res := generation.Run(ctx, s.generator, coursesRequest(results, topic, prefs, limit))
	return res.Value
}

// BeginAssessment implements MentorService
func (s *mentorService) BeginAssessment(ctx context.Context, store *session.Store, topic string) domain.PendingAssessment {
	return store.BeginAssessment(topic, s.AssessLevel(ctx, topic))
}

// ApproveAssessment implements MentorService. The pending assessment is
// cleared before any content is generated.
func (s *mentorService) ApproveAssessment(ctx context.Context, store *session.Store, topic string, assessment domain.Assessment) domain.LearningPackage {
	sess := store.Approve(topic, assessment)
	a := *sess.Assessment

	resources := s.CurateResources(ctx, sess.Topic, a.Level, a.Style)
	store.SetResources(resources)

	explanation := s.ExplainTopic(ctx, sess.Topic, a.Level, a.Style)
	store.SetExplanation(explanation)

	quiz := s.GenerateQuiz(ctx, sess.Topic, a.Level)
	store.SetQuiz(quiz)

	s.logger.Info("Learning package ready",
		zap.String("topic", sess.Topic),
		zap.Int("resources", len(resources)),
		zap.Int("questions", len(quiz)))

	return domain.LearningPackage{
		Topic:       sess.Topic,
		Assessment:  a,
		Resources:   resources,
		Explanation: explanation,
		Quiz:        quiz,
	}
}

// ResetSession implements MentorService
func (s *mentorService) ResetSession(store *session.Store) {
	store.Reset()
}

// CurrentSession implements MentorService
func (s *mentorService) CurrentSession(store *session.Store) domain.Session {
	return store.Current()
}

// LearnTopic implements MentorService
func (s *mentorService) LearnTopic(ctx context.Context, topic string) domain.LearningPackage {
	topic = strings.TrimSpace(topic)
	a := s.AssessLevel(ctx, topic)
	return domain.LearningPackage{
		Topic:       topic,
		Assessment:  a,
		Resources:   s.CurateResources(ctx, topic, a.Level, a.Style),
		Explanation: s.ExplainTopic(ctx, topic, a.Level, a.Style),
		Quiz:        s.GenerateQuiz(ctx, topic, a.Level),
	}
}

func cleanPreferences(prefs []string) []string {
	out := make([]string, 0, len(prefs))
	for _, p := range prefs {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
