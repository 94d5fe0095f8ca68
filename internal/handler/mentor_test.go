package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"leembo/internal/domain"
	"leembo/internal/dto"
	"leembo/internal/handler"
	"leembo/internal/middleware"
	"leembo/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

type MockMentorService struct {
	AssessLevelFunc           func(ctx context.Context, topic string) domain.Assessment
	GetTrendingTopicsFunc     func(ctx context.Context, limit int, age int, prefs []string) []string
	GetRecommendedCoursesFunc func(ctx context.Context, prefs []string, topic string, limit int) []domain.Course
	ApproveAssessmentFunc     func(ctx context.Context, store *session.Store, topic string, a domain.Assessment) domain.LearningPackage
	LearnTopicFunc            func(ctx context.Context, topic string) domain.LearningPackage
}

func (m *MockMentorService) AssessLevel(ctx context.Context, topic string) domain.Assessment {
	if m.AssessLevelFunc != nil {
		return m.AssessLevelFunc(ctx, topic)
	}
	panic("MockMentorService.AssessLevelFunc not implemented")
}
func (m *MockMentorService) CurateResources(ctx context.Context, topic string, level domain.Level, style domain.Style) []domain.Resource {
	panic("not implemented in mock")
}
func (m *MockMentorService) ExplainTopic(ctx context.Context, topic string, level domain.Level, style domain.Style) string {
	panic("not implemented in mock")
}
func (m *MockMentorService) GenerateQuiz(ctx context.Context, topic string, level domain.Level) []domain.QuizQuestion {
	panic("not implemented in mock")
}
func (m *MockMentorService) GetTrendingTopics(ctx context.Context, limit int, age int, prefs []string) []string {
	if m.GetTrendingTopicsFunc != nil {
		return m.GetTrendingTopicsFunc(ctx, limit, age, prefs)
	}
	panic("MockMentorService.GetTrendingTopicsFunc not implemented")
}
func (m *MockMentorService) GetRecommendedCourses(ctx context.Context, prefs []string, topic string, limit int) []domain.Course {
	if m.GetRecommendedCoursesFunc != nil {
		return m.GetRecommendedCoursesFunc(ctx, prefs, topic, limit)
	}
	panic("MockMentorService.GetRecommendedCoursesFunc not implemented")
}
func (m *MockMentorService) BeginAssessment(ctx context.Context, store *session.Store, topic string) domain.PendingAssessment {
	return store.BeginAssessment(topic, m.AssessLevel(ctx, topic))
}
func (m *MockMentorService) ApproveAssessment(ctx context.Context, store *session.Store, topic string, a domain.Assessment) domain.LearningPackage {
	if m.ApproveAssessmentFunc != nil {
		return m.ApproveAssessmentFunc(ctx, store, topic, a)
	}
	panic("MockMentorService.ApproveAssessmentFunc not implemented")
}
func (m *MockMentorService) ResetSession(store *session.Store) {
	store.Reset()
}
func (m *MockMentorService) CurrentSession(store *session.Store) domain.Session {
	return store.Current()
}
func (m *MockMentorService) LearnTopic(ctx context.Context, topic string) domain.LearningPackage {
	if m.LearnTopicFunc != nil {
		return m.LearnTopicFunc(ctx, topic)
	}
	panic("MockMentorService.LearnTopicFunc not implemented")
}

type stubCache struct {
	pingErr error
}

func (s *stubCache) Get(ctx context.Context, key string) (string, error) { return "", domain.ErrCacheMiss }
func (s *stubCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return nil
}
func (s *stubCache) Delete(ctx context.Context, key string) error { return nil }
func (s *stubCache) Ping(ctx context.Context) error                { return s.pingErr }

func setupApp(svc *MockMentorService, cache domain.Cache) (*fiber.App, *session.Registry) {
	registry := session.NewRegistry(time.Hour, nil)
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.RequestID())
	handler.NewMentorHandler(svc, registry, cache).RegisterRoutes(app.Group("/api"))
	return app, registry
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestMentorHandler_SessionFlow(t *testing.T) {
	svc := &MockMentorService{
		AssessLevelFunc: func(ctx context.Context, topic string) domain.Assessment {
			return domain.Assessment{Level: domain.LevelIntermediate, Style: domain.StyleVisual}
		},
		ApproveAssessmentFunc: func(ctx context.Context, store *session.Store, topic string, a domain.Assessment) domain.LearningPackage {
			sess := store.Approve(topic, a)
			store.SetExplanation("# " + sess.Topic)
			return domain.LearningPackage{Topic: sess.Topic, Assessment: a, Explanation: "# " + sess.Topic}
		},
	}
	app, _ := setupApp(svc, nil)

	resp := doJSON(t, app, fiber.MethodPost, "/api/sessions", nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created dto.CreateSessionResponse
	decode(t, resp, &created)
	require.NotEmpty(t, created.SessionID)
	base := "/api/sessions/" + created.SessionID

	resp = doJSON(t, app, fiber.MethodPost, base+"/assessment", dto.TopicRequest{Topic: "Black holes"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var pending domain.PendingAssessment
	decode(t, resp, &pending)
	assert.Equal(t, "Black holes", pending.Topic)
	assert.Equal(t, domain.LevelIntermediate, pending.Assessment.Level)

	resp = doJSON(t, app, fiber.MethodGet, base, nil)
	var snapshot dto.SessionResponse
	decode(t, resp, &snapshot)
	require.NotNil(t, snapshot.Pending)
	assert.True(t, snapshot.Session.IsEmpty())

	approve := dto.ApproveRequest{Topic: "Black holes", Assessment: dto.AssessmentInput{Level: "beginner", Style: "Auditory"}}
	resp = doJSON(t, app, fiber.MethodPost, base+"/approve", approve)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var pkg domain.LearningPackage
	decode(t, resp, &pkg)
	assert.Equal(t, domain.Assessment{Level: domain.LevelBeginner, Style: domain.StyleAuditory}, pkg.Assessment)

	resp = doJSON(t, app, fiber.MethodGet, base, nil)
	snapshot = dto.SessionResponse{}
	decode(t, resp, &snapshot)
	assert.Nil(t, snapshot.Pending)
	assert.Equal(t, "Black holes", snapshot.Session.Topic)
	assert.Equal(t, "# Black holes", snapshot.Session.Explanation)

	resp = doJSON(t, app, fiber.MethodPost, base+"/reset", nil)
	snapshot = dto.SessionResponse{}
	decode(t, resp, &snapshot)
	assert.True(t, snapshot.Session.IsEmpty())
	assert.Equal(t, created.SessionID, snapshot.Session.ID)

	resp = doJSON(t, app, fiber.MethodDelete, base, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, base, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var errResp middleware.ErrorResponse
	decode(t, resp, &errResp)
	assert.Equal(t, string(domain.CodeSessionNotFound), errResp.Code)
	assert.NotEmpty(t, errResp.RequestID)
}

func TestMentorHandler_Validation(t *testing.T) {
	app, registry := setupApp(&MockMentorService{}, nil)
	id := registry.Create()

	tests := []struct {
		name   string
		method string
		target string
		body   interface{}
		field  string
	}{
		{"malformed session id", fiber.MethodGet, "/api/sessions/not-a-ulid", nil, "session_id"},
		{"blank topic", fiber.MethodPost, "/api/sessions/" + id + "/assessment", dto.TopicRequest{Topic: "  "}, "topic"},
		{"unknown level", fiber.MethodPost, "/api/sessions/" + id + "/approve",
			dto.ApproveRequest{Topic: "Go", Assessment: dto.AssessmentInput{Level: "Guru", Style: "Visual"}}, "assessment.level"},
		{"learn without topic", fiber.MethodPost, "/api/learn", dto.TopicRequest{}, "topic"},
		{"limit out of range", fiber.MethodGet, "/api/trending?limit=100", nil, "limit"},
		{"age not a number", fiber.MethodGet, "/api/courses?age=ten", nil, "age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, tt.method, tt.target, tt.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var body middleware.ValidationErrorResponse
			decode(t, resp, &body)
			require.NotEmpty(t, body.Errors)
			assert.Equal(t, tt.field, body.Errors[0].Field)
		})
	}
}

func TestMentorHandler_UnknownSession(t *testing.T) {
	app, _ := setupApp(&MockMentorService{}, nil)

	resp := doJSON(t, app, fiber.MethodPost, "/api/sessions/01HZY8V3J6Q1W2E3R4T5Y6V7K8/assessment", dto.TopicRequest{Topic: "Go"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestMentorHandler_Discovery(t *testing.T) {
	svc := &MockMentorService{
		GetTrendingTopicsFunc: func(ctx context.Context, limit int, age int, prefs []string) []string {
			assert.Equal(t, 3, limit)
			assert.Equal(t, 10, age)
			assert.Equal(t, []string{"space", "robots"}, prefs)
			return []string{"Mars rovers", "Robot building"}
		},
		GetRecommendedCoursesFunc: func(ctx context.Context, prefs []string, topic string, limit int) []domain.Course {
			assert.Equal(t, "python", topic)
			assert.Equal(t, 0, limit)
			assert.Empty(t, prefs)
			return []domain.Course{{ID: "1", Title: "Python Tutorial for Beginners"}}
		},
	}
	app, _ := setupApp(svc, nil)

	resp := doJSON(t, app, fiber.MethodGet, "/api/trending?limit=3&age=10&preferences=space,%20,robots", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var trending dto.TrendingResponse
	decode(t, resp, &trending)
	assert.Equal(t, []string{"Mars rovers", "Robot building"}, trending.Topics)

	resp = doJSON(t, app, fiber.MethodGet, "/api/courses?topic=python", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var courses dto.CoursesResponse
	decode(t, resp, &courses)
	require.Len(t, courses.Courses, 1)
	assert.Equal(t, "1", courses.Courses[0].ID)
}

func TestMentorHandler_LearnTopic(t *testing.T) {
	svc := &MockMentorService{
		LearnTopicFunc: func(ctx context.Context, topic string) domain.LearningPackage {
			return domain.LearningPackage{Topic: topic, Assessment: domain.DefaultAssessment()}
		},
	}
	app, _ := setupApp(svc, nil)

	resp := doJSON(t, app, fiber.MethodPost, "/api/learn", dto.TopicRequest{Topic: "Photosynthesis"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var pkg domain.LearningPackage
	decode(t, resp, &pkg)
	assert.Equal(t, "Photosynthesis", pkg.Topic)
}

func TestMentorHandler_Health(t *testing.T) {
	tests := []struct {
		name  string
		cache domain.Cache
		want  string
	}{
		{"no cache", nil, "disabled"},
		{"cache up", &stubCache{}, "ok"},
		{"cache down", &stubCache{pingErr: errors.New("connection refused")}, "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := setupApp(&MockMentorService{}, tt.cache)
			resp := doJSON(t, app, fiber.MethodGet, "/api/health", nil)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)

			var health dto.HealthResponse
			decode(t, resp, &health)
			assert.Equal(t, "ok", health.Status)
			assert.Equal(t, tt.want, health.Cache)
		})
	}
}
