package handler

import (
	"context"
	"time"

	"leembo/internal/domain"
	"leembo/internal/dto"
	"leembo/internal/logger"
	"leembo/internal/middleware"
	"leembo/internal/service"
	"leembo/internal/session"
	"leembo/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MentorHandler handles learning-session HTTP requests
type MentorHandler struct {
	service   service.MentorService
	sessions  *session.Registry
	validator *validation.Validator
	cache     domain.Cache
}

// NewMentorHandler creates a new MentorHandler instance. cache may be nil
// when the search cache is disabled.
func NewMentorHandler(service service.MentorService, sessions *session.Registry, cache domain.Cache) *MentorHandler {
	return &MentorHandler{
		service:   service,
		sessions:  sessions,
		validator: validation.NewValidator(),
		cache:     cache,
	}
}

// RegisterRoutes mounts the mentor API on router
func (h *MentorHandler) RegisterRoutes(router fiber.Router) {
	vm := middleware.NewValidationMiddleware()

	router.Get("/health", h.Health)
	router.Post("/learn", h.LearnTopic)
	router.Get("/trending", vm.ValidateDiscoveryParams(), h.GetTrendingTopics)
	router.Get("/courses", vm.ValidateDiscoveryParams(), h.GetRecommendedCourses)

	sessions := router.Group("/sessions")
	sessions.Post("/", h.CreateSession)
	sessions.Get("/:id", vm.ValidateSessionID(), h.GetSession)
	sessions.Delete("/:id", vm.ValidateSessionID(), h.DeleteSession)
	sessions.Post("/:id/assessment", vm.ValidateSessionID(), h.BeginAssessment)
	sessions.Post("/:id/approve", vm.ValidateSessionID(), h.ApproveAssessment)
	sessions.Post("/:id/reset", vm.ValidateSessionID(), h.ResetSession)
}

// CreateSession godoc
// @Summary Open a mentor session
// @Description Creates an empty learning session and returns its identifier
// @Tags sessions
// @Produce json
// @Success 201 {object} dto.CreateSessionResponse
// @Router /sessions [post]
func (h *MentorHandler) CreateSession(c *fiber.Ctx) error {
	id := h.sessions.Create()
	return c.Status(fiber.StatusCreated).JSON(dto.CreateSessionResponse{SessionID: id})
}

// GetSession godoc
// @Summary Get session state
// @Description Returns the session snapshot and any assessment awaiting approval
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id} [get]
func (h *MentorHandler) GetSession(c *fiber.Ctx) error {
	var resp dto.SessionResponse
	err := h.sessions.With(sessionID(c), func(store *session.Store) error {
		resp.Session = h.service.CurrentSession(store)
		if pending, ok := store.Pending(); ok {
			resp.Pending = &pending
		}
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteSession godoc
// @Summary Close a session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id} [delete]
func (h *MentorHandler) DeleteSession(c *fiber.Ctx) error {
	id := sessionID(c)
	if !h.sessions.Delete(id) {
		return domain.NewSessionNotFoundError(id)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BeginAssessment godoc
// @Summary Assess the learner for a topic
// @Description Generates a level and style estimate and holds it for approval
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.TopicRequest true "Topic"
// @Success 200 {object} domain.PendingAssessment
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/assessment [post]
func (h *MentorHandler) BeginAssessment(c *fiber.Ctx) error {
	var req dto.TopicRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateTopic(req.Topic); len(errs) > 0 {
		return errs
	}

	var pending domain.PendingAssessment
	err := h.sessions.With(sessionID(c), func(store *session.Store) error {
		pending = h.service.BeginAssessment(c.UserContext(), store, req.Topic)
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(pending)
}

// ApproveAssessment godoc
// @Summary Approve an assessment
// @Description Accepts the (possibly adjusted) assessment and generates resources, explanation and quiz
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.ApproveRequest true "Approved assessment"
// @Success 200 {object} domain.LearningPackage
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/approve [post]
func (h *MentorHandler) ApproveAssessment(c *fiber.Ctx) error {
	var req dto.ApproveRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateApproval(req.Topic, req.Assessment.Level, req.Assessment.Style); len(errs) > 0 {
		return errs
	}

	var pkg domain.LearningPackage
	err := h.sessions.With(sessionID(c), func(store *session.Store) error {
		pkg = h.service.ApproveAssessment(c.UserContext(), store, req.Topic, req.ToAssessment())
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(pkg)
}

// ResetSession godoc
// @Summary Reset a session
// @Description Clears topic, assessment and generated content
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/reset [post]
func (h *MentorHandler) ResetSession(c *fiber.Ctx) error {
	var resp dto.SessionResponse
	err := h.sessions.With(sessionID(c), func(store *session.Store) error {
		h.service.ResetSession(store)
		resp.Session = h.service.CurrentSession(store)
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// LearnTopic godoc
// @Summary One-shot learning package
// @Description Assesses, curates, explains and quizzes a topic without a session
// @Tags learning
// @Accept json
// @Produce json
// @Param request body dto.TopicRequest true "Topic"
// @Success 200 {object} domain.LearningPackage
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /learn [post]
func (h *MentorHandler) LearnTopic(c *fiber.Ctx) error {
	var req dto.TopicRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateTopic(req.Topic); len(errs) > 0 {
		return errs
	}
	return c.JSON(h.service.LearnTopic(c.UserContext(), req.Topic))
}

// GetTrendingTopics godoc
// @Summary Trending topics
// @Description Returns trending educational topics ranked by the learner's interests
// @Tags discovery
// @Produce json
// @Param limit query int false "Number of topics (default 5)"
// @Param age query int false "Learner age"
// @Param preferences query string false "Comma-separated interests"
// @Success 200 {object} dto.TrendingResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /trending [get]
func (h *MentorHandler) GetTrendingTopics(c *fiber.Ctx) error {
	limit, _ := c.Locals(middleware.LocalLimit).(int)
	age, _ := c.Locals(middleware.LocalAge).(int)
	prefs, _ := c.Locals(middleware.LocalPreferences).([]string)

	topics := h.service.GetTrendingTopics(c.UserContext(), limit, age, prefs)
	return c.JSON(dto.TrendingResponse{Topics: topics})
}

// GetRecommendedCourses godoc
// @Summary Recommended courses
// @Description Returns video courses for a topic or the learner's interests
// @Tags discovery
// @Produce json
// @Param topic query string false "Topic filter"
// @Param preferences query string false "Comma-separated interests"
// @Param limit query int false "Number of courses (default 4)"
// @Success 200 {object} dto.CoursesResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /courses [get]
func (h *MentorHandler) GetRecommendedCourses(c *fiber.Ctx) error {
	limit, _ := c.Locals(middleware.LocalLimit).(int)
	prefs, _ := c.Locals(middleware.LocalPreferences).([]string)

	courses := h.service.GetRecommendedCourses(c.UserContext(), prefs, c.Query("topic"), limit)
	return c.JSON(dto.CoursesResponse{Courses: courses})
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *MentorHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{Status: "ok", Cache: "disabled"}
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := h.cache.Ping(ctx); err != nil {
			logger.Get().Warn("Cache ping failed", zap.Error(err))
			resp.Cache = "unavailable"
		} else {
			resp.Cache = "ok"
		}
	}
	return c.JSON(resp)
}

func sessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.LocalSessionID).(string); ok {
		return id
	}
	return c.Params("id")
}
