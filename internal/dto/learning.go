package dto

import "leembo/internal/domain"

// CreateSessionResponse is returned when a new mentor session is opened
// @Description New session identifier
type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

// TopicRequest carries the topic to assess or learn
// @Description Request body naming a learning topic
type TopicRequest struct {
	Topic string `json:"topic"`
}

// AssessmentInput is the learner-approved (possibly adjusted) assessment
type AssessmentInput struct {
	Level string `json:"level"`
	Style string `json:"style"`
}

// ApproveRequest confirms an assessment and starts content generation
// @Description Request body for approving an assessment
type ApproveRequest struct {
	Topic      string          `json:"topic"`
	Assessment AssessmentInput `json:"assessment"`
}

// ToAssessment converts the approved input into a normalized domain assessment.
func (r ApproveRequest) ToAssessment() domain.Assessment {
	return domain.Assessment{
		Level: domain.ParseLevel(r.Assessment.Level),
		Style: domain.ParseStyle(r.Assessment.Style),
	}
}

// SessionResponse is the snapshot of a session
// @Description Current session state
type SessionResponse struct {
	Session domain.Session            `json:"session"`
	Pending *domain.PendingAssessment `json:"pending,omitempty"`
}

// TrendingResponse lists trending topic names
// @Description Trending topics in rank order
type TrendingResponse struct {
	Topics []string `json:"topics"`
}

// CoursesResponse lists recommended courses
// @Description Recommended video courses
type CoursesResponse struct {
	Courses []domain.Course `json:"courses"`
}

// HealthResponse reports liveness and collaborator reachability
type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}
