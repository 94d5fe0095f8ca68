package domain

import "strings"

// Level is the learner's knowledge level for a topic
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// Style is the learner's preferred learning style
type Style string

const (
	StyleVisual      Style = "Visual"
	StyleAuditory    Style = "Auditory"
	StyleReading     Style = "Reading"
	StyleKinesthetic Style = "Kinesthetic"
)

var (
	knownLevels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
	knownStyles = []Style{StyleVisual, StyleAuditory, StyleReading, StyleKinesthetic}
)

// ParseLevel maps free text onto a known level, falling back to Beginner.
func ParseLevel(s string) Level {
	s = strings.TrimSpace(s)
	for _, l := range knownLevels {
		if strings.EqualFold(s, string(l)) {
			return l
		}
	}
	return LevelBeginner
}

// ParseStyle maps free text onto a known style, falling back to Visual.
func ParseStyle(s string) Style {
	s = strings.TrimSpace(s)
	for _, st := range knownStyles {
		if strings.EqualFold(s, string(st)) {
			return st
		}
	}
	return StyleVisual
}

// Assessment is the generated level/style estimate for a learner
type Assessment struct {
	Level Level `json:"level"`
	Style Style `json:"style"`
}

// DefaultAssessment is used whenever no assessment could be generated.
func DefaultAssessment() Assessment {
	return Assessment{Level: LevelBeginner, Style: StyleVisual}
}

// Normalize replaces out-of-domain values with the defaults.
func (a Assessment) Normalize() Assessment {
	return Assessment{Level: ParseLevel(string(a.Level)), Style: ParseStyle(string(a.Style))}
}

// Resource is a curated learning resource
type Resource struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Summary string `json:"summary"`
}

// QuizQuestion is one multiple-choice question. Options always has four entries.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

const (
	QuizOptionCount   = 4
	QuizQuestionCount = 5
)

// TrendingTopic lives for a single ranking pass; callers only ever see Topic.
type TrendingTopic struct {
	Topic           string `json:"topic"`
	Category        string `json:"category"`
	RelevanceScore  int    `json:"relevance_score"`
	PreferenceMatch bool   `json:"preference_match"`
}

// Course is a recommended video course
type Course struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Platform   string   `json:"platform"`
	Instructor string   `json:"instructor"`
	Duration   string   `json:"duration"`
	Rating     float64  `json:"rating"`
	Thumbnail  string   `json:"thumbnail"`
	URL        string   `json:"url"`
	Tags       []string `json:"tags"`
}

// Session is the in-flight learning session of one mentor
type Session struct {
	ID          string         `json:"id,omitempty"`
	Topic       string         `json:"topic"`
	Assessment  *Assessment    `json:"assessment,omitempty"`
	Resources   []Resource     `json:"resources"`
	Explanation string         `json:"explanation"`
	Quiz        []QuizQuestion `json:"quiz"`
}

// IsEmpty reports whether nothing has been recorded yet.
func (s Session) IsEmpty() bool {
	return s.Topic == "" && s.Assessment == nil && len(s.Resources) == 0 && s.Explanation == "" && len(s.Quiz) == 0
}

// Clone returns a deep copy so callers cannot mutate stored state.
func (s Session) Clone() Session {
	out := s
	if s.Assessment != nil {
		a := *s.Assessment
		out.Assessment = &a
	}
	if s.Resources != nil {
		out.Resources = append([]Resource(nil), s.Resources...)
	}
	if s.Quiz != nil {
		out.Quiz = make([]QuizQuestion, len(s.Quiz))
		for i, q := range s.Quiz {
			q.Options = append([]string(nil), q.Options...)
			out.Quiz[i] = q
		}
	}
	return out
}

// PendingAssessment is an assessment awaiting learner approval
type PendingAssessment struct {
	Topic      string     `json:"topic"`
	Assessment Assessment `json:"assessment"`
}

// LearningPackage is the full result of an approved assessment
type LearningPackage struct {
	Topic       string         `json:"topic"`
	Assessment  Assessment     `json:"assessment"`
	Resources   []Resource     `json:"resources"`
	Explanation string         `json:"explanation"`
	Quiz        []QuizQuestion `json:"quiz"`
}

// GenerationKind selects the prompt, validator and fallback of a generation step
type GenerationKind string

const (
	KindAssessment  GenerationKind = "assessment"
	KindResources   GenerationKind = "resources"
	KindExplanation GenerationKind = "explanation"
	KindQuiz        GenerationKind = "quiz"
	KindTopics      GenerationKind = "trending_topics"
	KindCourses     GenerationKind = "courses"
)
