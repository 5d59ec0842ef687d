package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures aggregate learner progress at a point in time.
type SnapshotData struct {
	Version  int               `json:"version"`
	Progress *ProgressSnapshot `json:"progress,omitempty"`
	Gems     *GemsSnapshot     `json:"gems,omitempty"`
}

// ProgressSnapshot is the learner's running totals across sessions.
type ProgressSnapshot struct {
	TotalXP           int            `json:"total_xp"`
	SessionsCompleted int            `json:"sessions_completed"`
	SessionsFailed    int            `json:"sessions_failed"`
	DayStreak         int            `json:"day_streak"`
	BestDayStreak     int            `json:"best_day_streak"`
	LastPracticeDay   string         `json:"last_practice_day"` // YYYY-MM-DD, local time
	ByLanguage        map[string]int `json:"by_language,omitempty"`
}

// GemsSnapshot is the learner's gem collection totals.
type GemsSnapshot struct {
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	SessionID string
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// SessionEventData captures a session start or end.
type SessionEventData struct {
	SessionID     string
	Action        string // "start" or "end"
	LessonTitle   string
	Language      string
	ExerciseCount int

	// End only.
	Phase        string
	CorrectCount int
	TotalCount   int
	Accuracy     int
	XP           int
	HintsUsed    int
	LessonScore  int
	DurationSecs int
}

// AnswerEventData captures one graded submission.
type AnswerEventData struct {
	SessionID      string
	ExerciseID     string
	ExerciseType   string
	Language       string
	ExpectedAnswer string
	LearnerAnswer  string
	Correct        bool
	Score          int
	Attempt        int
	HintsUsed      int
	Mistake        string
}

// HintEventData captures one hint shown.
type HintEventData struct {
	SessionID     string
	ExerciseID    string
	ExerciseType  string
	HintText      string
	HintsUsed     int
	ExerciseHints int
}

// LessonEventData captures a lesson that was generated or loaded.
type LessonEventData struct {
	LessonTitle   string
	Language      string
	Topic         string
	Difficulty    string
	ExerciseCount int
	Fallback      bool
	Model         string
	Document      map[string]any
}

// GemEventData captures a gem award.
type GemEventData struct {
	GemType     string
	Rarity      string
	Language    string
	LessonTitle *string
	SessionID   string
	Reason      string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// SessionSummaryRecord is a finished session as read back for history.
type SessionSummaryRecord struct {
	SessionID    string
	Timestamp    time.Time
	LessonTitle  string
	Language     string
	Phase        string
	CorrectCount int
	TotalCount   int
	Accuracy     int
	XP           int
	HintsUsed    int
	LessonScore  int
	DurationSecs int
	GemCount     int
}

// AnswerEventRecord is a persisted answer.
type AnswerEventRecord struct {
	AnswerEventData
	Sequence  int64
	Timestamp time.Time
}

// LessonRecord is a persisted lesson.
type LessonRecord struct {
	LessonEventData
	ID        int
	Sequence  int64
	Timestamp time.Time
}

// GemEventRecord is a persisted gem award.
type GemEventRecord struct {
	GemType     string
	Rarity      string
	Language    string
	LessonTitle *string
	SessionID   string
	Reason      string
	Sequence    int64
	Timestamp   time.Time
}

// LLMRequestEventRecord is a persisted LLM call.
type LLMRequestEventRecord struct {
	LLMRequestEventData
	ID        int
	Sequence  int64
	Timestamp time.Time
}

// LLMUsageStats aggregates LLM calls by purpose or model.
type LLMUsageStats struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// TypeAccuracy aggregates answers for one exercise type.
type TypeAccuracy struct {
	ExerciseType string
	Total        int
	Correct      int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendHintEvent(ctx context.Context, data HintEventData) error
	AppendLessonEvent(ctx context.Context, data LessonEventData) (int, error)
	AppendGemEvent(ctx context.Context, data GemEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QuerySessionSummaries returns finished sessions, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// QueryAnswers returns the answers of one session in order.
	QueryAnswers(ctx context.Context, sessionID string) ([]AnswerEventRecord, error)

	// HintCounts counts hints shown by exercise type.
	HintCounts(ctx context.Context, opts QueryOpts) (map[string]int, error)

	// MistakeCounts counts wrong answers by mistake category.
	MistakeCounts(ctx context.Context, opts QueryOpts) (map[string]int, error)

	// AccuracyByType aggregates answers per exercise type.
	AccuracyByType(ctx context.Context) ([]TypeAccuracy, error)

	QueryLessons(ctx context.Context, opts QueryOpts) ([]LessonRecord, error)
	GetLesson(ctx context.Context, id int) (*LessonRecord, error)

	QueryGemEvents(ctx context.Context, opts QueryOpts) ([]GemEventRecord, error)
	GemCounts(ctx context.Context) (map[string]int, int, error)

	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)
	LLMUsageByModel(ctx context.Context) ([]LLMUsageStats, error)
}
