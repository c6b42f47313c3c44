package main

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/careerforge/worker/internal/database"
	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
)

type R2Config struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

type WorkerConfig struct {
	DB          *database.Queries
	R2          *R2Config
	AwsConfig   *aws.Config
	RabbitConn  *amqp.Connection
	RABBITMQUrl string

	// One analysis runner per reviewer persona.
	AgentRunners        map[string]*runner.Runner
	AgentSessionService session.Service
	AgentName           string

	// Direct Gemini seams for the prompted generators, embeddings and
	// transcription.
	LLM         TextGenerator
	Transcriber Transcriber
	Embedder    Embedder
	Search      CompanySearcher
}

// SkillLists is the structured output of the skill extractor.
type SkillLists struct {
	PresentSkills []string `json:"present_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// ResumeAnalysis is the per-resume result entry. Failed resumes are recorded
// as error entries so one bad file never aborts the whole session.
type ResumeAnalysis struct {
	CandidateName     string      `json:"candidate_name"`
	MatchScore        int         `json:"match_score"`
	Analysis          string      `json:"analysis"`
	PresentSkills     []string    `json:"present_skills"`
	MissingSkills     []string    `json:"missing_skills"`
	MatchedKeywords   []string    `json:"matched_keywords"`
	SkillGraph        *SkillGraph `json:"skill_graph,omitempty"`
	CoverLetter       string      `json:"cover_letter,omitempty"`
	ColdEmail         string      `json:"cold_email,omitempty"`
	InterviewQuestion string      `json:"interview_question,omitempty"`
	LearningPlan      string      `json:"learning_plan,omitempty"`
	RewrittenSummary  string      `json:"rewritten_summary,omitempty"`
	CompanyContext    string      `json:"company_context,omitempty"`
	ReportKey         string      `json:"report_key,omitempty"`
	// Error result entry
	IsErrorResult bool   `json:"is_error_result"`
	Error         string `json:"error,omitempty"`
}

type AnalysesResults struct {
	ID        uuid.UUID        `json:"id"`
	Results   []ResumeAnalysis `json:"results" db:"results"`
	CreatedAt time.Time        `json:"created_at"`
	SessionID uuid.UUID        `json:"session_id"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type Session struct {
	ID             uuid.UUID `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	Name           string    `json:"name"`
	UserID         uuid.UUID `json:"user_id"`
	Status         string    `json:"status"`
	JobTitle       string    `json:"job_title"`
	JobDescription string    `json:"job_description"`
	CompanyName    string    `json:"company_name"`
	Persona        string    `json:"persona"`
	Recipient      string    `json:"recipient"`
}

// InterviewAnswer is the payload on the interview_answers queue: a recorded
// answer sitting in object storage, waiting to be transcribed and graded.
type InterviewAnswer struct {
	SessionID uuid.UUID `json:"session_id"`
	UserID    uuid.UUID `json:"user_id"`
	Question  string    `json:"question"`
	AudioKey  string    `json:"audio_key"`
	AudioMime string    `json:"audio_mime"`
}

// HistoryEntry is one (company, score) pair in the append-only scan log.
type HistoryEntry struct {
	Company string `json:"company"`
	Score   int    `json:"score"`
}

// LastN returns the most recent n entries in insertion order. The log itself
// is never truncated; only the display window is.
func LastN(history []HistoryEntry, n int) []HistoryEntry {
	if n <= 0 || len(history) == 0 {
		return nil
	}
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
