package main

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/muhammadolammi/skillmatchworker/internal/database"
	"github.com/muhammadolammi/skillmatchworker/internal/matcher"
	"github.com/muhammadolammi/skillmatchworker/internal/recommend"
	"github.com/muhammadolammi/skillmatchworker/internal/resume"
	"github.com/muhammadolammi/skillmatchworker/internal/skills"
)

type R2Config struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

type WorkerConfig struct {
	DB           *database.Queries
	R2           *R2Config
	AwsConfig    *aws.Config
	RabbitConn   *amqp.Connection
	RABBITMQUrl  string
	Logger       *zap.Logger
	ResumeParser *resume.Parser
	Tagger       *skills.Tagger
	Matcher      *matcher.Matcher
}

// AnalysisResult is the per-resume outcome stored in analyses_results.
type AnalysisResult struct {
	ResumeFilename     string                 `json:"resume_filename"`
	CandidateEmail     string                 `json:"candidate_email"`
	OverallMatch       float64                `json:"overall_match"`
	MatchedSkills      []string               `json:"matched_skills"`
	PartialMatches     []string               `json:"partial_matches"`
	MissingSkills      []string               `json:"missing_skills"`
	SemanticSimilarity float64                `json:"semantic_similarity"`
	PrioritizedMissing []matcher.MissingSkill `json:"prioritized_missing"`
	Recommendations    []recommend.Bundle     `json:"recommendations"`
	ExperienceYears    int                    `json:"experience_years"`
	Extractor          string                 `json:"extractor"`
	// Error result entry
	IsErrorResult bool   `json:"is_error_result"`
	Error         string `json:"error,omitempty"`
}

type AnalysesResults struct {
	ID        uuid.UUID        `json:"id"`
	Results   []AnalysisResult `json:"results" db:"results"`
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
}
