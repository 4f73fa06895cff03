package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	_ "github.com/lib/pq"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/muhammadolammi/skillmatchworker/internal/database"
	"github.com/muhammadolammi/skillmatchworker/internal/extract"
	"github.com/muhammadolammi/skillmatchworker/internal/jobdesc"
	"github.com/muhammadolammi/skillmatchworker/internal/recommend"
)

// maxRecommendations caps how many missing skills get resource bundles per
// resume; the prioritized list is already sorted, the top entries matter most.
const maxRecommendations = 5

// retry retries a function up to `attempts` times with exponential backoff
func retry[T any](attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		wait := time.Duration(500*(i+1)) * time.Millisecond
		time.Sleep(wait)
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

func errorResult(filename, errorMsg string) AnalysisResult {
	return AnalysisResult{
		ResumeFilename: filename,
		IsErrorResult:  true,
		Error:          errorMsg,
	}
}

// analyzeSession runs the matching pipeline for every resume in a session:
// download, text extraction, skill tagging, matching against the session's
// job description, recommendations for the top gaps, and DB persistence.
// Per-resume failures become error entries in the results; only session-level
// faults (DB, queue) fail the whole call.
func analyzeSession(currentSession Session, workerConfig *WorkerConfig) error {
	ctx := context.Background()
	log := workerConfig.Logger

	resumes, err := workerConfig.DB.GetResumesBySession(ctx, currentSession.ID)
	if err != nil {
		return fmt.Errorf("error getting resumes for session %v: %w", currentSession.ID, err)
	}

	// Parse the job description once per session; every resume matches
	// against the same target skill set.
	jobText := strings.TrimSpace(currentSession.JobTitle + "\n" + currentSession.JobDescription)
	jobProfile := jobdesc.Parse(jobText, workerConfig.Tagger)
	log.Debug("job description parsed",
		zap.String("session_id", currentSession.ID.String()),
		zap.Int("target_skills", len(jobProfile.Skills)),
		zap.Int("required", len(jobProfile.Requirements.Required)),
		zap.Int("preferred", len(jobProfile.Requirements.Preferred)))

	results := &AnalysesResults{
		SessionID: currentSession.ID,
	}

	awsClient := s3.NewFromConfig(*workerConfig.AwsConfig, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", workerConfig.R2.AccountID))
	})

	for _, currentResume := range resumes {
		// Retry downloading the file, network failures are transient.
		fileBytes, err := retry(3, func() ([]byte, error) {
			return DownloadFromR2(ctx, awsClient, workerConfig.R2.Bucket, currentResume.ObjectKey)
		})
		if err != nil {
			log.Warn("failed to download resume after retries",
				zap.String("object_key", currentResume.ObjectKey), zap.Error(err))
			results.Results = append(results.Results,
				errorResult(currentResume.OriginalFilename, fmt.Sprintf("file download error: %v", err)))
			continue
		}

		kind, err := extract.KindFromMIME(currentResume.Mime)
		if err != nil {
			log.Warn("unsupported resume mime type",
				zap.String("object_key", currentResume.ObjectKey),
				zap.String("mime", currentResume.Mime))
			results.Results = append(results.Results,
				errorResult(currentResume.OriginalFilename, err.Error()))
			continue
		}

		doc, err := workerConfig.ResumeParser.Parse(ctx, fileBytes, kind)
		if err != nil {
			log.Warn("text extraction failed",
				zap.String("object_key", currentResume.ObjectKey), zap.Error(err))
			results.Results = append(results.Results,
				errorResult(currentResume.OriginalFilename, userFacingError(err)))
			continue
		}

		matchResult, err := workerConfig.Matcher.Match(ctx, doc.Skills, jobProfile.Skills, jobText)
		if err != nil {
			log.Error("skill matching failed",
				zap.String("object_key", currentResume.ObjectKey), zap.Error(err))
			results.Results = append(results.Results,
				errorResult(currentResume.OriginalFilename, userFacingError(err)))
			continue
		}

		recommendations := make([]recommend.Bundle, 0, maxRecommendations)
		for i, missing := range matchResult.PrioritizedMissing {
			if i == maxRecommendations {
				break
			}
			recommendations = append(recommendations, recommend.Lookup(missing.Skill))
		}

		candidateEmail := ""
		if emails := doc.Metadata.Contact.Emails; len(emails) > 0 {
			candidateEmail = emails[0]
		}

		results.Results = append(results.Results, AnalysisResult{
			ResumeFilename:     currentResume.OriginalFilename,
			CandidateEmail:     candidateEmail,
			OverallMatch:       matchResult.OverallMatch,
			MatchedSkills:      matchResult.MatchedSkills,
			PartialMatches:     matchResult.PartialMatches,
			MissingSkills:      matchResult.MissingSkills,
			SemanticSimilarity: matchResult.SemanticSimilarity,
			PrioritizedMissing: matchResult.PrioritizedMissing,
			Recommendations:    recommendations,
			ExperienceYears:    doc.Metadata.ExperienceYears,
			Extractor:          doc.Metadata.Extractor,
		})
		log.Info("resume analyzed",
			zap.String("session_id", currentSession.ID.String()),
			zap.String("resume", currentResume.OriginalFilename),
			zap.Float64("overall_match", matchResult.OverallMatch),
			zap.String("extractor", doc.Metadata.Extractor))
	}

	// save final result to db
	resultsJSON, err := json.Marshal(results.Results)
	if err != nil {
		return fmt.Errorf("failed to marshal analyses results: %w", err)
	}

	_, err = retry(3, func() (any, error) {
		return nil, workerConfig.DB.CreateOrUpdateAnalysesResults(ctx, database.CreateOrUpdateAnalysesResultsParams{
			Results:   resultsJSON,
			SessionID: results.SessionID,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to save analyses results after retries: %w", err)
	}

	return nil
}

func worker(id int, workerConfig *WorkerConfig, wg *sync.WaitGroup) {
	defer wg.Done()
	log := workerConfig.Logger.With(zap.Int("worker_id", id+1))

	conn, err := amqp.Dial(workerConfig.RABBITMQUrl)
	if err != nil {
		log.Fatal("error dialling rabbitmq", zap.Error(err))
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("error connecting to rabbitmq channel", zap.Error(err))
	}
	defer ch.Close()
	_, err = ch.QueueDeclare(
		"sessions", // queue name
		true,       // durable (survives broker restarts)
		false,      // auto-delete when unused
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		log.Fatal("failed to declare queue", zap.Error(err))
	}

	msgs, err := ch.Consume(
		"sessions", // queue name
		"",         // consumer tag
		true,       // auto-ack
		false,      // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		log.Fatal("error consuming rabbitmq message", zap.Error(err))
	}

	for msg := range msgs {
		session := Session{}
		err = json.Unmarshal(msg.Body, &session)
		if err != nil {
			log.Error("error unmarshalling message body", zap.Error(err))
			markSessionFailed(workerConfig, session, log)
			continue
		}
		log.Info("processing session", zap.String("session_id", session.ID.String()))

		update := map[string]any{
			"session_id": session.ID,
			"status":     "processing",
			"message":    "analysis started",
			"timestamp":  time.Now(),
		}
		if err := publishSessionUpdate(workerConfig.RabbitConn, session.ID.String(), update); err != nil {
			log.Warn("failed to publish update", zap.Error(err))
		}
		workerConfig.DB.UpdateSessionStatus(context.Background(), database.UpdateSessionStatusParams{
			Status: "processing",
			ID:     session.ID,
		})

		if err := analyzeSession(session, workerConfig); err != nil {
			log.Error("error analyzing session",
				zap.String("session_id", session.ID.String()), zap.Error(err))
			markSessionFailed(workerConfig, session, log)
			continue
		}

		workerConfig.DB.UpdateSessionStatus(context.Background(), database.UpdateSessionStatusParams{
			Status: "completed",
			ID:     session.ID,
		})
		update = map[string]any{
			"session_id": session.ID,
			"status":     "completed",
			"message":    "analysis completed",
			"timestamp":  time.Now(),
		}
		if err := publishSessionUpdate(workerConfig.RabbitConn, session.ID.String(), update); err != nil {
			log.Warn("failed to publish update", zap.Error(err))
		}
	}
}

func markSessionFailed(workerConfig *WorkerConfig, session Session, log *zap.Logger) {
	workerConfig.DB.UpdateSessionStatus(context.Background(), database.UpdateSessionStatusParams{
		Status: "failed",
		ID:     session.ID,
	})
	update := map[string]any{
		"session_id": session.ID,
		"status":     "failed",
		"message":    "analysis failed",
		"timestamp":  time.Now(),
	}
	if err := publishSessionUpdate(workerConfig.RabbitConn, session.ID.String(), update); err != nil {
		log.Warn("failed to publish update", zap.Error(err))
	}
}

func (workerConfig *WorkerConfig) StartConsumerWorkerPool(numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := range numWorkers {
		workerConfig.Logger.Info("worker started", zap.Int("worker_id", i+1))
		go worker(i, workerConfig, &wg)
	}
	wg.Wait() // block until all workers finish
}
