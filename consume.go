package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/careerforge/worker/internal/database"
	_ "github.com/lib/pq"
	"github.com/streadway/amqp"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

func errorResult(candidate, errMsg string) ResumeAnalysis {
	return ResumeAnalysis{
		CandidateName: candidate,
		IsErrorResult: true,
		Error:         errMsg,
	}
}

// runAnalysisAgent streams the persona analysis agent once and returns the
// final markdown response.
func runAnalysisAgent(ctx context.Context, workerConfig *WorkerConfig, agentSession *session.CreateResponse, persona, msg string) (string, error) {
	r, ok := workerConfig.AgentRunners[persona]
	if !ok {
		r = workerConfig.AgentRunners[defaultPersona]
	}

	stream := r.Run(ctx, agentSession.Session.UserID(), agentSession.Session.ID(), &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: msg},
		},
	}, agent.RunConfig{})

	var output string
	for event, err := range stream {
		if err != nil {
			return "", err
		}
		if event != nil && event.IsFinalResponse() && len(event.Content.Parts) > 0 {
			output = event.Content.Parts[0].Text
		}
	}

	if output == "" {
		return "", fmt.Errorf("empty agent response")
	}
	return output, nil
}

// companyContext tries the live web first, then falls back to the model's
// own knowledge. Empty search results and search errors are handled the
// same way.
func companyContext(ctx context.Context, workerConfig *WorkerConfig, companyName string) string {
	if companyName == "" {
		return ""
	}
	webData, err := workerConfig.Search.GetCompanyInfo(ctx, companyName)
	if err != nil {
		log.Printf("web search failed for %q: %v, using model knowledge", companyName, err)
	}
	if webData != "" {
		return webData
	}
	insight, err := GenerateCompanyInsight(ctx, workerConfig.LLM, companyName)
	if err != nil {
		log.Printf("company insight fallback failed for %q: %v", companyName, err)
		return ""
	}
	return insight
}

// analyzeResume runs the full matching pipeline for one resume: text
// extraction, knowledge base, match score, persona analysis and every
// generated artifact. Generator failures after the core analysis degrade to
// missing artifacts rather than an error entry.
func analyzeResume(ctx context.Context, workerConfig *WorkerConfig, currentSession Session, agentSession *session.CreateResponse, resume database.Resume, companyInfo string) ResumeAnalysis {
	awsClient := s3.NewFromConfig(*workerConfig.AwsConfig, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", workerConfig.R2.AccountID))
	})

	// Object downloads are retried: network failures are transient.
	fileBytes, err := retry(3, func() ([]byte, error) {
		return DownloadFromR2(ctx, awsClient, workerConfig.R2.Bucket, resume.ObjectKey)
	})
	if err != nil {
		log.Printf("failed to download %s after retries: %v", resume.ObjectKey, err)
		return errorResult(resume.CandidateName, fmt.Sprintf("file download error: %v", err))
	}

	resumeText, err := ExtractResumeText(resume.Mime, fileBytes)
	if err != nil {
		log.Printf("text extraction failed for %s: %v", resume.ObjectKey, err)
		return errorResult(resume.CandidateName, fmt.Sprintf("text extraction error: %v", err))
	}

	kb, err := BuildKnowledgeBase(ctx, workerConfig.Embedder, resumeText)
	if err != nil {
		return errorResult(resume.CandidateName, fmt.Sprintf("knowledge base error: %v", err))
	}

	score, err := MatchScore(ctx, workerConfig.Embedder, kb, currentSession.JobDescription)
	if err != nil {
		return errorResult(resume.CandidateName, fmt.Sprintf("similarity error: %v", err))
	}

	msg := fmt.Sprintf(
		"Job Title:\n%s\n\nJob Description:\n%s\n\nResume:\n%s",
		currentSession.JobTitle,
		currentSession.JobDescription,
		resumeText,
	)

	// The agent stream gets its own retry budget for transient failures.
	analysis, err := retry(2, func() (string, error) {
		return runAnalysisAgent(ctx, workerConfig, agentSession, currentSession.Persona, msg)
	})
	if err != nil {
		log.Printf("analysis agent failed for %s after retries: %v", resume.ObjectKey, err)
		return errorResult(resume.CandidateName, fmt.Sprintf("agent stream error: %v", err))
	}

	result := ResumeAnalysis{
		CandidateName:  resume.CandidateName,
		MatchScore:     score,
		Analysis:       analysis,
		CompanyContext: companyInfo,
	}

	skills, err := ExtractSkills(ctx, workerConfig.LLM, resumeText, currentSession.JobDescription)
	if err != nil {
		// Parse failures are reported distinctly but don't void the analysis.
		log.Printf("skill extraction failed for %s: %v", resume.ObjectKey, err)
		result.Error = err.Error()
	} else {
		result.PresentSkills = skills.PresentSkills
		result.MissingSkills = skills.MissingSkills
		result.SkillGraph = BuildSkillGraph(skills.PresentSkills, skills.MissingSkills)
	}

	if keywords, err := ExtractMatchedKeywords(ctx, workerConfig.LLM, resumeText, currentSession.JobDescription); err != nil {
		log.Printf("keyword extraction failed for %s: %v", resume.ObjectKey, err)
	} else {
		result.MatchedKeywords = keywords
	}

	if letter, err := GenerateCoverLetter(ctx, workerConfig.LLM, resumeText, currentSession.JobDescription); err != nil {
		log.Printf("cover letter failed for %s: %v", resume.ObjectKey, err)
	} else {
		result.CoverLetter = letter
	}

	if email, err := GenerateColdEmail(ctx, workerConfig.LLM, resumeText, currentSession.JobDescription, companyInfo, currentSession.Recipient); err != nil {
		log.Printf("cold email failed for %s: %v", resume.ObjectKey, err)
	} else {
		result.ColdEmail = email
	}

	if question, err := GenerateInterviewQuestion(ctx, workerConfig.LLM, currentSession.JobDescription, result.MissingSkills); err != nil {
		log.Printf("interview question failed for %s: %v", resume.ObjectKey, err)
	} else {
		result.InterviewQuestion = question
	}

	if plan, err := GenerateLearningPlan(ctx, workerConfig.LLM, result.MissingSkills); err != nil {
		log.Printf("learning plan failed for %s: %v", resume.ObjectKey, err)
	} else {
		result.LearningPlan = plan
	}

	if summary, err := RewriteSummary(ctx, workerConfig.LLM, resumeText, currentSession.JobDescription, currentSession.CompanyName); err != nil {
		log.Printf("summary rewrite failed for %s: %v", resume.ObjectKey, err)
	} else {
		result.RewrittenSummary = summary
	}

	reportBytes, err := CreateReport(resume.CandidateName, score, analysis, result.MissingSkills)
	if err != nil {
		log.Printf("report rendering failed for %s: %v", resume.ObjectKey, err)
		return result
	}
	reportKey := fmt.Sprintf("reports/%s/%s.pdf", currentSession.ID, resume.ID)
	if err := UploadToR2(ctx, awsClient, workerConfig.R2.Bucket, reportKey, "application/pdf", reportBytes); err != nil {
		log.Printf("report upload failed for %s: %v", resume.ObjectKey, err)
		return result
	}
	result.ReportKey = reportKey

	return result
}

// processSession runs the pipeline for every resume in a session, persists
// the combined results and appends the session's score to the scan history.
func processSession(currentSession Session, workerConfig *WorkerConfig) error {
	ctx := context.Background()

	resumes, err := workerConfig.DB.GetResumesBySession(ctx, currentSession.ID)
	if err != nil {
		return fmt.Errorf("error getting resumes for session: %v, err: %v", currentSession.ID, err)
	}

	results := &AnalysesResults{
		SessionID: currentSession.ID,
	}

	agentSession, err := workerConfig.AgentSessionService.Create(ctx, &session.CreateRequest{
		AppName:   workerConfig.AgentName,
		UserID:    currentSession.UserID.String(),
		SessionID: currentSession.ID.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to create agent session: %w", err)
	}

	// One company lookup per session, shared by every resume.
	companyInfo := companyContext(ctx, workerConfig, currentSession.CompanyName)

	bestScore := 0
	for _, resume := range resumes {
		result := analyzeResume(ctx, workerConfig, currentSession, agentSession, resume, companyInfo)
		if !result.IsErrorResult && result.MatchScore > bestScore {
			bestScore = result.MatchScore
		}
		results.Results = append(results.Results, result)
	}

	log.Println("session id: " + agentSession.Session.ID() + " analyzed")
	err = workerConfig.AgentSessionService.Delete(ctx, &session.DeleteRequest{
		AppName:   agentSession.Session.AppName(),
		UserID:    agentSession.Session.UserID(),
		SessionID: agentSession.Session.ID(),
	})
	if err != nil {
		return fmt.Errorf("failed to delete agent session: %v", err)
	}

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
		return fmt.Errorf("failed to save analysis results after retries: %w", err)
	}

	if err := workerConfig.DB.UpdateSessionScore(ctx, database.UpdateSessionScoreParams{
		MatchScore: int32(bestScore),
		ID:         currentSession.ID,
	}); err != nil {
		log.Printf("failed to store session score: %v", err)
	}

	// History is append-only; the display window is trimmed at read time.
	company := currentSession.CompanyName
	if company == "" {
		company = "Unknown"
	}
	if err := workerConfig.DB.CreateHistoryEntry(ctx, database.CreateHistoryEntryParams{
		UserID:  currentSession.UserID,
		Company: company,
		Score:   int32(bestScore),
	}); err != nil {
		log.Printf("failed to append history entry: %v", err)
	}

	return nil
}

// recentScans fetches the last-3 display window of the user's scan history.
func recentScans(ctx context.Context, workerConfig *WorkerConfig, currentSession Session) []HistoryEntry {
	rows, err := workerConfig.DB.GetRecentHistory(ctx, database.GetRecentHistoryParams{
		UserID: currentSession.UserID,
		Limit:  3,
	})
	if err != nil {
		log.Printf("failed to load history: %v", err)
		return nil
	}
	entries := make([]HistoryEntry, 0, len(rows))
	// Rows arrive newest-first; flip to insertion order for display.
	for i := len(rows) - 1; i >= 0; i-- {
		entries = append(entries, HistoryEntry{Company: rows[i].Company, Score: int(rows[i].Score)})
	}
	return entries
}

func worker(id int, workerConfig *WorkerConfig, wg *sync.WaitGroup) {
	defer wg.Done()
	conn, err := amqp.Dial(workerConfig.RABBITMQUrl)
	if err != nil {
		log.Fatal("error dialling rabbitmq: " + err.Error())
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("error connecting to rabbitmq channel: " + err.Error())
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
		log.Fatalf("Failed to declare queue: %v", err)
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
		log.Fatal("error consuming rabbitmq message: " + err.Error())
	}

	for msg := range msgs {
		currentSession := Session{}
		err = json.Unmarshal(msg.Body, &currentSession)
		if err != nil {
			log.Printf("error unmarshalling message body. err: %v", err)
			workerConfig.failSession(currentSession)
			continue
		}
		log.Printf("Worker %d processing session. session_id: %s", id+1, currentSession.ID)

		workerConfig.publishStatus(currentSession, "processing", "analysis started", nil)
		workerConfig.DB.UpdateSessionStatus(context.Background(), database.UpdateSessionStatusParams{
			Status: "processing",
			ID:     currentSession.ID,
		})

		err = processSession(currentSession, workerConfig)
		if err != nil {
			log.Printf("error analyzing session_id: %v. err: %v", currentSession.ID, err)
			workerConfig.failSession(currentSession)
			continue
		}

		workerConfig.DB.UpdateSessionStatus(context.Background(), database.UpdateSessionStatusParams{
			Status: "completed",
			ID:     currentSession.ID,
		})
		recent := recentScans(context.Background(), workerConfig, currentSession)
		workerConfig.publishStatus(currentSession, "completed", "analysis completed", recent)
	}
}

func (workerConfig *WorkerConfig) failSession(currentSession Session) {
	workerConfig.DB.UpdateSessionStatus(context.Background(), database.UpdateSessionStatusParams{
		Status: "failed",
		ID:     currentSession.ID,
	})
	workerConfig.publishStatus(currentSession, "failed", "analysis failed", nil)
}

func (workerConfig *WorkerConfig) publishStatus(currentSession Session, status, message string, recent []HistoryEntry) {
	update := map[string]any{
		"session_id": currentSession.ID,
		"status":     status,
		"message":    message,
		"timestamp":  time.Now(),
	}
	if recent != nil {
		update["recent_scans"] = recent
	}
	if err := publishSessionUpdate(workerConfig.RabbitConn, currentSession.ID.String(), update); err != nil {
		log.Println("failed to publish update:", err)
	}
}

func publishSessionUpdate(rabbitConn *amqp.Connection, sessionID string, update map[string]any) error {
	ch, err := rabbitConn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	body, _ := json.Marshal(update)
	routingKey := fmt.Sprintf("session.%s", sessionID)

	return ch.Publish(
		"session_updates", // exchange
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// StartConsumerWorkerPool runs numWorkers session consumers plus one
// interview-answer consumer and blocks until they exit.
func (workerConfig *WorkerConfig) StartConsumerWorkerPool(numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers + 1)

	for i := range numWorkers {
		log.Println("worker id ", i+1, "started")
		go worker(i, workerConfig, &wg)
	}
	go interviewWorker(workerConfig, &wg)
	wg.Wait()
}
