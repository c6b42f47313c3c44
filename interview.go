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
	"github.com/streadway/amqp"
)

// interviewWorker consumes recorded interview answers: the audio is pulled
// from object storage, transcribed and graded, and the feedback published on
// the session's update routing key.
func interviewWorker(workerConfig *WorkerConfig, wg *sync.WaitGroup) {
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
		"interview_answers", // queue name
		true,                // durable
		false,               // auto-delete when unused
		false,               // exclusive
		false,               // no-wait
		nil,                 // arguments
	)
	if err != nil {
		log.Fatalf("Failed to declare queue: %v", err)
	}

	msgs, err := ch.Consume(
		"interview_answers", // queue name
		"",                  // consumer tag
		true,                // auto-ack
		false,               // exclusive
		false,               // no-local
		false,               // no-wait
		nil,                 // arguments
	)
	if err != nil {
		log.Fatal("error consuming rabbitmq message: " + err.Error())
	}

	log.Println("interview worker started")
	for msg := range msgs {
		answer := InterviewAnswer{}
		if err := json.Unmarshal(msg.Body, &answer); err != nil {
			log.Printf("error unmarshalling interview answer. err: %v", err)
			continue
		}

		transcript, feedback, err := gradeInterviewAnswer(context.Background(), workerConfig, answer)
		update := map[string]any{
			"session_id": answer.SessionID,
			"kind":       "interview_feedback",
			"timestamp":  time.Now(),
		}
		if err != nil {
			log.Printf("interview grading failed for session %s: %v", answer.SessionID, err)
			update["error"] = err.Error()
		} else {
			update["transcript"] = transcript
			update["feedback"] = feedback
		}
		if err := publishSessionUpdate(workerConfig.RabbitConn, answer.SessionID.String(), update); err != nil {
			log.Println("failed to publish interview feedback:", err)
		}
	}
}

func gradeInterviewAnswer(ctx context.Context, workerConfig *WorkerConfig, answer InterviewAnswer) (transcript, feedback string, err error) {
	awsClient := s3.NewFromConfig(*workerConfig.AwsConfig, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", workerConfig.R2.AccountID))
	})

	audio, err := retry(3, func() ([]byte, error) {
		return DownloadFromR2(ctx, awsClient, workerConfig.R2.Bucket, answer.AudioKey)
	})
	if err != nil {
		return "", "", fmt.Errorf("audio download error: %w", err)
	}

	transcript, err = workerConfig.Transcriber.Transcribe(ctx, audio, answer.AudioMime)
	if err != nil {
		return "", "", fmt.Errorf("transcription error: %w", err)
	}

	feedback, err = EvaluateInterviewAnswer(ctx, workerConfig.LLM, answer.Question, transcript)
	if err != nil {
		return transcript, "", err
	}
	return transcript, feedback, nil
}
