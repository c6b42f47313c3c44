package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/careerforge/worker/internal/database"
	"github.com/joho/godotenv"
	"github.com/streadway/amqp"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

func main() {
	_ = godotenv.Load()
	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		log.Fatal("empty DB_URL in environment")
	}

	rabbitmqUrl := os.Getenv("RABBITMQ_URL")
	if rabbitmqUrl == "" {
		log.Fatal("empty RABBITMQ_URL in env")
	}

	db, err := sql.Open("postgres", dbUrl)
	if err != nil {
		log.Fatal("error opening db. err: ", err)
	}

	dbqueries := database.New(db)

	r2AccountId := os.Getenv("R2_ACCCOUNT_ID")
	if r2AccountId == "" {
		log.Fatal("empty R2_ACCCOUNT_ID in environment")
	}
	r2Bucket := os.Getenv("R2_BUCKET")
	if r2Bucket == "" {
		log.Fatal("empty R2_BUCKET in environment")
	}
	r2SecretKey := os.Getenv("R2_SECRET_KEY")
	if r2SecretKey == "" {
		log.Fatal("empty R2_SECRET_KEY in environment")
	}
	r2AccessKey := os.Getenv("R2_ACCESS_KEY")
	if r2AccessKey == "" {
		log.Fatal("empty R2_ACCESS_KEY in environment")
	}
	r2Config := R2Config{
		AccountID: r2AccountId,
		AccessKey: r2AccessKey,
		SecretKey: r2SecretKey,
		Bucket:    r2Bucket,
	}
	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r2Config.AccessKey, r2Config.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		log.Fatal("error creating aws config", err)
	}

	googleApiKey := os.Getenv("GOOGLE_API_KEY")
	if googleApiKey == "" {
		log.Fatal("empty GOOGLE_API_KEY in env")
	}

	model := os.Getenv("GEMINI_MODEL")
	temperature := float32(0.1)
	if t := os.Getenv("LLM_TEMPERATURE"); t != "" {
		parsed, err := strconv.ParseFloat(t, 32)
		if err != nil {
			log.Fatal("invalid LLM_TEMPERATURE: ", err)
		}
		temperature = float32(parsed)
	}

	genClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: googleApiKey,
	})
	if err != nil {
		log.Fatalf("failed to create genai client: %v", err)
	}

	// One analysis agent + runner per reviewer persona.
	inMemoryService := session.InMemoryService()
	agentName := "resume analyzer"
	runners := make(map[string]*runner.Runner, len(personaInstructions))
	for persona := range personaInstructions {
		analyzer, err := GetAnalysisAgent(googleApiKey, fmt.Sprintf("%s (%s)", agentName, persona), persona)
		if err != nil {
			log.Fatalf("failed to create agent: %v", err)
		}
		r, err := runner.New(runner.Config{
			AppName:        agentName,
			Agent:          analyzer,
			SessionService: inMemoryService,
		})
		if err != nil {
			log.Fatalf("failed to create runner: %v", err)
		}
		runners[persona] = r
	}

	conn, err := amqp.Dial(rabbitmqUrl)
	if err != nil {
		log.Fatalf("error connecting to RabbitMQ. err:  %v", err)
	}

	llm := NewGeminiGenerator(genClient, model, temperature)
	workerConfig := WorkerConfig{
		AgentName:           agentName,
		AgentRunners:        runners,
		AgentSessionService: inMemoryService,
		DB:                  dbqueries,
		R2:                  &r2Config,
		AwsConfig:           &awsConfig,
		RABBITMQUrl:         rabbitmqUrl,
		RabbitConn:          conn,
		LLM:                 llm,
		Transcriber:         llm,
		Embedder:            NewGeminiEmbedder(genClient, os.Getenv("EMBEDDING_MODEL")),
		Search:              NewDDGSearcher(),
	}

	fmt.Println("Starting 3 workers consumer pool ")
	workerConfig.StartConsumerWorkerPool(3)
}
