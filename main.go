package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/joho/godotenv"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/muhammadolammi/skillmatchworker/internal/database"
	"github.com/muhammadolammi/skillmatchworker/internal/extract"
	"github.com/muhammadolammi/skillmatchworker/internal/matcher"
	"github.com/muhammadolammi/skillmatchworker/internal/resume"
	"github.com/muhammadolammi/skillmatchworker/internal/skills"
)

func newLogger() (*zap.Logger, error) {
	if os.Getenv("DEBUG") != "" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	_ = godotenv.Load()

	logger, err := newLogger()
	if err != nil {
		log.Fatal("error building logger: ", err)
	}
	defer logger.Sync()

	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		logger.Fatal("empty DB_URL in environment")
	}

	rabbitmqUrl := os.Getenv("RABBITMQ_URL")
	if rabbitmqUrl == "" {
		logger.Fatal("empty RABBITMQ_URL in environment")
	}

	db, err := sql.Open("postgres", dbUrl)
	if err != nil {
		logger.Fatal("error opening db", zap.Error(err))
	}

	dbqueries := database.New(db)

	r2AccountId := os.Getenv("R2_ACCCOUNT_ID")
	if r2AccountId == "" {
		logger.Fatal("empty R2_ACCCOUNT_ID in environment")
	}
	r2Bucket := os.Getenv("R2_BUCKET")
	if r2Bucket == "" {
		logger.Fatal("empty R2_BUCKET in environment")
	}
	r2SecretKey := os.Getenv("R2_SECRET_KEY")
	if r2SecretKey == "" {
		logger.Fatal("empty R2_SECRET_KEY in environment")
	}
	r2AccessKey := os.Getenv("R2_ACCESS_KEY")
	if r2AccessKey == "" {
		logger.Fatal("empty R2_ACCESS_KEY in environment")
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
		logger.Fatal("error creating aws config", zap.Error(err))
	}

	// The vocabulary and synonym tables are built once here and shared
	// read-only across all workers.
	vocab := skills.DefaultVocabulary()
	tagger := skills.NewTagger(vocab, nil)
	extractor := extract.New(logger)
	resumeParser := resume.NewParser(extractor, tagger, logger)

	// Semantic similarity is optional: without an API key the matcher runs
	// with string matching only.
	var embedder matcher.Embedder
	if apiKey := os.Getenv("GOOGLE_API_KEY"); apiKey != "" {
		gemini, err := matcher.NewGeminiEmbedder(context.Background(), apiKey)
		if err != nil {
			logger.Warn("failed to create embedding client, semantic similarity disabled", zap.Error(err))
		} else {
			embedder = gemini
		}
	} else {
		logger.Info("GOOGLE_API_KEY not set, semantic similarity disabled")
	}
	skillMatcher := matcher.New(vocab, embedder, logger)

	conn, err := amqp.Dial(rabbitmqUrl)
	if err != nil {
		logger.Fatal("error connecting to RabbitMQ", zap.Error(err))
	}

	workerConfig := WorkerConfig{
		DB:           dbqueries,
		R2:           &r2Config,
		AwsConfig:    &awsConfig,
		RABBITMQUrl:  rabbitmqUrl,
		RabbitConn:   conn,
		Logger:       logger,
		ResumeParser: resumeParser,
		Tagger:       tagger,
		Matcher:      skillMatcher,
	}

	logger.Info("starting consumer worker pool", zap.Int("workers", 3))
	workerConfig.StartConsumerWorkerPool(3)
}
