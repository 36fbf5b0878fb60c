package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/roninc32/smart-portfolio/internal/ai"
	"github.com/roninc32/smart-portfolio/internal/config"
	"github.com/roninc32/smart-portfolio/internal/history"
	"github.com/roninc32/smart-portfolio/internal/model"
	"github.com/roninc32/smart-portfolio/internal/persona"
	postgresClient "github.com/roninc32/smart-portfolio/internal/platform/postgres"
	rabbitmqClient "github.com/roninc32/smart-portfolio/internal/platform/rabbitmq"
	redisClient "github.com/roninc32/smart-portfolio/internal/platform/redis"
	"github.com/roninc32/smart-portfolio/internal/ratelimit"
	"github.com/roninc32/smart-portfolio/internal/repository"
	"github.com/roninc32/smart-portfolio/internal/worker"
)

// App wires the process. Postgres, Redis and RabbitMQ are all
// optional: a backend that is unconfigured or unreachable is logged
// and the feature it backs degrades, the server still starts. Only
// config decoding can fail bootstrap.
type App struct {
	Config    *config.Config
	DB        *gorm.DB
	Redis     *redis.Client
	MQConn    *amqp.Connection
	Persona   *persona.Persona
	Completer ai.Completer
	Limiter   ratelimit.Limiter
	History   history.Store

	TurnWorker *worker.TurnPersistWorker
	StartedAt  time.Time

	memoryLimiter *ratelimit.Window
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	app := &App{
		Config:    cfg,
		Persona:   persona.New(),
		StartedAt: time.Now(),
	}

	app.Completer = ai.NewGeminiClient(ai.GeminiConfig{
		BaseURL:         cfg.Gemini.BaseURL,
		APIKey:          cfg.Gemini.APIKey,
		Model:           cfg.Gemini.Model,
		Temperature:     cfg.Gemini.Temperature,
		TopK:            cfg.Gemini.TopK,
		TopP:            cfg.Gemini.TopP,
		MaxOutputTokens: cfg.Gemini.MaxOutputTokens,
	}, app.Persona)
	if cfg.Gemini.APIKey == "" {
		log.Printf("GEMINI_API_KEY not set - chat requests will fail until configured")
	}

	app.connectPostgres(ctx)
	app.connectRedis(ctx)
	app.buildHistory(ctx)
	app.buildLimiter()

	return app, nil
}

func (a *App) connectPostgres(ctx context.Context) {
	if !a.Config.PersistenceEnabled() {
		log.Printf("DATABASE_URL not set - running without history persistence")
		return
	}

	db, err := postgresClient.New(ctx, a.Config.PostgresDSN())
	if err != nil {
		log.Printf("database connection failed, chat will work without history persistence: %v", err)
		return
	}
	if err := db.AutoMigrate(&model.ChatMessage{}); err != nil {
		log.Printf("auto migrate chats table failed, chat will work without history persistence: %v", err)
		return
	}
	a.DB = db
}

func (a *App) connectRedis(ctx context.Context) {
	if a.Config.Redis.Addr == "" {
		return
	}
	client, err := redisClient.New(ctx, a.Config.Redis.Addr, a.Config.Redis.Password, a.Config.Redis.DB)
	if err != nil {
		log.Printf("redis connection failed, falling back to in-process rate limiting: %v", err)
		return
	}
	a.Redis = client
}

// buildHistory picks the store: no database means no persistence at
// all; with a broker configured, writes go through the durable queue
// and the persist worker, otherwise straight to Postgres.
func (a *App) buildHistory(ctx context.Context) {
	if a.DB == nil {
		a.History = history.NewNoop()
		return
	}

	repo := repository.NewChatRepository(a.DB)
	reads := history.NewGormStore(repo)

	if a.Config.RabbitMQ.URL == "" {
		a.History = reads
		return
	}

	conn, err := rabbitmqClient.New(a.Config.RabbitMQ.URL)
	if err != nil {
		log.Printf("rabbitmq connection failed, persisting turns directly: %v", err)
		a.History = reads
		return
	}

	turnWorker := worker.NewTurnPersistWorker(conn, repo, a.Config.RabbitMQ.PersistQueue)
	if err := turnWorker.Start(ctx); err != nil {
		log.Printf("start persist worker failed, persisting turns directly: %v", err)
		_ = conn.Close()
		a.History = reads
		return
	}

	a.MQConn = conn
	a.TurnWorker = turnWorker
	publisher := rabbitmqClient.NewTurnPublisher(conn, a.Config.RabbitMQ.PersistQueue)
	a.History = history.NewQueueStore(reads, publisher)
}

func (a *App) buildLimiter() {
	window := time.Duration(a.Config.RateLimit.WindowSeconds) * time.Second
	if a.Redis != nil {
		a.Limiter = ratelimit.NewRedisWindow(a.Redis, a.Config.RateLimit.MaxRequests, window)
		return
	}
	a.memoryLimiter = ratelimit.NewWindow(a.Config.RateLimit.MaxRequests, window)
	a.Limiter = a.memoryLimiter
}

func (a *App) Close() error {
	var closeErr error
	if a.memoryLimiter != nil {
		a.memoryLimiter.Close()
	}
	if a.TurnWorker != nil {
		a.TurnWorker.Close()
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}
