package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"saham-radar/internal/bot"
	"saham-radar/internal/cache"
	"saham-radar/internal/config"
	"saham-radar/internal/handler"
	"saham-radar/internal/job"
	"saham-radar/internal/news"
	"saham-radar/internal/provider"
	"saham-radar/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	_ "saham-radar/docs"
)

var (
	loadEnvFunc         = godotenv.Load
	loadConfigFunc      = config.Load
	initRedisFunc       = cache.InitRedis
	initTracerFunc      = tracing.InitTracer
	newFeedProviderFunc = func(tracer trace.Tracer, cfg *config.Config) news.FeedReader {
		return provider.NewFeedProvider(
			tracer,
			time.Duration(cfg.FeedTimeoutSecs)*time.Second,
			cfg.FeedItemLimit,
			cfg.SummaryMaxChars,
		)
	}
	createBotFunc = func(cfg *config.Config) (*bot.Bot, error) {
		return bot.New(
			cfg.TelegramBotToken,
			cfg.TelegramChatID,
			cfg.NewsTopK,
			time.Duration(cfg.SendDelayMillis)*time.Millisecond,
		)
	}
	startBotFunc = func(b *bot.Bot, reader bot.NewsReader) {
		b.RegisterHandlers(reader)
		b.Start()
	}
	startJobFunc           = func(ctx context.Context, j *job.BroadcastJob) { go j.Start(ctx) }
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           Saham Radar API
// @version         1.0
// @description     Stock news and sentiment monitoring service.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()
	if cfg.TelegramBotToken == "" || cfg.TelegramChatID == 0 {
		log.Fatal("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID are required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	os.Setenv("REDIS_URL", cfg.RedisURL)
	initRedisFunc(ctx)

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	// Pipeline pieces
	feeds := newFeedProviderFunc(tracer, cfg)
	scorer := news.NewScorer(news.ScorerConfig{
		PositiveThreshold: cfg.PositiveThreshold,
		NegativeThreshold: cfg.NegativeThreshold,
		PositiveKeywords:  cfg.PositiveKeywords,
		NegativeKeywords:  cfg.NegativeKeywords,
	})
	tracker := news.NewDeliveredTracker()

	tgBot, err := createBotFunc(cfg)
	if err != nil {
		log.Fatalf("failed to create Telegram bot: %v", err)
	}

	var notifier news.Notifier
	if tgBot != nil {
		notifier = tgBot
	}
	var redisClient news.RedisClient
	if cache.Client != nil {
		redisClient = cache.Client
	}

	sendDelay := time.Duration(cfg.SendDelayMillis) * time.Millisecond
	limiter := provider.NewRateLimiter(1, sendDelay)

	newsService := news.NewService(tracer, feeds, scorer, tracker, notifier, limiter, redisClient, news.Config{
		Sources:  cfg.FeedSources,
		Tickers:  cfg.WatchedTickers,
		CacheTTL: time.Duration(cfg.CurrentCacheSecs) * time.Second,
	})

	if tgBot != nil {
		startBotFunc(tgBot, newsService)
	}

	// Scheduled broadcast cycle
	broadcastJob := job.NewBroadcastJob(
		tracer,
		newsService,
		time.Duration(cfg.PollSecs)*time.Second,
		time.Duration(cfg.FirstDelaySecs)*time.Second,
	)
	startJobFunc(ctx, broadcastJob)

	// HTTP read API
	h := handler.New(tracer, newsService)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("saham-radar"))

	h.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":8080",
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()
	if tgBot != nil {
		tgBot.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
