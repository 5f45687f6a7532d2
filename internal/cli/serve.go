package cli

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"pub-trivia-service/internal/app"
	"pub-trivia-service/internal/config"
	"pub-trivia-service/internal/infra/memory"
	pgloader "pub-trivia-service/internal/infra/postgres"
	redisinfra "pub-trivia-service/internal/infra/redis"
	"pub-trivia-service/internal/logger"
	transport "pub-trivia-service/internal/transport/http"
)

const defaultQuestionCount = 25

// NewServeCmd builds the CLI subcommand to start the server.
func NewServeCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the trivia server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	poolID := cfg.Quiz.Pool
	if poolID == "" {
		poolID = "default"
	}

	var loader memory.PoolLoader = memory.NewStaticPoolLoader(samplePools())
	if pool != nil {
		loader = pgloader.NewPoolLoader(pool)
	}

	quizTTL := config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute)
	var poolRepo app.PoolRepository
	if redisClient != nil {
		poolRepo = redisinfra.NewPoolRepository(redisClient, loader, quizTTL)
	} else {
		poolRepo = memory.NewPoolRepository(loader, quizTTL)
	}

	questions, err := poolRepo.GetPool(ctx, poolID)
	if err != nil {
		return err
	}
	count := cfg.Quiz.Questions
	if count == 0 {
		count = defaultQuestionCount
	}
	bank, err := app.NewQuestionBank(questions, count, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		return err
	}

	hub := transport.NewHub()
	game := app.NewGame(bank, hub)
	wsHandler := transport.NewWSHandler(game, hub, cfg.Server.HostKey)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	livenessCtx, stopLiveness := context.WithCancel(ctx)
	defer stopLiveness()
	if redisClient != nil {
		liveness := redisinfra.NewLiveness(redisClient, poolID, config.TTLDuration(cfg.Redis.TTL, 10*time.Minute))
		go liveness.Run(livenessCtx)
	}

	go func() {
		logger.Info("starting trivia service", "port", finalPort, "questions", bank.Len())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to start server", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		logger.Info("shutting down server")
	case <-ctx.Done():
		logger.Info("context canceled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
