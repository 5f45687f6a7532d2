package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"pub-trivia-service/internal/app"
	"pub-trivia-service/internal/domain"
	pgloader "pub-trivia-service/internal/infra/postgres"
	pgmigrations "pub-trivia-service/internal/infra/postgres/migrations"
	infraredis "pub-trivia-service/internal/infra/redis"
)

func TestSessionEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	seedPool(t, ctx, pgURL, "default", samplePool())

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	loader := pgloader.NewPoolLoader(pool)

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	poolRepo := infraredis.NewPoolRepository(redisClient, loader, 5*time.Minute)

	questions, err := poolRepo.GetPool(ctx, "default")
	if err != nil {
		t.Fatalf("get pool: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions in pool, got %d", len(questions))
	}

	bank, err := app.NewQuestionBank(questions, 2, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("build bank: %v", err)
	}
	game := app.NewGame(bank, nil)

	team, _ := game.JoinTeam("Red", "Al")
	game.Start()

	q0, err := bank.Question(0)
	if err != nil {
		t.Fatalf("question 0: %v", err)
	}
	status, err := game.SubmitAnswer(team.ID, q0.Correct)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if status != app.SubmitAccepted {
		t.Fatalf("expected accepted answer, got %v", status)
	}

	game.Advance()
	game.Advance()
	snap := game.Snapshot()
	if !snap.Ended {
		t.Fatalf("expected ended session, got %+v", snap)
	}
	if score := game.Teams()[0].Score; score != q0.Points {
		t.Fatalf("expected score %d, got %d", q0.Points, score)
	}

	liveness := infraredis.NewLiveness(redisClient, "default", time.Minute)
	if err := liveness.Mark(ctx); err != nil {
		t.Fatalf("mark liveness: %v", err)
	}
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "trivia", "POSTGRES_PASSWORD": "triviapass", "POSTGRES_DB": "triviadb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://trivia:triviapass@%s:%s/triviadb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func seedPool(t *testing.T, ctx context.Context, dsn, poolID string, questions []domain.Question) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	data, err := json.Marshal(questions)
	if err != nil {
		t.Fatalf("marshal pool: %v", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO question_pools (id, data) VALUES (?, ?::jsonb) ON CONFLICT (id) DO UPDATE SET data=EXCLUDED.data`, poolID, string(data)); err != nil {
		t.Fatalf("insert pool: %v", err)
	}
}

func samplePool() []domain.Question {
	return []domain.Question{
		{
			Category: "Math",
			Prompt:   "What is 2 + 2?",
			Options:  []string{"3", "4", "5", "6"},
			Correct:  1,
			Points:   1,
		},
		{
			Category: "Geography",
			Prompt:   "What is the capital of Australia?",
			Options:  []string{"Sydney", "Melbourne", "Canberra", "Perth"},
			Correct:  2,
			Points:   2,
		},
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
