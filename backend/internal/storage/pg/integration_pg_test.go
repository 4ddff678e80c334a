package pg

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/FerdyAtmaja/forum-api-V2/shared/config"
	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var storage *Storage

var idCounter atomic.Int64

// sequentialIds keeps ids unique across the whole test run.
func sequentialIds() string {
	return fmt.Sprint(idCounter.Add(1))
}

func TestMain(m *testing.M) {
	ctx := context.Background()
	var container *postgres.PostgresContainer
	storage, container = mustSetup(ctx)

	exitCode := m.Run()
	teardown(ctx, storage, container)
	os.Exit(exitCode)
}

func mustSetup(ctx context.Context) (*Storage, *postgres.PostgresContainer) {
	dbName := "forum"
	dbUser := "user"
	dbPassword := "password"
	container, err := postgres.Run(ctx,
		"postgres:15.3-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			// postgres restarts once after init, wait for the second ready line
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start container: %s", err)
	}
	containerPort, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatalf("failed to obtain container port: %s", err)
	}
	port, err := strconv.Atoi(containerPort.Port())
	if err != nil {
		log.Fatalf("failed to obtain int container port: %s", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("failed to obtain container host: %s", err)
	}

	storage, err := New(ctx, config.Pg{Host: host, Port: port, User: dbUser, Password: dbPassword, Dbname: dbName}, sequentialIds)
	if err != nil {
		log.Fatalf("failed to connect to postgres container: %s", err)
	}
	return storage, container
}

func teardown(ctx context.Context, storage *Storage, container *postgres.PostgresContainer) {
	if err := storage.Cleanup(); err != nil {
		log.Printf("failed to close storage connection: %s", err)
	}
	if err := container.Terminate(ctx); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
}

// --- Helpers ---

func createTestUser(t *testing.T, username string) domain.UserId {
	t.Helper()
	user, err := storage.AddUser(context.Background(), domain.User{
		Username: username + strconv.FormatInt(idCounter.Add(1), 10),
		PassHash: "hash",
		Fullname: "Test User",
	})
	require.NoError(t, err)
	return user.Id
}

func createTestThread(t *testing.T, owner domain.UserId) domain.ThreadId {
	t.Helper()
	thread, err := storage.AddThread(context.Background(), domain.NewThread{Title: "sebuah thread", Body: "sebuah body thread"}, owner)
	require.NoError(t, err)
	return thread.Id
}

func createTestComment(t *testing.T, threadId domain.ThreadId, owner domain.UserId, content string) domain.CommentId {
	t.Helper()
	comment, err := storage.AddComment(context.Background(), domain.NewComment{Content: content}, threadId, owner)
	require.NoError(t, err)
	return comment.Id
}

func countRows(t *testing.T, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, storage.db.QueryRowContext(context.Background(), query, args...).Scan(&n))
	return n
}
