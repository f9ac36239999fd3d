package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the Redis server named by TEST_REDIS_URL and
// flushes the selected database so every test starts empty.
//
// The test is skipped automatically if TEST_REDIS_URL is not set.
// The client is closed automatically when the test finishes.
func NewRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set; skipping integration test")
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		t.Fatalf("testutil.NewRedisClient: parse url: %v", err)
	}
	client := redis.NewClient(opts)

	if err := client.FlushDB(context.Background()).Err(); err != nil {
		_ = client.Close()
		t.Fatalf("testutil.NewRedisClient: flush: %v", err)
	}

	t.Cleanup(func() { _ = client.Close() })
	return client
}
