package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/kanoonai/kanoon-web/internal/config"
	"github.com/kanoonai/kanoon-web/internal/logging"
)

// ConfigForTests loads the .env.test file and returns a valid config.
func ConfigForTests(t *testing.T) *config.Config {
	t.Helper()

	// Find the project root by looking for go.mod to reliably locate .env.test.
	path, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			break
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}

	env, err := godotenv.Read(filepath.Join(path, ".env.test"))
	if err != nil {
		t.Fatalf("failed to load .env.test file: %v", err)
	}

	// t.Setenv restores the previous values when the test ends.
	for key, value := range env {
		t.Setenv(key, value)
	}

	logging.New()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("invalid test configuration: %v", err)
	}
	return cfg
}
