package service

import (
	"path/filepath"
	"testing"

	"github.com/domysh/spesometro/database"
)

// testAdminPassword is injected through the bootstrap env var so login
// tests know the admin credentials.
const testAdminPassword = "test-admin-psw"

func setupTestDB(t *testing.T) {
	t.Helper()
	t.Setenv("SPESO_DEFAULT_PSW", testAdminPassword)

	dbPath := filepath.Join(t.TempDir(), "spesometro.db")
	if err := database.InitDB(dbPath); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	resetSecretCache()
	t.Cleanup(func() {
		_ = database.CloseDB()
	})
}
