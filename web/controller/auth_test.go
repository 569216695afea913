package controller

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/domysh/spesometro/database"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

const testAdminPassword = "test-admin-psw"

func setupLoginRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("SPESO_DEFAULT_PSW", testAdminPassword)

	dbPath := filepath.Join(t.TempDir(), "spesometro.db")
	if err := database.InitDB(dbPath); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() {
		_ = database.CloseDB()
	})

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewAuthController(engine.Group("/api"))
	return engine
}

func postLogin(engine *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	engine := setupLoginRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"wrong password", `{"username":"admin","password":"wrong"}`},
		{"unknown user", `{"username":"ghost","password":"pw"}`},
		{"empty credentials", `{"username":"","password":""}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := postLogin(engine, tc.body)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
			}
			var msg struct {
				Success bool `json:"success"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &msg); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if msg.Success {
				t.Error("success = true on a rejected login")
			}
		})
	}
}

func TestLoginIssuesToken(t *testing.T) {
	engine := setupLoginRouter(t)

	w := postLogin(engine, `{"username":"admin","password":"`+testAdminPassword+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		Success bool `json:"success"`
		Obj     struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
		} `json:"obj"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success {
		t.Error("success = false on a valid login")
	}
	if resp.Obj.TokenType != "bearer" {
		t.Errorf("token type = %q, want bearer", resp.Obj.TokenType)
	}
	if resp.Obj.AccessToken == "" {
		t.Error("empty access token")
	}
}
