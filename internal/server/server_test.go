package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinedelices/backend/config"
	"github.com/cinedelices/backend/internal/server"
	"github.com/cinedelices/backend/internal/testhelpers"
)

func TestServerServesRoutes(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	cfg := &config.Config{
		ServerHost:  "127.0.0.1",
		ServerPort:  "0",
		FrontendURL: "http://localhost:5173",
		JWTSecret:   "test-secret",
	}

	srv := server.New(cfg, db, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	srv.Router().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil)
	srv.Router().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServerCORSAllowsFrontend(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	cfg := &config.Config{
		ServerHost:  "127.0.0.1",
		ServerPort:  "0",
		FrontendURL: "http://localhost:5173",
		JWTSecret:   "test-secret",
	}

	srv := server.New(cfg, db, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/recipes", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
