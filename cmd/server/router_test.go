package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/itinerary-api/internal/api/shared"
	"github.com/phrazzld/itinerary-api/internal/config"
	"github.com/phrazzld/itinerary-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = &config.Config{
	Server:     config.ServerConfig{Port: 8080, LogLevel: "debug", ShutdownTimeoutSeconds: 1},
	Database:   config.DatabaseConfig{URL: "postgres://localhost/itinerary", MaxOpenConns: 1},
	Pagination: config.PaginationConfig{DefaultPerPage: 10, MaxPerPage: 100},
}

// newTestApplication builds the real application on a sqlmock connection.
func newTestApplication(t *testing.T) (*application, sqlmock.Sqlmock, *logger.TestLogBuffer) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l, buf := logger.NewTestLogger()
	return newApplication(testConfig, l, sqlx.NewDb(db, "pgx")), mock, buf
}

func TestHealth(t *testing.T) {
	t.Run("database answers", func(t *testing.T) {
		app, mock, _ := newTestApplication(t)
		mock.ExpectPing()
		rec := httptest.NewRecorder()

		app.setupRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database down", func(t *testing.T) {
		app, mock, buf := newTestApplication(t)
		mock.ExpectPing().WillReturnError(errors.New("dial tcp db.internal.example.com:5432: connection refused"))
		rec := httptest.NewRecorder()

		app.setupRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, buf.String(), "Health check failed")
		assert.NotContains(t, buf.String(), "db.internal.example.com")
	})
}

func TestRouterMiddleware(t *testing.T) {
	app, _, buf := newTestApplication(t)
	router := app.setupRouter()
	rec := httptest.NewRecorder()

	// A malformed id is rejected before any query runs.
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/agencies/abc/", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(shared.TraceIDHeader))
	assert.Contains(t, rec.Body.String(), `"kind":"invalid_parameter"`)
	assert.Contains(t, rec.Body.String(), rec.Header().Get(shared.TraceIDHeader))
	assert.Contains(t, buf.String(), "/api/agencies/abc/")
}

func TestRouterUnknownRoute(t *testing.T) {
	app, _, _ := newTestApplication(t)
	rec := httptest.NewRecorder()

	app.setupRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cruises", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
