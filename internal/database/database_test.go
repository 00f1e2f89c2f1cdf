package database

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/employees-api/internal/config"
	"github.com/deppfellow/employees-api/internal/errs"
)

func testConfig() *config.Config {
	return &config.Config{
		Primary: config.Primary{Env: "test"},
		Database: config.DatabaseConfig{
			Host:           "127.0.0.1",
			Port:           1, // nothing listens here: connect is refused immediately
			User:           "app",
			Password:       "p@ss:word/?",
			Name:           "company",
			SSLMode:        "disable",
			ConnectTimeout: 1,
		},
		Observability: config.DefaultObservabilityConfig(),
	}
}

func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	logger := zerolog.Nop()
	db, err := New(testConfig(), &logger, nil)
	require.NoError(t, err)
	return db
}

func TestConnectionString_EscapesCredentials(t *testing.T) {
	dsn := ConnectionString(testConfig().Database)

	parsed, err := url.Parse(dsn)
	require.NoError(t, err)

	password, _ := parsed.User.Password()
	assert.Equal(t, "postgres", parsed.Scheme)
	assert.Equal(t, "app", parsed.User.Username())
	assert.Equal(t, "p@ss:word/?", password)
	assert.Equal(t, "127.0.0.1:1", parsed.Host)
	assert.Equal(t, "/company", parsed.Path)
	assert.Equal(t, "disable", parsed.Query().Get("sslmode"))
	assert.Equal(t, "1", parsed.Query().Get("connect_timeout"))
}

func TestNew_DoesNotConnect(t *testing.T) {
	db := newTestDatabase(t)

	assert.NotNil(t, db.connConfig)
	assert.Equal(t, uint16(1), db.connConfig.Port)
	assert.NoError(t, db.Close())
}

func TestAcquire_UnreachableDatabase(t *testing.T) {
	db := newTestDatabase(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := db.Acquire(ctx)
	require.Error(t, err)
	assert.Nil(t, conn)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, errs.CodeDatabaseUnavailable, httpErr.Code)
	assert.Contains(t, httpErr.Message, "Database connection error:")
}

func TestWithConn_SkipsCallbackWhenUnavailable(t *testing.T) {
	db := newTestDatabase(t)

	called := false
	err := db.WithConn(context.Background(), func(conn *pgx.Conn) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
}

func TestPing_UnreachableDatabase(t *testing.T) {
	db := newTestDatabase(t)

	err := db.Ping(context.Background())

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, errs.CodeDatabaseUnavailable, httpErr.Code)
}

func TestRelease_NilConnection(t *testing.T) {
	db := newTestDatabase(t)

	assert.NotPanics(t, func() { db.Release(nil) })
}
