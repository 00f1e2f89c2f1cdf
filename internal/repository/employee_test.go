package repository

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/employees-api/internal/config"
	"github.com/deppfellow/employees-api/internal/database"
	"github.com/deppfellow/employees-api/internal/errs"
)

func unreachableRepository(t *testing.T) *EmployeeRepository {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Database: config.DatabaseConfig{
			Host:           "127.0.0.1",
			Port:           1,
			User:           "app",
			Name:           "app",
			SSLMode:        "disable",
			ConnectTimeout: 1,
		},
		Observability: config.DefaultObservabilityConfig(),
	}
	cfg.Observability.Logging.SlowQueryThreshold = 0

	logger := zerolog.Nop()
	db, err := database.New(cfg, &logger, nil)
	require.NoError(t, err)

	return NewEmployeeRepository(db)
}

func requireUnavailable(t *testing.T, err error) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "got %T: %v", err, err)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, errs.CodeDatabaseUnavailable, httpErr.Code)
	assert.Contains(t, httpErr.Message, "Database connection error: ")
}

func TestEmployeeRepository_UnreachableDatabase(t *testing.T) {
	repo := unreachableRepository(t)
	ctx := context.Background()

	_, err := repo.ListEmployees(ctx)
	requireUnavailable(t, err)

	_, err = repo.GetEmployeeByID(ctx, 1)
	requireUnavailable(t, err)

	_, err = repo.CreateEmployee(ctx, "Ann", 50000)
	requireUnavailable(t, err)

	_, err = repo.UpdateEmployee(ctx, 1, "Ann", 50000)
	requireUnavailable(t, err)

	_, err = repo.DeleteEmployee(ctx, 1)
	requireUnavailable(t, err)
}
