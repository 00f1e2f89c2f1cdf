//go:build integration

package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/employees-api/internal/config"
	"github.com/deppfellow/employees-api/internal/database"
	"github.com/deppfellow/employees-api/internal/errs"
)

var testConfig *config.Config

// TestMain starts a throwaway PostgreSQL with dockertest and creates the
// employees table through the embedded migrations.
func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not connect to docker: %v\n", err)
		os.Exit(1)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=employees",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=employees",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not start postgres: %v\n", err)
		os.Exit(1)
	}
	_ = resource.Expire(300)

	port, _ := strconv.Atoi(resource.GetPort("5432/tcp"))
	testConfig = &config.Config{
		Primary: config.Primary{Env: "test"},
		Database: config.DatabaseConfig{
			Host:           "localhost",
			Port:           port,
			User:           "employees",
			Password:       "secret",
			Name:           "employees",
			SSLMode:        "disable",
			ConnectTimeout: 5,
		},
		Observability: config.DefaultObservabilityConfig(),
	}

	pool.MaxWait = 60 * time.Second
	if err := pool.Retry(func() error {
		conn, err := pgx.Connect(context.Background(), database.ConnectionString(testConfig.Database))
		if err != nil {
			return err
		}
		return conn.Close(context.Background())
	}); err != nil {
		fmt.Fprintf(os.Stderr, "postgres not ready: %v\n", err)
		_ = pool.Purge(resource)
		os.Exit(1)
	}

	logger := zerolog.Nop()
	if err := database.Migrate(context.Background(), &logger, testConfig); err != nil {
		fmt.Fprintf(os.Stderr, "could not migrate: %v\n", err)
		_ = pool.Purge(resource)
		os.Exit(1)
	}

	code := m.Run()

	_ = pool.Purge(resource)
	os.Exit(code)
}

// newRepository returns a repository over an emptied employees table.
func newRepository(t *testing.T) (*EmployeeRepository, *database.Database) {
	t.Helper()

	logger := zerolog.Nop()
	db, err := database.New(testConfig, &logger, nil)
	require.NoError(t, err)

	err = db.WithConn(context.Background(), func(conn *pgx.Conn) error {
		_, err := conn.Exec(context.Background(), "TRUNCATE employees RESTART IDENTITY")
		return err
	})
	require.NoError(t, err)

	return NewEmployeeRepository(db), db
}

func requireNotFound(t *testing.T, err error) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "got %T: %v", err, err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Employee not found", httpErr.Message)
	assert.Equal(t, errs.CodeEmployeeNotFound, httpErr.Code)
}

func TestIntegration_CreateGetRoundTrip(t *testing.T) {
	repo, _ := newRepository(t)
	ctx := context.Background()

	id, err := repo.CreateEmployee(ctx, "Ann", 50000)
	require.NoError(t, err)

	got, err := repo.GetEmployeeByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Ann", got.Name)
	assert.Equal(t, int64(50000), got.Salary)
}

func TestIntegration_ListOrderedByID(t *testing.T) {
	repo, _ := newRepository(t)
	ctx := context.Background()

	empty, err := repo.ListEmployees(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	var ids []int64
	for _, name := range []string{"Cid", "Ann", "Bob"} {
		id, err := repo.CreateEmployee(ctx, name, 1000)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	list, err := repo.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, e := range list {
		assert.Equal(t, ids[i], e.ID)
	}
	assert.Less(t, list[0].ID, list[1].ID)
	assert.Less(t, list[1].ID, list[2].ID)
}

func TestIntegration_UpdateAndDelete(t *testing.T) {
	repo, _ := newRepository(t)
	ctx := context.Background()

	id, err := repo.CreateEmployee(ctx, "Ann", 50000)
	require.NoError(t, err)

	affected, err := repo.UpdateEmployee(ctx, id, "Ann B", 60000)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := repo.GetEmployeeByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ann B", got.Name)
	assert.Equal(t, int64(60000), got.Salary)

	affected, err = repo.DeleteEmployee(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	_, err = repo.GetEmployeeByID(ctx, id)
	requireNotFound(t, err)

	affected, err = repo.DeleteEmployee(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestIntegration_MissingRows(t *testing.T) {
	repo, _ := newRepository(t)
	ctx := context.Background()

	_, err := repo.GetEmployeeByID(ctx, 424242)
	requireNotFound(t, err)

	affected, err := repo.UpdateEmployee(ctx, 424242, "Nobody", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestIntegration_NameIsBoundNotInterpolated(t *testing.T) {
	repo, _ := newRepository(t)
	ctx := context.Background()

	name := "Robert'); DROP TABLE employees;--"
	id, err := repo.CreateEmployee(ctx, name, 1)
	require.NoError(t, err)

	got, err := repo.GetEmployeeByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, name, got.Name)
}

func TestIntegration_Ping(t *testing.T) {
	_, db := newRepository(t)

	assert.NoError(t, db.Ping(context.Background()))
}
