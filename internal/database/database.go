// Package database is the connection provider of the service.
//
// There is no pool: every request (and every health probe) opens its own
// PostgreSQL connection through Acquire and closes it before returning.
// WithConn wraps that lifecycle so callers cannot forget the release.
//
// It also wires the pgx query tracers: SQL logging through zerolog in the
// local environment, New Relic tracing when APM is enabled, and a slow
// query warning driven by the observability config.
package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/rs/zerolog"

	"github.com/deppfellow/employees-api/internal/config"
	"github.com/deppfellow/employees-api/internal/errs"
	loggerConfig "github.com/deppfellow/employees-api/internal/logger"
)

// ReleaseTimeout bounds closing a connection. Close runs on its own context
// so a cancelled request still terminates the session cleanly.
const ReleaseTimeout = 5 * time.Second

// Database opens and releases connections to the employees store.
//
// It is immutable after New and safe for concurrent use; each Acquire
// connects with a private copy of the parsed configuration.
type Database struct {
	connConfig *pgx.ConnConfig
	log        *zerolog.Logger
}

// ConnectionString builds the postgres URL for cfg.
//
// url.URL escapes user and password, so credentials such as "p@ss:word"
// cannot break the DSN.
func ConnectionString(cfg config.DatabaseConfig) string {
	query := url.Values{}
	query.Set("sslmode", cfg.SSLMode)
	query.Set("connect_timeout", strconv.Itoa(cfg.ConnectTimeout))

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// New parses the connection configuration and attaches tracers.
//
// It does not connect: an unreachable database is reported per request as
// DatabaseUnavailable instead of preventing the service from starting.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	connConfig, err := pgx.ParseConfig(ConnectionString(cfg.Database))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx connection config: %w", err)
	}

	var tracers []pgx.QueryTracer

	if loggerService.GetApplication() != nil {
		tracers = append(tracers, nrpgx5.NewTracer())
	}

	// SQL statement logging is noisy, keep it to the local environment.
	if cfg.Primary.Env == "local" {
		globalLevel := logger.GetLevel()
		pgxLogger := loggerConfig.NewPgxLogger(globalLevel)

		tracers = append(tracers, &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(pgxLogger),
			LogLevel: tracelog.LogLevel(loggerConfig.GetPgxTraceLogLevel(globalLevel)),
		})
	}

	if cfg.Observability != nil && cfg.Observability.Logging.SlowQueryThreshold > 0 {
		tracers = append(tracers, &slowQueryTracer{
			threshold: cfg.Observability.Logging.SlowQueryThreshold,
			log:       logger,
		})
	}

	switch len(tracers) {
	case 0:
	case 1:
		connConfig.Tracer = tracers[0]
	default:
		connConfig.Tracer = &multiTracer{tracers: tracers}
	}

	logger.Info().
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("database", cfg.Database.Name).
		Str("ssl_mode", cfg.Database.SSLMode).
		Msg("database connection provider configured")

	return &Database{
		connConfig: connConfig,
		log:        logger,
	}, nil
}

// Acquire opens a new connection.
//
// Any failure to connect (timeout, refused, authentication) is returned as
// a DatabaseUnavailable *errs.HTTPError. The caller owns the connection and
// must hand it back to Release; prefer WithConn.
func (db *Database) Acquire(ctx context.Context) (*pgx.Conn, error) {
	conn, err := pgx.ConnectConfig(ctx, db.connConfig.Copy())
	if err != nil {
		db.log.Error().Err(err).Msg("failed to connect to the database")
		return nil, errs.NewDatabaseUnavailableError(err)
	}

	return conn, nil
}

// Release closes conn. A nil conn is ignored.
func (db *Database) Release(conn *pgx.Conn) {
	if conn == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), ReleaseTimeout)
	defer cancel()

	if err := conn.Close(ctx); err != nil {
		db.log.Warn().Err(err).Msg("failed to close database connection")
	}
}

// WithConn acquires a connection, runs fn and releases the connection on
// every exit path, including errors returned or panics raised by fn.
func (db *Database) WithConn(ctx context.Context, fn func(conn *pgx.Conn) error) error {
	conn, err := db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer db.Release(conn)

	return fn(conn)
}

// Ping opens a connection and runs SELECT 1.
func (db *Database) Ping(ctx context.Context) error {
	return db.WithConn(ctx, func(conn *pgx.Conn) error {
		var one int
		if err := conn.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
			return fmt.Errorf("health query failed: %w", err)
		}
		return nil
	})
}

// Close ends the provider's lifecycle. Connections are released per
// request, so nothing is left open here.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection provider")
	return nil
}
