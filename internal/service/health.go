package service

import (
	"context"
	"time"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"

	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)

// Pinger checks that the store accepts connections and answers a query.
// *database.Database implements it with a fresh connection and SELECT 1.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthReport is the body of GET /health.
type HealthReport struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// Healthy reports whether the database probe succeeded.
func (r HealthReport) Healthy() bool {
	return r.Status == StatusHealthy
}

type HealthService struct {
	db      Pinger
	timeout time.Duration
}

func NewHealthService(db Pinger, timeout time.Duration) *HealthService {
	return &HealthService{db: db, timeout: timeout}
}

// Check probes the database. It never returns an error: a failed probe is
// reported in the HealthReport itself.
func (s *HealthService) Check(ctx context.Context) HealthReport {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.db.Ping(ctx); err != nil {
		return HealthReport{
			Status:   StatusUnhealthy,
			Database: DatabaseDisconnected,
			Error:    err.Error(),
		}
	}

	return HealthReport{
		Status:   StatusHealthy,
		Database: DatabaseConnected,
	}
}
