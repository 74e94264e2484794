package postgres

import (
	"context"
	"fmt"
)

// HealthCheck implements ports.HealthChecker for the journal database. A
// healthy database is reachable and has the journal table.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	if _, err := h.pool.Exec(ctx, "SELECT 1 FROM "+journalTable+" LIMIT 1"); err != nil {
		return fmt.Errorf("journal table check: %w", err)
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}
