package usecase

import (
	"context"

	"timecard-verify/internal/domain"
)

// TimecardRepository defines the interface for fetching persisted timecard
// computation results from the two databases. The usecase layer depends on
// this interface, not on a concrete implementation. Implementations must
// return empty maps (never errors) when no records exist for a driver.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go TimecardRepository
type TimecardRepository interface {
	ListActiveDrivers(ctx context.Context, period domain.Period) ([]int, error)
	GetRestraintMinutes(ctx context.Context, side domain.Side, driverID int, period domain.Period, recordType string) (domain.MinutesByDate, error)
	GetAllowanceRow(ctx context.Context, side domain.Side, driverID int, period domain.Period) (*domain.AllowanceRow, error)
	PurgeCandidateRestraint(ctx context.Context, period domain.Period) (int64, error)
}
