package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"timecard-verify/internal/domain"
)

// ErrNoActiveDrivers is returned when the period resolves to an empty
// driver population; a comparison over nobody is a configuration error.
var ErrNoActiveDrivers = errors.New("no active drivers for period")

// VerificationUseCase drives the comparison engine across the driver
// population and folds per-driver results into one cumulative summary.
type VerificationUseCase struct {
	repo TimecardRepository
}

// NewVerificationUseCase creates a new instance of the usecase.
func NewVerificationUseCase(repo TimecardRepository) *VerificationUseCase {
	return &VerificationUseCase{repo: repo}
}

// ResolveDrivers returns the explicit ids unchanged when given, otherwise
// the active population for the period. Order is preserved as delivered;
// the caller-facing output follows it.
func (uc *VerificationUseCase) ResolveDrivers(ctx context.Context, period domain.Period, explicit []int) ([]int, error) {
	if len(explicit) > 0 {
		return explicit, nil
	}
	ids, err := uc.repo.ListActiveDrivers(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("could not list active drivers: %w", err)
	}
	if len(ids) == 0 {
		return nil, ErrNoActiveDrivers
	}
	return ids, nil
}

// VerifyRestraint compares per-date restraint minutes between the two
// databases for every driver, in input order. Any fetch failure aborts
// the whole run; no partial summary is returned.
func (uc *VerificationUseCase) VerifyRestraint(ctx context.Context, period domain.Period, variant domain.Variant, driverIDs []int) (*domain.Summary, error) {
	logger := zerolog.Ctx(ctx)

	cumulative := &domain.Summary{}
	for _, id := range driverIDs {
		reference, err := uc.repo.GetRestraintMinutes(ctx, domain.SideReference, id, period, variant.ReferenceType)
		if err != nil {
			return nil, fmt.Errorf("could not fetch reference restraint for driver %d: %w", id, err)
		}
		candidate, err := uc.repo.GetRestraintMinutes(ctx, domain.SideCandidate, id, period, variant.CandidateType)
		if err != nil {
			return nil, fmt.Errorf("could not fetch candidate restraint for driver %d: %w", id, err)
		}
		cumulative.Merge(CompareMinutes(id, reference, candidate))
	}

	logger.Info().
		Str("variant", variant.Name).
		Str("period", period.String()).
		Int("drivers", len(driverIDs)).
		Int("compared", cumulative.Total()).
		Msg("restraint comparison finished")
	return cumulative, nil
}

// PurgeCandidate clears the candidate database's restraint rows for the
// period, preparing a clean slate for the reimplemented pipeline.
func (uc *VerificationUseCase) PurgeCandidate(ctx context.Context, period domain.Period) (int64, error) {
	deleted, err := uc.repo.PurgeCandidateRestraint(ctx, period)
	if err != nil {
		return 0, fmt.Errorf("could not purge candidate restraint: %w", err)
	}
	return deleted, nil
}

// VerifyAllowance compares the monthly allowance snapshot row between the
// two databases over the whole population. Drivers without a row on either
// side are not part of the comparison domain. Any fetch failure aborts the
// whole run.
func (uc *VerificationUseCase) VerifyAllowance(ctx context.Context, period domain.Period, driverIDs []int) (*domain.Summary, error) {
	logger := zerolog.Ctx(ctx)

	reference := make(map[int]domain.AllowanceRow)
	candidate := make(map[int]domain.AllowanceRow)
	for _, id := range driverIDs {
		refRow, err := uc.repo.GetAllowanceRow(ctx, domain.SideReference, id, period)
		if err != nil {
			return nil, fmt.Errorf("could not fetch reference allowance for driver %d: %w", id, err)
		}
		candRow, err := uc.repo.GetAllowanceRow(ctx, domain.SideCandidate, id, period)
		if err != nil {
			return nil, fmt.Errorf("could not fetch candidate allowance for driver %d: %w", id, err)
		}
		if refRow != nil {
			reference[id] = *refRow
		}
		if candRow != nil {
			candidate[id] = *candRow
		}
	}

	summary := CompareAllowanceRows(reference, candidate)

	logger.Info().
		Str("period", period.String()).
		Int("drivers", len(driverIDs)).
		Int("compared", summary.Total()).
		Msg("allowance comparison finished")
	return &summary, nil
}
