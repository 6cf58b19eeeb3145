package gateway

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"timecard-verify/internal/domain"
)

// TimecardStore implements usecase.TimecardRepository against the two
// MySQL databases: the legacy pipeline's output (reference) and the
// reimplemented pipeline's output (candidate). All queries are
// parameterized; the store never interpolates values into SQL text.
type TimecardStore struct {
	reference *sql.DB
	candidate *sql.DB
}

// NewTimecardStore creates a store over the two database handles. The
// caller owns the handles and is responsible for closing them.
func NewTimecardStore(reference, candidate *sql.DB) *TimecardStore {
	return &TimecardStore{reference: reference, candidate: candidate}
}

func (s *TimecardStore) db(side domain.Side) (*sql.DB, error) {
	switch side {
	case domain.SideReference:
		return s.reference, nil
	case domain.SideCandidate:
		return s.candidate, nil
	}
	return nil, fmt.Errorf("unknown database side %q", side)
}

// Active population: drivers employed at the main office during the
// period, excluding office staff, night-shift workers and drivers with a
// timecard exception covering the month. The ORDER BY keeps the
// population order stable between runs.
const listActiveDriversQuery = `
	SELECT d.id
	FROM drivers d
	INNER JOIN payroll_employees pe ON pe.driver_id = d.id
	LEFT JOIN time_card_night_shift ns
		ON ns.payroll_employee_id = pe.id AND ns.firm_id = pe.firm_id
	LEFT JOIN time_card_exception tce
		ON tce.payroll_employee_id = pe.id AND tce.firm_id = pe.firm_id
		AND tce.start_month <= ?
		AND (tce.end_month > ? OR tce.end_month IS NULL)
	WHERE pe.office_code = 1
		AND pe.category_code != 1
		AND (pe.retire_date IS NULL OR pe.retire_date > ?)
		AND pe.hire_date < ?
		AND ns.payroll_employee_id IS NULL
		AND tce.payroll_employee_id IS NULL
	ORDER BY pe.firm_id ASC, pe.category_code ASC, pe.id ASC`

// ListActiveDrivers returns the comparison population for the period,
// read from the reference database.
func (s *TimecardStore) ListActiveDrivers(ctx context.Context, period domain.Period) ([]int, error) {
	logger := zerolog.Ctx(ctx)

	first := period.FirstDay()
	rows, err := s.reference.QueryContext(ctx, listActiveDriversQuery,
		first, first, first, period.NextMonthFirstDay())
	if err != nil {
		return nil, fmt.Errorf("active driver query failed: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close active driver rows")
		}
	}()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("active driver rows failed: %w", err)
	}

	logger.Info().Str("period", period.String()).Int("count", len(ids)).Msg("active drivers loaded")
	return ids, nil
}

const restraintMinutesQuery = `
	SELECT DATE_FORMAT(date, '%Y-%m-%d') AS date, SUM(minutes) AS minutes
	FROM time_card_restraint
	WHERE driver_id = ?
		AND type = ?
		AND date >= ? AND date <= ?
	GROUP BY date
	ORDER BY date`

// GetRestraintMinutes returns the per-date restraint minute totals of one
// record type for a driver in the period. No records yields an empty map.
func (s *TimecardStore) GetRestraintMinutes(ctx context.Context, side domain.Side, driverID int, period domain.Period, recordType string) (domain.MinutesByDate, error) {
	logger := zerolog.Ctx(ctx)

	db, err := s.db(side)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, restraintMinutesQuery,
		driverID, recordType, period.FirstDay(), period.LastDay())
	if err != nil {
		return nil, fmt.Errorf("%s restraint query failed for driver %d: %w", side, driverID, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close restraint rows")
		}
	}()

	minutes := make(domain.MinutesByDate)
	for rows.Next() {
		var (
			date  string
			total int64
		)
		if err := rows.Scan(&date, &total); err != nil {
			return nil, err
		}
		minutes[date] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s restraint rows failed for driver %d: %w", side, driverID, err)
	}
	return minutes, nil
}

const allowanceRowQuery = `
	SELECT shukkin_count, dayoff_count, paidoff_count, absence_count,
		overtime_count, holidaywork_count, additionalwork_payment,
		kachiku_payment, trail_payment, chikoku_count, soutai_count, tokukyu_count
	FROM time_card_allowance
	WHERE driver_id = ?
		AND datetime = ?`

// GetAllowanceRow returns the driver's allowance snapshot for the month,
// or nil when no row exists. NULL columns are normalized to zero.
func (s *TimecardStore) GetAllowanceRow(ctx context.Context, side domain.Side, driverID int, period domain.Period) (*domain.AllowanceRow, error) {
	db, err := s.db(side)
	if err != nil {
		return nil, err
	}

	var (
		attendance, dayOff, paidLeave, absence      sql.NullInt64
		overtime, holidayWork                       sql.NullInt64
		additionalWorkPay, livestockPay, trailerPay sql.NullFloat64
		lateness, earlyLeave, specialLeave          sql.NullInt64
	)
	err = db.QueryRowContext(ctx, allowanceRowQuery, driverID, period.FirstDay()).Scan(
		&attendance, &dayOff, &paidLeave, &absence,
		&overtime, &holidayWork, &additionalWorkPay,
		&livestockPay, &trailerPay, &lateness, &earlyLeave, &specialLeave)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s allowance query failed for driver %d: %w", side, driverID, err)
	}

	return &domain.AllowanceRow{
		AttendanceCount:   attendance.Int64,
		DayOffCount:       dayOff.Int64,
		PaidLeaveCount:    paidLeave.Int64,
		AbsenceCount:      absence.Int64,
		OvertimeCount:     overtime.Int64,
		HolidayWorkCount:  holidayWork.Int64,
		AdditionalWorkPay: additionalWorkPay.Float64,
		LivestockPay:      livestockPay.Float64,
		TrailerPay:        trailerPay.Float64,
		LatenessCount:     lateness.Int64,
		EarlyLeaveCount:   earlyLeave.Int64,
		SpecialLeaveCount: specialLeave.Int64,
	}, nil
}

const purgeRestraintQuery = `
	DELETE FROM time_card_restraint
	WHERE date >= ? AND date <= ?`

// PurgeCandidateRestraint deletes the candidate database's restraint rows
// for the period, so the reimplemented pipeline can repopulate them from
// scratch before a comparison. The reference database is never touched.
func (s *TimecardStore) PurgeCandidateRestraint(ctx context.Context, period domain.Period) (int64, error) {
	res, err := s.candidate.ExecContext(ctx, purgeRestraintQuery, period.FirstDay(), period.LastDay())
	if err != nil {
		return 0, fmt.Errorf("candidate restraint purge failed: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("candidate restraint purge result unavailable: %w", err)
	}
	zerolog.Ctx(ctx).Info().Str("period", period.String()).Int64("deleted", deleted).Msg("candidate restraint purged")
	return deleted, nil
}
