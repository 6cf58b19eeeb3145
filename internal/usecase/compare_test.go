package usecase_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timecard-verify/internal/domain"
	"timecard-verify/internal/usecase"
)

func i64(v int64) *int64 { return &v }

func TestCompareMinutes(t *testing.T) {
	tests := []struct {
		name        string
		reference   domain.MinutesByDate
		candidate   domain.MinutesByDate
		wantMatch   int
		wantMism    int
		wantRefOnly int
		wantCanOnly int
		wantDetails []domain.Detail
	}{
		{
			name:      "identical single date is a match",
			reference: domain.MinutesByDate{"2025-12-01": 480},
			candidate: domain.MinutesByDate{"2025-12-01": 480},
			wantMatch: 1,
		},
		{
			name:        "date missing from candidate is reference only",
			reference:   domain.MinutesByDate{"2025-12-01": 480},
			candidate:   domain.MinutesByDate{},
			wantRefOnly: 1,
			wantDetails: []domain.Detail{
				{DriverID: 7, Date: "2025-12-01", Outcome: domain.OutcomeReferenceOnly, Reference: i64(480)},
			},
		},
		{
			name:        "date missing from reference is candidate only",
			reference:   domain.MinutesByDate{},
			candidate:   domain.MinutesByDate{"2025-12-02": 120},
			wantCanOnly: 1,
			wantDetails: []domain.Detail{
				{DriverID: 7, Date: "2025-12-02", Outcome: domain.OutcomeCandidateOnly, Candidate: i64(120)},
			},
		},
		{
			name:      "different values mismatch with signed diff",
			reference: domain.MinutesByDate{"2025-12-01": 480},
			candidate: domain.MinutesByDate{"2025-12-01": 465},
			wantMism:  1,
			wantDetails: []domain.Detail{
				{
					DriverID: 7, Date: "2025-12-01", Outcome: domain.OutcomeMismatch,
					Reference: i64(480), Candidate: i64(465), Diff: -15,
				},
			},
		},
		{
			name:        "recorded zero is not the same as absent",
			reference:   domain.MinutesByDate{"2025-12-01": 0},
			candidate:   domain.MinutesByDate{},
			wantRefOnly: 1,
			wantDetails: []domain.Detail{
				{DriverID: 7, Date: "2025-12-01", Outcome: domain.OutcomeReferenceOnly, Reference: i64(0)},
			},
		},
		{
			name:      "recorded zero on both sides matches",
			reference: domain.MinutesByDate{"2025-12-01": 0},
			candidate: domain.MinutesByDate{"2025-12-01": 0},
			wantMatch: 1,
		},
		{
			name: "mixed outcomes over one month",
			reference: domain.MinutesByDate{
				"2025-12-01": 480,
				"2025-12-02": 300,
				"2025-12-04": 250,
			},
			candidate: domain.MinutesByDate{
				"2025-12-01": 480,
				"2025-12-02": 315,
				"2025-12-03": 60,
			},
			wantMatch:   1,
			wantMism:    1,
			wantRefOnly: 1,
			wantCanOnly: 1,
			wantDetails: []domain.Detail{
				{
					DriverID: 7, Date: "2025-12-02", Outcome: domain.OutcomeMismatch,
					Reference: i64(300), Candidate: i64(315), Diff: 15,
				},
				{DriverID: 7, Date: "2025-12-03", Outcome: domain.OutcomeCandidateOnly, Candidate: i64(60)},
				{DriverID: 7, Date: "2025-12-04", Outcome: domain.OutcomeReferenceOnly, Reference: i64(250)},
			},
		},
		{
			name:      "empty maps yield an all-zero summary",
			reference: domain.MinutesByDate{},
			candidate: domain.MinutesByDate{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usecase.CompareMinutes(7, tt.reference, tt.candidate)

			assert.Equal(t, tt.wantMatch, got.Match)
			assert.Equal(t, tt.wantMism, got.Mismatch)
			assert.Equal(t, tt.wantRefOnly, got.ReferenceOnly)
			assert.Equal(t, tt.wantCanOnly, got.CandidateOnly)
			if tt.wantDetails != nil {
				assert.Equal(t, tt.wantDetails, got.Details)
			}

			// The four counters always partition the key union.
			union := make(map[string]struct{})
			for d := range tt.reference {
				union[d] = struct{}{}
			}
			for d := range tt.candidate {
				union[d] = struct{}{}
			}
			assert.Equal(t, len(union), got.Total())
		})
	}
}

func TestCompareMinutes_Idempotent(t *testing.T) {
	reference := domain.MinutesByDate{"2025-12-01": 480, "2025-12-02": 300, "2025-12-05": 90}
	candidate := domain.MinutesByDate{"2025-12-01": 470, "2025-12-03": 60}

	first := usecase.CompareMinutes(3, reference, candidate)
	second := usecase.CompareMinutes(3, reference, candidate)
	assert.Equal(t, first, second)
}

func TestCompareMinutes_DiffSignSymmetry(t *testing.T) {
	reference := domain.MinutesByDate{"2025-12-01": 480}
	candidate := domain.MinutesByDate{"2025-12-01": 465}

	forward := usecase.CompareMinutes(3, reference, candidate)
	backward := usecase.CompareMinutes(3, candidate, reference)

	require.Len(t, forward.Details, 1)
	require.Len(t, backward.Details, 1)
	assert.Equal(t, int64(-15), forward.Details[0].Diff)
	assert.Equal(t, int64(15), backward.Details[0].Diff)
}

func TestCompareMinutes_DetailCap(t *testing.T) {
	reference := make(domain.MinutesByDate)
	candidate := make(domain.MinutesByDate)
	for day := 1; day <= 25; day++ {
		date := fmt.Sprintf("2025-12-%02d", day)
		reference[date] = 480
		candidate[date] = 400
	}

	got := usecase.CompareMinutes(3, reference, candidate)

	assert.Equal(t, 25, got.Mismatch)
	assert.Len(t, got.Details, domain.MaxDetails)
	// The retained sample is the first 20 dates in ascending order.
	assert.Equal(t, "2025-12-01", got.Details[0].Date)
	assert.Equal(t, "2025-12-20", got.Details[domain.MaxDetails-1].Date)
}

func TestCompareAllowanceRows(t *testing.T) {
	base := domain.AllowanceRow{
		AttendanceCount:   20,
		DayOffCount:       8,
		PaidLeaveCount:    1,
		OvertimeCount:     3,
		AdditionalWorkPay: 5000,
		TrailerPay:        100.0,
	}

	tests := []struct {
		name        string
		reference   map[int]domain.AllowanceRow
		candidate   map[int]domain.AllowanceRow
		wantMatch   int
		wantMism    int
		wantRefOnly int
		wantCanOnly int
		check       func(t *testing.T, s domain.Summary)
	}{
		{
			name:      "identical rows match",
			reference: map[int]domain.AllowanceRow{1: base},
			candidate: map[int]domain.AllowanceRow{1: base},
			wantMatch: 1,
		},
		{
			name:      "payment within tolerance matches",
			reference: map[int]domain.AllowanceRow{1: {OvertimeCount: 3, TrailerPay: 100.0}},
			candidate: map[int]domain.AllowanceRow{1: {OvertimeCount: 3, TrailerPay: 100.005}},
			wantMatch: 1,
		},
		{
			name:      "payment at exact tolerance boundary matches",
			reference: map[int]domain.AllowanceRow{1: {TrailerPay: 100.0}},
			candidate: map[int]domain.AllowanceRow{1: {TrailerPay: 100.01}},
			wantMatch: 1,
		},
		{
			name:      "payment just past tolerance mismatches",
			reference: map[int]domain.AllowanceRow{1: {TrailerPay: 100.0}},
			candidate: map[int]domain.AllowanceRow{1: {TrailerPay: 100.0101}},
			wantMism:  1,
			check: func(t *testing.T, s domain.Summary) {
				require.Len(t, s.Details, 1)
				assert.Equal(t, map[string]domain.FieldDiff{
					"trail_payment": {Reference: 100.0, Candidate: 100.0101},
				}, s.Details[0].FieldDiffs)
			},
		},
		{
			name:      "counter fields compare exactly",
			reference: map[int]domain.AllowanceRow{1: {OvertimeCount: 3}},
			candidate: map[int]domain.AllowanceRow{1: {OvertimeCount: 5}},
			wantMism:  1,
			check: func(t *testing.T, s domain.Summary) {
				require.Len(t, s.Details, 1)
				assert.Equal(t, map[string]domain.FieldDiff{
					"overtime_count": {Reference: 3, Candidate: 5},
				}, s.Details[0].FieldDiffs)
			},
		},
		{
			name:      "mismatch detail carries only differing fields",
			reference: map[int]domain.AllowanceRow{1: base},
			candidate: map[int]domain.AllowanceRow{1: func() domain.AllowanceRow {
				row := base
				row.OvertimeCount = 5
				row.AdditionalWorkPay = 5100
				return row
			}()},
			wantMism: 1,
			check: func(t *testing.T, s domain.Summary) {
				require.Len(t, s.Details, 1)
				assert.Len(t, s.Details[0].FieldDiffs, 2)
				assert.Contains(t, s.Details[0].FieldDiffs, "overtime_count")
				assert.Contains(t, s.Details[0].FieldDiffs, "additionalwork_payment")
			},
		},
		{
			name:        "row absence beats field comparison",
			reference:   map[int]domain.AllowanceRow{1: base, 2: base},
			candidate:   map[int]domain.AllowanceRow{2: base, 3: base},
			wantMatch:   1,
			wantRefOnly: 1,
			wantCanOnly: 1,
			check: func(t *testing.T, s domain.Summary) {
				require.Len(t, s.Details, 2)
				// driver id ascending
				assert.Equal(t, 1, s.Details[0].DriverID)
				assert.Equal(t, domain.OutcomeReferenceOnly, s.Details[0].Outcome)
				assert.NotNil(t, s.Details[0].ReferenceRow)
				assert.Equal(t, 3, s.Details[1].DriverID)
				assert.Equal(t, domain.OutcomeCandidateOnly, s.Details[1].Outcome)
				assert.NotNil(t, s.Details[1].CandidateRow)
			},
		},
		{
			name:      "empty maps yield an all-zero summary",
			reference: map[int]domain.AllowanceRow{},
			candidate: map[int]domain.AllowanceRow{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usecase.CompareAllowanceRows(tt.reference, tt.candidate)

			assert.Equal(t, tt.wantMatch, got.Match)
			assert.Equal(t, tt.wantMism, got.Mismatch)
			assert.Equal(t, tt.wantRefOnly, got.ReferenceOnly)
			assert.Equal(t, tt.wantCanOnly, got.CandidateOnly)

			union := make(map[int]struct{})
			for id := range tt.reference {
				union[id] = struct{}{}
			}
			for id := range tt.candidate {
				union[id] = struct{}{}
			}
			assert.Equal(t, len(union), got.Total())

			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}
