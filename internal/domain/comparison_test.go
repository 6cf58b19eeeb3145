package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary_Add(t *testing.T) {
	var s Summary

	s.Add(OutcomeMatch, Detail{})
	s.Add(OutcomeMismatch, Detail{DriverID: 1, Date: "2025-12-01"})
	s.Add(OutcomeReferenceOnly, Detail{DriverID: 2, Date: "2025-12-01"})
	s.Add(OutcomeCandidateOnly, Detail{DriverID: 3, Date: "2025-12-01"})

	assert.Equal(t, 1, s.Match)
	assert.Equal(t, 1, s.Mismatch)
	assert.Equal(t, 1, s.ReferenceOnly)
	assert.Equal(t, 1, s.CandidateOnly)
	assert.Equal(t, 4, s.Total())

	// matches never leave a detail behind
	assert.Len(t, s.Details, 3)
	assert.Equal(t, OutcomeMismatch, s.Details[0].Outcome)
}

func TestSummary_AddCapsDetails(t *testing.T) {
	var s Summary
	for i := 0; i < MaxDetails+5; i++ {
		s.Add(OutcomeMismatch, Detail{DriverID: i})
	}

	assert.Equal(t, MaxDetails+5, s.Mismatch)
	assert.Len(t, s.Details, MaxDetails)
	assert.Equal(t, MaxDetails-1, s.Details[MaxDetails-1].DriverID)
}

func TestSummary_MergeHonorsCumulativeCap(t *testing.T) {
	var cumulative Summary

	var first Summary
	for i := 0; i < 15; i++ {
		first.Add(OutcomeMismatch, Detail{DriverID: 1})
	}
	var second Summary
	for i := 0; i < 15; i++ {
		second.Add(OutcomeReferenceOnly, Detail{DriverID: 2})
	}

	cumulative.Merge(first)
	cumulative.Merge(second)

	assert.Equal(t, 15, cumulative.Mismatch)
	assert.Equal(t, 15, cumulative.ReferenceOnly)
	assert.Equal(t, 30, cumulative.Total())
	assert.Len(t, cumulative.Details, MaxDetails)
	// the later summary contributes only the remaining sample slots
	assert.Equal(t, 1, cumulative.Details[14].DriverID)
	assert.Equal(t, 2, cumulative.Details[15].DriverID)
}

func TestPeriod(t *testing.T) {
	tests := []struct {
		name               string
		period             Period
		wantFirst          string
		wantLast           string
		wantNextMonthFirst string
	}{
		{"mid-year month", Period{Year: 2025, Month: 6}, "2025-06-01", "2025-06-30", "2025-07-01"},
		{"december rolls into next year", Period{Year: 2025, Month: 12}, "2025-12-01", "2025-12-31", "2026-01-01"},
		{"february leap year", Period{Year: 2024, Month: 2}, "2024-02-01", "2024-02-29", "2024-03-01"},
		{"february non-leap year", Period{Year: 2025, Month: 2}, "2025-02-01", "2025-02-28", "2025-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, tt.period.Validate())
			assert.Equal(t, tt.wantFirst, tt.period.FirstDay())
			assert.Equal(t, tt.wantLast, tt.period.LastDay())
			assert.Equal(t, tt.wantNextMonthFirst, tt.period.NextMonthFirstDay())
		})
	}

	assert.Error(t, Period{Year: 2025, Month: 0}.Validate())
	assert.Error(t, Period{Year: 2025, Month: 13}.Validate())
}

func TestVariantByName(t *testing.T) {
	v, err := VariantByName("timecard")
	assert.NoError(t, err)
	assert.Equal(t, VariantTimecard, v)

	v, err = VariantByName("tachograph")
	assert.NoError(t, err)
	assert.Equal(t, VariantTachograph, v)

	_, err = VariantByName("bogus")
	assert.Error(t, err)
}
