package usecase

import (
	"math"
	"sort"

	"timecard-verify/internal/domain"
)

// paymentTolerance is the absolute tolerance applied to floating-point
// allowance columns. A difference of exactly this value counts as equal.
const paymentTolerance = 0.01

// CompareMinutes classifies every date present on either side for one
// driver. Dates are visited in ascending order so the retained detail
// sample is reproducible. A date recorded with zero minutes is a recorded
// date: it matches an equally recorded candidate value, not an absent one.
func CompareMinutes(driverID int, reference, candidate domain.MinutesByDate) domain.Summary {
	dates := make([]string, 0, len(reference)+len(candidate))
	for d := range reference {
		dates = append(dates, d)
	}
	for d := range candidate {
		if _, ok := reference[d]; !ok {
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)

	var summary domain.Summary
	for _, date := range dates {
		refVal, refOK := reference[date]
		candVal, candOK := candidate[date]
		switch {
		case refOK && candOK && refVal == candVal:
			summary.Add(domain.OutcomeMatch, domain.Detail{})
		case !refOK:
			v := candVal
			summary.Add(domain.OutcomeCandidateOnly, domain.Detail{
				DriverID:  driverID,
				Date:      date,
				Candidate: &v,
			})
		case !candOK:
			v := refVal
			summary.Add(domain.OutcomeReferenceOnly, domain.Detail{
				DriverID:  driverID,
				Date:      date,
				Reference: &v,
			})
		default:
			r, c := refVal, candVal
			summary.Add(domain.OutcomeMismatch, domain.Detail{
				DriverID:  driverID,
				Date:      date,
				Reference: &r,
				Candidate: &c,
				Diff:      c - r, // negative means the candidate underestimates
			})
		}
	}
	return summary
}

// allowanceField describes one compared column of the snapshot row.
type allowanceField struct {
	name    string
	value   func(domain.AllowanceRow) float64
	isFloat bool
}

// allowanceFields is the fixed, explicit column set compared in row mode.
var allowanceFields = []allowanceField{
	{"shukkin_count", func(r domain.AllowanceRow) float64 { return float64(r.AttendanceCount) }, false},
	{"dayoff_count", func(r domain.AllowanceRow) float64 { return float64(r.DayOffCount) }, false},
	{"paidoff_count", func(r domain.AllowanceRow) float64 { return float64(r.PaidLeaveCount) }, false},
	{"absence_count", func(r domain.AllowanceRow) float64 { return float64(r.AbsenceCount) }, false},
	{"overtime_count", func(r domain.AllowanceRow) float64 { return float64(r.OvertimeCount) }, false},
	{"holidaywork_count", func(r domain.AllowanceRow) float64 { return float64(r.HolidayWorkCount) }, false},
	{"additionalwork_payment", func(r domain.AllowanceRow) float64 { return r.AdditionalWorkPay }, true},
	{"kachiku_payment", func(r domain.AllowanceRow) float64 { return r.LivestockPay }, true},
	{"trail_payment", func(r domain.AllowanceRow) float64 { return r.TrailerPay }, true},
	{"chikoku_count", func(r domain.AllowanceRow) float64 { return float64(r.LatenessCount) }, false},
	{"soutai_count", func(r domain.AllowanceRow) float64 { return float64(r.EarlyLeaveCount) }, false},
	{"tokukyu_count", func(r domain.AllowanceRow) float64 { return float64(r.SpecialLeaveCount) }, false},
}

func fieldEqual(f allowanceField, reference, candidate float64) bool {
	if f.isFloat {
		return math.Abs(reference-candidate) <= paymentTolerance
	}
	return reference == candidate
}

// CompareAllowanceRows classifies every driver with a snapshot row on
// either side, in ascending driver id order. Row absence takes priority
// over field comparison; a row matches only when every column is equal,
// and a mismatch detail carries only the differing columns.
func CompareAllowanceRows(reference, candidate map[int]domain.AllowanceRow) domain.Summary {
	ids := make([]int, 0, len(reference)+len(candidate))
	for id := range reference {
		ids = append(ids, id)
	}
	for id := range candidate {
		if _, ok := reference[id]; !ok {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	var summary domain.Summary
	for _, id := range ids {
		refRow, refOK := reference[id]
		candRow, candOK := candidate[id]
		switch {
		case !refOK:
			row := candRow
			summary.Add(domain.OutcomeCandidateOnly, domain.Detail{
				DriverID:     id,
				CandidateRow: &row,
			})
		case !candOK:
			row := refRow
			summary.Add(domain.OutcomeReferenceOnly, domain.Detail{
				DriverID:     id,
				ReferenceRow: &row,
			})
		default:
			diffs := make(map[string]domain.FieldDiff)
			for _, f := range allowanceFields {
				refVal, candVal := f.value(refRow), f.value(candRow)
				if !fieldEqual(f, refVal, candVal) {
					diffs[f.name] = domain.FieldDiff{Reference: refVal, Candidate: candVal}
				}
			}
			if len(diffs) == 0 {
				summary.Add(domain.OutcomeMatch, domain.Detail{})
			} else {
				summary.Add(domain.OutcomeMismatch, domain.Detail{
					DriverID:   id,
					FieldDiffs: diffs,
				})
			}
		}
	}
	return summary
}
