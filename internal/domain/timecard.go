package domain

import (
	"fmt"
	"time"
)

// MinutesByDate maps an ISO date (YYYY-MM-DD) to the total restraint
// minutes recorded for that date. Presence of a date is significant
// independently of its value: a recorded zero is not the same as no record.
type MinutesByDate map[string]int64

// Period is the calendar month bounding one verification run.
type Period struct {
	Year  int
	Month int
}

func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("invalid month %d: must be between 1 and 12", p.Month)
	}
	if p.Year < 1 {
		return fmt.Errorf("invalid year %d", p.Year)
	}
	return nil
}

// FirstDay returns the first calendar day of the month as an ISO date.
func (p Period) FirstDay() string {
	return fmt.Sprintf("%04d-%02d-01", p.Year, p.Month)
}

// LastDay returns the last calendar day of the month as an ISO date.
func (p Period) LastDay() string {
	return time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, time.UTC).Format(time.DateOnly)
}

// NextMonthFirstDay returns the first day of the following month.
func (p Period) NextMonthFirstDay() string {
	return time.Date(p.Year, time.Month(p.Month)+1, 1, 0, 0, 0, 0, time.UTC).Format(time.DateOnly)
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Side selects which of the two timecard databases a fetch targets.
type Side string

const (
	SideReference Side = "reference"
	SideCandidate Side = "candidate"
)

// Variant is one restraint comparison dimension. ReferenceType and
// CandidateType are the record type discriminators written by the legacy
// and the reimplemented pipeline for that dimension.
type Variant struct {
	Name          string
	ReferenceType string
	CandidateType string
}

var (
	// VariantTimecard compares totals computed from punched time cards.
	VariantTimecard = Variant{Name: "timecard", ReferenceType: "TC_DC", CandidateType: "TC_DC_RECALC"}
	// VariantTachograph compares totals computed from digital tachograph logs.
	VariantTachograph = Variant{Name: "tachograph", ReferenceType: "DIGITACHO", CandidateType: "DIGITACHO_RECALC"}
)

// VariantByName resolves a CLI-facing variant name.
func VariantByName(name string) (Variant, error) {
	switch name {
	case VariantTimecard.Name:
		return VariantTimecard, nil
	case VariantTachograph.Name:
		return VariantTachograph, nil
	}
	return Variant{}, fmt.Errorf("unknown variant %q: must be %q or %q", name, VariantTimecard.Name, VariantTachograph.Name)
}

// AllowanceRow is the per-driver monthly allowance snapshot. The column
// set is fixed: it is exactly what both pipelines persist and what row
// mode compares. NULL columns are normalized to zero when the row is read.
type AllowanceRow struct {
	AttendanceCount   int64   `json:"shukkin_count"`
	DayOffCount       int64   `json:"dayoff_count"`
	PaidLeaveCount    int64   `json:"paidoff_count"`
	AbsenceCount      int64   `json:"absence_count"`
	OvertimeCount     int64   `json:"overtime_count"`
	HolidayWorkCount  int64   `json:"holidaywork_count"`
	AdditionalWorkPay float64 `json:"additionalwork_payment"`
	LivestockPay      float64 `json:"kachiku_payment"`
	TrailerPay        float64 `json:"trail_payment"`
	LatenessCount     int64   `json:"chikoku_count"`
	EarlyLeaveCount   int64   `json:"soutai_count"`
	SpecialLeaveCount int64   `json:"tokukyu_count"`
}
