package domain

// Outcome classifies the comparison result for a single key.
type Outcome string

const (
	OutcomeMatch         Outcome = "MATCH"
	OutcomeMismatch      Outcome = "MISMATCH"
	OutcomeReferenceOnly Outcome = "REFERENCE_ONLY"
	OutcomeCandidateOnly Outcome = "CANDIDATE_ONLY"
)

// MaxDetails bounds how many detail samples a summary retains. Outcomes
// past the bound are still counted, only their details are dropped.
const MaxDetails = 20

// FieldDiff holds both sides of a differing allowance column.
type FieldDiff struct {
	Reference float64 `json:"reference"`
	Candidate float64 `json:"candidate"`
}

// Detail describes one non-matching key. Date and the scalar value fields
// are set in restraint (per-date) comparisons; FieldDiffs and the row
// pointers are set in allowance (per-driver row) comparisons.
type Detail struct {
	DriverID     int                  `json:"driver_id"`
	Date         string               `json:"date,omitempty"`
	Outcome      Outcome              `json:"outcome"`
	Reference    *int64               `json:"reference,omitempty"`
	Candidate    *int64               `json:"candidate,omitempty"`
	Diff         int64                `json:"diff,omitempty"`
	FieldDiffs   map[string]FieldDiff `json:"field_diffs,omitempty"`
	ReferenceRow *AllowanceRow        `json:"reference_row,omitempty"`
	CandidateRow *AllowanceRow        `json:"candidate_row,omitempty"`
}

// Summary aggregates outcome counts over a key union, plus a bounded
// sample of non-matching details in classification order.
type Summary struct {
	Match         int      `json:"match"`
	Mismatch      int      `json:"mismatch"`
	ReferenceOnly int      `json:"reference_only"`
	CandidateOnly int      `json:"candidate_only"`
	Details       []Detail `json:"details,omitempty"`
}

// Add records one outcome. The detail is retained only while the sample
// bound has room; Match outcomes never carry a detail.
func (s *Summary) Add(outcome Outcome, d Detail) {
	switch outcome {
	case OutcomeMatch:
		s.Match++
		return
	case OutcomeMismatch:
		s.Mismatch++
	case OutcomeReferenceOnly:
		s.ReferenceOnly++
	case OutcomeCandidateOnly:
		s.CandidateOnly++
	default:
		return
	}
	if len(s.Details) < MaxDetails {
		d.Outcome = outcome
		s.Details = append(s.Details, d)
	}
}

// Merge folds another summary into s. Counts always add; details append
// only while the cumulative sample bound has room, so drivers processed
// late may contribute counted but unretained outcomes.
func (s *Summary) Merge(other Summary) {
	s.Match += other.Match
	s.Mismatch += other.Mismatch
	s.ReferenceOnly += other.ReferenceOnly
	s.CandidateOnly += other.CandidateOnly
	for _, d := range other.Details {
		if len(s.Details) >= MaxDetails {
			break
		}
		s.Details = append(s.Details, d)
	}
}

// Total is the size of the key union the summary covers.
func (s *Summary) Total() int {
	return s.Match + s.Mismatch + s.ReferenceOnly + s.CandidateOnly
}
