package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"timecard-verify/internal/domain"
	"timecard-verify/internal/report"
	"timecard-verify/internal/usecase"
)

type verifierCmd struct {
	uc *usecase.VerificationUseCase

	year    int
	month   int
	drivers string
	asJSON  bool

	variant string

	mappingPath string
	outPath     string
	noVerify    bool
}

func newRootCmd(uc *usecase.VerificationUseCase) *cobra.Command {
	vc := &verifierCmd{uc: uc}

	root := &cobra.Command{
		Use:           "verifier",
		Short:         "Compare persisted timecard computation results between the legacy and the reimplemented pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().IntVar(&vc.year, "year", 2025, "Target year")
	root.PersistentFlags().IntVar(&vc.month, "month", 12, "Target month")
	root.PersistentFlags().StringVar(&vc.drivers, "drivers", "", "Comma-separated driver ids (default: active population)")

	compare := &cobra.Command{
		Use:   "compare",
		Short: "Compare per-date restraint minutes",
		RunE:  vc.runCompare,
	}
	compare.Flags().StringVar(&vc.variant, "variant", domain.VariantTimecard.Name, "Comparison variant (timecard or tachograph)")
	compare.Flags().BoolVar(&vc.asJSON, "json", false, "Emit the summary as JSON")

	allowance := &cobra.Command{
		Use:   "compare-allowance",
		Short: "Compare monthly allowance snapshot rows",
		RunE:  vc.runCompareAllowance,
	}
	allowance.Flags().BoolVar(&vc.asJSON, "json", false, "Emit the summary as JSON")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Purge candidate restraint rows for the period",
		RunE:  vc.runInit,
	}

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Run all comparisons and write the coverage report",
		RunE:  vc.runReport,
	}
	reportCmd.Flags().StringVar(&vc.mappingPath, "mapping", "COVERAGE_MAP.json", "Path to the function mapping file")
	reportCmd.Flags().StringVar(&vc.outPath, "out", "COVERAGE.md", "Report output path")
	reportCmd.Flags().BoolVar(&vc.noVerify, "no-verify", false, "Skip database verification")

	root.AddCommand(compare, allowance, initCmd, reportCmd)
	return root
}

func (vc *verifierCmd) period() (domain.Period, error) {
	p := domain.Period{Year: vc.year, Month: vc.month}
	if err := p.Validate(); err != nil {
		return domain.Period{}, err
	}
	return p, nil
}

func (vc *verifierCmd) runCompare(cmd *cobra.Command, args []string) error {
	period, err := vc.period()
	if err != nil {
		return err
	}
	variant, err := domain.VariantByName(vc.variant)
	if err != nil {
		return err
	}
	explicit, err := parseDrivers(vc.drivers)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	ids, err := vc.uc.ResolveDrivers(ctx, period, explicit)
	if err != nil {
		return err
	}
	summary, err := vc.uc.VerifyRestraint(ctx, period, variant, ids)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Restraint comparison (%s) for %s\n\n", variant.Name, period)
	return printSummary(cmd.OutOrStdout(), summary, vc.asJSON)
}

func (vc *verifierCmd) runCompareAllowance(cmd *cobra.Command, args []string) error {
	period, err := vc.period()
	if err != nil {
		return err
	}
	explicit, err := parseDrivers(vc.drivers)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	ids, err := vc.uc.ResolveDrivers(ctx, period, explicit)
	if err != nil {
		return err
	}
	summary, err := vc.uc.VerifyAllowance(ctx, period, ids)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Allowance comparison for %s\n\n", period)
	return printSummary(cmd.OutOrStdout(), summary, vc.asJSON)
}

func (vc *verifierCmd) runInit(cmd *cobra.Command, args []string) error {
	period, err := vc.period()
	if err != nil {
		return err
	}
	deleted, err := vc.uc.PurgeCandidate(cmd.Context(), period)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d candidate restraint rows for %s\n", deleted, period)
	return nil
}

func (vc *verifierCmd) runReport(cmd *cobra.Command, args []string) error {
	period, err := vc.period()
	if err != nil {
		return err
	}
	mapping, err := report.LoadMappingDoc(vc.mappingPath)
	if err != nil {
		return err
	}

	dimensions := []report.Dimension{
		{Label: "Restraint (timecard)"},
		{Label: "Restraint (tachograph)"},
		{Label: "Allowance"},
	}
	if !vc.noVerify {
		ctx := cmd.Context()
		explicit, err := parseDrivers(vc.drivers)
		if err != nil {
			return err
		}
		ids, err := vc.uc.ResolveDrivers(ctx, period, explicit)
		if err != nil {
			return err
		}
		if dimensions[0].Summary, err = vc.uc.VerifyRestraint(ctx, period, domain.VariantTimecard, ids); err != nil {
			return err
		}
		if dimensions[1].Summary, err = vc.uc.VerifyRestraint(ctx, period, domain.VariantTachograph, ids); err != nil {
			return err
		}
		if dimensions[2].Summary, err = vc.uc.VerifyAllowance(ctx, period, ids); err != nil {
			return err
		}
	}

	builder := &report.Builder{
		Mapping:     mapping,
		Period:      period,
		Dimensions:  dimensions,
		GeneratedAt: time.Now(),
	}
	if err := builder.WriteFile(vc.outPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", vc.outPath)
	return nil
}

func parseDrivers(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid driver id %q: %w", p, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func printSummary(w io.Writer, s *domain.Summary, asJSON bool) error {
	if asJSON {
		out, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		fmt.Fprintln(w, string(out))
		return nil
	}

	fmt.Fprintf(w, "Match:          %d\n", s.Match)
	fmt.Fprintf(w, "Mismatch:       %d\n", s.Mismatch)
	fmt.Fprintf(w, "Reference only: %d\n", s.ReferenceOnly)
	fmt.Fprintf(w, "Candidate only: %d\n", s.CandidateOnly)
	if len(s.Details) == 0 {
		return nil
	}

	fmt.Fprintf(w, "\n--- details (first %d) ---\n", domain.MaxDetails)
	for _, d := range s.Details {
		fmt.Fprintln(w, formatDetail(d))
	}
	return nil
}

func formatDetail(d domain.Detail) string {
	switch {
	case d.Outcome == domain.OutcomeMismatch && len(d.FieldDiffs) > 0:
		lines := []string{fmt.Sprintf("  driver %d:", d.DriverID)}
		fields := make([]string, 0, len(d.FieldDiffs))
		for name := range d.FieldDiffs {
			fields = append(fields, name)
		}
		sort.Strings(fields)
		for _, name := range fields {
			fd := d.FieldDiffs[name]
			lines = append(lines, fmt.Sprintf("    %s: reference=%v candidate=%v", name, fd.Reference, fd.Candidate))
		}
		return strings.Join(lines, "\n")
	case d.Outcome == domain.OutcomeMismatch:
		return fmt.Sprintf("  driver %d / %s: reference=%d candidate=%d (diff %+d)",
			d.DriverID, d.Date, *d.Reference, *d.Candidate, d.Diff)
	case d.Date != "":
		return fmt.Sprintf("  driver %d / %s: %s (reference=%s candidate=%s)",
			d.DriverID, d.Date, d.Outcome, formatMinutes(d.Reference), formatMinutes(d.Candidate))
	default:
		return fmt.Sprintf("  driver %d: %s", d.DriverID, d.Outcome)
	}
}

func formatMinutes(v *int64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatInt(*v, 10)
}
