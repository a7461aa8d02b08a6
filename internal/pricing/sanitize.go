package pricing

import "math"

// Validation messages, in the order Validate reports them.
const (
	MsgPagesRequired      = "page count must be greater than 0"
	MsgCapacityRequired   = "per-person daily capacity must be greater than 0"
	MsgWorkingDaysMissing = "working days per month must be greater than 0"
	MsgRatesTooHigh       = "risk rate plus gross-profit rate must sum to less than 100%"
)

// Sanitize replaces every NaN or infinite field with 0 and floors
// WorkersManual to a whole headcount of at least 1.
func Sanitize(in Inputs) Inputs {
	out := Inputs{
		Pages:                   finite(in.Pages),
		LaborPerPage:            finite(in.LaborPerPage),
		MonthlySalaryPerWorker:  finite(in.MonthlySalaryPerWorker),
		ScannerMonthly:          finite(in.ScannerMonthly),
		PCMonthly:               finite(in.PCMonthly),
		WorkingDaysPerMonth:     finite(in.WorkingDaysPerMonth),
		OfficePerJob:            finite(in.OfficePerJob),
		RiskRate:                finite(in.RiskRate),
		GPRate:                  finite(in.GPRate),
		CapacityPerPersonPerDay: finite(in.CapacityPerPersonPerDay),
		WorkersManual:           finite(in.WorkersManual),
		DeadlineDays:            finite(in.DeadlineDays),
		TrialPricePerPage:       finite(in.TrialPricePerPage),
	}
	out.WorkersManual = math.Max(1, math.Floor(out.WorkersManual))
	return out
}

// Validate lists every problem with sanitized inputs. It never stops at the
// first finding.
func Validate(in Inputs) []string {
	errs := make([]string, 0)
	if in.Pages <= 0 {
		errs = append(errs, MsgPagesRequired)
	}
	if in.CapacityPerPersonPerDay <= 0 {
		errs = append(errs, MsgCapacityRequired)
	}
	if in.WorkingDaysPerMonth <= 0 {
		errs = append(errs, MsgWorkingDaysMissing)
	}
	if 1-in.RiskRate-in.GPRate <= 0 {
		errs = append(errs, MsgRatesTooHigh)
	}
	return errs
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
