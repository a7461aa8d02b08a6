package pricing

import (
	"fmt"
	"math"
)

// StaffingMode selects how headcount is determined.
type StaffingMode string

const (
	// FixedHeadcount takes headcount from Inputs.WorkersManual.
	FixedHeadcount StaffingMode = "fixed"
	// DeadlineDriven sizes headcount to finish within Inputs.DeadlineDays.
	DeadlineDriven StaffingMode = "deadline"
)

// LaborMode selects how labor is paid.
type LaborMode string

const (
	// PerPage pays Inputs.LaborPerPage for every page.
	PerPage LaborMode = "per_page"
	// Salaried pays every worker a monthly salary for each billed month.
	Salaried LaborMode = "salaried"
)

// ParseStaffingMode converts a text form into a StaffingMode. An empty
// string selects FixedHeadcount.
func ParseStaffingMode(s string) (StaffingMode, error) {
	switch StaffingMode(s) {
	case "", FixedHeadcount:
		return FixedHeadcount, nil
	case DeadlineDriven:
		return DeadlineDriven, nil
	}
	return "", fmt.Errorf("unknown staffing mode %q", s)
}

// ParseLaborMode converts a text form into a LaborMode. An empty string
// selects PerPage.
func ParseLaborMode(s string) (LaborMode, error) {
	switch LaborMode(s) {
	case "", PerPage:
		return PerPage, nil
	case Salaried:
		return Salaried, nil
	}
	return "", fmt.Errorf("unknown labor mode %q", s)
}

// workers returns the headcount for sanitized inputs.
func (m StaffingMode) workers(in Inputs) int {
	manual := toCount(in.WorkersManual)

	switch m {
	case DeadlineDriven:
		// Without a deadline (or a usable capacity) there is nothing to size
		// against, so the manual headcount applies.
		if in.DeadlineDays <= 0 || in.CapacityPerPersonPerDay <= 0 {
			return manual
		}
		raw := in.Pages / (in.CapacityPerPersonPerDay * in.DeadlineDays)
		return max(1, toCount(math.Ceil(raw)))
	default:
		return manual
	}
}

// cost returns the labor cost for the chosen headcount and billed months.
func (m LaborMode) cost(in Inputs, workers, months int) float64 {
	switch m {
	case Salaried:
		return in.MonthlySalaryPerWorker * float64(workers) * float64(months)
	default:
		return in.Pages * in.LaborPerPage
	}
}
