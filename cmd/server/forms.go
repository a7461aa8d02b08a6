package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Simplici0/scanquote/internal/pricing"
)

// calculatorForm is a parsed calculator submission.
type calculatorForm struct {
	Inputs       pricing.Inputs
	StaffingMode pricing.StaffingMode
	LaborMode    pricing.LaborMode
}

// parseCalculatorForm reads the calculator fields. Empty or non-numeric
// values become 0; only an unknown mode is an error.
func parseCalculatorForm(r *http.Request) (calculatorForm, error) {
	form := calculatorForm{
		Inputs: pricing.Inputs{
			Pages:                   formFloat(r, "pages"),
			LaborPerPage:            formFloat(r, "labor_per_page"),
			MonthlySalaryPerWorker:  formFloat(r, "monthly_salary_per_worker"),
			ScannerMonthly:          formFloat(r, "scanner_monthly"),
			PCMonthly:               formFloat(r, "pc_monthly"),
			WorkingDaysPerMonth:     formFloat(r, "working_days_per_month"),
			OfficePerJob:            formFloat(r, "office_per_job"),
			RiskRate:                formFloat(r, "risk_rate"),
			GPRate:                  formFloat(r, "gp_rate"),
			CapacityPerPersonPerDay: formFloat(r, "capacity_per_person_per_day"),
			WorkersManual:           formFloat(r, "workers_manual"),
			DeadlineDays:            formFloat(r, "deadline_days"),
			TrialPricePerPage:       formFloat(r, "trial_price_per_page"),
		},
	}

	var err error
	if form.StaffingMode, err = pricing.ParseStaffingMode(strings.TrimSpace(r.FormValue("staffing_mode"))); err != nil {
		return form, fmt.Errorf("staffing_mode: %w", err)
	}
	if form.LaborMode, err = pricing.ParseLaborMode(strings.TrimSpace(r.FormValue("labor_mode"))); err != nil {
		return form, fmt.Errorf("labor_mode: %w", err)
	}

	return form, nil
}

// formFloat parses a numeric field, accepting thousands separators. Anything
// unparsable reads as 0.
func formFloat(r *http.Request, field string) float64 {
	raw := strings.ReplaceAll(strings.TrimSpace(r.FormValue(field)), ",", "")
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}
