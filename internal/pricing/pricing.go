package pricing

import "math"

// Inputs represents the commercial and operational parameters of a scanning job.
type Inputs struct {
	Pages                   float64 `json:"pages" yaml:"pages"`
	LaborPerPage            float64 `json:"labor_per_page" yaml:"labor_per_page"`
	MonthlySalaryPerWorker  float64 `json:"monthly_salary_per_worker" yaml:"monthly_salary_per_worker"`
	ScannerMonthly          float64 `json:"scanner_monthly" yaml:"scanner_monthly"`
	PCMonthly               float64 `json:"pc_monthly" yaml:"pc_monthly"`
	WorkingDaysPerMonth     float64 `json:"working_days_per_month" yaml:"working_days_per_month"`
	OfficePerJob            float64 `json:"office_per_job" yaml:"office_per_job"`
	RiskRate                float64 `json:"risk_rate" yaml:"risk_rate"`
	GPRate                  float64 `json:"gp_rate" yaml:"gp_rate"`
	CapacityPerPersonPerDay float64 `json:"capacity_per_person_per_day" yaml:"capacity_per_person_per_day"`
	WorkersManual           float64 `json:"workers_manual" yaml:"workers_manual"`
	DeadlineDays            float64 `json:"deadline_days" yaml:"deadline_days"`
	TrialPricePerPage       float64 `json:"trial_price_per_page" yaml:"trial_price_per_page"`
}

// Required holds the cost-plus-on-revenue pricing target.
type Required struct {
	RequiredRevenue      float64 `json:"required_revenue"`
	RequiredPricePerPage float64 `json:"required_price_per_page"`
	RiskAmount           float64 `json:"risk_amount"`
	TargetGPAmount       float64 `json:"target_gp_amount"`
	ProfitAfterRisk      float64 `json:"profit_after_risk"`
}

// Trial holds the outcome of selling at an exploratory price per page.
type Trial struct {
	TrialRevenue    float64 `json:"trial_revenue"`
	TrialRiskAmount float64 `json:"trial_risk_amount"`
	TrialProfit     float64 `json:"trial_profit"`
	TrialGPPercent  float64 `json:"trial_gp_percent"`
}

// Result groups every derived value of a calculation. Required and Trial are
// nil when their preconditions do not hold.
type Result struct {
	Valid        bool         `json:"valid"`
	StaffingMode StaffingMode `json:"staffing_mode"`
	LaborMode    LaborMode    `json:"labor_mode"`

	Workers      int     `json:"workers"`
	DaysNeeded   float64 `json:"days_needed"`
	MonthsNeeded int     `json:"months_needed"`

	MonthlyRentalPerWorker float64 `json:"monthly_rental_per_worker"`
	RentalTotal            float64 `json:"rental_total"`
	LaborCost              float64 `json:"labor_cost"`
	OfficeCost             float64 `json:"office_cost"`
	BaseCost               float64 `json:"base_cost"`

	Required *Required `json:"required"`
	Trial    *Trial    `json:"trial"`

	Errors []string `json:"errors"`
}

// Calculate derives staffing, duration, costs and pricing for a job.
// It never fails; invalid inputs are reported in Result.Errors.
func Calculate(in Inputs, staffing StaffingMode, labor LaborMode) Result {
	in = Sanitize(in)
	errs := Validate(in)

	workers := staffing.workers(in)
	days := daysNeeded(in, workers)
	months := monthsNeeded(days, in.WorkingDaysPerMonth)

	rentalPerWorker := in.ScannerMonthly + in.PCMonthly
	rentalTotal := rentalPerWorker * float64(workers) * float64(months)
	laborCost := labor.cost(in, workers, months)
	officeCost := in.OfficePerJob
	baseCost := rentalTotal + laborCost + officeCost

	return Result{
		Valid:                  len(errs) == 0,
		StaffingMode:           staffing,
		LaborMode:              labor,
		Workers:                workers,
		DaysNeeded:             days,
		MonthsNeeded:           months,
		MonthlyRentalPerWorker: rentalPerWorker,
		RentalTotal:            rentalTotal,
		LaborCost:              laborCost,
		OfficeCost:             officeCost,
		BaseCost:               baseCost,
		Required:               required(in, baseCost, errs),
		Trial:                  trial(in, baseCost),
		Errors:                 errs,
	}
}

func daysNeeded(in Inputs, workers int) float64 {
	if in.CapacityPerPersonPerDay <= 0 || workers <= 0 {
		return 0
	}
	return in.Pages / (in.CapacityPerPersonPerDay * float64(workers))
}

// monthsNeeded counts billed rental months; a partly used month is billed in full.
func monthsNeeded(days, workingDaysPerMonth float64) int {
	if days <= 0 || workingDaysPerMonth <= 0 {
		return 0
	}
	return toCount(math.Ceil(days / workingDaysPerMonth))
}

func required(in Inputs, baseCost float64, errs []string) *Required {
	denom := 1 - in.RiskRate - in.GPRate
	if baseCost <= 0 || denom <= 0 || len(errs) > 0 {
		return nil
	}

	revenue := baseCost / denom
	risk := revenue * in.RiskRate
	r := &Required{
		RequiredRevenue: revenue,
		RiskAmount:      risk,
		TargetGPAmount:  revenue * in.GPRate,
		ProfitAfterRisk: revenue - baseCost - risk,
	}
	if in.Pages > 0 {
		r.RequiredPricePerPage = revenue / in.Pages
	}
	return r
}

// trial evaluates an ad-hoc price. The GP rate target is not consulted.
func trial(in Inputs, baseCost float64) *Trial {
	if in.TrialPricePerPage <= 0 || in.Pages <= 0 || baseCost <= 0 {
		return nil
	}

	revenue := in.TrialPricePerPage * in.Pages
	risk := revenue * in.RiskRate
	profit := revenue - baseCost - risk
	t := &Trial{
		TrialRevenue:    revenue,
		TrialRiskAmount: risk,
		TrialProfit:     profit,
	}
	if revenue != 0 {
		t.TrialGPPercent = profit / revenue
	}
	return t
}

// maxCount bounds derived integer counts so float-to-int conversion stays defined.
const maxCount = math.MaxInt32

func toCount(v float64) int {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > maxCount {
		return maxCount
	}
	return int(v)
}
