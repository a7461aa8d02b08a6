package pricing

// Scenario overrides the page count and deadline of a shared set of inputs.
type Scenario struct {
	ID           string  `json:"id"`
	Label        string  `json:"label"`
	Pages        float64 `json:"pages"`
	DeadlineDays float64 `json:"deadline_days"`
}

// ScenarioResult pairs a scenario row with its calculation.
type ScenarioResult struct {
	Scenario Scenario `json:"scenario"`
	Result   Result   `json:"result"`
}

// Comparison holds per-row results plus the indexes of the standout rows.
// An index is -1 when no row qualifies.
type Comparison struct {
	Rows     []ScenarioResult `json:"rows"`
	Cheapest int              `json:"cheapest"`
	Fastest  int              `json:"fastest"`
}

// Apply returns a copy of base with the scenario's overrides substituted.
func (s Scenario) Apply(base Inputs) Inputs {
	base.Pages = s.Pages
	base.DeadlineDays = s.DeadlineDays
	return base
}

// Compare evaluates every scenario against base. Rows keep their input order.
func Compare(base Inputs, staffing StaffingMode, labor LaborMode, scenarios []Scenario) Comparison {
	rows := make([]ScenarioResult, len(scenarios))
	for i, s := range scenarios {
		rows[i] = ScenarioResult{
			Scenario: s,
			Result:   Calculate(s.Apply(base), staffing, labor),
		}
	}

	return Comparison{
		Rows:     rows,
		Cheapest: cheapest(rows),
		Fastest:  fastest(rows),
	}
}

// cheapest picks the lowest required price per page among priced rows.
func cheapest(rows []ScenarioResult) int {
	best := -1
	for i, row := range rows {
		req := row.Result.Required
		if req == nil {
			continue
		}
		if best < 0 || req.RequiredPricePerPage < rows[best].Result.Required.RequiredPricePerPage {
			best = i
		}
	}
	return best
}

// fastest picks the shortest completion among valid rows.
func fastest(rows []ScenarioResult) int {
	best := -1
	for i, row := range rows {
		if !row.Result.Valid || row.Result.DaysNeeded <= 0 {
			continue
		}
		if best < 0 || row.Result.DaysNeeded < rows[best].Result.DaysNeeded {
			best = i
		}
	}
	return best
}
