// Package quote renders a calculation as a plain-text quote summary.
package quote

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/Simplici0/scanquote/internal/pricing"
)

const notAvailable = "n/a"

// Money formats v with two decimals and thousands separators, rounding half away from zero.
func Money(v float64) string {
	if !isFinite(v) {
		return notAvailable
	}
	return humanize.FormatFloat("#,###.##", decimal.NewFromFloat(v).Round(2).InexactFloat64())
}

// Percent formats a fraction as a percentage with two decimals.
func Percent(fraction float64) string {
	if !isFinite(fraction) {
		return notAvailable
	}
	return decimal.NewFromFloat(fraction).Shift(2).StringFixed(2) + "%"
}

// Days formats a fractional day count with two decimals.
func Days(v float64) string {
	if !isFinite(v) {
		return notAvailable
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Text renders the quote for in and its result res.
func Text(in pricing.Inputs, res pricing.Result) string {
	in = pricing.Sanitize(in)

	var b strings.Builder

	fmt.Fprintln(&b, "Scanning job quote")
	fmt.Fprintf(&b, "Pages: %s\n", humanize.Commaf(in.Pages))
	fmt.Fprintf(&b, "Staffing: %s\n", staffingLabel(res.StaffingMode))
	fmt.Fprintf(&b, "Labor: %s\n", laborLabel(res.LaborMode))
	b.WriteString("\n")

	fmt.Fprintln(&b, "Staffing and duration:")
	fmt.Fprintf(&b, "- Workers: %d\n", res.Workers)
	fmt.Fprintf(&b, "- Days needed: %s\n", Days(res.DaysNeeded))
	fmt.Fprintf(&b, "- Rental months: %d\n", res.MonthsNeeded)
	b.WriteString("\n")

	fmt.Fprintln(&b, "Costs:")
	fmt.Fprintf(&b, "- Monthly rental per worker: %s\n", Money(res.MonthlyRentalPerWorker))
	fmt.Fprintf(&b, "- Rental total: %s\n", Money(res.RentalTotal))
	fmt.Fprintf(&b, "- Labor: %s\n", Money(res.LaborCost))
	fmt.Fprintf(&b, "- Office: %s\n", Money(res.OfficeCost))
	fmt.Fprintf(&b, "- Base cost: %s\n", Money(res.BaseCost))
	b.WriteString("\n")

	fmt.Fprintln(&b, "Required price:")
	if req := res.Required; req != nil {
		fmt.Fprintf(&b, "- Required revenue: %s\n", Money(req.RequiredRevenue))
		fmt.Fprintf(&b, "- Price per page: %s\n", Money(req.RequiredPricePerPage))
		fmt.Fprintf(&b, "- Risk reserve (%s): %s\n", Percent(in.RiskRate), Money(req.RiskAmount))
		fmt.Fprintf(&b, "- Target gross profit (%s): %s\n", Percent(in.GPRate), Money(req.TargetGPAmount))
		fmt.Fprintf(&b, "- Profit after risk: %s\n", Money(req.ProfitAfterRisk))
	} else {
		fmt.Fprintf(&b, "- Required revenue: %s\n", notAvailable)
		fmt.Fprintf(&b, "- Price per page: %s\n", notAvailable)
	}

	if tr := res.Trial; tr != nil {
		b.WriteString("\n")
		fmt.Fprintf(&b, "Trial price (%s per page):\n", Money(in.TrialPricePerPage))
		fmt.Fprintf(&b, "- Revenue: %s\n", Money(tr.TrialRevenue))
		fmt.Fprintf(&b, "- Risk reserve: %s\n", Money(tr.TrialRiskAmount))
		fmt.Fprintf(&b, "- Profit: %s\n", Money(tr.TrialProfit))
		fmt.Fprintf(&b, "- Gross profit: %s\n", Percent(tr.TrialGPPercent))
	}

	if len(res.Errors) > 0 {
		b.WriteString("\n")
		fmt.Fprintln(&b, "Errors:")
		for _, msg := range res.Errors {
			fmt.Fprintf(&b, "- %s\n", msg)
		}
	}

	return b.String()
}

func staffingLabel(m pricing.StaffingMode) string {
	switch m {
	case pricing.DeadlineDriven:
		return "deadline-driven"
	default:
		return "fixed headcount"
	}
}

func laborLabel(m pricing.LaborMode) string {
	switch m {
	case pricing.Salaried:
		return "salaried"
	default:
		return "per page"
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
