package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/claimit/claimit/internal/domain"
)

var capitalGainsInclusion = decimal.NewFromFloat(0.5)

// TotalIncome aggregates income across whatever entries are present.
// Quick mode uses the single raw entry; detailed mode sums T4 gross
// income, T5 interest + taxable dividends + half of capital gains, and
// positive self-employment and rental nets. A negative net is excluded
// from income, never subtracted as a loss.
func TotalIncome(a *domain.AnswerSet) decimal.Decimal {
	if a.Mode == domain.ModeQuick {
		return a.QuickIncome.Decimal()
	}

	var total decimal.Decimal
	for _, s := range a.T4Slips {
		total = total.Add(s.Income.Decimal())
	}
	for _, s := range a.T5Slips {
		total = total.Add(s.Interest.Decimal())
		total = total.Add(s.DividendsTaxable.Decimal())
		total = total.Add(s.CapitalGains.Decimal().Mul(capitalGainsInclusion))
	}

	if net := businessNet(a.SelfEmployment); net.GreaterThan(decimal.Zero) {
		total = total.Add(net)
	}
	if net := businessNet(a.RentalIncome); net.GreaterThan(decimal.Zero) {
		total = total.Add(net)
	}
	return total
}

// TaxWithheld sums tax already deducted at source. Detailed mode only
// counts T4 box 22; withholding on other slip kinds is deliberately
// not summed.
func TaxWithheld(a *domain.AnswerSet) decimal.Decimal {
	if a.Mode == domain.ModeQuick {
		return a.QuickTaxPaid.Decimal()
	}
	var total decimal.Decimal
	for _, s := range a.T4Slips {
		total = total.Add(s.TaxDeducted.Decimal())
	}
	return total
}

// businessNet is gross minus expenses, unfloored; callers decide
// whether a loss counts.
func businessNet(b domain.BusinessIncome) decimal.Decimal {
	return b.Gross.Decimal().Sub(b.Expenses.Decimal())
}
