package calculation

import (
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Federal brackets: a single three-band 2024-era schedule is used
//    for every supported filing year. Year selection is display-only.
//
// 2. Provincial tax: flat 12% of total income, a rough midpoint of the
//    provincial rates. Not bracketed.
//
// 3. Credits are illustrative approximations; amounts and rates are
//    not compliant with any jurisdiction's actual tax code.

// TaxBracket is one band of the progressive federal schedule. Min is
// inclusive, Max exclusive; bands are contiguous so the computed tax
// is continuous at every threshold.
type TaxBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// FederalBrackets returns the three-band schedule used by the full
// variant.
func FederalBrackets() []TaxBracket {
	return []TaxBracket{
		{decimal.Zero, decimal.NewFromInt(55867), decimal.NewFromFloat(0.15)},
		{decimal.NewFromInt(55867), decimal.NewFromInt(111733), decimal.NewFromFloat(0.205)},
		{decimal.NewFromInt(111733), decimal.NewFromInt(999999999), decimal.NewFromFloat(0.26)},
	}
}

// MarginalTax applies the schedule band by band: income inside each
// band is taxed at that band's rate only.
func MarginalTax(income decimal.Decimal, brackets []TaxBracket) decimal.Decimal {
	var total decimal.Decimal
	for _, b := range brackets {
		if income.LessThanOrEqual(b.Min) {
			break
		}
		inBand := decimal.Min(income, b.Max).Sub(b.Min)
		if inBand.GreaterThan(decimal.Zero) {
			total = total.Add(inBand.Mul(b.Rate))
		}
	}
	return total
}
