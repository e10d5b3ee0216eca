package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/claimit/claimit/internal/domain"
)

// Flat benefit additions. These augment the refund directly; no tax
// rate applies.

// climateBenefit looks up the province's climate-action rebate: single
// amount, spouse amount when applicable, child amount per child.
// Provinces absent from the table contribute zero.
func (e *EstimateEngine) climateBenefit(a *domain.AnswerSet) decimal.Decimal {
	rebate, ok := domain.ClimateAction[a.Province]
	if !ok {
		return decimal.Zero
	}
	total := rebate.Single
	if a.HasSpouse() {
		total = total.Add(rebate.Spouse)
	}
	kids := decimal.NewFromInt(int64(a.KidsUnder6 + a.Kids6To17))
	return total.Add(rebate.Child.Mul(kids))
}

// salesCredit is the simplified universal sales-tax credit paid below
// a fixed income ceiling.
func (e *EstimateEngine) salesCredit(a *domain.AnswerSet, income decimal.Decimal) decimal.Decimal {
	if income.GreaterThanOrEqual(e.SalesCreditCeiling) {
		return decimal.Zero
	}
	base := e.SalesCreditSingle
	if a.HasSpouse() {
		base = e.SalesCreditSpouse
	}
	kids := decimal.NewFromInt(int64(a.KidsUnder6 + a.Kids6To17))
	return base.Add(e.SalesCreditPerChild.Mul(kids))
}

// rentCredit is the provincial renter benefit, currently Ontario only:
// min(rent x rate + base, cap) when the rent flag is set.
func (e *EstimateEngine) rentCredit(a *domain.AnswerSet) decimal.Decimal {
	if a.Province != domain.ProvinceON || !a.HasLifeEvent("paidRent") {
		return decimal.Zero
	}
	amount := a.RentAmount.Decimal().Mul(e.RentCreditRate).Add(e.RentCreditBase)
	return decimal.Min(amount, e.RentCreditCap)
}
