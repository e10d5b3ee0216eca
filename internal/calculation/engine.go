package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/claimit/claimit/internal/domain"
)

// Variant selects which estimate formula runs. The full variant is the
// production pipeline; the demo variant is the deliberately cruder
// formula used for embeds and previews. One engine serves both so the
// two can never drift apart again.
type Variant string

const (
	VariantFull Variant = "full"
	VariantDemo Variant = "demo"
)

// CreditItem is one row of the results summary.
type CreditItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// EstimateResult is everything the results screen needs. Estimate may
// be negative (amount owing).
type EstimateResult struct {
	Estimate       int64           `json:"estimate"`
	TotalIncome    decimal.Decimal `json:"total_income"`
	TaxWithheld    decimal.Decimal `json:"tax_withheld"`
	Liability      decimal.Decimal `json:"liability"`
	CreditsFound   []CreditItem    `json:"credits_found"`
	CreditsMissing []CreditItem    `json:"credits_missing"`
}

// EstimateEngine computes a refund/owing estimate from an AnswerSet.
// ComputeEstimate is pure: it never mutates the answers, never errors,
// and identical answers always produce identical results, so the UI
// can call it on every keystroke.
type EstimateEngine struct {
	Variant Variant

	Brackets       []TaxBracket
	ProvincialRate decimal.Decimal
	LowestRate     decimal.Decimal

	BasicPersonalAmount  decimal.Decimal
	EmploymentAmount     decimal.Decimal
	SpousalThreshold     decimal.Decimal
	AgeAmount            decimal.Decimal
	AgeIncomeCeiling     decimal.Decimal
	RRSPRate             decimal.Decimal
	ChildcareLimitUnder6 decimal.Decimal
	ChildcareLimit6To17  decimal.Decimal
	MedicalFloorRate     decimal.Decimal
	DonationFirstTier    decimal.Decimal
	DonationHighRate     decimal.Decimal
	WFHPerDiem           decimal.Decimal
	WFHCap               decimal.Decimal
	FirstHomeAmount      decimal.Decimal

	SalesCreditCeiling  decimal.Decimal
	SalesCreditSingle   decimal.Decimal
	SalesCreditSpouse   decimal.Decimal
	SalesCreditPerChild decimal.Decimal
	RentCreditRate      decimal.Decimal
	RentCreditBase      decimal.Decimal
	RentCreditCap       decimal.Decimal

	// Demo-variant constants.
	DemoAverageRate   decimal.Decimal
	DemoSpousalBoost  decimal.Decimal
	DemoSpouseCeiling decimal.Decimal
	DemoRRSPRate      decimal.Decimal
	DemoRentRate      decimal.Decimal
	DemoRentCap       decimal.Decimal
}

// NewEstimateEngine creates the full-variant engine with the reference
// constants.
func NewEstimateEngine() *EstimateEngine {
	return &EstimateEngine{
		Variant:        VariantFull,
		Brackets:       FederalBrackets(),
		ProvincialRate: decimal.NewFromFloat(0.12),
		LowestRate:     decimal.NewFromFloat(0.15),

		BasicPersonalAmount:  decimal.NewFromInt(16129),
		EmploymentAmount:     decimal.NewFromInt(1433),
		SpousalThreshold:     decimal.NewFromInt(16129),
		AgeAmount:            decimal.NewFromInt(8790),
		AgeIncomeCeiling:     decimal.NewFromInt(98309),
		RRSPRate:             decimal.NewFromFloat(0.25),
		ChildcareLimitUnder6: decimal.NewFromInt(8000),
		ChildcareLimit6To17:  decimal.NewFromInt(5000),
		MedicalFloorRate:     decimal.NewFromFloat(0.03),
		DonationFirstTier:    decimal.NewFromInt(200),
		DonationHighRate:     decimal.NewFromFloat(0.29),
		WFHPerDiem:           decimal.NewFromInt(2),
		WFHCap:               decimal.NewFromInt(500),
		FirstHomeAmount:      decimal.NewFromInt(10000),

		SalesCreditCeiling:  decimal.NewFromInt(50000),
		SalesCreditSingle:   decimal.NewFromInt(340),
		SalesCreditSpouse:   decimal.NewFromInt(680),
		SalesCreditPerChild: decimal.NewFromInt(179),
		RentCreditRate:      decimal.NewFromFloat(0.05),
		RentCreditBase:      decimal.NewFromInt(243),
		RentCreditCap:       decimal.NewFromInt(1248),

		DemoAverageRate:   decimal.NewFromFloat(0.25),
		DemoSpousalBoost:  decimal.NewFromInt(1500),
		DemoSpouseCeiling: decimal.NewFromInt(15000),
		DemoRRSPRate:      decimal.NewFromFloat(0.30),
		DemoRentRate:      decimal.NewFromFloat(0.05),
		DemoRentCap:       decimal.NewFromInt(840),
	}
}

// NewDemoEngine creates the same engine switched to the demo formula.
func NewDemoEngine() *EstimateEngine {
	e := NewEstimateEngine()
	e.Variant = VariantDemo
	return e
}

// ComputeEstimate maps an AnswerSet to a refund/owing estimate plus
// the classified credit lists.
func (e *EstimateEngine) ComputeEstimate(a *domain.AnswerSet) EstimateResult {
	income := TotalIncome(a)
	withheld := TaxWithheld(a)

	result := EstimateResult{
		TotalIncome: income,
		TaxWithheld: withheld,
	}
	result.CreditsFound, result.CreditsMissing = e.classifyCredits(a, income)

	// An entirely empty form estimates to zero rather than paying out
	// benefits on no information.
	if income.IsZero() && withheld.IsZero() {
		return result
	}

	var refund decimal.Decimal
	switch e.Variant {
	case VariantDemo:
		refund, result.Liability = e.demoRefund(a, income, withheld)
	default:
		refund, result.Liability = e.fullRefund(a, income, withheld)
	}

	result.Estimate = refund.Round(0).IntPart()
	return result
}

// fullRefund runs the progressive schedule and the ordered credit
// adjustments. The liability is floored at zero once, after all
// adjustments, then flat benefits are added on top of the refund.
func (e *EstimateEngine) fullRefund(a *domain.AnswerSet, income, withheld decimal.Decimal) (refund, liability decimal.Decimal) {
	tax := MarginalTax(income, e.Brackets)
	tax = tax.Add(income.Mul(e.ProvincialRate))

	// 1. Basic personal amount.
	tax = tax.Sub(e.BasicPersonalAmount.Mul(e.LowestRate))

	// 2. Canada employment amount.
	if a.HasIncomeSource("t4") || a.Mode == domain.ModeQuick {
		tax = tax.Sub(e.EmploymentAmount.Mul(e.LowestRate))
	}

	// 3. Spousal amount. A spouse with no reported income claims the
	// full threshold.
	if a.HasSpouse() && a.SpouseIncomeBracket != domain.SpouseBracketHigh && a.SpouseIncomeBracket != domain.SpouseBracketUnset {
		base := decimal.Max(decimal.Zero, e.SpousalThreshold.Sub(a.SpouseIncome.Decimal()))
		tax = tax.Sub(base.Mul(e.LowestRate))
	}

	// 4. Age amount, income-tested.
	if a.IsSenior() && income.LessThan(e.AgeIncomeCeiling) {
		tax = tax.Sub(e.AgeAmount.Mul(e.LowestRate))
	}

	// 5. RRSP at a fixed marginal-rate approximation.
	if rrsp := a.RRSPContribution.Decimal(); rrsp.GreaterThan(decimal.Zero) {
		tax = tax.Sub(rrsp.Mul(e.RRSPRate))
	}

	// 6. Childcare, capped per child before the rate applies.
	if childcare := a.ChildcareExpenses.Decimal(); childcare.GreaterThan(decimal.Zero) {
		limit := e.ChildcareLimitUnder6.Mul(decimal.NewFromInt(int64(a.KidsUnder6))).
			Add(e.ChildcareLimit6To17.Mul(decimal.NewFromInt(int64(a.Kids6To17))))
		tax = tax.Sub(decimal.Min(childcare, limit).Mul(e.LowestRate))
	}

	// 7. Medical, only the portion above 3% of income.
	if medical := a.MedicalExpenses.Decimal(); medical.GreaterThan(income.Mul(e.MedicalFloorRate)) {
		tax = tax.Sub(medical.Sub(income.Mul(e.MedicalFloorRate)).Mul(e.LowestRate))
	}

	// 8. Donations: first $200 at the lower rate, rest at the higher.
	if donations := a.CharitableDonations.Decimal(); donations.GreaterThan(decimal.Zero) {
		lower := decimal.Min(donations, e.DonationFirstTier).Mul(e.LowestRate)
		upper := decimal.Max(decimal.Zero, donations.Sub(e.DonationFirstTier)).Mul(e.DonationHighRate)
		tax = tax.Sub(lower.Add(upper))
	}

	// 9. Tuition.
	if tuition := a.TuitionAmount.Decimal(); tuition.GreaterThan(decimal.Zero) {
		tax = tax.Sub(tuition.Mul(e.LowestRate))
	}

	// 10. Work from home: flat per-diem, capped.
	if days := a.WFHDays.Days(); days > 0 {
		claim := decimal.Min(decimal.NewFromInt(days).Mul(e.WFHPerDiem), e.WFHCap)
		tax = tax.Sub(claim.Mul(e.LowestRate))
	}

	// 11. First-time home buyer.
	if a.HasLifeEvent("firstHome") {
		tax = tax.Sub(e.FirstHomeAmount.Mul(e.LowestRate))
	}

	// 12. Single floor after all adjustments.
	liability = decimal.Max(decimal.Zero, tax)

	refund = withheld.Sub(liability)
	refund = refund.Add(e.climateBenefit(a))
	refund = refund.Add(e.salesCredit(a, income))
	refund = refund.Add(e.rentCredit(a))
	return refund, liability
}

// demoRefund is the simplified preview formula: flat average-rate
// liability, refund floored at zero before benefits, a flat spousal
// boost, and RRSP savings added straight to the refund. Nothing pays
// out until both an income and a withheld amount are entered.
func (e *EstimateEngine) demoRefund(a *domain.AnswerSet, income, withheld decimal.Decimal) (refund, liability decimal.Decimal) {
	liability = income.Mul(e.DemoAverageRate)
	if !income.GreaterThan(decimal.Zero) || !withheld.GreaterThan(decimal.Zero) {
		return decimal.Zero, liability
	}
	refund = decimal.Max(decimal.Zero, withheld.Sub(liability))

	if a.HasSpouse() && a.SpouseIncome.Decimal().LessThan(e.DemoSpouseCeiling) {
		refund = refund.Add(e.DemoSpousalBoost)
	}
	refund = refund.Add(e.climateBenefit(a))
	if a.Province == domain.ProvinceON && a.HasLifeEvent("paidRent") {
		refund = refund.Add(decimal.Min(e.DemoRentCap, a.RentAmount.Decimal().Mul(e.DemoRentRate)))
	}
	if rrsp := a.RRSPContribution.Decimal(); rrsp.GreaterThan(decimal.Zero) {
		refund = refund.Add(rrsp.Mul(e.DemoRRSPRate))
	}
	return refund, liability
}
