package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/claimit/claimit/internal/domain"
)

// Credit classification for the results summary. Each rule is an
// independent predicate over the answers; the lists are display
// guidance, not derived from whether a credit moved the numeric
// estimate: age and spousal amounts are listed for any qualifying
// senior/spouse even when an income ceiling kept them out of the math.
func (e *EstimateEngine) classifyCredits(a *domain.AnswerSet, income decimal.Decimal) (found, missing []CreditItem) {
	if income.GreaterThan(decimal.Zero) {
		found = append(found, CreditItem{Label: "Basic Personal Amount", Value: "$2,419"})
	}
	if a.HasIncomeSource("t4") || a.Mode == domain.ModeQuick {
		found = append(found, CreditItem{Label: "Canada Employment Amount", Value: "$215"})
	}
	if a.HasSpouse() && a.SpouseIncomeBracket != domain.SpouseBracketHigh {
		found = append(found, CreditItem{Label: "Spousal Amount", Value: "Up to $2,419"})
	}
	if a.IsSenior() {
		found = append(found, CreditItem{Label: "Age Amount", Value: "Up to $1,319"})
	}
	if rebate, ok := domain.ClimateAction[a.Province]; ok {
		found = append(found, CreditItem{
			Label: "Climate Action Incentive",
			Value: fmt.Sprintf("$%s/yr", rebate.Single.StringFixed(0)),
		})
	}
	if a.HasLifeEvent("firstHome") {
		found = append(found, CreditItem{Label: "First-Time Home Buyer", Value: "$1,500"})
	}
	// Any entered day count lists the credit, even "0": the rule keys
	// on the field being filled in, not on the claim being nonzero.
	if a.HasLifeEvent("wfh") && !a.WFHDays.IsZero() {
		claim := decimal.Min(decimal.NewFromInt(a.WFHDays.Days()).Mul(e.WFHPerDiem), e.WFHCap)
		found = append(found, CreditItem{
			Label: "Work From Home",
			Value: fmt.Sprintf("$%s", claim.StringFixed(0)),
		})
	}

	if !a.HasLifeEvent("wfh") {
		missing = append(missing, CreditItem{Label: "Work From Home", Value: "Up to $500"})
	}
	if a.RRSPContribution.IsZero() {
		missing = append(missing, CreditItem{Label: "RRSP Contribution", Value: "Varies"})
	}
	if !a.HasLifeEvent("digitalNews") {
		missing = append(missing, CreditItem{Label: "Digital News Subscription", Value: "Up to $75"})
	}
	return found, missing
}
