package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/claimit/claimit/internal/domain"
)

func quickAnswers(income, taxPaid string, province domain.Province) domain.AnswerSet {
	a := domain.NewAnswerSet()
	a.Mode = domain.ModeQuick
	a.Province = province
	a.QuickIncome = domain.Money(income)
	a.QuickTaxPaid = domain.Money(taxPaid)
	return a
}

func TestNewEstimateEngine(t *testing.T) {
	engine := NewEstimateEngine()

	assert.Equal(t, VariantFull, engine.Variant, "Default engine runs the full formula")
	assert.Len(t, engine.Brackets, 3, "Three federal bands")

	demo := NewDemoEngine()
	assert.Equal(t, VariantDemo, demo.Variant, "Demo engine shares constants, switches formula")
}

func TestComputeEstimate_Pure(t *testing.T) {
	engine := NewEstimateEngine()
	a := quickAnswers("65000", "15000", domain.ProvinceON)
	a.ToggleLifeEvent("wfh")
	a.WFHDays = "120"

	before := a
	first := engine.ComputeEstimate(&a)
	second := engine.ComputeEstimate(&a)

	assert.Equal(t, first, second, "Identical answers must yield identical results")
	assert.Equal(t, before, a, "ComputeEstimate must not mutate the answers")
}

func TestComputeEstimate_EmptyAnswerSet(t *testing.T) {
	engine := NewEstimateEngine()
	a := domain.NewAnswerSet()

	result := engine.ComputeEstimate(&a)

	assert.Equal(t, int64(0), result.Estimate, "Empty form estimates to zero")
	assert.NotNil(t, result.CreditsMissing, "Missing-credit rules still run on an empty form")
}

func TestComputeEstimate_QuickOntarioScenario(t *testing.T) {
	// $65,000 income, $15,000 withheld, ON, single, no kids.
	// Federal: 55,867 x 15% + 9,133 x 20.5% = 10,252.315
	// Provincial: 65,000 x 12% = 7,800
	// Less BPA 2,419.35 and employment 214.95 => liability 15,418.015
	// Refund: 15,000 - 15,418.015 + ON climate 140 = -278.015
	// No sales credit: income is not below 50,000.
	engine := NewEstimateEngine()
	a := quickAnswers("65000", "15000", domain.ProvinceON)

	result := engine.ComputeEstimate(&a)

	assert.Equal(t, int64(-278), result.Estimate, "Should owe $278 on the reference constants")
	assert.True(t, result.Liability.Equal(decimal.NewFromFloat(15418.015)),
		"Liability should be 15418.015, got %s", result.Liability)
}

func TestComputeEstimate_DetailedSpousalAlberta(t *testing.T) {
	// One T4 at 80,000/18,000 withheld, married with a no-income
	// spouse, AB. The spousal credit uses the full threshold and the
	// AB climate rebate pays both single and spouse amounts.
	engine := NewEstimateEngine()
	a := domain.NewAnswerSet()
	a.Mode = domain.ModeDetailed
	a.Province = domain.ProvinceAB
	a.MaritalStatus = domain.MaritalMarried
	a.SpouseIncomeBracket = domain.SpouseBracketNone
	a.ToggleIncomeSource("t4")
	a.T4Slips[0].Income = "80000"
	a.T4Slips[0].TaxDeducted = "18000"

	result := engine.ComputeEstimate(&a)

	// Federal 13,327.315 + provincial 9,600, less BPA 2,419.35,
	// employment 214.95, spousal 2,419.35 => liability 17,873.665.
	// Refund 126.335 + climate 772 + 772 = 1,670.335.
	assert.True(t, result.Liability.Equal(decimal.NewFromFloat(17873.665)),
		"Liability should be 17873.665, got %s", result.Liability)
	assert.Equal(t, int64(1670), result.Estimate)
}

func TestComputeEstimate_ChildcareCap(t *testing.T) {
	// $20,000 claimed with 1 kid under 6 and 1 kid 6-17 caps the
	// claim at 8,000 + 5,000 before the credit rate.
	engine := NewEstimateEngine()
	base := quickAnswers("65000", "15000", domain.ProvinceAB)
	base.HasKids = domain.TriYes
	base.KidsUnder6 = 1
	base.Kids6To17 = 1

	capped := base
	capped.ChildcareExpenses = "20000"
	atLimit := base
	atLimit.ChildcareExpenses = "13000"

	assert.Equal(t, engine.ComputeEstimate(&atLimit).Estimate, engine.ComputeEstimate(&capped).Estimate,
		"Claims above the per-child limits must not increase the credit")

	over := engine.ComputeEstimate(&base).Liability.Sub(engine.ComputeEstimate(&capped).Liability)
	assert.True(t, over.Equal(decimal.NewFromInt(13000).Mul(engine.LowestRate)),
		"Credit should be 13,000 x 15%%, got %s", over)
}

func TestComputeEstimate_DonationTiers(t *testing.T) {
	// $1,000 donated: 200 x 15% + 800 x 29%, never 1,000 x 15%.
	engine := NewEstimateEngine()
	base := quickAnswers("65000", "15000", domain.ProvinceAB)
	donated := base
	donated.CharitableDonations = "1000"

	credit := engine.ComputeEstimate(&base).Liability.Sub(engine.ComputeEstimate(&donated).Liability)
	want := decimal.NewFromInt(200).Mul(decimal.NewFromFloat(0.15)).
		Add(decimal.NewFromInt(800).Mul(decimal.NewFromFloat(0.29)))

	assert.True(t, credit.Equal(want), "Donation credit should be %s, got %s", want, credit)
}

func TestComputeEstimate_MedicalFloor(t *testing.T) {
	// Only the portion above 3% of income is credited.
	engine := NewEstimateEngine()
	base := quickAnswers("50000", "10000", domain.ProvinceAB)
	claimed := base
	claimed.MedicalExpenses = "2500"

	credit := engine.ComputeEstimate(&base).Liability.Sub(engine.ComputeEstimate(&claimed).Liability)
	want := decimal.NewFromInt(1000).Mul(decimal.NewFromFloat(0.15)) // 2500 - 1500 floor

	assert.True(t, credit.Equal(want), "Medical credit should be %s, got %s", want, credit)

	below := base
	below.MedicalExpenses = "1200"
	assert.True(t, engine.ComputeEstimate(&below).Liability.Equal(engine.ComputeEstimate(&base).Liability),
		"Expenses under the floor earn nothing")
}

func TestComputeEstimate_WFHCap(t *testing.T) {
	engine := NewEstimateEngine()
	base := quickAnswers("65000", "15000", domain.ProvinceAB)
	base.ToggleLifeEvent("wfh")

	days300 := base
	days300.WFHDays = "300"
	days250 := base
	days250.WFHDays = "250"

	assert.Equal(t, engine.ComputeEstimate(&days250).Estimate, engine.ComputeEstimate(&days300).Estimate,
		"Per-diem claim is capped at $500")
}

func TestComputeEstimate_LiabilityFlooredOnce(t *testing.T) {
	// Stack every deduction on a small income: liability must floor at
	// zero, never go negative, and the refund equals withheld plus
	// benefits.
	engine := NewEstimateEngine()
	a := quickAnswers("12000", "3000", domain.ProvinceON)
	a.AgeRange = domain.AgeSenior
	a.MaritalStatus = domain.MaritalMarried
	a.SpouseIncomeBracket = domain.SpouseBracketNone
	a.RRSPContribution = "10000"
	a.CharitableDonations = "5000"
	a.TuitionAmount = "8000"
	a.ToggleLifeEvent("firstHome")

	result := engine.ComputeEstimate(&a)

	assert.True(t, result.Liability.Equal(decimal.Zero), "Liability floors at zero")
	// withheld 3000 + ON climate (140 + 140) + sales credit 680.
	assert.Equal(t, int64(3960), result.Estimate)
}

func TestComputeEstimate_SalesCreditCeiling(t *testing.T) {
	engine := NewEstimateEngine()

	under := quickAnswers("49999", "0", domain.ProvinceYT) // YT has no climate rebate
	under.MaritalStatus = domain.MaritalSingle
	at := quickAnswers("50000", "0", domain.ProvinceYT)

	underResult := engine.ComputeEstimate(&under)
	atResult := engine.ComputeEstimate(&at)

	// Under the ceiling the single credit of 340 is added on top of
	// the (negative) refund; at the ceiling it is not.
	diff := underResult.Estimate - atResult.Estimate
	assert.Greater(t, diff, int64(300), "Sales credit applies strictly below the ceiling")

	withKids := under
	withKids.MaritalStatus = domain.MaritalMarried
	withKids.KidsUnder6 = 2
	kidsResult := engine.ComputeEstimate(&withKids)
	// Spouse base replaces single (+340) and each child adds 179, but
	// married also adds nothing else for YT (no climate entry).
	assert.Equal(t, underResult.Estimate+340+2*179, kidsResult.Estimate)
}

func TestComputeEstimate_RentCreditOntarioOnly(t *testing.T) {
	engine := NewEstimateEngine()

	on := quickAnswers("65000", "15000", domain.ProvinceON)
	on.ToggleLifeEvent("paidRent")
	on.RentAmount = "18000"
	bc := on
	bc.Province = domain.ProvinceBC

	onResult := engine.ComputeEstimate(&on)
	base := quickAnswers("65000", "15000", domain.ProvinceON)
	baseResult := engine.ComputeEstimate(&base)

	// 18,000 x 5% + 243 = 1,143, under the 1,248 cap.
	assert.Equal(t, baseResult.Estimate+1143, onResult.Estimate, "Ontario rent credit applies")

	huge := on
	huge.RentAmount = "40000"
	assert.Equal(t, baseResult.Estimate+1248, engine.ComputeEstimate(&huge).Estimate,
		"Rent credit caps at 1,248")

	bcResult := engine.ComputeEstimate(&bc)
	bcBase := base
	bcBase.Province = domain.ProvinceBC
	assert.Equal(t, engine.ComputeEstimate(&bcBase).Estimate, bcResult.Estimate,
		"No rent credit outside the designated province")
}

func TestComputeEstimate_NegativeBusinessNetExcluded(t *testing.T) {
	a := domain.NewAnswerSet()
	a.Mode = domain.ModeDetailed
	a.T4Slips[0].Income = "60000"
	a.SelfEmployment = domain.BusinessIncome{Gross: "10000", Expenses: "25000"}
	a.RentalIncome = domain.BusinessIncome{Gross: "5000", Expenses: "8000"}

	assert.True(t, TotalIncome(&a).Equal(decimal.NewFromInt(60000)),
		"Business losses are excluded from income, not subtracted")
}

func TestComputeEstimate_AddingT4IncreasesIncome(t *testing.T) {
	a := domain.NewAnswerSet()
	a.Mode = domain.ModeDetailed
	a.T4Slips[0].Income = "50000"
	before := TotalIncome(&a)

	id := a.AddT4()
	a.T4ByID(id).Income = "10000"

	assert.True(t, TotalIncome(&a).GreaterThan(before),
		"Adding a slip with income strictly increases the aggregate")
}

func TestComputeEstimate_T5Aggregation(t *testing.T) {
	a := domain.NewAnswerSet()
	a.Mode = domain.ModeDetailed
	a.T5Slips[0].Interest = "1000"
	a.T5Slips[0].DividendsTaxable = "2000"
	a.T5Slips[0].DividendsActual = "1449" // informational only
	a.T5Slips[0].CapitalGains = "3000"

	assert.True(t, TotalIncome(&a).Equal(decimal.NewFromInt(4500)),
		"Interest + taxable dividends + 50 percent of capital gains")
}

func TestComputeEstimate_WithheldSumsT4Only(t *testing.T) {
	a := domain.NewAnswerSet()
	a.Mode = domain.ModeDetailed
	a.T4Slips[0].TaxDeducted = "9000"
	id := a.AddT4()
	a.T4ByID(id).TaxDeducted = "3000"
	a.T5Slips[0].Interest = "1000"

	assert.True(t, TaxWithheld(&a).Equal(decimal.NewFromInt(12000)),
		"Only T4 box 22 is summed")
}

func TestComputeEstimate_CoercesGarbageToZero(t *testing.T) {
	engine := NewEstimateEngine()
	a := quickAnswers("not-a-number", "alsobad", domain.ProvinceON)
	a.RRSPContribution = "??"
	a.Province = "ZZ" // unknown lookup key

	result := engine.ComputeEstimate(&a)

	assert.Equal(t, int64(0), result.Estimate, "Garbage input degrades to a zero estimate")
}

func TestDemoVariant(t *testing.T) {
	engine := NewDemoEngine()
	a := quickAnswers("60000", "18000", domain.ProvinceAB)

	// Liability 60,000 x 25% = 15,000; refund 3,000 + AB climate 772.
	result := engine.ComputeEstimate(&a)
	assert.Equal(t, int64(3772), result.Estimate)

	// The demo formula floors the refund before benefits: heavy
	// under-withholding still shows the flat benefits.
	owing := quickAnswers("60000", "1000", domain.ProvinceAB)
	owingResult := engine.ComputeEstimate(&owing)
	assert.Equal(t, int64(772), owingResult.Estimate, "Demo refund never goes negative")

	withRRSP := a
	withRRSP.RRSPContribution = "10000"
	assert.Equal(t, result.Estimate+3000, engine.ComputeEstimate(&withRRSP).Estimate,
		"Demo adds RRSP x 30 percent straight to the refund")
}

func TestDemoVariant_RequiresIncomeAndWithholding(t *testing.T) {
	// The preview pays nothing, benefits included, until both an income
	// and a withheld amount are entered.
	engine := NewDemoEngine()

	noTax := quickAnswers("60000", "", domain.ProvinceAB)
	assert.Equal(t, int64(0), engine.ComputeEstimate(&noTax).Estimate,
		"Income without withheld tax earns nothing")

	noIncome := quickAnswers("", "5000", domain.ProvinceAB)
	assert.Equal(t, int64(0), engine.ComputeEstimate(&noIncome).Estimate,
		"Withheld tax without income earns nothing")
}

func TestDemoVariant_SpousalBoost(t *testing.T) {
	engine := NewDemoEngine()
	a := quickAnswers("60000", "18000", domain.ProvinceAB)
	a.MaritalStatus = domain.MaritalMarried
	a.SpouseIncome = "12000"

	// 3,000 base + AB climate 772 + 772 + flat 1,500 spousal boost.
	assert.Equal(t, int64(6044), engine.ComputeEstimate(&a).Estimate)

	rich := a
	rich.SpouseIncome = "20000"
	assert.Equal(t, int64(4544), engine.ComputeEstimate(&rich).Estimate,
		"No boost at or above the spouse income ceiling")
}

func TestDemoVariant_RentOntarioOnlyAndNoFirstHome(t *testing.T) {
	engine := NewDemoEngine()

	on := quickAnswers("60000", "18000", domain.ProvinceON)
	on.ToggleLifeEvent("paidRent")
	on.RentAmount = "10000"
	// 3,000 base + ON climate 140 + min(840, 10,000 x 5%).
	assert.Equal(t, int64(3640), engine.ComputeEstimate(&on).Estimate)

	bc := on
	bc.Province = domain.ProvinceBC
	assert.Equal(t, int64(3000), engine.ComputeEstimate(&bc).Estimate,
		"No rent credit and no climate entry outside Ontario here")

	home := quickAnswers("60000", "18000", domain.ProvinceBC)
	home.ToggleLifeEvent("firstHome")
	assert.Equal(t, int64(3000), engine.ComputeEstimate(&home).Estimate,
		"The preview formula has no first-home term")
}
