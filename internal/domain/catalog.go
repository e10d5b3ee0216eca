package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Static lookup tables consumed by the questionnaire and the estimate
// engine. These are data, not behavior: the engine treats a missing
// key as "no contribution".

// ProvinceInfo describes one province or territory.
type ProvinceInfo struct {
	Code          Province
	Name          string
	HasRentCredit bool
	// Quebec files a separate provincial return; surfaced as an
	// informational note only.
	SeparateReturn bool
}

// Provinces is the registry of all 13 codes, in display order.
var Provinces = []ProvinceInfo{
	{Code: ProvinceON, Name: "Ontario", HasRentCredit: true},
	{Code: ProvinceBC, Name: "British Columbia", HasRentCredit: true},
	{Code: ProvinceAB, Name: "Alberta"},
	{Code: ProvinceSK, Name: "Saskatchewan"},
	{Code: ProvinceMB, Name: "Manitoba", HasRentCredit: true},
	{Code: ProvinceQC, Name: "Quebec", HasRentCredit: true, SeparateReturn: true},
	{Code: ProvinceNB, Name: "New Brunswick"},
	{Code: ProvinceNS, Name: "Nova Scotia"},
	{Code: ProvincePE, Name: "P.E.I."},
	{Code: ProvinceNL, Name: "Newfoundland"},
	{Code: ProvinceYT, Name: "Yukon"},
	{Code: ProvinceNT, Name: "N.W.T."},
	{Code: ProvinceNU, Name: "Nunavut"},
}

// ProvinceByCode looks up registry info for a code. The second return
// is false for unknown codes; callers degrade rather than fail.
func ProvinceByCode(code Province) (ProvinceInfo, bool) {
	for _, p := range Provinces {
		if p.Code == code {
			return p, true
		}
	}
	return ProvinceInfo{}, false
}

// ClimateRebate is the flat climate-action payment for one province.
type ClimateRebate struct {
	Single decimal.Decimal
	Spouse decimal.Decimal
	Child  decimal.Decimal
}

// ClimateAction maps province codes to rebate amounts. Provinces that
// run their own carbon pricing (BC, QC, the territories) are absent
// and contribute zero.
var ClimateAction = map[Province]ClimateRebate{
	ProvinceON: {Single: decimal.NewFromInt(140), Spouse: decimal.NewFromInt(140), Child: decimal.NewFromInt(70)},
	ProvinceAB: {Single: decimal.NewFromInt(772), Spouse: decimal.NewFromInt(772), Child: decimal.NewFromInt(386)},
	ProvinceSK: {Single: decimal.NewFromInt(680), Spouse: decimal.NewFromInt(680), Child: decimal.NewFromInt(340)},
	ProvinceMB: {Single: decimal.NewFromInt(528), Spouse: decimal.NewFromInt(528), Child: decimal.NewFromInt(264)},
	ProvinceNB: {Single: decimal.NewFromInt(380), Spouse: decimal.NewFromInt(380), Child: decimal.NewFromInt(190)},
	ProvinceNS: {Single: decimal.NewFromInt(380), Spouse: decimal.NewFromInt(380), Child: decimal.NewFromInt(190)},
	ProvincePE: {Single: decimal.NewFromInt(360), Spouse: decimal.NewFromInt(360), Child: decimal.NewFromInt(180)},
	ProvinceNL: {Single: decimal.NewFromInt(328), Spouse: decimal.NewFromInt(328), Child: decimal.NewFromInt(164)},
}

// TaxYears lists supported filing years, most recent first. The year
// is display-only; a single bracket table is used regardless.
var TaxYears = []int{2025, 2024, 2023, 2022}

// CatalogEntry is one selectable item in the income-source or
// life-event catalogs. The catalogs only drive which detail screens
// and fields are shown.
type CatalogEntry struct {
	ID       string
	Label    string
	Sub      string
	Category string
}

// IncomeSourceCatalog lists the selectable income source tags.
var IncomeSourceCatalog = []CatalogEntry{
	{ID: "t4", Label: "Employment (T4)", Sub: "Regular job, salary"},
	{ID: "t4a", Label: "Other Income (T4A)", Sub: "Pension, scholarships, gig work"},
	{ID: "t4e", Label: "EI Benefits (T4E)", Sub: "Parental leave, job loss"},
	{ID: "t5", Label: "Investment Income (T5)", Sub: "Bank interest, dividends"},
	{ID: "t3", Label: "Trust/Fund Income (T3)", Sub: "Mutual funds, ETFs"},
	{ID: "t5008", Label: "Sold Investments (T5008)", Sub: "Stocks, crypto, capital gains"},
	{ID: "self", Label: "Self-Employed", Sub: "Freelance, business owner"},
	{ID: "rental", Label: "Rental Income", Sub: "Landlord income"},
	{ID: "none", Label: "No income this year", Sub: "Still file for benefits!"},
}

// LifeEventCatalog lists the selectable life-event tags.
var LifeEventCatalog = []CatalogEntry{
	{ID: "paidRent", Label: "Paid rent", Category: "housing"},
	{ID: "ownHome", Label: "Own my home (paid property tax)", Category: "housing"},
	{ID: "firstHome", Label: "Bought my FIRST home!", Category: "housing"},
	{ID: "wfh", Label: "Worked from home", Category: "housing"},
	{ID: "moved", Label: "Moved 40+ km for work/school", Category: "housing"},
	{ID: "medical", Label: "Had medical expenses", Category: "health"},
	{ID: "disability", Label: "Have a disability (T2201)", Category: "health"},
	{ID: "caregiver", Label: "Care for disabled family member", Category: "health"},
	{ID: "tuition", Label: "Paid tuition", Category: "education"},
	{ID: "studentLoan", Label: "Paid student loan interest", Category: "education"},
	{ID: "childcare", Label: "Paid for childcare", Category: "family"},
	{ID: "charity", Label: "Donated to charity", Category: "giving"},
	{ID: "political", Label: "Donated to political party", Category: "giving"},
	{ID: "digitalNews", Label: "Subscribed to Canadian news", Category: "other"},
	{ID: "volunteer", Label: "Volunteer firefighter/SAR", Category: "other"},
	{ID: "teacher", Label: "Teacher who bought supplies", Category: "other"},
	{ID: "northern", Label: "Live in a northern zone", Category: "other"},
}

// TimeEstimate renders a rough remaining-time hint for the progress
// header. Quick-mode steps run about 15 seconds, detailed about 25.
func TimeEstimate(mode Mode, currentStep, totalSteps int) string {
	remaining := totalSteps - currentStep
	perStep, almost := 25, 20
	if mode == ModeQuick {
		perStep, almost = 15, 15
	}
	seconds := remaining * perStep
	if seconds <= almost {
		return "Almost done!"
	}
	if seconds < 60 {
		return fmt.Sprintf("~%d sec", seconds)
	}
	minutes := (seconds + 59) / 60
	return fmt.Sprintf("~%d min", minutes)
}
